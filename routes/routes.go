package routes

import (
	"net/http"
	"time"

	"medicore/handlers"
	"medicore/middleware"
	"medicore/models"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterAuthRoutes registers login and account endpoints.
func RegisterAuthRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/auth")
	{
		api.POST("/login", hb.LoginHandler)

		// Protected routes (Require Authentication)
		api.Use(middleware.JWTAuthMiddleware(hb.UserRepo))
		api.GET("/profile", hb.GetProfileHandler)
		api.PUT("/profile", hb.UpdateProfileHandler)
		api.PUT("/change-password", hb.ChangePasswordHandler)
		api.POST("/logout", hb.LogoutHandler)
		api.POST("/register", middleware.RequireRoles(models.RoleAdmin), hb.RegisterUserHandler)
		api.GET("/users", middleware.RequireRoles(models.RoleAdmin), hb.ListUsersHandler)
	}
}

// RegisterPatientRoutes registers patient management endpoints.
func RegisterPatientRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/patients")
	{
		api.Use(middleware.JWTAuthMiddleware(hb.UserRepo))
		api.GET("", middleware.RequireRoles(models.RoleAdmin, models.RoleDoctor), hb.ListPatientsHandler)
		api.GET("/:id", hb.GetPatientHandler)
		api.POST("", middleware.RequireRoles(models.RoleAdmin, models.RoleDoctor), hb.CreatePatientHandler)
		api.PUT("/:id", middleware.RequireRoles(models.RoleAdmin, models.RoleDoctor), hb.UpdatePatientHandler)
		api.DELETE("/:id", middleware.RequireRoles(models.RoleAdmin), hb.DeletePatientHandler)
		api.GET("/:id/medical-history", hb.PatientMedicalHistoryHandler)
		api.GET("/:id/records", hb.PatientRecordHistoryHandler)
		api.POST("/:id/assign-doctor", middleware.RequireRoles(models.RoleAdmin), hb.AssignDoctorHandler)
	}
}

// RegisterDoctorRoutes registers doctor management endpoints.
func RegisterDoctorRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/doctors")
	{
		api.Use(middleware.JWTAuthMiddleware(hb.UserRepo))
		api.GET("", middleware.RequireRoles(models.RoleAdmin, models.RoleDoctor), hb.ListDoctorsHandler)
		api.GET("/:id", middleware.RequireRoles(models.RoleAdmin, models.RoleDoctor), hb.GetDoctorHandler)
		api.POST("", middleware.RequireRoles(models.RoleAdmin), hb.CreateDoctorHandler)
		api.PUT("/:id", middleware.RequireRoles(models.RoleAdmin, models.RoleDoctor), hb.UpdateDoctorHandler)
		api.DELETE("/:id", middleware.RequireRoles(models.RoleAdmin), hb.DeleteDoctorHandler)
		api.GET("/:id/schedule", middleware.RequireRoles(models.RoleAdmin, models.RoleDoctor), hb.GetDoctorScheduleHandler)
		api.PUT("/:id/schedule", middleware.RequireRoles(models.RoleAdmin, models.RoleDoctor), hb.UpdateDoctorScheduleHandler)
		api.GET("/:id/availability", hb.CheckDoctorAvailabilityHandler)
	}
}

// RegisterAppointmentRoutes registers booking endpoints.
func RegisterAppointmentRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/appointments")
	{
		api.Use(middleware.JWTAuthMiddleware(hb.UserRepo))
		api.GET("", hb.ListAppointmentsHandler)
		api.GET("/:id", hb.GetAppointmentHandler)
		api.POST("", middleware.RequireRoles(models.RoleAdmin, models.RoleDoctor), hb.CreateAppointmentHandler)
		api.PUT("/:id", middleware.RequireRoles(models.RoleAdmin, models.RoleDoctor), hb.UpdateAppointmentHandler)
		api.PUT("/:id/status", hb.UpdateAppointmentStatusHandler)
		api.DELETE("/:id", middleware.RequireRoles(models.RoleAdmin), hb.DeleteAppointmentHandler)
	}
}

// RegisterRecordRoutes registers medical record endpoints.
func RegisterRecordRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/medical-records")
	{
		api.Use(middleware.JWTAuthMiddleware(hb.UserRepo))
		api.GET("", hb.ListRecordsHandler)
		api.GET("/:id", hb.GetRecordHandler)
		api.POST("", middleware.RequireRoles(models.RoleAdmin, models.RoleDoctor), hb.CreateRecordHandler)
		api.PUT("/:id", middleware.RequireRoles(models.RoleAdmin, models.RoleDoctor), hb.UpdateRecordHandler)
		api.DELETE("/:id", middleware.RequireRoles(models.RoleAdmin), hb.DeleteRecordHandler)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "message": "Hi, I'm MediCore"})
	})
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	// Setup global middleware (e.g., CORS) here.
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))
	r.Use(middleware.RateLimitMiddleware())

	RegisterHealthRoute(r)
	RegisterAuthRoutes(r, hb)
	RegisterPatientRoutes(r, hb)
	RegisterDoctorRoutes(r, hb)
	RegisterAppointmentRoutes(r, hb)
	RegisterRecordRoutes(r, hb)
}
