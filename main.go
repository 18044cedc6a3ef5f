package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"medicore/config"
	"medicore/cron"
	"medicore/database"
	appointmentRepoPkg "medicore/database/repository/appointment"
	doctorRepoPkg "medicore/database/repository/doctor"
	patientRepoPkg "medicore/database/repository/patient"
	recordRepoPkg "medicore/database/repository/record"
	sequenceRepoPkg "medicore/database/repository/sequence"
	userRepoPkg "medicore/database/repository/user"
	"medicore/handlers"
	"medicore/routes"
	"medicore/services/appointment"
	"medicore/services/auth"
	"medicore/services/doctor"
	"medicore/services/patient"
	"medicore/services/record"
	"medicore/services/scheduling"
	"medicore/utils"

	"github.com/gin-gonic/gin"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitAuthCache()

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())

	// repositories.
	userRepo := userRepoPkg.NewMongoUserRepo()
	patientRepo := patientRepoPkg.NewMongoPatientRepo()
	doctorRepo := doctorRepoPkg.NewMongoDoctorRepo()
	apptRepo := appointmentRepoPkg.NewMongoAppointmentRepo()
	recRepo := recordRepoPkg.NewMongoRecordRepo()
	seqRepo := sequenceRepoPkg.NewMongoSequenceRepo()

	// services.
	conflictChecker := &scheduling.DefaultConflictChecker{Repo: apptRepo}
	reminderScheduler := cron.NewReminderScheduler()

	authService := &auth.DefaultAuthService{Repo: userRepo}
	patientService := &patient.DefaultPatientService{
		Repo:       patientRepo,
		DoctorRepo: doctorRepo,
		Sequence:   seqRepo,
	}
	doctorService := &doctor.DefaultDoctorService{
		Repo:     doctorRepo,
		Sequence: seqRepo,
	}
	appointmentService := &appointment.DefaultAppointmentService{
		Repo:        apptRepo,
		PatientRepo: patientRepo,
		DoctorRepo:  doctorRepo,
		Sequence:    seqRepo,
		Conflicts:   conflictChecker,
		Reminders:   reminderScheduler,
	}
	recordService := &record.DefaultRecordService{
		Repo:        recRepo,
		PatientRepo: patientRepo,
		DoctorRepo:  doctorRepo,
		Sequence:    seqRepo,
	}

	// Assemble the handler bundle.
	handlerBundle := handlers.NewHandlerBundle(handlers.BundleDeps{
		UserRepo:    userRepo,
		PatientRepo: patientRepo,
		DoctorRepo:  doctorRepo,

		AuthSvc:        authService,
		PatientSvc:     patientService,
		DoctorSvc:      doctorService,
		AppointmentSvc: appointmentService,
		RecordSvc:      recordService,
		Conflicts:      conflictChecker,
	})

	// Register routes with the assembled handler bundle.
	routes.RegisterRoutes(router, handlerBundle)

	// Start the reminder worker.
	cron.InitReminderWorker(apptRepo)

	// Start the HTTP server.
	port := config.AppConfig.AppPort
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:    "0.0.0.0:" + port,
		Handler: router,
	}

	logger.Sugar().Infof("Starting server on %s...", srv.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("Server failed: %v", err)
		}
	}()

	// Graceful shutdown on SIGINT/SIGTERM.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Sugar().Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("Server forced to shutdown: %v", err)
	}
	if err := reminderScheduler.Close(); err != nil {
		logger.Sugar().Warnf("Failed to close reminder scheduler: %v", err)
	}
	logger.Sugar().Info("Server exited")
}
