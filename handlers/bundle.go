package handlers

import (
	doctorRepoPkg "medicore/database/repository/doctor"
	patientRepoPkg "medicore/database/repository/patient"
	userRepoPkg "medicore/database/repository/user"
	"medicore/services/appointment"
	"medicore/services/auth"
	"medicore/services/doctor"
	"medicore/services/patient"
	"medicore/services/record"
	"medicore/services/scheduling"

	"github.com/gin-gonic/gin"
)

// HandlerBundle groups all endpoint handlers into one struct.
type HandlerBundle struct {
	UserRepo userRepoPkg.UserRepository

	// Auth endpoints
	LoginHandler          gin.HandlerFunc
	RegisterUserHandler   gin.HandlerFunc
	GetProfileHandler     gin.HandlerFunc
	UpdateProfileHandler  gin.HandlerFunc
	ChangePasswordHandler gin.HandlerFunc
	LogoutHandler         gin.HandlerFunc
	ListUsersHandler      gin.HandlerFunc

	// Patient endpoints
	ListPatientsHandler          gin.HandlerFunc
	GetPatientHandler            gin.HandlerFunc
	CreatePatientHandler         gin.HandlerFunc
	UpdatePatientHandler         gin.HandlerFunc
	DeletePatientHandler         gin.HandlerFunc
	PatientMedicalHistoryHandler gin.HandlerFunc
	AssignDoctorHandler          gin.HandlerFunc

	// Doctor endpoints
	ListDoctorsHandler             gin.HandlerFunc
	GetDoctorHandler               gin.HandlerFunc
	CreateDoctorHandler            gin.HandlerFunc
	UpdateDoctorHandler            gin.HandlerFunc
	DeleteDoctorHandler            gin.HandlerFunc
	GetDoctorScheduleHandler       gin.HandlerFunc
	UpdateDoctorScheduleHandler    gin.HandlerFunc
	CheckDoctorAvailabilityHandler gin.HandlerFunc

	// Appointment endpoints
	ListAppointmentsHandler        gin.HandlerFunc
	GetAppointmentHandler          gin.HandlerFunc
	CreateAppointmentHandler       gin.HandlerFunc
	UpdateAppointmentHandler       gin.HandlerFunc
	UpdateAppointmentStatusHandler gin.HandlerFunc
	DeleteAppointmentHandler       gin.HandlerFunc

	// Medical record endpoints
	ListRecordsHandler          gin.HandlerFunc
	GetRecordHandler            gin.HandlerFunc
	CreateRecordHandler         gin.HandlerFunc
	UpdateRecordHandler         gin.HandlerFunc
	DeleteRecordHandler         gin.HandlerFunc
	PatientRecordHistoryHandler gin.HandlerFunc
}

// BundleDeps collects everything the bundle needs wired in.
type BundleDeps struct {
	UserRepo    userRepoPkg.UserRepository
	PatientRepo patientRepoPkg.PatientRepository
	DoctorRepo  doctorRepoPkg.DoctorRepository

	AuthSvc        auth.AuthService
	PatientSvc     patient.PatientService
	DoctorSvc      doctor.DoctorService
	AppointmentSvc appointment.AppointmentService
	RecordSvc      record.RecordService
	Conflicts      scheduling.ConflictChecker
}

// NewHandlerBundle assembles every endpoint handler from the services.
func NewHandlerBundle(deps BundleDeps) *HandlerBundle {
	return &HandlerBundle{
		UserRepo: deps.UserRepo,

		LoginHandler:          LoginHandler(deps.AuthSvc),
		RegisterUserHandler:   RegisterUserHandler(deps.AuthSvc),
		GetProfileHandler:     GetProfileHandler(deps.AuthSvc),
		UpdateProfileHandler:  UpdateProfileHandler(deps.AuthSvc),
		ChangePasswordHandler: ChangePasswordHandler(deps.AuthSvc),
		LogoutHandler:         LogoutHandler(deps.AuthSvc),
		ListUsersHandler:      ListUsersHandler(deps.AuthSvc),

		ListPatientsHandler:          ListPatientsHandler(deps.PatientSvc, deps.DoctorRepo),
		GetPatientHandler:            GetPatientHandler(deps.PatientSvc, deps.DoctorRepo),
		CreatePatientHandler:         CreatePatientHandler(deps.PatientSvc),
		UpdatePatientHandler:         UpdatePatientHandler(deps.PatientSvc, deps.DoctorRepo),
		DeletePatientHandler:         DeletePatientHandler(deps.PatientSvc),
		PatientMedicalHistoryHandler: PatientMedicalHistoryHandler(deps.PatientSvc, deps.DoctorRepo),
		AssignDoctorHandler:          AssignDoctorHandler(deps.PatientSvc),

		ListDoctorsHandler:             ListDoctorsHandler(deps.DoctorSvc),
		GetDoctorHandler:               GetDoctorHandler(deps.DoctorSvc),
		CreateDoctorHandler:            CreateDoctorHandler(deps.DoctorSvc),
		UpdateDoctorHandler:            UpdateDoctorHandler(deps.DoctorSvc),
		DeleteDoctorHandler:            DeleteDoctorHandler(deps.DoctorSvc),
		GetDoctorScheduleHandler:       GetDoctorScheduleHandler(deps.DoctorSvc),
		UpdateDoctorScheduleHandler:    UpdateDoctorScheduleHandler(deps.DoctorSvc),
		CheckDoctorAvailabilityHandler: CheckDoctorAvailabilityHandler(deps.DoctorSvc, deps.Conflicts),

		ListAppointmentsHandler:        ListAppointmentsHandler(deps.AppointmentSvc, deps.PatientRepo, deps.DoctorRepo),
		GetAppointmentHandler:          GetAppointmentHandler(deps.AppointmentSvc, deps.PatientRepo, deps.DoctorRepo),
		CreateAppointmentHandler:       CreateAppointmentHandler(deps.AppointmentSvc),
		UpdateAppointmentHandler:       UpdateAppointmentHandler(deps.AppointmentSvc, deps.PatientRepo, deps.DoctorRepo),
		UpdateAppointmentStatusHandler: UpdateAppointmentStatusHandler(deps.AppointmentSvc, deps.PatientRepo, deps.DoctorRepo),
		DeleteAppointmentHandler:       DeleteAppointmentHandler(deps.AppointmentSvc),

		ListRecordsHandler:          ListRecordsHandler(deps.RecordSvc, deps.PatientRepo, deps.DoctorRepo),
		GetRecordHandler:            GetRecordHandler(deps.RecordSvc, deps.PatientRepo, deps.DoctorRepo),
		CreateRecordHandler:         CreateRecordHandler(deps.RecordSvc, deps.DoctorRepo),
		UpdateRecordHandler:         UpdateRecordHandler(deps.RecordSvc, deps.DoctorRepo),
		DeleteRecordHandler:         DeleteRecordHandler(deps.RecordSvc),
		PatientRecordHistoryHandler: PatientRecordHistoryHandler(deps.RecordSvc, deps.PatientRepo, deps.DoctorRepo),
	}
}
