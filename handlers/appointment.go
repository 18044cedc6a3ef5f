package handlers

import (
	"errors"
	"net/http"
	"time"

	appointmentRepo "medicore/database/repository/appointment"
	doctorRepo "medicore/database/repository/doctor"
	patientRepo "medicore/database/repository/patient"
	"medicore/models"
	"medicore/services/appointment"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ListAppointmentsHandler returns a paginated appointment listing. Doctors
// and patients only see their own.
func ListAppointmentsHandler(svc appointment.AppointmentService, patients patientRepo.PatientRepository, doctors doctorRepo.DoctorRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		logger := getLogger(c)

		page, limit := parsePagination(c)
		opts := appointmentRepo.ListOptions{
			Status:    c.Query("status"),
			DoctorID:  c.Query("doctorId"),
			PatientID: c.Query("patientId"),
			Page:      page,
			Limit:     limit,
			SortBy:    c.DefaultQuery("sortBy", "date"),
			SortOrder: c.DefaultQuery("sortOrder", "asc"),
		}
		if v := c.Query("date"); v != "" {
			date, err := time.Parse("2006-01-02", v)
			if err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid date, expected YYYY-MM-DD"})
				return
			}
			opts.Date = &date
		}

		switch c.GetString("role") {
		case models.RoleDoctor:
			doc := callerDoctor(c, doctors)
			if doc == nil {
				c.JSON(http.StatusForbidden, gin.H{"error": "No doctor profile for this account"})
				return
			}
			opts.DoctorID = doc.ID
		case models.RolePatient:
			p := callerPatient(c, patients)
			if p == nil {
				c.JSON(http.StatusForbidden, gin.H{"error": "No patient profile for this account"})
				return
			}
			opts.PatientID = p.ID
		}

		appts, total, err := svc.List(opts)
		if err != nil {
			logger.Error("Failed to list appointments", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list appointments"})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"appointments": appts,
			"total":        total,
			"currentPage":  page,
			"totalPages":   totalPages(total, limit),
		})
	}
}

// GetAppointmentHandler returns one appointment, enforcing ownership for
// doctors and patients.
func GetAppointmentHandler(svc appointment.AppointmentService, patients patientRepo.PatientRepository, doctors doctorRepo.DoctorRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		logger := getLogger(c)

		appt, err := svc.GetByID(c.Param("id"))
		if err != nil {
			if errors.Is(err, appointment.ErrNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "Appointment not found"})
				return
			}
			logger.Error("Failed to get appointment", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve appointment"})
			return
		}

		if !canAccessAppointment(c, appt, patients, doctors) {
			c.JSON(http.StatusForbidden, gin.H{"error": "Access denied"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"appointment": appt})
	}
}

// CreateAppointmentHandler books a new appointment.
func CreateAppointmentHandler(svc appointment.AppointmentService) gin.HandlerFunc {
	return func(c *gin.Context) {
		logger := getLogger(c)

		var req appointment.CreateRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
			return
		}

		appt, err := svc.Create(req)
		if err != nil {
			status, msg := bookingErrorStatus(err)
			if status == http.StatusInternalServerError {
				logger.Error("Failed to create appointment", zap.Error(err))
			}
			c.JSON(status, gin.H{"error": msg})
			return
		}

		c.JSON(http.StatusCreated, gin.H{"appointment": appt})
	}
}

// UpdateAppointmentHandler edits or reschedules an appointment.
func UpdateAppointmentHandler(svc appointment.AppointmentService, patients patientRepo.PatientRepository, doctors doctorRepo.DoctorRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		logger := getLogger(c)

		existing, err := svc.GetByID(c.Param("id"))
		if err != nil {
			if errors.Is(err, appointment.ErrNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "Appointment not found"})
				return
			}
			logger.Error("Failed to get appointment", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve appointment"})
			return
		}
		if !canAccessAppointment(c, existing, patients, doctors) {
			c.JSON(http.StatusForbidden, gin.H{"error": "Access denied"})
			return
		}

		var req appointment.UpdateRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
			return
		}

		appt, err := svc.Update(existing.ID, req)
		if err != nil {
			status, msg := bookingErrorStatus(err)
			if status == http.StatusInternalServerError {
				logger.Error("Failed to update appointment", zap.Error(err))
			}
			c.JSON(status, gin.H{"error": msg})
			return
		}

		c.JSON(http.StatusOK, gin.H{"appointment": appt})
	}
}

// UpdateAppointmentStatusHandler moves an appointment through its lifecycle.
func UpdateAppointmentStatusHandler(svc appointment.AppointmentService, patients patientRepo.PatientRepository, doctors doctorRepo.DoctorRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		logger := getLogger(c)

		existing, err := svc.GetByID(c.Param("id"))
		if err != nil {
			if errors.Is(err, appointment.ErrNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "Appointment not found"})
				return
			}
			logger.Error("Failed to get appointment", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve appointment"})
			return
		}
		if !canAccessAppointment(c, existing, patients, doctors) {
			c.JSON(http.StatusForbidden, gin.H{"error": "Access denied"})
			return
		}

		var req appointment.StatusRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
			return
		}

		// Patients can only cancel their own bookings.
		role := c.GetString("role")
		if role == models.RolePatient && req.Status != models.StatusCancelled {
			c.JSON(http.StatusForbidden, gin.H{"error": "Patients may only cancel appointments"})
			return
		}
		if req.Status == models.StatusCancelled && req.CancelledBy == "" {
			req.CancelledBy = role
		}

		appt, err := svc.UpdateStatus(existing.ID, req)
		if err != nil {
			if errors.Is(err, appointment.ErrInvalidStatus) {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid status"})
				return
			}
			logger.Error("Failed to update appointment status", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update status"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"appointment": appt})
	}
}

// DeleteAppointmentHandler removes an appointment outright.
func DeleteAppointmentHandler(svc appointment.AppointmentService) gin.HandlerFunc {
	return func(c *gin.Context) {
		logger := getLogger(c)

		if err := svc.Delete(c.Param("id")); err != nil {
			if errors.Is(err, appointment.ErrNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "Appointment not found"})
				return
			}
			logger.Error("Failed to delete appointment", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete appointment"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"message": "Appointment deleted"})
	}
}

// bookingErrorStatus maps booking errors to HTTP responses. Unbookable
// slots are client errors; only unexpected failures surface as 5xx.
func bookingErrorStatus(err error) (int, string) {
	switch {
	case errors.Is(err, appointment.ErrPatientNotFound):
		return http.StatusNotFound, "Patient not found"
	case errors.Is(err, appointment.ErrDoctorNotFound):
		return http.StatusNotFound, "Doctor not found"
	case errors.Is(err, appointment.ErrDoctorUnavailable):
		return http.StatusBadRequest, "Doctor is not available at the requested time"
	case errors.Is(err, appointment.ErrTimeConflict):
		return http.StatusBadRequest, "Doctor already has an appointment in this time slot"
	case errors.Is(err, appointment.ErrInvalidDuration):
		return http.StatusBadRequest, "Appointment duration must be between 15 and 120 minutes"
	case errors.Is(err, appointment.ErrNotFound):
		return http.StatusNotFound, "Appointment not found"
	}
	return http.StatusInternalServerError, "Failed to process appointment"
}

// canAccessAppointment enforces ownership: admins see everything, doctors
// and patients only their own bookings.
func canAccessAppointment(c *gin.Context, appt *models.Appointment, patients patientRepo.PatientRepository, doctors doctorRepo.DoctorRepository) bool {
	switch c.GetString("role") {
	case models.RoleAdmin:
		return true
	case models.RoleDoctor:
		doc := callerDoctor(c, doctors)
		return doc != nil && appt.DoctorID == doc.ID
	case models.RolePatient:
		p := callerPatient(c, patients)
		return p != nil && appt.PatientID == p.ID
	}
	return false
}
