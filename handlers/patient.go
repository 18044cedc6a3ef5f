package handlers

import (
	"errors"
	"net/http"

	doctorRepo "medicore/database/repository/doctor"
	patientRepo "medicore/database/repository/patient"
	"medicore/models"
	"medicore/services/patient"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ListPatientsHandler returns a paginated patient listing. Doctors only see
// their own panel.
func ListPatientsHandler(svc patient.PatientService, doctors doctorRepo.DoctorRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		logger := getLogger(c)

		page, limit := parsePagination(c)
		opts := patientRepo.ListOptions{
			Search:    c.Query("search"),
			Page:      page,
			Limit:     limit,
			SortBy:    c.DefaultQuery("sortBy", "createdAt"),
			SortOrder: c.DefaultQuery("sortOrder", "desc"),
		}

		if c.GetString("role") == models.RoleDoctor {
			doc := callerDoctor(c, doctors)
			if doc == nil {
				c.JSON(http.StatusForbidden, gin.H{"error": "No doctor profile for this account"})
				return
			}
			opts.DoctorID = doc.ID
		}

		patients, total, err := svc.List(opts)
		if err != nil {
			logger.Error("Failed to list patients", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list patients"})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"patients":    patients,
			"total":       total,
			"currentPage": page,
			"totalPages":  totalPages(total, limit),
		})
	}
}

// GetPatientHandler returns one patient. Patients only see themselves;
// doctors only see assigned patients.
func GetPatientHandler(svc patient.PatientService, doctors doctorRepo.DoctorRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		logger := getLogger(c)

		p, err := svc.GetByID(c.Param("id"))
		if err != nil {
			if errors.Is(err, patient.ErrNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "Patient not found"})
				return
			}
			logger.Error("Failed to get patient", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve patient"})
			return
		}

		if !canAccessPatient(c, p, doctors) {
			c.JSON(http.StatusForbidden, gin.H{"error": "Access denied"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"patient": p})
	}
}

// CreatePatientHandler registers a new patient profile.
func CreatePatientHandler(svc patient.PatientService) gin.HandlerFunc {
	return func(c *gin.Context) {
		logger := getLogger(c)

		var p models.Patient
		if err := c.ShouldBindJSON(&p); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
			return
		}
		if p.Name == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Name is required"})
			return
		}

		created, err := svc.Create(&p)
		if err != nil {
			logger.Error("Failed to create patient", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create patient"})
			return
		}

		c.JSON(http.StatusCreated, gin.H{"patient": created})
	}
}

// UpdatePatientHandler edits a patient profile. Doctors can only edit
// patients on their panel.
func UpdatePatientHandler(svc patient.PatientService, doctors doctorRepo.DoctorRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		logger := getLogger(c)

		existing, err := svc.GetByID(c.Param("id"))
		if err != nil {
			if errors.Is(err, patient.ErrNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "Patient not found"})
				return
			}
			logger.Error("Failed to get patient", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve patient"})
			return
		}
		if c.GetString("role") == models.RoleDoctor && !doctorOwnsPatient(c, existing, doctors) {
			c.JSON(http.StatusForbidden, gin.H{"error": "Access denied"})
			return
		}

		var req patient.UpdateRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
			return
		}

		updated, err := svc.Update(existing.ID, req)
		if err != nil {
			logger.Error("Failed to update patient", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update patient"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"patient": updated})
	}
}

// DeletePatientHandler soft-deletes a patient.
func DeletePatientHandler(svc patient.PatientService) gin.HandlerFunc {
	return func(c *gin.Context) {
		logger := getLogger(c)

		if err := svc.Delete(c.Param("id")); err != nil {
			if errors.Is(err, patient.ErrNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "Patient not found"})
				return
			}
			logger.Error("Failed to delete patient", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete patient"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"message": "Patient deactivated"})
	}
}

// PatientMedicalHistoryHandler returns the profile slice of clinical data.
func PatientMedicalHistoryHandler(svc patient.PatientService, doctors doctorRepo.DoctorRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		logger := getLogger(c)

		p, err := svc.GetByID(c.Param("id"))
		if err != nil {
			if errors.Is(err, patient.ErrNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "Patient not found"})
				return
			}
			logger.Error("Failed to get patient", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve patient"})
			return
		}
		if !canAccessPatient(c, p, doctors) {
			c.JSON(http.StatusForbidden, gin.H{"error": "Access denied"})
			return
		}

		history, err := svc.MedicalHistory(p.ID)
		if err != nil {
			logger.Error("Failed to get medical history", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve medical history"})
			return
		}

		c.JSON(http.StatusOK, history)
	}
}

// AssignDoctorHandler links a patient to a doctor's panel.
func AssignDoctorHandler(svc patient.PatientService) gin.HandlerFunc {
	return func(c *gin.Context) {
		logger := getLogger(c)

		var req struct {
			DoctorID string `json:"doctorId" binding:"required"`
		}
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
			return
		}

		updated, err := svc.AssignDoctor(c.Param("id"), req.DoctorID)
		if err != nil {
			if errors.Is(err, patient.ErrNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "Patient not found"})
				return
			}
			logger.Error("Failed to assign doctor", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to assign doctor"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"patient": updated})
	}
}

// canAccessPatient applies the read rules: admins see everything, patients
// see themselves, doctors see their panel.
func canAccessPatient(c *gin.Context, p *models.Patient, doctors doctorRepo.DoctorRepository) bool {
	switch c.GetString("role") {
	case models.RoleAdmin:
		return true
	case models.RolePatient:
		return p.PatientID == c.GetString("userID")
	case models.RoleDoctor:
		return doctorOwnsPatient(c, p, doctors)
	}
	return false
}

func doctorOwnsPatient(c *gin.Context, p *models.Patient, doctors doctorRepo.DoctorRepository) bool {
	doc := callerDoctor(c, doctors)
	return doc != nil && p.AssignedDoctor == doc.ID
}
