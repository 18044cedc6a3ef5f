package handlers

import (
	"strconv"

	doctorRepo "medicore/database/repository/doctor"
	patientRepo "medicore/database/repository/patient"
	"medicore/models"

	"github.com/gin-gonic/gin"
)

// parsePagination reads page/limit query params with the API's defaults.
func parsePagination(c *gin.Context) (page, limit int64) {
	page, _ = strconv.ParseInt(c.DefaultQuery("page", "1"), 10, 64)
	limit, _ = strconv.ParseInt(c.DefaultQuery("limit", "10"), 10, 64)
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 10
	}
	return page, limit
}

// totalPages computes the page count for list responses.
func totalPages(total, limit int64) int64 {
	if limit <= 0 {
		return 0
	}
	return (total + limit - 1) / limit
}

// callerPatient resolves the patient profile behind the authenticated patient
// account. The login ID doubles as the patient display ID.
func callerPatient(c *gin.Context, repo patientRepo.PatientRepository) *models.Patient {
	p, err := repo.GetByPatientID(c.GetString("userID"))
	if err != nil {
		return nil
	}
	return p
}

// callerDoctor resolves the doctor profile behind the authenticated doctor
// account. The login ID doubles as the doctor display ID.
func callerDoctor(c *gin.Context, repo doctorRepo.DoctorRepository) *models.Doctor {
	d, err := repo.GetByDoctorID(c.GetString("userID"))
	if err != nil {
		return nil
	}
	return d
}
