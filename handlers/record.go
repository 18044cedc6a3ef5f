package handlers

import (
	"errors"
	"net/http"
	"strconv"

	doctorRepo "medicore/database/repository/doctor"
	patientRepo "medicore/database/repository/patient"
	recordRepo "medicore/database/repository/record"
	"medicore/models"
	"medicore/services/record"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ListRecordsHandler returns a paginated medical record listing. Doctors and
// patients only see their own; confidential records stay between the
// authoring doctor and admins.
func ListRecordsHandler(svc record.RecordService, patients patientRepo.PatientRepository, doctors doctorRepo.DoctorRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		logger := getLogger(c)

		page, limit := parsePagination(c)
		opts := recordRepo.ListOptions{
			PatientID: c.Query("patientId"),
			DoctorID:  c.Query("doctorId"),
			Page:      page,
			Limit:     limit,
		}

		role := c.GetString("role")
		var callerDoc *models.Doctor
		switch role {
		case models.RoleDoctor:
			callerDoc = callerDoctor(c, doctors)
			if callerDoc == nil {
				c.JSON(http.StatusForbidden, gin.H{"error": "No doctor profile for this account"})
				return
			}
			opts.DoctorID = callerDoc.ID
		case models.RolePatient:
			p := callerPatient(c, patients)
			if p == nil {
				c.JSON(http.StatusForbidden, gin.H{"error": "No patient profile for this account"})
				return
			}
			opts.PatientID = p.ID
		}

		records, total, err := svc.List(opts)
		if err != nil {
			logger.Error("Failed to list records", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list records"})
			return
		}

		records = filterConfidential(records, role, callerDoc)

		c.JSON(http.StatusOK, gin.H{
			"records":     records,
			"total":       total,
			"currentPage": page,
			"totalPages":  totalPages(total, limit),
		})
	}
}

// GetRecordHandler returns one medical record, enforcing ownership and
// confidentiality.
func GetRecordHandler(svc record.RecordService, patients patientRepo.PatientRepository, doctors doctorRepo.DoctorRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		logger := getLogger(c)

		rec, err := svc.GetByID(c.Param("id"))
		if err != nil {
			if errors.Is(err, record.ErrNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "Record not found"})
				return
			}
			logger.Error("Failed to get record", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve record"})
			return
		}

		if !canAccessRecord(c, rec, patients, doctors) {
			c.JSON(http.StatusForbidden, gin.H{"error": "Access denied"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"record": rec})
	}
}

// CreateRecordHandler writes a new medical record. Doctors author records
// under their own profile regardless of the submitted doctorId.
func CreateRecordHandler(svc record.RecordService, doctors doctorRepo.DoctorRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		logger := getLogger(c)

		var rec models.MedicalRecord
		if err := c.ShouldBindJSON(&rec); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
			return
		}
		if rec.PatientID == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "patientId is required"})
			return
		}

		if c.GetString("role") == models.RoleDoctor {
			doc := callerDoctor(c, doctors)
			if doc == nil {
				c.JSON(http.StatusForbidden, gin.H{"error": "No doctor profile for this account"})
				return
			}
			rec.DoctorID = doc.ID
		}
		if rec.DoctorID == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "doctorId is required"})
			return
		}

		created, err := svc.Create(&rec)
		if err != nil {
			if errors.Is(err, record.ErrPatientNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "Patient not found"})
				return
			}
			if errors.Is(err, record.ErrDoctorNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "Doctor not found"})
				return
			}
			logger.Error("Failed to create record", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create record"})
			return
		}

		c.JSON(http.StatusCreated, gin.H{"record": created})
	}
}

// UpdateRecordHandler edits a medical record. Doctors can only edit their
// own records.
func UpdateRecordHandler(svc record.RecordService, doctors doctorRepo.DoctorRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		logger := getLogger(c)

		existing, err := svc.GetByID(c.Param("id"))
		if err != nil {
			if errors.Is(err, record.ErrNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "Record not found"})
				return
			}
			logger.Error("Failed to get record", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve record"})
			return
		}
		if c.GetString("role") == models.RoleDoctor {
			doc := callerDoctor(c, doctors)
			if doc == nil || existing.DoctorID != doc.ID {
				c.JSON(http.StatusForbidden, gin.H{"error": "Access denied"})
				return
			}
		}

		var req record.UpdateRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
			return
		}

		updated, err := svc.Update(existing.ID, req)
		if err != nil {
			logger.Error("Failed to update record", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update record"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"record": updated})
	}
}

// DeleteRecordHandler removes a medical record.
func DeleteRecordHandler(svc record.RecordService) gin.HandlerFunc {
	return func(c *gin.Context) {
		logger := getLogger(c)

		if err := svc.Delete(c.Param("id")); err != nil {
			if errors.Is(err, record.ErrNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "Record not found"})
				return
			}
			logger.Error("Failed to delete record", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete record"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"message": "Record deleted"})
	}
}

// PatientRecordHistoryHandler returns a patient's records newest first.
func PatientRecordHistoryHandler(svc record.RecordService, patients patientRepo.PatientRepository, doctors doctorRepo.DoctorRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		logger := getLogger(c)

		p, err := patients.GetByID(c.Param("id"))
		if err == nil && p == nil {
			p, err = patients.GetByPatientID(c.Param("id"))
		}
		if err != nil {
			logger.Error("Failed to get patient", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve patient"})
			return
		}
		if p == nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Patient not found"})
			return
		}

		role := c.GetString("role")
		if role == models.RolePatient && p.PatientID != c.GetString("userID") {
			c.JSON(http.StatusForbidden, gin.H{"error": "Access denied"})
			return
		}
		var callerDoc *models.Doctor
		if role == models.RoleDoctor {
			callerDoc = callerDoctor(c, doctors)
		}

		limit, _ := strconv.ParseInt(c.DefaultQuery("limit", "50"), 10, 64)
		records, err := svc.PatientHistory(p.ID, limit)
		if err != nil {
			logger.Error("Failed to get patient history", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve history"})
			return
		}

		records = filterConfidential(records, role, callerDoc)
		c.JSON(http.StatusOK, gin.H{"records": records})
	}
}

// filterConfidential drops confidential records the caller may not see.
// Admins see everything; doctors see the ones they authored.
func filterConfidential(records []models.MedicalRecord, role string, callerDoc *models.Doctor) []models.MedicalRecord {
	if role == models.RoleAdmin {
		return records
	}
	out := records[:0]
	for _, rec := range records {
		if rec.IsConfidential {
			if role != models.RoleDoctor || callerDoc == nil || rec.DoctorID != callerDoc.ID {
				continue
			}
		}
		out = append(out, rec)
	}
	return out
}

// canAccessRecord enforces ownership plus confidentiality for single reads.
func canAccessRecord(c *gin.Context, rec *models.MedicalRecord, patients patientRepo.PatientRepository, doctors doctorRepo.DoctorRepository) bool {
	switch c.GetString("role") {
	case models.RoleAdmin:
		return true
	case models.RoleDoctor:
		doc := callerDoctor(c, doctors)
		return doc != nil && rec.DoctorID == doc.ID
	case models.RolePatient:
		if rec.IsConfidential {
			return false
		}
		p := callerPatient(c, patients)
		return p != nil && rec.PatientID == p.ID
	}
	return false
}
