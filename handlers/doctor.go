package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	doctorRepo "medicore/database/repository/doctor"
	"medicore/models"
	"medicore/services/doctor"
	"medicore/services/scheduling"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ListDoctorsHandler returns a paginated doctor listing.
func ListDoctorsHandler(svc doctor.DoctorService) gin.HandlerFunc {
	return func(c *gin.Context) {
		logger := getLogger(c)

		page, limit := parsePagination(c)
		opts := doctorRepo.ListOptions{
			Search:         c.Query("search"),
			Specialization: c.Query("specialization"),
			Page:           page,
			Limit:          limit,
			SortBy:         c.DefaultQuery("sortBy", "createdAt"),
			SortOrder:      c.DefaultQuery("sortOrder", "desc"),
		}

		doctors, total, err := svc.List(opts)
		if err != nil {
			logger.Error("Failed to list doctors", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list doctors"})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"doctors":     doctors,
			"total":       total,
			"currentPage": page,
			"totalPages":  totalPages(total, limit),
		})
	}
}

// GetDoctorHandler returns one doctor profile.
func GetDoctorHandler(svc doctor.DoctorService) gin.HandlerFunc {
	return func(c *gin.Context) {
		logger := getLogger(c)

		d, err := svc.GetByID(c.Param("id"))
		if err != nil {
			if errors.Is(err, doctor.ErrNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "Doctor not found"})
				return
			}
			logger.Error("Failed to get doctor", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve doctor"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"doctor": d})
	}
}

// CreateDoctorHandler registers a new doctor profile.
func CreateDoctorHandler(svc doctor.DoctorService) gin.HandlerFunc {
	return func(c *gin.Context) {
		logger := getLogger(c)

		var d models.Doctor
		if err := c.ShouldBindJSON(&d); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
			return
		}
		if d.Name == "" || d.Specialization == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Name and specialization are required"})
			return
		}

		created, err := svc.Create(&d)
		if err != nil {
			logger.Error("Failed to create doctor", zap.Error(err))
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		c.JSON(http.StatusCreated, gin.H{"doctor": created})
	}
}

// UpdateDoctorHandler edits a doctor profile. Doctors can only edit their
// own.
func UpdateDoctorHandler(svc doctor.DoctorService) gin.HandlerFunc {
	return func(c *gin.Context) {
		logger := getLogger(c)

		existing, err := svc.GetByID(c.Param("id"))
		if err != nil {
			if errors.Is(err, doctor.ErrNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "Doctor not found"})
				return
			}
			logger.Error("Failed to get doctor", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve doctor"})
			return
		}
		if !canEditDoctor(c, existing) {
			c.JSON(http.StatusForbidden, gin.H{"error": "Access denied"})
			return
		}

		var req doctor.UpdateRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
			return
		}

		updated, err := svc.Update(existing.ID, req)
		if err != nil {
			logger.Error("Failed to update doctor", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update doctor"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"doctor": updated})
	}
}

// DeleteDoctorHandler soft-deletes a doctor.
func DeleteDoctorHandler(svc doctor.DoctorService) gin.HandlerFunc {
	return func(c *gin.Context) {
		logger := getLogger(c)

		if err := svc.Delete(c.Param("id")); err != nil {
			if errors.Is(err, doctor.ErrNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "Doctor not found"})
				return
			}
			logger.Error("Failed to delete doctor", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete doctor"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"message": "Doctor deactivated"})
	}
}

// GetDoctorScheduleHandler returns the availability aggregate.
func GetDoctorScheduleHandler(svc doctor.DoctorService) gin.HandlerFunc {
	return func(c *gin.Context) {
		logger := getLogger(c)

		schedule, err := svc.GetSchedule(c.Param("id"))
		if err != nil {
			if errors.Is(err, doctor.ErrNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "Doctor not found"})
				return
			}
			logger.Error("Failed to get schedule", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve schedule"})
			return
		}

		c.JSON(http.StatusOK, schedule)
	}
}

// UpdateDoctorScheduleHandler replaces the availability aggregate. Doctors
// can only edit their own.
func UpdateDoctorScheduleHandler(svc doctor.DoctorService) gin.HandlerFunc {
	return func(c *gin.Context) {
		logger := getLogger(c)

		existing, err := svc.GetByID(c.Param("id"))
		if err != nil {
			if errors.Is(err, doctor.ErrNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "Doctor not found"})
				return
			}
			logger.Error("Failed to get doctor", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve doctor"})
			return
		}
		if !canEditDoctor(c, existing) {
			c.JSON(http.StatusForbidden, gin.H{"error": "Access denied"})
			return
		}

		var req struct {
			Availability *models.DoctorAvailability `json:"availability" binding:"required"`
		}
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
			return
		}

		schedule, err := svc.UpdateSchedule(existing.ID, *req.Availability)
		if err != nil {
			logger.Error("Failed to update schedule", zap.Error(err))
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		c.JSON(http.StatusOK, schedule)
	}
}

// CheckDoctorAvailabilityHandler answers whether a doctor can take a booking
// at the given date, time and duration. Both verdicts are reported so the
// front end can tell "off schedule" apart from "slot taken".
func CheckDoctorAvailabilityHandler(svc doctor.DoctorService, conflicts scheduling.ConflictChecker) gin.HandlerFunc {
	return func(c *gin.Context) {
		logger := getLogger(c)

		d, err := svc.GetByID(c.Param("id"))
		if err != nil {
			if errors.Is(err, doctor.ErrNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "Doctor not found"})
				return
			}
			logger.Error("Failed to get doctor", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve doctor"})
			return
		}

		date, err := time.Parse("2006-01-02", c.Query("date"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid or missing date, expected YYYY-MM-DD"})
			return
		}
		clock := c.Query("time")
		if _, ok := models.MinuteOfDay(clock); !ok {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid or missing time, expected HH:MM"})
			return
		}
		duration := 30
		if v := c.Query("duration"); v != "" {
			parsed, err := strconv.Atoi(v)
			if err != nil || parsed < models.MinAppointmentDuration || parsed > models.MaxAppointmentDuration {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid duration"})
				return
			}
			duration = parsed
		}

		available := d.IsAvailable(date, clock)
		conflict := false
		if available {
			conflict, err = conflicts.HasConflict(d.ID, date, clock, duration, "")
			if err != nil {
				logger.Error("Failed to check conflicts", zap.Error(err))
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to check availability"})
				return
			}
		}

		c.JSON(http.StatusOK, gin.H{
			"available":  available && !conflict,
			"onSchedule": available,
			"conflict":   conflict,
		})
	}
}

// canEditDoctor applies the write rules: admins edit anyone, doctors only
// themselves.
func canEditDoctor(c *gin.Context, d *models.Doctor) bool {
	switch c.GetString("role") {
	case models.RoleAdmin:
		return true
	case models.RoleDoctor:
		return d.DoctorID == c.GetString("userID")
	}
	return false
}
