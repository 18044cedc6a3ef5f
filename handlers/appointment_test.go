package handlers

import (
	"errors"
	"net/http"
	"testing"

	"medicore/services/appointment"

	"github.com/stretchr/testify/assert"
)

func TestBookingErrorStatus(t *testing.T) {
	tests := []struct {
		err  error
		want int
	}{
		{appointment.ErrTimeConflict, http.StatusBadRequest},
		{appointment.ErrDoctorUnavailable, http.StatusBadRequest},
		{appointment.ErrInvalidDuration, http.StatusBadRequest},
		{appointment.ErrPatientNotFound, http.StatusNotFound},
		{appointment.ErrDoctorNotFound, http.StatusNotFound},
		{appointment.ErrNotFound, http.StatusNotFound},
		{errors.New("mongo exploded"), http.StatusInternalServerError},
	}
	for _, tt := range tests {
		status, _ := bookingErrorStatus(tt.err)
		assert.Equal(t, tt.want, status, "status for %v", tt.err)
	}
}
