package cron

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"medicore/config"
	"medicore/models"

	"github.com/hibiken/asynq"
)

// AsynqReminderScheduler enqueues appointment reminders on the Redis-backed
// task queue. Each task fires the configured lead time before the
// appointment starts; reschedules overwrite the pending task via its ID.
type AsynqReminderScheduler struct {
	client    *asynq.Client
	inspector *asynq.Inspector
}

// NewReminderScheduler builds a scheduler against the reminder queue DB.
func NewReminderScheduler() *AsynqReminderScheduler {
	redisOpts := asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisReminderQueueDB,
	}
	return &AsynqReminderScheduler{
		client:    asynq.NewClient(redisOpts),
		inspector: asynq.NewInspector(redisOpts),
	}
}

// Schedule enqueues a reminder for the appointment. Appointments starting
// too soon for the lead time get no reminder.
func (s *AsynqReminderScheduler) Schedule(appt *models.Appointment) error {
	start, _, ok := appt.Interval()
	if !ok {
		return fmt.Errorf("appointment %s has unparseable time %q", appt.ID, appt.Time)
	}

	lead := time.Duration(config.AppConfig.ReminderLeadMinutes) * time.Minute
	fireAt := start.Add(-lead)
	if fireAt.Before(time.Now()) {
		return nil
	}

	payload, err := json.Marshal(ReminderPayload{
		AppointmentID: appt.ID,
		PatientID:     appt.PatientID,
		DoctorID:      appt.DoctorID,
		StartsAt:      start,
	})
	if err != nil {
		return err
	}

	// Replace any reminder already queued for this appointment.
	_ = s.Cancel(appt.ID)

	task := asynq.NewTask(TypeReminderSend, payload)
	_, err = s.client.Enqueue(task, asynq.ProcessAt(fireAt), asynq.TaskID(reminderTaskID(appt.ID)))
	if err != nil {
		return fmt.Errorf("failed to enqueue reminder for %s: %w", appt.ID, err)
	}
	return nil
}

// Cancel drops the pending reminder for the appointment, if any.
func (s *AsynqReminderScheduler) Cancel(apptID string) error {
	err := s.inspector.DeleteTask("default", reminderTaskID(apptID))
	if err != nil && !errors.Is(err, asynq.ErrTaskNotFound) && !errors.Is(err, asynq.ErrQueueNotFound) {
		return err
	}
	return nil
}

// Close releases the queue connections.
func (s *AsynqReminderScheduler) Close() error {
	return s.client.Close()
}

func reminderTaskID(apptID string) string {
	return "reminder:" + apptID
}
