package cron

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"agrirent/config"
	"agrirent/models"
	"agrirent/utils"

	"github.com/hibiken/asynq"
	"go.uber.org/zap"
)

const TypeBookingReminder = "booking:start_reminder"

// reminderLeadTime is how far before the rental window the reminder
// fires.
const reminderLeadTime = time.Hour

// ReminderPayload is the asynq task body for a booking start reminder.
type ReminderPayload struct {
	BookingID   string    `json:"bookingId"`
	EquipmentID string    `json:"equipmentId"`
	Beneficiary string    `json:"beneficiary"`
	OwnerID     string    `json:"ownerId"`
	StartDate   time.Time `json:"startDate"`
}

func reminderRedisOpts() asynq.RedisClientOpt {
	return asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisReminderQueueDB,
	}
}

// AsynqReminderScheduler enqueues start-of-rental reminders for
// confirmed bookings. It only ever emits notifications; booking state
// is never touched from the reminder path.
type AsynqReminderScheduler struct {
	client *asynq.Client
}

// NewAsynqReminderScheduler builds a scheduler over the reminder queue.
func NewAsynqReminderScheduler() *AsynqReminderScheduler {
	return &AsynqReminderScheduler{client: asynq.NewClient(reminderRedisOpts())}
}

// ScheduleStartReminder schedules a reminder shortly before the rental
// window opens. Bookings confirmed inside the lead window get the
// reminder immediately.
func (s *AsynqReminderScheduler) ScheduleStartReminder(ctx context.Context, booking *models.Booking) error {
	payload, err := json.Marshal(ReminderPayload{
		BookingID:   booking.ID,
		EquipmentID: booking.EquipmentID,
		Beneficiary: booking.Beneficiary,
		OwnerID:     booking.OwnerID,
		StartDate:   booking.StartDate,
	})
	if err != nil {
		return fmt.Errorf("failed to marshal reminder payload: %w", err)
	}

	fireAt := booking.StartDate.Add(-reminderLeadTime)
	if fireAt.Before(time.Now()) {
		fireAt = time.Now()
	}

	task := asynq.NewTask(TypeBookingReminder, payload)
	if _, err := s.client.EnqueueContext(ctx, task, asynq.ProcessAt(fireAt), asynq.MaxRetry(3)); err != nil {
		return fmt.Errorf("failed to enqueue reminder for booking %s: %w", booking.ID, err)
	}

	utils.GetLogger().Info("Scheduled booking start reminder",
		zap.String("bookingID", booking.ID),
		zap.Time("fireAt", fireAt))
	return nil
}

// Close releases the underlying queue client.
func (s *AsynqReminderScheduler) Close() error {
	return s.client.Close()
}

// InitReminderWorker runs the async reminder worker in the background.
func InitReminderWorker() {
	srv := asynq.NewServer(
		reminderRedisOpts(),
		asynq.Config{
			Concurrency: 10,
			Queues: map[string]int{
				"default": 1,
			},
		},
	)

	mux := asynq.NewServeMux()
	mux.HandleFunc(TypeBookingReminder, handleBookingReminder)

	go func() {
		logger := utils.GetLogger()
		logger.Info("Starting reminder worker")
		const maxAttempts = 5

		for attempts := 1; attempts <= maxAttempts; attempts++ {
			err := srv.Run(mux)
			if err == nil {
				return
			}
			logger.Error("Reminder worker failed to start",
				zap.Int("attempt", attempts),
				zap.Int("maxAttempts", maxAttempts),
				zap.Error(err))
			if attempts == maxAttempts {
				logger.Fatal("Reminder worker exhausted retries")
			}
			time.Sleep(time.Duration(attempts*2) * time.Second)
		}
	}()
}

func handleBookingReminder(ctx context.Context, task *asynq.Task) error {
	var p ReminderPayload
	if err := json.Unmarshal(task.Payload(), &p); err != nil {
		utils.GetLogger().Error("Invalid reminder payload", zap.Error(err))
		return err
	}

	// Delivery channels (SMS, push) hang off this log line; the worker
	// deliberately has no write access to bookings.
	utils.GetLogger().Info("Booking start reminder due",
		zap.String("bookingID", p.BookingID),
		zap.String("equipmentID", p.EquipmentID),
		zap.String("beneficiary", p.Beneficiary),
		zap.String("ownerID", p.OwnerID),
		zap.Time("startDate", p.StartDate))
	return nil
}
