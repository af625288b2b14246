package cron

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"bookwise/config"
	apptRepo "bookwise/database/repository/appointment"
	"bookwise/models"
	"bookwise/services/insight"
	"bookwise/services/notification"
	"bookwise/services/review"
	"bookwise/services/tasks"
	"bookwise/utils"

	"github.com/go-redis/redis/v8"
	"github.com/hibiken/asynq"
	"go.uber.org/zap"
)

// WorkerDeps are the services the background worker executes jobs against.
// Everything arrives by injection; the worker owns no global state.
type WorkerDeps struct {
	Sender       notification.Sender
	Insights     insight.InsightService
	Reviews      review.ReviewService
	Appointments apptRepo.AppointmentRepository
}

// InitWorker runs the asynq worker in the background.
func InitWorker(deps WorkerDeps) {
	logger := utils.GetLogger().Sugar()

	redisOpts := asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisQueueDB,
	}

	srv := asynq.NewServer(
		redisOpts,
		asynq.Config{
			Concurrency: 10,
			Queues: map[string]int{
				"default": 1,
			},
		},
	)

	mux := asynq.NewServeMux()
	mux.HandleFunc(tasks.TypeSendReminder, handleReminderTask(deps.Sender, deps.Appointments))
	mux.HandleFunc(tasks.TypeChurnSnapshot, handleChurnTask(deps.Insights))
	mux.HandleFunc(tasks.TypeSummarizeReview, handleSummarizeTask(deps.Reviews))

	go monitorRedisConnection()

	go func() {
		logger.Info("Starting async worker")
		const maxAttempts = 5

		for attempts := 1; attempts <= maxAttempts; attempts++ {
			if err := srv.Run(mux); err != nil {
				logger.Errorw("Worker failed to start", "attempt", attempts, "maxAttempts", maxAttempts, zap.Error(err))
				if attempts == maxAttempts {
					logger.Fatal("Worker gave up after max retry attempts")
				}
				time.Sleep(time.Duration(attempts*2) * time.Second)
			} else {
				break
			}
		}
	}()
}

func handleReminderTask(sender notification.Sender, appointments apptRepo.AppointmentRepository) asynq.HandlerFunc {
	return func(ctx context.Context, task *asynq.Task) error {
		logger := utils.GetLogger().Sugar()

		var p models.ReminderPayload
		if err := json.Unmarshal(task.Payload(), &p); err != nil {
			logger.Errorw("Invalid reminder payload", zap.Error(err))
			return fmt.Errorf("%v: %w", err, asynq.SkipRetry)
		}

		// The appointment may have been cancelled between scheduling and now.
		appt, err := appointments.GetByID(ctx, p.AppointmentID)
		if err != nil {
			return fmt.Errorf("fetch appointment %s: %w", p.AppointmentID, err)
		}
		if appt == nil || !appt.IsActive() {
			logger.Infow("Skipping reminder for inactive appointment", "appointmentID", p.AppointmentID)
			return nil
		}

		switch p.Channel {
		case "email":
			err = sender.SendEmail(ctx, notification.EmailOptions{
				To:      p.To,
				Subject: p.Subject,
				Text:    p.Message,
			})
		default:
			err = sender.SendSMS(ctx, notification.SMSOptions{To: p.To, Message: p.Message})
		}
		if err != nil {
			logger.Errorw("Reminder delivery failed", "appointmentID", p.AppointmentID, "channel", p.Channel, zap.Error(err))
			return err
		}
		return nil
	}
}

func handleChurnTask(insights insight.InsightService) asynq.HandlerFunc {
	return func(ctx context.Context, task *asynq.Task) error {
		var p models.ChurnPayload
		if err := json.Unmarshal(task.Payload(), &p); err != nil {
			return fmt.Errorf("%v: %w", err, asynq.SkipRetry)
		}
		if _, err := insights.TakeChurnSnapshot(ctx, p.BusinessID, p.WindowDays); err != nil {
			return fmt.Errorf("churn snapshot for %s: %w", p.BusinessID, err)
		}
		return nil
	}
}

func handleSummarizeTask(reviews review.ReviewService) asynq.HandlerFunc {
	return func(ctx context.Context, task *asynq.Task) error {
		logger := utils.GetLogger().Sugar()

		var p models.SummarizePayload
		if err := json.Unmarshal(task.Payload(), &p); err != nil {
			return fmt.Errorf("%v: %w", err, asynq.SkipRetry)
		}
		periodStart, err := time.Parse(time.RFC3339, p.PeriodStart)
		if err != nil {
			return fmt.Errorf("invalid period start: %v: %w", err, asynq.SkipRetry)
		}
		periodEnd, err := time.Parse(time.RFC3339, p.PeriodEnd)
		if err != nil {
			return fmt.Errorf("invalid period end: %v: %w", err, asynq.SkipRetry)
		}

		if _, err := reviews.Summarize(ctx, p.BusinessID, periodStart, periodEnd); err != nil {
			if errors.Is(err, review.ErrNoReviews) {
				logger.Infow("No reviews to summarize", "businessID", p.BusinessID)
				return nil
			}
			return fmt.Errorf("summarize reviews for %s: %w", p.BusinessID, err)
		}
		return nil
	}
}

// monitorRedisConnection pings Redis periodically to detect failures at runtime.
func monitorRedisConnection() {
	logger := utils.GetLogger().Sugar()

	client := redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisQueueDB,
	})

	ctx := context.Background()

	for {
		if err := client.Ping(ctx).Err(); err != nil {
			logger.Warnw("Redis connection lost", zap.Error(err))
		}
		time.Sleep(10 * time.Second)
	}
}
