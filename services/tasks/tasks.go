package tasks

import (
	"encoding/json"
	"time"

	"bookwise/models"

	"github.com/hibiken/asynq"
)

// Task type names shared between enqueuers and the worker mux.
const (
	TypeSendReminder    = "reminder:send"
	TypeChurnSnapshot   = "churn:snapshot"
	TypeSummarizeReview = "review:summarize"
)

// NewReminderTask builds a reminder job scheduled for fireAt.
func NewReminderTask(payload models.ReminderPayload, fireAt time.Time) (*asynq.Task, []asynq.Option, error) {
	b, err := json.Marshal(payload)
	if err != nil {
		return nil, nil, err
	}
	task := asynq.NewTask(TypeSendReminder, b)
	opts := []asynq.Option{asynq.ProcessAt(fireAt)}

	return task, opts, nil
}

// NewChurnSnapshotTask builds an immediate churn analysis job.
func NewChurnSnapshotTask(payload models.ChurnPayload) (*asynq.Task, error) {
	b, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	return asynq.NewTask(TypeChurnSnapshot, b), nil
}

// NewSummarizeReviewTask builds an immediate review summarization job.
func NewSummarizeReviewTask(payload models.SummarizePayload) (*asynq.Task, error) {
	b, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	return asynq.NewTask(TypeSummarizeReview, b), nil
}
