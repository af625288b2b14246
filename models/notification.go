package models

// ReminderPayload is the job payload for a scheduled appointment reminder.
type ReminderPayload struct {
	BusinessID    string `json:"businessId"`
	AppointmentID string `json:"appointmentId"`
	Channel       string `json:"channel"` // "sms", "email" or "push"
	To            string `json:"to"`
	Subject       string `json:"subject,omitempty"`
	Message       string `json:"message"`
}

// ChurnPayload is the job payload for a churn snapshot run.
type ChurnPayload struct {
	BusinessID string `json:"businessId"`
	WindowDays int    `json:"windowDays"`
}

// SummarizePayload is the job payload for a review summarization run.
type SummarizePayload struct {
	BusinessID  string `json:"businessId"`
	PeriodStart string `json:"periodStart"` // RFC 3339
	PeriodEnd   string `json:"periodEnd"`   // RFC 3339
}
