package models

import "time"

// Staff is a bookable worker of a business.
type Staff struct {
	ID         string    `bson:"id" json:"id"`
	BusinessID string    `bson:"business_id" json:"businessId"`
	Name       string    `bson:"name" json:"name"`
	Email      string    `bson:"email,omitempty" json:"email,omitempty"`
	IsActive   bool      `bson:"is_active" json:"isActive"`
	CreatedAt  time.Time `bson:"created_at" json:"createdAt"`
}

// WeeklyHours is the recurring weekly shift template for one staff member.
// At most one shift per staff per weekday; times are local to the business
// timezone in "HH:MM" form.
type WeeklyHours struct {
	StaffID   string `bson:"staff_id" json:"staffId"`
	DayOfWeek int    `bson:"day_of_week" json:"dayOfWeek"` // 0 = Sunday .. 6 = Saturday
	StartTime string `bson:"start_time" json:"startTime"`
	EndTime   string `bson:"end_time" json:"endTime"`
}

// TimeOff is an absolute-time exception interval that overrides WeeklyHours.
type TimeOff struct {
	ID      string    `bson:"id" json:"id"`
	StaffID string    `bson:"staff_id" json:"staffId"`
	Start   time.Time `bson:"start_time" json:"start"`
	End     time.Time `bson:"end_time" json:"end"`
	Reason  string    `bson:"reason,omitempty" json:"reason,omitempty"`
}
