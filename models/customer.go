package models

import "time"

// Customer belongs to exactly one business.
type Customer struct {
	ID         string    `bson:"id" json:"id"`
	BusinessID string    `bson:"business_id" json:"businessId"`
	Name       string    `bson:"name" json:"name"`
	Email      string    `bson:"email,omitempty" json:"email,omitempty"`
	Phone      string    `bson:"phone,omitempty" json:"phone,omitempty"`
	Notes      string    `bson:"notes,omitempty" json:"notes,omitempty"`
	CreatedAt  time.Time `bson:"created_at" json:"createdAt"`
}

// ChurnSnapshot records which customers looked at-risk at a point in time.
type ChurnSnapshot struct {
	ID             string    `bson:"id" json:"id"`
	BusinessID     string    `bson:"business_id" json:"businessId"`
	AtRiskIDs      []string  `bson:"at_risk_ids" json:"atRiskIds"`
	TotalCustomers int       `bson:"total_customers" json:"totalCustomers"`
	WindowDays     int       `bson:"window_days" json:"windowDays"`
	TakenAt        time.Time `bson:"taken_at" json:"takenAt"`
}
