package models

import "time"

// Business is a tenant. Every other entity is owned by exactly one business
// and never crosses tenant boundaries.
type Business struct {
	ID        string    `bson:"id" json:"id"`
	Name      string    `bson:"name" json:"name"`
	Slug      string    `bson:"slug" json:"slug"`
	Email     string    `bson:"email,omitempty" json:"email,omitempty"`
	Phone     string    `bson:"phone,omitempty" json:"phone,omitempty"`
	Address   string    `bson:"address,omitempty" json:"address,omitempty"`
	Timezone  string    `bson:"timezone" json:"timezone"`
	CreatedAt time.Time `bson:"created_at" json:"createdAt"`
	UpdatedAt time.Time `bson:"updated_at" json:"updatedAt"`
}

// BusinessMember links an authenticated user to a business.
type BusinessMember struct {
	BusinessID string    `bson:"business_id" json:"businessId"`
	UserID     string    `bson:"user_id" json:"userId"`
	Role       string    `bson:"role" json:"role"`
	CreatedAt  time.Time `bson:"created_at" json:"createdAt"`
}
