package handlers

import (
	businessRepo "bookwise/database/repository/business"
	"bookwise/services/appointment"
	"bookwise/services/availability"
	"bookwise/services/billing"
	"bookwise/services/business"
	"bookwise/services/catalog"
	"bookwise/services/customer"
	"bookwise/services/insight"
	"bookwise/services/intelligence"
	"bookwise/services/lead"
	"bookwise/services/review"
)

// HandlerBundle groups all endpoint handlers around their injected services.
type HandlerBundle struct {
	// BusinessRepo backs the tenant middleware's membership checks.
	BusinessRepo businessRepo.BusinessRepository

	BusinessSvc     business.BusinessService
	CatalogSvc      catalog.CatalogService
	CustomerSvc     customer.CustomerService
	LeadSvc         lead.LeadService
	AppointmentSvc  appointment.AppointmentService
	AvailabilitySvc availability.AvailabilityService
	AssistantSvc    intelligence.AssistantService
	BillingSvc      billing.BillingService
	ReviewSvc       review.ReviewService
	InsightSvc      insight.InsightService
	Jobs            appointment.JobEnqueuer
}
