package insight

import (
	"context"
	"fmt"
	"time"

	apptRepo "bookwise/database/repository/appointment"
	customerRepo "bookwise/database/repository/customer"
	"bookwise/models"
	"bookwise/utils"

	"github.com/google/uuid"
)

// DefaultChurnWindowDays is the lookback window when a snapshot job does not
// specify one.
const DefaultChurnWindowDays = 60

// InsightService computes retention signals from booking history.
type InsightService interface {
	// TakeChurnSnapshot records which customers have no active appointment in
	// the lookback window and returns the stored snapshot.
	TakeChurnSnapshot(ctx context.Context, businessID string, windowDays int) (*models.ChurnSnapshot, error)
	LatestChurnSnapshot(ctx context.Context, businessID string) (*models.ChurnSnapshot, error)
}

// DefaultInsightService implements InsightService.
type DefaultInsightService struct {
	Customers    customerRepo.CustomerRepository
	Appointments apptRepo.AppointmentRepository
	Now          func() time.Time
}

func (s *DefaultInsightService) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}

func (s *DefaultInsightService) TakeChurnSnapshot(ctx context.Context, businessID string, windowDays int) (*models.ChurnSnapshot, error) {
	if windowDays <= 0 {
		windowDays = DefaultChurnWindowDays
	}
	takenAt := s.now()
	since := takenAt.AddDate(0, 0, -windowDays)

	customers, err := s.Customers.List(ctx, businessID)
	if err != nil {
		return nil, fmt.Errorf("list customers: %w", err)
	}
	counts, err := s.Appointments.CountByCustomerSince(ctx, businessID, since)
	if err != nil {
		return nil, fmt.Errorf("count appointments: %w", err)
	}

	var atRisk []string
	for _, customer := range customers {
		if counts[customer.ID] == 0 {
			atRisk = append(atRisk, customer.ID)
		}
	}

	snapshot := &models.ChurnSnapshot{
		ID:             uuid.New().String(),
		BusinessID:     businessID,
		AtRiskIDs:      atRisk,
		TotalCustomers: len(customers),
		WindowDays:     windowDays,
		TakenAt:        takenAt,
	}
	if err := s.Customers.SaveChurnSnapshot(ctx, snapshot); err != nil {
		return nil, fmt.Errorf("save churn snapshot: %w", err)
	}

	utils.GetLogger().Sugar().Infow("Churn snapshot taken",
		"businessID", businessID, "atRisk", len(atRisk), "total", len(customers))
	return snapshot, nil
}

func (s *DefaultInsightService) LatestChurnSnapshot(ctx context.Context, businessID string) (*models.ChurnSnapshot, error) {
	return s.Customers.LatestChurnSnapshot(ctx, businessID)
}
