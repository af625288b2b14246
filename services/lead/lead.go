package lead

import (
	"context"
	"fmt"
	"time"

	businessRepo "bookwise/database/repository/business"
	leadRepo "bookwise/database/repository/lead"
	"bookwise/models"
	"bookwise/services/notification"
	"bookwise/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// LeadService captures marketing-site inquiries and alerts the business.
type LeadService interface {
	Capture(ctx context.Context, lead *models.Lead) error
	List(ctx context.Context, businessID string) ([]models.Lead, error)
}

// DefaultLeadService implements LeadService.
type DefaultLeadService struct {
	Repo       leadRepo.LeadRepository
	Businesses businessRepo.BusinessRepository
	Sender     notification.Sender
}

// Capture stores a lead from the public inquiry form. The new-lead alert to
// the business is best effort: a notification failure never loses the lead.
func (s *DefaultLeadService) Capture(ctx context.Context, lead *models.Lead) error {
	lead.ID = uuid.New().String()
	lead.CreatedAt = time.Now()
	if err := s.Repo.Create(ctx, lead); err != nil {
		return fmt.Errorf("capture lead: %w", err)
	}

	s.notifyBusiness(ctx, lead)
	return nil
}

func (s *DefaultLeadService) List(ctx context.Context, businessID string) ([]models.Lead, error) {
	return s.Repo.List(ctx, businessID)
}

func (s *DefaultLeadService) notifyBusiness(ctx context.Context, lead *models.Lead) {
	logger := utils.GetLogger().Sugar()

	business, err := s.Businesses.GetByID(ctx, lead.BusinessID)
	if err != nil || business == nil || business.Email == "" {
		logger.Warnw("Skipping new-lead alert", "leadID", lead.ID, "businessID", lead.BusinessID, zap.Error(err))
		return
	}

	body := fmt.Sprintf("New inquiry from %s", lead.Name)
	if lead.Email != "" {
		body += fmt.Sprintf(" <%s>", lead.Email)
	}
	if lead.Message != "" {
		body += "\n\n" + lead.Message
	}

	err = s.Sender.SendEmail(ctx, notification.EmailOptions{
		To:      business.Email,
		Subject: "New lead: " + lead.Name,
		Text:    body,
	})
	if err != nil {
		logger.Warnw("New-lead alert failed", "leadID", lead.ID, zap.Error(err))
	}
}
