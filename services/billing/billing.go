package billing

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	subscriptionRepo "bookwise/database/repository/subscription"
	"bookwise/models"
	"bookwise/utils"

	"github.com/google/uuid"
	"github.com/stripe/stripe-go/v76"
	portalsession "github.com/stripe/stripe-go/v76/billingportal/session"
	checkoutsession "github.com/stripe/stripe-go/v76/checkout/session"
	stripesub "github.com/stripe/stripe-go/v76/subscription"
	"github.com/stripe/stripe-go/v76/webhook"
)

// ErrNoSubscription means the business has never gone through checkout.
var ErrNoSubscription = errors.New("no subscription for business")

// BillingService connects businesses to Stripe subscriptions. Local state is
// a mirror of Stripe's; webhooks are the source of truth for status changes.
type BillingService interface {
	StartCheckout(ctx context.Context, businessID, priceID, successURL, cancelURL string) (string, error)
	PortalURL(ctx context.Context, businessID string) (string, error)
	GetSubscription(ctx context.Context, businessID string) (*models.Subscription, error)
	HandleWebhook(ctx context.Context, payload []byte, signature string) error
}

// DefaultBillingService implements BillingService. It relies on stripe.Key
// having been set at process start.
type DefaultBillingService struct {
	Repo          subscriptionRepo.SubscriptionRepository
	WebhookSecret string
	PortalReturn  string
}

// StartCheckout opens a Stripe Checkout session for a subscription and
// returns the hosted payment page URL.
func (s *DefaultBillingService) StartCheckout(ctx context.Context, businessID, priceID, successURL, cancelURL string) (string, error) {
	params := &stripe.CheckoutSessionParams{
		Mode: stripe.String(string(stripe.CheckoutSessionModeSubscription)),
		LineItems: []*stripe.CheckoutSessionLineItemParams{
			{Price: stripe.String(priceID), Quantity: stripe.Int64(1)},
		},
		SuccessURL:        stripe.String(successURL),
		CancelURL:         stripe.String(cancelURL),
		ClientReferenceID: stripe.String(businessID),
	}
	params.Context = ctx

	sess, err := checkoutsession.New(params)
	if err != nil {
		return "", fmt.Errorf("create checkout session: %w", err)
	}
	return sess.URL, nil
}

// PortalURL opens a Stripe customer portal session so the business can manage
// its own payment method and plan.
func (s *DefaultBillingService) PortalURL(ctx context.Context, businessID string) (string, error) {
	sub, err := s.Repo.GetByBusiness(ctx, businessID)
	if err != nil {
		return "", fmt.Errorf("fetch subscription: %w", err)
	}
	if sub == nil {
		return "", ErrNoSubscription
	}

	params := &stripe.BillingPortalSessionParams{
		Customer:  stripe.String(sub.StripeCustomerID),
		ReturnURL: stripe.String(s.PortalReturn),
	}
	params.Context = ctx

	sess, err := portalsession.New(params)
	if err != nil {
		return "", fmt.Errorf("create portal session: %w", err)
	}
	return sess.URL, nil
}

func (s *DefaultBillingService) GetSubscription(ctx context.Context, businessID string) (*models.Subscription, error) {
	sub, err := s.Repo.GetByBusiness(ctx, businessID)
	if err != nil {
		return nil, fmt.Errorf("fetch subscription: %w", err)
	}
	if sub == nil {
		return nil, ErrNoSubscription
	}
	return sub, nil
}

// HandleWebhook verifies and applies one Stripe event. Signature verification
// is the only authentication on this path. Unhandled event types are ignored
// so Stripe does not retry them forever.
func (s *DefaultBillingService) HandleWebhook(ctx context.Context, payload []byte, signature string) error {
	event, err := webhook.ConstructEvent(payload, signature, s.WebhookSecret)
	if err != nil {
		return fmt.Errorf("verify webhook signature: %w", err)
	}

	logger := utils.GetLogger().Sugar()
	logger.Infow("Stripe event received", "eventID", event.ID, "type", event.Type)

	switch event.Type {
	case "checkout.session.completed":
		var sess stripe.CheckoutSession
		if err := json.Unmarshal(event.Data.Raw, &sess); err != nil {
			return fmt.Errorf("decode checkout session: %w", err)
		}
		return s.activateFromCheckout(ctx, &sess)

	case "customer.subscription.updated", "customer.subscription.deleted":
		var sub stripe.Subscription
		if err := json.Unmarshal(event.Data.Raw, &sub); err != nil {
			return fmt.Errorf("decode subscription: %w", err)
		}
		if err := s.Repo.UpdateStatusByStripeID(ctx, sub.ID, string(sub.Status)); err != nil {
			return fmt.Errorf("update subscription status: %w", err)
		}
		return nil

	default:
		return nil
	}
}

func (s *DefaultBillingService) activateFromCheckout(ctx context.Context, sess *stripe.CheckoutSession) error {
	if sess.ClientReferenceID == "" || sess.Subscription == nil || sess.Customer == nil {
		return fmt.Errorf("checkout session %s missing reference fields", sess.ID)
	}

	// The checkout payload carries IDs only; fetch the subscription for its
	// price and period.
	stripeSub, err := stripesub.Get(sess.Subscription.ID, nil)
	if err != nil {
		return fmt.Errorf("fetch stripe subscription: %w", err)
	}

	var priceID string
	if len(stripeSub.Items.Data) > 0 && stripeSub.Items.Data[0].Price != nil {
		priceID = stripeSub.Items.Data[0].Price.ID
	}

	now := time.Now()
	sub := &models.Subscription{
		ID:                   uuid.New().String(),
		BusinessID:           sess.ClientReferenceID,
		StripeCustomerID:     sess.Customer.ID,
		StripeSubscriptionID: stripeSub.ID,
		PriceID:              priceID,
		Status:               string(stripeSub.Status),
		CurrentPeriodEnd:     time.Unix(stripeSub.CurrentPeriodEnd, 0),
		CreatedAt:            now,
		UpdatedAt:            now,
	}
	if err := s.Repo.Upsert(ctx, sub); err != nil {
		return fmt.Errorf("store subscription: %w", err)
	}
	return nil
}
