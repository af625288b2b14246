package insight

import (
	"context"
	"testing"
	"time"

	"bookwise/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeCustomerStore struct {
	customers []models.Customer
	saved     *models.ChurnSnapshot
}

func (f *fakeCustomerStore) Create(ctx context.Context, c *models.Customer) error { return nil }
func (f *fakeCustomerStore) GetByID(ctx context.Context, id string) (*models.Customer, error) {
	return nil, nil
}
func (f *fakeCustomerStore) GetByEmail(ctx context.Context, businessID, email string) (*models.Customer, error) {
	return nil, nil
}
func (f *fakeCustomerStore) List(ctx context.Context, businessID string) ([]models.Customer, error) {
	return f.customers, nil
}
func (f *fakeCustomerStore) SaveChurnSnapshot(ctx context.Context, s *models.ChurnSnapshot) error {
	f.saved = s
	return nil
}
func (f *fakeCustomerStore) LatestChurnSnapshot(ctx context.Context, businessID string) (*models.ChurnSnapshot, error) {
	return f.saved, nil
}

type fakeApptCounter struct {
	counts map[string]int
	since  time.Time
}

func (f *fakeApptCounter) Create(ctx context.Context, a *models.Appointment) error { return nil }
func (f *fakeApptCounter) GetByID(ctx context.Context, id string) (*models.Appointment, error) {
	return nil, nil
}
func (f *fakeApptCounter) Update(ctx context.Context, a *models.Appointment) error { return nil }
func (f *fakeApptCounter) UpdateStatus(ctx context.Context, businessID, id, status string) error {
	return nil
}
func (f *fakeApptCounter) List(ctx context.Context, businessID string, rangeStart, rangeEnd *time.Time) ([]models.Appointment, error) {
	return nil, nil
}
func (f *fakeApptCounter) ListActiveInRange(ctx context.Context, businessID string, rangeStart, rangeEnd time.Time) ([]models.Appointment, error) {
	return nil, nil
}
func (f *fakeApptCounter) ListActiveOverlapping(ctx context.Context, businessID string, start, end time.Time, excludeID string) ([]models.Appointment, error) {
	return nil, nil
}
func (f *fakeApptCounter) CountByCustomerSince(ctx context.Context, businessID string, since time.Time) (map[string]int, error) {
	f.since = since
	return f.counts, nil
}

func TestTakeChurnSnapshot(t *testing.T) {
	now := time.Date(2026, 9, 7, 12, 0, 0, 0, time.UTC)
	customers := &fakeCustomerStore{customers: []models.Customer{
		{ID: "active", BusinessID: "biz"},
		{ID: "quiet", BusinessID: "biz"},
		{ID: "gone", BusinessID: "biz"},
	}}
	appts := &fakeApptCounter{counts: map[string]int{"active": 3}}

	svc := &DefaultInsightService{
		Customers:    customers,
		Appointments: appts,
		Now:          func() time.Time { return now },
	}

	snapshot, err := svc.TakeChurnSnapshot(context.Background(), "biz", 30)
	require.NoError(t, err)

	assert.ElementsMatch(t, []string{"quiet", "gone"}, snapshot.AtRiskIDs)
	assert.Equal(t, 3, snapshot.TotalCustomers)
	assert.Equal(t, 30, snapshot.WindowDays)
	assert.Equal(t, now.AddDate(0, 0, -30), appts.since)
	require.NotNil(t, customers.saved, "snapshot persisted")
}

func TestTakeChurnSnapshotDefaultWindow(t *testing.T) {
	svc := &DefaultInsightService{
		Customers:    &fakeCustomerStore{},
		Appointments: &fakeApptCounter{},
	}

	snapshot, err := svc.TakeChurnSnapshot(context.Background(), "biz", 0)
	require.NoError(t, err)
	assert.Equal(t, DefaultChurnWindowDays, snapshot.WindowDays)
	assert.Empty(t, snapshot.AtRiskIDs)
}
