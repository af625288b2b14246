package catalog

import (
	"context"
	"testing"
	"time"

	"bookwise/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeServiceStore struct {
	services map[string]*models.Service
}

func (f *fakeServiceStore) Create(ctx context.Context, s *models.Service) error {
	cp := *s
	f.services[s.ID] = &cp
	return nil
}
func (f *fakeServiceStore) GetByID(ctx context.Context, id string) (*models.Service, error) {
	return f.services[id], nil
}
func (f *fakeServiceStore) Update(ctx context.Context, s *models.Service) error {
	cp := *s
	f.services[s.ID] = &cp
	return nil
}
func (f *fakeServiceStore) List(ctx context.Context, businessID string) ([]models.Service, error) {
	return nil, nil
}
func (f *fakeServiceStore) ListActive(ctx context.Context, businessID string) ([]models.Service, error) {
	return nil, nil
}

type fakeStaffStore struct {
	staff map[string]*models.Staff
	hours map[string][]models.WeeklyHours
}

func (f *fakeStaffStore) Create(ctx context.Context, s *models.Staff) error {
	cp := *s
	f.staff[s.ID] = &cp
	return nil
}
func (f *fakeStaffStore) GetByID(ctx context.Context, id string) (*models.Staff, error) {
	return f.staff[id], nil
}
func (f *fakeStaffStore) Update(ctx context.Context, s *models.Staff) error { return nil }
func (f *fakeStaffStore) List(ctx context.Context, businessID string) ([]models.Staff, error) {
	return nil, nil
}
func (f *fakeStaffStore) ListActive(ctx context.Context, businessID string, staffID *string) ([]models.Staff, error) {
	return nil, nil
}
func (f *fakeStaffStore) SetWeeklyHours(ctx context.Context, staffID string, hours []models.WeeklyHours) error {
	f.hours[staffID] = hours
	return nil
}
func (f *fakeStaffStore) ListWeeklyHours(ctx context.Context, staffIDs []string) ([]models.WeeklyHours, error) {
	var out []models.WeeklyHours
	for _, id := range staffIDs {
		out = append(out, f.hours[id]...)
	}
	return out, nil
}
func (f *fakeStaffStore) AddTimeOff(ctx context.Context, to *models.TimeOff) error { return nil }
func (f *fakeStaffStore) DeleteTimeOff(ctx context.Context, staffID, timeOffID string) error {
	return nil
}
func (f *fakeStaffStore) ListTimeOff(ctx context.Context, staffIDs []string, rangeStart, rangeEnd time.Time) ([]models.TimeOff, error) {
	return nil, nil
}

func newCatalogFixture() (*DefaultCatalogService, *fakeStaffStore) {
	staff := &fakeStaffStore{
		staff: map[string]*models.Staff{
			"anna": {ID: "anna", BusinessID: "biz", IsActive: true},
		},
		hours: make(map[string][]models.WeeklyHours),
	}
	svc := &DefaultCatalogService{
		Services: &fakeServiceStore{services: make(map[string]*models.Service)},
		Staff:    staff,
	}
	return svc, staff
}

func TestCreateServiceAssignsIdentity(t *testing.T) {
	svc, _ := newCatalogFixture()

	service := &models.Service{BusinessID: "biz", Name: "Haircut", DurationMinutes: 45}
	require.NoError(t, svc.CreateService(context.Background(), service))

	assert.NotEmpty(t, service.ID)
	assert.True(t, service.IsActive)
	assert.False(t, service.CreatedAt.IsZero())
}

func TestCreateServiceRejectsNonPositiveDuration(t *testing.T) {
	svc, _ := newCatalogFixture()

	err := svc.CreateService(context.Background(), &models.Service{BusinessID: "biz", Name: "X"})
	assert.Error(t, err)
}

func TestUpdateServiceWrongTenant(t *testing.T) {
	svc, _ := newCatalogFixture()

	service := &models.Service{BusinessID: "biz", Name: "Haircut", DurationMinutes: 45}
	require.NoError(t, svc.CreateService(context.Background(), service))

	service.BusinessID = "other"
	err := svc.UpdateService(context.Background(), service)
	assert.ErrorIs(t, err, ErrServiceNotFound)
}

func TestSetWeeklyHours(t *testing.T) {
	svc, staff := newCatalogFixture()

	hours := []models.WeeklyHours{
		{StaffID: "anna", DayOfWeek: 1, StartTime: "09:00", EndTime: "17:00"},
		{StaffID: "anna", DayOfWeek: 2, StartTime: "10:00", EndTime: "18:00"},
	}
	require.NoError(t, svc.SetWeeklyHours(context.Background(), "biz", "anna", hours))
	assert.Len(t, staff.hours["anna"], 2)
}

func TestSetWeeklyHoursValidation(t *testing.T) {
	svc, _ := newCatalogFixture()
	ctx := context.Background()

	err := svc.SetWeeklyHours(ctx, "biz", "anna", []models.WeeklyHours{
		{StaffID: "anna", DayOfWeek: 7, StartTime: "09:00", EndTime: "17:00"},
	})
	assert.ErrorIs(t, err, ErrInvalidHours, "day of week out of range")

	err = svc.SetWeeklyHours(ctx, "biz", "anna", []models.WeeklyHours{
		{StaffID: "anna", DayOfWeek: 1, StartTime: "17:00", EndTime: "09:00"},
	})
	assert.ErrorIs(t, err, ErrInvalidHours, "start not before end")

	err = svc.SetWeeklyHours(ctx, "biz", "anna", []models.WeeklyHours{
		{StaffID: "anna", DayOfWeek: 1, StartTime: "09:00", EndTime: "12:00"},
		{StaffID: "anna", DayOfWeek: 1, StartTime: "13:00", EndTime: "17:00"},
	})
	assert.ErrorIs(t, err, ErrInvalidHours, "duplicate weekday")

	err = svc.SetWeeklyHours(ctx, "biz", "ghost", []models.WeeklyHours{
		{StaffID: "ghost", DayOfWeek: 1, StartTime: "09:00", EndTime: "17:00"},
	})
	assert.ErrorIs(t, err, ErrStaffNotFound)

	err = svc.SetWeeklyHours(ctx, "other-biz", "anna", nil)
	assert.ErrorIs(t, err, ErrStaffNotFound, "staff of another tenant")
}

func TestAddTimeOffValidation(t *testing.T) {
	svc, _ := newCatalogFixture()
	ctx := context.Background()

	start := time.Date(2026, 9, 7, 12, 0, 0, 0, time.UTC)
	err := svc.AddTimeOff(ctx, "biz", &models.TimeOff{StaffID: "anna", Start: start, End: start})
	assert.Error(t, err, "empty interval")

	timeOff := &models.TimeOff{StaffID: "anna", Start: start, End: start.Add(2 * time.Hour)}
	require.NoError(t, svc.AddTimeOff(ctx, "biz", timeOff))
	assert.NotEmpty(t, timeOff.ID)
}
