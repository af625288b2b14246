package availability

import (
	"context"
	"errors"
	"testing"
	"time"

	"bookwise/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Monday in the fixture calendar.
var monday = time.Date(2026, 9, 7, 0, 0, 0, 0, time.UTC)

type fakeBusinessRepo struct {
	businesses map[string]*models.Business
}

func (f *fakeBusinessRepo) Create(ctx context.Context, b *models.Business) error  { return nil }
func (f *fakeBusinessRepo) GetByID(ctx context.Context, id string) (*models.Business, error) {
	return f.businesses[id], nil
}
func (f *fakeBusinessRepo) GetBySlug(ctx context.Context, slug string) (*models.Business, error) {
	return nil, nil
}
func (f *fakeBusinessRepo) Update(ctx context.Context, b *models.Business) error { return nil }
func (f *fakeBusinessRepo) ListForUser(ctx context.Context, userID string) ([]models.Business, error) {
	return nil, nil
}
func (f *fakeBusinessRepo) AddMember(ctx context.Context, m *models.BusinessMember) error {
	return nil
}
func (f *fakeBusinessRepo) IsMember(ctx context.Context, businessID, userID string) (bool, error) {
	return false, nil
}

type fakeServiceRepo struct {
	services map[string]*models.Service
	err      error
}

func (f *fakeServiceRepo) Create(ctx context.Context, s *models.Service) error { return nil }
func (f *fakeServiceRepo) GetByID(ctx context.Context, id string) (*models.Service, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.services[id], nil
}
func (f *fakeServiceRepo) Update(ctx context.Context, s *models.Service) error { return nil }
func (f *fakeServiceRepo) List(ctx context.Context, businessID string) ([]models.Service, error) {
	return nil, nil
}
func (f *fakeServiceRepo) ListActive(ctx context.Context, businessID string) ([]models.Service, error) {
	return nil, nil
}

type fakeStaffRepo struct {
	staff   []models.Staff
	hours   []models.WeeklyHours
	timeOff []models.TimeOff
	err     error
}

func (f *fakeStaffRepo) Create(ctx context.Context, s *models.Staff) error { return nil }
func (f *fakeStaffRepo) GetByID(ctx context.Context, id string) (*models.Staff, error) {
	return nil, nil
}
func (f *fakeStaffRepo) Update(ctx context.Context, s *models.Staff) error { return nil }
func (f *fakeStaffRepo) List(ctx context.Context, businessID string) ([]models.Staff, error) {
	return nil, nil
}
func (f *fakeStaffRepo) ListActive(ctx context.Context, businessID string, staffID *string) ([]models.Staff, error) {
	if f.err != nil {
		return nil, f.err
	}
	var out []models.Staff
	for _, member := range f.staff {
		if member.BusinessID != businessID || !member.IsActive {
			continue
		}
		if staffID != nil && member.ID != *staffID {
			continue
		}
		out = append(out, member)
	}
	return out, nil
}
func (f *fakeStaffRepo) SetWeeklyHours(ctx context.Context, staffID string, hours []models.WeeklyHours) error {
	return nil
}
func (f *fakeStaffRepo) ListWeeklyHours(ctx context.Context, staffIDs []string) ([]models.WeeklyHours, error) {
	want := make(map[string]bool, len(staffIDs))
	for _, id := range staffIDs {
		want[id] = true
	}
	var out []models.WeeklyHours
	for _, h := range f.hours {
		if want[h.StaffID] {
			out = append(out, h)
		}
	}
	return out, nil
}
func (f *fakeStaffRepo) AddTimeOff(ctx context.Context, to *models.TimeOff) error { return nil }
func (f *fakeStaffRepo) DeleteTimeOff(ctx context.Context, staffID, timeOffID string) error {
	return nil
}
func (f *fakeStaffRepo) ListTimeOff(ctx context.Context, staffIDs []string, rangeStart, rangeEnd time.Time) ([]models.TimeOff, error) {
	return f.timeOff, nil
}

type fakeApptRepo struct {
	appointments []models.Appointment
}

func (f *fakeApptRepo) Create(ctx context.Context, a *models.Appointment) error { return nil }
func (f *fakeApptRepo) GetByID(ctx context.Context, id string) (*models.Appointment, error) {
	return nil, nil
}
func (f *fakeApptRepo) Update(ctx context.Context, a *models.Appointment) error { return nil }
func (f *fakeApptRepo) UpdateStatus(ctx context.Context, businessID, id, status string) error {
	return nil
}
func (f *fakeApptRepo) List(ctx context.Context, businessID string, rangeStart, rangeEnd *time.Time) ([]models.Appointment, error) {
	return nil, nil
}
func (f *fakeApptRepo) ListActiveInRange(ctx context.Context, businessID string, rangeStart, rangeEnd time.Time) ([]models.Appointment, error) {
	var out []models.Appointment
	for _, appt := range f.appointments {
		if appt.BusinessID == businessID && appt.IsActive() &&
			Overlaps(appt.StartTime, appt.EndTime, rangeStart, rangeEnd) {
			out = append(out, appt)
		}
	}
	return out, nil
}
func (f *fakeApptRepo) ListActiveOverlapping(ctx context.Context, businessID string, start, end time.Time, excludeID string) ([]models.Appointment, error) {
	return nil, nil
}
func (f *fakeApptRepo) CountByCustomerSince(ctx context.Context, businessID string, since time.Time) (map[string]int, error) {
	return nil, nil
}

type solverFixture struct {
	svc      *DefaultAvailabilityService
	staff    *fakeStaffRepo
	appts    *fakeApptRepo
	services *fakeServiceRepo
}

// newSolverFixture builds a one-business world: a 60 minute service and two
// staff working Monday 09:00-17:00 UTC. Now is pinned a week before the
// fixture Monday so lead time never interferes unless a test moves it.
func newSolverFixture() *solverFixture {
	businesses := &fakeBusinessRepo{businesses: map[string]*models.Business{
		"biz": {ID: "biz", Name: "Shear Genius", Timezone: "UTC"},
	}}
	services := &fakeServiceRepo{services: map[string]*models.Service{
		"cut": {ID: "cut", BusinessID: "biz", Name: "Haircut", DurationMinutes: 60, IsActive: true},
	}}
	staff := &fakeStaffRepo{
		staff: []models.Staff{
			{ID: "anna", BusinessID: "biz", IsActive: true},
			{ID: "ben", BusinessID: "biz", IsActive: true},
		},
		hours: []models.WeeklyHours{
			{StaffID: "anna", DayOfWeek: 1, StartTime: "09:00", EndTime: "17:00"},
			{StaffID: "ben", DayOfWeek: 1, StartTime: "09:00", EndTime: "17:00"},
		},
	}
	appts := &fakeApptRepo{}

	svc := &DefaultAvailabilityService{
		Businesses:   businesses,
		Services:     services,
		Staff:        staff,
		Appointments: appts,
		Now:          func() time.Time { return monday.AddDate(0, 0, -7) },
	}
	return &solverFixture{svc: svc, staff: staff, appts: appts, services: services}
}

func mondayRequest() models.AvailabilityRequest {
	return models.AvailabilityRequest{
		BusinessID: "biz",
		ServiceID:  "cut",
		StartDate:  monday,
		EndDate:    monday.Add(24*time.Hour - time.Second),
	}
}

func startsFor(slots []models.TimeSlot, staffID string) []time.Time {
	var out []time.Time
	for _, s := range slots {
		if s.StaffID != nil && *s.StaffID == staffID {
			out = append(out, s.Start)
		}
	}
	return out
}

func TestCalculateAvailabilityFullDay(t *testing.T) {
	f := newSolverFixture()

	slots, err := f.svc.CalculateAvailability(context.Background(), mondayRequest())
	require.NoError(t, err)

	// 09:00 through 16:00 on the 15 minute grid, per staff member.
	anna := startsFor(slots, "anna")
	require.Len(t, anna, 29)
	assert.Equal(t, monday.Add(9*time.Hour), anna[0])
	assert.Equal(t, monday.Add(16*time.Hour), anna[28])
	assert.Len(t, startsFor(slots, "ben"), 29)

	for _, slot := range slots {
		assert.Equal(t, slot.Start.Add(time.Hour), slot.End)
	}
}

func TestCalculateAvailabilitySortedByStartThenStaff(t *testing.T) {
	f := newSolverFixture()

	slots, err := f.svc.CalculateAvailability(context.Background(), mondayRequest())
	require.NoError(t, err)
	require.NotEmpty(t, slots)

	for i := 1; i < len(slots); i++ {
		prev, cur := slots[i-1], slots[i]
		if prev.Start.Equal(cur.Start) {
			assert.Less(t, *prev.StaffID, *cur.StaffID)
		} else {
			assert.True(t, prev.Start.Before(cur.Start))
		}
	}
}

func TestCalculateAvailabilityExcludesBookedSlots(t *testing.T) {
	f := newSolverFixture()
	f.appts.appointments = []models.Appointment{{
		ID: "a1", BusinessID: "biz", StaffID: strPtr("anna"),
		StartTime: monday.Add(10 * time.Hour), EndTime: monday.Add(11 * time.Hour),
		Status: models.AppointmentConfirmed,
	}}

	slots, err := f.svc.CalculateAvailability(context.Background(), mondayRequest())
	require.NoError(t, err)

	anna := startsFor(slots, "anna")
	assert.Contains(t, anna, monday.Add(9*time.Hour), "slot ending at appointment start survives")
	assert.Contains(t, anna, monday.Add(11*time.Hour), "slot starting at appointment end survives")
	assert.NotContains(t, anna, monday.Add(10*time.Hour))
	assert.NotContains(t, anna, monday.Add(9*time.Hour+15*time.Minute), "overlapping tail removed")
	assert.Len(t, startsFor(slots, "ben"), 29, "other staff unaffected")
}

func TestCalculateAvailabilityUnassignedAppointmentBlocksAllStaff(t *testing.T) {
	f := newSolverFixture()
	f.appts.appointments = []models.Appointment{{
		ID: "a1", BusinessID: "biz", StaffID: nil,
		StartTime: monday.Add(10 * time.Hour), EndTime: monday.Add(11 * time.Hour),
		Status: models.AppointmentScheduled,
	}}

	slots, err := f.svc.CalculateAvailability(context.Background(), mondayRequest())
	require.NoError(t, err)

	assert.NotContains(t, startsFor(slots, "anna"), monday.Add(10*time.Hour))
	assert.NotContains(t, startsFor(slots, "ben"), monday.Add(10*time.Hour))
}

func TestCalculateAvailabilityIgnoresCancelledAppointments(t *testing.T) {
	f := newSolverFixture()
	f.appts.appointments = []models.Appointment{{
		ID: "a1", BusinessID: "biz", StaffID: strPtr("anna"),
		StartTime: monday.Add(10 * time.Hour), EndTime: monday.Add(11 * time.Hour),
		Status: models.AppointmentCancelled,
	}}

	slots, err := f.svc.CalculateAvailability(context.Background(), mondayRequest())
	require.NoError(t, err)
	assert.Contains(t, startsFor(slots, "anna"), monday.Add(10*time.Hour))
}

func TestCalculateAvailabilityTimeOff(t *testing.T) {
	f := newSolverFixture()
	f.staff.timeOff = []models.TimeOff{{
		StaffID: "anna",
		Start:   monday.Add(12 * time.Hour),
		End:     monday.Add(14 * time.Hour),
	}}

	slots, err := f.svc.CalculateAvailability(context.Background(), mondayRequest())
	require.NoError(t, err)

	anna := startsFor(slots, "anna")
	assert.NotContains(t, anna, monday.Add(12*time.Hour))
	assert.NotContains(t, anna, monday.Add(13*time.Hour+15*time.Minute))
	assert.Contains(t, anna, monday.Add(11*time.Hour), "slot ending at time-off start survives")
	assert.Contains(t, anna, monday.Add(14*time.Hour), "slot starting at time-off end survives")
	assert.Contains(t, startsFor(slots, "ben"), monday.Add(12*time.Hour))
}

func TestCalculateAvailabilityLeadTime(t *testing.T) {
	f := newSolverFixture()
	f.svc.Now = func() time.Time { return monday.Add(8*time.Hour + 30*time.Minute) }

	slots, err := f.svc.CalculateAvailability(context.Background(), mondayRequest())
	require.NoError(t, err)
	require.NotEmpty(t, slots)

	assert.Equal(t, monday.Add(9*time.Hour+30*time.Minute), slots[0].Start,
		"nothing inside the one hour lead window")
}

func TestCalculateAvailabilityStaffFilter(t *testing.T) {
	f := newSolverFixture()
	req := mondayRequest()
	req.StaffID = strPtr("ben")

	slots, err := f.svc.CalculateAvailability(context.Background(), req)
	require.NoError(t, err)
	require.NotEmpty(t, slots)
	assert.Empty(t, startsFor(slots, "anna"))
	assert.Len(t, startsFor(slots, "ben"), 29)
}

func TestCalculateAvailabilityFailSoftLookups(t *testing.T) {
	f := newSolverFixture()

	req := mondayRequest()
	req.ServiceID = "nope"
	slots, err := f.svc.CalculateAvailability(context.Background(), req)
	require.NoError(t, err)
	assert.Empty(t, slots, "unknown service")

	req = mondayRequest()
	req.BusinessID = "ghost"
	slots, err = f.svc.CalculateAvailability(context.Background(), req)
	require.NoError(t, err)
	assert.Empty(t, slots, "unknown business")

	f.services.services["other"] = &models.Service{ID: "other", BusinessID: "someone-else", DurationMinutes: 30}
	req = mondayRequest()
	req.ServiceID = "other"
	slots, err = f.svc.CalculateAvailability(context.Background(), req)
	require.NoError(t, err)
	assert.Empty(t, slots, "service of another business")

	f.staff.staff = nil
	slots, err = f.svc.CalculateAvailability(context.Background(), mondayRequest())
	require.NoError(t, err)
	assert.Empty(t, slots, "no active staff")
}

func TestCalculateAvailabilityWindowValidation(t *testing.T) {
	f := newSolverFixture()

	req := mondayRequest()
	req.EndDate = req.StartDate.Add(-time.Hour)
	_, err := f.svc.CalculateAvailability(context.Background(), req)
	assert.ErrorIs(t, err, ErrInvalidRange)

	req = mondayRequest()
	req.EndDate = req.StartDate.AddDate(0, 0, 91)
	_, err = f.svc.CalculateAvailability(context.Background(), req)
	assert.ErrorIs(t, err, ErrWindowTooLarge)
}

func TestCalculateAvailabilityStoreErrorPropagates(t *testing.T) {
	f := newSolverFixture()
	f.staff.err = errors.New("connection reset")

	_, err := f.svc.CalculateAvailability(context.Background(), mondayRequest())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "connection reset")
}

func TestCalculateAvailabilitySkipsMalformedHours(t *testing.T) {
	f := newSolverFixture()
	f.staff.hours = append(f.staff.hours, models.WeeklyHours{
		StaffID: "anna", DayOfWeek: 1, StartTime: "25:00", EndTime: "26:00",
	})

	slots, err := f.svc.CalculateAvailability(context.Background(), mondayRequest())
	require.NoError(t, err)
	assert.Len(t, startsFor(slots, "anna"), 29, "bad row skipped, good row kept")
}

func TestCalculateAvailabilityBusinessTimezone(t *testing.T) {
	f := newSolverFixture()
	f.svc.Businesses = &fakeBusinessRepo{businesses: map[string]*models.Business{
		"biz": {ID: "biz", Timezone: "America/New_York"},
	}}
	f.staff.hours = []models.WeeklyHours{
		{StaffID: "anna", DayOfWeek: 1, StartTime: "09:00", EndTime: "12:00"},
	}
	f.staff.staff = f.staff.staff[:1]

	slots, err := f.svc.CalculateAvailability(context.Background(), mondayRequest())
	require.NoError(t, err)
	require.NotEmpty(t, slots)

	// 09:00 Monday in New York is 13:00 UTC during daylight saving.
	assert.Equal(t, monday.Add(13*time.Hour), slots[0].Start.UTC())
}

func TestCalculateAvailabilityInvalidTimezone(t *testing.T) {
	f := newSolverFixture()
	f.svc.Businesses = &fakeBusinessRepo{businesses: map[string]*models.Business{
		"biz": {ID: "biz", Timezone: "Mars/Olympus_Mons"},
	}}

	_, err := f.svc.CalculateAvailability(context.Background(), mondayRequest())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "timezone")
}

func TestCalculateAvailabilityMultiDayWindow(t *testing.T) {
	f := newSolverFixture()
	req := mondayRequest()
	req.EndDate = monday.AddDate(0, 0, 7) // includes the following Monday

	slots, err := f.svc.CalculateAvailability(context.Background(), req)
	require.NoError(t, err)

	anna := startsFor(slots, "anna")
	assert.Len(t, anna, 58, "two Mondays of slots, nothing on other weekdays")
	assert.Contains(t, anna, monday.AddDate(0, 0, 7).Add(9*time.Hour))
}
