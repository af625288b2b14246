package appointment

import (
	"context"
	"testing"
	"time"

	"bookwise/models"
	"bookwise/services/availability"
	"bookwise/services/tasks"

	"github.com/hibiken/asynq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeApptStore struct {
	appointments map[string]*models.Appointment
}

func newFakeApptStore() *fakeApptStore {
	return &fakeApptStore{appointments: make(map[string]*models.Appointment)}
}

func (f *fakeApptStore) Create(ctx context.Context, a *models.Appointment) error {
	cp := *a
	f.appointments[a.ID] = &cp
	return nil
}

func (f *fakeApptStore) GetByID(ctx context.Context, id string) (*models.Appointment, error) {
	appt, ok := f.appointments[id]
	if !ok {
		return nil, nil
	}
	cp := *appt
	return &cp, nil
}

func (f *fakeApptStore) Update(ctx context.Context, a *models.Appointment) error {
	cp := *a
	f.appointments[a.ID] = &cp
	return nil
}

func (f *fakeApptStore) UpdateStatus(ctx context.Context, businessID, id, status string) error {
	if appt, ok := f.appointments[id]; ok && appt.BusinessID == businessID {
		appt.Status = status
	}
	return nil
}

func (f *fakeApptStore) List(ctx context.Context, businessID string, rangeStart, rangeEnd *time.Time) ([]models.Appointment, error) {
	var out []models.Appointment
	for _, appt := range f.appointments {
		if appt.BusinessID == businessID {
			out = append(out, *appt)
		}
	}
	return out, nil
}

func (f *fakeApptStore) ListActiveInRange(ctx context.Context, businessID string, rangeStart, rangeEnd time.Time) ([]models.Appointment, error) {
	return nil, nil
}

func (f *fakeApptStore) ListActiveOverlapping(ctx context.Context, businessID string, start, end time.Time, excludeID string) ([]models.Appointment, error) {
	var out []models.Appointment
	for _, appt := range f.appointments {
		if appt.ID == excludeID || appt.BusinessID != businessID || !appt.IsActive() {
			continue
		}
		if availability.Overlaps(start, end, appt.StartTime, appt.EndTime) {
			out = append(out, *appt)
		}
	}
	return out, nil
}

func (f *fakeApptStore) CountByCustomerSince(ctx context.Context, businessID string, since time.Time) (map[string]int, error) {
	return nil, nil
}

type fakeCustomerStore struct {
	customers map[string]*models.Customer
}

func (f *fakeCustomerStore) Create(ctx context.Context, c *models.Customer) error { return nil }
func (f *fakeCustomerStore) GetByID(ctx context.Context, id string) (*models.Customer, error) {
	return f.customers[id], nil
}
func (f *fakeCustomerStore) GetByEmail(ctx context.Context, businessID, email string) (*models.Customer, error) {
	return nil, nil
}
func (f *fakeCustomerStore) List(ctx context.Context, businessID string) ([]models.Customer, error) {
	return nil, nil
}
func (f *fakeCustomerStore) SaveChurnSnapshot(ctx context.Context, s *models.ChurnSnapshot) error {
	return nil
}
func (f *fakeCustomerStore) LatestChurnSnapshot(ctx context.Context, businessID string) (*models.ChurnSnapshot, error) {
	return nil, nil
}

type fakeServiceStore struct {
	services map[string]*models.Service
}

func (f *fakeServiceStore) Create(ctx context.Context, s *models.Service) error { return nil }
func (f *fakeServiceStore) GetByID(ctx context.Context, id string) (*models.Service, error) {
	return f.services[id], nil
}
func (f *fakeServiceStore) Update(ctx context.Context, s *models.Service) error { return nil }
func (f *fakeServiceStore) List(ctx context.Context, businessID string) ([]models.Service, error) {
	return nil, nil
}
func (f *fakeServiceStore) ListActive(ctx context.Context, businessID string) ([]models.Service, error) {
	return nil, nil
}

type fakeStaffStore struct {
	staff map[string]*models.Staff
}

func (f *fakeStaffStore) Create(ctx context.Context, s *models.Staff) error { return nil }
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
	return nil
}
func (f *fakeStaffStore) ListWeeklyHours(ctx context.Context, staffIDs []string) ([]models.WeeklyHours, error) {
	return nil, nil
}
func (f *fakeStaffStore) AddTimeOff(ctx context.Context, to *models.TimeOff) error { return nil }
func (f *fakeStaffStore) DeleteTimeOff(ctx context.Context, staffID, timeOffID string) error {
	return nil
}
func (f *fakeStaffStore) ListTimeOff(ctx context.Context, staffIDs []string, rangeStart, rangeEnd time.Time) ([]models.TimeOff, error) {
	return nil, nil
}

type fakeEnqueuer struct {
	tasks []*asynq.Task
	opts  [][]asynq.Option
}

func (f *fakeEnqueuer) Enqueue(task *asynq.Task, opts ...asynq.Option) (*asynq.TaskInfo, error) {
	f.tasks = append(f.tasks, task)
	f.opts = append(f.opts, opts)
	return &asynq.TaskInfo{ID: "task-1"}, nil
}

type apptFixture struct {
	svc   *DefaultAppointmentService
	store *fakeApptStore
	jobs  *fakeEnqueuer
}

func newApptFixture() *apptFixture {
	store := newFakeApptStore()
	jobs := &fakeEnqueuer{}
	svc := &DefaultAppointmentService{
		Repo: store,
		Customers: &fakeCustomerStore{customers: map[string]*models.Customer{
			"cust": {ID: "cust", BusinessID: "biz", Name: "Pat", Phone: "+15550100"},
		}},
		Services: &fakeServiceStore{services: map[string]*models.Service{
			"cut": {ID: "cut", BusinessID: "biz", Name: "Haircut", DurationMinutes: 60},
		}},
		Staff: &fakeStaffStore{staff: map[string]*models.Staff{
			"anna": {ID: "anna", BusinessID: "biz", IsActive: true},
		}},
		Jobs: jobs,
		Now:  func() time.Time { return ts(0, 0) },
	}
	return &apptFixture{svc: svc, store: store, jobs: jobs}
}

func validInput() CreateAppointmentInput {
	return CreateAppointmentInput{
		CustomerID: "cust",
		ServiceID:  "cut",
		StaffID:    strPtr("anna"),
		StartTime:  ts(10, 0).AddDate(0, 0, 2),
		EndTime:    ts(11, 0).AddDate(0, 0, 2),
	}
}

func TestCreateAppointment(t *testing.T) {
	f := newApptFixture()

	appt, err := f.svc.Create(context.Background(), "biz", validInput())
	require.NoError(t, err)
	require.NotNil(t, appt)

	assert.NotEmpty(t, appt.ID)
	assert.Equal(t, models.AppointmentScheduled, appt.Status)
	assert.Equal(t, "biz", appt.BusinessID)
	require.Contains(t, f.store.appointments, appt.ID)

	// A reminder job goes out for a booking more than a day away, by SMS
	// since the customer has a phone number.
	require.Len(t, f.jobs.tasks, 1)
	assert.Equal(t, tasks.TypeSendReminder, f.jobs.tasks[0].Type())
}

func TestCreateAppointmentNoReminderWhenSoon(t *testing.T) {
	f := newApptFixture()
	input := validInput()
	input.StartTime = ts(10, 0)
	input.EndTime = ts(11, 0)

	_, err := f.svc.Create(context.Background(), "biz", input)
	require.NoError(t, err)
	assert.Empty(t, f.jobs.tasks, "no reminder for bookings under the lead window")
}

func TestCreateAppointmentConflict(t *testing.T) {
	f := newApptFixture()

	_, err := f.svc.Create(context.Background(), "biz", validInput())
	require.NoError(t, err)

	_, err = f.svc.Create(context.Background(), "biz", validInput())
	assert.ErrorIs(t, err, ErrSlotConflict)

	// Back to back with the existing booking is fine.
	input := validInput()
	input.StartTime = input.StartTime.Add(time.Hour)
	input.EndTime = input.EndTime.Add(time.Hour)
	_, err = f.svc.Create(context.Background(), "biz", input)
	assert.NoError(t, err)
}

func TestCreateAppointmentUnassignedStaffConflictsWithEveryone(t *testing.T) {
	f := newApptFixture()

	_, err := f.svc.Create(context.Background(), "biz", validInput())
	require.NoError(t, err)

	input := validInput()
	input.StaffID = nil
	_, err = f.svc.Create(context.Background(), "biz", input)
	assert.ErrorIs(t, err, ErrSlotConflict)
}

func TestCreateAppointmentTenantChecks(t *testing.T) {
	f := newApptFixture()

	input := validInput()
	input.CustomerID = "stranger"
	_, err := f.svc.Create(context.Background(), "biz", input)
	assert.ErrorIs(t, err, ErrCustomerNotFound)

	input = validInput()
	input.ServiceID = "nope"
	_, err = f.svc.Create(context.Background(), "biz", input)
	assert.ErrorIs(t, err, ErrServiceNotFound)

	input = validInput()
	input.StaffID = strPtr("ghost")
	_, err = f.svc.Create(context.Background(), "biz", input)
	assert.ErrorIs(t, err, ErrStaffNotFound)

	_, err = f.svc.Create(context.Background(), "other-biz", validInput())
	assert.ErrorIs(t, err, ErrCustomerNotFound, "references from another tenant do not resolve")
}

func TestCreateAppointmentInvalidInterval(t *testing.T) {
	f := newApptFixture()

	input := validInput()
	input.EndTime = input.StartTime
	_, err := f.svc.Create(context.Background(), "biz", input)
	assert.ErrorIs(t, err, ErrInvalidInterval)
}

func TestCancelAppointment(t *testing.T) {
	f := newApptFixture()

	appt, err := f.svc.Create(context.Background(), "biz", validInput())
	require.NoError(t, err)

	cancelled, err := f.svc.Cancel(context.Background(), "biz", appt.ID)
	require.NoError(t, err)
	assert.Equal(t, models.AppointmentCancelled, cancelled.Status)

	_, err = f.svc.Cancel(context.Background(), "biz", appt.ID)
	assert.ErrorIs(t, err, ErrAlreadyFinalized)

	// The slot frees up immediately.
	_, err = f.svc.Create(context.Background(), "biz", validInput())
	assert.NoError(t, err)
}

func TestCancelAppointmentWrongTenant(t *testing.T) {
	f := newApptFixture()

	appt, err := f.svc.Create(context.Background(), "biz", validInput())
	require.NoError(t, err)

	_, err = f.svc.Cancel(context.Background(), "other-biz", appt.ID)
	assert.ErrorIs(t, err, ErrAppointmentNotFound)
}

func TestUpdateStatusRejectsUnknownValue(t *testing.T) {
	f := newApptFixture()

	appt, err := f.svc.Create(context.Background(), "biz", validInput())
	require.NoError(t, err)

	_, err = f.svc.UpdateStatus(context.Background(), "biz", appt.ID, "postponed")
	assert.ErrorIs(t, err, ErrInvalidStatus)

	updated, err := f.svc.UpdateStatus(context.Background(), "biz", appt.ID, models.AppointmentConfirmed)
	require.NoError(t, err)
	assert.Equal(t, models.AppointmentConfirmed, updated.Status)
}

func TestRescheduleAppointment(t *testing.T) {
	f := newApptFixture()

	appt, err := f.svc.Create(context.Background(), "biz", validInput())
	require.NoError(t, err)

	// Moving onto an interval overlapping only itself must succeed.
	newStart := appt.StartTime.Add(30 * time.Minute)
	moved, err := f.svc.Reschedule(context.Background(), "biz", appt.ID, newStart, newStart.Add(time.Hour))
	require.NoError(t, err)
	assert.Equal(t, newStart, moved.StartTime)

	// Moving onto someone else's booking must not.
	other := validInput()
	other.StartTime = appt.StartTime.AddDate(0, 0, 1)
	other.EndTime = appt.EndTime.AddDate(0, 0, 1)
	blocked, err := f.svc.Create(context.Background(), "biz", other)
	require.NoError(t, err)

	_, err = f.svc.Reschedule(context.Background(), "biz", moved.ID, blocked.StartTime, blocked.EndTime)
	assert.ErrorIs(t, err, ErrSlotConflict)
}

func TestRescheduleFinalizedAppointment(t *testing.T) {
	f := newApptFixture()

	appt, err := f.svc.Create(context.Background(), "biz", validInput())
	require.NoError(t, err)
	_, err = f.svc.Cancel(context.Background(), "biz", appt.ID)
	require.NoError(t, err)

	_, err = f.svc.Reschedule(context.Background(), "biz", appt.ID,
		appt.StartTime.Add(time.Hour), appt.EndTime.Add(time.Hour))
	assert.ErrorIs(t, err, ErrAlreadyFinalized)
}
