package appointment

import (
	"context"
	"time"

	apptRepo "bookwise/database/repository/appointment"
	businessRepo "bookwise/database/repository/business"
	customerRepo "bookwise/database/repository/customer"
	serviceRepo "bookwise/database/repository/service"
	staffRepo "bookwise/database/repository/staff"
	"bookwise/models"

	"github.com/hibiken/asynq"
)

// CreateAppointmentInput is the booking API's create payload after validation.
type CreateAppointmentInput struct {
	CustomerID string
	ServiceID  string
	StaffID    *string
	StartTime  time.Time
	EndTime    time.Time
	Notes      string
}

// AppointmentService manages committed bookings. Every mutation re-validates
// conflicts at write time; browsing availability never reserves anything.
type AppointmentService interface {
	Create(ctx context.Context, businessID string, input CreateAppointmentInput) (*models.Appointment, error)
	GetByID(ctx context.Context, businessID, appointmentID string) (*models.Appointment, error)
	List(ctx context.Context, businessID string, rangeStart, rangeEnd *time.Time) ([]models.Appointment, error)
	UpdateStatus(ctx context.Context, businessID, appointmentID, status string) (*models.Appointment, error)
	Cancel(ctx context.Context, businessID, appointmentID string) (*models.Appointment, error)
	Reschedule(ctx context.Context, businessID, appointmentID string, start, end time.Time) (*models.Appointment, error)
}

// JobEnqueuer is the slice of asynq.Client the service needs; it keeps tests
// off a live Redis.
type JobEnqueuer interface {
	Enqueue(task *asynq.Task, opts ...asynq.Option) (*asynq.TaskInfo, error)
}

// DefaultAppointmentService implements AppointmentService.
type DefaultAppointmentService struct {
	Repo       apptRepo.AppointmentRepository
	Customers  customerRepo.CustomerRepository
	Services   serviceRepo.ServiceRepository
	Staff      staffRepo.StaffRepository
	Businesses businessRepo.BusinessRepository
	Jobs       JobEnqueuer

	// Now is overridable for tests; nil means time.Now.
	Now func() time.Time
}

func (s *DefaultAppointmentService) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}
