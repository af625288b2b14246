package availability

import (
	"context"
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"

	apptRepo "bookwise/database/repository/appointment"
	businessRepo "bookwise/database/repository/business"
	serviceRepo "bookwise/database/repository/service"
	staffRepo "bookwise/database/repository/staff"
	"bookwise/models"
	"bookwise/utils"

	"go.uber.org/zap"
)

// MaxWindowDays caps EndDate - StartDate for one availability query.
const MaxWindowDays = 90

// AvailabilityService computes bookable time slots.
type AvailabilityService interface {
	CalculateAvailability(ctx context.Context, req models.AvailabilityRequest) ([]models.TimeSlot, error)
}

// DefaultAvailabilityService is the production implementation. It works on a
// read-only snapshot fetched once per call and never mutates any store; the
// result may be stale by the time a caller books, which is why the write path
// re-checks conflicts.
type DefaultAvailabilityService struct {
	Businesses   businessRepo.BusinessRepository
	Services     serviceRepo.ServiceRepository
	Staff        staffRepo.StaffRepository
	Appointments apptRepo.AppointmentRepository

	// Now is overridable for tests; nil means time.Now.
	Now func() time.Time
}

func (s *DefaultAvailabilityService) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}

// CalculateAvailability returns every bookable slot in the request window,
// sorted ascending by start time with ties broken by staff ID. An unknown
// service or an empty staff roster yields an empty result rather than an
// error: "no availability" is a valid answer at this layer.
func (s *DefaultAvailabilityService) CalculateAvailability(ctx context.Context, req models.AvailabilityRequest) ([]models.TimeSlot, error) {
	logger := utils.GetLogger()

	if req.EndDate.Before(req.StartDate) {
		return nil, ErrInvalidRange
	}
	if req.EndDate.Sub(req.StartDate) > MaxWindowDays*24*time.Hour {
		return nil, ErrWindowTooLarge
	}

	business, err := s.Businesses.GetByID(ctx, req.BusinessID)
	if err != nil {
		return nil, fmt.Errorf("availability: %w", err)
	}
	if business == nil {
		return nil, nil
	}
	loc, err := time.LoadLocation(business.Timezone)
	if err != nil {
		return nil, fmt.Errorf("availability: invalid business timezone %q: %w", business.Timezone, err)
	}

	service, err := s.Services.GetByID(ctx, req.ServiceID)
	if err != nil {
		return nil, fmt.Errorf("availability: %w", err)
	}
	if service == nil || service.BusinessID != req.BusinessID || service.DurationMinutes <= 0 {
		return nil, nil
	}
	duration := time.Duration(service.DurationMinutes) * time.Minute

	staff, err := s.Staff.ListActive(ctx, req.BusinessID, req.StaffID)
	if err != nil {
		return nil, fmt.Errorf("availability: %w", err)
	}
	if len(staff) == 0 {
		return nil, nil
	}
	staffIDs := make([]string, len(staff))
	for i, member := range staff {
		staffIDs[i] = member.ID
	}

	weeklyHours, err := s.Staff.ListWeeklyHours(ctx, staffIDs)
	if err != nil {
		return nil, fmt.Errorf("availability: %w", err)
	}
	timeOff, err := s.Staff.ListTimeOff(ctx, staffIDs, req.StartDate, req.EndDate)
	if err != nil {
		return nil, fmt.Errorf("availability: %w", err)
	}
	appointments, err := s.Appointments.ListActiveInRange(ctx, req.BusinessID, req.StartDate, req.EndDate)
	if err != nil {
		return nil, fmt.Errorf("availability: %w", err)
	}

	hoursByDay := make(map[int][]models.WeeklyHours)
	for _, h := range weeklyHours {
		hoursByDay[h.DayOfWeek] = append(hoursByDay[h.DayOfWeek], h)
	}

	now := s.now()
	var slots []models.TimeSlot

	// Day boundaries and weekday matching follow the business timezone, not
	// the server's.
	firstDay := startOfDay(req.StartDate.In(loc))
	for day := firstDay; !day.After(req.EndDate); day = day.AddDate(0, 0, 1) {
		for _, hours := range hoursByDay[int(day.Weekday())] {
			shiftStart, shiftEnd, err := shiftWindow(day, hours)
			if err != nil {
				logger.Warn("availability: skipping malformed weekly hours",
					zap.String("staffID", hours.StaffID),
					zap.Int("dayOfWeek", hours.DayOfWeek),
					zap.Error(err))
				continue
			}
			for _, start := range SlotCandidates(shiftStart, shiftEnd, req.StartDate, duration, SlotGranularity) {
				end := start.Add(duration)
				if !passesLeadTime(start, now) {
					continue
				}
				if !fitsShift(end, shiftEnd) {
					continue
				}
				if overlapsTimeOff(start, end, hours.StaffID, timeOff) {
					continue
				}
				if conflictsAppointment(start, end, hours.StaffID, appointments) {
					continue
				}
				staffID := hours.StaffID
				slots = append(slots, models.TimeSlot{Start: start, End: end, StaffID: &staffID})
			}
		}
	}

	sort.SliceStable(slots, func(i, j int) bool {
		if !slots[i].Start.Equal(slots[j].Start) {
			return slots[i].Start.Before(slots[j].Start)
		}
		return *slots[i].StaffID < *slots[j].StaffID
	})
	return slots, nil
}

// startOfDay truncates t to midnight in its own location.
func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// shiftWindow resolves a weekly-hours row to absolute shift bounds on the
// given day, in the day's location.
func shiftWindow(day time.Time, hours models.WeeklyHours) (time.Time, time.Time, error) {
	startHour, startMin, err := parseClock(hours.StartTime)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	endHour, endMin, err := parseClock(hours.EndTime)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	shiftStart := time.Date(day.Year(), day.Month(), day.Day(), startHour, startMin, 0, 0, day.Location())
	shiftEnd := time.Date(day.Year(), day.Month(), day.Day(), endHour, endMin, 0, 0, day.Location())
	if !shiftStart.Before(shiftEnd) {
		return time.Time{}, time.Time{}, fmt.Errorf("shift start %s is not before end %s", hours.StartTime, hours.EndTime)
	}
	return shiftStart, shiftEnd, nil
}

// parseClock parses "HH:MM" (seconds tolerated and ignored).
func parseClock(s string) (int, int, error) {
	parts := strings.Split(s, ":")
	if len(parts) < 2 {
		return 0, 0, fmt.Errorf("malformed clock time %q", s)
	}
	hour, err := strconv.Atoi(parts[0])
	if err != nil || hour < 0 || hour > 23 {
		return 0, 0, fmt.Errorf("malformed hour in %q", s)
	}
	minute, err := strconv.Atoi(parts[1])
	if err != nil || minute < 0 || minute > 59 {
		return 0, 0, fmt.Errorf("malformed minute in %q", s)
	}
	return hour, minute, nil
}
