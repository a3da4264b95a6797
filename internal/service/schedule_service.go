package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/spec-kit/shift-service/internal/domain"
	"github.com/spec-kit/shift-service/internal/events"
	"github.com/spec-kit/shift-service/internal/importer"
	"github.com/spec-kit/shift-service/internal/repository"
	apperrors "github.com/spec-kit/shift-service/pkg/util"
)

// ScheduleService coordinates shift workflows outside the bulk import
// path. Single-shift creation runs through the same normalization and
// overlap rules as the importer.
type ScheduleService struct {
	shifts     repository.ShiftRepository
	users      repository.UserRepository
	dispatcher events.Dispatcher
}

// ScheduleDependencies bundles repositories for schedule service.
type ScheduleDependencies struct {
	ShiftRepo  repository.ShiftRepository
	UserRepo   repository.UserRepository
	Dispatcher events.Dispatcher
}

// ShiftCreateInput describes shift creation payload.
type ShiftCreateInput struct {
	UserID     string
	Date       string
	StartTime  string
	EndTime    string
	Role       string
	Department string
}

// ShiftListFilter describes manager listing filters.
type ShiftListFilter struct {
	UserID     *string
	Department *string
	Role       *string
	DateFrom   *string
	DateTo     *string
	Limit      int
	Offset     int
}

// NewScheduleService constructs the service.
func NewScheduleService(deps ScheduleDependencies) *ScheduleService {
	return &ScheduleService{
		shifts:     deps.ShiftRepo,
		users:      deps.UserRepo,
		dispatcher: deps.Dispatcher,
	}
}

// CreateShift creates a single shift for a user in the actor's organization.
func (s *ScheduleService) CreateShift(ctx context.Context, actor *domain.User, input ShiftCreateInput) (*domain.Shift, error) {
	details := map[string]any{}
	date, ok := importer.NormalizeDate(input.Date)
	if !ok {
		details["date"] = "unrecognized date"
	}
	start, ok := importer.NormalizeTime(input.StartTime)
	if !ok {
		details["start_time"] = "unrecognized time"
	}
	end, ok := importer.NormalizeTime(input.EndTime)
	if !ok {
		details["end_time"] = "unrecognized time"
	}
	role := strings.TrimSpace(input.Role)
	department := strings.TrimSpace(input.Department)
	if role == "" {
		details["role"] = "required"
	}
	if department == "" {
		details["department"] = "required"
	}
	if len(details) > 0 {
		return nil, apperrors.NewValidationError("invalid shift", details)
	}
	if start >= end {
		return nil, apperrors.NewValidationError("start time must be before end time", nil)
	}

	user, err := s.users.GetByID(ctx, input.UserID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFound("user", nil)
		}
		return nil, err
	}
	if user.OrganizationID != actor.OrganizationID {
		return nil, apperrors.NewForbidden("user outside organization")
	}

	existing, err := s.shifts.ListForUserOnDate(ctx, user.ID, date)
	if err != nil {
		return nil, err
	}
	candidate := &importer.ShiftRow{Date: date, StartTime: start, EndTime: end}
	if importer.HasOverlap(candidate, existing) {
		return nil, apperrors.NewConflict("overlaps with an existing shift", nil)
	}

	shift := &domain.Shift{
		OrganizationID: actor.OrganizationID,
		UserID:         user.ID,
		Date:           date,
		StartTime:      start,
		EndTime:        end,
		Role:           role,
		Department:     department,
	}
	if err := s.shifts.Create(ctx, shift); err != nil {
		return nil, err
	}

	s.publishEvent(ctx, events.Event{
		Type:           events.EventShiftCreated,
		OrganizationID: actor.OrganizationID,
		Actor:          events.Actor{UserID: actor.ID, Role: actor.Role},
		Payload: events.ShiftCreatedPayload{
			ShiftID:    shift.ID,
			UserID:     shift.UserID,
			Date:       shift.Date,
			StartTime:  shift.StartTime,
			EndTime:    shift.EndTime,
			Role:       shift.Role,
			Department: shift.Department,
			Source:     "manual",
		},
	})
	return shift, nil
}

// ListMyShifts returns the caller's own schedule.
func (s *ScheduleService) ListMyShifts(ctx context.Context, actor *domain.User, dateFrom, dateTo *string, limit, offset int) ([]domain.Shift, error) {
	filter := repository.ShiftFilter{
		OrganizationID: actor.OrganizationID,
		UserID:         &actor.ID,
		DateFrom:       dateFrom,
		DateTo:         dateTo,
		Limit:          limit,
		Offset:         offset,
	}
	return s.shifts.ListWithFilter(ctx, filter)
}

// ListShifts returns org-wide shifts for managers.
func (s *ScheduleService) ListShifts(ctx context.Context, actor *domain.User, filter ShiftListFilter) ([]domain.Shift, error) {
	repoFilter := repository.ShiftFilter{
		OrganizationID: actor.OrganizationID,
		UserID:         filter.UserID,
		Department:     filter.Department,
		Role:           filter.Role,
		DateFrom:       filter.DateFrom,
		DateTo:         filter.DateTo,
		Limit:          filter.Limit,
		Offset:         filter.Offset,
	}
	return s.shifts.ListWithFilter(ctx, repoFilter)
}

// DeleteShift removes a shift within the actor's organization.
func (s *ScheduleService) DeleteShift(ctx context.Context, actor *domain.User, shiftID string) error {
	shift, err := s.shifts.GetByID(ctx, shiftID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return apperrors.NewNotFound("shift", nil)
		}
		return err
	}
	if shift.OrganizationID != actor.OrganizationID {
		return apperrors.NewForbidden("shift outside organization")
	}
	if err := s.shifts.Delete(ctx, shiftID); err != nil {
		return err
	}

	s.publishEvent(ctx, events.Event{
		Type:           events.EventShiftDeleted,
		OrganizationID: actor.OrganizationID,
		Actor:          events.Actor{UserID: actor.ID, Role: actor.Role},
		Payload: events.ShiftDeletedPayload{
			ShiftID: shift.ID,
			UserID:  shift.UserID,
			Date:    shift.Date,
		},
	})
	return nil
}

func (s *ScheduleService) publishEvent(ctx context.Context, event events.Event) {
	if s.dispatcher == nil {
		return
	}
	if event.ID == "" {
		event.ID = uuid.NewString()
	}
	if event.Timestamp.IsZero() {
		event.Timestamp = time.Now()
	}
	_ = s.dispatcher.Publish(ctx, event)
}
