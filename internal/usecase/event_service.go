package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/riskibarqy/golf-league/internal/domain/event"
	"github.com/riskibarqy/golf-league/internal/platform/logging"
)

type EventService struct {
	repo   event.Repository
	logger *logging.Logger
}

func NewEventService(repo event.Repository, logger *logging.Logger) *EventService {
	return &EventService{repo: repo, logger: defaultLogger(logger)}
}

func (s *EventService) List(ctx context.Context) ([]event.Event, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.EventService.List")
	defer span.End()

	items, err := s.repo.List(ctx)
	if err != nil {
		logStoreFailure(ctx, s.logger, "list events failed", err)
		return nil, fmt.Errorf("list events: %w", err)
	}
	return items, nil
}

func (s *EventService) Create(ctx context.Context, fields event.Fields) (event.Event, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.EventService.Create")
	defer span.End()

	fields.Name = strings.TrimSpace(fields.Name)
	fields.CourseName = strings.TrimSpace(fields.CourseName)
	if err := fields.Validate(); err != nil {
		return event.Event{}, invalidInput(err)
	}

	created, err := s.repo.Create(ctx, fields)
	if err != nil {
		logStoreFailure(ctx, s.logger, "create event failed", err, "name", fields.Name, "series_id", fields.SeriesID)
		return event.Event{}, fmt.Errorf("create event: %w", err)
	}
	return created, nil
}

func (s *EventService) Update(ctx context.Context, id int64, patch event.Patch) (event.Event, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.EventService.Update")
	defer span.End()

	if err := requireID("event", id); err != nil {
		return event.Event{}, err
	}
	if patch.Name != nil {
		name := strings.TrimSpace(*patch.Name)
		patch.Name = &name
	}
	if patch.CourseName != nil {
		course := strings.TrimSpace(*patch.CourseName)
		patch.CourseName = &course
	}
	if err := patch.Validate(); err != nil {
		return event.Event{}, invalidInput(err)
	}

	updated, err := s.repo.Update(ctx, id, patch)
	if err != nil {
		logStoreFailure(ctx, s.logger, "update event failed", err, "event_id", id)
		return event.Event{}, fmt.Errorf("update event: %w", err)
	}
	return updated, nil
}

func (s *EventService) Delete(ctx context.Context, id int64) error {
	ctx, span := startUsecaseSpan(ctx, "usecase.EventService.Delete")
	defer span.End()

	if err := requireID("event", id); err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		logStoreFailure(ctx, s.logger, "delete event failed", err, "event_id", id)
		return fmt.Errorf("delete event: %w", err)
	}
	return nil
}
