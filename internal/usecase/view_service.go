package usecase

import (
	"context"
	"fmt"

	"github.com/riskibarqy/golf-league/internal/domain/event"
	"github.com/riskibarqy/golf-league/internal/domain/photo"
	"github.com/riskibarqy/golf-league/internal/domain/player"
	"github.com/riskibarqy/golf-league/internal/domain/result"
	"github.com/riskibarqy/golf-league/internal/domain/series"
	"github.com/riskibarqy/golf-league/internal/platform/logging"
	"github.com/sourcegraph/conc"
)

// EventsView is what the event management screen needs: the events and the
// series they can be assigned to.
type EventsView struct {
	Events []event.Event
	Series []series.Series
}

type ResultsView struct {
	Results []result.Result
	Players []player.Player
	Events  []event.Event
}

type PhotosView struct {
	Photos []photo.Photo
	Events []event.Event
}

// ViewService loads a primary list together with its lookup lists in
// parallel. A failing primary list fails the view; a failing lookup is logged
// and comes back empty.
type ViewService struct {
	players player.Repository
	series  series.Repository
	events  event.Repository
	results result.Repository
	photos  photo.Repository
	logger  *logging.Logger
}

func NewViewService(
	players player.Repository,
	seriesRepo series.Repository,
	events event.Repository,
	results result.Repository,
	photos photo.Repository,
	logger *logging.Logger,
) *ViewService {
	return &ViewService{
		players: players,
		series:  seriesRepo,
		events:  events,
		results: results,
		photos:  photos,
		logger:  defaultLogger(logger),
	}
}

func (s *ViewService) Events(ctx context.Context) (EventsView, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.ViewService.Events")
	defer span.End()

	var (
		view               EventsView
		eventsErr, lookErr error
		wg                 conc.WaitGroup
	)
	wg.Go(func() { view.Events, eventsErr = s.events.List(ctx) })
	wg.Go(func() { view.Series, lookErr = s.series.List(ctx) })
	wg.Wait()

	if eventsErr != nil {
		logStoreFailure(ctx, s.logger, "load events view failed", eventsErr)
		return EventsView{}, fmt.Errorf("load events view: %w", eventsErr)
	}
	view.Series = lookupOrEmpty(ctx, s.logger, "series", view.Series, lookErr)
	return view, nil
}

func (s *ViewService) Results(ctx context.Context) (ResultsView, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.ViewService.Results")
	defer span.End()

	var (
		view                              ResultsView
		resultsErr, playersErr, eventsErr error
		wg                                conc.WaitGroup
	)
	wg.Go(func() { view.Results, resultsErr = s.results.List(ctx) })
	wg.Go(func() { view.Players, playersErr = s.players.List(ctx) })
	wg.Go(func() { view.Events, eventsErr = s.events.List(ctx) })
	wg.Wait()

	if resultsErr != nil {
		logStoreFailure(ctx, s.logger, "load results view failed", resultsErr)
		return ResultsView{}, fmt.Errorf("load results view: %w", resultsErr)
	}
	view.Players = lookupOrEmpty(ctx, s.logger, "players", view.Players, playersErr)
	view.Events = lookupOrEmpty(ctx, s.logger, "events", view.Events, eventsErr)
	return view, nil
}

func (s *ViewService) Photos(ctx context.Context) (PhotosView, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.ViewService.Photos")
	defer span.End()

	var (
		view                 PhotosView
		photosErr, eventsErr error
		wg                   conc.WaitGroup
	)
	wg.Go(func() { view.Photos, photosErr = s.photos.List(ctx) })
	wg.Go(func() { view.Events, eventsErr = s.events.List(ctx) })
	wg.Wait()

	if photosErr != nil {
		logStoreFailure(ctx, s.logger, "load photos view failed", photosErr)
		return PhotosView{}, fmt.Errorf("load photos view: %w", photosErr)
	}
	view.Events = lookupOrEmpty(ctx, s.logger, "events", view.Events, eventsErr)
	return view, nil
}

func lookupOrEmpty[T any](ctx context.Context, logger *logging.Logger, name string, items []T, err error) []T {
	if err != nil {
		logger.WarnContext(ctx, "lookup list unavailable", "lookup", name, "error", err)
		return []T{}
	}
	if items == nil {
		return []T{}
	}
	return items
}
