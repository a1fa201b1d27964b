package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/riskibarqy/golf-league/internal/domain/event"
	"github.com/riskibarqy/golf-league/internal/domain/photo"
	"github.com/riskibarqy/golf-league/internal/domain/result"
	"github.com/riskibarqy/golf-league/internal/domain/series"
	"github.com/riskibarqy/golf-league/internal/platform/logging"
	eventmock "github.com/riskibarqy/golf-league/internal/mocks/domain/event"
	photomock "github.com/riskibarqy/golf-league/internal/mocks/domain/photo"
	playermock "github.com/riskibarqy/golf-league/internal/mocks/domain/player"
	resultmock "github.com/riskibarqy/golf-league/internal/mocks/domain/result"
	seriesmock "github.com/riskibarqy/golf-league/internal/mocks/domain/series"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type viewRepos struct {
	players *playermock.Repository
	series  *seriesmock.Repository
	events  *eventmock.Repository
	results *resultmock.Repository
	photos  *photomock.Repository
}

func newViewService(t *testing.T) (*ViewService, viewRepos) {
	repos := viewRepos{
		players: playermock.NewRepository(t),
		series:  seriesmock.NewRepository(t),
		events:  eventmock.NewRepository(t),
		results: resultmock.NewRepository(t),
		photos:  photomock.NewRepository(t),
	}
	service := NewViewService(repos.players, repos.series, repos.events, repos.results, repos.photos, logging.NewNop())
	return service, repos
}

func TestViewService_EventsLoadsSeriesLookup(t *testing.T) {
	t.Parallel()

	service, repos := newViewService(t)
	repos.events.On("List", mock.Anything).Return([]event.Event{
		{ID: 1, Name: "Opener", SeriesID: 1, Series: &event.SeriesRef{ID: 1, Name: "Spring 2024"}},
	}, nil).Once()
	repos.series.On("List", mock.Anything).Return([]series.Series{{ID: 1, Name: "Spring 2024"}}, nil).Once()

	view, err := service.Events(context.Background())
	require.NoError(t, err)
	require.Len(t, view.Events, 1)
	require.Equal(t, "Spring 2024", view.Events[0].Series.Name)
	require.Len(t, view.Series, 1)
}

func TestViewService_LookupFailureYieldsEmptyLookup(t *testing.T) {
	t.Parallel()

	service, repos := newViewService(t)
	repos.results.On("List", mock.Anything).Return([]result.Result{{ID: 4, Points: 36}}, nil).Once()
	repos.players.On("List", mock.Anything).Return(nil, ErrDependencyUnavailable).Once()
	repos.events.On("List", mock.Anything).Return([]event.Event{{ID: 1, Name: "Opener"}}, nil).Once()

	view, err := service.Results(context.Background())
	require.NoError(t, err)
	require.Len(t, view.Results, 1)
	require.NotNil(t, view.Players)
	require.Empty(t, view.Players)
	require.Len(t, view.Events, 1)
}

func TestViewService_PrimaryFailureFailsView(t *testing.T) {
	t.Parallel()

	service, repos := newViewService(t)
	storeErr := errors.Join(ErrStore, errors.New("permission denied for table photos"))
	repos.photos.On("List", mock.Anything).Return(nil, storeErr).Once()
	repos.events.On("List", mock.Anything).Return([]event.Event{}, nil).Once()

	_, err := service.Photos(context.Background())
	require.ErrorIs(t, err, ErrStore)
}

func TestViewService_PhotosWithEmptyTables(t *testing.T) {
	t.Parallel()

	service, repos := newViewService(t)
	repos.photos.On("List", mock.Anything).Return([]photo.Photo(nil), nil).Once()
	repos.events.On("List", mock.Anything).Return([]event.Event(nil), nil).Once()

	view, err := service.Photos(context.Background())
	require.NoError(t, err)
	require.Empty(t, view.Photos)
	require.NotNil(t, view.Events)
}
