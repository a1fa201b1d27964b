package usecase

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/riskibarqy/golf-league/internal/domain/player"
	"github.com/riskibarqy/golf-league/internal/platform/logging"
	playermock "github.com/riskibarqy/golf-league/internal/mocks/domain/player"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestPlayerService_CreateTrimsAndStores(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	repo := playermock.NewRepository(t)
	service := NewPlayerService(repo, logging.NewNop())

	want := player.Fields{Name: "Andre Santos", GHINNo: "1234567", HandicapIndex: 12.4}
	repo.
		On("Create", mock.Anything, want).
		Return(player.Player{ID: 1, Name: want.Name, GHINNo: want.GHINNo, HandicapIndex: want.HandicapIndex}, nil).
		Once()

	got, err := service.Create(ctx, player.Fields{Name: "  Andre Santos ", GHINNo: " 1234567", HandicapIndex: 12.4})
	if err != nil {
		t.Fatalf("create player: %v", err)
	}
	if got.ID != 1 || got.Name != "Andre Santos" {
		t.Fatalf("unexpected player: %+v", got)
	}
}

func TestPlayerService_CreateRejectsInvalidFields(t *testing.T) {
	t.Parallel()

	repo := playermock.NewRepository(t)
	service := NewPlayerService(repo, logging.NewNop())

	cases := []player.Fields{
		{Name: "   "},
		{Name: "Bea", HandicapIndex: 60},
		{Name: "Bea", HandicapIndex: -11},
		{Name: "Bea", HandicapIndex: 12.34},
	}
	for _, fields := range cases {
		_, err := service.Create(context.Background(), fields)
		if !errors.Is(err, ErrInvalidInput) {
			t.Fatalf("fields %+v: expected ErrInvalidInput, got %v", fields, err)
		}
	}
	repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestPlayerService_HandicapIndexKeepsOneDecimal(t *testing.T) {
	t.Parallel()

	repo := playermock.NewRepository(t)
	service := NewPlayerService(repo, logging.NewNop())

	bad := 7.25
	_, err := service.Update(context.Background(), 4, player.Patch{HandicapIndex: &bad})
	require.ErrorIs(t, err, ErrInvalidInput)
	repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything, mock.Anything)

	for _, ok := range []float64{12.3, -2.1, 0, 54} {
		require.NoError(t, player.Fields{Name: "Bea", HandicapIndex: ok}.Validate(), "handicap %v", ok)
	}
}

func TestPlayerService_UpdatePassesOnlySetFields(t *testing.T) {
	t.Parallel()

	repo := playermock.NewRepository(t)
	service := NewPlayerService(repo, logging.NewNop())

	index := 9.8
	repo.
		On("Update", mock.Anything, int64(3), mock.MatchedBy(func(p player.Patch) bool {
			return p.Name == nil && p.GHINNo == nil && p.HandicapIndex != nil && *p.HandicapIndex == index
		})).
		Return(player.Player{ID: 3, Name: "Carlo Mendoza", HandicapIndex: index}, nil).
		Once()

	got, err := service.Update(context.Background(), 3, player.Patch{HandicapIndex: &index})
	if err != nil {
		t.Fatalf("update player: %v", err)
	}
	if got.HandicapIndex != index {
		t.Fatalf("unexpected handicap index: got=%v want=%v", got.HandicapIndex, index)
	}
}

func TestPlayerService_UpdateRejectsEmptyPatchAndBadID(t *testing.T) {
	t.Parallel()

	repo := playermock.NewRepository(t)
	service := NewPlayerService(repo, logging.NewNop())

	if _, err := service.Update(context.Background(), 3, player.Patch{}); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for empty patch, got %v", err)
	}
	name := "Bea"
	if _, err := service.Update(context.Background(), 0, player.Patch{Name: &name}); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for zero id, got %v", err)
	}
}

func TestPlayerService_StoreErrorsAreSurfaced(t *testing.T) {
	t.Parallel()

	repo := playermock.NewRepository(t)
	service := NewPlayerService(repo, logging.NewNop())

	storeErr := errors.New("connection reset")
	repo.On("List", mock.Anything).Return(nil, fmt.Errorf("%w: select players: %w", ErrStore, storeErr)).Once()
	repo.On("Delete", mock.Anything, int64(42)).Return(ErrNotFound).Once()

	if _, err := service.List(context.Background()); !errors.Is(err, ErrStore) || !errors.Is(err, storeErr) {
		t.Fatalf("expected wrapped store error, got %v", err)
	}
	if err := service.Delete(context.Background(), 42); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}
