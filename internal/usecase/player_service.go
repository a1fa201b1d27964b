package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/riskibarqy/golf-league/internal/domain/player"
	"github.com/riskibarqy/golf-league/internal/platform/logging"
)

type PlayerService struct {
	repo   player.Repository
	logger *logging.Logger
}

func NewPlayerService(repo player.Repository, logger *logging.Logger) *PlayerService {
	return &PlayerService{repo: repo, logger: defaultLogger(logger)}
}

func (s *PlayerService) List(ctx context.Context) ([]player.Player, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.PlayerService.List")
	defer span.End()

	items, err := s.repo.List(ctx)
	if err != nil {
		logStoreFailure(ctx, s.logger, "list players failed", err)
		return nil, fmt.Errorf("list players: %w", err)
	}
	return items, nil
}

func (s *PlayerService) Create(ctx context.Context, fields player.Fields) (player.Player, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.PlayerService.Create")
	defer span.End()

	fields.Name = strings.TrimSpace(fields.Name)
	fields.GHINNo = strings.TrimSpace(fields.GHINNo)
	if err := fields.Validate(); err != nil {
		return player.Player{}, invalidInput(err)
	}

	created, err := s.repo.Create(ctx, fields)
	if err != nil {
		logStoreFailure(ctx, s.logger, "create player failed", err, "name", fields.Name)
		return player.Player{}, fmt.Errorf("create player: %w", err)
	}
	return created, nil
}

func (s *PlayerService) Update(ctx context.Context, id int64, patch player.Patch) (player.Player, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.PlayerService.Update")
	defer span.End()

	if err := requireID("player", id); err != nil {
		return player.Player{}, err
	}
	if patch.Name != nil {
		name := strings.TrimSpace(*patch.Name)
		patch.Name = &name
	}
	if err := patch.Validate(); err != nil {
		return player.Player{}, invalidInput(err)
	}

	updated, err := s.repo.Update(ctx, id, patch)
	if err != nil {
		logStoreFailure(ctx, s.logger, "update player failed", err, "player_id", id)
		return player.Player{}, fmt.Errorf("update player: %w", err)
	}
	return updated, nil
}

func (s *PlayerService) Delete(ctx context.Context, id int64) error {
	ctx, span := startUsecaseSpan(ctx, "usecase.PlayerService.Delete")
	defer span.End()

	if err := requireID("player", id); err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		logStoreFailure(ctx, s.logger, "delete player failed", err, "player_id", id)
		return fmt.Errorf("delete player: %w", err)
	}
	return nil
}
