package usecase

import (
	"context"
	"fmt"

	"github.com/riskibarqy/golf-league/internal/domain/result"
	"github.com/riskibarqy/golf-league/internal/platform/logging"
)

type ResultService struct {
	repo   result.Repository
	logger *logging.Logger
}

func NewResultService(repo result.Repository, logger *logging.Logger) *ResultService {
	return &ResultService{repo: repo, logger: defaultLogger(logger)}
}

func (s *ResultService) List(ctx context.Context) ([]result.Result, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.ResultService.List")
	defer span.End()

	items, err := s.repo.List(ctx)
	if err != nil {
		logStoreFailure(ctx, s.logger, "list results failed", err)
		return nil, fmt.Errorf("list results: %w", err)
	}
	return items, nil
}

func (s *ResultService) Create(ctx context.Context, fields result.Fields) (result.Result, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.ResultService.Create")
	defer span.End()

	if err := fields.Validate(); err != nil {
		return result.Result{}, invalidInput(err)
	}

	created, err := s.repo.Create(ctx, fields)
	if err != nil {
		logStoreFailure(ctx, s.logger, "create result failed", err, "player_id", fields.PlayerID, "event_id", fields.EventID)
		return result.Result{}, fmt.Errorf("create result: %w", err)
	}
	return created, nil
}

func (s *ResultService) Update(ctx context.Context, id int64, patch result.Patch) (result.Result, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.ResultService.Update")
	defer span.End()

	if err := requireID("result", id); err != nil {
		return result.Result{}, err
	}
	if err := patch.Validate(); err != nil {
		return result.Result{}, invalidInput(err)
	}

	updated, err := s.repo.Update(ctx, id, patch)
	if err != nil {
		logStoreFailure(ctx, s.logger, "update result failed", err, "result_id", id)
		return result.Result{}, fmt.Errorf("update result: %w", err)
	}
	return updated, nil
}

func (s *ResultService) Delete(ctx context.Context, id int64) error {
	ctx, span := startUsecaseSpan(ctx, "usecase.ResultService.Delete")
	defer span.End()

	if err := requireID("result", id); err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		logStoreFailure(ctx, s.logger, "delete result failed", err, "result_id", id)
		return fmt.Errorf("delete result: %w", err)
	}
	return nil
}
