package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/riskibarqy/golf-league/internal/domain/series"
	"github.com/riskibarqy/golf-league/internal/platform/logging"
)

type SeriesService struct {
	repo   series.Repository
	logger *logging.Logger
}

func NewSeriesService(repo series.Repository, logger *logging.Logger) *SeriesService {
	return &SeriesService{repo: repo, logger: defaultLogger(logger)}
}

func (s *SeriesService) List(ctx context.Context) ([]series.Series, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.SeriesService.List")
	defer span.End()

	items, err := s.repo.List(ctx)
	if err != nil {
		logStoreFailure(ctx, s.logger, "list series failed", err)
		return nil, fmt.Errorf("list series: %w", err)
	}
	return items, nil
}

func (s *SeriesService) Create(ctx context.Context, fields series.Fields) (series.Series, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.SeriesService.Create")
	defer span.End()

	fields.Name = strings.TrimSpace(fields.Name)
	if err := fields.Validate(); err != nil {
		return series.Series{}, invalidInput(err)
	}

	created, err := s.repo.Create(ctx, fields)
	if err != nil {
		logStoreFailure(ctx, s.logger, "create series failed", err, "name", fields.Name)
		return series.Series{}, fmt.Errorf("create series: %w", err)
	}
	return created, nil
}

func (s *SeriesService) Update(ctx context.Context, id int64, patch series.Patch) (series.Series, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.SeriesService.Update")
	defer span.End()

	if err := requireID("series", id); err != nil {
		return series.Series{}, err
	}
	if patch.Name != nil {
		name := strings.TrimSpace(*patch.Name)
		patch.Name = &name
	}
	if err := patch.Validate(); err != nil {
		return series.Series{}, invalidInput(err)
	}

	updated, err := s.repo.Update(ctx, id, patch)
	if err != nil {
		logStoreFailure(ctx, s.logger, "update series failed", err, "series_id", id)
		return series.Series{}, fmt.Errorf("update series: %w", err)
	}
	return updated, nil
}

func (s *SeriesService) Delete(ctx context.Context, id int64) error {
	ctx, span := startUsecaseSpan(ctx, "usecase.SeriesService.Delete")
	defer span.End()

	if err := requireID("series", id); err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		logStoreFailure(ctx, s.logger, "delete series failed", err, "series_id", id)
		return fmt.Errorf("delete series: %w", err)
	}
	return nil
}
