package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/riskibarqy/golf-league/internal/domain/photo"
	"github.com/riskibarqy/golf-league/internal/platform/logging"
)

type ImageUploader interface {
	UploadImage(ctx context.Context, in UploadInput) (UploadedImage, error)
}

type PhotoUploadInput struct {
	Name     string
	EventID  int64
	Bucket   string
	FileName string
	Data     []byte
}

type PhotoService struct {
	repo     photo.Repository
	uploader ImageUploader
	logger   *logging.Logger
}

func NewPhotoService(repo photo.Repository, uploader ImageUploader, logger *logging.Logger) *PhotoService {
	return &PhotoService{repo: repo, uploader: uploader, logger: defaultLogger(logger)}
}

func (s *PhotoService) List(ctx context.Context) ([]photo.Photo, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.PhotoService.List")
	defer span.End()

	items, err := s.repo.List(ctx)
	if err != nil {
		logStoreFailure(ctx, s.logger, "list photos failed", err)
		return nil, fmt.Errorf("list photos: %w", err)
	}
	return items, nil
}

func (s *PhotoService) Create(ctx context.Context, fields photo.Fields) (photo.Photo, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.PhotoService.Create")
	defer span.End()

	fields.Name = strings.TrimSpace(fields.Name)
	if strings.TrimSpace(fields.StorageBucket) == "" {
		fields.StorageBucket = photo.DefaultBucket
	}
	if err := fields.Validate(); err != nil {
		return photo.Photo{}, invalidInput(err)
	}

	created, err := s.repo.Create(ctx, fields)
	if err != nil {
		logStoreFailure(ctx, s.logger, "create photo failed", err, "event_id", fields.EventID)
		return photo.Photo{}, fmt.Errorf("create photo: %w", err)
	}
	return created, nil
}

func (s *PhotoService) Update(ctx context.Context, id int64, patch photo.Patch) (photo.Photo, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.PhotoService.Update")
	defer span.End()

	if err := requireID("photo", id); err != nil {
		return photo.Photo{}, err
	}
	if patch.Name != nil {
		name := strings.TrimSpace(*patch.Name)
		patch.Name = &name
	}
	if err := patch.Validate(); err != nil {
		return photo.Photo{}, invalidInput(err)
	}

	updated, err := s.repo.Update(ctx, id, patch)
	if err != nil {
		logStoreFailure(ctx, s.logger, "update photo failed", err, "photo_id", id)
		return photo.Photo{}, fmt.Errorf("update photo: %w", err)
	}
	return updated, nil
}

func (s *PhotoService) Delete(ctx context.Context, id int64) error {
	ctx, span := startUsecaseSpan(ctx, "usecase.PhotoService.Delete")
	defer span.End()

	if err := requireID("photo", id); err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		logStoreFailure(ctx, s.logger, "delete photo failed", err, "photo_id", id)
		return fmt.Errorf("delete photo: %w", err)
	}
	return nil
}

// CreateWithImage uploads the image into the event photo folder and then
// writes the photo row pointing at it. A failed upload writes no row. A failed
// insert leaves the uploaded object in place.
func (s *PhotoService) CreateWithImage(ctx context.Context, in PhotoUploadInput) (photo.Photo, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.PhotoService.CreateWithImage")
	defer span.End()

	name := strings.TrimSpace(in.Name)
	if name == "" {
		return photo.Photo{}, fmt.Errorf("%w: photo name is required", ErrInvalidInput)
	}
	if in.EventID <= 0 {
		return photo.Photo{}, fmt.Errorf("%w: photo event id is required", ErrInvalidInput)
	}

	uploaded, err := s.uploader.UploadImage(ctx, UploadInput{
		FileName: in.FileName,
		Data:     in.Data,
		Bucket:   bucketOrDefault(in.Bucket),
		Folder:   photo.DefaultFolder,
	})
	if err != nil {
		return photo.Photo{}, fmt.Errorf("upload photo image: %w", err)
	}

	created, err := s.repo.Create(ctx, photo.Fields{
		Name:          name,
		EventID:       in.EventID,
		StorageBucket: uploaded.Bucket,
		StoragePath:   uploaded.Path,
	})
	if err != nil {
		logStoreFailure(ctx, s.logger, "create photo row after upload failed", err,
			"event_id", in.EventID,
			"bucket", uploaded.Bucket,
			"path", uploaded.Path,
		)
		return photo.Photo{}, fmt.Errorf("create photo: %w", err)
	}
	return created, nil
}

// ReplaceImage uploads a new image and points the photo at it. The previous
// object is not removed.
func (s *PhotoService) ReplaceImage(ctx context.Context, id int64, in PhotoUploadInput) (photo.Photo, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.PhotoService.ReplaceImage")
	defer span.End()

	if err := requireID("photo", id); err != nil {
		return photo.Photo{}, err
	}

	uploaded, err := s.uploader.UploadImage(ctx, UploadInput{
		FileName: in.FileName,
		Data:     in.Data,
		Bucket:   bucketOrDefault(in.Bucket),
		Folder:   photo.DefaultFolder,
	})
	if err != nil {
		return photo.Photo{}, fmt.Errorf("upload photo image: %w", err)
	}

	patch := photo.Patch{StorageBucket: &uploaded.Bucket, StoragePath: &uploaded.Path}
	if name := strings.TrimSpace(in.Name); name != "" {
		patch.Name = &name
	}
	updated, err := s.repo.Update(ctx, id, patch)
	if err != nil {
		logStoreFailure(ctx, s.logger, "point photo at new image failed", err, "photo_id", id, "path", uploaded.Path)
		return photo.Photo{}, fmt.Errorf("update photo: %w", err)
	}
	return updated, nil
}

func bucketOrDefault(bucket string) string {
	if bucket = strings.TrimSpace(bucket); bucket != "" {
		return bucket
	}
	return photo.DefaultBucket
}
