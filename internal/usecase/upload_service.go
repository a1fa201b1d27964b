package usecase

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/panjf2000/ants/v2"
	"github.com/riskibarqy/golf-league/internal/domain/photo"
	"github.com/riskibarqy/golf-league/internal/platform/id"
	"github.com/riskibarqy/golf-league/internal/platform/imaging"
	"github.com/riskibarqy/golf-league/internal/platform/logging"
)

const defaultUploadWorkers = 4

var imageExtensions = map[string]struct{}{
	"jpg":  {},
	"jpeg": {},
	"png":  {},
	"gif":  {},
	"webp": {},
}

// ObjectStorage stores raw objects in named buckets.
type ObjectStorage interface {
	Upload(ctx context.Context, bucket, path, contentType string, data []byte) error
	PublicURL(bucket, path string) string
}

type ImageCompressor interface {
	Compress(data []byte) (imaging.Output, error)
}

type UploadInput struct {
	FileName string
	Data     []byte
	Bucket   string
	Folder   string
}

type UploadedImage struct {
	URL    string `json:"url"`
	Bucket string `json:"bucket"`
	Path   string `json:"path"`
}

// UploadOutcome is the per-file result of a bulk upload. Exactly one of Image
// and Err is set.
type UploadOutcome struct {
	FileName string
	Image    *UploadedImage
	Err      error
}

type UploadConfig struct {
	DefaultBucket string
	Workers       int
}

type UploadService struct {
	storage       ObjectStorage
	compressor    ImageCompressor
	ids           id.Generator
	defaultBucket string
	workers       int
	logger        *logging.Logger
}

func NewUploadService(storage ObjectStorage, compressor ImageCompressor, ids id.Generator, cfg UploadConfig, logger *logging.Logger) *UploadService {
	if ids == nil {
		ids = id.NewUUIDGenerator()
	}
	bucket := strings.TrimSpace(cfg.DefaultBucket)
	if bucket == "" {
		bucket = photo.DefaultBucket
	}
	workers := cfg.Workers
	if workers <= 0 {
		workers = defaultUploadWorkers
	}
	return &UploadService{
		storage:       storage,
		compressor:    compressor,
		ids:           ids,
		defaultBucket: bucket,
		workers:       workers,
		logger:        defaultLogger(logger),
	}
}

// PublicURL is where a stored object can be fetched without credentials.
func (s *UploadService) PublicURL(bucket, path string) string {
	return s.storage.PublicURL(bucket, path)
}

// UploadImage compresses an image and stores it under
// {folder/}{uuid}.{ext}, keeping the extension of the original file name.
// The object is stored with the compressor's content type, which is JPEG for
// WebP input that had to be re-encoded.
func (s *UploadService) UploadImage(ctx context.Context, in UploadInput) (UploadedImage, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.UploadService.UploadImage")
	defer span.End()

	ext, err := imageExtension(in.FileName)
	if err != nil {
		return UploadedImage{}, err
	}
	if len(in.Data) == 0 {
		return UploadedImage{}, fmt.Errorf("%w: file %q is empty", ErrInvalidInput, in.FileName)
	}

	bucket := strings.Trim(strings.TrimSpace(in.Bucket), "/")
	if bucket == "" {
		bucket = s.defaultBucket
	}
	objectID, err := s.ids.NewID()
	if err != nil {
		return UploadedImage{}, fmt.Errorf("generate object id: %w", err)
	}
	path := objectID + "." + ext
	if folder := strings.Trim(strings.TrimSpace(in.Folder), "/"); folder != "" {
		path = folder + "/" + path
	}

	compressed, err := s.compressor.Compress(in.Data)
	if err != nil {
		s.logger.WarnContext(ctx, "image compression failed", "file_name", in.FileName, "size", len(in.Data), "error", err)
		return UploadedImage{}, fmt.Errorf("%w: %v", ErrCompression, err)
	}

	if err := s.storage.Upload(ctx, bucket, path, compressed.ContentType, compressed.Data); err != nil {
		s.logger.ErrorContext(ctx, "image upload failed", "bucket", bucket, "path", path, "error", err)
		return UploadedImage{}, fmt.Errorf("%w: %w", ErrUpload, err)
	}

	s.logger.InfoContext(ctx, "image uploaded",
		"bucket", bucket,
		"path", path,
		"original_size", len(in.Data),
		"stored_size", len(compressed.Data),
	)
	return UploadedImage{
		URL:    s.storage.PublicURL(bucket, path),
		Bucket: bucket,
		Path:   path,
	}, nil
}

// UploadImages uploads every input through a bounded worker pool. Outcomes are
// returned in input order; one failed file does not stop the others.
func (s *UploadService) UploadImages(ctx context.Context, inputs []UploadInput) ([]UploadOutcome, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.UploadService.UploadImages")
	defer span.End()

	if len(inputs) == 0 {
		return nil, fmt.Errorf("%w: at least one file is required", ErrInvalidInput)
	}

	workerCount := s.workers
	if workerCount > len(inputs) {
		workerCount = len(inputs)
	}
	pool, err := ants.NewPool(workerCount)
	if err != nil {
		return nil, fmt.Errorf("create worker pool: %w", err)
	}
	defer pool.Release()

	outcomes := make([]UploadOutcome, len(inputs))
	var workers sync.WaitGroup
	for i, in := range inputs {
		i, in := i, in
		outcomes[i].FileName = in.FileName
		workers.Add(1)
		if err := pool.Submit(func() {
			defer workers.Done()
			image, err := s.UploadImage(ctx, in)
			if err != nil {
				outcomes[i].Err = err
				return
			}
			outcomes[i].Image = &image
		}); err != nil {
			workers.Done()
			outcomes[i].Err = fmt.Errorf("schedule upload: %w", err)
		}
	}
	workers.Wait()

	failed := 0
	for _, outcome := range outcomes {
		if outcome.Err != nil {
			failed++
		}
	}
	s.logger.InfoContext(ctx, "bulk upload finished", "files", len(inputs), "failed", failed, "workers", workerCount)
	return outcomes, nil
}

// imageExtension returns the text after the last dot of name with its
// original casing.
func imageExtension(name string) (string, error) {
	name = strings.TrimSpace(name)
	dot := strings.LastIndex(name, ".")
	if dot < 0 || dot == len(name)-1 {
		return "", fmt.Errorf("%w: file %q has no extension", ErrInvalidInput, name)
	}
	ext := name[dot+1:]
	if _, ok := imageExtensions[strings.ToLower(ext)]; !ok {
		return "", fmt.Errorf("%w: file extension %q is not a supported image type", ErrInvalidInput, ext)
	}
	return ext, nil
}
