package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/riskibarqy/golf-league/internal/domain/photo"
	"github.com/riskibarqy/golf-league/internal/platform/logging"
	photomock "github.com/riskibarqy/golf-league/internal/mocks/domain/photo"
	"github.com/stretchr/testify/mock"
)

type stubUploader struct {
	inputs []UploadInput
	image  UploadedImage
	err    error
}

func (s *stubUploader) UploadImage(_ context.Context, in UploadInput) (UploadedImage, error) {
	s.inputs = append(s.inputs, in)
	if s.err != nil {
		return UploadedImage{}, s.err
	}
	return s.image, nil
}

func TestPhotoService_CreateWithImageStoresUploadedPath(t *testing.T) {
	t.Parallel()

	repo := photomock.NewRepository(t)
	uploader := &stubUploader{image: UploadedImage{
		URL:    testStorageBase + "/storage/v1/object/public/photos/event-photos/abc.jpg",
		Bucket: "photos",
		Path:   "event-photos/abc.jpg",
	}}
	service := NewPhotoService(repo, uploader, logging.NewNop())

	repo.
		On("Create", mock.Anything, photo.Fields{
			Name:          "Opener group",
			EventID:       7,
			StorageBucket: "photos",
			StoragePath:   "event-photos/abc.jpg",
		}).
		Return(photo.Photo{ID: 1, Name: "Opener group", EventID: 7, StorageBucket: "photos", StoragePath: "event-photos/abc.jpg"}, nil).
		Once()

	got, err := service.CreateWithImage(context.Background(), PhotoUploadInput{
		Name:     " Opener group ",
		EventID:  7,
		FileName: "group.jpg",
		Data:     []byte("jpeg"),
	})
	if err != nil {
		t.Fatalf("create photo with image: %v", err)
	}
	if got.StoragePath != "event-photos/abc.jpg" {
		t.Fatalf("unexpected storage path: %s", got.StoragePath)
	}
	if len(uploader.inputs) != 1 {
		t.Fatalf("expected one upload, got %d", len(uploader.inputs))
	}
	if in := uploader.inputs[0]; in.Bucket != photo.DefaultBucket || in.Folder != photo.DefaultFolder {
		t.Fatalf("unexpected upload target: bucket=%s folder=%s", in.Bucket, in.Folder)
	}
}

func TestPhotoService_CreateWithImageUploadFailureWritesNoRow(t *testing.T) {
	t.Parallel()

	repo := photomock.NewRepository(t)
	uploader := &stubUploader{err: errors.Join(ErrCompression, errors.New("too large"))}
	service := NewPhotoService(repo, uploader, logging.NewNop())

	_, err := service.CreateWithImage(context.Background(), PhotoUploadInput{Name: "Opener", EventID: 7, FileName: "a.png", Data: []byte("x")})
	if !errors.Is(err, ErrCompression) {
		t.Fatalf("expected ErrCompression, got %v", err)
	}
	repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestPhotoService_CreateWithImageValidatesBeforeUpload(t *testing.T) {
	t.Parallel()

	repo := photomock.NewRepository(t)
	uploader := &stubUploader{}
	service := NewPhotoService(repo, uploader, logging.NewNop())

	_, err := service.CreateWithImage(context.Background(), PhotoUploadInput{Name: "Opener", FileName: "a.png", Data: []byte("x")})
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
	if len(uploader.inputs) != 0 {
		t.Fatalf("upload must not run for invalid input")
	}
}

func TestPhotoService_CreateWithImageInsertFailureIsReturned(t *testing.T) {
	t.Parallel()

	repo := photomock.NewRepository(t)
	uploader := &stubUploader{image: UploadedImage{Bucket: "photos", Path: "event-photos/abc.jpg"}}
	service := NewPhotoService(repo, uploader, logging.NewNop())

	repo.On("Create", mock.Anything, mock.Anything).Return(photo.Photo{}, ErrStore).Once()

	_, err := service.CreateWithImage(context.Background(), PhotoUploadInput{Name: "Opener", EventID: 7, FileName: "a.jpg", Data: []byte("x")})
	if !errors.Is(err, ErrStore) {
		t.Fatalf("expected ErrStore, got %v", err)
	}
	if len(uploader.inputs) != 1 {
		t.Fatalf("expected the upload to have happened once, got %d", len(uploader.inputs))
	}
}

func TestPhotoService_ReplaceImagePointsAtNewObject(t *testing.T) {
	t.Parallel()

	repo := photomock.NewRepository(t)
	uploader := &stubUploader{image: UploadedImage{Bucket: "archive", Path: "event-photos/new.webp"}}
	service := NewPhotoService(repo, uploader, logging.NewNop())

	repo.
		On("Update", mock.Anything, int64(5), mock.MatchedBy(func(p photo.Patch) bool {
			return p.Name == nil &&
				p.EventID == nil &&
				p.StorageBucket != nil && *p.StorageBucket == "archive" &&
				p.StoragePath != nil && *p.StoragePath == "event-photos/new.webp"
		})).
		Return(photo.Photo{ID: 5, StorageBucket: "archive", StoragePath: "event-photos/new.webp"}, nil).
		Once()

	got, err := service.ReplaceImage(context.Background(), 5, PhotoUploadInput{Bucket: "archive", FileName: "new.webp", Data: []byte("x")})
	if err != nil {
		t.Fatalf("replace image: %v", err)
	}
	if got.StoragePath != "event-photos/new.webp" {
		t.Fatalf("unexpected storage path: %s", got.StoragePath)
	}
}

func TestPhotoService_CreateDefaultsBucket(t *testing.T) {
	t.Parallel()

	repo := photomock.NewRepository(t)
	service := NewPhotoService(repo, &stubUploader{}, logging.NewNop())

	repo.
		On("Create", mock.Anything, photo.Fields{Name: "Trophy", EventID: 2, StorageBucket: photo.DefaultBucket, StoragePath: "event-photos/t.jpg"}).
		Return(photo.Photo{ID: 9}, nil).
		Once()

	if _, err := service.Create(context.Background(), photo.Fields{Name: "Trophy", EventID: 2, StoragePath: "event-photos/t.jpg"}); err != nil {
		t.Fatalf("create photo: %v", err)
	}
}
