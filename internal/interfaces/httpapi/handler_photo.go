package httpapi

import (
	"context"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"strconv"
	"strings"

	"github.com/riskibarqy/golf-league/internal/domain/photo"
	"github.com/riskibarqy/golf-league/internal/usecase"
)

const (
	defaultMaxUploadRequestBytes = 32 << 20
	multipartMemoryBytes         = 8 << 20
)

type createPhotoRequest struct {
	Name          string `json:"name" validate:"required,max=160"`
	EventID       int64  `json:"event_id" validate:"required,gt=0"`
	StorageBucket string `json:"storage_bucket" validate:"max=63"`
	StoragePath   string `json:"storage_path" validate:"required"`
}

type updatePhotoRequest struct {
	Name          *string `json:"name" validate:"omitempty,max=160"`
	EventID       *int64  `json:"event_id" validate:"omitempty,gt=0"`
	StorageBucket *string `json:"storage_bucket" validate:"omitempty,max=63"`
	StoragePath   *string `json:"storage_path"`
}

func (h *Handler) ListPhotos(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListPhotos")
	defer span.End()

	items, err := h.photoService.List(ctx)
	if err != nil {
		h.fail(ctx, w, "list photos failed", err)
		return
	}
	writeSuccess(ctx, w, http.StatusOK, mapSlice(items, h.photoToDTO))
}

func (h *Handler) CreatePhoto(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.CreatePhoto")
	defer span.End()

	var req createPhotoRequest
	if err := h.decodeJSON(ctx, r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}

	created, err := h.photoService.Create(ctx, photo.Fields{
		Name:          req.Name,
		EventID:       req.EventID,
		StorageBucket: req.StorageBucket,
		StoragePath:   req.StoragePath,
	})
	if err != nil {
		h.fail(ctx, w, "create photo failed", err, "event_id", req.EventID)
		return
	}
	writeSuccess(ctx, w, http.StatusCreated, h.photoToDTO(created))
}

// CreatePhotoWithImage accepts multipart fields file, name, event_id and an
// optional bucket.
func (h *Handler) CreatePhotoWithImage(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.CreatePhotoWithImage")
	defer span.End()

	if err := h.parseMultipart(w, r); err != nil {
		writeError(ctx, w, err)
		return
	}
	defer r.MultipartForm.RemoveAll()

	eventID, err := strconv.ParseInt(strings.TrimSpace(r.FormValue("event_id")), 10, 64)
	if err != nil {
		writeError(ctx, w, fmt.Errorf("%w: event_id must be an integer", usecase.ErrInvalidInput))
		return
	}
	fileName, data, err := h.readFormFile(ctx, r, "file")
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	created, err := h.photoService.CreateWithImage(ctx, usecase.PhotoUploadInput{
		Name:     r.FormValue("name"),
		EventID:  eventID,
		Bucket:   r.FormValue("bucket"),
		FileName: fileName,
		Data:     data,
	})
	if err != nil {
		h.fail(ctx, w, "create photo with image failed", err, "event_id", eventID, "file_name", fileName)
		return
	}
	writeSuccess(ctx, w, http.StatusCreated, h.photoToDTO(created))
}

func (h *Handler) UpdatePhoto(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.UpdatePhoto")
	defer span.End()

	id, err := pathID(r)
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	var req updatePhotoRequest
	if err := h.decodeJSON(ctx, r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}

	updated, err := h.photoService.Update(ctx, id, photo.Patch{
		Name:          req.Name,
		EventID:       req.EventID,
		StorageBucket: req.StorageBucket,
		StoragePath:   req.StoragePath,
	})
	if err != nil {
		h.fail(ctx, w, "update photo failed", err, "photo_id", id)
		return
	}
	writeSuccess(ctx, w, http.StatusOK, h.photoToDTO(updated))
}

// ReplacePhotoImage uploads a new file for an existing photo. An optional
// name field renames the photo in the same call.
func (h *Handler) ReplacePhotoImage(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ReplacePhotoImage")
	defer span.End()

	id, err := pathID(r)
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	if err := h.parseMultipart(w, r); err != nil {
		writeError(ctx, w, err)
		return
	}
	defer r.MultipartForm.RemoveAll()

	fileName, data, err := h.readFormFile(ctx, r, "file")
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	updated, err := h.photoService.ReplaceImage(ctx, id, usecase.PhotoUploadInput{
		Name:     r.FormValue("name"),
		Bucket:   r.FormValue("bucket"),
		FileName: fileName,
		Data:     data,
	})
	if err != nil {
		h.fail(ctx, w, "replace photo image failed", err, "photo_id", id, "file_name", fileName)
		return
	}
	writeSuccess(ctx, w, http.StatusOK, h.photoToDTO(updated))
}

func (h *Handler) DeletePhoto(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.DeletePhoto")
	defer span.End()

	id, err := pathID(r)
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	if err := h.photoService.Delete(ctx, id); err != nil {
		h.fail(ctx, w, "delete photo failed", err, "photo_id", id)
		return
	}
	writeSuccess(ctx, w, http.StatusOK, deletedDTO{ID: id, Deleted: true})
}

func (h *Handler) photoToDTO(p photo.Photo) photoDTO {
	if h.uploadService == nil {
		return photoToDTO(p, nil)
	}
	return photoToDTO(p, h.uploadService.PublicURL)
}

func (h *Handler) parseMultipart(w http.ResponseWriter, r *http.Request) error {
	r.Body = http.MaxBytesReader(w, r.Body, h.maxUpload)
	if err := r.ParseMultipartForm(multipartMemoryBytes); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			return fmt.Errorf("%w: request exceeds %d bytes", usecase.ErrInvalidInput, tooLarge.Limit)
		}
		return fmt.Errorf("%w: invalid multipart form: %v", usecase.ErrInvalidInput, err)
	}
	return nil
}

func (h *Handler) readFormFile(ctx context.Context, r *http.Request, field string) (string, []byte, error) {
	headers := r.MultipartForm.File[field]
	if len(headers) == 0 {
		return "", nil, fmt.Errorf("%w: multipart field %q is required", usecase.ErrInvalidInput, field)
	}
	data, err := readFileHeader(headers[0])
	if err != nil {
		h.logger.WarnContext(ctx, "read multipart file failed", "field", field, "file_name", headers[0].Filename, "error", err)
		return "", nil, err
	}
	return headers[0].Filename, data, nil
}

func readFileHeader(header *multipart.FileHeader) ([]byte, error) {
	file, err := header.Open()
	if err != nil {
		return nil, fmt.Errorf("%w: open %q: %v", usecase.ErrInvalidInput, header.Filename, err)
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		return nil, fmt.Errorf("%w: read %q: %v", usecase.ErrInvalidInput, header.Filename, err)
	}
	return data, nil
}
