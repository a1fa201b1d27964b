package httpapi

import (
	"net/http"

	"github.com/riskibarqy/golf-league/internal/usecase"
)

type uploadOutcomeDTO struct {
	FileName string `json:"file_name"`
	URL      string `json:"url,omitempty"`
	Bucket   string `json:"bucket,omitempty"`
	Path     string `json:"path,omitempty"`
	Error    string `json:"error,omitempty"`
	Reason   string `json:"reason,omitempty"`
}

type uploadSummaryDTO struct {
	Uploaded int                `json:"uploaded"`
	Failed   int                `json:"failed"`
	Files    []uploadOutcomeDTO `json:"files"`
}

// UploadImages stores every "file" part of the form in bucket under the
// optional folder. Per-file failures are reported inline.
func (h *Handler) UploadImages(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.UploadImages")
	defer span.End()

	if err := h.parseMultipart(w, r); err != nil {
		writeError(ctx, w, err)
		return
	}
	defer r.MultipartForm.RemoveAll()

	bucket := r.FormValue("bucket")
	folder := r.FormValue("folder")
	headers := r.MultipartForm.File["file"]

	inputs := make([]usecase.UploadInput, 0, len(headers))
	for _, header := range headers {
		data, err := readFileHeader(header)
		if err != nil {
			writeError(ctx, w, err)
			return
		}
		inputs = append(inputs, usecase.UploadInput{
			FileName: header.Filename,
			Data:     data,
			Bucket:   bucket,
			Folder:   folder,
		})
	}

	outcomes, err := h.uploadService.UploadImages(ctx, inputs)
	if err != nil {
		h.fail(ctx, w, "bulk upload failed", err, "files", len(inputs))
		return
	}

	summary := uploadSummaryDTO{Files: make([]uploadOutcomeDTO, 0, len(outcomes))}
	for _, outcome := range outcomes {
		item := uploadOutcomeDTO{FileName: outcome.FileName}
		if outcome.Err != nil {
			summary.Failed++
			item.Error = outcome.Err.Error()
			item.Reason = mapError(outcome.Err).Reason
		} else {
			summary.Uploaded++
			item.URL = outcome.Image.URL
			item.Bucket = outcome.Image.Bucket
			item.Path = outcome.Image.Path
		}
		summary.Files = append(summary.Files, item)
	}

	status := http.StatusOK
	if summary.Uploaded > 0 && summary.Failed == 0 {
		status = http.StatusCreated
	}
	writeSuccess(ctx, w, status, summary)
}
