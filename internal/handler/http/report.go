package http

import (
	"errors"
	"log/slog"
	"mime/multipart"
	"net/http"

	"github.com/unand-tendik/tendik-backend-go/internal/domain/report"
	"github.com/unand-tendik/tendik-backend-go/internal/handler/http/response"
)

const multipartMemory = 32 << 20

type ReportHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
}

type reportHandlerImpl struct {
	reportService report.ReportService
	maxFiles      int
	maxFileSize   int64
}

func NewReportHandler(reportService report.ReportService, maxFiles int, maxFileSize int64) ReportHandler {
	return &reportHandlerImpl{
		reportService: reportService,
		maxFiles:      maxFiles,
		maxFileSize:   maxFileSize,
	}
}

// Create handles POST /reports (multipart/form-data)
func (h *reportHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	// One extra file worth of headroom covers the form fields and part headers.
	r.Body = http.MaxBytesReader(w, r.Body, int64(h.maxFiles+1)*h.maxFileSize)
	if err := r.ParseMultipartForm(multipartMemory); err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			response.HandleError(w, report.ErrAttachmentTooLarge)
			return
		}
		slog.Error("Create report parse error", "error", err)
		response.BadRequest(w, "Invalid multipart form", nil)
		return
	}
	defer r.MultipartForm.RemoveAll()

	req := report.CreateReportRequest{
		Date:        r.FormValue("date"),
		Note:        r.FormValue("note"),
		MaxFiles:    h.maxFiles,
		MaxFileSize: h.maxFileSize,
	}

	headers := r.MultipartForm.File["attachments"]
	files := make([]multipart.File, 0, len(headers))
	defer func() {
		for _, f := range files {
			_ = f.Close()
		}
	}()

	for _, fh := range headers {
		f, err := fh.Open()
		if err != nil {
			slog.Error("Failed to open uploaded file", "filename", fh.Filename, "error", err)
			response.BadRequest(w, "Failed to read uploaded file", nil)
			return
		}
		files = append(files, f)
		req.Files = append(req.Files, report.Upload{
			Filename:    fh.Filename,
			ContentType: fh.Header.Get("Content-Type"),
			Size:        fh.Size,
			Content:     f,
		})
	}

	created, err := h.reportService.Create(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Created(w, "Laporan berhasil dikirim", created)
}

// List handles GET /reports
func (h *reportHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	params := newQueryParser(r)
	filter := report.ReportFilter{
		UserID: params.ID("userId"),
		From:   query.Get("from"),
		To:     query.Get("to"),
	}
	if err := params.Err(); err != nil {
		response.HandleError(w, err)
		return
	}

	reports, err := h.reportService.List(r.Context(), filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, reports)
}
