package http

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"

	"github.com/unand-tendik/tendik-backend-go/internal/domain/attendance"
	"github.com/unand-tendik/tendik-backend-go/internal/handler/http/response"
)

type AttendanceHandler interface {
	CheckIn(w http.ResponseWriter, r *http.Request)
	CheckOut(w http.ResponseWriter, r *http.Request)
	History(w http.ResponseWriter, r *http.Request)
	Export(w http.ResponseWriter, r *http.Request)
}

type attendanceHandlerImpl struct {
	attendanceService attendance.AttendanceService
}

func NewAttendanceHandler(attendanceService attendance.AttendanceService) AttendanceHandler {
	return &attendanceHandlerImpl{
		attendanceService: attendanceService,
	}
}

// CheckIn handles POST /attendance/checkin
func (h *attendanceHandlerImpl) CheckIn(w http.ResponseWriter, r *http.Request) {
	result, err := h.attendanceService.CheckIn(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Created(w, result.Message, result)
}

// CheckOut handles POST /attendance/checkout. The body is optional.
func (h *attendanceHandlerImpl) CheckOut(w http.ResponseWriter, r *http.Request) {
	var req attendance.CheckOutRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
		slog.Error("CheckOut decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.attendanceService.CheckOut(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Check-out berhasil. Hati-hati di jalan!", result)
}

// History handles GET /attendance/history
func (h *attendanceHandlerImpl) History(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	params := newQueryParser(r)
	filter := attendance.HistoryFilter{
		UserID: params.ID("userId"),
		From:   query.Get("from"),
		To:     query.Get("to"),
		Page:   params.Int("page"),
		Limit:  params.Int("limit"),
	}
	if err := params.Err(); err != nil {
		response.HandleError(w, err)
		return
	}

	result, err := h.attendanceService.History(r.Context(), filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMeta(w, result.Attendances, &response.Meta{
		Page:       result.Page,
		Limit:      result.Limit,
		TotalItems: result.TotalCount,
		TotalPages: result.TotalPages,
	})
}

// Export handles GET /admin/export/attendance
func (h *attendanceHandlerImpl) Export(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	filter := attendance.ExportFilter{
		From:   query.Get("from"),
		To:     query.Get("to"),
		Format: query.Get("format"),
	}

	file, err := h.attendanceService.Export(r.Context(), filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.File(w, file)
}
