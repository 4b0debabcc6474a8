package http

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"strings"

	"github.com/unand-tendik/tendik-backend-go/internal/domain/cuti"
	"github.com/unand-tendik/tendik-backend-go/internal/handler/http/response"
)

type CutiHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	ListMine(w http.ResponseWriter, r *http.Request)

	// Admin
	List(w http.ResponseWriter, r *http.Request)
	Approve(w http.ResponseWriter, r *http.Request)
	Reject(w http.ResponseWriter, r *http.Request)
}

type cutiHandlerImpl struct {
	cutiService cuti.CutiService
}

func NewCutiHandler(cutiService cuti.CutiService) CutiHandler {
	return &cutiHandlerImpl{cutiService: cutiService}
}

// Create handles POST /cuti
func (h *cutiHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var req cuti.CreateCutiRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Create cuti decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	created, err := h.cutiService.Create(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Created(w, "Pengajuan cuti berhasil dikirim", created)
}

// ListMine handles GET /cuti
func (h *cutiHandlerImpl) ListMine(w http.ResponseWriter, r *http.Request) {
	requests, err := h.cutiService.ListMine(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, requests)
}

// List handles GET /admin/cuti
func (h *cutiHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	params := newQueryParser(r)
	filter := cuti.CutiFilter{
		UserID: params.ID("userId"),
		Status: strings.ToUpper(r.URL.Query().Get("status")),
	}
	if err := params.Err(); err != nil {
		response.HandleError(w, err)
		return
	}

	requests, err := h.cutiService.List(r.Context(), filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, requests)
}

// Approve handles PUT /cuti/{id}/approve
func (h *cutiHandlerImpl) Approve(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(r)
	if !ok {
		response.BadRequest(w, "Invalid cuti ID", nil)
		return
	}

	updated, err := h.cutiService.Approve(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Cuti disetujui", updated)
}

// Reject handles PUT /cuti/{id}/reject. The reason is optional.
func (h *cutiHandlerImpl) Reject(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(r)
	if !ok {
		response.BadRequest(w, "Invalid cuti ID", nil)
		return
	}

	var req cuti.RejectCutiRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
		slog.Error("Reject cuti decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	updated, err := h.cutiService.Reject(r.Context(), id, req)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Cuti ditolak", updated)
}
