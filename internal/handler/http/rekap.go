package http

import (
	"net/http"

	"github.com/unand-tendik/tendik-backend-go/internal/domain/rekap"
	"github.com/unand-tendik/tendik-backend-go/internal/handler/http/response"
)

type RekapHandler interface {
	Generate(w http.ResponseWriter, r *http.Request)
	Export(w http.ResponseWriter, r *http.Request)
}

type rekapHandlerImpl struct {
	rekapService rekap.RekapService
}

func NewRekapHandler(rekapService rekap.RekapService) RekapHandler {
	return &rekapHandlerImpl{rekapService: rekapService}
}

func rekapRequest(r *http.Request) rekap.RekapRequest {
	query := r.URL.Query()
	return rekap.RekapRequest{
		Bulan:  query.Get("bulan"),
		Tahun:  query.Get("tahun"),
		From:   query.Get("from"),
		To:     query.Get("to"),
		Format: query.Get("format"),
	}
}

// Generate handles GET /admin/laporan-rekap
func (h *rekapHandlerImpl) Generate(w http.ResponseWriter, r *http.Request) {
	result, err := h.rekapService.Generate(r.Context(), rekapRequest(r))
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, result)
}

// Export handles GET /admin/laporan-rekap/export
func (h *rekapHandlerImpl) Export(w http.ResponseWriter, r *http.Request) {
	file, err := h.rekapService.Export(r.Context(), rekapRequest(r))
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.File(w, file)
}
