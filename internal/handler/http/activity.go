package http

import (
	"net/http"

	"github.com/unand-tendik/tendik-backend-go/internal/domain/activity"
	"github.com/unand-tendik/tendik-backend-go/internal/handler/http/response"
)

type ActivityHandler interface {
	List(w http.ResponseWriter, r *http.Request)
}

type activityHandlerImpl struct {
	activityService activity.ActivityService
}

func NewActivityHandler(activityService activity.ActivityService) ActivityHandler {
	return &activityHandlerImpl{activityService: activityService}
}

// List handles GET /admin/activity
func (h *activityHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	params := newQueryParser(r)
	filter := activity.ActivityFilter{
		UserID: params.ID("userId"),
		From:   query.Get("from"),
		To:     query.Get("to"),
		Limit:  params.Int("limit"),
	}
	if err := params.Err(); err != nil {
		response.HandleError(w, err)
		return
	}

	logs, err := h.activityService.List(r.Context(), filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, logs)
}
