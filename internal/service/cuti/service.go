package cuti

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/unand-tendik/tendik-backend-go/internal/domain/activity"
	"github.com/unand-tendik/tendik-backend-go/internal/domain/cuti"
	"github.com/unand-tendik/tendik-backend-go/internal/domain/user"
	"github.com/unand-tendik/tendik-backend-go/internal/pkg/email"
	"github.com/unand-tendik/tendik-backend-go/internal/pkg/jwt"
	"github.com/unand-tendik/tendik-backend-go/internal/pkg/validator"
)

type CutiServiceImpl struct {
	cutiRepo cuti.CutiRepository
	email    email.EmailService
	activity activity.Recorder
}

func NewCutiService(cutiRepo cuti.CutiRepository, emailService email.EmailService, recorder activity.Recorder) cuti.CutiService {
	return &CutiServiceImpl{
		cutiRepo: cutiRepo,
		email:    emailService,
		activity: recorder,
	}
}

// Create implements cuti.CutiService.
func (s *CutiServiceImpl) Create(ctx context.Context, req cuti.CreateCutiRequest) (cuti.CutiResponse, error) {
	caller, err := jwt.CallerFromContext(ctx)
	if err != nil {
		return cuti.CutiResponse{}, err
	}
	if err := req.Validate(); err != nil {
		return cuti.CutiResponse{}, err
	}

	created, err := s.cutiRepo.Create(ctx, cuti.Cuti{
		UserID:         caller.UserID,
		Judul:          req.Judul,
		TanggalMulai:   req.StartDate,
		TanggalSelesai: req.EndDate,
		Alasan:         req.Alasan,
		Status:         cuti.StatusPending,
	})
	if err != nil {
		return cuti.CutiResponse{}, fmt.Errorf("failed to create cuti: %w", err)
	}

	s.activity.Record(ctx, caller.UserID, activity.ActionCutiCreate, activity.Metadata{
		"cutiId":       created.ID,
		"jumlahHari":   cuti.DaysBetween(created.TanggalMulai, created.TanggalSelesai) + 1,
		"tanggalMulai": req.TanggalMulai,
	})
	return cuti.ToResponse(created), nil
}

// ListMine implements cuti.CutiService.
func (s *CutiServiceImpl) ListMine(ctx context.Context) ([]cuti.CutiResponse, error) {
	caller, err := jwt.CallerFromContext(ctx)
	if err != nil {
		return nil, err
	}
	return s.list(ctx, cuti.CutiFilter{UserID: &caller.UserID})
}

// List implements cuti.CutiService.
func (s *CutiServiceImpl) List(ctx context.Context, filter cuti.CutiFilter) ([]cuti.CutiResponse, error) {
	caller, err := jwt.CallerFromContext(ctx)
	if err != nil {
		return nil, err
	}
	if !caller.Can(user.PermissionCutiApprove) {
		return nil, user.ErrAdminPrivilegeRequired
	}
	if err := filter.Validate(); err != nil {
		return nil, err
	}
	return s.list(ctx, filter)
}

func (s *CutiServiceImpl) list(ctx context.Context, filter cuti.CutiFilter) ([]cuti.CutiResponse, error) {
	rows, err := s.cutiRepo.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list cuti: %w", err)
	}
	responses := make([]cuti.CutiResponse, 0, len(rows))
	for _, c := range rows {
		responses = append(responses, cuti.ToResponse(c))
	}
	return responses, nil
}

// Approve implements cuti.CutiService.
func (s *CutiServiceImpl) Approve(ctx context.Context, id int64) (cuti.CutiResponse, error) {
	return s.decide(ctx, id, cuti.StatusApproved, nil)
}

// Reject implements cuti.CutiService.
func (s *CutiServiceImpl) Reject(ctx context.Context, id int64, req cuti.RejectCutiRequest) (cuti.CutiResponse, error) {
	if err := req.Validate(); err != nil {
		return cuti.CutiResponse{}, err
	}
	var reason *string
	if req.AlasanPenolakan != "" {
		reason = &req.AlasanPenolakan
	}
	return s.decide(ctx, id, cuti.StatusRejected, reason)
}

// decide applies a decision from any current status. Overriding an earlier
// decision is allowed but logged, and the previous status is kept in the
// activity entry.
func (s *CutiServiceImpl) decide(ctx context.Context, id int64, status cuti.Status, reason *string) (cuti.CutiResponse, error) {
	caller, err := jwt.CallerFromContext(ctx)
	if err != nil {
		return cuti.CutiResponse{}, err
	}
	if !caller.Can(user.PermissionCutiApprove) {
		return cuti.CutiResponse{}, user.ErrAdminPrivilegeRequired
	}

	current, err := s.cutiRepo.GetByID(ctx, id)
	if err != nil {
		return cuti.CutiResponse{}, err
	}

	if current.Status.IsTerminal() {
		slog.Warn("cuti decision overrides an earlier decision",
			"cuti_id", id,
			"previous_status", current.Status,
			"new_status", status,
			"admin_id", caller.UserID,
		)
	}

	updated, err := s.cutiRepo.UpdateStatus(ctx, id, status, reason)
	if err != nil {
		return cuti.CutiResponse{}, err
	}
	updated.UserName, updated.UserEmail = current.UserName, current.UserEmail

	action := activity.ActionCutiApprove
	if status == cuti.StatusRejected {
		action = activity.ActionCutiReject
	}
	s.activity.Record(ctx, caller.UserID, action, activity.Metadata{
		"cutiId":         id,
		"previousStatus": string(current.Status),
	})

	s.notify(updated)
	return cuti.ToResponse(updated), nil
}

// notify mails the requester in the background.
func (s *CutiServiceImpl) notify(c cuti.Cuti) {
	if s.email == nil || c.UserEmail == "" {
		return
	}

	data := email.CutiDecisionData{
		Name:           c.UserName,
		Judul:          c.Judul,
		TanggalMulai:   c.TanggalMulai.Format(validator.DateLayout),
		TanggalSelesai: c.TanggalSelesai.Format(validator.DateLayout),
		JumlahHari:     cuti.DaysBetween(c.TanggalMulai, c.TanggalSelesai) + 1,
		Approved:       c.Status == cuti.StatusApproved,
	}
	if c.AlasanPenolakan != nil {
		data.AlasanPenolakan = *c.AlasanPenolakan
	}

	go func() {
		if err := s.email.SendCutiDecision(c.UserEmail, data); err != nil {
			slog.Error("failed to send cuti decision email", "cuti_id", c.ID, "error", err)
		}
	}()
}
