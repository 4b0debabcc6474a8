package cuti

import (
	"context"
	"sort"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/unand-tendik/tendik-backend-go/internal/domain/activity"
	"github.com/unand-tendik/tendik-backend-go/internal/domain/cuti"
	"github.com/unand-tendik/tendik-backend-go/internal/domain/user"
	"github.com/unand-tendik/tendik-backend-go/internal/pkg/email"
	"github.com/unand-tendik/tendik-backend-go/internal/pkg/jwt"
	"github.com/unand-tendik/tendik-backend-go/internal/pkg/validator"
)

type fakeCutiRepo struct {
	rows   map[int64]cuti.Cuti
	nextID int64
}

func newFakeCutiRepo() *fakeCutiRepo {
	return &fakeCutiRepo{rows: map[int64]cuti.Cuti{}}
}

func (f *fakeCutiRepo) Create(ctx context.Context, c cuti.Cuti) (cuti.Cuti, error) {
	f.nextID++
	c.ID = f.nextID
	c.CreatedAt = time.Unix(f.nextID, 0)
	c.UserName, c.UserEmail = "Budi", "budi@unand.ac.id"
	f.rows[c.ID] = c
	return c, nil
}

func (f *fakeCutiRepo) GetByID(ctx context.Context, id int64) (cuti.Cuti, error) {
	c, ok := f.rows[id]
	if !ok {
		return cuti.Cuti{}, cuti.ErrCutiNotFound
	}
	return c, nil
}

func (f *fakeCutiRepo) List(ctx context.Context, filter cuti.CutiFilter) ([]cuti.Cuti, error) {
	var out []cuti.Cuti
	for _, c := range f.rows {
		if filter.UserID != nil && c.UserID != *filter.UserID {
			continue
		}
		if filter.Status != "" && string(c.Status) != filter.Status {
			continue
		}
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (f *fakeCutiRepo) UpdateStatus(ctx context.Context, id int64, status cuti.Status, reason *string) (cuti.Cuti, error) {
	c, ok := f.rows[id]
	if !ok {
		return cuti.Cuti{}, cuti.ErrCutiNotFound
	}
	c.Status = status
	c.AlasanPenolakan = reason
	f.rows[id] = c
	// The real query does not join the user.
	c.UserName, c.UserEmail = "", ""
	return c, nil
}

type sentMail struct {
	to   string
	data email.CutiDecisionData
}

type fakeEmail struct {
	mu   sync.Mutex
	sent []sentMail
}

func (f *fakeEmail) SendCutiDecision(to string, data email.CutiDecisionData) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.sent = append(f.sent, sentMail{to, data})
	return nil
}

func (f *fakeEmail) count() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.sent)
}

type fakeRecorder struct {
	mu      sync.Mutex
	entries []activity.Metadata
	actions []activity.Action
}

func (f *fakeRecorder) Record(ctx context.Context, userID int64, action activity.Action, metadata activity.Metadata) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.actions = append(f.actions, action)
	f.entries = append(f.entries, metadata)
}

var (
	staffCtx = jwt.WithCaller(context.Background(), jwt.Caller{UserID: 2, Role: user.RoleTenaga})
	adminCtx = jwt.WithCaller(context.Background(), jwt.Caller{UserID: 1, Role: user.RoleAdmin})
)

func validRequest() cuti.CreateCutiRequest {
	return cuti.CreateCutiRequest{
		Judul:          "Cuti tahunan",
		TanggalMulai:   "2024-03-10",
		TanggalSelesai: "2024-03-12",
		Alasan:         "Keperluan keluarga",
	}
}

func TestCutiService_Create(t *testing.T) {
	rec := &fakeRecorder{}
	svc := NewCutiService(newFakeCutiRepo(), &fakeEmail{}, rec)

	resp, err := svc.Create(staffCtx, validRequest())
	require.NoError(t, err)

	assert.Equal(t, cuti.StatusPending, resp.Status)
	assert.Equal(t, int64(2), resp.UserID)
	assert.Equal(t, 3, resp.JumlahHari)
	assert.Equal(t, []activity.Action{activity.ActionCutiCreate}, rec.actions)
}

func TestCutiService_Create_InvalidRange(t *testing.T) {
	svc := NewCutiService(newFakeCutiRepo(), &fakeEmail{}, &fakeRecorder{})
	req := validRequest()
	req.TanggalSelesai = "2024-03-09"

	_, err := svc.Create(staffCtx, req)
	var verrs validator.ValidationErrors
	require.ErrorAs(t, err, &verrs)
	assert.Contains(t, verrs.ToMap(), "tanggalSelesai")
}

func TestCutiService_ApproveAndReject(t *testing.T) {
	repo := newFakeCutiRepo()
	mail := &fakeEmail{}
	rec := &fakeRecorder{}
	svc := NewCutiService(repo, mail, rec)

	created, err := svc.Create(staffCtx, validRequest())
	require.NoError(t, err)

	rejected, err := svc.Reject(adminCtx, created.ID, cuti.RejectCutiRequest{AlasanPenolakan: "Bentrok"})
	require.NoError(t, err)
	assert.Equal(t, cuti.StatusRejected, rejected.Status)
	require.NotNil(t, rejected.AlasanPenolakan)
	assert.Equal(t, "Bentrok", *rejected.AlasanPenolakan)

	// A terminal decision may be overridden; the reason is cleared.
	approved, err := svc.Approve(adminCtx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, cuti.StatusApproved, approved.Status)
	assert.Nil(t, approved.AlasanPenolakan)

	require.Len(t, rec.entries, 3)
	assert.Equal(t, "MENUNGGU_KONFIRMASI", rec.entries[1]["previousStatus"])
	assert.Equal(t, "DITOLAK", rec.entries[2]["previousStatus"])

	require.Eventually(t, func() bool { return mail.count() == 2 }, time.Second, 10*time.Millisecond)
	mail.mu.Lock()
	defer mail.mu.Unlock()
	for _, m := range mail.sent {
		assert.Equal(t, "budi@unand.ac.id", m.to)
		assert.Equal(t, 3, m.data.JumlahHari)
	}
}

func TestCutiService_DecisionRequiresAdmin(t *testing.T) {
	repo := newFakeCutiRepo()
	svc := NewCutiService(repo, &fakeEmail{}, &fakeRecorder{})
	created, err := svc.Create(staffCtx, validRequest())
	require.NoError(t, err)

	_, err = svc.Approve(staffCtx, created.ID)
	assert.ErrorIs(t, err, user.ErrAdminPrivilegeRequired)

	_, err = svc.List(staffCtx, cuti.CutiFilter{})
	assert.ErrorIs(t, err, user.ErrAdminPrivilegeRequired)
}

func TestCutiService_NotFound(t *testing.T) {
	svc := NewCutiService(newFakeCutiRepo(), &fakeEmail{}, &fakeRecorder{})

	_, err := svc.Approve(adminCtx, 404)
	assert.ErrorIs(t, err, cuti.ErrCutiNotFound)
	_, err = svc.Reject(adminCtx, 404, cuti.RejectCutiRequest{})
	assert.ErrorIs(t, err, cuti.ErrCutiNotFound)
}

func TestCutiService_ListMineNewestFirst(t *testing.T) {
	repo := newFakeCutiRepo()
	svc := NewCutiService(repo, nil, &fakeRecorder{})
	for i := 0; i < 3; i++ {
		_, err := svc.Create(staffCtx, validRequest())
		require.NoError(t, err)
	}
	_, err := svc.Create(adminCtx, validRequest())
	require.NoError(t, err)

	mine, err := svc.ListMine(staffCtx)
	require.NoError(t, err)
	require.Len(t, mine, 3)
	assert.Equal(t, int64(3), mine[0].ID)

	all, err := svc.List(adminCtx, cuti.CutiFilter{Status: "MENUNGGU_KONFIRMASI"})
	require.NoError(t, err)
	assert.Len(t, all, 4)
}
