package email

import (
	"errors"
	"net/smtp"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/unand-tendik/tendik-backend-go/internal/config"
)

func newTestService(t *testing.T, cfg config.SMTPConfig) *emailServiceImpl {
	t.Helper()
	svc, err := NewEmailService(cfg)
	require.NoError(t, err)
	impl := svc.(*emailServiceImpl)
	impl.backoff = 0
	return impl
}

func TestSendCutiDecision_SkipsWithoutHost(t *testing.T) {
	svc := newTestService(t, config.SMTPConfig{})
	called := false
	svc.send = func(string, smtp.Auth, string, []string, []byte) error {
		called = true
		return nil
	}

	require.NoError(t, svc.SendCutiDecision("a@unand.ac.id", CutiDecisionData{Approved: true}))
	assert.False(t, called)
}

func TestSendCutiDecision_RendersTemplate(t *testing.T) {
	svc := newTestService(t, config.SMTPConfig{Host: "smtp.local", Port: 25, From: "noreply@unand.ac.id", FromName: "Tendik"})
	var sent string
	var recipients []string
	svc.send = func(addr string, a smtp.Auth, from string, to []string, msg []byte) error {
		assert.Equal(t, "smtp.local:25", addr)
		assert.Nil(t, a)
		recipients = to
		sent = string(msg)
		return nil
	}

	err := svc.SendCutiDecision("budi@unand.ac.id", CutiDecisionData{
		Name:            "Budi",
		Judul:           "Cuti tahunan",
		TanggalMulai:    "2024-03-10",
		TanggalSelesai:  "2024-03-12",
		JumlahHari:      3,
		AlasanPenolakan: "Bentrok dengan akreditasi",
	})
	require.NoError(t, err)

	assert.Equal(t, []string{"budi@unand.ac.id"}, recipients)
	assert.Contains(t, sent, "Subject: Pengajuan Cuti Ditolak\r\n")
	assert.Contains(t, sent, "DITOLAK")
	assert.Contains(t, sent, "Bentrok dengan akreditasi")
	assert.Contains(t, sent, "(3 hari)")
}

func TestSendCutiDecision_Retries(t *testing.T) {
	svc := newTestService(t, config.SMTPConfig{Host: "smtp.local", Port: 25})
	attempts := 0
	svc.send = func(string, smtp.Auth, string, []string, []byte) error {
		attempts++
		return errors.New("connection refused")
	}

	err := svc.SendCutiDecision("a@unand.ac.id", CutiDecisionData{Approved: true})
	require.Error(t, err)
	assert.True(t, strings.Contains(err.Error(), "after 3 attempts"))
	assert.Equal(t, maxRetries, attempts)
}
