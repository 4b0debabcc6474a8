package storage

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocalStorage_UploadAndDelete(t *testing.T) {
	dir := t.TempDir()
	s, err := NewLocalStorage(dir, "/uploads/")
	require.NoError(t, err)
	ctx := context.Background()

	stored, err := s.Upload(ctx, strings.NewReader("laporan"), "abc.pdf", "application/pdf")
	require.NoError(t, err)
	assert.Equal(t, "abc.pdf", stored)
	assert.Equal(t, "/uploads/abc.pdf", s.URL(stored))

	content, err := os.ReadFile(filepath.Join(dir, "abc.pdf"))
	require.NoError(t, err)
	assert.Equal(t, "laporan", string(content))

	require.NoError(t, s.Delete(ctx, stored))
	_, err = os.Stat(filepath.Join(dir, "abc.pdf"))
	assert.True(t, os.IsNotExist(err))

	// deleting twice is fine
	assert.NoError(t, s.Delete(ctx, stored))
}

func TestLocalStorage_StaysInsideBase(t *testing.T) {
	dir := t.TempDir()
	s, err := NewLocalStorage(filepath.Join(dir, "uploads"), "/uploads")
	require.NoError(t, err)

	stored, err := s.Upload(context.Background(), strings.NewReader("x"), "../../escape.txt", "text/plain")
	require.NoError(t, err)
	assert.Equal(t, "escape.txt", stored)
	_, err = os.Stat(filepath.Join(dir, "uploads", "escape.txt"))
	assert.NoError(t, err)

	_, err = s.Upload(context.Background(), strings.NewReader("x"), "..", "text/plain")
	assert.ErrorIs(t, err, ErrInvalidPath)
}
