package task

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/unand-tendik/tendik-backend-go/internal/pkg/validator"
)

func strPtr(s string) *string { return &s }

func TestTaskRequest_Validate(t *testing.T) {
	req := TaskRequest{Title: " Susun laporan ", DueDate: strPtr("2024-03-20")}
	require.NoError(t, req.Validate())
	assert.Equal(t, "Susun laporan", req.Title)
	assert.Equal(t, PriorityNormal, req.Prioritas)
	require.NotNil(t, req.Due)
	assert.Equal(t, 20, req.Due.Day())

	req = TaskRequest{Title: "x", Prioritas: "tinggi", DueDate: strPtr("2024-03-20T10:00:00+07:00")}
	require.NoError(t, req.Validate())
	assert.Equal(t, PriorityHigh, req.Prioritas)
	require.NotNil(t, req.Due)

	req = TaskRequest{Prioritas: "URGENT", DueDate: strPtr("besok")}
	var verrs validator.ValidationErrors
	require.ErrorAs(t, req.Validate(), &verrs)
	assert.Contains(t, verrs.ToMap(), "title")
	assert.Contains(t, verrs.ToMap(), "prioritas")
	assert.Contains(t, verrs.ToMap(), "dueDate")
}

func TestUpdateStatusRequest_Validate(t *testing.T) {
	req := UpdateStatusRequest{Status: "in_progress"}
	require.NoError(t, req.Validate())
	assert.Equal(t, "IN_PROGRESS", req.Status)

	req = UpdateStatusRequest{Status: "CLOSED"}
	assert.Error(t, req.Validate())
}

func TestNoteRequest_Validate(t *testing.T) {
	req := NoteRequest{Text: "   "}
	var verrs validator.ValidationErrors
	require.ErrorAs(t, req.Validate(), &verrs)
	assert.Equal(t, "Catatan tidak boleh kosong", verrs.ToMap()["text"])
}

func TestTask_IsInvolved(t *testing.T) {
	assignee := int64(7)
	tk := Task{CreatedByID: 3, AssigneeID: &assignee}

	assert.True(t, tk.IsInvolved(3))
	assert.True(t, tk.IsInvolved(7))
	assert.False(t, tk.IsInvolved(9))
}
