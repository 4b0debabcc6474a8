package setting

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/unand-tendik/tendik-backend-go/internal/pkg/validator"
)

func intPtr(i int) *int { return &i }

func TestUpdateAttendanceConfigRequest_Validate(t *testing.T) {
	tests := []struct {
		name   string
		req    UpdateAttendanceConfigRequest
		fields []string
	}{
		{"valid", UpdateAttendanceConfigRequest{intPtr(7), intPtr(30), intPtr(10)}, nil},
		{"zero tolerance", UpdateAttendanceConfigRequest{intPtr(0), intPtr(0), intPtr(0)}, nil},
		{"missing all", UpdateAttendanceConfigRequest{}, []string{"startHour", "startMinute", "tolerance"}},
		{"hour out of range", UpdateAttendanceConfigRequest{intPtr(24), intPtr(0), intPtr(15)}, []string{"startHour"}},
		{"minute out of range", UpdateAttendanceConfigRequest{intPtr(8), intPtr(60), intPtr(15)}, []string{"startMinute"}},
		{"negative tolerance", UpdateAttendanceConfigRequest{intPtr(8), intPtr(0), intPtr(-1)}, []string{"tolerance"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.req.Validate()
			if tt.fields == nil {
				assert.NoError(t, err)
				return
			}
			var verrs validator.ValidationErrors
			require.ErrorAs(t, err, &verrs)
			for _, f := range tt.fields {
				assert.Contains(t, verrs.ToMap(), f)
			}
		})
	}
}

func TestAttendanceConfig_StartClock(t *testing.T) {
	assert.Equal(t, "08:00", DefaultAttendanceConfig().StartClock())
	assert.Equal(t, "07:05", AttendanceConfig{StartHour: 7, StartMinute: 5}.StartClock())
}
