package activity

import "time"

// Action identifies what a user did.
type Action string

const (
	ActionLogin              Action = "LOGIN"
	ActionAttendanceCheckIn  Action = "ATTENDANCE_CHECKIN"
	ActionAttendanceCheckOut Action = "ATTENDANCE_CHECKOUT"
	ActionCutiCreate         Action = "CUTI_CREATE"
	ActionCutiApprove        Action = "CUTI_APPROVE"
	ActionCutiReject         Action = "CUTI_REJECT"
	ActionReportCreate       Action = "REPORT_CREATE"
	ActionUserCreate         Action = "USER_CREATE"
	ActionUserUpdate         Action = "USER_UPDATE"
	ActionUserDelete         Action = "USER_DELETE"
	ActionTaskCreate         Action = "TASK_CREATE"
	ActionTaskUpdate         Action = "TASK_UPDATE"
	ActionTaskDelete         Action = "TASK_DELETE"
	ActionTaskUpdateStatus   Action = "TASK_UPDATE_STATUS"
	ActionTaskNoteSave       Action = "TASK_NOTE_SAVE"
	ActionSettingsUpdate     Action = "SETTINGS_UPDATE"
	ActionPasswordChange     Action = "PASSWORD_CHANGE"
)

// Metadata is stored as JSONB next to the action.
type Metadata map[string]any

type Log struct {
	ID        int64
	UserID    int64
	Action    Action
	Metadata  Metadata
	CreatedAt time.Time

	// Joined
	UserName string
}
