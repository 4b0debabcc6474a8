package setting

import "fmt"

// KeyAttendanceConfig is the system_settings key holding AttendanceConfig.
const KeyAttendanceConfig = "ATTENDANCE_CONFIG"

// AttendanceConfig defines the work-day start and the grace period in minutes.
type AttendanceConfig struct {
	StartHour   int `json:"startHour"`
	StartMinute int `json:"startMinute"`
	Tolerance   int `json:"tolerance"`
}

// DefaultAttendanceConfig is 08:00 with a 15 minute tolerance.
func DefaultAttendanceConfig() AttendanceConfig {
	return AttendanceConfig{StartHour: 8, StartMinute: 0, Tolerance: 15}
}

// StartClock formats the work start as HH:MM.
func (c AttendanceConfig) StartClock() string {
	return fmt.Sprintf("%02d:%02d", c.StartHour, c.StartMinute)
}
