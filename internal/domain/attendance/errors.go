package attendance

import "errors"

// Attendance domain errors
var (
	// Check-in errors
	ErrAlreadyCheckedIn  = errors.New("Anda sudah melakukan check-in hari ini.")
	ErrAttendanceNotOpen = errors.New("Absen belum dibuka")
	ErrNotCheckedIn      = errors.New("Anda belum melakukan check-in hari ini.")
	ErrAlreadyCheckedOut = errors.New("Anda sudah melakukan check-out hari ini.")

	// General errors
	ErrAttendanceNotFound = errors.New("attendance record not found")
)
