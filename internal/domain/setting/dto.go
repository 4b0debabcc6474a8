package setting

import "github.com/unand-tendik/tendik-backend-go/internal/pkg/validator"

const MaxToleranceMinutes = 240

type UpdateAttendanceConfigRequest struct {
	StartHour   *int `json:"startHour"`
	StartMinute *int `json:"startMinute"`
	Tolerance   *int `json:"tolerance"`
}

func (r *UpdateAttendanceConfigRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.StartHour == nil {
		errs = append(errs, validator.ValidationError{Field: "startHour", Message: "startHour is required"})
	} else if *r.StartHour < 0 || *r.StartHour > 23 {
		errs = append(errs, validator.ValidationError{Field: "startHour", Message: "startHour must be between 0 and 23"})
	}
	if r.StartMinute == nil {
		errs = append(errs, validator.ValidationError{Field: "startMinute", Message: "startMinute is required"})
	} else if *r.StartMinute < 0 || *r.StartMinute > 59 {
		errs = append(errs, validator.ValidationError{Field: "startMinute", Message: "startMinute must be between 0 and 59"})
	}
	if r.Tolerance == nil {
		errs = append(errs, validator.ValidationError{Field: "tolerance", Message: "tolerance is required"})
	} else if *r.Tolerance < 0 || *r.Tolerance > MaxToleranceMinutes {
		errs = append(errs, validator.ValidationError{Field: "tolerance", Message: "tolerance must be between 0 and " + validator.Itoa(MaxToleranceMinutes)})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

func (r UpdateAttendanceConfigRequest) ToConfig() AttendanceConfig {
	return AttendanceConfig{StartHour: *r.StartHour, StartMinute: *r.StartMinute, Tolerance: *r.Tolerance}
}
