package attendance

import (
	"strings"
	"time"

	"github.com/frahmantamala/hrms-lite/internal"
)

// MarkAttendanceDTO represents the request payload for marking attendance.
// Date accepts YYYY-MM-DD or full RFC 3339; any time-of-day component is
// discarded before storage.
type MarkAttendanceDTO struct {
	EmployeeID string `json:"employee_id"`
	Date       string `json:"date"`
	Status     string `json:"status"`
}

func (dto *MarkAttendanceDTO) Normalize() {
	dto.EmployeeID = strings.TrimSpace(dto.EmployeeID)
	dto.Date = strings.TrimSpace(dto.Date)
	if dto.Status == "" {
		dto.Status = StatusPresent
	}
}

func (dto MarkAttendanceDTO) Validate() error {
	if dto.EmployeeID == "" {
		return internal.NewValidationError("employee_id is required", internal.ErrCodeInvalidEmployee)
	}
	if dto.Date == "" {
		return internal.NewValidationError("date is required", internal.ErrCodeInvalidDate)
	}
	if _, err := ParseDate(dto.Date); err != nil {
		return internal.NewValidationError("date must be a valid ISO-8601 date", internal.ErrCodeInvalidDate)
	}
	if !IsValidStatus(dto.Status) {
		return internal.NewValidationError("status must be either 'Present' or 'Absent'", internal.ErrCodeInvalidStatus)
	}
	return nil
}

// ParseDate accepts a date-only string or a full RFC 3339 timestamp.
func ParseDate(value string) (time.Time, error) {
	if t, err := time.ParseInLocation("2006-01-02", value, time.Local); err == nil {
		return t, nil
	}
	return time.Parse(time.RFC3339, value)
}

// MarkAttendanceResponse wraps the stored record with the upsert outcome so
// handlers can distinguish 201 created from 200 updated.
type MarkAttendanceResponse struct {
	Message    string      `json:"message"`
	Attendance *Attendance `json:"attendance"`
}
