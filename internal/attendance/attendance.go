package attendance

import (
	"time"

	attendanceDatamodel "github.com/frahmantamala/hrms-lite/internal/core/datamodel/attendance"
)

// Status values are literal and case-sensitive on the wire.
const (
	StatusPresent = "Present"
	StatusAbsent  = "Absent"
)

func IsValidStatus(status string) bool {
	return status == StatusPresent || status == StatusAbsent
}

type Attendance struct {
	ID         int64     `json:"-"`
	EmployeeID string    `json:"employee_id"`
	Date       time.Time `json:"date"`
	Status     string    `json:"status"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// NormalizeDay converts a timestamp to the server's zone and truncates it to
// the start of its calendar day. Every stored date goes through this, which
// is what makes the one-record-per-(employee, day) invariant well defined.
func NormalizeDay(t time.Time) time.Time {
	t = t.In(time.Local)
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

func NewAttendance(employeeID string, date time.Time, status string) *Attendance {
	now := time.Now()
	return &Attendance{
		EmployeeID: employeeID,
		Date:       NormalizeDay(date),
		Status:     status,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
}

func ToDataModel(a *Attendance) *attendanceDatamodel.Attendance {
	return &attendanceDatamodel.Attendance{
		ID:         a.ID,
		EmployeeID: a.EmployeeID,
		Date:       a.Date,
		Status:     a.Status,
		CreatedAt:  a.CreatedAt,
		UpdatedAt:  a.UpdatedAt,
	}
}

func FromDataModel(a *attendanceDatamodel.Attendance) *Attendance {
	return &Attendance{
		ID:         a.ID,
		EmployeeID: a.EmployeeID,
		Date:       a.Date,
		Status:     a.Status,
		CreatedAt:  a.CreatedAt,
		UpdatedAt:  a.UpdatedAt,
	}
}

func FromDataModelSlice(records []*attendanceDatamodel.Attendance) []*Attendance {
	result := make([]*Attendance, len(records))
	for i, a := range records {
		result[i] = FromDataModel(a)
	}
	return result
}
