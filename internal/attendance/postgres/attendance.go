package postgres

import (
	"errors"
	"time"

	"github.com/frahmantamala/hrms-lite/internal"
	"github.com/frahmantamala/hrms-lite/internal/attendance"
	attendanceDatamodel "github.com/frahmantamala/hrms-lite/internal/core/datamodel/attendance"
	"gorm.io/gorm"
)

// AttendanceRepository implements attendance.RepositoryAPI using GORM. The
// *gorm.DB must be opened with TranslateError so unique violations arrive as
// gorm.ErrDuplicatedKey regardless of driver.
type AttendanceRepository struct {
	db *gorm.DB
}

func NewAttendanceRepository(db *gorm.DB) attendance.RepositoryAPI {
	return &AttendanceRepository{db: db}
}

func (r *AttendanceRepository) Create(record *attendanceDatamodel.Attendance) error {
	err := r.db.Create(record).Error
	if err != nil && errors.Is(err, gorm.ErrDuplicatedKey) {
		return internal.NewConflictError(
			"Attendance already marked for this date",
			internal.ErrCodeDuplicateAttendance,
		).WithCause(err)
	}
	return err
}

func (r *AttendanceRepository) Update(record *attendanceDatamodel.Attendance) error {
	record.UpdatedAt = time.Now()
	return r.db.Save(record).Error
}

func (r *AttendanceRepository) GetByEmployeeAndDate(employeeID string, day time.Time) (*attendanceDatamodel.Attendance, error) {
	var record attendanceDatamodel.Attendance
	err := r.db.Where("employee_id = ? AND date = ?", employeeID, day).First(&record).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, err
	}
	return &record, nil
}

func (r *AttendanceRepository) GetByEmployeeID(employeeID string) ([]*attendanceDatamodel.Attendance, error) {
	var records []*attendanceDatamodel.Attendance
	err := r.db.Where("employee_id = ?", employeeID).
		Order("date DESC").
		Find(&records).Error
	return records, err
}

// GetByDateRange returns entries with date in [from, to), most recently
// created first.
func (r *AttendanceRepository) GetByDateRange(from, to time.Time) ([]*attendanceDatamodel.Attendance, error) {
	var records []*attendanceDatamodel.Attendance
	err := r.db.Where("date >= ? AND date < ?", from, to).
		Order("created_at DESC").
		Find(&records).Error
	return records, err
}

func (r *AttendanceRepository) DeleteByEmployeeID(employeeID string) (int64, error) {
	result := r.db.Where("employee_id = ?", employeeID).Delete(&attendanceDatamodel.Attendance{})
	return result.RowsAffected, result.Error
}
