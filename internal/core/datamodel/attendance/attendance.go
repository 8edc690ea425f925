package attendance

import "time"

// Attendance holds one ledger entry per employee per calendar day. The
// composite unique index is the storage-level backstop for the per-day
// uniqueness invariant; business logic upserts before ever hitting it.
type Attendance struct {
	ID         int64     `gorm:"primaryKey"`
	EmployeeID string    `gorm:"column:employee_id;uniqueIndex:idx_attendances_employee_date;not null;index"`
	Date       time.Time `gorm:"column:date;uniqueIndex:idx_attendances_employee_date;not null;index"`
	Status     string    `gorm:"column:status;not null;default:Present"`
	CreatedAt  time.Time `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt  time.Time `gorm:"column:updated_at;autoUpdateTime"`
}

func (Attendance) TableName() string {
	return "attendances"
}
