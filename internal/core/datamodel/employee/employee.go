package employee

import "time"

type Employee struct {
	ID         int64     `gorm:"primaryKey"`
	EmployeeID string    `gorm:"column:employee_id;uniqueIndex;not null"`
	FullName   string    `gorm:"column:full_name;not null"`
	Email      string    `gorm:"column:email;uniqueIndex;not null"`
	Department string    `gorm:"column:department;not null"`
	CreatedAt  time.Time `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt  time.Time `gorm:"column:updated_at;autoUpdateTime"`
}

func (Employee) TableName() string {
	return "employees"
}
