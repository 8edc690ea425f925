package employee

import (
	"regexp"
	"strings"

	"github.com/frahmantamala/hrms-lite/internal"
)

// emailPattern accepts the basic local@domain.tld shape; anything stricter
// belongs to the mail system, not the directory.
var emailPattern = regexp.MustCompile(`^\S+@\S+\.\S+$`)

// CreateEmployeeDTO represents the request payload for adding an employee.
type CreateEmployeeDTO struct {
	EmployeeID string `json:"employee_id"`
	FullName   string `json:"full_name"`
	Email      string `json:"email"`
	Department string `json:"department"`
}

// NormalizedEmail returns the email trimmed and lowercased; email uniqueness
// is case-insensitive so this form is what gets stored and compared.
func (dto CreateEmployeeDTO) NormalizedEmail() string {
	return strings.ToLower(strings.TrimSpace(dto.Email))
}

func (dto *CreateEmployeeDTO) Normalize() {
	dto.EmployeeID = strings.TrimSpace(dto.EmployeeID)
	dto.FullName = strings.TrimSpace(dto.FullName)
	dto.Department = strings.TrimSpace(dto.Department)
}

func (dto CreateEmployeeDTO) Validate() error {
	if strings.TrimSpace(dto.EmployeeID) == "" {
		return internal.NewValidationError("employee_id is required", internal.ErrCodeInvalidEmployee)
	}
	if len(strings.TrimSpace(dto.FullName)) < 2 {
		return internal.NewValidationError("full_name must be at least 2 characters long", internal.ErrCodeInvalidName)
	}
	if !emailPattern.MatchString(dto.NormalizedEmail()) {
		return internal.NewValidationError("email must be a valid email address", internal.ErrCodeInvalidEmail)
	}
	if strings.TrimSpace(dto.Department) == "" {
		return internal.NewValidationError("department is required", internal.ErrCodeInvalidDepartment)
	}
	return nil
}

type EmployeesResponse struct {
	Employees []*Employee `json:"employees"`
}

type DeleteEmployeeResponse struct {
	Message  string    `json:"message"`
	Employee *Employee `json:"employee"`
}
