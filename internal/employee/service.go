package employee

import (
	"log/slog"

	"github.com/frahmantamala/hrms-lite/internal"
	employeeDatamodel "github.com/frahmantamala/hrms-lite/internal/core/datamodel/employee"
)

// RepositoryAPI defines the data access methods for employees.
type RepositoryAPI interface {
	Create(employee *employeeDatamodel.Employee) error
	GetByEmployeeID(employeeID string) (*employeeDatamodel.Employee, error)
	GetByEmail(email string) (*employeeDatamodel.Employee, error)
	GetAll() ([]*employeeDatamodel.Employee, error)
	Delete(employeeID string) error
}

// AttendanceCleaner removes the attendance rows owned by an employee.
// Implemented by the attendance repository; declared here so the directory
// can cascade without importing the ledger package.
type AttendanceCleaner interface {
	DeleteByEmployeeID(employeeID string) (int64, error)
}

type Service struct {
	repo       RepositoryAPI
	attendance AttendanceCleaner
	logger     *slog.Logger
}

func NewService(repo RepositoryAPI, attendance AttendanceCleaner, logger *slog.Logger) *Service {
	return &Service{
		repo:       repo,
		attendance: attendance,
		logger:     logger,
	}
}

// Add registers a new employee after checking both uniqueness conditions
// separately, so the caller learns which field collided.
func (s *Service) Add(dto CreateEmployeeDTO) (*Employee, error) {
	dto.Normalize()
	if err := dto.Validate(); err != nil {
		s.logger.Warn("employee validation failed", "error", err, "employee_id", dto.EmployeeID)
		return nil, err
	}

	existing, err := s.repo.GetByEmployeeID(dto.EmployeeID)
	if err != nil {
		s.logger.Error("failed to check employee_id uniqueness", "error", err, "employee_id", dto.EmployeeID)
		return nil, internal.NewInternalError("failed to check employee uniqueness", err)
	}
	if existing != nil {
		return nil, internal.ErrDuplicateEmployeeID
	}

	existingEmail, err := s.repo.GetByEmail(dto.NormalizedEmail())
	if err != nil {
		s.logger.Error("failed to check email uniqueness", "error", err, "email", dto.NormalizedEmail())
		return nil, internal.NewInternalError("failed to check email uniqueness", err)
	}
	if existingEmail != nil {
		return nil, internal.ErrDuplicateEmail
	}

	emp := NewEmployee(dto)
	dataEmp := ToDataModel(emp)
	if err := s.repo.Create(dataEmp); err != nil {
		s.logger.Error("failed to create employee", "error", err, "employee_id", dto.EmployeeID)
		return nil, internal.NewInternalError("failed to create employee", err)
	}

	s.logger.Info("employee created",
		"employee_id", dataEmp.EmployeeID,
		"department", dataEmp.Department)

	return FromDataModel(dataEmp), nil
}

func (s *Service) Get(employeeID string) (*Employee, error) {
	dataEmp, err := s.repo.GetByEmployeeID(employeeID)
	if err != nil {
		s.logger.Error("failed to get employee", "error", err, "employee_id", employeeID)
		return nil, internal.NewInternalError("failed to get employee", err)
	}
	if dataEmp == nil {
		return nil, internal.ErrEmployeeNotFound
	}
	return FromDataModel(dataEmp), nil
}

// Exists reports whether an employee with the given business key is present.
// The attendance ledger consults this before any write.
func (s *Service) Exists(employeeID string) (bool, error) {
	dataEmp, err := s.repo.GetByEmployeeID(employeeID)
	if err != nil {
		return false, err
	}
	return dataEmp != nil, nil
}

// List returns all employees, newest-created first.
func (s *Service) List() ([]*Employee, error) {
	dataEmps, err := s.repo.GetAll()
	if err != nil {
		s.logger.Error("failed to list employees", "error", err)
		return nil, internal.NewInternalError("failed to list employees", err)
	}
	return FromDataModelSlice(dataEmps), nil
}

// Delete removes an employee together with every attendance row that
// references it. Cleanup runs first: if the process dies between the two
// writes, the survivor is an employee with no attendance, never orphaned
// attendance with no owner. The two writes are not one transaction.
func (s *Service) Delete(employeeID string) (*Employee, error) {
	dataEmp, err := s.repo.GetByEmployeeID(employeeID)
	if err != nil {
		s.logger.Error("failed to get employee for delete", "error", err, "employee_id", employeeID)
		return nil, internal.NewInternalError("failed to get employee", err)
	}
	if dataEmp == nil {
		return nil, internal.ErrEmployeeNotFound
	}

	removed, err := s.attendance.DeleteByEmployeeID(employeeID)
	if err != nil {
		s.logger.Error("cascade delete aborted: attendance cleanup failed",
			"error", err, "employee_id", employeeID)
		return nil, internal.NewInternalError("failed to delete attendance records for employee", err)
	}

	if err := s.repo.Delete(employeeID); err != nil {
		// attendance is already gone; the employee row survives, which keeps
		// the ledger free of ownerless rows but must not pass silently
		s.logger.Error("cascade delete incomplete: employee removal failed after attendance cleanup",
			"error", err, "employee_id", employeeID, "attendance_removed", removed)
		return nil, internal.NewInternalError("failed to delete employee after attendance cleanup", err)
	}

	s.logger.Info("employee deleted",
		"employee_id", employeeID,
		"attendance_removed", removed)

	return FromDataModel(dataEmp), nil
}
