package attendance

import (
	"log/slog"
	"time"

	"github.com/frahmantamala/hrms-lite/internal"
	attendanceDatamodel "github.com/frahmantamala/hrms-lite/internal/core/datamodel/attendance"
)

// RepositoryAPI defines the data access methods for the attendance ledger.
// Create must surface a storage-level unique violation as a ConflictError;
// that path is the backstop for two concurrent marks racing past the
// existence check.
type RepositoryAPI interface {
	Create(record *attendanceDatamodel.Attendance) error
	Update(record *attendanceDatamodel.Attendance) error
	GetByEmployeeAndDate(employeeID string, day time.Time) (*attendanceDatamodel.Attendance, error)
	GetByEmployeeID(employeeID string) ([]*attendanceDatamodel.Attendance, error)
	GetByDateRange(from, to time.Time) ([]*attendanceDatamodel.Attendance, error)
	DeleteByEmployeeID(employeeID string) (int64, error)
}

// EmployeeDirectory resolves whether an employee exists before any ledger
// write. Implemented by the employee service.
type EmployeeDirectory interface {
	Exists(employeeID string) (bool, error)
}

type Service struct {
	repo      RepositoryAPI
	directory EmployeeDirectory
	logger    *slog.Logger
}

func NewService(repo RepositoryAPI, directory EmployeeDirectory, logger *slog.Logger) *Service {
	return &Service{
		repo:      repo,
		directory: directory,
		logger:    logger,
	}
}

// Mark upserts the ledger entry for (employeeId, day). The lookup and the
// write are two separate storage calls, so a concurrent mark for the same key
// can slip between them; the losing insert comes back as a ConflictError from
// the unique index rather than a duplicate row.
func (s *Service) Mark(dto MarkAttendanceDTO) (*Attendance, bool, error) {
	dto.Normalize()
	if err := dto.Validate(); err != nil {
		s.logger.Warn("attendance validation failed", "error", err, "employee_id", dto.EmployeeID)
		return nil, false, err
	}

	exists, err := s.directory.Exists(dto.EmployeeID)
	if err != nil {
		s.logger.Error("failed to resolve employee", "error", err, "employee_id", dto.EmployeeID)
		return nil, false, internal.NewInternalError("failed to resolve employee", err)
	}
	if !exists {
		return nil, false, internal.ErrEmployeeNotFound
	}

	parsed, err := ParseDate(dto.Date)
	if err != nil {
		return nil, false, internal.NewValidationError("date must be a valid ISO-8601 date", internal.ErrCodeInvalidDate)
	}
	day := NormalizeDay(parsed)

	existing, err := s.repo.GetByEmployeeAndDate(dto.EmployeeID, day)
	if err != nil {
		s.logger.Error("failed to look up attendance", "error", err, "employee_id", dto.EmployeeID)
		return nil, false, internal.NewInternalError("failed to look up attendance", err)
	}

	if existing != nil {
		existing.Status = dto.Status
		existing.UpdatedAt = time.Now()
		if err := s.repo.Update(existing); err != nil {
			s.logger.Error("failed to update attendance", "error", err,
				"employee_id", dto.EmployeeID, "date", day)
			return nil, false, internal.NewInternalError("failed to update attendance", err)
		}

		s.logger.Info("attendance updated",
			"employee_id", dto.EmployeeID,
			"date", day.Format("2006-01-02"),
			"status", dto.Status)

		return FromDataModel(existing), false, nil
	}

	record := ToDataModel(NewAttendance(dto.EmployeeID, day, dto.Status))
	if err := s.repo.Create(record); err != nil {
		if appErr, ok := internal.IsAppError(err); ok {
			// unique index rejected a concurrent duplicate; retryable
			s.logger.Warn("attendance insert lost uniqueness race",
				"employee_id", dto.EmployeeID, "date", day)
			return nil, false, appErr
		}
		s.logger.Error("failed to create attendance", "error", err,
			"employee_id", dto.EmployeeID, "date", day)
		return nil, false, internal.NewInternalError("failed to create attendance", err)
	}

	s.logger.Info("attendance marked",
		"employee_id", dto.EmployeeID,
		"date", day.Format("2006-01-02"),
		"status", dto.Status)

	return FromDataModel(record), true, nil
}

// ListByEmployee returns the full ledger for one employee, newest day first.
func (s *Service) ListByEmployee(employeeID string) ([]*Attendance, error) {
	exists, err := s.directory.Exists(employeeID)
	if err != nil {
		s.logger.Error("failed to resolve employee", "error", err, "employee_id", employeeID)
		return nil, internal.NewInternalError("failed to resolve employee", err)
	}
	if !exists {
		return nil, internal.ErrEmployeeNotFound
	}

	records, err := s.repo.GetByEmployeeID(employeeID)
	if err != nil {
		s.logger.Error("failed to list attendance", "error", err, "employee_id", employeeID)
		return nil, internal.NewInternalError("failed to list attendance", err)
	}
	return FromDataModelSlice(records), nil
}

// ListByDate returns every entry whose normalized date falls in the half-open
// window [day, day+1), ordered by creation time descending so the most
// recently entered records surface first.
func (s *Service) ListByDate(date string) ([]*Attendance, error) {
	parsed, err := ParseDate(date)
	if err != nil {
		return nil, internal.NewValidationError("date must be a valid ISO-8601 date", internal.ErrCodeInvalidDate)
	}
	day := NormalizeDay(parsed)
	next := day.AddDate(0, 0, 1)

	records, err := s.repo.GetByDateRange(day, next)
	if err != nil {
		s.logger.Error("failed to list attendance by date", "error", err, "date", day)
		return nil, internal.NewInternalError("failed to list attendance", err)
	}
	return FromDataModelSlice(records), nil
}
