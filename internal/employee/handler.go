package employee

import (
	"encoding/json"
	"net/http"

	"github.com/frahmantamala/hrms-lite/internal/transport"
	"github.com/go-chi/chi"
)

type ServiceAPI interface {
	Add(dto CreateEmployeeDTO) (*Employee, error)
	Get(employeeID string) (*Employee, error)
	List() ([]*Employee, error)
	Delete(employeeID string) (*Employee, error)
}

type Handler struct {
	*transport.BaseHandler
	Service ServiceAPI
}

func NewHandler(baseHandler *transport.BaseHandler, service ServiceAPI) *Handler {
	return &Handler{
		BaseHandler: baseHandler,
		Service:     service,
	}
}

func (h *Handler) CreateEmployee(w http.ResponseWriter, r *http.Request) {
	var dto CreateEmployeeDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		h.Logger.Error("CreateEmployee: invalid request body", "error", err)
		h.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	emp, err := h.Service.Add(dto)
	if err != nil {
		h.Logger.Error("CreateEmployee: service error", "error", err, "employee_id", dto.EmployeeID)
		h.HandleServiceError(w, err)
		return
	}

	h.Logger.Info("CreateEmployee: employee created",
		"employee_id", emp.EmployeeID,
		"department", emp.Department)

	h.WriteJSON(w, http.StatusCreated, emp)
}

func (h *Handler) GetEmployees(w http.ResponseWriter, r *http.Request) {
	employees, err := h.Service.List()
	if err != nil {
		h.Logger.Error("GetEmployees: service error", "error", err)
		h.HandleServiceError(w, err)
		return
	}

	if employees == nil {
		employees = []*Employee{}
	}

	h.WriteJSON(w, http.StatusOK, employees)
}

func (h *Handler) GetEmployee(w http.ResponseWriter, r *http.Request) {
	employeeID := chi.URLParam(r, "id")

	emp, err := h.Service.Get(employeeID)
	if err != nil {
		h.Logger.Error("GetEmployee: service error", "error", err, "employee_id", employeeID)
		h.HandleServiceError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusOK, emp)
}

func (h *Handler) DeleteEmployee(w http.ResponseWriter, r *http.Request) {
	employeeID := chi.URLParam(r, "id")

	emp, err := h.Service.Delete(employeeID)
	if err != nil {
		h.Logger.Error("DeleteEmployee: service error", "error", err, "employee_id", employeeID)
		h.HandleServiceError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusOK, DeleteEmployeeResponse{
		Message:  "Employee deleted successfully",
		Employee: emp,
	})
}
