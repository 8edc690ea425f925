package attendance

import (
	"encoding/json"
	"net/http"

	"github.com/frahmantamala/hrms-lite/internal/transport"
	"github.com/go-chi/chi"
)

type ServiceAPI interface {
	Mark(dto MarkAttendanceDTO) (*Attendance, bool, error)
	ListByEmployee(employeeID string) ([]*Attendance, error)
	ListByDate(date string) ([]*Attendance, error)
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

func (h *Handler) MarkAttendance(w http.ResponseWriter, r *http.Request) {
	var dto MarkAttendanceDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		h.Logger.Error("MarkAttendance: invalid request body", "error", err)
		h.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	record, created, err := h.Service.Mark(dto)
	if err != nil {
		h.Logger.Error("MarkAttendance: service error", "error", err, "employee_id", dto.EmployeeID)
		h.HandleServiceError(w, err)
		return
	}

	status := http.StatusOK
	message := "Attendance updated successfully"
	if created {
		status = http.StatusCreated
		message = "Attendance marked successfully"
	}

	h.WriteJSON(w, status, MarkAttendanceResponse{
		Message:    message,
		Attendance: record,
	})
}

func (h *Handler) GetEmployeeAttendance(w http.ResponseWriter, r *http.Request) {
	employeeID := chi.URLParam(r, "employeeId")

	records, err := h.Service.ListByEmployee(employeeID)
	if err != nil {
		h.Logger.Error("GetEmployeeAttendance: service error", "error", err, "employee_id", employeeID)
		h.HandleServiceError(w, err)
		return
	}

	if records == nil {
		records = []*Attendance{}
	}

	h.WriteJSON(w, http.StatusOK, records)
}

func (h *Handler) GetAttendanceByDate(w http.ResponseWriter, r *http.Request) {
	date := chi.URLParam(r, "date")

	records, err := h.Service.ListByDate(date)
	if err != nil {
		h.Logger.Error("GetAttendanceByDate: service error", "error", err, "date", date)
		h.HandleServiceError(w, err)
		return
	}

	if records == nil {
		records = []*Attendance{}
	}

	h.WriteJSON(w, http.StatusOK, records)
}
