package rest

import (
	"database/sql"
	"log/slog"
	"net/http"

	"github.com/frahmantamala/hrms-lite/internal/attendance"
	"github.com/frahmantamala/hrms-lite/internal/employee"
	"github.com/frahmantamala/hrms-lite/internal/transport/middleware"
	"github.com/frahmantamala/hrms-lite/internal/transport/swagger"
	"github.com/go-chi/chi"
	chiMiddleware "github.com/go-chi/chi/middleware"
)

func RegisterAllRoutes(router *chi.Mux, db *sql.DB, employeeHandler *employee.Handler, attendanceHandler *attendance.Handler, allowedOrigins string, logger *slog.Logger) {
	healthHandler := NewHealthHandler(db)

	// Apply global middleware
	router.Use(middleware.CORS(allowedOrigins))
	router.Use(chiMiddleware.RequestID)
	router.Use(middleware.TraceID)
	router.Use(middleware.LoggingMiddleware(logger))
	router.Use(middleware.RecoveryMiddleware(logger))

	// Serve OpenAPI spec at root (outside API prefix)
	router.Get("/openapi.yml", func(w http.ResponseWriter, r *http.Request) {
		http.ServeFile(w, r, "./api/openapi.yml")
	})
	// Swagger UI route at root
	router.Handle("/swagger/*", swagger.Handler())

	// Mount API under /api/v1 to match OpenAPI basePath
	router.Route("/api/v1", func(r chi.Router) {
		// Health check routes
		r.Get("/health", healthHandler.healthCheckHandler)
		r.Get("/ping", healthHandler.pingHandler)

		// Employee directory routes
		if employeeHandler != nil {
			r.Route("/employees", func(er chi.Router) {
				er.Post("/", employeeHandler.CreateEmployee)
				er.Get("/", employeeHandler.GetEmployees)
				er.Get("/{id}", employeeHandler.GetEmployee)
				er.Delete("/{id}", employeeHandler.DeleteEmployee)
			})
		}

		// Attendance ledger routes
		if attendanceHandler != nil {
			r.Route("/attendance", func(ar chi.Router) {
				ar.Post("/", attendanceHandler.MarkAttendance)
				ar.Get("/date/{date}", attendanceHandler.GetAttendanceByDate)
				ar.Get("/{employeeId}", attendanceHandler.GetEmployeeAttendance)
			})
		}
	})
}
