package attendance_test

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"

	"github.com/frahmantamala/hrms-lite/internal/attendance"
	attendancePostgres "github.com/frahmantamala/hrms-lite/internal/attendance/postgres"
	attendanceDatamodel "github.com/frahmantamala/hrms-lite/internal/core/datamodel/attendance"
	employeeDatamodel "github.com/frahmantamala/hrms-lite/internal/core/datamodel/employee"
	"github.com/frahmantamala/hrms-lite/internal/employee"
	employeePostgres "github.com/frahmantamala/hrms-lite/internal/employee/postgres"
	"github.com/frahmantamala/hrms-lite/internal/transport"
	"github.com/go-chi/chi"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var _ = Describe("Attendance Handler Integration", func() {
	var (
		db     *gorm.DB
		router *chi.Mux
	)

	BeforeEach(func() {
		var err error
		slogger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))

		db, err = gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
			TranslateError: true,
			Logger:         logger.Default.LogMode(logger.Silent),
		})
		Expect(err).NotTo(HaveOccurred())

		err = db.AutoMigrate(&employeeDatamodel.Employee{}, &attendanceDatamodel.Attendance{})
		Expect(err).NotTo(HaveOccurred())

		employeeRepo := employeePostgres.NewEmployeeRepository(db)
		attendanceRepo := attendancePostgres.NewAttendanceRepository(db)

		employeeService := employee.NewService(employeeRepo, attendanceRepo, slogger)
		attendanceService := attendance.NewService(attendanceRepo, employeeService, slogger)

		baseHandler := &transport.BaseHandler{Logger: slogger}
		employeeHandler := employee.NewHandler(baseHandler, employeeService)
		attendanceHandler := attendance.NewHandler(baseHandler, attendanceService)

		router = chi.NewRouter()
		router.Post("/employees", employeeHandler.CreateEmployee)
		router.Delete("/employees/{id}", employeeHandler.DeleteEmployee)
		router.Post("/attendance", attendanceHandler.MarkAttendance)
		router.Get("/attendance/date/{date}", attendanceHandler.GetAttendanceByDate)
		router.Get("/attendance/{employeeId}", attendanceHandler.GetEmployeeAttendance)
	})

	AfterEach(func() {
		sqlDB, err := db.DB()
		Expect(err).NotTo(HaveOccurred())
		Expect(sqlDB.Close()).To(Succeed())
	})

	postJSON := func(path string, body map[string]string) *httptest.ResponseRecorder {
		payload, err := json.Marshal(body)
		Expect(err).NotTo(HaveOccurred())
		req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(payload))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		return w
	}

	get := func(path string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodGet, path, nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		return w
	}

	addEmployee := func(id, name, email, department string) {
		w := postJSON("/employees", map[string]string{
			"employee_id": id,
			"full_name":   name,
			"email":       email,
			"department":  department,
		})
		Expect(w.Code).To(Equal(http.StatusCreated))
	}

	Describe("POST /attendance", func() {
		BeforeEach(func() {
			addEmployee("E1", "Alice", "a@x.com", "Eng")
		})

		It("should walk the mark-then-remark flow", func() {
			w := postJSON("/attendance", map[string]string{
				"employee_id": "E1",
				"date":        "2024-01-05",
				"status":      "Present",
			})
			Expect(w.Code).To(Equal(http.StatusCreated))

			var first attendance.MarkAttendanceResponse
			Expect(json.NewDecoder(w.Body).Decode(&first)).To(Succeed())
			Expect(first.Attendance.Status).To(Equal("Present"))

			w = postJSON("/attendance", map[string]string{
				"employee_id": "E1",
				"date":        "2024-01-05",
				"status":      "Absent",
			})
			Expect(w.Code).To(Equal(http.StatusOK))

			var second attendance.MarkAttendanceResponse
			Expect(json.NewDecoder(w.Body).Decode(&second)).To(Succeed())
			Expect(second.Attendance.Status).To(Equal("Absent"))

			lw := get("/attendance/E1")
			Expect(lw.Code).To(Equal(http.StatusOK))

			var records []*attendance.Attendance
			Expect(json.NewDecoder(lw.Body).Decode(&records)).To(Succeed())
			Expect(records).To(HaveLen(1))
			Expect(records[0].Status).To(Equal("Absent"))
		})

		It("should respond 404 for an unknown employee and store nothing", func() {
			w := postJSON("/attendance", map[string]string{
				"employee_id": "GHOST",
				"date":        "2024-01-05",
				"status":      "Present",
			})
			Expect(w.Code).To(Equal(http.StatusNotFound))

			dw := get("/attendance/date/2024-01-05")
			Expect(dw.Code).To(Equal(http.StatusOK))
			Expect(dw.Body.String()).To(MatchJSON("[]"))
		})

		It("should respond 400 for an invalid status", func() {
			w := postJSON("/attendance", map[string]string{
				"employee_id": "E1",
				"date":        "2024-01-05",
				"status":      "Late",
			})
			Expect(w.Code).To(Equal(http.StatusBadRequest))
		})

		It("should respond 400 for an invalid date", func() {
			w := postJSON("/attendance", map[string]string{
				"employee_id": "E1",
				"date":        "Jan 5th",
				"status":      "Present",
			})
			Expect(w.Code).To(Equal(http.StatusBadRequest))
		})
	})

	Describe("GET /attendance/{employeeId}", func() {
		It("should respond 404 for an unknown employee", func() {
			w := get("/attendance/GHOST")
			Expect(w.Code).To(Equal(http.StatusNotFound))
		})
	})

	Describe("GET /attendance/date/{date}", func() {
		BeforeEach(func() {
			addEmployee("E1", "Alice", "a@x.com", "Eng")
			addEmployee("E2", "Bob Marley", "b@x.com", "Finance")

			for _, mark := range []map[string]string{
				{"employee_id": "E1", "date": "2024-01-04", "status": "Present"},
				{"employee_id": "E1", "date": "2024-01-05", "status": "Present"},
				{"employee_id": "E2", "date": "2024-01-05", "status": "Absent"},
				{"employee_id": "E2", "date": "2024-01-06", "status": "Present"},
			} {
				Expect(postJSON("/attendance", mark).Code).To(Equal(http.StatusCreated))
			}
		})

		It("should only return records for the requested day", func() {
			w := get("/attendance/date/2024-01-05")
			Expect(w.Code).To(Equal(http.StatusOK))

			var records []*attendance.Attendance
			Expect(json.NewDecoder(w.Body).Decode(&records)).To(Succeed())
			Expect(records).To(HaveLen(2))
			for _, r := range records {
				Expect(r.Date.Day()).To(Equal(5))
			}
		})
	})

	Describe("cascade delete", func() {
		BeforeEach(func() {
			addEmployee("E1", "Alice", "a@x.com", "Eng")
			addEmployee("E2", "Bob Marley", "b@x.com", "Finance")

			for _, mark := range []map[string]string{
				{"employee_id": "E1", "date": "2024-01-05", "status": "Present"},
				{"employee_id": "E1", "date": "2024-01-06", "status": "Absent"},
				{"employee_id": "E2", "date": "2024-01-05", "status": "Present"},
			} {
				Expect(postJSON("/attendance", mark).Code).To(Equal(http.StatusCreated))
			}
		})

		It("should leave no attendance behind for the deleted employee", func() {
			req := httptest.NewRequest(http.MethodDelete, "/employees/E1", nil)
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)
			Expect(w.Code).To(Equal(http.StatusOK))

			lw := get("/attendance/E1")
			Expect(lw.Code).To(Equal(http.StatusNotFound))

			dw := get("/attendance/date/2024-01-05")
			Expect(dw.Code).To(Equal(http.StatusOK))

			var records []*attendance.Attendance
			Expect(json.NewDecoder(dw.Body).Decode(&records)).To(Succeed())
			Expect(records).To(HaveLen(1))
			Expect(records[0].EmployeeID).To(Equal("E2"))

			dw = get("/attendance/date/2024-01-06")
			Expect(dw.Body.String()).To(MatchJSON("[]"))
		})
	})
})
