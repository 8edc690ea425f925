package employee_test

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"

	attendancePostgres "github.com/frahmantamala/hrms-lite/internal/attendance/postgres"
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

	attendanceDatamodel "github.com/frahmantamala/hrms-lite/internal/core/datamodel/attendance"
)

var _ = Describe("Employee Handler Integration", func() {
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
		service := employee.NewService(employeeRepo, attendanceRepo, slogger)
		handler := employee.NewHandler(&transport.BaseHandler{Logger: slogger}, service)

		router = chi.NewRouter()
		router.Post("/employees", handler.CreateEmployee)
		router.Get("/employees", handler.GetEmployees)
		router.Get("/employees/{id}", handler.GetEmployee)
		router.Delete("/employees/{id}", handler.DeleteEmployee)
	})

	AfterEach(func() {
		sqlDB, err := db.DB()
		Expect(err).NotTo(HaveOccurred())
		Expect(sqlDB.Close()).To(Succeed())
	})

	postEmployee := func(body map[string]string) *httptest.ResponseRecorder {
		payload, err := json.Marshal(body)
		Expect(err).NotTo(HaveOccurred())
		req := httptest.NewRequest(http.MethodPost, "/employees", bytes.NewReader(payload))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		return w
	}

	validBody := map[string]string{
		"employee_id": "EMP-001",
		"full_name":   "Alice Hartono",
		"email":       "alice@example.com",
		"department":  "Engineering",
	}

	Describe("POST /employees", func() {
		It("should create an employee and respond 201", func() {
			w := postEmployee(validBody)
			Expect(w.Code).To(Equal(http.StatusCreated))

			var created employee.Employee
			Expect(json.NewDecoder(w.Body).Decode(&created)).To(Succeed())
			Expect(created.EmployeeID).To(Equal("EMP-001"))
			Expect(created.Email).To(Equal("alice@example.com"))
		})

		It("should respond 400 for a malformed email", func() {
			body := map[string]string{
				"employee_id": "EMP-002",
				"full_name":   "Bob",
				"email":       "bob-at-example",
				"department":  "Finance",
			}
			w := postEmployee(body)
			Expect(w.Code).To(Equal(http.StatusBadRequest))
		})

		It("should respond 400 for a malformed body", func() {
			req := httptest.NewRequest(http.MethodPost, "/employees", bytes.NewReader([]byte("{not json")))
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)
			Expect(w.Code).To(Equal(http.StatusBadRequest))
		})

		It("should respond 409 for a duplicate employee_id", func() {
			Expect(postEmployee(validBody).Code).To(Equal(http.StatusCreated))

			body := map[string]string{
				"employee_id": "EMP-001",
				"full_name":   "Someone Else",
				"email":       "else@example.com",
				"department":  "Finance",
			}
			w := postEmployee(body)
			Expect(w.Code).To(Equal(http.StatusConflict))
			Expect(w.Body.String()).To(ContainSubstring("employee_id"))
		})

		It("should respond 409 for a duplicate email in different case", func() {
			Expect(postEmployee(validBody).Code).To(Equal(http.StatusCreated))

			body := map[string]string{
				"employee_id": "EMP-002",
				"full_name":   "Someone Else",
				"email":       "ALICE@EXAMPLE.COM",
				"department":  "Finance",
			}
			w := postEmployee(body)
			Expect(w.Code).To(Equal(http.StatusConflict))
			Expect(w.Body.String()).To(ContainSubstring("email"))
		})
	})

	Describe("GET /employees", func() {
		It("should return an empty array when the directory is empty", func() {
			req := httptest.NewRequest(http.MethodGet, "/employees", nil)
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			Expect(w.Code).To(Equal(http.StatusOK))
			Expect(w.Body.String()).To(MatchJSON("[]"))
		})

		It("should return all employees", func() {
			Expect(postEmployee(validBody).Code).To(Equal(http.StatusCreated))

			req := httptest.NewRequest(http.MethodGet, "/employees", nil)
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			Expect(w.Code).To(Equal(http.StatusOK))

			var employees []*employee.Employee
			Expect(json.NewDecoder(w.Body).Decode(&employees)).To(Succeed())
			Expect(employees).To(HaveLen(1))
		})
	})

	Describe("GET /employees/{id}", func() {
		It("should respond 404 for an unknown employee", func() {
			req := httptest.NewRequest(http.MethodGet, "/employees/EMP-404", nil)
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)
			Expect(w.Code).To(Equal(http.StatusNotFound))
		})

		It("should return the record when present", func() {
			Expect(postEmployee(validBody).Code).To(Equal(http.StatusCreated))

			req := httptest.NewRequest(http.MethodGet, "/employees/EMP-001", nil)
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			Expect(w.Code).To(Equal(http.StatusOK))

			var emp employee.Employee
			Expect(json.NewDecoder(w.Body).Decode(&emp)).To(Succeed())
			Expect(emp.FullName).To(Equal("Alice Hartono"))
		})
	})

	Describe("DELETE /employees/{id}", func() {
		It("should respond 404 for an unknown employee", func() {
			req := httptest.NewRequest(http.MethodDelete, "/employees/EMP-404", nil)
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)
			Expect(w.Code).To(Equal(http.StatusNotFound))
		})

		It("should return the deleted record", func() {
			Expect(postEmployee(validBody).Code).To(Equal(http.StatusCreated))

			req := httptest.NewRequest(http.MethodDelete, "/employees/EMP-001", nil)
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			Expect(w.Code).To(Equal(http.StatusOK))

			var resp employee.DeleteEmployeeResponse
			Expect(json.NewDecoder(w.Body).Decode(&resp)).To(Succeed())
			Expect(resp.Employee.EmployeeID).To(Equal("EMP-001"))

			check := httptest.NewRequest(http.MethodGet, "/employees/EMP-001", nil)
			cw := httptest.NewRecorder()
			router.ServeHTTP(cw, check)
			Expect(cw.Code).To(Equal(http.StatusNotFound))
		})
	})
})
