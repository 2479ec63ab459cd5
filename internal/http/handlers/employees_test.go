package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"datatable/internal/config"
	"datatable/internal/dataset"
	"datatable/internal/domain/models"
	"datatable/internal/services"

	"github.com/gin-gonic/gin"
)

func testRouter(records []models.Employee) *gin.Engine {
	gin.SetMode(gin.TestMode)

	// zero delay window so tests do not sleep
	a := NewAPI(dataset.NewStoreWith(records), config.Env{})

	r := gin.New()
	api := r.Group("/api")
	api.GET("/health", a.Health)
	employees := api.Group("/employees")
	employees.GET("", a.GetEmployees)
	employees.GET("/filters", a.GetEmployeeFilters)
	employees.GET("/export", a.ExportEmployees)
	employees.GET("/:id", a.GetEmployeeByID)
	return r
}

func seedRecords(n int) []models.Employee {
	out := make([]models.Employee, n)
	for i := range out {
		out[i] = models.Employee{
			ID:         i + 1,
			Name:       "Person " + string(rune('A'+i%26)),
			Email:      "p@techcorp.com",
			Company:    "TechCorp",
			Department: "Engineering",
			Position:   "Designer",
			Salary:     80000 + i*1000,
			Location:   "Remote",
			StartDate:  "2022-03-01",
			Status:     "active",
			Experience: 4,
		}
	}
	return out
}

func doGet(t *testing.T, r *gin.Engine, path string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestGetEmployeesResponseShape(t *testing.T) {
	r := testRouter(seedRecords(10))

	w := doGet(t, r, "/api/employees?page=1&limit=2&sortBy=id&sortOrder=asc")
	if w.Code != http.StatusOK {
		t.Fatalf("status %d", w.Code)
	}

	var page services.Page
	if err := json.Unmarshal(w.Body.Bytes(), &page); err != nil {
		t.Fatalf("bad body: %v", err)
	}
	if len(page.Data) != 2 || page.Data[0].ID != 1 || page.Data[1].ID != 2 {
		t.Fatalf("unexpected data: %+v", page.Data)
	}
	want := services.Pagination{Page: 1, Limit: 2, Total: 10, TotalPages: 5, HasNext: true, HasPrev: false}
	if page.Pagination != want {
		t.Fatalf("pagination mismatch: got %+v want %+v", page.Pagination, want)
	}
	if page.Filters.SortBy != "id" || page.Filters.SortOrder != "asc" {
		t.Fatalf("filters not echoed: %+v", page.Filters)
	}
}

func TestGetEmployeesDefaultsAndCoercion(t *testing.T) {
	r := testRouter(seedRecords(60))

	// no params: page 1, limit 50
	var page services.Page
	w := doGet(t, r, "/api/employees")
	if err := json.Unmarshal(w.Body.Bytes(), &page); err != nil {
		t.Fatalf("bad body: %v", err)
	}
	if page.Pagination.Page != 1 || page.Pagination.Limit != 50 || len(page.Data) != 50 {
		t.Fatalf("defaults not applied: %+v", page.Pagination)
	}

	// non-numeric page/limit degrade to defaults, never to an error
	w = doGet(t, r, "/api/employees?page=abc&limit=xyz")
	if w.Code != http.StatusOK {
		t.Fatalf("coercion must not error, got status %d", w.Code)
	}
	if err := json.Unmarshal(w.Body.Bytes(), &page); err != nil {
		t.Fatalf("bad body: %v", err)
	}
	if page.Pagination.Page != 1 || page.Pagination.Limit != 50 {
		t.Fatalf("bad params must fall back to defaults: %+v", page.Pagination)
	}
}

func TestGetEmployeesPastEndIsEmptyOK(t *testing.T) {
	r := testRouter(seedRecords(10))

	w := doGet(t, r, "/api/employees?page=6&limit=2")
	if w.Code != http.StatusOK {
		t.Fatalf("status %d", w.Code)
	}
	var page services.Page
	if err := json.Unmarshal(w.Body.Bytes(), &page); err != nil {
		t.Fatalf("bad body: %v", err)
	}
	if len(page.Data) != 0 || page.Pagination.HasNext {
		t.Fatalf("expected empty page without hasNext: %+v", page.Pagination)
	}
}

func TestGetEmployeeByID(t *testing.T) {
	r := testRouter(seedRecords(10))

	w := doGet(t, r, "/api/employees/7")
	if w.Code != http.StatusOK {
		t.Fatalf("status %d", w.Code)
	}
	var e models.Employee
	if err := json.Unmarshal(w.Body.Bytes(), &e); err != nil {
		t.Fatalf("bad body: %v", err)
	}
	if e.ID != 7 {
		t.Fatalf("wrong record: %+v", e)
	}

	if w := doGet(t, r, "/api/employees/999"); w.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", w.Code)
	}
	if w := doGet(t, r, "/api/employees/xyz"); w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
}

func TestGetEmployeeFilters(t *testing.T) {
	r := testRouter(seedRecords(3))

	w := doGet(t, r, "/api/employees/filters")
	if w.Code != http.StatusOK {
		t.Fatalf("status %d", w.Code)
	}

	var body struct {
		Departments []string `json:"departments"`
		Statuses    []string `json:"statuses"`
		SortFields  []string `json:"sortFields"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("bad body: %v", err)
	}
	if len(body.Departments) != 10 || len(body.Statuses) != 3 {
		t.Fatalf("unexpected vocabularies: %+v", body)
	}
	if len(body.SortFields) != len(models.SortFields) {
		t.Fatalf("sort fields mismatch: %v", body.SortFields)
	}
}

func TestExportEmployees(t *testing.T) {
	r := testRouter(seedRecords(5))

	w := doGet(t, r, "/api/employees/export?format=pdf")
	if w.Code != http.StatusOK {
		t.Fatalf("status %d", w.Code)
	}
	if ct := w.Header().Get("Content-Type"); ct != "application/pdf" {
		t.Fatalf("content type %q", ct)
	}
	if cd := w.Header().Get("Content-Disposition"); cd == "" {
		t.Fatal("missing attachment disposition")
	}

	if w := doGet(t, r, "/api/employees/export?format=csv"); w.Code != http.StatusBadRequest {
		t.Fatalf("unknown format must 400, got %d", w.Code)
	}
}

func TestHealthReportsDataset(t *testing.T) {
	r := testRouter(seedRecords(42))

	w := doGet(t, r, "/api/health")
	if w.Code != http.StatusOK {
		t.Fatalf("status %d", w.Code)
	}
	var body struct {
		Status      string `json:"status"`
		DatasetSize int    `json:"dataset_size"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("bad body: %v", err)
	}
	if body.Status != "ok" || body.DatasetSize != 42 {
		t.Fatalf("unexpected health payload: %+v", body)
	}
}
