package services

import (
	"sort"
	"strings"

	"datatable/internal/dataset"
	"datatable/internal/domain"
	"datatable/internal/domain/models"
	"datatable/internal/utils"
)

const (
	DefaultPage  = 1
	DefaultLimit = 50
	MaxLimit     = 500

	OrderAsc  = "asc"
	OrderDesc = "desc"
)

// Query carries the filter/sort/pagination parameters of one request.
type Query struct {
	Page       int
	Limit      int
	Search     string
	SortBy     string
	SortOrder  string
	Department string
	Status     string
}

// Normalize clamps pagination, defaults ordering and trims the exact-match
// filters. Search stays raw: matching runs against the text as typed, so a
// whitespace search matches rows containing whitespace. An unknown sortBy
// falls back to "id" instead of producing an undefined ordering; bad
// page/limit fall back to defaults rather than erroring.
func (q Query) Normalize() Query {
	if q.Page < 1 {
		q.Page = DefaultPage
	}
	if q.Limit < 1 {
		q.Limit = DefaultLimit
	}
	if q.Limit > MaxLimit {
		q.Limit = MaxLimit
	}
	q.Department = utils.TrimOrEmpty(q.Department)
	q.Status = utils.TrimOrEmpty(q.Status)
	q.SortBy = utils.TrimOrEmpty(q.SortBy)
	if !models.IsSortField(q.SortBy) {
		q.SortBy = "id"
	}
	if q.SortOrder != OrderDesc {
		q.SortOrder = OrderAsc
	}
	return q
}

// Pagination is the paging metadata of one result page.
type Pagination struct {
	Page       int  `json:"page"`
	Limit      int  `json:"limit"`
	Total      int  `json:"total"`
	TotalPages int  `json:"totalPages"`
	HasNext    bool `json:"hasNext"`
	HasPrev    bool `json:"hasPrev"`
}

// Filters echoes the applied (normalized) filter values.
type Filters struct {
	Search     string `json:"search"`
	Department string `json:"department"`
	Status     string `json:"status"`
	SortBy     string `json:"sortBy"`
	SortOrder  string `json:"sortOrder"`
}

// Page is one query result: a record slice plus metadata.
type Page struct {
	Data       []models.Employee `json:"data"`
	Pagination Pagination        `json:"pagination"`
	Filters    Filters           `json:"filters"`
}

// EmployeeService answers queries against the immutable dataset store.
type EmployeeService struct {
	Store     *dataset.Store
	RequestID string
}

// List computes one result page. Order is fixed: search filter, department
// filter, status filter, stable sort, slice. A page past the end yields an
// empty slice, not an error.
func (s EmployeeService) List(q Query) Page {
	q = q.Normalize()

	filtered := s.Filtered(q)

	total := len(filtered)
	start := (q.Page - 1) * q.Limit
	end := start + q.Limit
	if start > total {
		start = total
	}
	if end > total {
		end = total
	}

	data := make([]models.Employee, end-start)
	copy(data, filtered[start:end])

	totalPages := (total + q.Limit - 1) / q.Limit

	return Page{
		Data: data,
		Pagination: Pagination{
			Page:       q.Page,
			Limit:      q.Limit,
			Total:      total,
			TotalPages: totalPages,
			HasNext:    (q.Page-1)*q.Limit+q.Limit < total,
			HasPrev:    (q.Page-1)*q.Limit > 0,
		},
		Filters: Filters{
			Search:     q.Search,
			Department: q.Department,
			Status:     q.Status,
			SortBy:     q.SortBy,
			SortOrder:  q.SortOrder,
		},
	}
}

// Filtered returns the full filtered and sorted set without pagination.
// The exports reuse it so a download always matches the on-screen filters.
func (s EmployeeService) Filtered(q Query) []models.Employee {
	q = q.Normalize()

	out := make([]models.Employee, 0, s.Store.Len())
	search := strings.ToLower(q.Search)
	for _, e := range s.Store.All() {
		if search != "" && !matchesSearch(e, search) {
			continue
		}
		if q.Department != "" && e.Department != q.Department {
			continue
		}
		if q.Status != "" && e.Status != q.Status {
			continue
		}
		out = append(out, e)
	}

	sortEmployees(out, q.SortBy, q.SortOrder)
	return out
}

// GetByID finds one record by its dense identifier.
func (s EmployeeService) GetByID(id int) (models.Employee, error) {
	if id >= 1 && id <= s.Store.Len() {
		// ids are dense 1..N in generation order
		e := s.Store.All()[id-1]
		if e.ID == id {
			return e, nil
		}
	}
	for _, e := range s.Store.All() {
		if e.ID == id {
			return e, nil
		}
	}
	return models.Employee{}, domain.NotFoundError{Resource: "employee"}
}

// matchesSearch checks the six searchable fields for a case-insensitive
// substring. search must already be lowercased.
func matchesSearch(e models.Employee, search string) bool {
	return strings.Contains(strings.ToLower(e.Name), search) ||
		strings.Contains(strings.ToLower(e.Email), search) ||
		strings.Contains(strings.ToLower(e.Company), search) ||
		strings.Contains(strings.ToLower(e.Department), search) ||
		strings.Contains(strings.ToLower(e.Position), search) ||
		strings.Contains(strings.ToLower(e.Location), search)
}

// sortEmployees sorts in place. The sort is stable so ties keep the
// insertion order of the filtered set regardless of direction.
func sortEmployees(list []models.Employee, sortBy, order string) {
	less := lessFunc(sortBy)
	if order == OrderDesc {
		asc := less
		less = func(a, b models.Employee) bool { return asc(b, a) }
	}
	sort.SliceStable(list, func(i, j int) bool { return less(list[i], list[j]) })
}

func lessFunc(sortBy string) func(a, b models.Employee) bool {
	switch sortBy {
	case "name":
		return lessString(func(e models.Employee) string { return e.Name })
	case "email":
		return lessString(func(e models.Employee) string { return e.Email })
	case "company":
		return lessString(func(e models.Employee) string { return e.Company })
	case "department":
		return lessString(func(e models.Employee) string { return e.Department })
	case "position":
		return lessString(func(e models.Employee) string { return e.Position })
	case "location":
		return lessString(func(e models.Employee) string { return e.Location })
	case "status":
		return lessString(func(e models.Employee) string { return e.Status })
	case "startDate":
		// YYYY-MM-DD compares correctly as a string
		return lessString(func(e models.Employee) string { return e.StartDate })
	case "salary":
		return func(a, b models.Employee) bool { return a.Salary < b.Salary }
	case "experience":
		return func(a, b models.Employee) bool { return a.Experience < b.Experience }
	default:
		return func(a, b models.Employee) bool { return a.ID < b.ID }
	}
}

func lessString(key func(models.Employee) string) func(a, b models.Employee) bool {
	return func(a, b models.Employee) bool {
		return strings.ToLower(key(a)) < strings.ToLower(key(b))
	}
}
