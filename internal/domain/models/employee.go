package models

// Status enumerates employment states served by the API.
const (
	StatusActive   = "active"
	StatusInactive = "inactive"
	StatusPending  = "pending"
)

// Statuses lists legal Status values in display order.
var Statuses = []string{StatusActive, StatusInactive, StatusPending}

// Employee is one synthetic employee record. StartDate stays a YYYY-MM-DD
// string because that is the wire format and the only use is display/sorting.
type Employee struct {
	ID         int    `json:"id"`
	Name       string `json:"name"`
	Email      string `json:"email"`
	Company    string `json:"company"`
	Department string `json:"department"`
	Position   string `json:"position"`
	Salary     int    `json:"salary"`
	Location   string `json:"location"`
	StartDate  string `json:"startDate"`
	Status     string `json:"status"`
	Experience int    `json:"experience"`
}

// SortFields lists the JSON field names GetEmployees accepts for sortBy.
var SortFields = []string{
	"id", "name", "email", "company", "department",
	"position", "salary", "location", "startDate", "status", "experience",
}

// IsSortField reports whether name is a known sortBy value.
func IsSortField(name string) bool {
	for _, f := range SortFields {
		if f == name {
			return true
		}
	}
	return false
}

// IsStatus reports whether s is a legal employment status.
func IsStatus(s string) bool {
	return s == StatusActive || s == StatusInactive || s == StatusPending
}
