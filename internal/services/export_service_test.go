package services

import (
	"bytes"
	"strconv"
	"strings"
	"testing"

	"github.com/xuri/excelize/v2"
)

func TestRosterPDF(t *testing.T) {
	svc := ExportService{Employees: testService()}

	body, filename, err := svc.RosterPDF(Query{Department: "Engineering"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !bytes.HasPrefix(body, []byte("%PDF")) {
		t.Fatal("output is not a PDF")
	}
	if !strings.HasPrefix(filename, "EMPLOYEES_Engineering_") || !strings.HasSuffix(filename, ".pdf") {
		t.Fatalf("unexpected filename %q", filename)
	}
}

func TestRosterXLSX(t *testing.T) {
	svc := ExportService{Employees: testService()}

	body, filename, err := svc.RosterXLSX(Query{SortBy: "salary", SortOrder: "desc"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.HasSuffix(filename, ".xlsx") {
		t.Fatalf("unexpected filename %q", filename)
	}

	f, err := excelize.OpenReader(bytes.NewReader(body))
	if err != nil {
		t.Fatalf("output is not a readable workbook: %v", err)
	}
	defer f.Close()

	rows, err := f.GetRows("Employees")
	if err != nil {
		t.Fatalf("missing Employees sheet: %v", err)
	}
	// header + all 10 records, ignoring pagination
	if len(rows) != 11 {
		t.Fatalf("expected 11 rows, got %d", len(rows))
	}
	if rows[0][0] != "ID" || rows[0][1] != "Name" {
		t.Fatalf("unexpected header row: %v", rows[0])
	}

	// sorted by salary desc: the top record is the 120000 one
	if got := rows[1][7]; got != strconv.Itoa(120000) {
		t.Fatalf("expected top salary 120000, got %q", got)
	}
}
