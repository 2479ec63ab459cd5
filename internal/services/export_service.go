package services

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"
	"time"

	"datatable/internal/utils"

	"github.com/phpdave11/gofpdf"
	"github.com/xuri/excelize/v2"
)

// ExportService renders the current filtered/sorted roster as a downloadable
// document. Pagination is ignored on purpose: a download should contain the
// whole set the filters describe, not one screen of it.
type ExportService struct {
	Employees EmployeeService
	RequestID string
}

var exportColumns = []string{
	"ID", "Name", "Email", "Company", "Department",
	"Position", "Location", "Salary", "Start Date", "Status",
}

// RosterPDF builds a landscape table of the filtered set.
func (s ExportService) RosterPDF(q Query) ([]byte, string, error) {
	q = q.Normalize()
	records := s.Employees.Filtered(q)
	utils.LogEvent(s.RequestID, "export", "roster_pdf", fmt.Sprintf("rows=%d", len(records)))

	pdf := gofpdf.New("L", "mm", "A4", "")
	pdf.SetTitle("Employee Roster", false)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 16)
	pdf.Cell(0, 9, "EMPLOYEE ROSTER")
	pdf.Ln(11)

	pdf.SetFont("Helvetica", "", 10)
	pdf.Cell(0, 6, exportCaption(q, len(records)))
	pdf.Ln(9)

	widths := []float64{14, 34, 52, 30, 30, 34, 34, 22, 22, 18}

	writeHeader := func() {
		pdf.SetFont("Helvetica", "B", 9)
		pdf.SetFillColor(68, 114, 196)
		pdf.SetTextColor(255, 255, 255)
		for i, col := range exportColumns {
			pdf.CellFormat(widths[i], 7, col, "1", 0, "C", true, 0, "")
		}
		pdf.Ln(-1)
		pdf.SetFont("Helvetica", "", 8)
		pdf.SetTextColor(0, 0, 0)
	}
	writeHeader()

	_, pageH := pdf.GetPageSize()
	_, _, _, mb := pdf.GetMargins()
	for _, e := range records {
		if pdf.GetY() > pageH-mb-8 {
			pdf.AddPage()
			writeHeader()
		}
		cells := []string{
			strconv.Itoa(e.ID), e.Name, e.Email, e.Company, e.Department,
			e.Position, e.Location, utils.FormatUSD(e.Salary), e.StartDate, e.Status,
		}
		for i, v := range cells {
			pdf.CellFormat(widths[i], 6, v, "1", 0, "L", false, 0, "")
		}
		pdf.Ln(-1)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, "", err
	}
	return buf.Bytes(), exportFilename(q, "pdf"), nil
}

// RosterXLSX builds a single-sheet workbook of the filtered set.
func (s ExportService) RosterXLSX(q Query) ([]byte, string, error) {
	q = q.Normalize()
	records := s.Employees.Filtered(q)
	utils.LogEvent(s.RequestID, "export", "roster_xlsx", fmt.Sprintf("rows=%d", len(records)))

	f := excelize.NewFile()
	defer f.Close()

	const sheet = "Employees"
	index, err := f.NewSheet(sheet)
	if err != nil {
		return nil, "", fmt.Errorf("failed to create sheet: %w", err)
	}
	f.SetActiveSheet(index)
	f.DeleteSheet("Sheet1")

	headerStyle, _ := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Size: 11, Color: "#FFFFFF"},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"#4472C4"}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
	})

	for col, name := range exportColumns {
		cell, _ := excelize.CoordinatesToCellName(col+1, 1)
		f.SetCellValue(sheet, cell, name)
		f.SetCellStyle(sheet, cell, cell, headerStyle)
	}

	for rowIdx, e := range records {
		values := []any{
			e.ID, e.Name, e.Email, e.Company, e.Department,
			e.Position, e.Location, e.Salary, e.StartDate, e.Status,
		}
		for col, v := range values {
			cell, _ := excelize.CoordinatesToCellName(col+1, rowIdx+2)
			f.SetCellValue(sheet, cell, v)
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, "", err
	}
	return buf.Bytes(), exportFilename(q, "xlsx"), nil
}

func exportCaption(q Query, rows int) string {
	parts := []string{fmt.Sprintf("%d employees", rows)}
	if q.Search != "" {
		parts = append(parts, fmt.Sprintf("search %q", q.Search))
	}
	if q.Department != "" {
		parts = append(parts, "department "+q.Department)
	}
	if q.Status != "" {
		parts = append(parts, "status "+q.Status)
	}
	parts = append(parts, fmt.Sprintf("sorted by %s %s", q.SortBy, q.SortOrder))
	return strings.Join(parts, ", ")
}

func exportFilename(q Query, ext string) string {
	scope := "all"
	if q.Department != "" {
		scope = safeFilenamePart(q.Department)
	}
	return fmt.Sprintf("EMPLOYEES_%s_%s.%s", scope, time.Now().Format("20060102"), ext)
}

func safeFilenamePart(s string) string {
	s = strings.TrimSpace(s)
	replacer := strings.NewReplacer(" ", "_", "/", "-", "\\", "-", ",", "")
	return replacer.Replace(s)
}
