package handlers

import (
	"net/http"

	"datatable/internal/http/middleware"
	"datatable/internal/services"

	"github.com/gin-gonic/gin"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// ExportEmployees downloads the filtered roster as PDF or XLSX. The same
// filter/sort params as GetEmployees apply; pagination is ignored.
// @Summary Export filtered roster
// @Tags employees
// @Produce application/pdf
// @Param format query string false "pdf or xlsx" default(pdf)
// @Param search query string false "substring filter"
// @Param sortBy query string false "field name to sort by" default(id)
// @Param sortOrder query string false "asc or desc" default(asc)
// @Param department query string false "exact-match department filter"
// @Param status query string false "exact-match status filter"
// @Success 200 {file} binary
// @Failure 400 {object} handlers.ErrorResponse
// @Router /employees/export [get]
func (a *API) ExportEmployees(c *gin.Context) {
	svc := services.ExportService{
		Employees: a.service(c),
		RequestID: middleware.GetRequestID(c),
	}
	q := parseQuery(c)

	var (
		body        []byte
		filename    string
		contentType string
		err         error
	)
	switch c.DefaultQuery("format", "pdf") {
	case "pdf":
		contentType = "application/pdf"
		body, filename, err = svc.RosterPDF(q)
	case "xlsx":
		contentType = xlsxContentType
		body, filename, err = svc.RosterXLSX(q)
	default:
		respondError(c, http.StatusBadRequest, "invalid_format", "format must be pdf or xlsx")
		return
	}
	if err != nil {
		respondError(c, http.StatusInternalServerError, "export_failed", err.Error())
		return
	}

	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Data(http.StatusOK, contentType, body)
}
