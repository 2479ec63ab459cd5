package handlers

import (
	"math/rand"
	"net/http"
	"strconv"
	"strings"
	"time"

	"datatable/internal/config"
	"datatable/internal/dataset"
	"datatable/internal/domain/models"
	"datatable/internal/http/middleware"
	"datatable/internal/services"
	"datatable/internal/utils"

	"github.com/gin-gonic/gin"
)

// API owns the request-handling context: the dataset store built at startup
// and the env config. Handlers hang off it so tests can seed their own store.
type API struct {
	Store *dataset.Store
	Env   config.Env

	// Sleep is swappable so tests skip the artificial latency.
	Sleep func(time.Duration)
}

// NewAPI wires handlers around a dataset store.
func NewAPI(store *dataset.Store, env config.Env) *API {
	return &API{Store: store, Env: env, Sleep: time.Sleep}
}

func (a *API) service(c *gin.Context) services.EmployeeService {
	return services.EmployeeService{
		Store:     a.Store,
		RequestID: middleware.GetRequestID(c),
	}
}

// parseQuery coerces the string-typed query params. Malformed numbers fall
// back to defaults instead of propagating; the endpoint never rejects.
func parseQuery(c *gin.Context) services.Query {
	return services.Query{
		Page:       atoiDefault(c.Query("page"), services.DefaultPage),
		Limit:      atoiDefault(c.Query("limit"), services.DefaultLimit),
		Search:     c.Query("search"),
		SortBy:     c.DefaultQuery("sortBy", "id"),
		SortOrder:  strings.ToLower(utils.TrimOrEmpty(c.DefaultQuery("sortOrder", services.OrderAsc))),
		Department: c.Query("department"),
		Status:     c.Query("status"),
	}
}

func atoiDefault(raw string, def int) int {
	raw = utils.TrimOrEmpty(raw)
	if raw == "" {
		return def
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return def
	}
	return v
}

// simulateLatency waits a random interval inside the configured window, to
// keep client behavior honest about network/processing cost.
func (a *API) simulateLatency() {
	if a.Env.DelayMaxMS <= 0 {
		return
	}
	d := a.Env.DelayMinMS
	if span := a.Env.DelayMaxMS - a.Env.DelayMinMS; span > 0 {
		d += rand.Intn(span + 1)
	}
	if d > 0 && a.Sleep != nil {
		a.Sleep(time.Duration(d) * time.Millisecond)
	}
}

// GetEmployees answers the table query.
// @Summary Query employees
// @Description Filter, sort and paginate the in-memory employee dataset
// @Tags employees
// @Produce json
// @Param page query int false "1-based page number" default(1)
// @Param limit query int false "page size" default(50)
// @Param search query string false "case-insensitive substring across name/email/company/department/position/location"
// @Param sortBy query string false "field name to sort by" default(id)
// @Param sortOrder query string false "asc or desc" default(asc)
// @Param department query string false "exact-match department filter"
// @Param status query string false "exact-match status filter"
// @Success 200 {object} services.Page
// @Router /employees [get]
func (a *API) GetEmployees(c *gin.Context) {
	q := parseQuery(c)
	page := a.service(c).List(q)

	a.simulateLatency()
	c.JSON(http.StatusOK, page)
}

// GetEmployeeByID returns a single record.
// @Summary Get employee
// @Tags employees
// @Produce json
// @Param id path int true "employee id"
// @Success 200 {object} models.Employee
// @Failure 404 {object} handlers.ErrorResponse
// @Router /employees/{id} [get]
func (a *API) GetEmployeeByID(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id < 1 {
		respondError(c, http.StatusBadRequest, "invalid_id", "employee id must be a positive integer")
		return
	}

	e, err := a.service(c).GetByID(id)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, e)
}

// GetEmployeeFilters lists the values the filter controls can offer.
// @Summary List filter vocabularies
// @Tags employees
// @Produce json
// @Success 200 {object} map[string]any
// @Router /employees/filters [get]
func (a *API) GetEmployeeFilters(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"departments": a.Store.Departments(),
		"positions":   a.Store.Positions(),
		"statuses":    a.Store.Statuses(),
		"sortFields":  models.SortFields,
		"sortOrders":  []string{services.OrderAsc, services.OrderDesc},
	})
}
