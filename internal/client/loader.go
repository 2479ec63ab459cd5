// Package client implements the table's data side: an incremental loader
// that accumulates pages from the query endpoint under the current filters
// and resets when they change.
package client

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"sync"
	"time"

	"datatable/internal/domain/models"
	"datatable/internal/services"
)

// State is the loader's fetch state.
type State int

const (
	Idle State = iota
	Loading
	Failed
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Loading:
		return "loading"
	case Failed:
		return "error"
	default:
		return "unknown"
	}
}

// Filters mirrors the query params the endpoint accepts, minus pagination.
type Filters struct {
	Search     string
	SortBy     string
	SortOrder  string
	Department string
	Status     string
}

// Options tunes a Loader. Zero values get sensible defaults.
type Options struct {
	PageSize int           // default 50
	Debounce time.Duration // search commit delay, default 500ms
	Timeout  time.Duration // per-request bound, default 10s

	HTTPClient *http.Client

	// OnChange fires after every observable transition (records appended,
	// state moved, error set). Called without internal locks held.
	OnChange func()

	// after schedules the debounce timer; tests replace it.
	after func(time.Duration, func()) *time.Timer
}

// Snapshot is a consistent copy of loader state for rendering.
type Snapshot struct {
	State   State
	Err     error
	Records []models.Employee
	Page    int
	Total   int
	HasNext bool
	Filters Filters
}

type request struct {
	page       int
	reset      bool
	generation int
}

// Loader coordinates fetch-on-scroll and filter-triggered resets. Every
// fetch carries the generation it was issued under; responses from an older
// generation are dropped so a slow page-2 can never pollute a new filter set.
type Loader struct {
	baseURL string
	opts    Options
	client  *http.Client
	after   func(time.Duration, func()) *time.Timer

	mu          sync.Mutex
	state       State
	err         error
	records     []models.Employee
	page        int
	total       int
	hasNext     bool
	filters     Filters
	generation  int
	inFlight    bool
	lastReq     request
	searchInput string
	debounce    *time.Timer
}

// New builds a Loader against baseURL (e.g. "http://localhost:8080").
func New(baseURL string, opts Options) *Loader {
	if opts.PageSize < 1 {
		opts.PageSize = 50
	}
	if opts.Debounce <= 0 {
		opts.Debounce = 500 * time.Millisecond
	}
	if opts.Timeout <= 0 {
		opts.Timeout = 10 * time.Second
	}
	// the loader works on its own client; defaulting the timeout must not
	// write through to a client the caller shares elsewhere
	client := &http.Client{}
	if opts.HTTPClient != nil {
		c := *opts.HTTPClient
		client = &c
	}
	// a hung request must not hold Loading forever
	if client.Timeout == 0 {
		client.Timeout = opts.Timeout
	}
	after := opts.after
	if after == nil {
		after = time.AfterFunc
	}
	return &Loader{
		baseURL: baseURL,
		opts:    opts,
		client:  client,
		after:   after,
		filters: Filters{SortBy: "id", SortOrder: services.OrderAsc},
		page:    1,
		hasNext: true,
	}
}

// Start issues the initial page-1 fetch.
func (l *Loader) Start() {
	l.mu.Lock()
	l.resetLocked()
	l.mu.Unlock()
}

// SetSearch buffers a keystroke. The buffer commits to the active filters
// only after the debounce window passes without further input.
func (l *Loader) SetSearch(text string) {
	l.mu.Lock()
	l.searchInput = text
	if l.debounce != nil {
		l.debounce.Stop()
	}
	l.debounce = l.after(l.opts.Debounce, l.commitSearch)
	l.mu.Unlock()
}

func (l *Loader) commitSearch() {
	l.mu.Lock()
	if l.filters.Search == l.searchInput {
		l.mu.Unlock()
		return
	}
	l.filters.Search = l.searchInput
	l.resetLocked()
	l.mu.Unlock()
}

// SetDepartment replaces the department filter and resets immediately.
func (l *Loader) SetDepartment(v string) {
	l.mu.Lock()
	if l.filters.Department != v {
		l.filters.Department = v
		l.resetLocked()
	}
	l.mu.Unlock()
}

// SetStatus replaces the status filter and resets immediately.
func (l *Loader) SetStatus(v string) {
	l.mu.Lock()
	if l.filters.Status != v {
		l.filters.Status = v
		l.resetLocked()
	}
	l.mu.Unlock()
}

// SetSort replaces the sort key/direction and resets immediately.
func (l *Loader) SetSort(by, order string) {
	l.mu.Lock()
	if l.filters.SortBy != by || l.filters.SortOrder != order {
		l.filters.SortBy = by
		l.filters.SortOrder = order
		l.resetLocked()
	}
	l.mu.Unlock()
}

// LoadMore is the near-end-of-list signal. It advances one page only when
// nothing is in flight and more pages are known to exist, which is what
// prevents duplicate concurrent fetches for the same page.
func (l *Loader) LoadMore() {
	l.mu.Lock()
	if l.inFlight || l.state != Idle || !l.hasNext {
		l.mu.Unlock()
		return
	}
	l.page++
	l.startFetchLocked(request{page: l.page, generation: l.generation})
	l.mu.Unlock()
}

// Retry re-issues the request that failed.
func (l *Loader) Retry() {
	l.mu.Lock()
	if l.state != Failed {
		l.mu.Unlock()
		return
	}
	l.err = nil
	req := l.lastReq
	req.generation = l.generation
	l.startFetchLocked(req)
	l.mu.Unlock()
}

// Snapshot copies current state for rendering.
func (l *Loader) Snapshot() Snapshot {
	l.mu.Lock()
	defer l.mu.Unlock()
	records := make([]models.Employee, len(l.records))
	copy(records, l.records)
	return Snapshot{
		State:   l.state,
		Err:     l.err,
		Records: records,
		Page:    l.page,
		Total:   l.total,
		HasNext: l.hasNext,
		Filters: l.filters,
	}
}

// resetLocked clears accumulated rows and refetches page 1. Bumping the
// generation invalidates any response still in flight.
func (l *Loader) resetLocked() {
	l.generation++
	l.records = nil
	l.page = 1
	l.total = 0
	l.hasNext = true
	l.err = nil
	l.startFetchLocked(request{page: 1, reset: true, generation: l.generation})
}

func (l *Loader) startFetchLocked(req request) {
	l.state = Loading
	l.inFlight = true
	l.lastReq = req
	go l.fetch(req)
}

func (l *Loader) fetch(req request) {
	page, err := l.get(req.page)

	l.mu.Lock()
	if req.generation != l.generation {
		// stale response from before a filter reset; the reset already
		// started its own fetch, which owns inFlight now
		l.mu.Unlock()
		return
	}
	l.inFlight = false
	if err != nil {
		l.state = Failed
		l.err = err
	} else {
		if req.reset {
			l.records = page.Data
		} else {
			l.records = append(l.records, page.Data...)
		}
		l.total = page.Pagination.Total
		l.hasNext = page.Pagination.HasNext
		l.state = Idle
		l.err = nil
	}
	onChange := l.opts.OnChange
	l.mu.Unlock()

	if onChange != nil {
		onChange()
	}
}

func (l *Loader) get(page int) (services.Page, error) {
	var out services.Page

	l.mu.Lock()
	f := l.filters
	limit := l.opts.PageSize
	l.mu.Unlock()

	q := url.Values{}
	q.Set("page", strconv.Itoa(page))
	q.Set("limit", strconv.Itoa(limit))
	q.Set("search", f.Search)
	q.Set("sortBy", f.SortBy)
	q.Set("sortOrder", f.SortOrder)
	q.Set("department", f.Department)
	q.Set("status", f.Status)

	resp, err := l.client.Get(l.baseURL + "/api/employees?" + q.Encode())
	if err != nil {
		return out, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return out, fmt.Errorf("fetch failed: %s", resp.Status)
	}
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return out, fmt.Errorf("decode response: %w", err)
	}
	return out, nil
}
