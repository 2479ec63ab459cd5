// Package virtual computes which rows of a long list are worth rendering:
// the visible index window, per-row offsets and the total scroll height.
// It is geometry only; scrolling itself belongs to the caller.
package virtual

// Item is one renderable row: its index and vertical placement.
type Item struct {
	Index int
	Start int
	Size  int
}

// Virtualizer tracks scroll state over item count and row heights. Heights
// start from an estimate and can be corrected per row after rendering.
// Not safe for concurrent use; drive it from a single render loop.
type Virtualizer struct {
	count     int
	estimate  int
	overscan  int
	viewport  int
	scrollTop int
	measured  map[int]int
}

// New creates a virtualizer with an estimated row height and an overscan
// margin (extra rows rendered past the viewport edge).
func New(estimate, overscan int) *Virtualizer {
	if estimate < 1 {
		estimate = 1
	}
	if overscan < 0 {
		overscan = 0
	}
	return &Virtualizer{
		estimate: estimate,
		overscan: overscan,
		measured: make(map[int]int),
	}
}

// SetCount updates the item count, dropping measurements past the new end.
func (v *Virtualizer) SetCount(n int) {
	if n < 0 {
		n = 0
	}
	if n < v.count {
		for i := range v.measured {
			if i >= n {
				delete(v.measured, i)
			}
		}
	}
	v.count = n
	v.clampScroll()
}

// SetViewport sets the visible height in pixels.
func (v *Virtualizer) SetViewport(h int) {
	if h < 0 {
		h = 0
	}
	v.viewport = h
	v.clampScroll()
}

// SetScrollTop moves the window; values are clamped into the content.
func (v *Virtualizer) SetScrollTop(y int) {
	v.scrollTop = y
	v.clampScroll()
}

// ScrollBy moves the window relative to its current position.
func (v *Virtualizer) ScrollBy(dy int) {
	v.SetScrollTop(v.scrollTop + dy)
}

// ScrollTop reports the current scroll offset.
func (v *Virtualizer) ScrollTop() int {
	return v.scrollTop
}

// Measure records the rendered height of one row, replacing the estimate.
func (v *Virtualizer) Measure(index, size int) {
	if index < 0 || index >= v.count || size < 1 {
		return
	}
	if size == v.estimate {
		delete(v.measured, index)
		return
	}
	v.measured[index] = size
	v.clampScroll()
}

// TotalSize is the height of all rows; it sizes the scroll spacer so the
// native scrollbar stays accurate with only a window of rows rendered.
func (v *Virtualizer) TotalSize() int {
	total := v.count * v.estimate
	for _, size := range v.measured {
		total += size - v.estimate
	}
	return total
}

// Range returns the first and last row index to render, overscan included.
// last is -1 when there is nothing to render.
func (v *Virtualizer) Range() (first, last int) {
	if v.count == 0 || v.viewport == 0 {
		return 0, -1
	}

	first = -1
	offset := 0
	bottom := v.scrollTop + v.viewport
	for i := 0; i < v.count; i++ {
		size := v.size(i)
		if first < 0 && offset+size > v.scrollTop {
			first = i
		}
		if offset >= bottom {
			last = i - 1
			break
		}
		last = i
		offset += size
	}
	if first < 0 {
		first = v.count - 1
	}

	first -= v.overscan
	last += v.overscan
	if first < 0 {
		first = 0
	}
	if last > v.count-1 {
		last = v.count - 1
	}
	return first, last
}

// Items lists the rows in the current range with their offsets.
func (v *Virtualizer) Items() []Item {
	first, last := v.Range()
	if last < first {
		return nil
	}

	out := make([]Item, 0, last-first+1)
	start := v.offsetOf(first)
	for i := first; i <= last; i++ {
		size := v.size(i)
		out = append(out, Item{Index: i, Start: start, Size: size})
		start += size
	}
	return out
}

// NearEnd reports whether the rendered range touches the last item, the
// signal for the loader to fetch another page.
func (v *Virtualizer) NearEnd() bool {
	_, last := v.Range()
	return last >= v.count-1 && v.count > 0
}

func (v *Virtualizer) size(i int) int {
	if s, ok := v.measured[i]; ok {
		return s
	}
	return v.estimate
}

func (v *Virtualizer) offsetOf(index int) int {
	offset := index * v.estimate
	for i, size := range v.measured {
		if i < index {
			offset += size - v.estimate
		}
	}
	return offset
}

func (v *Virtualizer) clampScroll() {
	max := v.TotalSize() - v.viewport
	if max < 0 {
		max = 0
	}
	if v.scrollTop > max {
		v.scrollTop = max
	}
	if v.scrollTop < 0 {
		v.scrollTop = 0
	}
}
