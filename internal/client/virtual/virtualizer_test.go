package virtual

import "testing"

func TestRangeWithOverscan(t *testing.T) {
	v := New(10, 2)
	v.SetCount(100)
	v.SetViewport(50)

	first, last := v.Range()
	if first != 0 || last != 6 {
		t.Fatalf("at top expected range [0,6], got [%d,%d]", first, last)
	}

	v.SetScrollTop(95)
	first, last = v.Range()
	// rows 9..14 intersect [95,145); overscan widens by 2 each side
	if first != 7 || last != 16 {
		t.Fatalf("expected range [7,16], got [%d,%d]", first, last)
	}
}

func TestRangeClampsAtEnd(t *testing.T) {
	v := New(10, 3)
	v.SetCount(20)
	v.SetViewport(50)

	v.SetScrollTop(1000) // clamped to totalSize - viewport = 150
	if v.ScrollTop() != 150 {
		t.Fatalf("scroll not clamped, got %d", v.ScrollTop())
	}

	first, last := v.Range()
	if last != 19 {
		t.Fatalf("bottom range must end at last index, got %d", last)
	}
	if first != 12 {
		// rows 15..19 visible, minus overscan 3
		t.Fatalf("expected first 12, got %d", first)
	}
}

func TestTotalSizeTracksMeasurements(t *testing.T) {
	v := New(10, 0)
	v.SetCount(50)
	v.SetViewport(100)

	if got := v.TotalSize(); got != 500 {
		t.Fatalf("estimated total 500, got %d", got)
	}

	v.Measure(0, 30)
	v.Measure(3, 5)
	if got := v.TotalSize(); got != 500+20-5 {
		t.Fatalf("measured total 515, got %d", got)
	}

	// measuring back to the estimate removes the correction
	v.Measure(3, 10)
	if got := v.TotalSize(); got != 520 {
		t.Fatalf("total after re-measure should be 520, got %d", got)
	}
}

func TestItemsOffsetsAfterMeasure(t *testing.T) {
	v := New(10, 0)
	v.SetCount(10)
	v.SetViewport(45)
	v.Measure(0, 30)

	items := v.Items()
	if len(items) == 0 {
		t.Fatal("no items at top")
	}
	if items[0].Index != 0 || items[0].Start != 0 || items[0].Size != 30 {
		t.Fatalf("unexpected first item %+v", items[0])
	}
	if items[1].Start != 30 || items[2].Start != 40 {
		t.Fatalf("offsets must follow measured heights: %+v", items[:3])
	}
	// [0,45) covers rows 0 (0-30), 1 (30-40), 2 (40-50 partial)
	if last := items[len(items)-1].Index; last != 2 {
		t.Fatalf("expected last visible index 2, got %d", last)
	}
}

func TestNearEnd(t *testing.T) {
	v := New(10, 1)
	v.SetCount(100)
	v.SetViewport(50)

	if v.NearEnd() {
		t.Fatal("top of list must not be near the end")
	}

	v.SetScrollTop(10_000)
	if !v.NearEnd() {
		t.Fatal("bottom of list must report near-end")
	}

	// growing the list moves the end away again
	v.SetCount(200)
	if v.NearEnd() {
		t.Fatal("after append, the window is no longer at the end")
	}
}

func TestEmptyAndShrink(t *testing.T) {
	v := New(10, 2)
	if _, last := v.Range(); last != -1 {
		t.Fatalf("empty list should have no range, got last=%d", last)
	}
	if v.Items() != nil {
		t.Fatal("empty list renders nothing")
	}

	v.SetCount(50)
	v.SetViewport(50)
	v.Measure(40, 25)
	v.SetScrollTop(400)

	// filter reset: accumulated rows shrink, measurements past the end drop
	v.SetCount(10)
	if got := v.TotalSize(); got != 100 {
		t.Fatalf("stale measurement survived shrink: total %d", got)
	}
	if v.ScrollTop() != 50 {
		t.Fatalf("scroll must clamp into the shrunk content, got %d", v.ScrollTop())
	}
}
