// Command viewer is a terminal client for the employee table server. It
// drives the incremental loader and the virtualizer the same way the
// browser client would: only rows inside the scroll window are rendered,
// and scrolling near the end of loaded data fetches the next page.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"datatable/internal/client"
	"datatable/internal/client/virtual"
)

// app is the render side of the viewer. The virtualizer is not safe for
// concurrent use, so every read and write of rows happens on the run loop
// goroutine; the stdin loop and loader callbacks reach it only through
// the redraw and command channels.
type app struct {
	loader *client.Loader
	rows   *virtual.Virtualizer
	out    io.Writer
}

func main() {
	server := flag.String("server", "http://localhost:8080", "base URL of the table server")
	viewport := flag.Int("viewport", 20, "visible rows (terminal lines)")
	overscan := flag.Int("overscan", 5, "extra rows rendered past the viewport edge")
	limit := flag.Int("limit", 100, "page size per fetch")
	flag.Parse()

	redraw := make(chan struct{}, 1)
	loader := client.New(*server, client.Options{
		PageSize: *limit,
		OnChange: func() { nudge(redraw) },
	})

	// one unit = one terminal line; long rows wrap and get measured taller
	rows := virtual.New(1, *overscan)
	rows.SetViewport(*viewport)

	a := &app{loader: loader, rows: rows, out: os.Stdout}
	commands := make(chan func(), 16)
	go a.run(redraw, commands)

	loader.Start()

	fmt.Println("commands: j/k scroll, d/u half page, g <row> jump, / <text> search,")
	fmt.Println("  dept <name>, status <active|inactive|pending>, sort <field> [asc|desc], r retry, q quit")

	in := bufio.NewScanner(os.Stdin)
	for in.Scan() {
		line := strings.TrimSpace(in.Text())
		cmd, arg, _ := strings.Cut(line, " ")
		arg = strings.TrimSpace(arg)

		switch cmd {
		case "q":
			return
		case "j":
			commands <- func() { rows.ScrollBy(1) }
		case "k":
			commands <- func() { rows.ScrollBy(-1) }
		case "d":
			commands <- func() { rows.ScrollBy(*viewport / 2) }
		case "u":
			commands <- func() { rows.ScrollBy(-*viewport / 2) }
		case "g":
			if n, err := strconv.Atoi(arg); err == nil {
				commands <- func() { rows.SetScrollTop(n) }
			}
		case "/":
			loader.SetSearch(arg)
			nudge(redraw)
		case "dept":
			loader.SetDepartment(arg)
			nudge(redraw)
		case "status":
			loader.SetStatus(arg)
			nudge(redraw)
		case "sort":
			by, order, _ := strings.Cut(arg, " ")
			if order != "desc" {
				order = "asc"
			}
			loader.SetSort(by, order)
			nudge(redraw)
		case "r":
			loader.Retry()
			nudge(redraw)
		case "":
			nudge(redraw)
		default:
			fmt.Println("unknown command:", cmd)
		}
	}
}

// nudge schedules a redraw without blocking; a redraw already pending
// covers this request too.
func nudge(redraw chan<- struct{}) {
	select {
	case redraw <- struct{}{}:
	default:
	}
}

// run applies commands and renders, one event at a time. It returns when
// either channel closes.
func (a *app) run(redraw <-chan struct{}, commands <-chan func()) {
	for {
		select {
		case _, ok := <-redraw:
			if !ok {
				return
			}
		case f, ok := <-commands:
			if !ok {
				return
			}
			f()
		}
		a.render()
	}
}

func (a *app) render() {
	snap := a.loader.Snapshot()
	a.rows.SetCount(len(snap.Records))

	fmt.Fprintf(a.out, "\n-- %s | loaded %d of %d | scroll %d/%d --\n",
		snap.State, len(snap.Records), snap.Total, a.rows.ScrollTop(), a.rows.TotalSize())
	if snap.State == client.Failed && snap.Err != nil {
		fmt.Fprintf(a.out, "!! %v (r to retry)\n", snap.Err)
	}

	for _, item := range a.rows.Items() {
		e := snap.Records[item.Index]
		lines := rowLines(item.Index, item.Start,
			fmt.Sprintf("#%-5d %-22s %-30s %-16s %9s %-8s",
				e.ID, e.Name, e.Email, e.Department, "$"+strconv.Itoa(e.Salary), e.Status))
		for _, ln := range lines {
			fmt.Fprintln(a.out, ln)
		}
		// rows that wrapped are taller than the one-line estimate
		a.rows.Measure(item.Index, len(lines))
	}

	if a.rows.NearEnd() && snap.HasNext {
		a.loader.LoadMore()
	}
}

// rowLines wraps a formatted row at 100 columns so the virtualizer has
// uneven heights to correct for, like variable-height DOM rows.
func rowLines(index, start int, text string) []string {
	prefix := fmt.Sprintf("%5d|%4d| ", index, start)
	const width = 100
	if len(prefix)+len(text) <= width {
		return []string{prefix + text}
	}
	head := width - len(prefix)
	return []string{prefix + text[:head], strings.Repeat(" ", len(prefix)) + text[head:]}
}
