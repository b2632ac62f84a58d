// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package recorder

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss/v2"
	"github.com/dustin/go-humanize"
	"golang.org/x/term"

	"github.com/tagtint/tagtint/internal/tag"
)

// Result symbols, per action.
const (
	passMark = "✔"
	failMark = "✖"
	skipMark = "↷"
)

// Fallback result colors used when no tag color applies.
var (
	passColor = lipgloss.Color("2")
	failColor = lipgloss.Color("1")
	skipColor = lipgloss.Color("3")
)

// Recorder renders test events. It accumulates counters for the final
// summary but holds no other state, so rendering the same stream twice
// through two recorders yields identical output.
type Recorder struct {
	w         io.Writer
	tagColors map[tag.Tag]tag.Color
	color     bool
	verbose   bool

	pass    int
	fail    int
	skip    int
	events  int64
	elapsed float64
}

// New constructs a Recorder. By default output goes to stdout and color is
// enabled only when stdout is a terminal.
func New(opts ...Option) *Recorder {
	r := &Recorder{
		w:     os.Stdout,
		color: term.IsTerminal(int(os.Stdout.Fd())),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Render consumes the event stream line by line until EOF and writes the
// rendered form. Lines that are not event objects pass through verbatim.
func (r *Recorder) Render(in io.Reader) error {
	scanner := bufio.NewScanner(in)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		r.Record(scanner.Text())
	}
	return scanner.Err()
}

// Record renders a single stream line.
func (r *Recorder) Record(line string) {
	ev, ok := ParseEvent(line)
	if !ok {
		fmt.Fprintln(r.w, line)
		return
	}
	r.events++

	switch ev.Action {
	case "output":
		if r.verbose {
			fmt.Fprint(r.w, ev.Output)
		}
	case "pass", "fail", "skip":
		// Package-level events carry no test name and only contribute to
		// the elapsed total.
		if ev.Test == "" {
			r.elapsed += ev.Elapsed
			return
		}
		r.renderResult(ev)
	}
}

// Summary writes the accumulated counts and total elapsed time.
func (r *Recorder) Summary() {
	total := r.pass + r.fail + r.skip
	fmt.Fprintf(r.w, "%s tests: %d passed, %d failed, %d skipped (%s events, %.2fs)\n",
		humanize.Comma(int64(total)), r.pass, r.fail, r.skip,
		humanize.Comma(r.events), r.elapsed)
}

// Failed reports whether any rendered test failed.
func (r *Recorder) Failed() bool {
	return r.fail > 0
}

func (r *Recorder) renderResult(ev Event) {
	var mark string
	var fallback = passColor
	switch ev.Action {
	case "pass":
		mark = passMark
		r.pass++
	case "fail":
		mark = failMark
		fallback = failColor
		r.fail++
	case "skip":
		mark = skipMark
		fallback = skipColor
		r.skip++
	}

	line := fmt.Sprintf("%s %s", mark, ev.Test)
	if ev.Elapsed > 0 {
		line += fmt.Sprintf(" (%.2fs)", ev.Elapsed)
	}

	if !r.color {
		if len(ev.Tags) > 0 {
			line += " " + plainChips(ev.Tags)
		}
		fmt.Fprintln(r.w, line)
		return
	}

	// The first tag with a configured color wins the line; remaining tags
	// still get their own chip colors.
	lineColor := fallback
	for _, t := range ev.Tags {
		if c, ok := r.tagColors[t]; ok {
			lineColor = c.TerminalColor()
			break
		}
	}

	styled := lipgloss.NewStyle().Foreground(lineColor).Render(line)
	if len(ev.Tags) > 0 {
		styled += " " + r.renderChips(ev.Tags)
	}
	fmt.Fprintln(r.w, styled)
}

// renderChips renders the tag list, coloring each configured tag.
func (r *Recorder) renderChips(tags []tag.Tag) string {
	chips := make([]string, 0, len(tags))
	for _, t := range tags {
		chip := "[" + t.String() + "]"
		if c, ok := r.tagColors[t]; ok {
			chip = lipgloss.NewStyle().Foreground(c.TerminalColor()).Render(chip)
		}
		chips = append(chips, chip)
	}
	return strings.Join(chips, " ")
}

func plainChips(tags []tag.Tag) string {
	chips := make([]string, 0, len(tags))
	for _, t := range tags {
		chips = append(chips, "["+t.String()+"]")
	}
	return strings.Join(chips, " ")
}
