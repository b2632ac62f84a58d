// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package recorder

import (
	"github.com/tidwall/gjson"

	"github.com/tagtint/tagtint/internal/tag"
)

// Event is one decoded line of the test event stream. The fields mirror
// `go test -json` output; Tags is an extension emitted by tag-aware
// harnesses and is empty otherwise.
type Event struct {
	Action  string
	Package string
	Test    string
	Elapsed float64
	Output  string
	Tags    []tag.Tag
}

// ParseEvent decodes a single stream line. The second result is false for
// lines that are not JSON event objects; those are passed through verbatim
// by the recorder rather than treated as errors.
func ParseEvent(line string) (Event, bool) {
	if !gjson.Valid(line) {
		return Event{}, false
	}

	doc := gjson.Parse(line)
	if !doc.IsObject() || !doc.Get("Action").Exists() {
		return Event{}, false
	}

	ev := Event{
		Action:  doc.Get("Action").String(),
		Package: doc.Get("Package").String(),
		Test:    doc.Get("Test").String(),
		Elapsed: doc.Get("Elapsed").Float(),
		Output:  doc.Get("Output").String(),
	}

	for _, t := range doc.Get("Tags").Array() {
		if name := t.String(); name != "" {
			ev.Tags = append(ev.Tags, tag.Tag(name))
		}
	}

	return ev, true
}
