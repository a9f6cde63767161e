// Package daylog models one daily markdown log file: a literal header, named
// sections of entry lines, and a literal footer.
//
// The on-disk format is advisory and human-edited, so parsing favors
// availability over strict validation: anything that does not look like a log
// file degrades to a fresh skeleton instead of an error.
package daylog

import (
	"sort"
	"strings"
)

// Markers delimiting the section body inside a daily file.
const (
	Header = "# What I did"
	Footer = "# Whats next\n\n\n# What Broke or Got Weird"

	// SectionOther is the miscellany bucket, always rendered last.
	SectionOther = "other"

	sectionMarker = "## "
	entryMarker   = "- "
)

// DailyLog is the parsed content of one daily markdown file. Sections keep
// insertion order; rendering imposes the canonical order.
type DailyLog struct {
	names   []string
	entries map[string][]string
}

// New returns an empty DailyLog.
func New() *DailyLog {
	return &DailyLog{entries: make(map[string][]string)}
}

// Sections returns section names in insertion order.
func (d *DailyLog) Sections() []string {
	out := make([]string, len(d.names))
	copy(out, d.names)
	return out
}

// Entries returns the entry lines of a section in append order.
func (d *DailyLog) Entries(section string) []string {
	src := d.entries[section]
	out := make([]string, len(src))
	copy(out, src)
	return out
}

// Has reports whether section contains the exact entry line.
func (d *DailyLog) Has(section, line string) bool {
	for _, e := range d.entries[section] {
		if e == line {
			return true
		}
	}
	return false
}

// Append adds an entry line to a section, creating the section on first use.
// Duplicate lines are the caller's concern.
func (d *DailyLog) Append(section, line string) {
	if _, ok := d.entries[section]; !ok {
		d.names = append(d.names, section)
	}
	d.entries[section] = append(d.entries[section], line)
}

// Remove deletes the exact entry line from a section, if present. Lines are
// unique within a section, so at most one entry goes.
func (d *DailyLog) Remove(section, line string) {
	es := d.entries[section]
	for i, e := range es {
		if e == line {
			d.entries[section] = append(es[:i], es[i+1:]...)
			return
		}
	}
}

// orderedSections returns section names in render order: case-insensitive
// alphabetical, with SectionOther forced last.
func (d *DailyLog) orderedSections() []string {
	var names []string
	hasOther := false
	for _, n := range d.names {
		if n == SectionOther {
			hasOther = true
			continue
		}
		names = append(names, n)
	}
	sort.SliceStable(names, func(i, j int) bool {
		return strings.ToLower(names[i]) < strings.ToLower(names[j])
	})
	if hasOther {
		names = append(names, SectionOther)
	}
	return names
}
