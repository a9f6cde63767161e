package daylog

import "strings"

// Render serializes a DailyLog to its canonical byte form: header, sections
// in case-insensitive alphabetical order with "other" last, footer. Empty
// sections are omitted. Render(Parse(Render(d))) is byte-identical to
// Render(d).
func Render(d *DailyLog) []byte {
	var b strings.Builder
	b.WriteString(Header)
	b.WriteString("\n\n")

	wrote := false
	for _, name := range d.orderedSections() {
		entries := d.entries[name]
		if len(entries) == 0 {
			continue
		}
		b.WriteString(sectionMarker)
		b.WriteString(name)
		b.WriteString("\n")
		for _, e := range entries {
			b.WriteString(e)
			b.WriteString("\n")
		}
		b.WriteString("\n")
		wrote = true
	}
	if !wrote {
		b.WriteString("\n")
	}

	b.WriteString(Footer)
	b.WriteString("\n")
	return []byte(b.String())
}
