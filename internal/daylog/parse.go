package daylog

import "strings"

// Source tags where a parsed DailyLog came from.
type Source int

const (
	// SourceParsed means the file existed and carried the header marker.
	SourceParsed Source = iota
	// SourceSkeleton means the content was missing or unrecognizable and the
	// log was rebuilt from the empty skeleton.
	SourceSkeleton
)

// Parse turns raw file content into a DailyLog. Content without the header
// marker — including empty or binary garbage — yields a fresh skeleton with
// SourceSkeleton; Parse never fails.
func Parse(data []byte) (*DailyLog, Source) {
	content := string(data)
	if !strings.Contains(content, Header) {
		return New(), SourceSkeleton
	}

	d := New()
	current := ""
	for _, line := range strings.Split(content, "\n") {
		line = strings.TrimSpace(line)

		// The footer begins a literal trailer; nothing below it is entries.
		if line != "" && strings.HasPrefix(line, "# ") && line != Header {
			current = ""
			continue
		}

		switch {
		case strings.HasPrefix(line, sectionMarker):
			name := strings.TrimSpace(line[len(sectionMarker):])
			if name != "" {
				current = name
				if _, ok := d.entries[name]; !ok {
					d.names = append(d.names, name)
					d.entries[name] = nil
				}
			}
		case current != "" && strings.HasPrefix(line, entryMarker):
			if !d.Has(current, line) {
				d.entries[current] = append(d.entries[current], line)
			}
		}
	}
	return d, SourceParsed
}
