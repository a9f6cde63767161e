package entryfmt

import "github.com/starford/logbook/internal/daylog"

// Apply adds a rendered entry line to a section of the log, creating the
// section if needed. An exact duplicate leaves the log unchanged and reports
// applied=false.
func Apply(d *daylog.DailyLog, section, line string) (applied bool) {
	if d.Has(section, line) {
		return false
	}
	d.Append(section, line)
	return true
}

// ApplyCommit adds a commit entry to a section. Entries in the section with
// the same message under a different hash are removed first (an amended
// commit supersedes its predecessors), then the new line is appended once.
// An exact match reports applied=false.
func ApplyCommit(d *daylog.DailyLog, section, hash, message string) (applied bool) {
	line := FormatCommit(hash, message)
	if d.Has(section, line) {
		return false
	}
	for _, existing := range d.Entries(section) {
		if _, em, ok := ParseCommit(existing); ok && em == message {
			d.Remove(section, existing)
		}
	}
	d.Append(section, line)
	return true
}

// ApplyManual adds a manual entry to the "other" section.
func ApplyManual(d *daylog.DailyLog, text string) (applied bool) {
	return Apply(d, daylog.SectionOther, FormatManual(text))
}
