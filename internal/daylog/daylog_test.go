package daylog

import (
	"bytes"
	"strings"
	"testing"
)

func TestParse_MissingHeaderIsSkeleton(t *testing.T) {
	for _, content := range []string{"", "random text\n", "## section\n- entry\n"} {
		d, src := Parse([]byte(content))
		if src != SourceSkeleton {
			t.Errorf("Parse(%q) source = %v, want skeleton", content, src)
		}
		if len(d.Sections()) != 0 {
			t.Errorf("Parse(%q) sections = %v, want none", content, d.Sections())
		}
	}
}

func TestParse_SectionsAndEntries(t *testing.T) {
	content := "# What I did\n\n## alpha\n- (abc1234) fix bug\n- manual note\n\n## other\n- lunch\n\n" + Footer + "\n"
	d, src := Parse([]byte(content))
	if src != SourceParsed {
		t.Fatalf("source = %v, want parsed", src)
	}
	if got := d.Sections(); len(got) != 2 || got[0] != "alpha" || got[1] != "other" {
		t.Fatalf("sections = %v", got)
	}
	if got := d.Entries("alpha"); len(got) != 2 || got[0] != "- (abc1234) fix bug" {
		t.Errorf("alpha entries = %v", got)
	}
}

func TestParse_FooterEntriesIgnored(t *testing.T) {
	content := "# What I did\n\n## alpha\n- kept\n\n# Whats next\n- not an entry\n\n# What Broke or Got Weird\n"
	d, _ := Parse([]byte(content))
	if got := d.Entries("alpha"); len(got) != 1 || got[0] != "- kept" {
		t.Errorf("alpha entries = %v", got)
	}
}

func TestParse_DropsDuplicateLines(t *testing.T) {
	content := "# What I did\n\n## alpha\n- same\n- same\n"
	d, _ := Parse([]byte(content))
	if got := d.Entries("alpha"); len(got) != 1 {
		t.Errorf("entries = %v, want one", got)
	}
}

func TestRemove(t *testing.T) {
	d := New()
	d.Append("alpha", "- a")
	d.Append("alpha", "- b")
	d.Append("alpha", "- c")

	d.Remove("alpha", "- b")
	if got := d.Entries("alpha"); len(got) != 2 || got[0] != "- a" || got[1] != "- c" {
		t.Errorf("entries = %v", got)
	}

	// Absent line and absent section are no-ops.
	d.Remove("alpha", "- missing")
	d.Remove("nope", "- a")
	if got := d.Entries("alpha"); len(got) != 2 {
		t.Errorf("entries = %v", got)
	}
}

func TestRender_OtherAlwaysLast(t *testing.T) {
	d := New()
	d.Append("other", "- misc")
	d.Append("zulu", "- z")
	d.Append("Alpha", "- a")

	out := string(Render(d))
	ia := strings.Index(out, "## Alpha")
	iz := strings.Index(out, "## zulu")
	io := strings.Index(out, "## other")
	if ia < 0 || iz < 0 || io < 0 {
		t.Fatalf("missing section in:\n%s", out)
	}
	if !(ia < iz && iz < io) {
		t.Errorf("order wrong: Alpha=%d zulu=%d other=%d\n%s", ia, iz, io, out)
	}
}

func TestRender_EmptySectionOmitted(t *testing.T) {
	d := New()
	d.Append("alpha", "- a")
	d.names = append(d.names, "empty")
	d.entries["empty"] = nil

	out := string(Render(d))
	if strings.Contains(out, "## empty") {
		t.Errorf("empty section rendered:\n%s", out)
	}
}

func TestRender_EmptyLogKeepsMarkers(t *testing.T) {
	out := string(Render(New()))
	if !strings.Contains(out, Header) || !strings.Contains(out, Footer) {
		t.Errorf("markers missing:\n%s", out)
	}
}

func TestRoundTrip_Idempotent(t *testing.T) {
	d := New()
	d.Append("zulu", "- (abc1234) late entry")
	d.Append("alpha", "- first")
	d.Append("alpha", "- second")
	d.Append("other", "- lunch")

	once := Render(d)
	reparsed, src := Parse(once)
	if src != SourceParsed {
		t.Fatalf("source = %v, want parsed", src)
	}
	twice := Render(reparsed)
	if !bytes.Equal(once, twice) {
		t.Errorf("round trip not idempotent:\n--- once ---\n%s\n--- twice ---\n%s", once, twice)
	}
}
