package observ

import (
	"strings"
	"testing"
	"time"
)

func TestTimerPhases(t *testing.T) {
	tm := NewTimer()
	idx := tm.Begin("parse")
	time.Sleep(time.Millisecond)
	tm.End(idx, "3 labels")

	report := tm.Report()
	if len(report.Phases) != 1 {
		t.Fatalf("got %d phases, want 1", len(report.Phases))
	}
	p := report.Phases[0]
	if p.Name != "parse" || p.Note != "3 labels" {
		t.Errorf("phase = %+v", p)
	}
	if p.DurationMS <= 0 {
		t.Errorf("DurationMS = %v, want > 0", p.DurationMS)
	}
	if report.TotalMS < p.DurationMS {
		t.Errorf("TotalMS = %v, want >= %v", report.TotalMS, p.DurationMS)
	}
}

func TestTimerEndOutOfRange(t *testing.T) {
	tm := NewTimer()
	tm.End(-1, "")
	tm.End(5, "")
	if got := tm.Report(); len(got.Phases) != 0 {
		t.Errorf("phases = %v, want none", got.Phases)
	}
}

func TestTimerSummary(t *testing.T) {
	tm := NewTimer()
	idx := tm.Begin("tokenize")
	tm.End(idx, "cache hit")

	out := tm.Summary()
	if !strings.HasPrefix(out, "timings:\n") {
		t.Errorf("summary = %q", out)
	}
	if !strings.Contains(out, "tokenize") || !strings.Contains(out, "// cache hit") {
		t.Errorf("summary missing phase line:\n%s", out)
	}
	if !strings.Contains(out, "total") {
		t.Errorf("summary missing total:\n%s", out)
	}
}

func TestTimerEmptyReport(t *testing.T) {
	report := NewTimer().Report()
	if report.TotalMS != 0 || len(report.Phases) != 0 {
		t.Errorf("report = %+v, want zero", report)
	}
}
