package format

import (
	"strings"
	"testing"
)

func TestParseIndentMode(t *testing.T) {
	tests := []struct {
		in   string
		want IndentMode
	}{
		{"", IndentNone},
		{"none", IndentNone},
		{"label", IndentLabel},
		{"field", IndentField},
	}
	for _, tt := range tests {
		got, err := ParseIndentMode(tt.in)
		if err != nil {
			t.Errorf("ParseIndentMode(%q) error: %v", tt.in, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseIndentMode(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
	if _, err := ParseIndentMode("tabs"); err == nil || !strings.Contains(err.Error(), `invalid indent mode "tabs"`) {
		t.Errorf("expected invalid mode error, got %v", err)
	}
}

func TestParseCompactionMode(t *testing.T) {
	for in, want := range map[string]CompactionMode{"": CompactNone, "none": CompactNone, "field": CompactField} {
		got, err := ParseCompactionMode(in)
		if err != nil || got != want {
			t.Errorf("ParseCompactionMode(%q) = %v, %v; want %v", in, got, err, want)
		}
	}
	if _, err := ParseCompactionMode("label"); err == nil || !strings.Contains(err.Error(), "invalid compaction mode") {
		t.Errorf("expected invalid mode error, got %v", err)
	}
}

func TestParseCommentMode(t *testing.T) {
	for in, want := range map[string]CommentMode{"": CommentDefault, "default": CommentDefault, "line": CommentLine} {
		got, err := ParseCommentMode(in)
		if err != nil || got != want {
			t.Errorf("ParseCommentMode(%q) = %v, %v; want %v", in, got, err, want)
		}
	}
	if _, err := ParseCommentMode("inline"); err == nil || !strings.Contains(err.Error(), "invalid comment placement") {
		t.Errorf("expected invalid mode error, got %v", err)
	}
}

func TestModeStrings(t *testing.T) {
	if IndentField.String() != "field" || IndentNone.String() != "none" {
		t.Error("IndentMode.String mismatch")
	}
	if CompactField.String() != "field" || CompactNone.String() != "none" {
		t.Error("CompactionMode.String mismatch")
	}
	if CommentLine.String() != "line" || CommentDefault.String() != "default" {
		t.Error("CommentMode.String mismatch")
	}
}
