package source

import (
	"testing"
)

func TestSpanCover(t *testing.T) {
	tests := []struct {
		name     string
		span     Span
		other    Span
		expected Span
	}{
		{
			name:     "disjoint spans merge to hull",
			span:     Span{File: 1, Start: 10, End: 20},
			other:    Span{File: 1, Start: 30, End: 40},
			expected: Span{File: 1, Start: 10, End: 40},
		},
		{
			name:     "contained span changes nothing",
			span:     Span{File: 1, Start: 10, End: 40},
			other:    Span{File: 1, Start: 15, End: 20},
			expected: Span{File: 1, Start: 10, End: 40},
		},
		{
			name:     "other extends left",
			span:     Span{File: 1, Start: 10, End: 20},
			other:    Span{File: 1, Start: 5, End: 12},
			expected: Span{File: 1, Start: 5, End: 20},
		},
		{
			name:     "other extends both sides",
			span:     Span{File: 1, Start: 10, End: 20},
			other:    Span{File: 1, Start: 0, End: 100},
			expected: Span{File: 1, Start: 0, End: 100},
		},
		{
			name:     "different files are ignored",
			span:     Span{File: 1, Start: 10, End: 20},
			other:    Span{File: 2, Start: 0, End: 100},
			expected: Span{File: 1, Start: 10, End: 20},
		},
		{
			name:     "empty span extends to other",
			span:     Span{File: 1, Start: 10, End: 10},
			other:    Span{File: 1, Start: 10, End: 15},
			expected: Span{File: 1, Start: 10, End: 15},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := tt.span.Cover(tt.other)
			if result != tt.expected {
				t.Errorf("Cover() = %+v, want %+v", result, tt.expected)
			}
		})
	}
}

func TestSpanEmptyAndLen(t *testing.T) {
	empty := Span{File: 1, Start: 7, End: 7}
	if !empty.Empty() {
		t.Error("expected zero-length span to be empty")
	}
	if empty.Len() != 0 {
		t.Errorf("expected Len 0, got %d", empty.Len())
	}

	full := Span{File: 1, Start: 3, End: 9}
	if full.Empty() {
		t.Error("expected non-empty span")
	}
	if full.Len() != 6 {
		t.Errorf("expected Len 6, got %d", full.Len())
	}
}

func TestSpanString(t *testing.T) {
	s := Span{File: 2, Start: 100, End: 150}
	if got := s.String(); got != "2:100-150" {
		t.Errorf("String() = %q, want %q", got, "2:100-150")
	}
}
