package tables

import (
	"sort"
	"testing"
)

func TestBuiltinLookup(t *testing.T) {
	tbl := Builtin()

	fo, ok := tbl.Lookup("^FO")
	if !ok {
		t.Fatalf("^FO not found in builtin table")
	}
	if !fo.OpensField {
		t.Errorf("^FO should open a field")
	}
	if fo.MaxArgs() != 3 {
		t.Errorf("^FO MaxArgs = %d, want 3", fo.MaxArgs())
	}
	if !fo.Args[0].Required || !fo.Args[1].Required {
		t.Errorf("^FO x and y should be required")
	}
	if fo.Args[2].Required {
		t.Errorf("^FO justification should be optional")
	}

	fs, ok := tbl.Lookup("^FS")
	if !ok || !fs.ClosesField {
		t.Errorf("^FS should close a field, got %+v ok=%v", fs, ok)
	}
	fd, ok := tbl.Lookup("^FD")
	if !ok || !fd.FieldData {
		t.Errorf("^FD should carry field data, got %+v ok=%v", fd, ok)
	}
	fx, ok := tbl.Lookup("^FX")
	if !ok || !fx.FreeText {
		t.Errorf("^FX should be free text, got %+v ok=%v", fx, ok)
	}
	hs, ok := tbl.Lookup("~HS")
	if !ok || hs.Plane != PlaneHost || hs.MaxArgs() != 0 {
		t.Errorf("~HS should be a host command with no args, got %+v ok=%v", hs, ok)
	}

	if _, ok := tbl.Lookup("^QQ"); ok {
		t.Errorf("^QQ should not be in the builtin table")
	}
}

func TestBuiltinBarcodeRules(t *testing.T) {
	tbl := Builtin()

	b3, ok := tbl.Lookup("^B3")
	if !ok {
		t.Fatalf("^B3 not found")
	}
	if b3.Data == nil || b3.Data.Charset != "0-9A-Z .$/+%-" {
		t.Errorf("^B3 charset = %+v, want Code 39 set", b3.Data)
	}
	if len(b3.Requires) != 1 || b3.Requires[0] != "^BY" {
		t.Errorf("^B3 Requires = %v, want [^BY]", b3.Requires)
	}

	be, ok := tbl.Lookup("^BE")
	if !ok {
		t.Fatalf("^BE not found")
	}
	if be.Data == nil || be.Data.ExactLength != 12 || be.Data.Charset != "0-9" {
		t.Errorf("^BE data rules = %+v, want 12 digits", be.Data)
	}
}

func TestBuiltinPlanes(t *testing.T) {
	tests := []struct {
		code string
		want Plane
	}{
		{"^XA", PlaneFormat},
		{"^FO", PlaneFormat},
		{"^PW", PlaneConfig},
		{"^LL", PlaneConfig},
		{"~HS", PlaneHost},
		{"~HI", PlaneHost},
		{"~SD", PlaneDevice},
	}
	tbl := Builtin()
	for _, tt := range tests {
		e, ok := tbl.Lookup(tt.code)
		if !ok {
			t.Errorf("%s not found", tt.code)
			continue
		}
		if e.Plane != tt.want {
			t.Errorf("%s plane = %s, want %s", tt.code, e.Plane, tt.want)
		}
	}
}

func TestCodesSorted(t *testing.T) {
	tbl := Builtin()
	codes := tbl.Codes()
	if len(codes) != tbl.Len() {
		t.Fatalf("Codes() returned %d entries, Len() = %d", len(codes), tbl.Len())
	}
	if !sort.StringsAreSorted(codes) {
		t.Errorf("Codes() not sorted: %v", codes)
	}
}

func TestArgRanged(t *testing.T) {
	tests := []struct {
		arg  Arg
		want bool
	}{
		{Arg{Name: "free"}, false},
		{Arg{Name: "cap", Max: 8}, true},
		{Arg{Name: "darkness", Min: -30, Max: 30}, true},
		{Arg{Name: "floor", Min: 1}, true},
	}
	for _, tt := range tests {
		if got := tt.arg.Ranged(); got != tt.want {
			t.Errorf("Ranged(%s) = %v, want %v", tt.arg.Name, got, tt.want)
		}
	}
}

func TestDigestStable(t *testing.T) {
	a := Builtin().Digest()
	b := Builtin().Digest()
	if a != b {
		t.Errorf("builtin digest not stable: %x vs %x", a, b)
	}

	merged, err := Load([]byte(`{"commands":{"^QQ":{"plane":"format"}}}`))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if merged.Digest() == a {
		t.Errorf("digest unchanged after adding a command")
	}
}
