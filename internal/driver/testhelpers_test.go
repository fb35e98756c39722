package driver

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/trevordcampbell/zpl-toolchain/internal/diag"
)

// writeLabelFile drops ZPL content into dir and returns its path.
func writeLabelFile(t *testing.T, dir, name string, content []byte) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir for %s: %v", name, err)
	}
	if err := os.WriteFile(path, content, 0o600); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
	return path
}

func hasCode(bag *diag.Bag, code diag.Code) bool {
	for _, d := range bag.Items() {
		if d.Code == code {
			return true
		}
	}
	return false
}

// Label fixtures used across the driver tests. The out-of-range ^GB width
// lints as an error; the empty required ^FO.x slot lints as a warning.
const (
	cleanLabel   = "^XA^FO30,30^FDX^FS^XZ"
	errorLabel   = "^XA^FO30,30^GB40000,10,1^FS^XZ"
	warningLabel = "^XA^FO,30^FDX^FS^XZ"
)
