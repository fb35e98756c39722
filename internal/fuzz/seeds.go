package fuzztests

import (
	"io/fs"
	"os"
	"path/filepath"
	"testing"
)

const (
	maxSeedBytes = 64 << 10 // 64 KiB cap per corpus entry
)

func addCorpusSeeds(f *testing.F) {
	addTestdataSeeds(f)
	addInlineSeeds(f)
}

// addTestdataSeeds pulls every .zpl file under the repository testdata tree
// into the corpus. Missing testdata is fine; the inline seeds cover the
// structural shapes on their own.
func addTestdataSeeds(f *testing.F) {
	root := filepath.Join("..", "..", "testdata")
	if _, err := os.Stat(root); err != nil {
		return
	}
	_ = filepath.WalkDir(root, func(path string, d fs.DirEntry, walkErr error) error {
		if walkErr != nil || d.IsDir() || filepath.Ext(path) != ".zpl" {
			return nil
		}
		// #nosec G304 -- path comes from repository testdata walk
		src, err := os.ReadFile(path)
		if err != nil {
			return nil
		}
		f.Add(clampSeed(src))
		return nil
	})
}

// addInlineSeeds covers the structural shapes the parser distinguishes:
// complete labels, field blocks, comments in both placements, free-form
// ^FX content, stray bytes, and truncated input.
func addInlineSeeds(f *testing.F) {
	seeds := []string{
		"",
		"^XA^XZ",
		"^XA\n^PW609\n^LL406\n^FO30,30\n^A0N,35,35\n^FDWIDGET-3000\n^FS\n^XZ\n",
		"^XA^FO20,20^FDTEST^FS^XZ",
		"^XA\n^PW812\n; set print width\n^XZ\n",
		"^XA ^FO10,10 ; trailing comment\n^FS ^XZ",
		"^XA\n^FX free text, commas, ^ caret inside\n^XZ\n",
		"^XA\n^BCN,100,Y,N,N\n^FD12345678\n^FS\n^XZ\n",
		"^XA\n^FO30,30\n^FDno separator\n^XZ\n",
		"stray bytes before\n^XA^FDX^FS^XZ\nand after\n",
		"^XA\n^FO10,10",       // truncated label
		"~HS",                 // host command outside a label
		"^",                   // bare leader at EOF
		"^1A not a command\n", // invalid command name
		";only a comment\n",
	}
	for _, s := range seeds {
		f.Add([]byte(s))
	}
}

func clampSeed(src []byte) []byte {
	if len(src) <= maxSeedBytes {
		return append([]byte(nil), src...)
	}
	return append([]byte(nil), src[:maxSeedBytes]...)
}
