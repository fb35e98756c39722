package driver

import (
	"encoding/hex"
	"errors"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/vmihailenco/msgpack/v5"

	"github.com/trevordcampbell/zpl-toolchain/internal/diag"
	"github.com/trevordcampbell/zpl-toolchain/internal/project"
	"github.com/trevordcampbell/zpl-toolchain/internal/source"
)

// lintCacheSchema versions the payload layout; bump it when the cached
// shape changes so stale entries read as misses.
const lintCacheSchema uint16 = 1

// DiskCache persists lint results keyed by content and table digests.
// A nil *DiskCache is a valid no-op cache. Safe for concurrent use.
type DiskCache struct {
	mu  sync.RWMutex
	dir string
}

// OpenDiskCache initializes the cache at the standard location:
// $XDG_CACHE_HOME/<app>, falling back to ~/.cache/<app>.
func OpenDiskCache(app string) (*DiskCache, error) {
	base := os.Getenv("XDG_CACHE_HOME")
	if base == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, err
		}
		base = filepath.Join(home, ".cache")
	}
	dir := filepath.Join(base, app)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return &DiskCache{dir: dir}, nil
}

func (c *DiskCache) pathFor(key project.Digest) string {
	return filepath.Join(c.dir, "lint", hex.EncodeToString(key[:])+".mp")
}

// cachedSpan stores offsets only; the file ID is re-pointed on restore
// since IDs are local to one FileSet.
type cachedSpan struct {
	Start uint32
	End   uint32
}

type cachedNote struct {
	Span cachedSpan
	Msg  string
}

type cachedEdit struct {
	Span    cachedSpan
	NewText string
}

type cachedFix struct {
	Title string
	Edits []cachedEdit
}

type cachedDiag struct {
	Severity uint8
	Code     uint16
	Message  string
	Primary  cachedSpan
	Notes    []cachedNote
	Fixes    []cachedFix
}

// lintPayload is the serialized form of one file's lint findings.
type lintPayload struct {
	Schema uint16
	Diags  []cachedDiag
}

// Put atomically writes a payload: encode to a temp file, then rename.
func (c *DiskCache) Put(key project.Digest, payload *lintPayload) error {
	if c == nil {
		return nil
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	p := c.pathFor(key)
	if err := os.MkdirAll(filepath.Dir(p), 0o755); err != nil {
		return err
	}
	tmp, err := os.CreateTemp(filepath.Dir(p), "tmp-*")
	if err != nil {
		return err
	}
	if err := msgpack.NewEncoder(tmp).Encode(payload); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return err
	}
	return os.Rename(tmp.Name(), p)
}

// Get reads a payload; a missing entry or a schema mismatch is a miss,
// not an error.
func (c *DiskCache) Get(key project.Digest, out *lintPayload) (bool, error) {
	if c == nil {
		return false, nil
	}
	c.mu.RLock()
	defer c.mu.RUnlock()

	f, err := os.Open(c.pathFor(key))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return false, nil
		}
		return false, err
	}
	defer f.Close()
	if err := msgpack.NewDecoder(f).Decode(out); err != nil {
		return false, err
	}
	if out.Schema != lintCacheSchema {
		return false, nil
	}
	return true, nil
}

// DropAll invalidates the whole cache directory.
func (c *DiskCache) DropAll() error {
	if c == nil {
		return nil
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	old := c.dir + ".old-" + time.Now().Format("20060102150405")
	if err := os.Rename(c.dir, old); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return err
	}
	return os.RemoveAll(old)
}

// snapshotBag converts a bag into the cacheable payload.
func snapshotBag(bag *diag.Bag) *lintPayload {
	payload := &lintPayload{Schema: lintCacheSchema}
	if bag == nil {
		return payload
	}
	items := bag.Items()
	payload.Diags = make([]cachedDiag, 0, len(items))
	for _, d := range items {
		cd := cachedDiag{
			Severity: uint8(d.Severity),
			Code:     uint16(d.Code),
			Message:  d.Message,
			Primary:  cachedSpan{Start: d.Primary.Start, End: d.Primary.End},
		}
		for _, n := range d.Notes {
			cd.Notes = append(cd.Notes, cachedNote{
				Span: cachedSpan{Start: n.Span.Start, End: n.Span.End},
				Msg:  n.Msg,
			})
		}
		for _, fx := range d.Fixes {
			cf := cachedFix{Title: fx.Title}
			for _, e := range fx.Edits {
				cf.Edits = append(cf.Edits, cachedEdit{
					Span:    cachedSpan{Start: e.Span.Start, End: e.Span.End},
					NewText: e.NewText,
				})
			}
			cd.Fixes = append(cd.Fixes, cf)
		}
		payload.Diags = append(payload.Diags, cd)
	}
	return payload
}

// restoreBag rebuilds a bag from a cached payload, re-pointing every span
// at fileID.
func restoreBag(payload *lintPayload, fileID source.FileID, maxDiagnostics int) *diag.Bag {
	bag := newBag(maxDiagnostics)
	for _, cd := range payload.Diags {
		d := diag.Diagnostic{
			Severity: diag.Severity(cd.Severity),
			Code:     diag.Code(cd.Code),
			Message:  cd.Message,
			Primary:  source.Span{File: fileID, Start: cd.Primary.Start, End: cd.Primary.End},
		}
		for _, n := range cd.Notes {
			d.Notes = append(d.Notes, diag.Note{
				Span: source.Span{File: fileID, Start: n.Span.Start, End: n.Span.End},
				Msg:  n.Msg,
			})
		}
		for _, cf := range cd.Fixes {
			fx := diag.Fix{Title: cf.Title}
			for _, e := range cf.Edits {
				fx.Edits = append(fx.Edits, diag.FixEdit{
					Span:    source.Span{File: fileID, Start: e.Span.Start, End: e.Span.End},
					NewText: e.NewText,
				})
			}
			d.Fixes = append(d.Fixes, fx)
		}
		bag.Add(d)
	}
	return bag
}
