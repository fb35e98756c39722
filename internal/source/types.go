package source

type (
	// FileID uniquely identifies a source file within a FileSet.
	FileID uint32
	// FileFlags encodes metadata about how a source file was acquired.
	FileFlags uint8
)

const (
	// FileVirtual marks a file added from memory (stdin, tests, generated input).
	FileVirtual FileFlags = 1 << iota
	// FileHadBOM marks a file whose UTF-8 byte order mark was stripped on load.
	FileHadBOM
	// FileNormalizedCRLF marks a file whose CRLF sequences were rewritten to LF.
	FileNormalizedCRLF
)

// File captures metadata and content for a single ZPL source file.
// Content is the normalized byte form that all spans refer to.
type File struct {
	ID      FileID
	Path    string
	Content []byte
	LineIdx []uint32 // byte offsets of every '\n'
	Hash    [32]byte // sha256 of Content, used as a cache key
	Flags   FileFlags
}

// LineCol is a human-readable position in a source file.
type LineCol struct {
	Line uint32 // 1-based
	Col  uint32 // 1-based
}
