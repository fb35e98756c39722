package project

import (
	"crypto/sha256"
)

// Digest is a fixed 256-bit hash, layout-compatible with source.File.Hash.
type Digest [32]byte

// HashBytes digests raw content.
func HashBytes(data []byte) Digest {
	return sha256.Sum256(data)
}

// Combine builds a composite key: H(content || part1 || part2 ...). The
// lint cache keys entries on the file content digest combined with the
// command table digest, so table changes invalidate cached results. The
// order of parts must be deterministic.
func Combine(content Digest, parts ...Digest) Digest {
	h := sha256.New()
	_, _ = h.Write(content[:])
	for _, d := range parts {
		_, _ = h.Write(d[:])
	}
	var out Digest
	copy(out[:], h.Sum(nil))
	return out
}
