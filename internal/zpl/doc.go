// Package zpl defines the ZPL document model produced by the parser.
//
// A Document is an ordered stream of Nodes: Labels (delimited by ^XA/^XZ)
// interleaved with stray content that appears outside any label. A Label owns
// an ordered stream of Elements, including its own ^XA and ^XZ commands, so
// serializing a Document is a plain walk over its nodes.
//
// Command parameters are kept as a single raw string; nothing in this package
// splits them. Typed interpretation belongs to the validator, which splits the
// raw text according to the command's table entry.
package zpl
