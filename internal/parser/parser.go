// Package parser turns ZPL source into a zpl.Document. It is structurally
// permissive: malformed input degrades into diagnostics and a best-effort
// Document, never a parse failure. The only hard failure in the pipeline is
// a decode error on the raw bytes, which the driver checks before parsing.
package parser

import (
	"github.com/trevordcampbell/zpl-toolchain/internal/diag"
	"github.com/trevordcampbell/zpl-toolchain/internal/fix"
	"github.com/trevordcampbell/zpl-toolchain/internal/lexer"
	"github.com/trevordcampbell/zpl-toolchain/internal/source"
	"github.com/trevordcampbell/zpl-toolchain/internal/tables"
	"github.com/trevordcampbell/zpl-toolchain/internal/token"
	"github.com/trevordcampbell/zpl-toolchain/internal/zpl"
)

type Options struct {
	MaxErrors     uint
	CurrentErrors uint
	Reporter      diag.Reporter

	// Table marks which commands start literal field data; nil selects
	// the builtin table.
	Table *tables.Table
}

// Enough reports whether the error budget is spent. MaxErrors == 0 means
// no limit.
func (o *Options) Enough() bool {
	if o.MaxErrors == 0 {
		return false
	}
	return o.CurrentErrors >= o.MaxErrors
}

type Result struct {
	Doc *zpl.Document
	Bag *diag.Bag
}

// Parser holds the state for one file.
type Parser struct {
	file  *source.File
	lx    *lexer.Lexer
	opts  Options
	items []zpl.Node
	label *zpl.Label

	// prevCode is the code of the last successfully parsed command. A raw
	// leader that cannot start a command reads differently when the text
	// before it was ^FX free-form content.
	prevCode string
}

// ParseFile parses one source file into a Document. Structural problems are
// reported through opts.Reporter; the returned Document is always usable.
func ParseFile(file *source.File, opts Options) Result {
	if opts.Table == nil {
		opts.Table = tables.Builtin()
	}
	p := Parser{
		file: file,
		lx:   lexer.New(file),
		opts: opts,
	}
	doc := p.parseDocument()
	var bag *diag.Bag
	if br, ok := opts.Reporter.(diag.BagReporter); ok {
		bag = br.Bag
	}
	return Result{Doc: doc, Bag: bag}
}

func (p *Parser) parseDocument() *zpl.Document {
	for !p.at(token.EOF) {
		p.parseNext()
	}
	p.finish()
	return &zpl.Document{File: p.file.ID, Items: p.items}
}

func (p *Parser) parseNext() {
	switch p.lx.Peek().Kind {
	case token.Leader:
		p.parseCommandAt(p.advance())
	case token.Comment:
		tok := p.advance()
		p.push(&zpl.Comment{
			Text:    tok.Text,
			OwnLine: ownLine(p.file.Content, tok.Span.Start),
			Span:    tok.Span,
		}, tok.Span)
	case token.Whitespace, token.Newline:
		// Blank space between commands is formatting, not content.
		p.advance()
	default:
		p.parseStray()
	}
}

// parseStray coalesces a run of loose values into one Text node so a block
// of junk yields a single diagnostic instead of one per token. The run ends
// at a leader, comment, line break, or end of input.
func (p *Parser) parseStray() {
	sp := p.lx.Peek().Span
loop:
	for {
		switch p.lx.Peek().Kind {
		case token.Value, token.Comma, token.Whitespace:
			sp = sp.Cover(p.advance().Span)
		default:
			break loop
		}
	}
	p.push(&zpl.Text{Content: string(p.file.Content[sp.Start:sp.End]), Span: sp}, sp)
	p.warn(diag.ParseStrayContent, sp, "stray content outside of command context")
}

func (p *Parser) finish() {
	if p.label != nil {
		end := uint32(len(p.file.Content))
		eof := source.Span{File: p.file.ID, Start: end, End: end}
		p.err(diag.ParseMissingTerminator, eof, "missing terminator (^XZ)",
			fix.InsertAfter("insert ^XZ at end of label", eof, "^XZ"))
		p.items = append(p.items, p.label)
		p.label = nil
	}
	for _, item := range p.items {
		if _, ok := item.(*zpl.Label); ok {
			return
		}
	}
	p.info(diag.ParseNoLabels,
		source.Span{File: p.file.ID, Start: 0, End: uint32(len(p.file.Content))},
		"no labels detected")
}
