package parser

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/trevordcampbell/zpl-toolchain/internal/diag"
	"github.com/trevordcampbell/zpl-toolchain/internal/source"
	"github.com/trevordcampbell/zpl-toolchain/internal/token"
	"github.com/trevordcampbell/zpl-toolchain/internal/zpl"
)

// parseFieldData collects everything after ^FD or ^FV as literal content.
// Inside a field, ',' ';' and line breaks lose their structural meaning, so
// the token grammar does not apply: the content is scanned as raw bytes up
// to the next command leader and the lexer is re-synced past it.
func (p *Parser) parseFieldData(leader, nameTok token.Token, name string) {
	contentStart := nameTok.Span.Start + uint32(len(name))
	contentEnd := uint32(len(p.file.Content))
	if rel := bytes.IndexAny(p.file.Content[contentStart:], "^~"); rel >= 0 {
		contentEnd = contentStart + uint32(rel)
	}
	p.lx.Sync(contentEnd)

	sp := source.Span{File: p.file.ID, Start: leader.Span.Start, End: contentEnd}
	cmd := &zpl.Command{
		Leader: leader.Text[0],
		Name:   name,
		Param:  trimFieldData(string(p.file.Content[contentStart:contentEnd])),
		Span:   sp,
	}
	p.prevCode = cmd.Code()
	p.push(cmd, sp)

	if p.at(token.EOF) {
		p.err(diag.ParseMissingFieldSep,
			source.Span{File: p.file.ID, Start: contentStart, End: contentEnd},
			"missing field separator (^FS) before end of input")
		return
	}

	next := p.advance()
	cand := ""
	if p.at(token.Value) {
		cand = commandName(p.lx.Peek().Text)
	}
	if next.Text[0] != '^' || cand != "FS" {
		p.warn(diag.ParseFieldDataInterrupted, next.Span,
			fmt.Sprintf("field data interrupted by %s before ^FS", string(next.Text[0])+cand))
	}
	p.parseCommandAt(next)
}

// trimFieldData drops a trailing line break from field data together with
// any indentation that followed it. Trailing spaces and tabs on the last
// content line are kept: only whitespace after the final line break is
// stripped, inner line breaks stay untouched.
func trimFieldData(content string) string {
	trimmed := strings.TrimRight(content, " \t")
	if strings.HasSuffix(trimmed, "\n") || strings.HasSuffix(trimmed, "\r") {
		return strings.TrimRight(trimmed, "\r\n")
	}
	return strings.TrimRight(content, "\r\n")
}
