package parser

import (
	"fmt"
	"strings"

	"github.com/trevordcampbell/zpl-toolchain/internal/diag"
	"github.com/trevordcampbell/zpl-toolchain/internal/source"
	"github.com/trevordcampbell/zpl-toolchain/internal/token"
	"github.com/trevordcampbell/zpl-toolchain/internal/zpl"
)

// parseCommandAt parses one command whose leader token is already consumed.
// The command name is the first one or two bytes of the following value
// token; the rest of that token plus everything up to the next leader, line
// break, or comment is the raw parameter text.
func (p *Parser) parseCommandAt(leader token.Token) {
	if !p.at(token.Value) {
		msg := "invalid command: expected command code after leader"
		if p.prevCode == "^FX" {
			msg = fmt.Sprintf("reserved command leader %q inside ^FX free-form text", leader.Text)
		}
		p.err(diag.ParseInvalidCommand, leader.Span, msg)
		p.resync()
		return
	}
	nameTok := p.advance()
	name := commandName(nameTok.Text)
	if name == "" {
		p.err(diag.ParseInvalidCommand, leader.Span.Cover(nameTok.Span),
			"missing command code after leader")
		p.resync()
		return
	}
	lead := leader.Text[0]

	// Field-data commands (^FD, ^FV, and whatever an external table adds)
	// start literal content with their own collection rules.
	if entry, ok := p.opts.Table.Lookup(string(lead) + name); ok && entry.FieldData {
		p.parseFieldData(leader, nameTok, name)
		return
	}

	paramStart := nameTok.Span.Start + uint32(len(name))
	paramEnd := nameTok.Span.End
collect:
	for {
		switch p.lx.Peek().Kind {
		case token.Value, token.Comma, token.Whitespace:
			paramEnd = p.advance().Span.End
		case token.Newline:
			p.advance()
			break collect
		default:
			break collect
		}
	}

	sp := source.Span{File: p.file.ID, Start: leader.Span.Start, End: paramEnd}
	cmd := &zpl.Command{
		Leader: lead,
		Name:   name,
		Param:  strings.TrimSpace(string(p.file.Content[paramStart:paramEnd])),
		Span:   sp,
	}
	p.prevCode = cmd.Code()
	switch cmd.Code() {
	case "^XA":
		p.openLabel(cmd)
	case "^XZ":
		p.closeLabel(cmd)
	default:
		p.push(cmd, sp)
	}
}

// openLabel starts a new label. An already open label closes implicitly:
// printers treat a fresh ^XA as the start of the next format, so the parser
// does the same and leaves the incomplete label for the validator to flag.
func (p *Parser) openLabel(cmd *zpl.Command) {
	if p.label != nil {
		p.items = append(p.items, p.label)
	}
	p.label = &zpl.Label{Elements: []zpl.Element{cmd}, Span: cmd.Span}
}

// closeLabel ends the open label. A ^XZ with no label open stays in the
// document as a plain element so nothing is lost on reserialization.
func (p *Parser) closeLabel(cmd *zpl.Command) {
	if p.label == nil {
		p.items = append(p.items, cmd)
		return
	}
	p.label.Elements = append(p.label.Elements, cmd)
	p.label.Complete = true
	p.label.Span = p.label.Span.Cover(cmd.Span)
	p.items = append(p.items, p.label)
	p.label = nil
}

// resync skips ahead to the next command leader so recovery restarts at a
// known boundary instead of crawling token by token through garbage.
func (p *Parser) resync() {
	for !p.at(token.Leader) && !p.at(token.EOF) {
		p.advance()
	}
}

// commandName extracts the command code from the start of a value token:
// a letter followed by at most one letter, digit, or '@'. An empty result
// means the token cannot start a command.
func commandName(text string) string {
	if text == "" || !isAlpha(text[0]) {
		return ""
	}
	if len(text) >= 2 && (isAlpha(text[1]) || isDigit(text[1]) || text[1] == '@') {
		return text[:2]
	}
	return text[:1]
}

func isAlpha(b byte) bool {
	return b >= 'a' && b <= 'z' || b >= 'A' && b <= 'Z'
}

func isDigit(b byte) bool {
	return b >= '0' && b <= '9'
}
