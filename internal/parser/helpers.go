package parser

import (
	"github.com/trevordcampbell/zpl-toolchain/internal/diag"
	"github.com/trevordcampbell/zpl-toolchain/internal/source"
	"github.com/trevordcampbell/zpl-toolchain/internal/token"
	"github.com/trevordcampbell/zpl-toolchain/internal/zpl"
)

func (p *Parser) advance() token.Token {
	return p.lx.Next()
}

func (p *Parser) at(k token.Kind) bool {
	return p.lx.Peek().Kind == k
}

// push appends el to the open label, or to the document when none is open,
// and widens the label span to include it.
func (p *Parser) push(el zpl.Element, sp source.Span) {
	if p.label != nil {
		p.label.Elements = append(p.label.Elements, el)
		p.label.Span = p.label.Span.Cover(sp)
		return
	}
	p.items = append(p.items, el)
}

func (p *Parser) err(code diag.Code, sp source.Span, msg string, fixes ...diag.Fix) {
	p.report(code, diag.SevError, sp, msg, fixes...)
}

func (p *Parser) warn(code diag.Code, sp source.Span, msg string) {
	p.report(code, diag.SevWarning, sp, msg)
}

func (p *Parser) info(code diag.Code, sp source.Span, msg string) {
	p.report(code, diag.SevInfo, sp, msg)
}

func (p *Parser) report(code diag.Code, sev diag.Severity, sp source.Span, msg string, fixes ...diag.Fix) {
	if p.opts.Reporter == nil || p.opts.Enough() {
		return
	}
	if sev == diag.SevError {
		p.opts.CurrentErrors++
	}
	p.opts.Reporter.Report(code, sev, sp, msg, nil, fixes)
}

// ownLine reports whether only blanks sit between off and the start of its
// line, i.e. whether a comment at off occupies its own line.
func ownLine(content []byte, off uint32) bool {
	for i := int(off) - 1; i >= 0; i-- {
		switch content[i] {
		case ' ', '\t':
		case '\n', '\r':
			return true
		default:
			return false
		}
	}
	return true
}
