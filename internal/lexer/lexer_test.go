package lexer

import (
	"testing"

	"github.com/trevordcampbell/zpl-toolchain/internal/token"
)

type want struct {
	kind token.Kind
	text string
}

func collect(t *testing.T, input string) []token.Token {
	t.Helper()
	lx := New(createFile(input))
	var out []token.Token
	for {
		tok := lx.Next()
		out = append(out, tok)
		if tok.Kind == token.EOF {
			return out
		}
		if len(out) > 10000 {
			t.Fatal("lexer does not terminate")
		}
	}
}

func assertTokens(t *testing.T, input string, wants []want) {
	t.Helper()
	got := collect(t, input)
	if len(got) != len(wants)+1 {
		t.Fatalf("token count = %d, want %d (plus EOF)\ntokens: %v", len(got), len(wants)+1, got)
	}
	for i, w := range wants {
		if got[i].Kind != w.kind {
			t.Errorf("token %d kind = %v, want %v", i, got[i].Kind, w.kind)
		}
		if got[i].Text != w.text {
			t.Errorf("token %d text = %q, want %q", i, got[i].Text, w.text)
		}
	}
	if got[len(got)-1].Kind != token.EOF {
		t.Errorf("last token = %v, want EOF", got[len(got)-1].Kind)
	}
}

func TestLexSimpleLabel(t *testing.T) {
	assertTokens(t, "^XA^XZ", []want{
		{token.Leader, "^"},
		{token.Value, "XA"},
		{token.Leader, "^"},
		{token.Value, "XZ"},
	})
}

func TestLexCommandWithArgs(t *testing.T) {
	assertTokens(t, "^FO30,30", []want{
		{token.Leader, "^"},
		{token.Value, "FO30"},
		{token.Comma, ","},
		{token.Value, "30"},
	})
}

func TestLexTildeLeader(t *testing.T) {
	assertTokens(t, "~HS", []want{
		{token.Leader, "~"},
		{token.Value, "HS"},
	})
}

func TestLexComment(t *testing.T) {
	assertTokens(t, "; set width\n^PW812", []want{
		{token.Comment, "; set width"},
		{token.Newline, "\n"},
		{token.Leader, "^"},
		{token.Value, "PW812"},
	})
}

func TestLexCommentStopsAtNewlineOnly(t *testing.T) {
	// Leaders and commas inside a comment are comment text.
	assertTokens(t, ";^FO,~HS;still", []want{
		{token.Comment, ";^FO,~HS;still"},
	})
}

func TestLexWhitespaceRuns(t *testing.T) {
	assertTokens(t, "  \t^XA", []want{
		{token.Whitespace, "  \t"},
		{token.Leader, "^"},
		{token.Value, "XA"},
	})
}

func TestLexNewlineVariants(t *testing.T) {
	// A raw CRLF counts as a single break; lone CR too.
	assertTokens(t, "^XA\r\n^XZ\r", []want{
		{token.Leader, "^"},
		{token.Value, "XA"},
		{token.Newline, "\r\n"},
		{token.Leader, "^"},
		{token.Value, "XZ"},
		{token.Newline, "\r"},
	})
}

func TestLexValueWithSpaces(t *testing.T) {
	assertTokens(t, "^FDWIDGET 3000", []want{
		{token.Leader, "^"},
		{token.Value, "FDWIDGET"},
		{token.Whitespace, " "},
		{token.Value, "3000"},
	})
}

func TestLexGarbageIsValues(t *testing.T) {
	// The lexer is total: arbitrary bytes still tokenize.
	got := collect(t, "hello world!")
	if got[0].Kind != token.Value || got[0].Text != "hello" {
		t.Errorf("unexpected first token %v %q", got[0].Kind, got[0].Text)
	}
	if got[len(got)-1].Kind != token.EOF {
		t.Error("expected EOF last")
	}
}

func TestLexRoundTrip(t *testing.T) {
	inputs := []string{
		"^XA\n^FO30,30^A0N,35,35^FDWIDGET-3000^FS\n^XZ\n",
		"; comment only\n",
		"^PW812 ; set print width\n",
		"",
		"^FD data with , commas and ; semis^FS",
		"stray text\n^XA^XZ",
	}
	for _, input := range inputs {
		var rebuilt []byte
		for _, tok := range collect(t, input) {
			rebuilt = append(rebuilt, tok.Text...)
		}
		if string(rebuilt) != input {
			t.Errorf("round trip mismatch:\n in: %q\nout: %q", input, string(rebuilt))
		}
	}
}

func TestLexPeekDoesNotConsume(t *testing.T) {
	lx := New(createFile("^XA"))

	p1 := lx.Peek()
	p2 := lx.Peek()
	if p1 != p2 {
		t.Errorf("two peeks differ: %v vs %v", p1, p2)
	}

	n := lx.Next()
	if n != p1 {
		t.Errorf("Next() = %v, want peeked %v", n, p1)
	}
	if lx.Next().Kind != token.Value {
		t.Error("expected Value after consuming leader")
	}
}

func TestLexSpansCoverInput(t *testing.T) {
	input := "^FO30,30^FDX^FS"
	toks := collect(t, input)

	var prevEnd uint32
	for _, tok := range toks[:len(toks)-1] {
		if tok.Span.Start != prevEnd {
			t.Errorf("gap before token %q: start %d, want %d", tok.Text, tok.Span.Start, prevEnd)
		}
		if int(tok.Span.End-tok.Span.Start) != len(tok.Text) {
			t.Errorf("span length mismatch for %q", tok.Text)
		}
		prevEnd = tok.Span.End
	}
	if int(prevEnd) != len(input) {
		t.Errorf("tokens end at %d, want %d", prevEnd, len(input))
	}
}

func TestLexSync(t *testing.T) {
	lx := New(createFile("^FDa;b,c^FS"))

	lx.Next() // ^
	lx.Next() // FDa
	lx.Peek() // fill the lookahead so Sync has something to drop

	// Jump straight to the ^FS leader, as the parser does after consuming
	// field data bytes directly.
	lx.Sync(8)
	if tok := lx.Next(); tok.Kind != token.Leader || tok.Span.Start != 8 {
		t.Fatalf("after Sync got %v at %d, want Leader at 8", tok.Kind, tok.Span.Start)
	}
	if tok := lx.Next(); tok.Kind != token.Value || tok.Text != "FS" {
		t.Fatalf("after Sync got %v %q, want Value \"FS\"", tok.Kind, tok.Text)
	}
}
