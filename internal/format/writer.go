package format

// indentUnit is one level of structural indentation.
const indentUnit = "  "

// Writer accumulates formatted output line by line. Indentation is written
// lazily at the start of a line, so callers can set the level once and emit
// text in pieces.
type Writer struct {
	buf         []byte
	indentLevel int
	atLineStart bool
}

func NewWriter(capacity int) *Writer {
	return &Writer{
		buf:         make([]byte, 0, capacity),
		atLineStart: true,
	}
}

// Bytes returns the accumulated output.
func (w *Writer) Bytes() []byte {
	return w.buf
}

// SetIndent fixes the indentation level for subsequent lines.
func (w *Writer) SetIndent(level int) {
	if level < 0 {
		level = 0
	}
	w.indentLevel = level
}

func (w *Writer) writeIndent() {
	if !w.atLineStart {
		return
	}
	for range w.indentLevel {
		w.buf = append(w.buf, indentUnit...)
	}
	w.atLineStart = false
}

// WriteString writes s, emitting indentation first when at a line start.
// Embedded newlines are passed through untouched: verbatim payloads such as
// multi-line field data must not be re-indented.
func (w *Writer) WriteString(s string) {
	if s == "" {
		return
	}
	w.writeIndent()
	w.buf = append(w.buf, s...)
	w.atLineStart = s[len(s)-1] == '\n'
}

// Newline terminates the current line if one is open.
func (w *Writer) Newline() {
	if len(w.buf) == 0 || w.buf[len(w.buf)-1] != '\n' {
		w.buf = append(w.buf, '\n')
	}
	w.atLineStart = true
}

// TrimNewline reopens the previous line so trailing content (an inline
// comment, say) can be glued onto it.
func (w *Writer) TrimNewline() {
	if len(w.buf) > 0 && w.buf[len(w.buf)-1] == '\n' {
		w.buf = w.buf[:len(w.buf)-1]
		w.atLineStart = false
	}
}

// Empty reports whether nothing has been written yet.
func (w *Writer) Empty() bool {
	return len(w.buf) == 0
}
