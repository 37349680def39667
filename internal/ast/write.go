package ast

// writer accumulates printed output and emits canonical whitespace.
type writer struct {
	buf         []byte
	indentLevel int
	atLineStart bool
}

const indentWidth = 4

func (w *writer) writeIndent() {
	if !w.atLineStart {
		return
	}
	for range w.indentLevel * indentWidth {
		w.buf = append(w.buf, ' ')
	}
	w.atLineStart = false
}

// WriteString writes s, indenting first if at the start of a line.
func (w *writer) WriteString(s string) {
	if s == "" {
		return
	}
	w.writeIndent()
	w.buf = append(w.buf, s...)
	w.atLineStart = s[len(s)-1] == '\n'
}

// Space writes a single space unless the output already ends with whitespace.
func (w *writer) Space() {
	if len(w.buf) == 0 {
		return
	}
	if last := w.buf[len(w.buf)-1]; last == ' ' || last == '\n' {
		return
	}
	w.buf = append(w.buf, ' ')
}

// Newline writes a newline unless the output already ends with one.
func (w *writer) Newline() {
	if len(w.buf) > 0 && w.buf[len(w.buf)-1] != '\n' {
		w.buf = append(w.buf, '\n')
	}
	w.atLineStart = true
}

func (w *writer) IndentPush() {
	w.indentLevel++
}

func (w *writer) IndentPop() {
	if w.indentLevel > 0 {
		w.indentLevel--
	}
}

func (w *writer) String() string {
	return string(w.buf)
}
