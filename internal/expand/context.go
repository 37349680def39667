package expand

import (
	"quasi/internal/diag"
	"quasi/internal/lexer"
	"quasi/internal/source"
	"quasi/internal/token"
)

// QuoteExpansion names the virtual files created for quoted fragments.
const QuoteExpansion = "<quote expansion>"

// Context is passed to every conversion and parse.
type Context struct {
	Config *Config
	Sess   *Session
}

// NewContext binds cfg and sess; nil arguments get empty defaults.
func NewContext(cfg *Config, sess *Session) *Context {
	if cfg == nil {
		cfg = NewConfig()
	}
	if sess == nil {
		sess = NewSession(cfg.MaxDiagnostics)
	}
	return &Context{Config: cfg, Sess: sess}
}

// AddSource registers src as a virtual file and returns it.
func (cx *Context) AddSource(name, src string) *source.File {
	id := cx.Sess.FileSet.AddVirtual(name, []byte(src))
	return cx.Sess.FileSet.Get(id)
}

// ParseTTs lexes src into token trees. Diagnostics go to the session bag;
// the first error of this call is also returned as a *diag.Error.
func (cx *Context) ParseTTs(name, src string) ([]token.Tree, error) {
	return cx.TreesOf(cx.AddSource(name, src))
}

// TreesOf lexes an already registered file into token trees.
func (cx *Context) TreesOf(file *source.File) ([]token.Tree, error) {
	rep := &firstError{next: cx.Sess.Reporter()}
	lx := lexer.New(file, lexer.Options{Reporter: rep})
	trees := lx.Trees()
	if rep.first != nil {
		return nil, diag.AsError(*rep.first)
	}
	return trees, nil
}

// firstError forwards everything and remembers the first error.
type firstError struct {
	next  diag.Reporter
	first *diag.Diagnostic
}

func (r *firstError) Report(code diag.Code, sev diag.Severity, primary source.Span, msg string, notes []diag.Note) {
	if sev >= diag.SevError && r.first == nil {
		d := diag.New(sev, code, primary, msg)
		d.Notes = notes
		r.first = &d
	}
	r.next.Report(code, sev, primary, msg, notes)
}
