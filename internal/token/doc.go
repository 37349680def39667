// Package token defines lexical token kinds, trivia and token trees for the
// quoted language.
// Invariants:
//   - Token.Text is the exact lexeme; for synthesized tokens it is the canonical
//     spelling of the kind (see Kind.String) or the identifier/literal text.
//   - Interpolated tokens carry a typed syntax node in Token.Nt and have no
//     lexical spelling; they are never produced by the lexer.
//   - Literal suffixes (5i32, 1.0f64) stay part of the literal's Text.
//   - Keywords are recognized by the lexer (case-sensitive); true/false are
//     keywords, not literals.
//   - A Tree is either one Token or a Delimited group whose open and close
//     delimiter always agree.
package token
