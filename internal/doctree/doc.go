// Package doctree defines the token and fragment model for parsed
// documentation comments.
// Invariants:
//   - Token.Text is the exact source text covered by Token.Span.
//   - A token's Leading fragments are ordered by source position and gapless:
//     together they cover exactly the bytes between the previous token and
//     this one.
//   - A doc-marker fragment, when present, is the last leading fragment before
//     a structural or text token on a documentation line, optionally followed
//     by a single space-run fragment.
//   - Structured fragments (FragmentDoc, FragmentXMLComment) own a nested
//     token sequence in Structure; all other kinds keep Structure nil.
package doctree
