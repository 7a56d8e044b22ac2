package docparse

import (
	"doclint/internal/diag"
	"doclint/internal/doctree"
	"doclint/internal/source"
)

// Parser builds a doctree.Tree from one source file. Code outside
// documentation comments is tokenized coarsely: the tree only needs carrier
// tokens for the formatting fragments attached to them.
type Parser struct {
	file   *source.File
	cursor Cursor
	opts   Options
	hold   []doctree.Fragment // accumulated leading fragments
}

// New creates a parser for the provided file.
func New(file *source.File, opts Options) *Parser {
	return &Parser{
		file:   file,
		cursor: NewCursor(file),
		opts:   opts,
	}
}

// Parse consumes the whole file and returns its tree.
// The tree is immutable once returned.
func Parse(file *source.File, opts Options) *doctree.Tree {
	p := New(file, opts)
	tokens := make([]doctree.Token, 0, 16)
	for {
		p.collectLeading()
		if p.cursor.EOF() {
			// Unlike a compiler we keep trivia attached to EOF: a trailing
			// documentation comment must stay visible to the rules.
			tokens = append(tokens, doctree.Token{
				Kind:    doctree.EOF,
				Span:    p.emptySpan(),
				Leading: p.hold,
			})
			p.hold = nil
			break
		}
		tok := p.scanCode()
		tok.Leading = p.hold
		p.hold = nil
		tokens = append(tokens, tok)
	}
	return &doctree.Tree{File: file.ID, Tokens: tokens}
}

// collectLeading gathers consecutive fragments before the next code token:
//   - ' ' and '\t' coalesce into one FragmentSpace
//   - consecutive '\n' coalesce into one FragmentNewline
//   - "//..." up to '\n' -> FragmentLineComment
//   - "/* ... */"        -> FragmentBlockComment
//   - "///..." line runs and "/** ... */" -> FragmentDoc with parsed Structure
func (p *Parser) collectLeading() {
	p.hold = p.hold[:0]
	for !p.cursor.EOF() {
		start := p.cursor.Mark()
		b := p.cursor.Peek()

		if b == ' ' || b == '\t' {
			for {
				b2 := p.cursor.Peek()
				if b2 != ' ' && b2 != '\t' {
					break
				}
				p.cursor.Bump()
			}
			p.holdFragment(doctree.FragmentSpace, start, nil)
			continue
		}

		if b == '\n' {
			for p.cursor.Peek() == '\n' {
				p.cursor.Bump()
			}
			p.holdFragment(doctree.FragmentNewline, start, nil)
			continue
		}

		if b == '/' {
			if p.scanCommentIntoHold() {
				continue
			}
		}

		break
	}
}

// scanCommentIntoHold dispatches "//", "///", "/*" and "/**" forms.
// Returns false when the '/' does not open a comment.
func (p *Parser) scanCommentIntoHold() bool {
	switch {
	case p.cursor.HasPrefix("///"):
		p.hold = append(p.hold, p.scanDoc(false))
		return true

	case p.cursor.HasPrefix("//"):
		start := p.cursor.Mark()
		for !p.cursor.EOF() && p.cursor.Peek() != '\n' {
			p.cursor.Bump()
		}
		p.holdFragment(doctree.FragmentLineComment, start, nil)
		return true

	case p.cursor.HasPrefix("/**") && !p.cursor.HasPrefix("/**/"):
		p.hold = append(p.hold, p.scanDoc(true))
		return true

	case p.cursor.HasPrefix("/*"):
		start := p.cursor.Mark()
		p.cursor.Skip(2)
		closed := false
		for !p.cursor.EOF() {
			if p.cursor.HasPrefix("*/") {
				p.cursor.Skip(2)
				closed = true
				break
			}
			p.cursor.Bump()
		}
		sp := p.cursor.SpanFrom(start)
		if !closed {
			p.report(diag.ParseUnterminatedBlockComment, sp, "unterminated block comment")
		}
		p.holdFragment(doctree.FragmentBlockComment, start, nil)
		return true

	default:
		return false
	}
}

// scanCode consumes a run of non-whitespace source text up to the next
// whitespace or comment start. String literals are consumed whole so comment
// markers inside them are not misread.
func (p *Parser) scanCode() doctree.Token {
	start := p.cursor.Mark()
	for !p.cursor.EOF() {
		b := p.cursor.Peek()
		if b == ' ' || b == '\t' || b == '\n' {
			break
		}
		if b == '/' && (p.cursor.PeekAt(1) == '/' || p.cursor.PeekAt(1) == '*') {
			break
		}
		if b == '"' {
			p.skipString()
			continue
		}
		p.cursor.Bump()
	}
	return doctree.Token{
		Kind: doctree.Code,
		Span: p.cursor.SpanFrom(start),
		Text: p.cursor.TextFrom(start),
	}
}

// skipString consumes a double-quoted literal including escapes, stopping at
// the closing quote, a newline, or EOF.
func (p *Parser) skipString() {
	p.cursor.Bump() // opening quote
	for !p.cursor.EOF() {
		b := p.cursor.Peek()
		if b == '\n' {
			return
		}
		p.cursor.Bump()
		if b == '\\' {
			p.cursor.Bump()
			continue
		}
		if b == '"' {
			return
		}
	}
}

func (p *Parser) holdFragment(kind doctree.FragmentKind, start Mark, structure []doctree.Token) {
	p.hold = append(p.hold, doctree.Fragment{
		Kind:      kind,
		Span:      p.cursor.SpanFrom(start),
		Text:      p.cursor.TextFrom(start),
		Structure: structure,
	})
}

func (p *Parser) emptySpan() source.Span {
	return source.Span{File: p.file.ID, Start: p.cursor.Off, End: p.cursor.Off}
}
