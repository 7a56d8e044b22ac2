package docparse

import (
	"doclint/internal/diag"
	"doclint/internal/doctree"
	"doclint/internal/source"
)

// scanMode tracks where the content scanner is inside documentation markup.
// The mode survives line breaks: a tag or CDATA section may span lines.
type scanMode uint8

const (
	modeText scanMode = iota
	modeTag
	modeCData
)

// docScanner parses the content of one documentation comment into its token
// stream. Line form ("///") ends when a line without a marker begins; block
// form ("/** */") ends at the terminator.
type docScanner struct {
	p          *Parser
	block      bool
	mode       scanMode
	toks       []doctree.Token
	pend       []doctree.Fragment
	ended      bool // line form ran out inside a nested construct
	cdataStart Mark
}

// scanDoc consumes a whole documentation comment starting at "///" or "/**"
// and returns it as a structured fragment.
func (p *Parser) scanDoc(block bool) doctree.Fragment {
	start := p.cursor.Mark()
	s := &docScanner{p: p, block: block}

	// The opening "///" or "/**" is the first line's marker. Line-form
	// markers stay bare: following spaces become a fragment or the head of a
	// text token, never part of the marker itself.
	m := p.cursor.Mark()
	p.cursor.Skip(3)
	s.pend = append(s.pend, s.fragment(doctree.FragmentDocMarker, m))

	s.run()

	return doctree.Fragment{
		Kind:      doctree.FragmentDoc,
		Span:      p.cursor.SpanFrom(start),
		Text:      p.cursor.TextFrom(start),
		Structure: s.toks,
	}
}

func (s *docScanner) run() {
	c := &s.p.cursor
	for {
		if c.EOF() {
			if s.block {
				s.p.report(diag.ParseUnterminatedDocComment, c.SpanFrom(c.Mark()), "unterminated documentation comment")
			}
			if s.mode == modeCData {
				s.p.report(diag.ParseUnterminatedCData, c.SpanFrom(s.cdataStart), "unterminated CDATA section")
			}
			s.emit(doctree.EndOfComment, c.Mark())
			return
		}
		if s.block && c.HasPrefix("*/") {
			if s.mode == modeCData {
				s.p.report(diag.ParseUnterminatedCData, c.SpanFrom(s.cdataStart), "unterminated CDATA section")
			}
			m := c.Mark()
			c.Skip(2)
			s.emit(doctree.EndOfComment, m)
			return
		}
		if c.Peek() == '\n' {
			if !s.lineBreak() {
				s.emit(doctree.EndOfComment, c.Mark())
				return
			}
			continue
		}
		s.step()
		if s.ended {
			s.emit(doctree.EndOfComment, c.Mark())
			return
		}
	}
}

// lineBreak consumes the newline as a token and the next line's exterior
// (indent plus marker) into pending fragments. Returns false when the comment
// does not continue on the next line (line form only).
func (s *docScanner) lineBreak() bool {
	c := &s.p.cursor
	m := c.Mark()
	c.Bump()
	s.emit(doctree.Newline, m)

	lineStart := c.Mark()
	sp := c.Mark()
	for c.Peek() == ' ' || c.Peek() == '\t' {
		c.Bump()
	}

	if s.block {
		if c.SpanFrom(sp).Len() > 0 {
			s.pend = append(s.pend, s.fragment(doctree.FragmentSpace, sp))
		}
		// "*/" is the terminator, handled by run(); a bare '*' is the line
		// marker. The marker absorbs the whitespace run that follows it
		// (merged marker+space form). A line without a marker is tolerated.
		if c.Peek() == '*' && !c.HasPrefix("*/") {
			mm := c.Mark()
			c.Bump()
			for c.Peek() == ' ' || c.Peek() == '\t' {
				c.Bump()
			}
			s.pend = append(s.pend, s.fragment(doctree.FragmentDocMarker, mm))
		}
		return true
	}

	if c.HasPrefix("///") {
		if c.SpanFrom(sp).Len() > 0 {
			s.pend = append(s.pend, s.fragment(doctree.FragmentSpace, sp))
		}
		mm := c.Mark()
		c.Skip(3)
		s.pend = append(s.pend, s.fragment(doctree.FragmentDocMarker, mm))
		return true
	}

	c.Reset(lineStart)
	return false
}

func (s *docScanner) step() {
	switch s.mode {
	case modeCData:
		s.stepCData()
	case modeTag:
		s.stepTag()
	default:
		s.stepText()
	}
}

func (s *docScanner) stepText() {
	c := &s.p.cursor
	switch {
	case c.HasPrefix("<![CDATA["):
		m := c.Mark()
		c.Skip(9)
		s.emit(doctree.CDataStart, m)
		s.mode = modeCData
		s.cdataStart = m

	case c.HasPrefix("<!--"):
		s.scanXMLComment()

	case c.HasPrefix("</"):
		m := c.Mark()
		c.Skip(2)
		s.emit(doctree.LessThanSlash, m)
		s.expectName()

	case c.Peek() == '<':
		m := c.Mark()
		c.Bump()
		s.emit(doctree.LessThan, m)
		s.expectName()

	case c.Peek() == ' ' || c.Peek() == '\t':
		// A space run directly before markup or the end of the line stays a
		// fragment; otherwise it belongs to the text token.
		m := c.Mark()
		for c.Peek() == ' ' || c.Peek() == '\t' {
			c.Bump()
		}
		if s.atMarkupBoundary() {
			s.pend = append(s.pend, s.fragment(doctree.FragmentSpace, m))
			return
		}
		c.Reset(m)
		s.scanText()

	default:
		s.scanText()
	}
}

func (s *docScanner) atMarkupBoundary() bool {
	c := &s.p.cursor
	if c.EOF() || c.Peek() == '\n' || c.Peek() == '<' {
		return true
	}
	return s.block && c.HasPrefix("*/")
}

// scanText consumes a literal text run, leading spaces included.
func (s *docScanner) scanText() {
	c := &s.p.cursor
	m := c.Mark()
	for !c.EOF() {
		b := c.Peek()
		if b == '\n' || b == '<' {
			break
		}
		if s.block && b == '*' && c.HasPrefix("*/") {
			break
		}
		c.Bump()
	}
	s.emit(doctree.Text, m)
}

// expectName scans the element name after '<' or '</'. A missing name is
// synthesized as a zero-width Missing token so later stages can skip it.
func (s *docScanner) expectName() {
	c := &s.p.cursor
	if isNameStart(c.Peek()) {
		m := c.Mark()
		for isNameChar(c.Peek()) {
			c.Bump()
		}
		s.emit(doctree.Ident, m)
	} else {
		s.emitMissing(doctree.Ident)
		s.p.report(diag.ParseExpectTagName, s.p.emptySpan(), "expected element name")
	}
	s.mode = modeTag
}

func (s *docScanner) stepTag() {
	c := &s.p.cursor
	b := c.Peek()
	switch {
	case b == ' ' || b == '\t':
		m := c.Mark()
		for c.Peek() == ' ' || c.Peek() == '\t' {
			c.Bump()
		}
		s.pend = append(s.pend, s.fragment(doctree.FragmentSpace, m))

	case c.HasPrefix("/>"):
		m := c.Mark()
		c.Skip(2)
		s.emit(doctree.SlashGreaterThan, m)
		s.mode = modeText

	case b == '>':
		m := c.Mark()
		c.Bump()
		s.emit(doctree.GreaterThan, m)
		s.mode = modeText

	case b == '=':
		m := c.Mark()
		c.Bump()
		s.emit(doctree.Equals, m)

	case b == '"':
		s.scanAttrValue('"', doctree.DoubleQuote)

	case b == '\'':
		s.scanAttrValue('\'', doctree.SingleQuote)

	case isNameStart(b):
		m := c.Mark()
		for isNameChar(c.Peek()) {
			c.Bump()
		}
		s.emit(doctree.Ident, m)

	default:
		// Recovery: an unexpected byte inside a tag becomes a one-byte text
		// token and scanning continues.
		m := c.Mark()
		c.Bump()
		s.emit(doctree.Text, m)
	}
}

// scanAttrValue consumes a quoted attribute value on the current line.
func (s *docScanner) scanAttrValue(q byte, quoteKind doctree.Kind) {
	c := &s.p.cursor
	m := c.Mark()
	c.Bump()
	s.emit(quoteKind, m)

	vm := c.Mark()
	for !c.EOF() {
		b := c.Peek()
		if b == q || b == '\n' {
			break
		}
		if s.block && c.HasPrefix("*/") {
			break
		}
		c.Bump()
	}
	if c.SpanFrom(vm).Len() > 0 {
		s.emit(doctree.Text, vm)
	}
	if c.Peek() == q {
		qm := c.Mark()
		c.Bump()
		s.emit(quoteKind, qm)
		return
	}
	s.p.report(diag.ParseUnterminatedAttrValue, c.SpanFrom(vm), "unterminated attribute value")
}

func (s *docScanner) stepCData() {
	c := &s.p.cursor
	if c.HasPrefix("]]>") {
		m := c.Mark()
		c.Skip(3)
		s.emit(doctree.CDataEnd, m)
		s.mode = modeText
		return
	}
	m := c.Mark()
	for !c.EOF() {
		b := c.Peek()
		if b == '\n' || c.HasPrefix("]]>") {
			break
		}
		if s.block && b == '*' && c.HasPrefix("*/") {
			break
		}
		c.Bump()
	}
	s.emit(doctree.Text, m)
}

// scanXMLComment consumes "<!-- ... -->" inside documentation content as a
// structured fragment. Continuation-line markers inside the comment attach to
// the nested tokens, so the walk still reaches them.
func (s *docScanner) scanXMLComment() {
	c := &s.p.cursor
	start := c.Mark()
	c.Skip(4)

	outerToks, outerPend := s.toks, s.pend
	s.toks, s.pend = nil, nil

	closed := true
	for {
		if c.EOF() || (s.block && c.HasPrefix("*/")) {
			closed = false
			break
		}
		if c.HasPrefix("-->") {
			c.Skip(3)
			break
		}
		if c.Peek() == '\n' {
			if !s.lineBreak() {
				closed = false
				s.ended = true
				break
			}
			continue
		}
		s.xmlCommentStep()
	}
	if !closed {
		s.p.report(diag.ParseUnterminatedXMLComment, c.SpanFrom(start), "unterminated XML comment")
	}
	if len(s.pend) > 0 {
		// Zero-width terminator owns the leftover fragments.
		s.emit(doctree.EndOfComment, c.Mark())
	}

	inner := s.toks
	s.toks, s.pend = outerToks, outerPend
	s.pend = append(s.pend, doctree.Fragment{
		Kind:      doctree.FragmentXMLComment,
		Span:      c.SpanFrom(start),
		Text:      c.TextFrom(start),
		Structure: inner,
	})
}

func (s *docScanner) xmlCommentStep() {
	c := &s.p.cursor
	if c.Peek() == ' ' || c.Peek() == '\t' {
		m := c.Mark()
		for c.Peek() == ' ' || c.Peek() == '\t' {
			c.Bump()
		}
		if c.EOF() || c.Peek() == '\n' || c.HasPrefix("-->") || (s.block && c.HasPrefix("*/")) {
			s.pend = append(s.pend, s.fragment(doctree.FragmentSpace, m))
			return
		}
		c.Reset(m)
	}
	m := c.Mark()
	for !c.EOF() {
		if c.Peek() == '\n' || c.HasPrefix("-->") {
			break
		}
		if s.block && c.HasPrefix("*/") {
			break
		}
		c.Bump()
	}
	s.emit(doctree.Text, m)
}

func (s *docScanner) fragment(kind doctree.FragmentKind, m Mark) doctree.Fragment {
	return doctree.Fragment{
		Kind: kind,
		Span: s.p.cursor.SpanFrom(m),
		Text: s.p.cursor.TextFrom(m),
	}
}

func (s *docScanner) emit(kind doctree.Kind, m Mark) {
	s.toks = append(s.toks, doctree.Token{
		Kind:    kind,
		Span:    s.p.cursor.SpanFrom(m),
		Text:    s.p.cursor.TextFrom(m),
		Leading: s.pend,
	})
	s.pend = nil
}

func (s *docScanner) emitMissing(kind doctree.Kind) {
	c := &s.p.cursor
	s.toks = append(s.toks, doctree.Token{
		Kind:    kind,
		Span:    source.Span{File: c.File.ID, Start: c.Off, End: c.Off},
		Missing: true,
		Leading: s.pend,
	})
	s.pend = nil
}

func isNameStart(b byte) bool {
	return b == '_' || (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z')
}

func isNameChar(b byte) bool {
	return isNameStart(b) || (b >= '0' && b <= '9') || b == ':' || b == '.' || b == '-'
}
