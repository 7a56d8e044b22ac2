package singlespace

import (
	"testing"

	"doclint/internal/doctree"
	"doclint/internal/source"
)

func marker(text string) doctree.Fragment {
	return doctree.Fragment{
		Kind: doctree.FragmentDocMarker,
		Span: source.Span{Start: 0, End: uint32(len(text))},
		Text: text,
	}
}

func space(text string) doctree.Fragment {
	return doctree.Fragment{
		Kind: doctree.FragmentSpace,
		Span: source.Span{Start: 0, End: uint32(len(text))},
		Text: text,
	}
}

func TestCheckLine(t *testing.T) {
	cases := []struct {
		name    string
		tok     doctree.Token
		marker  doctree.Fragment
		violate bool
	}{
		{
			name:    "structural with single space",
			tok:     doctree.Token{Kind: doctree.LessThan, Text: "<", Leading: []doctree.Fragment{marker("///"), space(" ")}},
			marker:  marker("///"),
			violate: false,
		},
		{
			name:    "structural with no space",
			tok:     doctree.Token{Kind: doctree.LessThan, Text: "<", Leading: []doctree.Fragment{marker("///")}},
			marker:  marker("///"),
			violate: true,
		},
		{
			name:    "structural with several spaces still passes",
			tok:     doctree.Token{Kind: doctree.LessThan, Text: "<", Leading: []doctree.Fragment{marker("///"), space("   ")}},
			marker:  marker("///"),
			violate: false,
		},
		{
			name:    "structural with tab fails",
			tok:     doctree.Token{Kind: doctree.LessThan, Text: "<", Leading: []doctree.Fragment{marker("///"), space("\t")}},
			marker:  marker("///"),
			violate: true,
		},
		{
			name:    "merged marker ending in space passes",
			tok:     doctree.Token{Kind: doctree.LessThan, Text: "<", Leading: []doctree.Fragment{marker("* ")}},
			marker:  marker("* "),
			violate: false,
		},
		{
			name:    "merged marker ending in tab fails",
			tok:     doctree.Token{Kind: doctree.LessThan, Text: "<", Leading: []doctree.Fragment{marker("*\t")}},
			marker:  marker("*\t"),
			violate: true,
		},
		{
			name:    "text starting with space passes",
			tok:     doctree.Token{Kind: doctree.Text, Text: " hello", Leading: []doctree.Fragment{marker("///")}},
			marker:  marker("///"),
			violate: false,
		},
		{
			name:    "text without space fails",
			tok:     doctree.Token{Kind: doctree.Text, Text: "hello", Leading: []doctree.Fragment{marker("///")}},
			marker:  marker("///"),
			violate: true,
		},
		{
			name:    "bare text after merged javadoc marker passes",
			tok:     doctree.Token{Kind: doctree.Text, Text: "hello", Leading: []doctree.Fragment{marker("* ")}},
			marker:  marker("* "),
			violate: false,
		},
		{
			name:    "blank line newline is exempt",
			tok:     doctree.Token{Kind: doctree.Newline, Text: "\n", Leading: []doctree.Fragment{marker("///")}},
			marker:  marker("///"),
			violate: false,
		},
		{
			name:    "comment terminator is exempt",
			tok:     doctree.Token{Kind: doctree.EndOfComment, Leading: []doctree.Fragment{marker("///")}},
			marker:  marker("///"),
			violate: false,
		},
		{
			name:    "missing token is never checked",
			tok:     doctree.Token{Kind: doctree.LessThan, Text: "<", Missing: true, Leading: []doctree.Fragment{marker("///")}},
			marker:  marker("///"),
			violate: false,
		},
		{
			name:    "structural with no leading fragments fails",
			tok:     doctree.Token{Kind: doctree.GreaterThan, Text: ">"},
			marker:  marker("///"),
			violate: true,
		},
		{
			name: "other trailing fragment kind fails",
			tok: doctree.Token{Kind: doctree.LessThan, Text: "<", Leading: []doctree.Fragment{
				marker("///"),
				{Kind: doctree.FragmentLineComment, Text: "//x"},
			}},
			marker:  marker("///"),
			violate: true,
		},
		{
			name:    "unrecognized token kind defaults to pass",
			tok:     doctree.Token{Kind: doctree.Code, Text: "x", Leading: []doctree.Fragment{marker("///")}},
			marker:  marker("///"),
			violate: false,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := checkLine(&tc.tok, tc.marker)
			if got != tc.violate {
				t.Fatalf("checkLine() = %v, want %v", got, tc.violate)
			}
		})
	}
}

func TestClassifyIsTotal(t *testing.T) {
	kinds := []doctree.FragmentKind{
		doctree.FragmentSpace,
		doctree.FragmentNewline,
		doctree.FragmentLineComment,
		doctree.FragmentBlockComment,
		doctree.FragmentDoc,
		doctree.FragmentDocMarker,
		doctree.FragmentXMLComment,
		doctree.FragmentKind(200), // unknown kinds classify as other
	}
	for _, k := range kinds {
		got := classify(doctree.Fragment{Kind: k})
		switch k {
		case doctree.FragmentSpace:
			if got != classSpace {
				t.Errorf("classify(%v) = %v, want classSpace", k, got)
			}
		case doctree.FragmentDocMarker:
			if got != classMarker {
				t.Errorf("classify(%v) = %v, want classMarker", k, got)
			}
		default:
			if got != classOther {
				t.Errorf("classify(%v) = %v, want classOther", k, got)
			}
		}
	}
}
