package diagfmt

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"doclint/internal/doctree"
	"doclint/internal/source"
)

// FormatTreePretty dumps a parsed tree in human-readable form, indenting the
// structure of documentation fragments. Mostly a debugging aid for the
// tokenize command.
func FormatTreePretty(w io.Writer, tree *doctree.Tree, fs *source.FileSet) error {
	return formatTokens(w, tree.Tokens, fs, 0)
}

func formatTokens(w io.Writer, tokens []doctree.Token, fs *source.FileSet, depth int) error {
	indent := strings.Repeat("  ", depth)
	for i, tok := range tokens {
		for _, frag := range tok.Leading {
			startPos, _ := fs.Resolve(frag.Span)
			fmt.Fprintf(w, "%s     ~ %-12s %q at %d:%d\n", indent, frag.Kind.String(), frag.Text, startPos.Line, startPos.Col)
			if frag.Structure != nil {
				if err := formatTokens(w, frag.Structure, fs, depth+1); err != nil {
					return err
				}
			}
		}

		startPos, endPos := fs.Resolve(tok.Span)
		fmt.Fprintf(w, "%s%3d: %-16s", indent, i+1, tok.Kind.String())
		if tok.Text != "" {
			fmt.Fprintf(w, " %q", tok.Text)
		}
		if tok.Missing {
			fmt.Fprint(w, " (missing)")
		}
		fmt.Fprintf(w, " at %d:%d-%d:%d\n",
			startPos.Line, startPos.Col,
			endPos.Line, endPos.Col)
	}
	return nil
}

// TokenOutput is the JSON shape of one token in a tree dump.
type TokenOutput struct {
	Kind    string         `json:"kind"`
	Text    string         `json:"text,omitempty"`
	Span    source.Span    `json:"span"`
	Missing bool           `json:"missing,omitempty"`
	Leading []TriviaOutput `json:"leading,omitempty"`
}

// TriviaOutput is the JSON shape of one fragment in a tree dump.
type TriviaOutput struct {
	Kind      string        `json:"kind"`
	Text      string        `json:"text,omitempty"`
	Span      source.Span   `json:"span"`
	Structure []TokenOutput `json:"structure,omitempty"`
}

// FormatTreeJSON dumps a parsed tree as JSON.
func FormatTreeJSON(w io.Writer, tree *doctree.Tree) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(tokensOutput(tree.Tokens))
}

func tokensOutput(tokens []doctree.Token) []TokenOutput {
	if len(tokens) == 0 {
		return nil
	}
	out := make([]TokenOutput, 0, len(tokens))
	for _, tok := range tokens {
		to := TokenOutput{
			Kind:    tok.Kind.String(),
			Text:    tok.Text,
			Span:    tok.Span,
			Missing: tok.Missing,
		}
		for _, frag := range tok.Leading {
			to.Leading = append(to.Leading, TriviaOutput{
				Kind:      frag.Kind.String(),
				Text:      frag.Text,
				Span:      frag.Span,
				Structure: tokensOutput(frag.Structure),
			})
		}
		out = append(out, to)
	}
	return out
}
