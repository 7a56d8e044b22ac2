package source

import (
	"os"
	"path/filepath"
	"testing"
)

func TestAddVirtualLineIdx(t *testing.T) {
	fs := NewFileSet()

	id := fs.AddVirtual("a.cs", []byte("a\nb\n"))
	file := fs.Get(id)

	expected := []uint32{1, 3}
	if len(file.LineIdx) != len(expected) {
		t.Fatalf("LineIdx length = %d, want %d", len(file.LineIdx), len(expected))
	}
	for i, val := range expected {
		if file.LineIdx[i] != val {
			t.Errorf("LineIdx[%d] = %d, want %d", i, file.LineIdx[i], val)
		}
	}
	if file.Flags&FileVirtual == 0 {
		t.Error("FileVirtual flag not set")
	}
}

func TestGetByPath(t *testing.T) {
	fs := NewFileSet()
	fs.AddVirtual("dir/a.cs", []byte("x"))

	if _, ok := fs.GetByPath("dir/a.cs"); !ok {
		t.Error("loaded file not found by path")
	}
	if _, ok := fs.GetByPath("dir/b.cs"); ok {
		t.Error("missing file reported as found")
	}
}

func TestResolveMultiLine(t *testing.T) {
	fs := NewFileSet()
	id := fs.AddVirtual("a.cs", []byte("abc\ndef\nghi\n"))

	cases := []struct {
		off  uint32
		want LineCol
	}{
		{0, LineCol{Line: 1, Col: 1}},
		{2, LineCol{Line: 1, Col: 3}},
		{3, LineCol{Line: 1, Col: 4}}, // the newline belongs to line 1
		{4, LineCol{Line: 2, Col: 1}},
		{6, LineCol{Line: 2, Col: 3}},
		{8, LineCol{Line: 3, Col: 1}},
		{11, LineCol{Line: 3, Col: 4}},
	}
	for _, tc := range cases {
		start, _ := fs.Resolve(Span{File: id, Start: tc.off, End: tc.off})
		if start != tc.want {
			t.Errorf("Resolve(%d) = %+v, want %+v", tc.off, start, tc.want)
		}
	}
}

func TestResolveSingleLine(t *testing.T) {
	fs := NewFileSet()
	id := fs.AddVirtual("a.cs", []byte("hello"))

	start, end := fs.Resolve(Span{File: id, Start: 1, End: 4})
	if start.Line != 1 || start.Col != 2 || end.Line != 1 || end.Col != 5 {
		t.Errorf("Resolve = %+v %+v", start, end)
	}
}

func TestCRLFNormalization(t *testing.T) {
	normalized, changed := normalizeCRLF([]byte("a\r\nb\r\n"))
	if !changed {
		t.Error("CRLF normalization not detected")
	}
	if string(normalized) != "a\nb\n" {
		t.Errorf("normalized = %q, want %q", normalized, "a\nb\n")
	}

	untouched, changed := normalizeCRLF([]byte("a\nb\n"))
	if changed || string(untouched) != "a\nb\n" {
		t.Errorf("clean input changed: %q %v", untouched, changed)
	}
}

func TestBOMRemoval(t *testing.T) {
	withoutBOM, hadBOM := removeBOM([]byte{0xEF, 0xBB, 0xBF, 'x', '\n'})
	if !hadBOM {
		t.Error("BOM not detected")
	}
	if string(withoutBOM) != "x\n" {
		t.Errorf("content = %q, want %q", withoutBOM, "x\n")
	}

	short, hadBOM := removeBOM([]byte{0xEF})
	if hadBOM || len(short) != 1 {
		t.Error("short input mangled")
	}
}

func TestLoadNormalizes(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "a.cs")
	if err := os.WriteFile(path, []byte("\xEF\xBB\xBFa\r\nb\r\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	fs := NewFileSet()
	id, err := fs.Load(path)
	if err != nil {
		t.Fatal(err)
	}
	file := fs.Get(id)

	if string(file.Content) != "a\nb\n" {
		t.Errorf("content = %q, want %q", file.Content, "a\nb\n")
	}
	if file.Flags&FileHadBOM == 0 {
		t.Error("FileHadBOM flag not set")
	}
	if file.Flags&FileNormalizedCRLF == 0 {
		t.Error("FileNormalizedCRLF flag not set")
	}
}

func TestGetLine(t *testing.T) {
	fs := NewFileSet()
	id := fs.AddVirtual("a.cs", []byte("abc\ndef\nghi"))
	file := fs.Get(id)

	cases := []struct {
		line uint32
		want string
	}{
		{0, ""},
		{1, "abc"},
		{2, "def"},
		{3, "ghi"},
		{4, ""},
	}
	for _, tc := range cases {
		if got := file.GetLine(tc.line); got != tc.want {
			t.Errorf("GetLine(%d) = %q, want %q", tc.line, got, tc.want)
		}
	}
}

func TestEdgeCases(t *testing.T) {
	fs := NewFileSet()

	empty := fs.Get(fs.AddVirtual("empty.cs", []byte{}))
	if len(empty.LineIdx) != 0 {
		t.Errorf("LineIdx length = %d for empty file, want 0", len(empty.LineIdx))
	}

	noNewlines := fs.Get(fs.AddVirtual("plain.cs", []byte("hello")))
	if len(noNewlines.LineIdx) != 0 {
		t.Errorf("LineIdx length = %d without newlines, want 0", len(noNewlines.LineIdx))
	}

	onlyNewline := fs.Get(fs.AddVirtual("nl.cs", []byte("\n")))
	if len(onlyNewline.LineIdx) != 1 || onlyNewline.LineIdx[0] != 0 {
		t.Errorf("LineIdx = %v for lone newline, want [0]", onlyNewline.LineIdx)
	}
}

func TestFormatPath(t *testing.T) {
	fs := NewFileSet()
	id := fs.AddVirtual("sub/name.cs", []byte("x"))
	file := fs.Get(id)

	if got := file.FormatPath("basename", ""); got != "name.cs" {
		t.Errorf("basename = %q", got)
	}
	if got := file.FormatPath("auto", ""); got != "sub/name.cs" {
		t.Errorf("auto = %q", got)
	}
}
