package render

import (
	"os"
	"path/filepath"
	"testing"

	"golang.org/x/image/font/basicfont"
)

// stubCandidates empties the OS candidate list so the tests don't pick up
// fonts installed on the host.
func stubCandidates(t *testing.T) {
	t.Helper()
	orig := fontCandidates
	fontCandidates = nil
	t.Cleanup(func() { fontCandidates = orig })
}

func TestFaceFallsBackToBuiltin(t *testing.T) {
	stubCandidates(t)
	r := NewFontResolver("/does/not/exist.ttf", "")
	face := r.Face(56)
	if face == nil {
		t.Fatal("Face returned nil")
	}
	if face != basicfont.Face7x13 {
		t.Fatalf("expected the built-in fallback face, got %T", face)
	}
	// Arbitrary sizes must keep working after the first resolution.
	if r.Face(13) == nil || r.Face(200) == nil {
		t.Fatal("Face failed on a later size")
	}
}

func TestFaceBadFontFile(t *testing.T) {
	stubCandidates(t)
	path := filepath.Join(t.TempDir(), "garbage.ttf")
	if err := os.WriteFile(path, []byte("this is not a font"), 0o644); err != nil {
		t.Fatal(err)
	}
	r := NewFontResolver(path, "")
	if r.Face(30) != basicfont.Face7x13 {
		t.Fatal("unparseable font file should fall through to the built-in face")
	}
}
