package render

import (
	"io"
	"log"
	"net/http"
	"os"
	"path/filepath"
	"sync"
	"time"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/opentype"
)

// Candidate font files tried after the configured path: bundled fonts first,
// then the usual OS locations for Japanese-capable Noto fonts.
var fontCandidates = []string{
	"fonts/NotoSansJP-VariableFont_wght.ttf",
	"fonts/NotoSansJP-Regular.otf",
	"fonts/NotoSansJP-Regular.ttf",
	"fonts/NotoSerifJP-Regular.otf",
	"/usr/share/fonts/opentype/noto/NotoSansCJKjp-Regular.otf",
	"/usr/share/fonts/truetype/noto/NotoSansJP-Regular.ttf",
}

// FontResolver locates a renderable typeface, caching the parsed font data for
// the process lifetime. Resolution cascades: configured path, bundled/OS
// candidates, remote URL (downloaded once to a scratch file), and finally the
// built-in bitmap face, which always exists but cannot render CJK glyphs.
//
// Face never fails: every fallible step is logged and falls through.
type FontResolver struct {
	path   string
	url    string
	cache  string
	client *http.Client

	mu     sync.Mutex
	parsed *opentype.Font
	tried  bool
}

// NewFontResolver creates a resolver. path and url may be empty.
func NewFontResolver(path, url string) *FontResolver {
	return &FontResolver{
		path:   path,
		url:    url,
		cache:  filepath.Join(os.TempDir(), "mystery_font.ttf"),
		client: &http.Client{Timeout: 15 * time.Second},
	}
}

// Face returns a font face at the requested pixel size. Typefaces are built
// per call; only the underlying font data is cached.
func (r *FontResolver) Face(size int) font.Face {
	if f := r.font(); f != nil {
		face, err := opentype.NewFace(f, &opentype.FaceOptions{
			Size:    float64(size),
			DPI:     72,
			Hinting: font.HintingFull,
		})
		if err == nil {
			return face
		}
		log.Printf("⚠️ Font face creation failed (size=%d): %v", size, err)
	}
	return basicfont.Face7x13
}

func (r *FontResolver) font() *opentype.Font {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.tried {
		return r.parsed
	}
	r.tried = true

	candidates := fontCandidates
	if r.path != "" {
		candidates = append([]string{r.path}, candidates...)
	}
	for _, p := range candidates {
		data, err := os.ReadFile(p)
		if err != nil {
			continue
		}
		f, err := opentype.Parse(data)
		if err != nil {
			log.Printf("⚠️ Font parse failed: %s: %v", p, err)
			continue
		}
		r.parsed = f
		return f
	}

	if r.url != "" {
		if f := r.fetchRemote(); f != nil {
			r.parsed = f
			return f
		}
	}

	log.Println("⚠️ No usable font found, falling back to the built-in face (CJK text will not render)")
	return nil
}

// fetchRemote downloads the configured font URL once, reusing the scratch
// file on later process starts.
func (r *FontResolver) fetchRemote() *opentype.Font {
	if _, err := os.Stat(r.cache); err != nil {
		resp, err := r.client.Get(r.url)
		if err != nil {
			log.Printf("⚠️ Font download failed: %v", err)
			return nil
		}
		defer resp.Body.Close()
		if resp.StatusCode != http.StatusOK {
			log.Printf("⚠️ Font download failed: status %d", resp.StatusCode)
			return nil
		}
		data, err := io.ReadAll(resp.Body)
		if err != nil {
			log.Printf("⚠️ Font download failed: %v", err)
			return nil
		}
		if err := os.WriteFile(r.cache, data, 0o644); err != nil {
			log.Printf("⚠️ Font cache write failed: %v", err)
			return nil
		}
	}
	data, err := os.ReadFile(r.cache)
	if err != nil {
		log.Printf("⚠️ Font cache read failed: %v", err)
		return nil
	}
	f, err := opentype.Parse(data)
	if err != nil {
		log.Printf("⚠️ Downloaded font parse failed: %v", err)
		return nil
	}
	return f
}
