// Package payload hides a short UTF-8 string inside visually empty text.
//
// Discord offers no per-message storage, so the panel's role ids ride along in
// its embed footer: the plaintext is base64-encoded, expanded to bits, and
// each bit mapped to a zero-width rune. The footer renders as blank but
// round-trips through Discord unmodified.
package payload

import (
	"encoding/base64"
	"strings"
	"unicode/utf8"
)

const (
	zeroMarker   = '​' // ZWSP, bit 0
	oneMarker    = '‌' // ZWNJ, bit 1
	prefixMarker = '‍' // ZWJ, "this is a payload"
)

// Hide encodes plaintext into an invisible carrier string.
func Hide(plaintext string) string {
	b64 := base64.StdEncoding.EncodeToString([]byte(plaintext))
	var b strings.Builder
	b.Grow(utf8.RuneLen(prefixMarker) + len(b64)*8*3)
	b.WriteRune(prefixMarker)
	for i := 0; i < len(b64); i++ {
		for bit := 7; bit >= 0; bit-- {
			if b64[i]&(1<<uint(bit)) != 0 {
				b.WriteRune(oneMarker)
			} else {
				b.WriteRune(zeroMarker)
			}
		}
	}
	return b.String()
}

// Reveal recovers the plaintext hidden by Hide. The second return value is
// false when carrier holds no payload; Reveal never fails any other way.
//
// A carrier without the prefix marker is still accepted when it literally
// contains "participant=" and "spectator=": panels posted before the
// zero-width scheme carried the payload as visible footer text.
func Reveal(carrier string) (string, bool) {
	if carrier == "" {
		return "", false
	}
	if !strings.HasPrefix(carrier, string(prefixMarker)) {
		if strings.Contains(carrier, "participant=") && strings.Contains(carrier, "spectator=") {
			return carrier, true
		}
		return "", false
	}

	var bits []byte
	for _, r := range carrier {
		switch r {
		case zeroMarker:
			bits = append(bits, 0)
		case oneMarker:
			bits = append(bits, 1)
		}
	}
	if len(bits)%8 != 0 {
		return "", false
	}

	b64 := make([]byte, 0, len(bits)/8)
	for i := 0; i < len(bits); i += 8 {
		var by byte
		for j := 0; j < 8; j++ {
			by = by<<1 | bits[i+j]
		}
		b64 = append(b64, by)
	}
	decoded, err := base64.StdEncoding.DecodeString(string(b64))
	if err != nil || !utf8.Valid(decoded) {
		return "", false
	}
	return string(decoded), true
}
