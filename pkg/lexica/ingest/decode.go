package ingest

import (
	"strings"
	"unicode/utf8"

	"github.com/gabriel-vasile/mimetype"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
)

// decodeText converts raw bytes to a UTF-8 string. Ill-formed sequences are
// replaced with U+FFFD; the second result reports whether any were found.
func decodeText(data []byte) (string, bool) {
	replaced := false
	s := string(data)
	if !utf8.ValidString(s) {
		replaced = true
		if out, _, err := transform.String(runes.ReplaceIllFormed(), s); err == nil {
			s = out
		} else {
			s = strings.ToValidUTF8(s, "\uFFFD")
		}
	}
	return strings.TrimPrefix(s, "\uFEFF"), replaced
}

// isText reports whether the sniffed content type descends from text/plain.
func isText(data []byte) bool {
	if len(data) == 0 {
		return true
	}
	for mt := mimetype.Detect(data); mt != nil; mt = mt.Parent() {
		if mt.Is("text/plain") {
			return true
		}
	}
	return false
}
