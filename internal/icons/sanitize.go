package icons

import (
	"strings"
	"unicode"
)

// sanitize lower-cases s and drops everything outside [a-z0-9].
func sanitize(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range strings.ToLower(s) {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
		}
	}
	return b.String()
}

func isSegmentSeparator(r rune) bool {
	return r == '-' || r == '_' || unicode.IsSpace(r)
}

// stripLegacyPrefix removes the "l" that older asset names put in front of
// every word ("lcloud-lsunny" -> "cloudsunny"). A segment only loses its
// first rune when a letter follows, so "l1" or a bare "l" survive.
func stripLegacyPrefix(token string) string {
	segments := strings.FieldsFunc(token, isSegmentSeparator)
	for i, seg := range segments {
		if len(seg) > 1 && (seg[0] == 'l' || seg[0] == 'L') && isASCIILetter(seg[1]) {
			segments[i] = seg[1:]
		}
	}
	return sanitize(strings.Join(segments, ""))
}

func isASCIILetter(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

// stripImageExtension reports the token without a trailing .png or .svg.
func stripImageExtension(token string) (string, bool) {
	lower := strings.ToLower(token)
	for _, ext := range []string{".png", ".svg"} {
		if strings.HasSuffix(lower, ext) {
			return token[:len(token)-len(ext)], true
		}
	}
	return token, false
}
