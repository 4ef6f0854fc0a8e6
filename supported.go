package glinfo

import (
	"strings"
)

// Supported reports whether token is present in the space delimited corpus as
// a complete extension name.
//
// Extension names may be prefixes or suffixes of other names, so a plain
// substring search is not enough: "GL_EXT_foo" must not be found in
// "GL_EXT_foobar". A token that is empty or contains a space is never
// supported.
func Supported(corpus, token string) bool {
	if token == "" || strings.IndexByte(token, ' ') >= 0 {
		return false
	}

	for start := 0; start <= len(corpus)-len(token); {
		i := strings.Index(corpus[start:], token)
		if i < 0 {
			break
		}
		where := start + i
		end := where + len(token)
		if (where == 0 || corpus[where-1] == ' ') && (end == len(corpus) || corpus[end] == ' ') {
			return true
		}
		start = where + 1
	}
	return false
}
