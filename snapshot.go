package glinfo

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"unicode/utf8"
)

const (
	// MaxInfoLength is the maximum length in bytes of a single information
	// string such as the vendor or renderer.
	MaxInfoLength = 128
	// MaxExtensionsLength is the maximum length in bytes of an extension
	// corpus.
	MaxExtensionsLength = 64 * 1024

	// ShadingLanguageNone is stored as the shading language version when the
	// driver has no shading language support.
	ShadingLanguageNone = "None"
)

var (
	versionRe        = regexp.MustCompile(`^\s*(\d+)(?:\.(\d+)(?:\.(\d+))?)?`)
	shadingVersionRe = regexp.MustCompile(`^\s*(\d+)(?:\.(\d+))?`)
)

// Version is an OpenGL version as reported by the driver.
type Version struct {
	Major, Minor, Release int
}

func (v Version) String() string {
	return fmt.Sprintf("%d.%d.%d", v.Major, v.Minor, v.Release)
}

// ParseVersion extracts the leading "major.minor.release" numbers from a
// driver version string. Components that are missing default to 0, this
// includes all of them if the string does not start with a number.
func ParseVersion(str string) Version {
	m := versionRe.FindStringSubmatch(str)
	if m == nil {
		return Version{}
	}
	return Version{
		Major:   atoi(m[1]),
		Minor:   atoi(m[2]),
		Release: atoi(m[3]),
	}
}

// ShadingLanguageVersion is a GLSL version as reported by the driver.
type ShadingLanguageVersion struct {
	Major, Minor int
}

func (v ShadingLanguageVersion) String() string {
	return fmt.Sprintf("%d.%d", v.Major, v.Minor)
}

// ParseShadingLanguageVersion extracts the leading "major.minor" numbers from
// a shading language version string using the same rules as ParseVersion.
func ParseShadingLanguageVersion(str string) ShadingLanguageVersion {
	m := shadingVersionRe.FindStringSubmatch(str)
	if m == nil {
		return ShadingLanguageVersion{}
	}
	return ShadingLanguageVersion{
		Major: atoi(m[1]),
		Minor: atoi(m[2]),
	}
}

func atoi(s string) int {
	// Overflowing strings clamp to the maximum int which is still a
	// non-negative number.
	n, _ := strconv.Atoi(s)
	if n < 0 {
		return 0
	}
	return n
}

// Snapshot holds the results of a single query pass.
//
// The zero value is the empty snapshot which is what an Engine holds before
// its first successful query.
type Snapshot struct {
	Profile Profile

	Vendor   string
	Renderer string

	VersionString string
	Version       Version

	ShadingLanguageVersionString string
	ShadingLanguageVersion       ShadingLanguageVersion

	// Extensions is the space delimited list of supported extensions. Every
	// name is followed by exactly one space.
	Extensions     string
	ExtensionCount int
	// IndexedExtensions is set if Extensions was built using indexed
	// retrieval rather than from a single driver string.
	IndexedExtensions bool
	// ExtensionsTruncated is set if names were dropped to keep Extensions
	// within MaxExtensionsLength. With indexed retrieval ExtensionCount is
	// still the number of extensions reported by the driver.
	ExtensionsTruncated bool

	UtilityName           string
	UtilityVersionString  string
	UtilityExtensions     string
	UtilityExtensionCount int
}

// Supported reports whether the extension is present in the snapshot.
func (s Snapshot) Supported(extension string) bool {
	return Supported(s.Extensions, extension)
}

// ExtensionList splits the extension corpus into separate names.
func (s Snapshot) ExtensionList() []string {
	return strings.Fields(s.Extensions)
}

// UtilityExtensionList splits the utility library extension corpus into
// separate names.
func (s Snapshot) UtilityExtensionList() []string {
	return strings.Fields(s.UtilityExtensions)
}

// truncate limits str to at most max bytes without splitting a UTF-8 encoded
// rune.
func truncate(str string, max int) string {
	if len(str) <= max {
		return str
	}
	cut := max
	for cut > 0 && !utf8.RuneStart(str[cut]) {
		cut--
	}
	return str[:cut]
}

// corpusBuilder accumulates extension names into a corpus that never exceeds
// MaxExtensionsLength. Names that do not fit are dropped whole.
type corpusBuilder struct {
	buf   strings.Builder
	count int
	full  bool
}

func (cb *corpusBuilder) add(name string) {
	if name == "" || cb.full {
		return
	}
	if cb.buf.Len()+len(name)+1 > MaxExtensionsLength {
		cb.full = true
		return
	}
	cb.buf.WriteString(name)
	cb.buf.WriteByte(' ')
	cb.count++
}

func (cb *corpusBuilder) String() string {
	return cb.buf.String()
}

// normalizeCorpus rewrites a driver supplied extension string to the
// single-space separated form with a trailing space and counts the names it
// kept.
func normalizeCorpus(raw string) (corpus string, count int, truncated bool) {
	var cb corpusBuilder
	for _, name := range strings.Fields(raw) {
		cb.add(name)
	}
	return cb.String(), cb.count, cb.full
}
