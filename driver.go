package glinfo

import (
	"fmt"
	"strings"

	"github.com/cockroachdb/errors"
)

// Profile selects the kind of context to create and how extensions are
// retrieved from it.
type Profile int

const (
	// Legacy uses a compatibility context and reads all extensions from a
	// single string.
	Legacy Profile = iota
	// Core uses a core profile context and reads extensions one by one by
	// their index.
	Core
)

// Profiles lists the names of all valid profiles.
var Profiles = []string{Legacy.String(), Core.String()}

func (p Profile) String() string {
	switch p {
	case Legacy:
		return "legacy"
	case Core:
		return "core"
	default:
		return fmt.Sprintf("Profile(%d)", int(p))
	}
}

func (p Profile) valid() bool {
	return p == Legacy || p == Core
}

// ParseProfile looks up a profile by its name as returned by String.
func ParseProfile(name string) (Profile, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "legacy":
		return Legacy, nil
	case "core":
		return Core, nil
	}
	return 0, errors.Newf("unknown profile %q, valid values are: %s", name, strings.Join(Profiles, ", "))
}

// StringName identifies a string that can be queried from a driver.
type StringName int

const (
	StringVendor StringName = iota
	StringRenderer
	StringVersion
	StringShadingLanguageVersion
	StringExtensions
)

// Strings is implemented by anything that can answer simple string queries.
type Strings interface {
	// String returns the requested string. The boolean is false if the
	// implementation has no value for the name, which is to be treated like
	// an empty string.
	String(name StringName) (string, bool)
}

// Utility is an auxiliary library that is queried alongside the driver. Only
// the StringVersion and StringExtensions strings are requested from it.
type Utility interface {
	Strings
	Name() string
}

// Context is a live rendering context that is current on the calling thread.
type Context interface {
	Strings

	// IndexedExtensions reports whether extensions can be retrieved one at a
	// time using NumExtensions and Extension.
	IndexedExtensions() bool
	// NumExtensions returns the number of extensions that can be retrieved
	// by index.
	NumExtensions() int
	// Extension returns the name of the extension at index i.
	Extension(i int) (string, bool)

	// Utility returns the auxiliary library of the platform. It may be nil.
	Utility() Utility
}

// Platform creates and destroys rendering contexts.
type Platform interface {
	// Acquire creates a context appropriate to the profile and makes it
	// current. Any resources acquired are released again on error.
	Acquire(profile Profile) (Context, error)
	// Release destroys a context returned by Acquire.
	Release(ctx Context) error
}
