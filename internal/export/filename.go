package export

import (
	"regexp"

	goslug "github.com/gosimple/slug"
)

// safeName matches names usable as a file name component on every platform.
var safeName = regexp.MustCompile(`^[\p{L}\p{N}_][\p{L}\p{N}_.-]*$`)

// SafeBaseName returns name unchanged when it is already a safe file name
// component, and a slug of it otherwise. Table names like "User" or "メモ"
// are kept; names with separators, spaces, or quotes are slugified.
func SafeBaseName(name string) string {
	if safeName.MatchString(name) {
		return name
	}
	if s := goslug.Make(name); s != "" {
		return s
	}
	return "table"
}
