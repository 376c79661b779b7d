// Package directory maps hierarchy codes to human readable office names
package directory

import (
	"strings"

	"griddesk/internal/core/hierarchy"
)

// level prefixes stripped from resolved names, checked case insensitively
// CCC- must sort before the single letter prefixes so it wins
var prefixes = []string{"CCC-", "Z-", "R-", "D-"}

// Directory is an immutable code to name lookup built from the offices
// dataset. Many codes may share one name.
type Directory struct {
	names map[string]string
}

// New builds a Directory from a code to name map
// the map is copied so callers can keep mutating theirs
func New(names map[string]string) *Directory {
	cp := make(map[string]string, len(names))
	for k, v := range names {
		cp[k] = v
	}
	return &Directory{names: cp}
}

// Resolve returns the cleaned display name for code
// when the directory has no entry the raw code comes back unchanged
func (d *Directory) Resolve(code string) string {
	if d == nil {
		return code
	}
	name, ok := d.names[code]
	if !ok || name == "" {
		return code
	}
	return StripPrefix(name)
}

// HeaderLabel composes the display header for a viewer: resolved name
// plus the role's level word
func (d *Directory) HeaderLabel(code string, role hierarchy.Role) string {
	name := d.Resolve(code)
	word := role.Word()
	if word == "" {
		return name
	}
	return name + " " + word
}

// StripPrefix removes a leading level prefix from a name, case insensitively
func StripPrefix(name string) string {
	for _, p := range prefixes {
		if len(name) >= len(p) && strings.EqualFold(name[:len(p)], p) {
			return name[len(p):]
		}
	}
	return name
}
