// Package hierarchy models the Zone - Region - Division - CCC administrative
// tree and the viewer scoping rule applied to every dataset read
package hierarchy

import "strings"

// Role is one level of the administrative hierarchy, broadest first
type Role uint8

const (
	// RoleZone sees the whole zone subtree
	RoleZone Role = iota
	// RoleRegion sees one region subtree
	RoleRegion
	// RoleDivision sees one division subtree
	RoleDivision
	// RoleCCC sees a single customer care center
	RoleCCC
)

// ParseRole maps a wire string to a Role; ok is false for anything unknown
func ParseRole(s string) (Role, bool) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "ZONE":
		return RoleZone, true
	case "REGION":
		return RoleRegion, true
	case "DIVISION":
		return RoleDivision, true
	case "CCC":
		return RoleCCC, true
	default:
		return RoleZone, false
	}
}

// String returns the wire form of the role
func (r Role) String() string {
	switch r {
	case RoleZone:
		return "ZONE"
	case RoleRegion:
		return "REGION"
	case RoleDivision:
		return "DIVISION"
	case RoleCCC:
		return "CCC"
	default:
		return "ZONE"
	}
}

// Word returns the display word appended to office labels
func (r Role) Word() string {
	switch r {
	case RoleZone:
		return "Zone"
	case RoleRegion:
		return "Region"
	case RoleDivision:
		return "Division"
	case RoleCCC:
		return "CCC"
	default:
		return "Zone"
	}
}

// Codes holds the hierarchy codes carried by a record or assigned to a viewer
// An empty string means the code is absent at that level
type Codes struct {
	Zone     string `json:"zone_code,omitempty"`
	Region   string `json:"region_code,omitempty"`
	Division string `json:"division_code,omitempty"`
	CCC      string `json:"ccc_code,omitempty"`
}

// At returns the code at the given role level
func (c Codes) At(r Role) string {
	switch r {
	case RoleZone:
		return c.Zone
	case RoleRegion:
		return c.Region
	case RoleDivision:
		return c.Division
	case RoleCCC:
		return c.CCC
	default:
		return ""
	}
}

// Viewer is the immutable per-session user descriptor supplied by the
// authentication collaborator
type Viewer struct {
	Role       Role
	Codes      Codes
	OfficeName string
}

// Code returns the viewer's code at their own role level
func (v Viewer) Code() string { return v.Codes.At(v.Role) }

// InScope decides whether a record belongs to the viewer's subtree.
//
// Only the single code field at the viewer's own role level is examined.
// A record with an empty value at that level always passes; the check is
// skipped when the record lacks the field, not when the viewer does. A
// ZONE viewer with no zone code is therefore unrestricted here.
func InScope(rec Codes, v Viewer) bool {
	rc := rec.At(v.Role)
	if rc == "" {
		return true
	}
	return rc == v.Code()
}
