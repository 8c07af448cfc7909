package kernel

import (
	"fmt"
	"strings"

	"dispatch/internal/pkg/errs"
)

// Area is one of the fixed delivery zones an order belongs to and a partner may cover.
// The set is closed: values outside of the declared constants fail validation.
type Area uint8

const (
	// AreaUnknown is the zero value and is never a valid area.
	AreaUnknown Area = iota
	Downtown
	Uptown
	Midtown
	Westside
	Eastside
	Northside
	Southside
)

var areaNames = [...]string{
	AreaUnknown: "Unknown",
	Downtown:    "Downtown",
	Uptown:      "Uptown",
	Midtown:     "Midtown",
	Westside:    "Westside",
	Eastside:    "Eastside",
	Northside:   "Northside",
	Southside:   "Southside",
}

// AllAreas returns every valid area in declaration order.
func AllAreas() []Area {
	return []Area{Downtown, Uptown, Midtown, Westside, Eastside, Northside, Southside}
}

// ParseArea converts a zone name such as "Downtown" into an Area.
// Matching ignores case and surrounding whitespace.
//
// Example:
//
//	area, err := kernel.ParseArea("midtown")
//	// area == kernel.Midtown, err == nil
func ParseArea(s string) (Area, error) {
	name := strings.TrimSpace(s)
	for _, a := range AllAreas() {
		if strings.EqualFold(areaNames[a], name) {
			return a, nil
		}
	}
	return AreaUnknown, errs.NewValueIsInvalidErrorWithCause("area", fmt.Errorf("%q is not a known delivery area", s))
}

// Validate reports whether a is one of the declared areas.
func (a Area) Validate() error {
	if a <= AreaUnknown || a > Southside {
		return errs.NewValueIsInvalidErrorWithCause("area", fmt.Errorf("%d is not a known delivery area", a))
	}
	return nil
}

// String returns the zone name, or "Unknown" for invalid values.
func (a Area) String() string {
	if a.Validate() != nil {
		return areaNames[AreaUnknown]
	}
	return areaNames[a]
}

// AreaSet is a set of areas stored as a bitmask, giving constant-time membership tests.
// The zero value is the empty set.
type AreaSet uint16

// NewAreaSet builds a set from the given areas. Duplicates are collapsed.
// Returns an error if any area is invalid.
func NewAreaSet(areas ...Area) (AreaSet, error) {
	var set AreaSet
	for _, a := range areas {
		if err := a.Validate(); err != nil {
			return 0, err
		}
		set |= 1 << a
	}
	return set, nil
}

// ParseAreaSet builds a set from zone names.
func ParseAreaSet(names []string) (AreaSet, error) {
	areas := make([]Area, 0, len(names))
	for _, n := range names {
		a, err := ParseArea(n)
		if err != nil {
			return 0, err
		}
		areas = append(areas, a)
	}
	return NewAreaSet(areas...)
}

// Contains reports whether a is a member of the set.
func (s AreaSet) Contains(a Area) bool {
	return a.Validate() == nil && s&(1<<a) != 0
}

// IsEmpty reports whether the set has no members.
func (s AreaSet) IsEmpty() bool {
	return s == 0
}

// Areas lists the members in declaration order.
func (s AreaSet) Areas() []Area {
	areas := make([]Area, 0, len(areaNames))
	for _, a := range AllAreas() {
		if s.Contains(a) {
			areas = append(areas, a)
		}
	}
	return areas
}

// Strings lists the member names in declaration order.
func (s AreaSet) Strings() []string {
	areas := s.Areas()
	names := make([]string, len(areas))
	for i, a := range areas {
		names[i] = a.String()
	}
	return names
}
