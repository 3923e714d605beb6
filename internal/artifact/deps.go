// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package artifact

// Facility is a built-in support module a declaration may depend on.
type Facility uint8

const (
	// FacilityContainers provides generic containers: sequences, unions, maps, tuples, optional values.
	FacilityContainers Facility = 1 << iota
	// FacilityDateTime provides the date-time value type.
	FacilityDateTime
	// FacilityBase is the shared base module: the 64-bit identifier type and the unset sentinel.
	FacilityBase
	// FacilityRecord provides record (class) declarations.
	FacilityRecord
	// FacilityEnum provides enumeration declarations.
	FacilityEnum
)

// Facilities lists every facility in header order.
var Facilities = []Facility{FacilityRecord, FacilityEnum, FacilityContainers, FacilityDateTime, FacilityBase}

func (f Facility) String() string {
	switch f {
	case FacilityContainers:
		return "containers"
	case FacilityDateTime:
		return "datetime"
	case FacilityBase:
		return "base"
	case FacilityRecord:
		return "record"
	case FacilityEnum:
		return "enum"
	default:
		return "facilities"
	}
}

// TypeRef is an unresolved cross-declaration reference: the raw schema key
// and the converted declaration name it is imported as.
type TypeRef struct {
	Key  string
	Name string
}

// Deps is the set of facilities and references a type expression or
// declaration needs. It is a value type; every method returns a new set.
type Deps struct {
	facilities Facility
	refs       []TypeRef
}

// NewDeps returns a set holding the given facilities.
func NewDeps(fs ...Facility) Deps {
	var d Deps
	for _, f := range fs {
		d.facilities |= f
	}
	return d
}

// With returns d plus facility f.
func (d Deps) With(f Facility) Deps {
	return Deps{facilities: d.facilities | f, refs: d.refs}
}

// WithRef returns d plus reference r. Duplicate references are dropped.
func (d Deps) WithRef(r TypeRef) Deps {
	for _, existing := range d.refs {
		if existing == r {
			return d
		}
	}
	refs := make([]TypeRef, len(d.refs), len(d.refs)+1)
	copy(refs, d.refs)
	return Deps{facilities: d.facilities, refs: append(refs, r)}
}

// Merge returns the union of d and o. References keep first-seen order.
func (d Deps) Merge(o Deps) Deps {
	out := Deps{facilities: d.facilities | o.facilities, refs: d.refs}
	for _, r := range o.refs {
		out = out.WithRef(r)
	}
	return out
}

// Has reports whether f is in the set.
func (d Deps) Has(f Facility) bool {
	return d.facilities&f != 0
}

// Facilities returns the facilities in header order.
func (d Deps) Facilities() []Facility {
	var out []Facility
	for _, f := range Facilities {
		if d.Has(f) {
			out = append(out, f)
		}
	}
	return out
}

// Refs returns the references in first-seen order.
func (d Deps) Refs() []TypeRef {
	out := make([]TypeRef, len(d.refs))
	copy(out, d.refs)
	return out
}

// Empty reports whether the set holds nothing.
func (d Deps) Empty() bool {
	return d.facilities == 0 && len(d.refs) == 0
}
