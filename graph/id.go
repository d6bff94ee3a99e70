package graph

import "fmt"

// Id identifies a Node or Edge. It is a sum type of an integer or a
// string: exactly one of the two is meaningful, selected by isString.
// Id is comparable and usable as a map key: two Ids are equal iff they
// carry the same kind and the same value.
//
// Ordering is total: every integer Id compares less than every string
// Id; within a kind, natural ordering applies. This total order backs
// the deterministic "minimum constituent edge ID" rule used by
// coalescing.
type Id struct {
	isString bool
	intVal   int64
	strVal   string
}

// IntId constructs an integer Id.
func IntId(v int64) Id {
	return Id{intVal: v}
}

// StringId constructs a string Id.
func StringId(v string) Id {
	return Id{isString: true, strVal: v}
}

// IsString reports whether this Id holds a string value.
func (id Id) IsString() bool {
	return id.isString
}

// IntValue returns the integer value of id. Meaningless if IsString().
func (id Id) IntValue() int64 {
	return id.intVal
}

// StringValue returns the string value of id. Meaningless if !IsString().
func (id Id) StringValue() string {
	return id.strVal
}

// String renders id for diagnostics and error messages.
func (id Id) String() string {
	if id.isString {
		return id.strVal
	}

	return fmt.Sprintf("%d", id.intVal)
}

// Less reports whether a sorts strictly before b: all integers precede
// all strings, and within a kind the natural order applies.
func Less(a, b Id) bool {
	if a.isString != b.isString {
		return !a.isString
	}
	if a.isString {
		return a.strVal < b.strVal
	}

	return a.intVal < b.intVal
}

// MinId returns whichever of a and b sorts first under Less; ties
// (equal Ids) resolve to a.
func MinId(a, b Id) Id {
	if Less(b, a) {
		return b
	}

	return a
}
