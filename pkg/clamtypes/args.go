package clamtypes

// Args holds bound argument values keyed by canonical argument name.
// The binder guarantees each value already has the argument's declared Go
// type, so the typed getters below simply assert. A missing name or a type
// mismatch yields the zero value; use Has to distinguish absence.
type Args map[string]any

// Has reports whether an argument was bound (explicitly or via default).
func (a Args) Has(name string) bool {
	_, ok := a[name]
	return ok
}

// Value returns the raw bound value and whether it was present.
func (a Args) Value(name string) (any, bool) {
	v, ok := a[name]
	return v, ok
}

// String returns the value of a string argument.
func (a Args) String(name string) string {
	v, _ := a[name].(string)
	return v
}

// Int returns the value of an int argument.
func (a Args) Int(name string) int {
	v, _ := a[name].(int)
	return v
}

// Float returns the value of a float argument.
func (a Args) Float(name string) float64 {
	v, _ := a[name].(float64)
	return v
}

// Bool returns the value of a bool argument.
func (a Args) Bool(name string) bool {
	v, _ := a[name].(bool)
	return v
}

// StringList returns the value of a string list argument.
func (a Args) StringList(name string) []string {
	v, _ := a[name].([]string)
	return v
}

// IntList returns the value of an int list argument.
func (a Args) IntList(name string) []int {
	v, _ := a[name].([]int)
	return v
}

// FloatList returns the value of a float list argument.
func (a Args) FloatList(name string) []float64 {
	v, _ := a[name].([]float64)
	return v
}
