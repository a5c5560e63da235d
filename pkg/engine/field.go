package engine

// Field is the hidden form field the list is bound to. The engine only reads
// it once during construction and writes the processed value after each
// notifying mutation.
type Field interface {
	Value() string
	SetValue(value string)
}

// StringField is an in-memory Field.
type StringField struct {
	value  string
	writes int
}

// NewStringField returns a field seeded with value.
func NewStringField(value string) *StringField {
	return &StringField{value: value}
}

// Value returns the current raw value.
func (f *StringField) Value() string {
	if f == nil {
		return ""
	}
	return f.value
}

// SetValue stores a raw value.
func (f *StringField) SetValue(value string) {
	if f == nil {
		return
	}
	f.value = value
	f.writes++
}

// Writes reports how many times SetValue was called.
func (f *StringField) Writes() int {
	if f == nil {
		return 0
	}
	return f.writes
}
