package formschema

// Field describes one form field the completion provider is instructed to
// emit: a display label, the input's name attribute, its input type and an
// optional list of client-side validation rules.
type Field struct {
	Label       string       `json:"label"`
	Name        string       `json:"name"`
	Type        string       `json:"type"`
	Validations []Validation `json:"validations,omitempty"`
}

// Validation is a single client-side rule. Value is polymorphic: bool for
// required, number for length/range rules, pattern string for pattern.
type Validation struct {
	Type    string `json:"type"`
	Value   any    `json:"value"`
	Message string `json:"message"`
}
