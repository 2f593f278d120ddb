package forms

// FieldType is the model type a form field converts to.
type FieldType string

const (
	TypeString FieldType = "string"
	TypeInt    FieldType = "int"
	TypeFloat  FieldType = "float"
	TypeDate   FieldType = "date"
)

// Form is the root of a YAML form definition.
type Form struct {
	// Version of the definition schema, for future compatibility.
	Version string `yaml:"version,omitempty"`

	// Fields lists the bound input fields in declaration order.
	Fields []FieldDef `yaml:"fields"`
}

// FieldDef declares one input field, its model type, and its rules.
type FieldDef struct {
	// Name identifies both the input field and the document property.
	Name string `yaml:"name"`

	// Type is the model type; raw input is always a string. Defaults to
	// string.
	Type FieldType `yaml:"type,omitempty"`

	// Layout is the date layout for date fields, in Go reference-time
	// notation. Defaults to converters.DefaultDateLayout.
	Layout string `yaml:"layout,omitempty"`

	// Fallback is the message reported when conversion fails. A per-type
	// default is used when empty.
	Fallback string `yaml:"fallback,omitempty"`

	// Trim inserts a whitespace-trimming step before any rule runs.
	Trim bool `yaml:"trim,omitempty"`

	// Rules apply in declared order; raw-input rules before conversion,
	// model rules after.
	Rules []RuleDef `yaml:"rules,omitempty"`
}

// RuleDef is one validation rule attached to a field.
type RuleDef struct {
	// Rule names an entry of the rule catalog: required, email, pattern,
	// length, range.
	Rule string `yaml:"rule"`

	// Message overrides the rule's default rejection message.
	Message string `yaml:"message,omitempty"`

	// Pattern is the regular expression for the pattern rule.
	Pattern string `yaml:"pattern,omitempty"`

	// Min and Max bound length and range rules; either may be omitted.
	Min *float64 `yaml:"min,omitempty"`
	Max *float64 `yaml:"max,omitempty"`
}
