package formschema

// FallbackFields is the static schema served when the completion provider is
// disabled: a standard registration form. Kept as a literal so the disabled
// branch is fully deterministic.
var FallbackFields = []Field{
	{
		Label: "Username",
		Name:  "username",
		Type:  "text",
		Validations: []Validation{
			{Type: "required", Value: true, Message: "Username is required"},
			{Type: "minLength", Value: 6, Message: "Username must be at least 6 characters long"},
			{Type: "maxLength", Value: 20, Message: "Username cannot exceed 20 characters"},
		},
	},
	{
		Label: "Email",
		Name:  "email",
		Type:  "email",
		Validations: []Validation{
			{Type: "required", Value: true, Message: "Email is required"},
			{Type: "pattern", Value: "^[a-zA-Z0-9+_.-]+@[a-zA-Z0-9.-]+$", Message: "Invalid email format"},
		},
	},
	{
		Label: "Password",
		Name:  "password",
		Type:  "password",
		Validations: []Validation{
			{Type: "required", Value: true, Message: "Password is required"},
			{Type: "minLength", Value: 8, Message: "Password must be at least 8 characters long"},
		},
	},
	{
		Label: "Confirm Password",
		Name:  "confirmPassword",
		Type:  "password",
		Validations: []Validation{
			{Type: "required", Value: true, Message: "Confirm Password is required"},
			{Type: "minLength", Value: 8, Message: "Confirm Password must be at least 8 characters long"},
		},
	},
}
