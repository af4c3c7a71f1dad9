package validation

// CategoryInput is the coerced, validated shape of a category payload
type CategoryInput struct {
	Name        *string `validate:"omitempty,min=1"`
	Description *string
}

var categoryMessages = map[string][2]string{
	"Name": {"name", "Name is required"},
}

// ValidateCategory coerces and validates a raw category payload; with
// partial set the name becomes optional (update semantics)
func ValidateCategory(raw map[string]any, partial bool) (*CategoryInput, FieldErrors) {
	in := &CategoryInput{}
	errs := FieldErrors{}

	if v, present := raw["name"]; present && v != nil {
		if s, ok := coerceString(v); ok {
			in.Name = &s
		} else {
			errs.Add("name", "Name must be a string")
		}
	}
	if v, present := raw["description"]; present && v != nil {
		if s, ok := coerceString(v); ok {
			in.Description = &s
		} else {
			errs.Add("description", "Description must be a string")
		}
	}

	if !partial && in.Name == nil && len(errs["name"]) == 0 {
		errs.Add("name", "Name is required")
	}

	runStruct(in, errs, categoryMessages)

	if errs.Any() {
		return nil, errs
	}
	return in, nil
}
