package validation

// LoginInput is the validated shape of an admin login payload
type LoginInput struct {
	Username string
	Password string
}

// ValidateLogin checks that both credentials are present and non-empty
func ValidateLogin(raw map[string]any) (*LoginInput, FieldErrors) {
	in := &LoginInput{}
	errs := FieldErrors{}

	if v, present := raw["username"]; present && v != nil {
		if s, ok := coerceString(v); ok {
			in.Username = s
		}
	}
	if v, present := raw["password"]; present && v != nil {
		if s, ok := coerceString(v); ok {
			in.Password = s
		}
	}

	if in.Username == "" {
		errs.Add("username", "Username is required")
	}
	if in.Password == "" {
		errs.Add("password", "Password is required")
	}

	if errs.Any() {
		return nil, errs
	}
	return in, nil
}
