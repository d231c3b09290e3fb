package config

// SecretStringValue replaces secrets in every printed form.
const SecretStringValue = "<secret>"

// SecretString holds credentials, such as service token. Formatting, logging
// and configuration dumps show SecretStringValue instead of the value, use
// Reveal to get it.
type SecretString string

// Reveal returns the actual value.
func (s SecretString) Reveal() string {
	return string(s)
}

func (s SecretString) mask() string {
	if len(s) == 0 {
		return ""
	}
	return SecretStringValue
}

func (s SecretString) String() string {
	return s.mask()
}

// GoString covers %#v.
func (s SecretString) GoString() string {
	return `"` + s.mask() + `"`
}

func (s SecretString) MarshalJSON() ([]byte, error) {
	if len(s) == 0 {
		return []byte("null"), nil
	}
	return []byte(`"` + SecretStringValue + `"`), nil
}

func (s SecretString) MarshalYAML() (any, error) {
	if len(s) == 0 {
		return nil, nil
	}
	return SecretStringValue, nil
}
