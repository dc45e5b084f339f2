package validate

// KeyboardType is the keyboard layout an input kind asks for.
type KeyboardType int

const (
	KeyboardDefault KeyboardType = iota
	KeyboardEmail
	KeyboardNumeric
)

// Keyboard describes how the input host should configure text entry for a
// kind.
type Keyboard struct {
	Type           KeyboardType
	Autocapitalize bool
	Autocorrect    bool
	SecureEntry    bool
}

// Keyboard returns the entry configuration for k.
func (k Kind) Keyboard() Keyboard {
	switch k {
	case Email:
		return Keyboard{Type: KeyboardEmail}
	case Number:
		return Keyboard{Type: KeyboardNumeric, Autocapitalize: true, Autocorrect: true}
	case Password:
		return Keyboard{Type: KeyboardDefault, SecureEntry: true}
	default:
		return Keyboard{Type: KeyboardDefault, Autocapitalize: true, Autocorrect: true}
	}
}
