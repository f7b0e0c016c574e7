package form

type Mode int

const (
	SignIn Mode = iota
	Register
)

func (m Mode) String() string {
	if m == Register {
		return "register"
	}
	return "sign-in"
}

func (m Mode) Toggle() Mode {
	if m == Register {
		return SignIn
	}
	return Register
}

// PanelOffset is the css class that slides the auth panel for the mode.
func (m Mode) PanelOffset() string {
	if m == Register {
		return "panel-register"
	}
	return "panel-signin"
}
