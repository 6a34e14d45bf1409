package components

import "testing"

// TestUIState tests that UIState constants are defined correctly.
func TestUIState(t *testing.T) {
	tests := []struct {
		name  string
		state UIState
		value int
		str   string
	}{
		{"UINormal should be 0", UINormal, 0, "normal"},
		{"UIHovered should be 1", UIHovered, 1, "hovered"},
		{"UIClicked should be 2", UIClicked, 2, "clicked"},
		{"UIDisabled should be 3", UIDisabled, 3, "disabled"},
		{"unknown state", UIState(9), 9, "unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if int(tt.state) != tt.value {
				t.Errorf("Expected %s to be %d, got %d", tt.name, tt.value, int(tt.state))
			}
			if got := tt.state.String(); got != tt.str {
				t.Errorf("String() = %q, want %q", got, tt.str)
			}
		})
	}
}

// TestButtonComponent tests the ButtonComponent struct.
func TestButtonComponent(t *testing.T) {
	callbackInvoked := false
	button := ButtonComponent{
		Style:   ButtonStyleIcon,
		Text:    "♪",
		Width:   40,
		Height:  40,
		Enabled: true,
		State:   UINormal,
		OnClick: func() { callbackInvoked = true },
	}

	if button.Crossed {
		t.Error("Crossed should default to false")
	}
	if callbackInvoked {
		t.Error("Callback should not be invoked yet")
	}

	button.OnClick()
	if !callbackInvoked {
		t.Error("Callback should be invoked")
	}

	button.State = UIDisabled
	if button.State != UIDisabled {
		t.Errorf("Expected State to be UIDisabled, got %v", button.State)
	}
}
