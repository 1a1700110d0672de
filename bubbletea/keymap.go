package bubbletea

// Key binding constants used in handleKey.
const (
	KeyCtrlC     = "ctrl+c"
	KeyEsc       = "esc"
	KeyReset     = "ctrl+r"
	KeyTab       = "tab"
	KeyShiftTab  = "shift+tab"
	KeyEnter     = "enter"
	KeyBackspace = "backspace"
	KeyUp        = "up"
	KeyDown      = "down"
	KeyJ         = "j"
	KeyK         = "k"
	KeyBack      = "b"
)
