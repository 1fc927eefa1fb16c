package focus

// KeyEnter is the key identifier the default handler treats as activation.
const KeyEnter = "enter"

// KeyEvent is a key-down event as seen by the dispatcher.
type KeyEvent struct {
	// Key is the raw key identifier, e.g. "up", "enter", "k".
	Key string
	// Repeat is set for auto-repeat events generated by a held key.
	Repeat bool

	prevented bool
}

// NewKeyEvent returns a non-repeat event for key.
func NewKeyEvent(key string) *KeyEvent {
	return &KeyEvent{Key: key}
}

// PreventDefault marks the event as handled so the host skips its own
// default action for the key.
func (e *KeyEvent) PreventDefault() { e.prevented = true }

// DefaultPrevented reports whether PreventDefault was called.
func (e *KeyEvent) DefaultPrevented() bool { return e.prevented }
