package focus

// Element is a non-owning handle to a focusable UI element. Bounds must
// reflect the current layout each time it is called.
type Element interface {
	ID() string
	Bounds() Rect
	// Focus performs the element's native focus activation.
	Focus()
}

// EnterHandler is implemented by elements that handle the enter key themselves.
type EnterHandler interface {
	OnEnter(ev *KeyEvent)
}

// Activatable is implemented by native controls (buttons, checkboxes) whose
// click-style activation runs when enter is pressed on them.
type Activatable interface {
	Activate()
}

// Kinded exposes a type/category label used in notifications.
type Kinded interface {
	Kind() string
}

// Source enumerates the elements currently marked focusable, in page order.
type Source interface {
	Focusables() []Element
}

// SourceFunc adapts a plain function to Source.
type SourceFunc func() []Element

// Focusables implements Source.
func (f SourceFunc) Focusables() []Element { return f() }

// KindOf returns the element's kind label, or "ELEMENT" when it has none.
func KindOf(el Element) string {
	if k, ok := el.(Kinded); ok {
		if kind := k.Kind(); kind != "" {
			return kind
		}
	}
	return "ELEMENT"
}

func sameElement(a, b Element) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return a.ID() == b.ID()
}
