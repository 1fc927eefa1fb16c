package focus

// FocusState holds the single focused element and applies or reverts the
// visual treatment when focus moves.
type FocusState struct {
	presenter Presenter
	style     Style
	current   Element
}

// NewFocusState creates an empty focus state.
func NewFocusState(p Presenter, style Style) *FocusState {
	return &FocusState{presenter: p, style: style}
}

// Current returns the focused element, or nil.
func (s *FocusState) Current() Element { return s.current }

// Style returns the active style.
func (s *FocusState) Style() Style { return s.style }

// SetStyle replaces the active style. The focused element keeps its current
// treatment until the next transition.
func (s *FocusState) SetStyle(style Style) { s.style = style }

// Apply moves focus to target, which may be nil. The previous element is
// fully reverted before target is styled, so at most one element carries the
// treatment afterwards. Applying the same element twice reverts then
// reapplies it.
func (s *FocusState) Apply(target Element) {
	if prev := s.current; prev != nil {
		s.revert(prev)
	}
	s.current = target
	if target == nil {
		return
	}

	st := s.style
	if st.ScrollIntoView {
		s.presenter.ScrollIntoView(target)
	}
	target.Focus()
	s.presenter.SetTransition(target, st.Transition())
	if st.Border {
		s.presenter.SetOutline(target, st.Outline())
	}
	if st.BackgroundColor != "" {
		s.presenter.SetBackground(target, st.BackgroundColor)
	}
	if st.BorderRadius != "" {
		s.presenter.SetBorderRadius(target, st.BorderRadius)
	}
	if st.Animate {
		s.presenter.AddClass(target, st.AnimationStyle)
	}
}

func (s *FocusState) revert(el Element) {
	st := s.style
	s.presenter.SetTransition(el, st.Transition())
	s.presenter.ClearOutline(el)
	if st.BackgroundColor != "" {
		s.presenter.ClearBackground(el)
	}
	if st.BorderRadius != "" {
		s.presenter.ClearBorderRadius(el)
	}
	if st.Animate {
		s.presenter.RemoveClass(el, st.AnimationStyle)
	}
}
