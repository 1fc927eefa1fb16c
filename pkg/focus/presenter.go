package focus

// Presenter is the presentation surface the focus state drives. A host
// implements it over whatever styling mechanism it renders with.
type Presenter interface {
	// ScrollIntoView brings el to the vertical center of the viewport with
	// smooth motion.
	ScrollIntoView(el Element)
	SetTransition(el Element, t Transition)
	SetOutline(el Element, o Outline)
	ClearOutline(el Element)
	SetBackground(el Element, color string)
	ClearBackground(el Element)
	SetBorderRadius(el Element, radius string)
	ClearBorderRadius(el Element)
	AddClass(el Element, class string)
	RemoveClass(el Element, class string)
	// Notify shows a transient informational message that dismisses itself.
	Notify(message string)
}
