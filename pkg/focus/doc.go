// Package focus implements directional ("spatial") keyboard navigation across
// a set of screen elements, as used by remote-control and keyboard-only
// interfaces.
//
// A Manager tracks the single focused element, picks the next element for an
// arrow key by geometric proximity (see Locate), and drives a Presenter to
// move the focus treatment. Key-down events pass through a KeyDispatcher that
// drops auto-repeat, debounces bursts on the trailing edge, and routes the
// surviving event to a one-shot override, a custom handler, or the default
// handler.
//
// Manager methods may be called from any goroutine. They, and the debounce
// callback, run one at a time, so the default time.AfterFunc scheduler is
// safe to use without a host event loop.
//
// The package never reads layout itself: elements report their own bounds.
package focus
