package focus

import (
	"fmt"
	"strings"
)

// Style is the focus treatment configuration. It is used as a value: changing
// the style means producing a new Style with Merge and assigning it back.
//
// An empty BackgroundColor or BorderRadius means "not configured"; those
// properties are then neither applied nor cleared.
type Style struct {
	Border                   bool   `yaml:"border" json:"border" toml:"border"`
	BorderColor              string `yaml:"border_color" json:"border_color" toml:"border_color"`
	BorderThickness          string `yaml:"border_thickness" json:"border_thickness" toml:"border_thickness"`
	BackgroundColor          string `yaml:"background_color" json:"background_color" toml:"background_color"`
	BorderRadius             string `yaml:"border_radius" json:"border_radius" toml:"border_radius"`
	Animate                  bool   `yaml:"animate" json:"animate" toml:"animate"`
	AnimationStyle           string `yaml:"animation_style" json:"animation_style" toml:"animation_style"`
	TransitionDuration       string `yaml:"transition_duration" json:"transition_duration" toml:"transition_duration"`
	TransitionTimingFunction string `yaml:"transition_timing_function" json:"transition_timing_function" toml:"transition_timing_function"`
	ScrollIntoView           bool   `yaml:"scroll_into_view" json:"scroll_into_view" toml:"scroll_into_view"`
}

// DefaultStyle returns the built-in focus treatment: a 2px blue outline with
// square corners, a 0.3s ease transition, and scroll-into-view enabled.
func DefaultStyle() Style {
	return Style{
		Border:                   true,
		BorderColor:              "#0000ff",
		BorderThickness:          "2px",
		BorderRadius:             "0px",
		TransitionDuration:       "0.3s",
		TransitionTimingFunction: "ease",
		ScrollIntoView:           true,
	}
}

// StylePatch is a partial Style. Nil fields leave the corresponding Style
// field unchanged. Setting a string field to "" clears it.
type StylePatch struct {
	Border                   *bool   `yaml:"border,omitempty" json:"border,omitempty" toml:"border,omitempty"`
	BorderColor              *string `yaml:"border_color,omitempty" json:"border_color,omitempty" toml:"border_color,omitempty"`
	BorderThickness          *string `yaml:"border_thickness,omitempty" json:"border_thickness,omitempty" toml:"border_thickness,omitempty"`
	BackgroundColor          *string `yaml:"background_color,omitempty" json:"background_color,omitempty" toml:"background_color,omitempty"`
	BorderRadius             *string `yaml:"border_radius,omitempty" json:"border_radius,omitempty" toml:"border_radius,omitempty"`
	Animate                  *bool   `yaml:"animate,omitempty" json:"animate,omitempty" toml:"animate,omitempty"`
	AnimationStyle           *string `yaml:"animation_style,omitempty" json:"animation_style,omitempty" toml:"animation_style,omitempty"`
	TransitionDuration       *string `yaml:"transition_duration,omitempty" json:"transition_duration,omitempty" toml:"transition_duration,omitempty"`
	TransitionTimingFunction *string `yaml:"transition_timing_function,omitempty" json:"transition_timing_function,omitempty" toml:"transition_timing_function,omitempty"`
	ScrollIntoView           *bool   `yaml:"scroll_into_view,omitempty" json:"scroll_into_view,omitempty" toml:"scroll_into_view,omitempty"`
}

// Empty reports whether the patch sets nothing.
func (p StylePatch) Empty() bool {
	return p == StylePatch{}
}

// Merge returns a copy of s with every non-nil field of p applied.
func (s Style) Merge(p StylePatch) Style {
	out := s
	setBool(&out.Border, p.Border)
	setString(&out.BorderColor, p.BorderColor)
	setString(&out.BorderThickness, p.BorderThickness)
	setString(&out.BackgroundColor, p.BackgroundColor)
	setString(&out.BorderRadius, p.BorderRadius)
	setBool(&out.Animate, p.Animate)
	setString(&out.AnimationStyle, p.AnimationStyle)
	setString(&out.TransitionDuration, p.TransitionDuration)
	setString(&out.TransitionTimingFunction, p.TransitionTimingFunction)
	setBool(&out.ScrollIntoView, p.ScrollIntoView)
	return out
}

// Diff returns the patch that turns s into other.
func (s Style) Diff(other Style) StylePatch {
	var p StylePatch
	if s.Border != other.Border {
		p.Border = Ptr(other.Border)
	}
	if s.BorderColor != other.BorderColor {
		p.BorderColor = Ptr(other.BorderColor)
	}
	if s.BorderThickness != other.BorderThickness {
		p.BorderThickness = Ptr(other.BorderThickness)
	}
	if s.BackgroundColor != other.BackgroundColor {
		p.BackgroundColor = Ptr(other.BackgroundColor)
	}
	if s.BorderRadius != other.BorderRadius {
		p.BorderRadius = Ptr(other.BorderRadius)
	}
	if s.Animate != other.Animate {
		p.Animate = Ptr(other.Animate)
	}
	if s.AnimationStyle != other.AnimationStyle {
		p.AnimationStyle = Ptr(other.AnimationStyle)
	}
	if s.TransitionDuration != other.TransitionDuration {
		p.TransitionDuration = Ptr(other.TransitionDuration)
	}
	if s.TransitionTimingFunction != other.TransitionTimingFunction {
		p.TransitionTimingFunction = Ptr(other.TransitionTimingFunction)
	}
	if s.ScrollIntoView != other.ScrollIntoView {
		p.ScrollIntoView = Ptr(other.ScrollIntoView)
	}
	return p
}

// Outline returns the outline derived from the border settings.
func (s Style) Outline() Outline {
	return Outline{Thickness: s.BorderThickness, Color: s.BorderColor}
}

// Transition returns the transition timing derived from the style.
func (s Style) Transition() Transition {
	return Transition{Duration: s.TransitionDuration, TimingFunction: s.TransitionTimingFunction}
}

// Ptr returns a pointer to v. It keeps StylePatch literals short.
func Ptr[T any](v T) *T { return &v }

func setBool(dst *bool, v *bool) {
	if v != nil {
		*dst = *v
	}
}

func setString(dst *string, v *string) {
	if v != nil {
		*dst = *v
	}
}

// Outline describes a solid focus outline.
type Outline struct {
	Thickness string
	Color     string
}

// String renders the outline as "<thickness> solid <color>".
func (o Outline) String() string {
	return fmt.Sprintf("%s solid %s", o.Thickness, o.Color)
}

// Transition is the timing applied to outline, background and radius changes.
type Transition struct {
	Duration       string
	TimingFunction string
}

// String renders the transition for each animated property.
func (t Transition) String() string {
	props := []string{"outline", "background-color", "border-radius"}
	parts := make([]string, len(props))
	for i, p := range props {
		parts[i] = strings.TrimSpace(fmt.Sprintf("%s %s %s", p, t.Duration, t.TimingFunction))
	}
	return strings.Join(parts, ", ")
}
