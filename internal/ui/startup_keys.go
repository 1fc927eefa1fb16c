package ui

import (
	"strings"

	tea "charm.land/bubbletea/v2"
)

// ApplyStartupKeys replays key presses before the first frame. Tokens mix
// bracketed key names and literal characters, e.g. "<Right><Down>j<Enter>".
// Each key is dispatched without waiting out the debounce, so every press
// counts even though they arrive together.
func ApplyStartupKeys(m *Model, keys []string) {
	if m == nil {
		return
	}
	for _, msg := range ParseKeys(keys) {
		if _, cmd := m.Update(msg); cmd != nil && m.quitting {
			return
		}
		m.settle()
	}
}

// ParseKeys turns startup key tokens into key press messages. A leading
// backslash makes the rest of the token literal. Unknown bracketed names are
// skipped.
func ParseKeys(tokens []string) []tea.KeyPressMsg {
	var out []tea.KeyPressMsg
	for _, raw := range tokens {
		token := strings.TrimSpace(raw)
		if token == "" {
			continue
		}
		if strings.HasPrefix(token, `\`) {
			out = append(out, literalKeys(strings.TrimPrefix(token, `\`))...)
			continue
		}
		for _, segment := range parseTokenSegments(token) {
			if !segment.isKey {
				out = append(out, literalKeys(segment.text)...)
				continue
			}
			if msg, ok := keyMsgFromToken(segment.text); ok {
				out = append(out, msg)
			}
		}
	}
	return out
}

func literalKeys(s string) []tea.KeyPressMsg {
	out := make([]tea.KeyPressMsg, 0, len(s))
	for _, r := range s {
		out = append(out, tea.KeyPressMsg{Code: r, Text: string(r)})
	}
	return out
}

// tokenSegment is either a bracketed key name or literal text.
type tokenSegment struct {
	text  string
	isKey bool
}

// parseTokenSegments splits "<Down>jk<Enter>" into key and literal segments.
// An unclosed "<" makes the remainder literal.
func parseTokenSegments(token string) []tokenSegment {
	var segments []tokenSegment
	remaining := token
	for len(remaining) > 0 {
		start := strings.Index(remaining, "<")
		if start == -1 {
			segments = append(segments, tokenSegment{text: remaining})
			break
		}
		if start > 0 {
			segments = append(segments, tokenSegment{text: remaining[:start]})
		}
		end := strings.Index(remaining[start:], ">")
		if end == -1 {
			segments = append(segments, tokenSegment{text: remaining[start:]})
			break
		}
		segments = append(segments, tokenSegment{text: remaining[start : start+end+1], isKey: true})
		remaining = remaining[start+end+1:]
	}
	return segments
}

// keyMsgFromToken maps a bracketed name such as "<Up>", "<CR>" or "<C-c>".
// A "R-" prefix marks the press as an auto-repeat, e.g. "<R-Right>".
func keyMsgFromToken(token string) (tea.KeyPressMsg, bool) {
	inner := strings.TrimSuffix(strings.TrimPrefix(token, "<"), ">")
	lower := strings.ToLower(inner)
	repeat := false
	if strings.HasPrefix(lower, "r-") {
		repeat = true
		lower = strings.TrimPrefix(lower, "r-")
	}
	var msg tea.KeyPressMsg
	switch lower {
	case "esc", "escape":
		msg = tea.KeyPressMsg{Code: tea.KeyEscape}
	case "cr", "enter", "return":
		msg = tea.KeyPressMsg{Code: tea.KeyEnter}
	case "tab":
		msg = tea.KeyPressMsg{Code: tea.KeyTab}
	case "space":
		msg = tea.KeyPressMsg{Code: ' ', Text: " "}
	case "up":
		msg = tea.KeyPressMsg{Code: tea.KeyUp}
	case "down":
		msg = tea.KeyPressMsg{Code: tea.KeyDown}
	case "left":
		msg = tea.KeyPressMsg{Code: tea.KeyLeft}
	case "right":
		msg = tea.KeyPressMsg{Code: tea.KeyRight}
	case "c-c":
		msg = tea.KeyPressMsg{Code: 'c', Mod: tea.ModCtrl}
	default:
		return tea.KeyPressMsg{}, false
	}
	msg.IsRepeat = repeat
	return msg, true
}
