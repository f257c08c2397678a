package term

import (
	"strconv"
	"strings"
)

// EventKind discriminates the decoded input events the app loop reacts
// to (spec §4.6).
type EventKind uint8

const (
	EventKey EventKind = iota
	EventMouse
	EventResize
	EventFocusGained
	EventFocusLost
	EventCursorPosition // internal: reply to the DSR cursor-position query
)

// KeyCode names a non-printable key; printable keys are carried as
// Runes with Code left zero.
type KeyCode uint8

const (
	KeyNone KeyCode = iota
	KeyEnter
	KeyEsc
	KeyTab
	KeyShiftTab
	KeyBackspace
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
	KeyHome
	KeyEnd
	KeyPageUp
	KeyPageDown
	KeyCtrlC
)

// MouseAction distinguishes a mouse event's phase.
type MouseAction uint8

const (
	MousePress MouseAction = iota
	MouseRelease
	MouseMotion
	MouseWheelUp
	MouseWheelDown
)

// MouseButton identifies which button a press/release event concerns.
type MouseButton uint8

const (
	MouseButtonNone MouseButton = iota
	MouseButtonLeft
	MouseButtonMiddle
	MouseButtonRight
)

// Event is the decoded form of one read from the terminal's input
// stream: exactly one of its payload groups is meaningful, selected by
// Kind.
type Event struct {
	Kind EventKind

	// Key payload.
	Code  KeyCode
	Runes []rune
	Alt   bool

	// Mouse payload.
	MouseX, MouseY int
	MouseAction    MouseAction
	MouseButton    MouseButton

	// Resize payload.
	Width, Height int

	// internal cursor-position reply payload.
	CursorRow, CursorCol int
}

var escKeyCodes = map[string]KeyCode{
	"\x1b[A":  KeyUp,
	"\x1b[B":  KeyDown,
	"\x1b[C":  KeyRight,
	"\x1b[D":  KeyLeft,
	"\x1bOA":  KeyUp,
	"\x1bOB":  KeyDown,
	"\x1bOC":  KeyRight,
	"\x1bOD":  KeyLeft,
	"\x1b[H":  KeyHome,
	"\x1b[F":  KeyEnd,
	"\x1b[5~": KeyPageUp,
	"\x1b[6~": KeyPageDown,
	"\x1b[Z":  KeyShiftTab,
}

// decode turns one read's raw bytes into an Event. It handles the common
// single-read cases: plain runes, C0 control codes, CSI cursor/function
// keys, SGR mouse reports (`\x1b[<b;x;yM`/`m`), and the DSR cursor
// position reply (`\x1b[{row};{col}R`).
func decode(buf []byte) Event {
	s := string(buf)

	switch {
	case s == "\r" || s == "\n":
		return Event{Kind: EventKey, Code: KeyEnter}
	case s == "\x1b":
		return Event{Kind: EventKey, Code: KeyEsc}
	case s == "\t":
		return Event{Kind: EventKey, Code: KeyTab}
	case s == "\x7f" || s == "\b":
		return Event{Kind: EventKey, Code: KeyBackspace}
	case s == "\x03":
		return Event{Kind: EventKey, Code: KeyCtrlC}
	case s == "\x1b[I":
		return Event{Kind: EventFocusGained}
	case s == "\x1b[O":
		return Event{Kind: EventFocusLost}
	}

	if strings.HasPrefix(s, "\x1b[<") {
		if ev, ok := decodeSGRMouse(s); ok {
			return ev
		}
	}

	if strings.HasSuffix(s, "R") && strings.HasPrefix(s, "\x1b[") {
		if row, col, ok := decodeCursorReport(s); ok {
			return Event{Kind: EventCursorPosition, CursorRow: row, CursorCol: col}
		}
	}

	if code, ok := escKeyCodes[s]; ok {
		return Event{Kind: EventKey, Code: code}
	}

	runes := []rune(s)
	if len(runes) > 0 {
		return Event{Kind: EventKey, Runes: runes}
	}
	return Event{Kind: EventKey}
}

// decodeSGRMouse parses "\x1b[<Cb;Cx;Cy(M|m)".
func decodeSGRMouse(s string) (Event, bool) {
	body := strings.TrimPrefix(s, "\x1b[<")
	if len(body) == 0 {
		return Event{}, false
	}
	final := body[len(body)-1]
	if final != 'M' && final != 'm' {
		return Event{}, false
	}
	parts := strings.Split(body[:len(body)-1], ";")
	if len(parts) != 3 {
		return Event{}, false
	}
	cb, err1 := strconv.Atoi(parts[0])
	x, err2 := strconv.Atoi(parts[1])
	y, err3 := strconv.Atoi(parts[2])
	if err1 != nil || err2 != nil || err3 != nil {
		return Event{}, false
	}

	ev := Event{Kind: EventMouse, MouseX: x - 1, MouseY: y - 1}

	switch {
	case cb&0x40 != 0 && cb&0x01 != 0:
		ev.MouseAction = MouseWheelDown
	case cb&0x40 != 0:
		ev.MouseAction = MouseWheelUp
	case final == 'm':
		ev.MouseAction = MouseRelease
	default:
		ev.MouseAction = MousePress
	}

	switch cb & 0x03 {
	case 0:
		ev.MouseButton = MouseButtonLeft
	case 1:
		ev.MouseButton = MouseButtonMiddle
	case 2:
		ev.MouseButton = MouseButtonRight
	}

	return ev, true
}

// decodeCursorReport parses "\x1b[{row};{col}R".
func decodeCursorReport(s string) (row, col int, ok bool) {
	body := strings.TrimPrefix(s, "\x1b[")
	body = strings.TrimSuffix(body, "R")
	parts := strings.Split(body, ";")
	if len(parts) != 2 {
		return 0, 0, false
	}
	r, err1 := strconv.Atoi(parts[0])
	c, err2 := strconv.Atoi(parts[1])
	if err1 != nil || err2 != nil {
		return 0, 0, false
	}
	return r - 1, c - 1, true
}
