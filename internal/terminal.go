package internal

import "quill"

// Size is the extent of the editable text area, excluding the status and
// message bars.
type Size struct {
	Width  int
	Height int
}

// Frame is one complete rendering of the screen. The session assembles the
// whole frame and the terminal swaps it in atomically, so a partially drawn
// screen is never visible.
type Frame struct {
	// Lines is the text area, top to bottom, already windowed to the
	// viewport and truncated to the terminal width.
	Lines []string
	// StatusBar and MessageBar are the two reserved bottom rows.
	StatusBar  string
	MessageBar string
	// Cursor is in screen coordinates, relative to the viewport.
	Cursor quill.Position
	// Highlight is the active search term; occurrences in Lines are drawn
	// in reverse video.
	Highlight string
}

// Terminal is the session's one external device: raw mode, key decoding and
// drawing all live behind it. ReadKey blocks until the user presses a key.
type Terminal interface {
	Size() Size
	ReadKey() (quill.Key, error)
	Render(frame Frame) error
	Clear()
	Close()
}
