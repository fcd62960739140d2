package internal

import (
	"errors"
	"strings"
	"sync"

	gc "github.com/gbin/goncurses"
	"github.com/mattn/go-runewidth"

	"quill"
)

const (
	// Colors.
	colorStatusFg = 100
	colorStatusBg = 101

	// Color pairs.
	colorPairStatus = 1

	// Raw byte codes GetChar reports below the ncurses special-key range.
	codeEscape         = 0x1b
	codeLineFeed       = 0x0a
	codeCarriageReturn = 0x0d
	codeDelete         = 0x7f
)

// ncursesTerminal owns the real terminal: raw mode is acquired in
// OpenTerminal and released in Close, which is safe to call more than once
// and on any exit path.
type ncursesTerminal struct {
	window  *gc.Window
	restore sync.Once
}

func OpenTerminal() (Terminal, error) {
	window, err := gc.Init()
	if err != nil {
		return nil, err
	}
	gc.Echo(false)
	gc.CBreak(true)
	gc.Raw(true)
	gc.StartColor()
	window.Keypad(true)

	gc.InitColor(colorStatusFg, 247, 247, 247)
	gc.InitColor(colorStatusBg, 937, 937, 937)
	gc.InitPair(colorPairStatus, colorStatusFg, colorStatusBg)

	return &ncursesTerminal{window: window}, nil
}

func (t *ncursesTerminal) Size() Size {
	rows, cols := t.window.MaxYX()
	// The bottom two rows are reserved for the status and message bars.
	height := rows - 2
	if height < 0 {
		height = 0
	}
	return Size{Width: cols, Height: height}
}

func (t *ncursesTerminal) ReadKey() (quill.Key, error) {
	raw := t.window.GetChar()
	if raw == 0 {
		return quill.Key{Kind: quill.KeyUnknown}, errors.New("terminal input closed")
	}
	switch raw {
	case gc.KEY_UP:
		return quill.Key{Kind: quill.KeyUp}, nil
	case gc.KEY_DOWN:
		return quill.Key{Kind: quill.KeyDown}, nil
	case gc.KEY_LEFT:
		return quill.Key{Kind: quill.KeyLeft}, nil
	case gc.KEY_RIGHT:
		return quill.Key{Kind: quill.KeyRight}, nil
	case gc.KEY_PAGEUP:
		return quill.Key{Kind: quill.KeyPageUp}, nil
	case gc.KEY_PAGEDOWN:
		return quill.Key{Kind: quill.KeyPageDown}, nil
	case gc.KEY_HOME:
		return quill.Key{Kind: quill.KeyHome}, nil
	case gc.KEY_END:
		return quill.Key{Kind: quill.KeyEnd}, nil
	case gc.KEY_ENTER, codeLineFeed, codeCarriageReturn:
		return quill.Key{Kind: quill.KeyEnter}, nil
	case gc.KEY_BACKSPACE, codeDelete:
		return quill.Key{Kind: quill.KeyBackspace}, nil
	case gc.KEY_DC:
		return quill.Key{Kind: quill.KeyDelete}, nil
	case codeEscape:
		return quill.Key{Kind: quill.KeyEsc}, nil
	case '\t':
		return quill.Rune('\t'), nil
	}
	if raw >= 1 && raw <= 26 {
		return quill.Ctrl(rune('a' + raw - 1)), nil
	}
	if raw >= 32 && raw < 256 {
		return quill.Rune(rune(raw)), nil
	}
	return quill.Key{Kind: quill.KeyUnknown}, nil
}

func (t *ncursesTerminal) Render(frame Frame) error {
	t.window.Erase()
	for y, line := range frame.Lines {
		t.drawLine(y, line, frame.Highlight)
	}
	rows, _ := t.window.MaxYX()
	if rows >= 2 {
		t.window.ColorOn(colorPairStatus)
		t.window.MovePrint(rows-2, 0, frame.StatusBar)
		t.window.ColorOff(colorPairStatus)
		t.window.MovePrint(rows-1, 0, frame.MessageBar)
	}
	t.window.Move(frame.Cursor.Y, frame.Cursor.X)
	t.window.Refresh()
	return nil
}

// drawLine prints one text-area line, rendering occurrences of the active
// search term in reverse video.
func (t *ncursesTerminal) drawLine(y int, line, highlight string) {
	if highlight == "" || !strings.Contains(line, highlight) {
		t.window.MovePrint(y, 0, line)
		return
	}
	x := 0
	rest := line
	for {
		idx := strings.Index(rest, highlight)
		if idx < 0 {
			t.window.MovePrint(y, x, rest)
			return
		}
		t.window.MovePrint(y, x, rest[:idx])
		x += runewidth.StringWidth(rest[:idx])
		t.window.AttrOn(gc.A_REVERSE)
		t.window.MovePrint(y, x, highlight)
		t.window.AttrOff(gc.A_REVERSE)
		x += runewidth.StringWidth(highlight)
		rest = rest[idx+len(highlight):]
	}
}

func (t *ncursesTerminal) Clear() {
	t.window.Erase()
	t.window.Refresh()
}

func (t *ncursesTerminal) Close() {
	t.restore.Do(gc.End)
}
