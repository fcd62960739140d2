package internal

import (
	"fmt"
	"strings"

	"github.com/mattn/go-runewidth"

	"quill"
)

// refresh assembles a complete frame from the current session state and
// hands it to the terminal.
func (s *Session) refresh() error {
	size := s.term.Size()
	frame := Frame{
		Lines:     make([]string, 0, size.Height),
		Highlight: s.highlighted,
		Cursor: quill.Position{
			X: s.cursor.X - s.offset.X,
			Y: s.cursor.Y - s.offset.Y,
		},
	}
	for screenY := 0; screenY < size.Height; screenY++ {
		y := s.offset.Y + screenY
		if row := s.doc.Row(y); row != nil {
			frame.Lines = append(frame.Lines, row.Render(s.offset.X, s.offset.X+size.Width))
		} else if s.doc.IsEmpty() && screenY == size.Height/3 {
			frame.Lines = append(frame.Lines, welcomeLine(size.Width))
		} else {
			frame.Lines = append(frame.Lines, "~")
		}
	}
	frame.StatusBar = s.statusBar(size.Width)
	frame.MessageBar = s.messageBar(size.Width)
	return s.term.Render(frame)
}

func welcomeLine(width int) string {
	message := fmt.Sprintf("quill v%s", quill.Version)
	if padding := (width - runewidth.StringWidth(message)) / 2; padding > 1 {
		message = "~" + strings.Repeat(" ", padding-1) + message
	}
	return runewidth.Truncate(message, width, "")
}

// statusBar is "<name> - <N> lines<(modified)?>" left-aligned and
// "<filetype> | <line>/<total>" right-aligned, truncated to the width.
func (s *Session) statusBar(width int) string {
	name := "[No Name]"
	if s.doc.FileName != "" {
		name = runewidth.Truncate(s.doc.FileName, 20, "")
	}
	modified := ""
	if s.doc.Dirty() {
		modified = " (modified)"
	}
	left := fmt.Sprintf("%s - %d lines%s", name, s.doc.Len(), modified)
	right := fmt.Sprintf("%s | %d/%d", s.doc.FileType(), s.cursor.Y+1, s.doc.Len())

	padding := width - runewidth.StringWidth(left) - runewidth.StringWidth(right)
	if padding < 0 {
		padding = 0
	}
	return runewidth.Truncate(left+strings.Repeat(" ", padding)+right, width, "")
}

// messageBar shows the live status while it is within its visibility window,
// and goes blank once it expires.
func (s *Session) messageBar(width int) string {
	if !s.status.Visible(s.now(), s.cfg.StatusMessageTTL) {
		return ""
	}
	return runewidth.Truncate(s.status.Text, width, "")
}
