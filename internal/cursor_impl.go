package internal

import "quill"

// moveCursor applies one navigation step in document coordinates. The cursor
// may rest one past the end of a row and one past the last row; after any
// move the column is re-clamped to the target row's length.
func (s *Session) moveCursor(direction quill.KeyKind) {
	x, y := s.cursor.X, s.cursor.Y
	height := s.doc.Len()
	width := s.doc.RowLen(y)
	pageSize := s.term.Size().Height

	switch direction {
	case quill.KeyUp:
		if y > 0 {
			y--
		}
	case quill.KeyDown:
		if y < height {
			y++
		}
	case quill.KeyLeft:
		if x > 0 {
			x--
		} else if y > 0 {
			y--
			x = s.doc.RowLen(y)
		}
	case quill.KeyRight:
		if x < width {
			x++
		} else if y < height {
			y++
			x = 0
		}
	case quill.KeyPageUp:
		if y > pageSize {
			y -= pageSize
		} else {
			y = 0
		}
	case quill.KeyPageDown:
		if y+pageSize < height {
			y += pageSize
		} else {
			y = height
		}
	case quill.KeyHome:
		x = 0
	case quill.KeyEnd:
		x = width
	}

	if w := s.doc.RowLen(y); x > w {
		x = w
	}
	s.cursor = quill.Position{X: x, Y: y}
}

// scroll slides the viewport the minimum distance needed to contain the
// cursor. An axis is only touched when the cursor has left the window on
// that axis, and the offset never goes negative.
func (s *Session) scroll() {
	size := s.term.Size()
	if size.Width <= 0 || size.Height <= 0 {
		return
	}
	if s.cursor.Y < s.offset.Y {
		s.offset.Y = s.cursor.Y
	} else if s.cursor.Y >= s.offset.Y+size.Height {
		s.offset.Y = s.cursor.Y - size.Height + 1
	}
	if s.cursor.X < s.offset.X {
		s.offset.X = s.cursor.X
	} else if s.cursor.X >= s.offset.X+size.Width {
		s.offset.X = s.cursor.X - size.Width + 1
	}
	if s.offset.Y < 0 {
		s.offset.Y = 0
	}
	if s.offset.X < 0 {
		s.offset.X = 0
	}
}
