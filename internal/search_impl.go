package internal

import "quill"

// searchHook is the incremental search behavior layered on the prompt.
// Direction is sticky across keystrokes until an arrow changes it.
type searchHook struct {
	direction SearchDirection
}

func (h *searchHook) OnKey(s *Session, key quill.Key, query string) {
	moved := false
	switch key.Kind {
	case quill.KeyRight, quill.KeyDown:
		h.direction = SearchForward
		// Nudge one cell right so the search does not rematch the
		// current position.
		s.moveCursor(quill.KeyRight)
		moved = true
	case quill.KeyLeft, quill.KeyUp:
		h.direction = SearchBackward
	default:
		h.direction = SearchForward
	}

	if pos, found := s.doc.Find(query, s.cursor, h.direction); found {
		s.cursor = pos
		s.scroll()
	} else if moved {
		// A failed lookup must not displace the cursor.
		s.moveCursor(quill.KeyLeft)
	}
	s.highlighted = query
}

// search runs the interactive find. Cancelling restores the cursor to where
// it was before the prompt; a finished search leaves it at the last match.
func (s *Session) search() {
	saved := s.cursor
	query, ok := s.prompt("search (esc: cancel, arrows: navigate): ", &searchHook{direction: SearchForward})
	if !ok || query == "" {
		s.cursor = saved
		s.scroll()
	}
	s.highlighted = ""
}
