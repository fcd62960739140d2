package internal

import (
	"unicode"

	"quill"
)

// PromptHook observes every key applied during a prompt, including the
// Enter or Escape that ends it. It gets the session explicitly so call
// sites react to live input without capturing mutable state in a closure.
type PromptHook interface {
	OnKey(s *Session, key quill.Key, input string)
}

// nopHook is for prompts that only want the final string.
type nopHook struct{}

func (nopHook) OnKey(*Session, quill.Key, string) {}

// prompt collects a line of input, showing label plus the text typed so far
// as the live status. Enter finalizes, Escape cancels, Backspace trims.
// Returns the collected string; ok is false when the prompt was cancelled or
// the input empty. The status is cleared on return.
func (s *Session) prompt(label string, hook PromptHook) (result string, ok bool) {
	var input []rune
	done := false
	for !done {
		s.emit(label + string(input))
		if err := s.refresh(); err != nil {
			return "", false
		}
		key, err := s.term.ReadKey()
		if err != nil {
			return "", false
		}
		switch key.Kind {
		case quill.KeyBackspace:
			if len(input) > 0 {
				input = input[:len(input)-1]
			}
		case quill.KeyEnter:
			done = true
		case quill.KeyEsc:
			input = input[:0]
			done = true
		case quill.KeyRune:
			if !unicode.IsControl(key.Rune) {
				input = append(input, key.Rune)
			}
		}
		// The hook runs after the key is applied, even for the
		// terminating key, so call sites see the final state before the
		// loop exits.
		hook.OnKey(s, key, string(input))
	}
	s.status = StatusMessage{}
	if len(input) == 0 {
		return "", false
	}
	return string(input), true
}
