package internal

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"quill"
)

// recordingHook captures every OnKey invocation.
type recordingHook struct {
	keys   []quill.Key
	inputs []string
}

func (h *recordingHook) OnKey(_ *Session, key quill.Key, input string) {
	h.keys = append(h.keys, key)
	h.inputs = append(h.inputs, input)
}

func TestPromptCollectsInput(t *testing.T) {
	term := newFakeTerminal(20, 4,
		quill.Rune('h'), quill.Rune('i'), quill.Key{Kind: quill.KeyEnter})
	s, _ := testSession(term, NewDocument())

	result, ok := s.prompt("say: ", nopHook{})

	assert.True(t, ok)
	assert.Equal(t, "hi", result)
}

func TestPromptEscapeCancelsRegardlessOfTypedText(t *testing.T) {
	term := newFakeTerminal(20, 4,
		quill.Rune('h'), quill.Rune('i'), quill.Key{Kind: quill.KeyEsc})
	s, _ := testSession(term, NewDocument())

	result, ok := s.prompt("say: ", nopHook{})

	assert.False(t, ok)
	assert.Empty(t, result)
}

func TestPromptBackspaceTrimsInput(t *testing.T) {
	term := newFakeTerminal(20, 4,
		quill.Rune('h'), quill.Rune('i'),
		quill.Key{Kind: quill.KeyBackspace}, quill.Key{Kind: quill.KeyEnter})
	s, _ := testSession(term, NewDocument())

	result, ok := s.prompt("say: ", nopHook{})

	assert.True(t, ok)
	assert.Equal(t, "h", result)
}

func TestPromptEmptyEnterYieldsNoResult(t *testing.T) {
	term := newFakeTerminal(20, 4, quill.Key{Kind: quill.KeyEnter})
	s, _ := testSession(term, NewDocument())

	_, ok := s.prompt("say: ", nopHook{})

	assert.False(t, ok)
}

func TestPromptIgnoresControlRunes(t *testing.T) {
	term := newFakeTerminal(20, 4,
		quill.Rune('a'), quill.Rune('\t'), quill.Rune('b'), quill.Key{Kind: quill.KeyEnter})
	s, _ := testSession(term, NewDocument())

	result, ok := s.prompt("say: ", nopHook{})

	assert.True(t, ok)
	assert.Equal(t, "ab", result)
}

func TestPromptHookSeesEveryKeyIncludingTerminator(t *testing.T) {
	term := newFakeTerminal(20, 4,
		quill.Rune('a'), quill.Key{Kind: quill.KeyEnter})
	s, _ := testSession(term, NewDocument())
	hook := &recordingHook{}

	s.prompt("say: ", hook)

	assert.Equal(t, []quill.Key{quill.Rune('a'), {Kind: quill.KeyEnter}}, hook.keys)
	assert.Equal(t, []string{"a", "a"}, hook.inputs)
}

func TestPromptHookSeesEscapeWithClearedInput(t *testing.T) {
	term := newFakeTerminal(20, 4,
		quill.Rune('a'), quill.Key{Kind: quill.KeyEsc})
	s, _ := testSession(term, NewDocument())
	hook := &recordingHook{}

	s.prompt("say: ", hook)

	assert.Equal(t, []string{"a", ""}, hook.inputs)
}

func TestPromptShowsLabelAndInputAsLiveStatus(t *testing.T) {
	term := newFakeTerminal(40, 4,
		quill.Rune('a'), quill.Rune('b'), quill.Key{Kind: quill.KeyEnter})
	s, _ := testSession(term, NewDocument())

	s.prompt("search: ", nopHook{})

	// Frames were rendered before each key: "", "a", "ab".
	assert.Equal(t, "search: ", term.frames[0].MessageBar)
	assert.Equal(t, "search: a", term.frames[1].MessageBar)
	assert.Equal(t, "search: ab", term.frames[2].MessageBar)
}

func TestPromptClearsStatusOnReturn(t *testing.T) {
	term := newFakeTerminal(20, 4, quill.Key{Kind: quill.KeyEnter})
	s, _ := testSession(term, NewDocument())

	s.prompt("say: ", nopHook{})

	assert.Empty(t, s.status.Text)
}
