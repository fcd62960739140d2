package internal

import (
	"errors"
	"time"

	"quill"
)

// fakeTerminal serves a scripted key sequence and records every rendered
// frame. Reading past the script returns an error, like a terminal whose
// input has gone away.
type fakeTerminal struct {
	size   Size
	keys   []quill.Key
	frames []Frame
}

func newFakeTerminal(width, height int, keys ...quill.Key) *fakeTerminal {
	return &fakeTerminal{size: Size{Width: width, Height: height}, keys: keys}
}

func (t *fakeTerminal) Size() Size { return t.size }

func (t *fakeTerminal) ReadKey() (quill.Key, error) {
	if len(t.keys) == 0 {
		return quill.Key{Kind: quill.KeyUnknown}, errors.New("script exhausted")
	}
	key := t.keys[0]
	t.keys = t.keys[1:]
	return key, nil
}

func (t *fakeTerminal) Render(frame Frame) error {
	t.frames = append(t.frames, frame)
	return nil
}

func (t *fakeTerminal) Clear() {}

func (t *fakeTerminal) Close() {}

func (t *fakeTerminal) lastFrame() Frame {
	if len(t.frames) == 0 {
		return Frame{}
	}
	return t.frames[len(t.frames)-1]
}

type fakeClipboard struct {
	text string
	err  error
}

func (c fakeClipboard) ReadAll() (string, error) { return c.text, c.err }

// fakeClock is an injectable clock the tests can advance by hand.
type fakeClock struct {
	current time.Time
}

func newFakeClock() *fakeClock {
	return &fakeClock{current: time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)}
}

func (c *fakeClock) Now() time.Time { return c.current }

func (c *fakeClock) Advance(d time.Duration) { c.current = c.current.Add(d) }

func docFromLines(lines ...string) *Document {
	doc := NewDocument()
	for _, line := range lines {
		doc.rows = append(doc.rows, newRow(line))
	}
	return doc
}

// testSession wires a session to fakes with timestamps off so status text is
// directly comparable.
func testSession(term *fakeTerminal, doc *Document) (*Session, *fakeClock) {
	cfg := DefaultConfig()
	cfg.StatusTimestamps = false
	clock := newFakeClock()
	s := newSession(term, doc, fakeClipboard{}, cfg, "ready")
	s.now = clock.Now
	s.start = clock.Now()
	return s, clock
}
