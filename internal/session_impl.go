package internal

import (
	"fmt"
	"time"

	"quill"
)

// NewSession assembles the one Session the process runs. The initial status
// line is whatever the caller wants shown first (the key binding help, or a
// startup warning).
func NewSession(term Terminal, doc *Document, clip Clipboard, cfg Config, initialStatus string) quill.Editor {
	return newSession(term, doc, clip, cfg, initialStatus)
}

func newSession(term Terminal, doc *Document, clip Clipboard, cfg Config, initialStatus string) *Session {
	s := &Session{
		term:      term,
		doc:       doc,
		clip:      clip,
		cfg:       cfg,
		now:       time.Now,
		quitTimes: cfg.QuitConfirmations,
	}
	s.start = s.now()
	s.emit(initialStatus)
	return s
}

// Session owns the terminal and the document exclusively for the lifetime of
// the process. Everything runs on the calling goroutine; the only suspension
// point is the blocking key read.
type Session struct {
	term Terminal
	doc  *Document
	clip Clipboard
	cfg  Config
	now  func() time.Time

	cursor      quill.Position
	offset      quill.Position
	status      StatusMessage
	shouldQuit  bool
	quitTimes   int
	highlighted string
	sinceBackup int
	start       time.Time
}

var _ quill.Editor = (*Session)(nil)

// Run drives render → read → dispatch → rescroll until a quit condition.
// A render or read failure is unrecoverable: one backup attempt is made and
// the error is returned for the caller to surface once the terminal is
// restored.
func (s *Session) Run() error {
	for {
		if err := s.refresh(); err != nil {
			s.Backup()
			return fmt.Errorf("rendering frame: %w", err)
		}
		key, err := s.term.ReadKey()
		if err != nil {
			s.Backup()
			return fmt.Errorf("reading key: %w", err)
		}
		s.processKey(key)
		if s.shouldQuit {
			s.term.Clear()
			return nil
		}
	}
}

func (s *Session) Close() {
	s.term.Close()
}

// processKey maps one decoded key to its action. Every key counts toward the
// automatic backup threshold, and any non-quit key rearms the quit
// confirmation counter.
func (s *Session) processKey(key quill.Key) {
	s.sinceBackup++
	if s.sinceBackup >= s.cfg.BackupEveryKeystrokes {
		s.Backup()
	}

	quitPressed := false
	switch {
	case key.Kind == quill.KeyCtrl && key.Rune == 'q':
		quitPressed = true
		s.quit()
	case key.Kind == quill.KeyCtrl && key.Rune == 's':
		s.save()
	case key.Kind == quill.KeyCtrl && key.Rune == 'f':
		s.search()
	case key.Kind == quill.KeyCtrl && key.Rune == 'b':
		s.Backup()
	case key.Kind == quill.KeyCtrl && key.Rune == 'v':
		s.paste()
	case key.Kind == quill.KeyCtrl && key.Rune == 'x':
		s.commandMode()
	case key.Kind == quill.KeyRune:
		s.doc.Insert(s.cursor, key.Rune)
		s.moveCursor(quill.KeyRight)
	case key.Kind == quill.KeyEnter:
		s.doc.Insert(s.cursor, '\n')
		s.moveCursor(quill.KeyRight)
	case key.Kind == quill.KeyDelete:
		s.doc.Delete(s.cursor)
	case key.Kind == quill.KeyBackspace:
		if s.cursor.X > 0 || s.cursor.Y > 0 {
			s.moveCursor(quill.KeyLeft)
			s.doc.Delete(s.cursor)
		}
	case isNavigation(key.Kind):
		s.moveCursor(key.Kind)
	}
	s.scroll()

	if !quitPressed && s.quitTimes < s.cfg.QuitConfirmations {
		s.quitTimes = s.cfg.QuitConfirmations
		s.status = StatusMessage{}
	}
}

// quit applies the confirmation protocol: a dirty document needs the quit
// chord pressed until the counter runs out; a clean one quits immediately.
func (s *Session) quit() {
	if s.doc.Dirty() && s.quitTimes > 0 {
		s.quitTimes--
		if s.quitTimes > 0 {
			s.emitf("warning: unsaved changes. press ctrl-q %d more times to quit.", s.quitTimes)
			return
		}
	}
	s.shouldQuit = true
}

func (s *Session) save() {
	if s.doc.FileName == "" {
		name, ok := s.prompt("save as: ", nopHook{})
		if !ok {
			s.emit("save aborted")
			return
		}
		s.doc.FileName = name
	}
	if err := s.doc.Save(); err != nil {
		s.emitf("error saving: %v", err)
		return
	}
	s.emit("file saved")
}

// paste inserts the clipboard text at the cursor. Iterating the text in
// reverse against a fixed insertion point keeps the characters in their
// original left-to-right order; the cursor then advances once per character.
func (s *Session) paste() {
	text, err := s.clip.ReadAll()
	if err != nil {
		s.emitf("clipboard unavailable: %v", err)
		return
	}
	runes := []rune(text)
	for i := len(runes) - 1; i >= 0; i-- {
		s.doc.Insert(s.cursor, runes[i])
	}
	for range runes {
		s.moveCursor(quill.KeyRight)
	}
	s.emit("pasted")
}

// commandMode accumulates characters and echoes them as the live status.
// Any non-character key leaves the mode. Nothing is ever executed; the
// buffer is display-only.
func (s *Session) commandMode() {
	command := "::"
	for {
		key, err := s.term.ReadKey()
		if err != nil {
			return
		}
		if key.Kind != quill.KeyRune {
			return
		}
		command += string(key.Rune)
		s.emit(command)
		if err := s.refresh(); err != nil {
			return
		}
	}
}

// emit replaces the live status message, prefixed with the elapsed session
// seconds when configured.
func (s *Session) emit(text string) {
	if s.cfg.StatusTimestamps {
		text = fmt.Sprintf("[%d] %s", int(s.now().Sub(s.start).Seconds()), text)
	}
	s.status = StatusMessage{Text: text, CreatedAt: s.now()}
}

func (s *Session) emitf(format string, args ...any) {
	s.emit(fmt.Sprintf(format, args...))
}

func isNavigation(kind quill.KeyKind) bool {
	switch kind {
	case quill.KeyUp, quill.KeyDown, quill.KeyLeft, quill.KeyRight,
		quill.KeyPageUp, quill.KeyPageDown, quill.KeyHome, quill.KeyEnd:
		return true
	}
	return false
}
