package quill

// KeyKind discriminates the decoded key events the terminal layer produces.
// The editor only ever sees these; raw escape sequences and ncurses key codes
// never leave the terminal implementation.
type KeyKind int

const (
	// KeyRune is a printable character; Key.Rune holds it.
	KeyRune KeyKind = iota
	// KeyCtrl is a control chord; Key.Rune holds the lowercase letter.
	KeyCtrl
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
	KeyPageUp
	KeyPageDown
	KeyHome
	KeyEnd
	KeyEnter
	KeyBackspace
	KeyDelete
	KeyEsc
	// KeyUnknown is anything the terminal could not decode. Dispatch ignores it.
	KeyUnknown
)

type Key struct {
	Kind KeyKind
	Rune rune
}

// Rune wraps a printable character as a key event.
func Rune(r rune) Key { return Key{Kind: KeyRune, Rune: r} }

// Ctrl wraps a control chord, e.g. Ctrl('q') for Ctrl-Q.
func Ctrl(letter rune) Key { return Key{Kind: KeyCtrl, Rune: letter} }
