package quill

// Editor - The main interface that represents the program. At any point there
// will be just one instantiation of Editor. Run owns the whole
// render/read/dispatch loop and only returns once the user quits or the
// terminal becomes unusable; Close releases the document's resources and may
// be called on any exit path.
type Editor interface {
	Run() error
	Close()
}

// Position is a zero-based (column, row) pair in document coordinates. Both
// one-past-end of a row and one-past-end of the document are valid positions,
// so a Position is also where the next character would be inserted.
type Position struct {
	X int
	Y int
}
