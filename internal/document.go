package internal

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"quill"
)

type SearchDirection int

const (
	SearchForward SearchDirection = iota
	SearchBackward
)

// Row is a single document line without its trailing newline. Columns are
// rune indexes, so multibyte characters count as one cell.
type Row struct {
	chars []rune
}

func newRow(text string) *Row {
	return &Row{chars: []rune(text)}
}

func (r *Row) Len() int { return len(r.chars) }

func (r *Row) String() string { return string(r.chars) }

// Render returns the slice of the row visible between the start and end
// columns, clamped to the row's actual length.
func (r *Row) Render(start, end int) string {
	if end > len(r.chars) {
		end = len(r.chars)
	}
	if start > end {
		start = end
	}
	if start < 0 {
		start = 0
	}
	return string(r.chars[start:end])
}

func (r *Row) insert(at int, c rune) {
	if at >= len(r.chars) {
		r.chars = append(r.chars, c)
		return
	}
	r.chars = append(r.chars[:at], append([]rune{c}, r.chars[at:]...)...)
}

func (r *Row) delete(at int) {
	if at >= len(r.chars) {
		return
	}
	r.chars = append(r.chars[:at], r.chars[at+1:]...)
}

// split cuts the row at the given column and returns the tail as a new row.
func (r *Row) split(at int) *Row {
	if at > len(r.chars) {
		at = len(r.chars)
	}
	tail := newRow(string(r.chars[at:]))
	r.chars = r.chars[:at]
	return tail
}

func (r *Row) appendRow(other *Row) {
	r.chars = append(r.chars, other.chars...)
}

// find searches for query inside this row. Forward scans at and after the
// from column; backward scans strictly before it. Returns the match's rune
// column, or -1.
func (r *Row) find(query string, from int, direction SearchDirection) int {
	if from > len(r.chars) {
		from = len(r.chars)
	}
	if from < 0 {
		from = 0
	}
	if direction == SearchForward {
		after := string(r.chars[from:])
		idx := strings.Index(after, query)
		if idx < 0 {
			return -1
		}
		return from + utf8.RuneCountInString(after[:idx])
	}
	before := string(r.chars[:from])
	idx := strings.LastIndex(before, query)
	if idx < 0 {
		return -1
	}
	return utf8.RuneCountInString(before[:idx])
}

// Document is the row store the session edits. It owns dirtiness tracking
// and persistence; the session never touches row internals directly.
type Document struct {
	rows     []*Row
	FileName string
	dirty    bool
}

func NewDocument() *Document {
	return &Document{}
}

// OpenDocument reads a file into rows. Each element is one line without its
// ending '\n'; a final line without a terminator is kept as-is.
func OpenDocument(path string) (*Document, error) {
	contents, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	doc := &Document{FileName: path}
	current := strings.Builder{}
	for _, r := range string(contents) {
		if r == '\n' {
			doc.rows = append(doc.rows, newRow(current.String()))
			current.Reset()
		} else {
			current.WriteRune(r)
		}
	}
	if current.Len() > 0 {
		doc.rows = append(doc.rows, newRow(current.String()))
	}
	return doc, nil
}

func (d *Document) Len() int { return len(d.rows) }

func (d *Document) IsEmpty() bool { return len(d.rows) == 0 }

func (d *Document) Dirty() bool { return d.dirty }

// Row returns the row at the given index, or nil past the end.
func (d *Document) Row(y int) *Row {
	if y < 0 || y >= len(d.rows) {
		return nil
	}
	return d.rows[y]
}

// RowLen is the length of the row at y, treating missing rows as empty.
func (d *Document) RowLen(y int) int {
	if row := d.Row(y); row != nil {
		return row.Len()
	}
	return 0
}

// Rows returns every line's text in order, for snapshots.
func (d *Document) Rows() []string {
	lines := make([]string, len(d.rows))
	for i, row := range d.rows {
		lines[i] = row.String()
	}
	return lines
}

// Insert places c at the given position. A position one past the last row
// appends a new row; '\n' splits the row at the cursor.
func (d *Document) Insert(at quill.Position, c rune) {
	if at.Y > len(d.rows) {
		return
	}
	d.dirty = true
	if c == '\n' {
		d.insertNewline(at)
		return
	}
	if at.Y == len(d.rows) {
		d.rows = append(d.rows, newRow(string(c)))
		return
	}
	d.rows[at.Y].insert(at.X, c)
}

func (d *Document) insertNewline(at quill.Position) {
	if at.Y == len(d.rows) {
		d.rows = append(d.rows, newRow(""))
		return
	}
	tail := d.rows[at.Y].split(at.X)
	d.rows = append(d.rows[:at.Y+1], append([]*Row{tail}, d.rows[at.Y+1:]...)...)
}

// Delete removes the character at the given position. Deleting at the end of
// a row merges the next row into it.
func (d *Document) Delete(at quill.Position) {
	if at.Y >= len(d.rows) {
		return
	}
	d.dirty = true
	row := d.rows[at.Y]
	if at.X == row.Len() && at.Y+1 < len(d.rows) {
		row.appendRow(d.rows[at.Y+1])
		d.rows = append(d.rows[:at.Y+1], d.rows[at.Y+2:]...)
		return
	}
	row.delete(at.X)
}

// Find scans for query starting at from, forward toward the end of the
// document or backward toward the origin. The second return is false when no
// occurrence exists in that direction.
func (d *Document) Find(query string, from quill.Position, direction SearchDirection) (quill.Position, bool) {
	if query == "" {
		return quill.Position{}, false
	}
	pos := from
	for range d.rows {
		if pos.Y < 0 || pos.Y >= len(d.rows) {
			return quill.Position{}, false
		}
		if x := d.rows[pos.Y].find(query, pos.X, direction); x >= 0 {
			pos.X = x
			return pos, true
		}
		if direction == SearchForward {
			pos.Y++
			pos.X = 0
		} else {
			if pos.Y == 0 {
				return quill.Position{}, false
			}
			pos.Y--
			pos.X = d.rows[pos.Y].Len()
		}
	}
	return quill.Position{}, false
}

// Save writes the document back to its file name, one line per row with a
// trailing newline, and clears the dirty flag.
func (d *Document) Save() error {
	if d.FileName == "" {
		return fmt.Errorf("document has no file name")
	}
	contents := strings.Builder{}
	for _, row := range d.rows {
		contents.WriteString(row.String())
		contents.WriteString("\n")
	}
	if err := os.WriteFile(d.FileName, []byte(contents.String()), 0o666); err != nil {
		return err
	}
	d.dirty = false
	return nil
}

// FileType reports a display name for the document's extension.
func (d *Document) FileType() string {
	switch filepath.Ext(d.FileName) {
	case ".go":
		return "Go"
	case ".rs":
		return "Rust"
	case ".c", ".h":
		return "C"
	case ".md":
		return "Markdown"
	case ".txt":
		return "Text"
	default:
		return "No filetype"
	}
}
