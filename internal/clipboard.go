package internal

import "github.com/atotto/clipboard"

// Clipboard is the paste source. Only reading is needed; the editor never
// copies back out.
type Clipboard interface {
	ReadAll() (string, error)
}

type systemClipboard struct{}

func (systemClipboard) ReadAll() (string, error) {
	return clipboard.ReadAll()
}

// SystemClipboard returns the OS clipboard.
func SystemClipboard() Clipboard {
	return systemClipboard{}
}
