package app

import (
	"errors"
	"sync"

	"golang.design/x/clipboard"
)

var ErrClipboardEmpty = errors.New("clipboard holds no text")

// SystemClipboard is the OS text clipboard.
type SystemClipboard struct{}

var (
	clipboardOnce sync.Once
	clipboardErr  error
)

// NewSystemClipboard initializes the OS clipboard. It fails on headless
// systems, where the editor runs without clipboard support.
func NewSystemClipboard() (*SystemClipboard, error) {
	clipboardOnce.Do(func() {
		clipboardErr = clipboard.Init()
	})
	if clipboardErr != nil {
		return nil, clipboardErr
	}
	return &SystemClipboard{}, nil
}

func (SystemClipboard) ReadText() ([]byte, error) {
	data := clipboard.Read(clipboard.FmtText)
	if len(data) == 0 {
		return nil, ErrClipboardEmpty
	}
	return data, nil
}

func (SystemClipboard) WriteText(data []byte) error {
	clipboard.Write(clipboard.FmtText, data)
	return nil
}
