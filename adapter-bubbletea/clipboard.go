package bubble_adapter

import (
	"github.com/atotto/clipboard"
	"github.com/ionut-t/minivi/core"
)

type atottoClipboard struct{}

func (atottoClipboard) Write(text string) error {
	return clipboard.WriteAll(text)
}

func (atottoClipboard) Read() (string, error) {
	return clipboard.ReadAll()
}

// SystemClipboard returns the system clipboard, or nil when no clipboard
// utility is available on this machine.
func SystemClipboard() core.Clipboard {
	if clipboard.Unsupported {
		return nil
	}
	return atottoClipboard{}
}
