package game

import (
	"errors"
	"fmt"

	"github.com/atotto/clipboard"
)

var errClipboardUnsupported = errors.New("clipboard unsupported on this system")

// clipboardWriter is swapped in tests so no system clipboard is touched.
var clipboardWriter = func(s string) error {
	if clipboard.Unsupported {
		return errClipboardUnsupported
	}
	return clipboard.WriteAll(s)
}

// CopySceneASCII puts the ASCII rendering of s on the system clipboard.
func CopySceneASCII(s *Scene) error {
	if err := clipboardWriter(s.String()); err != nil {
		return fmt.Errorf("copy maze: %w", err)
	}
	return nil
}
