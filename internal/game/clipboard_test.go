package game

import (
	"errors"
	"testing"
)

func swapClipboard(t *testing.T, fn func(string) error) {
	t.Helper()
	prev := clipboardWriter
	clipboardWriter = fn
	t.Cleanup(func() { clipboardWriter = prev })
}

func TestCopySceneASCIIWritesString(t *testing.T) {
	var got string
	swapClipboard(t, func(s string) error {
		got = s
		return nil
	})
	s := MustParseScene(exitCorridor...)
	if err := CopySceneASCII(s); err != nil {
		t.Fatalf("copy: %v", err)
	}
	if got != s.String() {
		t.Fatalf("clipboard got %q, want %q", got, s.String())
	}
}

func TestCopySceneASCIIWrapsError(t *testing.T) {
	swapClipboard(t, func(string) error { return errClipboardUnsupported })
	err := CopySceneASCII(MustParseScene(exitCorridor...))
	if !errors.Is(err, errClipboardUnsupported) {
		t.Fatalf("expected wrapped unsupported error, got %v", err)
	}
}
