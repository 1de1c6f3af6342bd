package state

import (
	"errors"
	"fmt"
	"strings"
)

// ErrNoSignal is returned when exporting before a signal was generated.
var ErrNoSignal = errors.New("no signal generated")

// CardFilename is the download name of the exported card image.
const CardFilename = "silent-signal.png"

// ClipboardText formats a generated signal as the plain-text block copied to
// the clipboard.
func ClipboardText(sig *Signal) (string, error) {
	if sig == nil {
		return "", ErrNoSignal
	}

	var sb strings.Builder
	sb.WriteString("Silent Signal\n")
	sb.WriteString(fmt.Sprintf("Moods: %s\n", strings.Join(sig.Moods, ", ")))
	sb.WriteString(fmt.Sprintf("Context: %s\n", sig.Context))
	sb.WriteString("\n")
	sb.WriteString(fmt.Sprintf("Summary: %s\n", sig.Summary))
	sb.WriteString("\n")
	sb.WriteString(fmt.Sprintf("How to respond: %s", sig.Respond))
	return sb.String(), nil
}
