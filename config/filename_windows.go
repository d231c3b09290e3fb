//go:build windows

package config

import (
	"os"
	"strings"

	"golang.org/x/sys/windows"
	"golang.org/x/term"
)

const (
	forbiddenNameChars = `<>":/\|?*;`
	// names ending with dot or space cannot be opened
	trimNameSuffix = ". "
)

var deviceNames = []string{"CON", "PRN", "AUX", "NUL",
	"COM1", "COM2", "COM3", "COM4", "COM5", "COM6", "COM7", "COM8", "COM9",
	"LPT1", "LPT2", "LPT3", "LPT4", "LPT5", "LPT6", "LPT7", "LPT8", "LPT9"}

func reservedName(name string) bool {
	base, _, _ := strings.Cut(name, ".")
	for _, d := range deviceNames {
		if strings.EqualFold(base, d) {
			return true
		}
	}
	return false
}

// EnableColorOutput reports whether stream is a console and turns on VT100
// sequence processing for it. Consoles older than Windows 10 refuse the mode.
func EnableColorOutput(stream *os.File) bool {
	if !term.IsTerminal(int(stream.Fd())) {
		return false
	}
	h := windows.Handle(stream.Fd())
	var mode uint32
	if err := windows.GetConsoleMode(h, &mode); err != nil {
		return false
	}
	return windows.SetConsoleMode(h, mode|windows.ENABLE_VIRTUAL_TERMINAL_PROCESSING) == nil
}
