package config

import (
	"strings"
	"unicode"
)

const badFileName = "_bad_file_name_"

// CleanFileName makes a single path element out of arbitrary text: path
// separators and characters the platform does not allow are removed, leading
// dots are trimmed so result is never hidden or relative.
func CleanFileName(in string) string {
	out := strings.Map(func(r rune) rune {
		if unicode.IsControl(r) || strings.ContainsRune(forbiddenNameChars, r) {
			return -1
		}
		return r
	}, in)
	out = strings.TrimLeft(out, ".")
	out = strings.TrimRight(out, trimNameSuffix)
	if len(out) == 0 || reservedName(out) {
		return badFileName
	}
	return out
}
