package sitedump

import "strings"

const filenameValidChars = "-_.() abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// SanitizeFilename drops every character outside a small allow-list, leaving a
// name that's safe on any filesystem we care about.  There is no collision
// handling: two names that sanitize identically will overwrite each other's
// output.
func SanitizeFilename(name string) string {
	var b strings.Builder
	b.Grow(len(name))
	for _, char := range name {
		if strings.ContainsRune(filenameValidChars, char) {
			b.WriteRune(char)
		}
	}
	return b.String()
}
