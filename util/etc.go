package util

import (
	"strings"
	"golang.org/x/text/unicode/norm"
)

// FixUnicode normalizes a file name recovered from a container, so that
// names embedded on other platforms compare and display consistently.
func FixUnicode( in string ) string {
	return norm.NFC.String( in )
}

// BaseName strips any path components an embedded name may carry. Names
// are attacker-controlled data, they must never escape the output
// directory.
func BaseName( filename string ) string {
	parts := strings.Split( filename, "/" )
	if len(parts) == 1 {
		parts = strings.Split( filename, "\\" )
	}
	return parts[ len(parts)-1 ]
}
