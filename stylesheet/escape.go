package stylesheet

import (
	"fmt"
	"strings"
)

// EscapeClass escapes a candidate token for use as a CSS class name,
// following the CSSOM identifier serialization rules.
func EscapeClass(token string) string {
	var b strings.Builder
	runes := []rune(token)

	for i, r := range runes {
		switch {
		case r == 0:
			b.WriteRune('�')
		case (r >= 0x01 && r <= 0x1f) || r == 0x7f:
			fmt.Fprintf(&b, "\\%x ", r)
		case i == 0 && r >= '0' && r <= '9':
			fmt.Fprintf(&b, "\\%x ", r)
		case i == 1 && r >= '0' && r <= '9' && runes[0] == '-':
			fmt.Fprintf(&b, "\\%x ", r)
		case i == 0 && r == '-' && len(runes) == 1:
			b.WriteString(`\-`)
		case r >= 0x80 || r == '-' || r == '_' ||
			(r >= '0' && r <= '9') || (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z'):
			b.WriteRune(r)
		default:
			b.WriteByte('\\')
			b.WriteRune(r)
		}
	}

	return b.String()
}

// ClassSelector returns the class selector for a candidate token.
func ClassSelector(token string) string {
	return "." + EscapeClass(token)
}
