package str

import "strings"

// ToScreamingSnakeCase transforms a given string into screaming snake case format.
// Runs of capitals are kept together, the last one starting a new word when a
// lowercase letter follows: XMLParser gives XML_PARSER, URL gives URL.
func ToScreamingSnakeCase(in string) string {
	in = strings.TrimSpace(in)
	if len(in) == 0 {
		return in
	}

	sb := strings.Builder{}
	sb.Grow(len(in) + len(in)/3) // estimate space for underscores

	var previous byte
	for i := 0; i < len(in); i++ {
		b := in[i]
		shouldWrite := true
		needsSeparator := false

		switch {
		case isLower(b):
			b -= 'a' - 'A' // convert to uppercase
		case isUpper(b):
			nextIsLower := i+1 < len(in) && isLower(in[i+1])
			needsSeparator = !isUpper(previous) || nextIsLower
		case b == '_' || b == '-':
			shouldWrite = false
			needsSeparator = true
		case isDigit(b):
			needsSeparator = !isDigit(previous)
		}

		if i > 0 && needsSeparator && previous != '_' && previous != '-' {
			sb.WriteByte('_')
		}

		if shouldWrite {
			sb.WriteByte(b)
		}
		previous = in[i]
	}

	return sb.String()
}

func isLower(b byte) bool { return 'a' <= b && b <= 'z' }

func isUpper(b byte) bool { return 'A' <= b && b <= 'Z' }

func isDigit(b byte) bool { return '0' <= b && b <= '9' }
