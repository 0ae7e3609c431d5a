package tinyregex

// special lists the bytes that have a meaning in pattern syntax.
const special = `\.+*?()|[]{}^$`

// QuoteMeta returns a string that escapes all regular expression metacharacters
// inside the argument text; the returned string is a regular expression matching
// the literal text.
//
// Example:
//
//	escaped := tinyregex.QuoteMeta("1+1=2?")
//	// escaped = `1\+1=2\?`
//	re := tinyregex.MustCompile(escaped)
//	re.Matches("1+1=2?") // true
func QuoteMeta(s string) string {
	n := 0
	for i := 0; i < len(s); i++ {
		if isSpecial(s[i]) {
			n++
		}
	}
	if n == 0 {
		return s
	}

	buf := make([]byte, len(s)+n)
	j := 0
	for i := 0; i < len(s); i++ {
		if isSpecial(s[i]) {
			buf[j] = '\\'
			j++
		}
		buf[j] = s[i]
		j++
	}
	return string(buf)
}

func isSpecial(c byte) bool {
	for i := 0; i < len(special); i++ {
		if c == special[i] {
			return true
		}
	}
	return false
}
