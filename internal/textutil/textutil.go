package textutil

// ReplaceAt sets s[i] to with if i is a valid index of s and reports whether it did.
// Out of range indices are ignored.
func ReplaceAt(s []string, i int, with string) bool {
	if i < 0 || i >= len(s) {
		return false
	}
	s[i] = with
	return true
}
