package store

const maxSegmentLen = 50

// Sanitize normalizes a raw identifier into a safe path segment: lower-cased,
// every character outside [a-z0-9-] replaced with '-', truncated to 50
// characters. It never fails; empty or all-invalid input yields a degenerate
// but legal identifier.
func Sanitize(raw string) string {
	out := make([]byte, 0, len(raw))
	for _, r := range raw {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9', r == '-':
			out = append(out, byte(r))
		case r >= 'A' && r <= 'Z':
			out = append(out, byte(r)+('a'-'A'))
		default:
			out = append(out, '-')
		}
		if len(out) == maxSegmentLen {
			break
		}
	}
	return string(out)
}

// validSegment reports whether s is already a sanitized identifier, i.e.
// non-empty and unchanged by Sanitize. Path segments arriving from the
// outside (get/delete) must pass this check before touching the filesystem,
// so a traversal attempt can never resolve to a stored prompt.
func validSegment(s string) bool {
	return s != "" && s == Sanitize(s)
}
