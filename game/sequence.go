package game

// SequenceEqual reports whether two sequences hold the same regions in the
// same order. Playback cancellation treats any difference as a new round's
// secret, so a nil and an empty sequence compare equal on purpose.
func SequenceEqual(a, b []Region) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// CloneSequence returns an independent copy so the coordinator can detect
// in-place mutation of the caller's slice between ticks
func CloneSequence(s []Region) []Region {
	if len(s) == 0 {
		return nil
	}
	out := make([]Region, len(s))
	copy(out, s)
	return out
}
