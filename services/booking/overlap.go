package booking

// Overlaps reports whether two half-open time intervals intersect.
// Each interval is (start, duration) in minutes from midnight.
// Touching endpoints do not overlap: 10:00–11:00 vs 11:00–12:00 is
// false, so back-to-back appointments are allowed.
func Overlaps(start1, duration1, start2, duration2 int) bool {
	end1 := start1 + duration1
	end2 := start2 + duration2
	return !(end1 <= start2 || end2 <= start1)
}
