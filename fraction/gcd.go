package fraction

// GCD returns the greatest common divisor of a and b (Euclid's algorithm).
//
// GCD(a, 0) == a for any a, including GCD(0, 0) == 0.
func GCD(a, b uint32) uint32 {
	for b != 0 {
		a, b = b, a%b
	}
	return a
}
