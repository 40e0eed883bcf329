package readings

// SortByTemperature returns a new collection with the readings of c ordered
// by ascending temperature. c itself is left untouched.
//
// Each reading, taken in the original order, is inserted immediately before
// the first already placed reading whose temperature is strictly greater, or
// at the end when there is none. Readings with equal temperatures therefore
// keep their input order.
func SortByTemperature(c *Collection) *Collection {
	sorted := New(c.Len())

	for _, r := range c.items {
		pos := len(sorted.items)
		for i, placed := range sorted.items {
			if placed.Temperature > r.Temperature {
				pos = i
				break
			}
		}

		// Grow by one and shift the tail right to open a slot at pos
		sorted.items = append(sorted.items, r)
		copy(sorted.items[pos+1:], sorted.items[pos:len(sorted.items)-1])
		sorted.items[pos] = r
	}

	return sorted
}
