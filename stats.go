package dumpdiff

// Stats holds counts gathered during a diff, populated through
// OptionSetStats
type Stats struct {
	MissingInLeft  int `json:"missingInLeft,omitempty"`  // keys only the right tree has
	MissingInRight int `json:"missingInRight,omitempty"` // keys only the left tree has
	Mismatches     int `json:"mismatches,omitempty"`     // keys with unequal values
}

// Total returns the number of divergences counted
func (s Stats) Total() int {
	return s.MissingInLeft + s.MissingInRight + s.Mismatches
}

// KeyChange returns the net key-count shift between left & right trees
func (s Stats) KeyChange() int {
	return s.MissingInLeft - s.MissingInRight
}
