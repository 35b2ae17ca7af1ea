package pricing

// Candidate is the part of a harvest listing the matching rule looks at.
type Candidate struct {
	ID           uint
	CropName     string
	Quantity     float64
	UrgencyScore int
}

// Eligible reports whether the candidate can serve a demand for quantity
// units of cropName. Crop names are compared exactly.
func (c Candidate) Eligible(cropName string, quantity float64) bool {
	return c.CropName == cropName && c.Quantity >= quantity
}

// SelectBest returns the index of the eligible candidate with the highest
// urgency score, or -1 when none is eligible. Equal scores go to the lowest
// ID so the result does not depend on the order the store returned rows in.
func SelectBest(candidates []Candidate, cropName string, quantity float64) int {
	best := -1
	for i, c := range candidates {
		if !c.Eligible(cropName, quantity) {
			continue
		}
		if best == -1 {
			best = i
			continue
		}
		b := candidates[best]
		if c.UrgencyScore > b.UrgencyScore || (c.UrgencyScore == b.UrgencyScore && c.ID < b.ID) {
			best = i
		}
	}
	return best
}
