// Package models defines the data structures for the loan approval simulator.
package models

// CreditBand is one row of the credit score guide.
type CreditBand struct {
	Min         int    `json:"min" yaml:"min"`
	Max         int    `json:"max" yaml:"max"`
	Stars       int    `json:"stars" yaml:"stars"`
	Rating      string `json:"rating" yaml:"rating"`
	Description string `json:"description" yaml:"description"`
}

// CreditBands returns the credit score guide, best band first.
func CreditBands() []CreditBand {
	return []CreditBand{
		{Min: 800, Max: 850, Stars: 5, Rating: "Excellent", Description: "Very high approval chance"},
		{Min: 740, Max: 799, Stars: 4, Rating: "Very Good", Description: "Good interest rates"},
		{Min: 670, Max: 739, Stars: 3, Rating: "Fair", Description: "Average approval odds"},
		{Min: 580, Max: 669, Stars: 2, Rating: "Poor", Description: "Low approval chance"},
		{Min: 300, Max: 579, Stars: 1, Rating: "Very Poor", Description: "Unlikely to be approved"},
	}
}

// BandFor returns the guide band containing the score. Fractional scores
// fall into the band of their integer part. ok is false outside 300-850.
func BandFor(score float64) (band CreditBand, ok bool) {
	if score < MinCreditScore || score > MaxCreditScore {
		return CreditBand{}, false
	}
	whole := int(score)
	for _, b := range CreditBands() {
		if whole >= b.Min && whole <= b.Max {
			return b, true
		}
	}
	return CreditBand{}, false
}
