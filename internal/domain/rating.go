package domain

// Rating is the qualitative attendance tier of a member.
type Rating string

const (
	RatingExcellent Rating = "Excellent"
	RatingAverage   Rating = "Average"
	RatingPoor      Rating = "Poor"
)

// Thresholds are exclusive lower bounds: 11+ is Excellent, 6..10 is Average.
const (
	RatingExcellentAbove = 10
	RatingAverageAbove   = 5
)

func (r Rating) String() string { return string(r) }

func (r Rating) IsValid() bool {
	switch r {
	case RatingExcellent, RatingAverage, RatingPoor:
		return true
	}
	return false
}

// Rank orders ratings best-first (Excellent=1, Average=2, Poor=3).
func (r Rating) Rank() int {
	switch r {
	case RatingExcellent:
		return 1
	case RatingAverage:
		return 2
	default:
		return 3
	}
}

// RatingFor classifies an attendance count. Total over all non-negative counts.
func RatingFor(count int) Rating {
	switch {
	case count > RatingExcellentAbove:
		return RatingExcellent
	case count > RatingAverageAbove:
		return RatingAverage
	default:
		return RatingPoor
	}
}
