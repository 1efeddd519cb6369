package comparison

import "price-compare/internal/dto"

// Recommend scores both products on three criteria, one point each: lower minimum
// price, smaller absolute 3-month move, more negative 3-month move. Ties give no point.
func Recommend(a, b ProductSnapshot) dto.Recommendation {
	var (
		scoreA, scoreB     int
		reasonsA, reasonsB []string
	)

	award := func(aWins, bWins bool, reason string) {
		switch {
		case aWins:
			scoreA++
			reasonsA = append(reasonsA, reason)
		case bWins:
			scoreB++
			reasonsB = append(reasonsB, reason)
		}
	}

	deltaA := a.Trend.ThreeMonth.Delta
	deltaB := b.Trend.ThreeMonth.Delta

	award(a.MinPrice < b.MinPrice, b.MinPrice < a.MinPrice, dto.ReasonCheaper)
	award(abs(deltaA) < abs(deltaB), abs(deltaB) < abs(deltaA), dto.ReasonStable)
	award(deltaA < deltaB, deltaB < deltaA, dto.ReasonDownTrend)

	switch {
	case scoreA > scoreB:
		return dto.Recommendation{Product: dto.LabelProductA, Reasons: reasonsA, ScoreA: scoreA, ScoreB: scoreB}
	case scoreB > scoreA:
		return dto.Recommendation{Product: dto.LabelProductB, Reasons: reasonsB, ScoreA: scoreA, ScoreB: scoreB}
	default:
		return dto.Recommendation{
			Product: dto.VerdictBothAlike,
			Reasons: []string{dto.ReasonPreference},
			ScoreA:  scoreA,
			ScoreB:  scoreB,
		}
	}
}
