package services

import "github.com/shopspring/decimal"

// computePoints converts spend to points: floor(price * pointsPerDollar).
// Prices carry two decimal places, so the multiplication is done in decimal
// space before flooring rather than in float64.
func computePoints(price float64, pointsPerDollar int) int {
	points := decimal.NewFromFloat(price).
		Mul(decimal.NewFromInt(int64(pointsPerDollar))).
		Floor()
	return int(points.IntPart())
}
