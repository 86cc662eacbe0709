package review

// NextRating folds one new rating into a running average. Mirrors the
// aggregate UPDATE the repository runs; kept pure so the payload returned
// to the caller matches without re-reading the row.
func NextRating(oldAvg float64, oldCount int, newRating int) float64 {
	return (oldAvg*float64(oldCount) + float64(newRating)) / float64(oldCount+1)
}
