package checks

import (
	"math"

	"tradequality/src/model"
)

// VolumeOutliers flags trades whose volume z-score exceeds the threshold in
// absolute value. Mean and standard deviation come from the same batch, using
// the population standard deviation. NULL or non-numeric volumes take no part.
// A batch with fewer than two usable volumes or zero spread has no outliers.
func VolumeOutliers(trades []model.Trade, threshold float64) []model.Violation {
	var out []model.Violation
	for i, z := range VolumeZScores(trades) {
		if math.IsNaN(z) || math.Abs(z) <= threshold {
			continue
		}
		trade := trades[i]
		out = append(out, newViolation(RuleVolumeOutlier, trade.TicketHash, field(model.ColVolume, trade.Volume)))
	}
	return out
}

// VolumeZScores returns one score per trade, NaN where none is defined.
func VolumeZScores(trades []model.Trade) []float64 {
	scores := make([]float64, len(trades))
	volumes := make([]float64, len(trades))
	usable := make([]bool, len(trades))

	var (
		n   int
		sum float64
	)
	for i, trade := range trades {
		scores[i] = math.NaN()
		d, ok := trade.Volume.Decimal()
		if !ok {
			continue
		}
		f := d.InexactFloat64()
		if math.IsInf(f, 0) {
			continue
		}
		volumes[i], usable[i] = f, true
		sum += f
		n++
	}
	if n < 2 {
		return scores
	}

	mean := sum / float64(n)
	var sq float64
	for i, ok := range usable {
		if ok {
			sq += (volumes[i] - mean) * (volumes[i] - mean)
		}
	}
	std := math.Sqrt(sq / float64(n))
	if std == 0 || math.IsNaN(std) || math.IsInf(std, 0) {
		return scores
	}

	for i, ok := range usable {
		if ok {
			scores[i] = (volumes[i] - mean) / std
		}
	}
	return scores
}
