package analysis

import (
	"sort"

	"market-streamer/src/models"
)

// BarResampler aggregates native OHLCV bars into larger synthetic windows.
type BarResampler struct{}

// -----------------------------------------------------------------------------

// windowIndices returns index groupings over the sorted timestamps. Windows
// are left-closed, left-labeled, and anchored at the first timestamp of the
// series (not at midnight), so a 75-minute window over 15-minute bars starts
// exactly where the fetched data starts.
func (r *BarResampler) windowIndices(timestamps []int64, windowSeconds int64) []struct {
	Indices   []int
	StartTime int64
	EndTime   int64
} {
	var results []struct {
		Indices   []int
		StartTime int64
		EndTime   int64
	}

	if len(timestamps) == 0 || windowSeconds <= 0 {
		return results
	}

	minTs := timestamps[0]
	maxTs := timestamps[len(timestamps)-1]

	for start := minTs; start <= maxTs; start += windowSeconds {
		end := start + windowSeconds

		// Left-side searches over the sorted series
		startIdx := sort.Search(len(timestamps), func(j int) bool {
			return timestamps[j] >= start
		})
		endIdx := sort.Search(len(timestamps), func(j int) bool {
			return timestamps[j] >= end
		})

		if startIdx >= endIdx {
			continue
		}

		indices := make([]int, endIdx-startIdx)
		for idx := startIdx; idx < endIdx; idx++ {
			indices[idx-startIdx] = idx
		}

		results = append(results, struct {
			Indices   []int
			StartTime int64
			EndTime   int64
		}{Indices: indices, StartTime: start, EndTime: end})
	}

	return results
}

// -----------------------------------------------------------------------------

// ResampleBars aggregates bars into windows of windowSeconds using the usual
// OHLCV rules: open=first, high=max, low=min, close=last, volume=sum. The
// input does not have to be sorted. Windows with no bars are dropped.
func (r *BarResampler) ResampleBars(bars []models.MBar, windowSeconds int64) []models.MBar {
	if len(bars) == 0 {
		return nil
	}

	sorted := make([]models.MBar, len(bars))
	copy(sorted, bars)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].Timestamp < sorted[j].Timestamp
	})

	timestamps := make([]int64, len(sorted))
	for i, b := range sorted {
		timestamps[i] = b.Timestamp
	}

	groups := r.windowIndices(timestamps, windowSeconds)

	result := make([]models.MBar, 0, len(groups))
	for _, g := range groups {
		first := sorted[g.Indices[0]]

		agg := models.MBar{
			Timestamp: g.StartTime,
			Open:      first.Open,
			High:      first.High,
			Low:       first.Low,
			Close:     first.Close,
			Volume:    0,
		}

		for _, idx := range g.Indices {
			b := sorted[idx]
			if b.High > agg.High {
				agg.High = b.High
			}
			if b.Low < agg.Low {
				agg.Low = b.Low
			}
			agg.Close = b.Close
			agg.Volume += b.Volume
		}

		result = append(result, agg)
	}

	return result
}

// -----------------------------------------------------------------------------

// Round2 truncates a value to two decimals the way the REST layer reports
// prices.
func Round2(v float64) float64 {
	if v >= 0 {
		return float64(int64(v*100+0.5)) / 100
	}
	return float64(int64(v*100-0.5)) / 100
}

// -----------------------------------------------------------------------------

// RoundBars applies Round2 to every price field of the given bars.
func RoundBars(bars []models.MBar) []models.MBar {
	out := make([]models.MBar, len(bars))
	for i, b := range bars {
		b.Open = Round2(b.Open)
		b.High = Round2(b.High)
		b.Low = Round2(b.Low)
		b.Close = Round2(b.Close)
		b.Volume = Round2(b.Volume)
		out[i] = b
	}
	return out
}
