package analysis

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"market-streamer/src/models"
)

func mkBar(ts int64, o, h, l, c, v float64) models.MBar {
	return models.MBar{Timestamp: ts, Open: o, High: h, Low: l, Close: c, Volume: v}
}

func TestResampleBarsAggregatesOHLCV(t *testing.T) {
	r := &BarResampler{}

	// Three 1-minute bars into one 3-minute window
	bars := []models.MBar{
		mkBar(0, 10, 12, 9, 11, 100),
		mkBar(60, 11, 15, 10, 14, 200),
		mkBar(120, 14, 14.5, 13, 13.5, 50),
	}

	out := r.ResampleBars(bars, 180)
	require.Len(t, out, 1)

	agg := out[0]
	assert.Equal(t, int64(0), agg.Timestamp)
	assert.Equal(t, 10.0, agg.Open, "open of first bar")
	assert.Equal(t, 15.0, agg.High, "max high")
	assert.Equal(t, 9.0, agg.Low, "min low")
	assert.Equal(t, 13.5, agg.Close, "close of last bar")
	assert.Equal(t, 350.0, agg.Volume, "summed volume")
}

func TestResampleBarsAnchorsAtFirstTimestamp(t *testing.T) {
	r := &BarResampler{}

	// Series starting mid-hour: windows are anchored at the series start
	base := int64(1700000700) // not a multiple of 600
	bars := []models.MBar{
		mkBar(base, 1, 1, 1, 1, 1),
		mkBar(base+300, 2, 2, 2, 2, 1),
		mkBar(base+600, 3, 3, 3, 3, 1),
	}

	out := r.ResampleBars(bars, 600)
	require.Len(t, out, 2)
	assert.Equal(t, base, out[0].Timestamp)
	assert.Equal(t, base+600, out[1].Timestamp)
	assert.Equal(t, 2.0, out[0].Close)
	assert.Equal(t, 3.0, out[1].Close)
}

func TestResampleBarsSortsInput(t *testing.T) {
	r := &BarResampler{}

	bars := []models.MBar{
		mkBar(120, 14, 14, 13, 13, 50),
		mkBar(0, 10, 12, 9, 11, 100),
		mkBar(60, 11, 15, 10, 14, 200),
	}

	out := r.ResampleBars(bars, 180)
	require.Len(t, out, 1)
	assert.Equal(t, 10.0, out[0].Open)
	assert.Equal(t, 13.0, out[0].Close)
}

func TestResampleBarsDropsEmptyWindows(t *testing.T) {
	r := &BarResampler{}

	// A gap spanning a full window between the two bars
	bars := []models.MBar{
		mkBar(0, 1, 1, 1, 1, 1),
		mkBar(1200, 2, 2, 2, 2, 1),
	}

	out := r.ResampleBars(bars, 600)
	require.Len(t, out, 2)
	assert.Equal(t, int64(0), out[0].Timestamp)
	assert.Equal(t, int64(1200), out[1].Timestamp)
}

func TestResampleBarsEmptyInput(t *testing.T) {
	r := &BarResampler{}
	assert.Nil(t, r.ResampleBars(nil, 600))
	assert.Nil(t, r.ResampleBars([]models.MBar{}, 600))
}

func TestRound2(t *testing.T) {
	assert.Equal(t, 10.46, Round2(10.456))
	assert.Equal(t, 10.45, Round2(10.454))
	assert.Equal(t, -3.33, Round2(-3.333))
	assert.Equal(t, 0.0, Round2(0))
}
