package forecast

import (
	"context"
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/guttosm/tickercast/internal/domain/models"
)

// tradingSeries builds n weekday observations starting 2023-01-02 with the
// value produced by fn(i).
func tradingSeries(n int, fn func(i int) float64) []models.ForecastInput {
	out := make([]models.ForecastInput, 0, n)
	d := time.Date(2023, 1, 2, 0, 0, 0, 0, time.UTC)
	for i := 0; len(out) < n; d = d.AddDate(0, 0, 1) {
		if wd := d.Weekday(); wd == time.Saturday || wd == time.Sunday {
			continue
		}
		out = append(out, models.ForecastInput{Timestamp: d, Value: fn(i)})
		i++
	}
	return out
}

func noisyTrend(i int) float64 {
	return 100 + 0.3*float64(i) + 2*math.Sin(float64(i)/3) + 1.5*math.Cos(float64(i)*1.7)
}

func TestForecast_LengthAndTimestamps(t *testing.T) {
	input := tradingSeries(252, noisyTrend)
	out, err := New(DefaultOptions()).Forecast(context.Background(), input, 30)
	require.NoError(t, err)

	require.Len(t, out.Points, 252+30)
	assert.Equal(t, 252, out.HistoryLen)
	assert.Equal(t, 30, out.Horizon)
	for i, in := range input {
		assert.True(t, out.Points[i].Timestamp.Equal(in.Timestamp), "history row %d timestamp changed", i)
	}
	last := input[len(input)-1].Timestamp
	for d, p := range out.Future() {
		assert.True(t, p.Timestamp.Equal(last.AddDate(0, 0, d+1)), "future row %d", d)
	}
}

func TestForecast_BoundsContainPrediction(t *testing.T) {
	input := tradingSeries(500, noisyTrend)
	out, err := New(DefaultOptions()).Forecast(context.Background(), input, 90)
	require.NoError(t, err)

	for i, p := range out.Points {
		assert.LessOrEqual(t, p.Lower, p.Predicted, "row %d", i)
		assert.LessOrEqual(t, p.Predicted, p.Upper, "row %d", i)
	}
	future := out.Future()
	first := future[0].Upper - future[0].Lower
	final := future[len(future)-1].Upper - future[len(future)-1].Lower
	assert.GreaterOrEqual(t, final, first, "interval should not narrow with distance")
}

func TestForecast_HorizonDeterminism(t *testing.T) {
	input := tradingSeries(300, noisyTrend)
	f := New(DefaultOptions())

	short, err := f.Forecast(context.Background(), input, 7)
	require.NoError(t, err)
	long, err := f.Forecast(context.Background(), input, 90)
	require.NoError(t, err)

	assert.Equal(t, 83, len(long.Points)-len(short.Points))
	for i := range input {
		assert.Equal(t, short.Points[i].Predicted, long.Points[i].Predicted, "row %d", i)
	}
	for i := range short.Points {
		assert.Equal(t, short.Points[i], long.Points[i], "overlapping row %d", i)
	}
}

func TestForecast_FollowsLinearTrend(t *testing.T) {
	input := tradingSeries(400, func(i int) float64 { return 50 + 0.25*float64(i) })
	out, err := New(DefaultOptions()).Forecast(context.Background(), input, 14)
	require.NoError(t, err)

	for i, in := range input {
		assert.InDelta(t, in.Value, out.Points[i].Predicted, 0.02*in.Value, "fitted row %d", i)
	}
	lastValue := input[len(input)-1].Value
	end, ok := out.Last()
	require.True(t, ok)
	assert.Greater(t, end.Predicted, lastValue*0.98, "forecast should keep rising")
}

func TestForecast_Failures(t *testing.T) {
	cancelled, cancel := context.WithCancel(context.Background())
	cancel()
	day := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	cases := []struct {
		name    string
		ctx     context.Context
		input   []models.ForecastInput
		horizon int
		kind    models.Kind
	}{
		{name: "empty", ctx: context.Background(), input: nil, horizon: 30, kind: models.KindFitFailed},
		{name: "single point", ctx: context.Background(), input: []models.ForecastInput{{Timestamp: day, Value: 1}}, horizon: 30, kind: models.KindFitFailed},
		{name: "nan", ctx: context.Background(), input: []models.ForecastInput{{Timestamp: day, Value: 1}, {Timestamp: day.AddDate(0, 0, 1), Value: math.NaN()}}, horizon: 30, kind: models.KindFitFailed},
		{name: "not increasing", ctx: context.Background(), input: []models.ForecastInput{{Timestamp: day, Value: 1}, {Timestamp: day, Value: 2}}, horizon: 30, kind: models.KindFitFailed},
		{name: "zero horizon", ctx: context.Background(), input: tradingSeries(10, noisyTrend), horizon: 0, kind: models.KindInvalidRequest},
		{name: "cancelled", ctx: cancelled, input: tradingSeries(10, noisyTrend), horizon: 5, kind: models.KindFitFailed},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			out, err := New(DefaultOptions()).Forecast(tc.ctx, tc.input, tc.horizon)
			assert.Nil(t, out)
			assert.Equal(t, tc.kind, models.KindOf(err))
		})
	}
}

func TestForecast_ShortSeriesWithoutChangepoints(t *testing.T) {
	input := tradingSeries(2, func(i int) float64 { return 10 + float64(i) })
	out, err := New(DefaultOptions()).Forecast(context.Background(), input, 3)
	require.NoError(t, err)
	assert.Len(t, out.Points, 5)
}

func TestPlaceChangepoints(t *testing.T) {
	input := tradingSeries(100, noisyTrend)
	ts := make([]time.Time, len(input))
	for i := range input {
		ts[i] = input[i].Timestamp
	}
	m := &model{opts: DefaultOptions(), start: days(ts[0]), span: days(ts[99]) - days(ts[0])}
	cps := m.placeChangepoints(ts)

	require.Len(t, cps, 25)
	for j := 1; j < len(cps); j++ {
		assert.Greater(t, cps[j], cps[j-1])
	}
	assert.LessOrEqual(t, cps[len(cps)-1], 0.8+1e-9)
}
