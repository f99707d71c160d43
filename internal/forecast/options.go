package forecast

// Seasonality is one Fourier seasonal component.
type Seasonality struct {
	Name   string
	Period float64 // days
	Order  int     // number of sin/cos pairs
}

// Options configures the additive model. Zero values are not meaningful; start
// from DefaultOptions.
type Options struct {
	// Trend
	Changepoints          int     // potential changepoints placed over history
	ChangepointRange      float64 // fraction of history eligible for changepoints
	ChangepointPriorScale float64 // flexibility of the trend; smaller is stiffer

	// Seasonality
	Seasonalities         []Seasonality
	SeasonalityPriorScale float64

	// Intercept and base growth rate prior scale.
	TrendPriorScale float64

	// IntervalWidth is the coverage of [Lower, Upper], e.g. 0.8.
	IntervalWidth float64

	// NoisePasses is how many times observation noise is re-estimated.
	NoisePasses int
}

// DefaultOptions enables daily, weekly and yearly seasonality with a
// changepoint prior scale of 0.05.
func DefaultOptions() Options {
	return Options{
		Changepoints:          25,
		ChangepointRange:      0.8,
		ChangepointPriorScale: 0.05,
		Seasonalities: []Seasonality{
			{Name: "yearly", Period: 365.25, Order: 10},
			{Name: "weekly", Period: 7, Order: 3},
			{Name: "daily", Period: 1, Order: 4},
		},
		SeasonalityPriorScale: 10,
		TrendPriorScale:       5,
		IntervalWidth:         0.8,
		NoisePasses:           2,
	}
}

func (o Options) columns(changepoints int) int {
	n := 2 + changepoints
	for _, s := range o.Seasonalities {
		n += 2 * s.Order
	}
	return n
}
