package forecast

import (
	"errors"
	"fmt"
	"math"
	"time"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat/distuv"
)

const (
	secondsPerDay = 86400.0

	// minSigma bounds the noise estimate (in units of max |y|) so a perfect
	// fit cannot make the normal equations ill-conditioned.
	minSigma = 1e-3
)

var (
	errTooFewPoints  = errors.New("at least two observations are required")
	errNotIncreasing = errors.New("timestamps must be strictly increasing")
	errNotFinite     = errors.New("values must be finite")
	errSingular      = errors.New("normal equations are not positive definite")
)

// model is a fitted additive model:
//
//	y(t) = m + k*t + sum_j delta_j*(t - s_j)+ + sum_seasonal [a*sin + b*cos]
//
// with t scaled to [0, 1] over the history and y scaled by max |y|.
type model struct {
	opts Options

	start  float64 // first timestamp, days since epoch
	span   float64 // history length, days
	yScale float64

	changepoints []float64 // scaled t
	weights      *mat.VecDense
	sigma        float64 // residual std dev, scaled units
	deltaScale   float64 // mean |delta|, scaled units
}

func days(t time.Time) float64 {
	return float64(t.Unix()) / secondsPerDay
}

// fit estimates the model parameters by maximum a posteriori under Gaussian
// priors, solving the regularised normal equations with a Cholesky
// factorisation. Observation noise is re-estimated NoisePasses times.
func fit(opts Options, ts []time.Time, ys []float64) (*model, error) {
	n := len(ts)
	if n < 2 || len(ys) != n {
		return nil, errTooFewPoints
	}
	for i := range ys {
		if math.IsNaN(ys[i]) || math.IsInf(ys[i], 0) {
			return nil, errNotFinite
		}
		if i > 0 && !ts[i].After(ts[i-1]) {
			return nil, errNotIncreasing
		}
	}

	m := &model{opts: opts, start: days(ts[0])}
	m.span = days(ts[n-1]) - m.start
	if m.span <= 0 {
		return nil, errNotIncreasing
	}
	for _, y := range ys {
		m.yScale = math.Max(m.yScale, math.Abs(y))
	}
	if m.yScale == 0 {
		m.yScale = 1
	}
	m.changepoints = m.placeChangepoints(ts)

	x := m.design(ts)
	y := mat.NewVecDense(n, nil)
	for i, v := range ys {
		y.SetVec(i, v/m.yScale)
	}

	prior := m.priorPrecision()
	sigma := 0.1
	passes := opts.NoisePasses
	if passes < 1 {
		passes = 1
	}
	for pass := 0; pass <= passes; pass++ {
		w, err := solve(x, y, prior, sigma)
		if err != nil {
			return nil, err
		}
		m.weights = w
		sigma = rms(x, y, w)
	}
	m.sigma = sigma

	for j := range m.changepoints {
		m.deltaScale += math.Abs(m.weights.AtVec(2 + j))
	}
	if len(m.changepoints) > 0 {
		m.deltaScale /= float64(len(m.changepoints))
	}
	return m, nil
}

// placeChangepoints spreads potential changepoints evenly across the
// observation indices of the first ChangepointRange of history.
func (m *model) placeChangepoints(ts []time.Time) []float64 {
	histSize := int(math.Floor(float64(len(ts)) * m.opts.ChangepointRange))
	count := m.opts.Changepoints
	if count > histSize-1 {
		count = histSize - 1
	}
	if count <= 0 {
		return nil
	}
	out := make([]float64, 0, count)
	step := float64(histSize-1) / float64(count)
	for j := 1; j <= count; j++ {
		idx := int(math.Round(float64(j) * step))
		out = append(out, m.scale(ts[idx]))
	}
	return out
}

func (m *model) scale(t time.Time) float64 {
	return (days(t) - m.start) / m.span
}

// design builds the regression matrix for the given timestamps.
func (m *model) design(ts []time.Time) *mat.Dense {
	p := m.opts.columns(len(m.changepoints))
	x := mat.NewDense(len(ts), p, nil)
	for i, t := range ts {
		st := m.scale(t)
		x.Set(i, 0, 1)
		x.Set(i, 1, st)
		col := 2
		for _, s := range m.changepoints {
			if st > s {
				x.Set(i, col, st-s)
			}
			col++
		}
		d := days(t)
		for _, season := range m.opts.Seasonalities {
			for k := 1; k <= season.Order; k++ {
				arg := 2 * math.Pi * float64(k) * d / season.Period
				x.Set(i, col, math.Sin(arg))
				x.Set(i, col+1, math.Cos(arg))
				col += 2
			}
		}
	}
	return x
}

// priorPrecision returns 1/scale^2 for every column.
func (m *model) priorPrecision() []float64 {
	p := m.opts.columns(len(m.changepoints))
	prec := make([]float64, p)
	trend := 1 / (m.opts.TrendPriorScale * m.opts.TrendPriorScale)
	delta := 1 / (m.opts.ChangepointPriorScale * m.opts.ChangepointPriorScale)
	season := 1 / (m.opts.SeasonalityPriorScale * m.opts.SeasonalityPriorScale)
	prec[0], prec[1] = trend, trend
	for j := range m.changepoints {
		prec[2+j] = delta
	}
	for c := 2 + len(m.changepoints); c < p; c++ {
		prec[c] = season
	}
	return prec
}

func solve(x *mat.Dense, y *mat.VecDense, prior []float64, sigma float64) (*mat.VecDense, error) {
	noisePrec := 1 / (sigma * sigma)

	var xtx mat.SymDense
	xtx.SymOuterK(1, x.T())
	var a mat.SymDense
	a.ScaleSym(noisePrec, &xtx)
	for i, p := range prior {
		a.SetSym(i, i, a.At(i, i)+p)
	}

	var xty, b mat.VecDense
	xty.MulVec(x.T(), y)
	b.ScaleVec(noisePrec, &xty)

	var chol mat.Cholesky
	if ok := chol.Factorize(&a); !ok {
		return nil, errSingular
	}
	_, cols := x.Dims()
	w := mat.NewVecDense(cols, nil)
	if err := chol.SolveVecTo(w, &b); err != nil {
		return nil, fmt.Errorf("solve normal equations: %w", err)
	}
	return w, nil
}

func rms(x *mat.Dense, y, w *mat.VecDense) float64 {
	var pred mat.VecDense
	pred.MulVec(x, w)
	n := y.Len()
	var ss float64
	for i := 0; i < n; i++ {
		r := y.AtVec(i) - pred.AtVec(i)
		ss += r * r
	}
	return math.Max(math.Sqrt(ss/float64(n)), minSigma)
}

// predict returns point predictions and interval half-widths in original
// units. Rows past the end of history widen with the expected variance of
// future trend changes, drawn at the historical changepoint rate and mean
// magnitude.
func (m *model) predict(ts []time.Time) (yhat, half []float64) {
	x := m.design(ts)
	var pred mat.VecDense
	pred.MulVec(x, m.weights)

	z := distuv.UnitNormal.Quantile(0.5 + m.opts.IntervalWidth/2)
	rate := float64(len(m.changepoints))
	yhat = make([]float64, len(ts))
	half = make([]float64, len(ts))
	for i, t := range ts {
		variance := m.sigma * m.sigma
		if ahead := m.scale(t) - 1; ahead > 0 {
			variance += rate * 2 * m.deltaScale * m.deltaScale * ahead * ahead * ahead / 3
		}
		yhat[i] = pred.AtVec(i) * m.yScale
		half[i] = z * math.Sqrt(variance) * m.yScale
	}
	return yhat, half
}
