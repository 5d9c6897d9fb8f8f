package pipeline

import (
	"math"
	"time"

	"github.com/avnergomes/comexstat-parana/internal/domain/models"
)

// confidence band width, 95% under a normal residual assumption
const zScore = 1.96

// A Forecaster projects a yearly series horizon steps ahead and reports
// its in-sample one-step residuals for the confidence band.
type Forecaster interface {
	Name() string
	Forecast(series []float64, horizon int) (points, residuals []float64)
}

// LinearTrend is the ordinary least-squares fallback used when the history
// is too short for smoothing to stabilize.
type LinearTrend struct{}

func (LinearTrend) Name() string { return "LinearTrend" }

func (LinearTrend) Forecast(series []float64, horizon int) ([]float64, []float64) {
	n := len(series)
	if n == 0 {
		return make([]float64, horizon), nil
	}
	if n == 1 {
		points := make([]float64, horizon)
		for i := range points {
			points[i] = series[0]
		}
		return points, nil
	}

	var sumX, sumY, sumXY, sumXX float64
	for i, y := range series {
		x := float64(i)
		sumX += x
		sumY += y
		sumXY += x * y
		sumXX += x * x
	}
	fn := float64(n)
	slope := (fn*sumXY - sumX*sumY) / (fn*sumXX - sumX*sumX)
	intercept := (sumY - slope*sumX) / fn

	residuals := make([]float64, n)
	for i, y := range series {
		residuals[i] = y - (intercept + slope*float64(i))
	}
	points := make([]float64, horizon)
	for h := range points {
		points[h] = intercept + slope*float64(n+h)
	}
	return points, residuals
}

// HoltDamped is damped-trend exponential smoothing. The smoothing
// parameters are picked by a coarse grid search minimizing the one-step
// squared error; the damping factor is fixed.
type HoltDamped struct{}

func (HoltDamped) Name() string { return "ExponentialSmoothing" }

const dampingFactor = 0.98

func (HoltDamped) Forecast(series []float64, horizon int) ([]float64, []float64) {
	bestSSE := math.Inf(1)
	var bestAlpha, bestBeta float64
	for alpha := 0.1; alpha <= 0.91; alpha += 0.1 {
		for beta := 0.1; beta <= 0.91; beta += 0.1 {
			_, residuals := holtRun(series, alpha, beta, 0)
			var sse float64
			for _, r := range residuals {
				sse += r * r
			}
			if sse < bestSSE {
				bestSSE = sse
				bestAlpha = alpha
				bestBeta = beta
			}
		}
	}
	return holtRun(series, bestAlpha, bestBeta, horizon)
}

func holtRun(series []float64, alpha, beta float64, horizon int) ([]float64, []float64) {
	n := len(series)
	if n < 2 {
		points := make([]float64, horizon)
		if n == 1 {
			for i := range points {
				points[i] = series[0]
			}
		}
		return points, nil
	}

	level := series[0]
	trend := series[1] - series[0]
	residuals := make([]float64, 0, n-1)
	for _, y := range series[1:] {
		fitted := level + dampingFactor*trend
		residuals = append(residuals, y-fitted)
		prevLevel := level
		level = alpha*y + (1-alpha)*(prevLevel+dampingFactor*trend)
		trend = beta*(level-prevLevel) + (1-beta)*dampingFactor*trend
	}

	points := make([]float64, horizon)
	damp := 0.0
	for h := range points {
		damp += math.Pow(dampingFactor, float64(h+1))
		points[h] = level + damp*trend
	}
	return points, residuals
}

// minHistoryForSmoothing is the shortest series HoltDamped is trusted on.
const minHistoryForSmoothing = 4

// ForecastYearly projects both sides of the yearly balance periods ahead
// and derives the balance projection from the two side projections. Value
// and weight bands are clamped at zero; the balance band is not, a deficit
// is a legitimate projection.
func ForecastYearly(exports, imports []models.PeriodRow, periods int) models.Forecast {
	expHist := toHistory(exports)
	impHist := toHistory(imports)

	shortest := len(expHist)
	if len(impHist) < shortest {
		shortest = len(impHist)
	}
	var fc Forecaster = HoltDamped{}
	if shortest < minHistoryForSmoothing {
		fc = LinearTrend{}
	}

	lastYear := 0
	for _, h := range expHist {
		if h.Year > lastYear {
			lastYear = h.Year
		}
	}
	for _, h := range impHist {
		if h.Year > lastYear {
			lastYear = h.Year
		}
	}
	years := make([]int, periods)
	for i := range years {
		years[i] = lastYear + i + 1
	}

	expPoints := forecastSide(fc, expHist, years)
	impPoints := forecastSide(fc, impHist, years)

	balance := make([]models.BalanceForecastPoint, periods)
	for i := range balance {
		balance[i] = models.BalanceForecastPoint{
			Year:       years[i],
			Balance:    expPoints[i].Value - impPoints[i].Value,
			BalanceLow: expPoints[i].ValueLower - impPoints[i].ValueUpper,
			BalanceUp:  expPoints[i].ValueUpper - impPoints[i].ValueLower,
		}
	}

	return models.Forecast{
		Method:        fc.Name(),
		GeneratedAt:   time.Now().UTC().Format(time.RFC3339),
		Years:         years,
		ExportHistory: expHist,
		ImportHistory: impHist,
		Exports:       expPoints,
		Imports:       impPoints,
		Balance:       balance,
	}
}

func forecastSide(fc Forecaster, hist []models.HistoryPoint, years []int) []models.ForecastPoint {
	values := make([]float64, len(hist))
	weights := make([]float64, len(hist))
	for i, h := range hist {
		values[i] = h.Value
		weights[i] = h.Weight
	}

	vPoints, vResiduals := fc.Forecast(values, len(years))
	wPoints, wResiduals := fc.Forecast(weights, len(years))
	vBand := zScore * stddev(vResiduals)
	wBand := zScore * stddev(wResiduals)

	out := make([]models.ForecastPoint, len(years))
	for i, year := range years {
		out[i] = models.ForecastPoint{
			Year:        year,
			Value:       clampNonNegative(vPoints[i]),
			ValueLower:  clampNonNegative(vPoints[i] - vBand),
			ValueUpper:  clampNonNegative(vPoints[i] + vBand),
			Weight:      clampNonNegative(wPoints[i]),
			WeightLower: clampNonNegative(wPoints[i] - wBand),
			WeightUpper: clampNonNegative(wPoints[i] + wBand),
		}
	}
	return out
}

func toHistory(rows []models.PeriodRow) []models.HistoryPoint {
	out := make([]models.HistoryPoint, len(rows))
	for i, r := range rows {
		out[i] = models.HistoryPoint{Year: r.Year, Value: r.Value, Weight: r.Weight}
	}
	return out
}

func stddev(residuals []float64) float64 {
	if len(residuals) == 0 {
		return 0
	}
	var mean float64
	for _, r := range residuals {
		mean += r
	}
	mean /= float64(len(residuals))
	var variance float64
	for _, r := range residuals {
		variance += (r - mean) * (r - mean)
	}
	return math.Sqrt(variance / float64(len(residuals)))
}

func clampNonNegative(v float64) float64 {
	if v < 0 {
		return 0
	}
	return v
}
