package service

const (
	// Forecast targets closer than this fraction to the source distance are skipped
	ForecastSkipTolerance = 0.05

	// Forecast chart resolution
	ForecastCurvePoints = 40
)

// Standard race distances in kilometers
const (
	FiveKm       = 5.0
	TenKm        = 10.0
	HalfMarathon = 21.0975
	Marathon     = 42.195
)

// DefaultTargetsKm are the forecast targets used when none are configured
var DefaultTargetsKm = []float64{FiveKm, TenKm, HalfMarathon, Marathon}
