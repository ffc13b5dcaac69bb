package symbols

import "github.com/npillmayer/schuko"

// ConfPixelRatio is the configuration key for the device pixel ratio, in
// percent.
const ConfPixelRatio = "fonts.pixel-ratio"

// PixelRatioFromConfig returns the device pixel ratio symbol metrics are
// computed for. It defaults to 1.
func PixelRatioFromConfig(conf schuko.Configuration) float64 {
	if conf == nil || !conf.IsSet(ConfPixelRatio) {
		return 1
	}
	percent := conf.GetInt(ConfPixelRatio)
	if percent <= 0 {
		tracer().Errorf("invalid pixel ratio %d%%, using 100%%", percent)
		return 1
	}
	return float64(percent) / 100
}
