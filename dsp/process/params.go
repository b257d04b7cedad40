package process

// Params holds the parameters an interactive caller has collected so far.
// A nil field has not been entered yet.
type Params struct {
	CutoffHz *float64
	LowHz    *float64
	HighHz   *float64
	Window   *int
	Alpha    *float64
}

// Build returns the Config for kind using p. It returns nil, the
// "still configuring" value, when a parameter kind requires is missing.
func Build(kind Kind, p Params) Config {
	switch kind {
	case KindLowPass:
		if p.CutoffHz == nil {
			return nil
		}
		return LowPass{CutoffHz: *p.CutoffHz}
	case KindHighPass:
		if p.CutoffHz == nil {
			return nil
		}
		return HighPass{CutoffHz: *p.CutoffHz}
	case KindBandPass, KindBandStop, KindSpectralGate:
		if p.LowHz == nil || p.HighHz == nil {
			return nil
		}
		switch kind {
		case KindBandPass:
			return BandPass{LowHz: *p.LowHz, HighHz: *p.HighHz}
		case KindBandStop:
			return BandStop{LowHz: *p.LowHz, HighHz: *p.HighHz}
		default:
			return SpectralGate{LowHz: *p.LowHz, HighHz: *p.HighHz}
		}
	case KindMovingAverage:
		if p.Window == nil {
			return nil
		}
		return MovingAverage{Window: *p.Window}
	case KindExponentialSmoothing:
		if p.Alpha == nil {
			return nil
		}
		return ExponentialSmoothing{Alpha: *p.Alpha}
	case KindNormalize:
		return Normalize{}
	case KindOverlay:
		return Overlay{}
	default:
		return None{}
	}
}
