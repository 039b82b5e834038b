package audio

import (
	"math"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
)

// withVolume scales s by a linear gain in [0, 1].
func withVolume(s beep.Streamer, gain float64) beep.Streamer {
	if gain <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(min(gain, 1)), Silent: false}
}
