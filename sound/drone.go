package sound

import (
	"math"

	"prime-catacombs/random"
)

const (
	droneSeconds = 8

	channels       = 2
	bytesPerSample = 2
	frameBytes     = channels * bytesPerSample
)

// drone partials in Hz; whole cycles fit the loop so it repeats without a click
var dronePartials = []struct {
	freq, gain float64
}{
	{55, 0.45},
	{82.5, 0.25},
	{110.125, 0.12},
}

// Drone synthesizes a loopable low hum as 16-bit little endian stereo PCM.
// The same arguments always give the same bytes.
func Drone(rate, seconds int) []byte {
	frames := rate * seconds
	out := make([]byte, frames*frameBytes)
	noise := random.New("catacomb-drone")

	var lowpass float64
	for i := 0; i < frames; i++ {
		t := float64(i) / float64(rate)
		// Swell twice per loop
		swell := 0.75 + 0.25*math.Sin(2*math.Pi*t*2/float64(seconds))

		var v float64
		for _, p := range dronePartials {
			v += p.gain * math.Sin(2*math.Pi*p.freq*t)
		}
		lowpass += 0.02 * ((noise.Next()*2 - 1) - lowpass)
		v = (v + 0.6*lowpass) * swell

		sample := int16(math.Max(-1, math.Min(1, v)) * 12000)
		for ch := 0; ch < channels; ch++ {
			base := i*frameBytes + ch*bytesPerSample
			out[base] = byte(sample)
			out[base+1] = byte(sample >> 8)
		}
	}
	return out
}
