package treemap

import "math/rand/v2"

// greyBand is the half-width of the near-greyscale band: a colour whose
// three channels all lie within this distance of their mean reads as grey.
const greyBand = 20

// colourIntN is the randomness source for leaf colours. It is a plain
// function variable (treemap is single-threaded) so tests can swap in a
// seeded generator via SetColourRand.
var colourIntN func(n int) int = rand.IntN

// SetColourRand replaces the randomness source used for colour generation
// with r. Passing nil restores the process-global source. Intended for
// deterministic tests.
func SetColourRand(r *rand.Rand) {
	if r == nil {
		colourIntN = rand.IntN
		return
	}
	colourIntN = r.IntN
}

// randomColour picks a random colour selectively such that it is never on
// the grey scale. If all three channels land within greyBand of their mean
// the blue channel is shifted by (blue+150) mod 255, which pushes the
// triple out of the band. Internal nodes are later repainted in true
// greyscale, so a leaf must never read as grey.
func randomColour() Color {
	r := colourIntN(256)
	g := colourIntN(256)
	b := colourIntN(256)
	avg := (r + g + b) / 3
	if nearGrey(r, avg) && nearGrey(g, avg) && nearGrey(b, avg) {
		b = (b + 150) % 255
	}
	return Color{R: uint8(r), G: uint8(g), B: uint8(b)}
}

func nearGrey(channel, avg int) bool {
	d := channel - avg
	if d < 0 {
		d = -d
	}
	return d < greyBand
}
