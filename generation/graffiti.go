package generation

import (
	"fmt"
	"math"
	"strconv"

	"prime-catacombs/random"
)

// Graffiti is the decoration scrawled on a blank wall
type Graffiti struct {
	Text  string
	Tint  int     // Index into GraffitiTints
	Angle float64 // Radians, counter-clockwise
}

const primePlaceholder = "<Prime>"

var graffitiMessages = []string{
	"Help!!!",
	"I'm lost",
	"Numbers...\nNothing but\nNumbers...",
	"There is\nno end",
	"No way out",
	"Some primes are\ndead ends",
	"By the time anyone reads\nthis, I'm probably dead.",
	"127 is DEATH!",
	"How is this\npossible?",
	"What is the\npattern?",
	"Composite\nIs\nDEATH",
	"Infinity!",
	"Append = 1",
	"I am going\ninsane",
	"Trapped!",
	primePlaceholder,
}

var graffitiPrimes = []int{
	2, 3, 5, 7, 11, 13, 17, 19, 23, 29, 31, 37, 41, 43, 47, 53, 59, 61, 67, 71,
	73, 79, 83, 89, 97, 101, 103, 107, 109, 113, 127, 131, 137, 139, 149, 151,
	157, 163, 167, 173, 179, 181, 191, 193, 197, 199, 211, 223, 227, 229, 233,
	239, 241, 251, 257, 263, 269, 271, 277, 281, 283, 293, 307, 311, 313, 317,
}

// GraffitiTints lists the paint colors as RGB triples
var GraffitiTints = [][3]uint8{
	{200, 20, 20},
	{189, 183, 107},
	{85, 107, 47},
	{40, 40, 200},
	{138, 43, 226},
	{10, 10, 10},
}

const (
	minGraffitiAngle = -math.Pi / 6
	maxGraffitiAngle = math.Pi / 6
)

// GraffitiSeed keys the decoration at a relative position of a room
func GraffitiSeed(value string, relativePosition int) string {
	return fmt.Sprintf("%s-Graffiti-%d", value, relativePosition)
}

// PickGraffiti deterministically chooses the text, tint and tilt for a seed
func PickGraffiti(seed string) (Graffiti, error) {
	prng := random.New(seed)

	text, err := random.PickOne(graffitiMessages, prng)
	if err != nil {
		return Graffiti{}, err
	}
	if text == primePlaceholder {
		prime, err := random.PickOne(graffitiPrimes, prng)
		if err != nil {
			return Graffiti{}, err
		}
		text = strconv.Itoa(prime)
	}

	tint, err := prng.RandomInt(0, len(GraffitiTints)-1)
	if err != nil {
		return Graffiti{}, err
	}

	return Graffiti{
		Text:  text,
		Tint:  tint,
		Angle: prng.Float(minGraffitiAngle, maxGraffitiAngle),
	}, nil
}
