package driver

import (
	"math/rand"

	"github.com/dcreager/cobs-go/cobs"
	"github.com/seehuhn/mt19937"
)

// Generated inputs rotate through these shapes.  Raw bytes almost never
// form a valid frame, so most trials start from a real encoding instead.
const (
	shapeRaw = iota
	shapeFrame
	shapeCorruptFrame
	shapeCount
)

type generator struct {
	seed       int64
	maxLength  int
	convention cobs.Convention
}

// input returns the input for a trial.  It depends only on the trial
// number, so results don't depend on which worker ran it.
func (g generator) input(trial int) []byte {
	twister := mt19937.New()
	twister.Seed(g.seed + int64(trial))
	rng := rand.New(twister)

	switch trial % shapeCount {
	case shapeRaw:
		raw := make([]byte, rng.Intn(g.maxLength+1))
		rng.Read(raw)
		return raw
	case shapeFrame:
		return cobs.EncodeFrame(g.payload(rng), g.convention)
	default:
		frame := cobs.EncodeFrame(g.payload(rng), g.convention)
		frame[rng.Intn(len(frame))] = byte(rng.Intn(256))
		return frame
	}
}

// payload returns random bytes with roughly one in eight set to the
// delimiter, so that frames contain plenty of short runs.
func (g generator) payload(rng *rand.Rand) []byte {
	payload := make([]byte, rng.Intn(g.maxLength+1))
	rng.Read(payload)
	for i := range payload {
		if rng.Intn(8) == 0 {
			payload[i] = cobs.Delimiter
		}
	}
	return payload
}
