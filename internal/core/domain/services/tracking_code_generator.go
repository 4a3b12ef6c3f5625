package services

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"sync"
	"time"

	"smartdelivery/internal/core/domain/model/parcel"
)

// MaxGenerationAttempts bounds the redraw loop of GenerateUnique. The code
// space holds 10^10 codes per two-letter prefix, so collisions are vanishingly
// rare and a bounded retry loop is an adequate correctness/latency tradeoff.
// Exported so tests can assert the exact exhaustion behavior.
const MaxGenerationAttempts = 20

// ErrTrackingCodeSpaceExhausted is returned when MaxGenerationAttempts
// consecutive candidates all collided with existing codes. Callers should
// treat it as a transient condition safe to retry.
var ErrTrackingCodeSpaceExhausted = errors.New("could not generate unique tracking code")

// TrackingCodeOracle answers whether a candidate tracking code already exists.
// The parcel store satisfies this interface.
type TrackingCodeOracle interface {
	ExistsByTrackingCode(ctx context.Context, code parcel.TrackingCode) (bool, error)
}

// TrackingCodeGenerator is a domain service that produces syntactically valid
// tracking codes and resolves collisions against a uniqueness oracle.
//
// Codes are drawn uniformly at random from the full code space (two uppercase
// letters followed by ten decimal digits). The generator itself never persists
// a code; the store's unique constraint remains the final arbiter, since two
// concurrent creations may both pass the oracle check before either persists.
//
// Example usage:
//
//	gen := services.NewTrackingCodeGenerator(nil)
//	code, err := gen.GenerateUnique(ctx, parcelRepository)
//	if errors.Is(err, services.ErrTrackingCodeSpaceExhausted) {
//	    // Surface as a transient, retryable failure
//	}
type TrackingCodeGenerator struct {
	mu  sync.Mutex
	rnd *rand.Rand
}

// NewTrackingCodeGenerator creates a generator drawing from the given random
// source. Passing nil seeds a source from the current time; tests inject a
// fixed-seed source for deterministic collision handling.
func NewTrackingCodeGenerator(rnd *rand.Rand) *TrackingCodeGenerator {
	if rnd == nil {
		rnd = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &TrackingCodeGenerator{rnd: rnd}
}

// Next draws one candidate code uniformly at random from the valid code space.
// It performs no uniqueness check.
func (g *TrackingCodeGenerator) Next() parcel.TrackingCode {
	g.mu.Lock()
	letters := [2]byte{
		byte('A' + g.rnd.Intn(26)),
		byte('A' + g.rnd.Intn(26)),
	}
	digits := g.rnd.Int63n(1_000_000_0000)
	g.mu.Unlock()

	code, err := parcel.NewTrackingCode(fmt.Sprintf("%s%010d", letters[:], digits))
	if err != nil {
		// Candidates are constructed to match the format; a failure here is a bug.
		panic(err)
	}
	return code
}

// GenerateUnique draws candidates until the oracle reports one as unused,
// capped at MaxGenerationAttempts before failing with
// ErrTrackingCodeSpaceExhausted. Oracle errors are propagated as-is.
func (g *TrackingCodeGenerator) GenerateUnique(ctx context.Context, oracle TrackingCodeOracle) (parcel.TrackingCode, error) {
	for range MaxGenerationAttempts {
		candidate := g.Next()

		exists, err := oracle.ExistsByTrackingCode(ctx, candidate)
		if err != nil {
			return parcel.TrackingCode{}, err
		}
		if !exists {
			return candidate, nil
		}
	}

	return parcel.TrackingCode{}, ErrTrackingCodeSpaceExhausted
}
