// Package seed provides deterministic seed generation for the jitter and
// dithering used by the nebula synthesiser, so renders are reproducible.
package seed

import (
	"crypto/sha256"
	"encoding/binary"
	"fmt"
	"math/rand"
	"slices"
	"strings"
	"time"

	"github.com/colorsful/colorsful/internal/catalog"
)

// DefaultSeed is used by ModeFixed and whenever no generator is supplied.
const DefaultSeed int64 = 1

// Mode determines how the random seed is generated.
type Mode string

const (
	// ModeFixed always uses DefaultSeed (default, fully reproducible).
	ModeFixed Mode = "fixed"
	// ModeContent derives the seed from the catalog's urls and colours.
	ModeContent Mode = "content"
	// ModeManual uses a user-provided seed value.
	ModeManual Mode = "manual"
	// ModeRandom uses a non-deterministic seed (varies each run).
	ModeRandom Mode = "random"
)

// ValidModes lists the accepted seed modes.
func ValidModes() []Mode {
	return []Mode{ModeFixed, ModeContent, ModeManual, ModeRandom}
}

// ParseMode validates a seed mode name.
func ParseMode(s string) (Mode, error) {
	m := Mode(strings.ToLower(strings.TrimSpace(s)))
	if m == "" {
		return ModeFixed, nil
	}
	if !slices.Contains(ValidModes(), m) {
		return "", fmt.Errorf("invalid seed mode '%s' (valid: fixed, content, manual, random)", s)
	}
	return m, nil
}

// Config holds configuration for seed generation.
type Config struct {
	Mode  Mode   // Seed mode
	Value *int64 // Seed value (only used when Mode is ModeManual)
}

// Calculate determines the seed value based on the seed mode.
func Calculate(records []catalog.Record, config Config) (int64, error) {
	switch config.Mode {
	case ModeFixed, "":
		return DefaultSeed, nil
	case ModeContent:
		return ContentSeed(records), nil
	case ModeManual:
		if config.Value == nil {
			return 0, fmt.Errorf("seed value is required for manual seed mode")
		}
		return *config.Value, nil
	case ModeRandom:
		return GenerateRandomSeed(), nil
	default:
		return 0, fmt.Errorf("unknown seed mode: %s", config.Mode)
	}
}

// ContentSeed hashes the catalog's urls and colours. The same catalog always
// yields the same seed regardless of where it was loaded from.
func ContentSeed(records []catalog.Record) int64 {
	hasher := sha256.New()

	countBytes := make([]byte, 8)
	binary.LittleEndian.PutUint64(countBytes, uint64(len(records)))
	hasher.Write(countBytes)

	for _, r := range records {
		hasher.Write([]byte(r.URL))
		hasher.Write([]byte{0})
		for _, c := range r.Candidates(catalog.ContextGrid) {
			hasher.Write([]byte(strings.ToLower(c)))
			hasher.Write([]byte{0})
		}
		hasher.Write([]byte(strings.ToLower(r.HexPickHome)))
		hasher.Write([]byte{0})
	}

	hash := hasher.Sum(nil)
	return int64(binary.LittleEndian.Uint64(hash[:8])) // #nosec G115 -- hash conversion is safe
}

// GenerateRandomSeed generates a non-deterministic random seed.
func GenerateRandomSeed() int64 {
	// #nosec G404 -- Random seed generation is intentionally non-deterministic
	return time.Now().UnixNano() + int64(rand.Intn(1000000))
}

// NewRand returns a generator seeded with seed.
func NewRand(seed int64) *rand.Rand {
	return rand.New(rand.NewSource(seed)) // #nosec G404 -- visual jitter only
}
