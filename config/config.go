// Package config collects the settings a wudcrgen run is configured with:
// which embedding algorithm to use, in what order to place branches
// relative to leaves, and the handful of knobs those algorithms expose.
package config

import "errors"

// Algorithm selects which embedding strategy a run uses.
type Algorithm int

const (
	// DynamicProgram is the exact, dominance-pruned search in package dynamic.
	DynamicProgram Algorithm = iota
	// KlemzNoellenburgPrutkin names the constructive strong-UDCR heuristic
	// the spec calls out as a peer approach; not implemented by this module.
	KlemzNoellenburgPrutkin
	// Cleve names the other constructive heuristic from the same lineage;
	// not implemented by this module.
	Cleve
	// Benchmark runs every implemented algorithm over the same input and
	// reports comparative stats; the dynamic program's run supplies the
	// embedding.
	Benchmark
)

func (a Algorithm) String() string {
	switch a {
	case DynamicProgram:
		return "dynamic"
	case KlemzNoellenburgPrutkin:
		return "knp"
	case Cleve:
		return "cleve"
	case Benchmark:
		return "benchmark"
	default:
		return "unknown"
	}
}

// EmbedOrder selects how branches and their leaves are interleaved during
// embedding, matching lobster.EmbedOrder's ordinal values.
type EmbedOrder int

const (
	// DepthFirst finishes one branch's leaves before starting the next branch.
	DepthFirst EmbedOrder = iota
	// BreadthFirst places every branch of a spine disk before any of their leaves.
	BreadthFirst
)

func (o EmbedOrder) String() string {
	if o == BreadthFirst {
		return "breadth-first"
	}
	return "depth-first"
}

// ErrUnknownAlgorithm and ErrUnknownEmbedOrder are returned by Validate for
// values outside the declared enumerations.
var (
	ErrUnknownAlgorithm  = errors.New("config: unknown algorithm")
	ErrUnknownEmbedOrder = errors.New("config: unknown embed order")
	ErrNegativeGap       = errors.New("config: gap must be >= 0")
	// ErrUnsupportedAlgorithm is returned for an Algorithm value that
	// Validate accepts as a recognised enum member but that this module
	// declares out of scope (KlemzNoellenburgPrutkin, Cleve).
	ErrUnsupportedAlgorithm = errors.New("config: algorithm not implemented by this module")
)

// Configuration collects one run's settings.
type Configuration struct {
	Algorithm    Algorithm
	EmbedOrder   EmbedOrder
	Gap          int  // extra spacing between disks, heuristic algorithms only
	Constructive bool // reconstruct coordinates, not just decide feasibility
}

// Default returns the configuration a bare CLI invocation starts from.
func Default() Configuration {
	return Configuration{
		Algorithm:    DynamicProgram,
		EmbedOrder:   DepthFirst,
		Constructive: true,
	}
}

// Validate reports whether c's fields hold recognised enum values and
// sane numeric ranges.
func (c Configuration) Validate() error {
	switch c.Algorithm {
	case DynamicProgram, KlemzNoellenburgPrutkin, Cleve, Benchmark:
	default:
		return ErrUnknownAlgorithm
	}

	switch c.EmbedOrder {
	case DepthFirst, BreadthFirst:
	default:
		return ErrUnknownEmbedOrder
	}

	if c.Gap < 0 {
		return ErrNegativeGap
	}

	return nil
}
