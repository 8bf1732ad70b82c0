// Package stats records one invocation's timing and outcome, mirroring
// the embedDynamic timing wrapper of the original implementation.
package stats

import (
	"time"

	"github.com/animiral/wudcrgen/config"
	"github.com/animiral/wudcrgen/lobster"
)

// Stat is a single invocation's record.
type Stat struct {
	Algorithm            config.Algorithm
	EmbedOrder           config.EmbedOrder
	Size                 int
	Spines               int
	Success              bool
	DurationMicroseconds int64
}

// Collect runs fn (the embedder) against g, timing it and filling in a
// Stat from cfg and g's shape.
func Collect(cfg config.Configuration, g *lobster.DiskGraph, fn func() bool) Stat {
	stat := Stat{
		Algorithm:  cfg.Algorithm,
		EmbedOrder: cfg.EmbedOrder,
		Size:       g.Size(),
		Spines:     g.SpineLength(),
	}

	start := time.Now()
	stat.Success = fn()
	stat.DurationMicroseconds = time.Since(start).Microseconds()

	return stat
}
