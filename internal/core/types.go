package core

import (
	"iter"
	"time"

	lcore "sparse-life/pkg/core"
	"sparse-life/pkg/sims/life"
)

// Sim is the contract front-ends drive. *life.World satisfies it.
type Sim interface {
	Name() string
	Tick(dt time.Duration) bool
	Do(cmd life.Command)
	Reset(seed int64)
	Seed() int64
	Paint(p life.Pointer, active bool) bool
	Status() life.Status
	Version() uint64
	Boundary() life.Boundary
	Alive() iter.Seq[lcore.Coord]
	Snapshot() lcore.Set
}

var _ Sim = (*life.World)(nil)
