package life

import (
	"testing"

	"sparse-life/pkg/core"
)

func TestStageSpawnIsIdempotent(t *testing.T) {
	once := NewLattice(Boundary{Edge: 10})
	once.StageSpawn(core.C(1, 1))
	once.Commit(nil, nil)

	twice := NewLattice(Boundary{Edge: 10})
	twice.StageSpawn(core.C(1, 1))
	twice.StageSpawn(core.C(1, 1))
	if twice.PendingLen() != 1 {
		t.Fatalf("pending = %d after staging twice, want 1", twice.PendingLen())
	}
	twice.Commit(nil, nil)

	if !once.Snapshot().Equal(twice.Snapshot()) {
		t.Fatal("staging twice differs from staging once")
	}
}

func TestStagingDoesNotTouchAlive(t *testing.T) {
	l := NewLattice(Boundary{Edge: 10})
	l.StageSpawn(core.C(0, 0))
	if l.IsAlive(core.C(0, 0)) || l.Len() != 0 {
		t.Fatal("staged cell became alive before commit")
	}
}

func TestCommitClearsPending(t *testing.T) {
	l := NewLattice(Boundary{Edge: 10})
	l.StageSpawn(core.C(0, 0))
	l.StageSpawn(core.C(99, 0))
	l.Commit(nil, nil)
	if l.PendingLen() != 0 {
		t.Fatalf("pending = %d after commit, want 0", l.PendingLen())
	}
}

func TestCommitFiltersBoundary(t *testing.T) {
	l := NewLattice(Boundary{Edge: 5})
	l.StageSpawn(core.C(6, 0))
	res := l.Commit(core.NewSet(core.C(5, -5), core.C(0, 7)), nil)
	if res.Born != 1 {
		t.Fatalf("born = %d, want 1", res.Born)
	}
	for c := range l.Alive() {
		if !l.Boundary().InBounds(c) {
			t.Fatalf("committed cell %v outside boundary", c)
		}
	}
}

func TestCommitSkipsAliveStaging(t *testing.T) {
	l := NewLattice(Boundary{Edge: 10})
	l.StageSpawn(core.C(0, 0))
	l.Commit(nil, nil)

	l.StageSpawn(core.C(0, 0))
	res := l.Commit(nil, nil)
	if res.Born != 0 || l.Len() != 1 {
		t.Fatalf("restaging a live cell changed the lattice: %+v len=%d", res, l.Len())
	}
}

func TestCommitMergesStagedAndRuleBirths(t *testing.T) {
	l := NewLattice(Boundary{Edge: 10})
	l.StageSpawn(core.C(3, 3))
	res := l.Commit(core.NewSet(core.C(3, 3), core.C(4, 4)), nil)
	if res.Born != 2 || l.Len() != 2 {
		t.Fatalf("got %+v with %d alive, want 2 births", res, l.Len())
	}
}

func TestCommitRemovesDeaths(t *testing.T) {
	l := NewLattice(Boundary{Edge: 10})
	l.StageSpawn(core.C(1, 1))
	l.StageSpawn(core.C(2, 2))
	l.Commit(nil, nil)

	res := l.Commit(nil, core.NewSet(core.C(1, 1), core.C(9, 9)))
	if res.Died != 1 || l.IsAlive(core.C(1, 1)) || !l.IsAlive(core.C(2, 2)) {
		t.Fatalf("unexpected result %+v", res)
	}
}

func TestShrinkingBoundaryKeepsLiveCells(t *testing.T) {
	l := NewLattice(Boundary{Edge: 10})
	l.StageSpawn(core.C(8, 8))
	l.Commit(nil, nil)
	l.SetBoundary(Boundary{Edge: 2})
	l.Commit(nil, nil)
	if !l.IsAlive(core.C(8, 8)) {
		t.Fatal("boundary change evicted a live cell")
	}
}

func TestBoundaryInBounds(t *testing.T) {
	b := Boundary{Edge: 4000}
	tests := []struct {
		c    core.Coord
		want bool
	}{
		{core.C(0, 0), true},
		{core.C(4000, -4000), true},
		{core.C(4001, 0), false},
		{core.C(0, -4001), false},
	}
	for _, tt := range tests {
		if got := b.InBounds(tt.c); got != tt.want {
			t.Errorf("InBounds(%v) = %v, want %v", tt.c, got, tt.want)
		}
	}
}

func TestNoBirthBeyondEdge(t *testing.T) {
	// A blinker lying on the edge would grow outward.
	l := NewLattice(Boundary{Edge: 3})
	for _, c := range []core.Coord{core.C(2, 3), core.C(3, 3), core.C(1, 3)} {
		l.StageSpawn(c)
	}
	l.Commit(nil, nil)
	for i := 0; i < 4; i++ {
		b, d := Evaluate(l.Snapshot())
		l.Commit(b, d)
		for c := range l.Alive() {
			if !l.Boundary().InBounds(c) {
				t.Fatalf("generation %d committed %v beyond the edge", i+1, c)
			}
		}
	}
}
