package engine

import (
	"errors"

	"github.com/lixenwraith/termunator/core"
)

// Test component kinds
type position struct{ X, Y float64 }
type velocity struct{ VX, VY float64 }
type label struct{ Name string }

// fakeEnv records environment calls
type fakeEnv struct {
	capW, capH int
	claimErr   error
	capErr     error
	releaseErr error
	claims     int
	releases   int
	shows      int
	drains     int
}

func (f *fakeEnv) Claim() error {
	f.claims++
	return f.claimErr
}

func (f *fakeEnv) Capacity() (int, int, error) {
	if f.capErr != nil {
		return 0, 0, f.capErr
	}
	return f.capW, f.capH, nil
}

func (f *fakeEnv) Show()  { f.shows++ }
func (f *fakeEnv) Drain() { f.drains++ }

func (f *fakeEnv) Release() error {
	f.releases++
	return f.releaseErr
}

var errBoom = errors.New("boom")

// spawn creates n entities in cs with a position each, x = index
func spawn(cs *ComponentStore, ids ...core.Entity) {
	for i, e := range ids {
		Insert(cs, e, position{X: float64(i)})
	}
}
