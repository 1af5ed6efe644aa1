// SPDX-License-Identifier: MIT

package symbolic_test

import (
	"sync"
	"testing"

	"github.com/RuslanAgishev/drake/symbolic"
	"github.com/stretchr/testify/assert"
)

// TestNewVariable_MintsDistinctIDs verifies that every mint yields a fresh
// identity, and that the zero Variable is never handed out.
func TestNewVariable_MintsDistinctIDs(t *testing.T) {
	a := symbolic.NewVariable("x")
	b := symbolic.NewVariable("x")

	assert.NotEqual(t, a.ID(), b.ID(), "two mints of the same name are distinct variables")
	assert.NotZero(t, a.ID(), "minted IDs start above the zero value")
	assert.Equal(t, "x", a.Name())
	assert.Equal(t, symbolic.KindVariable, a.Kind())
}

// TestNewVariable_ConcurrentMintingIsCollisionFree hammers the ID counter
// from many goroutines and checks that no ID repeats.
func TestNewVariable_ConcurrentMintingIsCollisionFree(t *testing.T) {
	const goroutines = 16
	const perGoroutine = 200

	ids := make(chan symbolic.VariableID, goroutines*perGoroutine)
	var wg sync.WaitGroup
	wg.Add(goroutines)
	for g := 0; g < goroutines; g++ {
		go func() {
			defer wg.Done()
			for i := 0; i < perGoroutine; i++ {
				ids <- symbolic.NewVariable("v").ID()
			}
		}()
	}
	wg.Wait()
	close(ids)

	seen := make(map[symbolic.VariableID]struct{}, goroutines*perGoroutine)
	for id := range ids {
		_, dup := seen[id]
		assert.False(t, dup, "duplicate variable ID %d", id)
		seen[id] = struct{}{}
	}
	assert.Len(t, seen, goroutines*perGoroutine)
}

// TestVariable_UsableAsMapKey verifies the value-type contract.
func TestVariable_UsableAsMapKey(t *testing.T) {
	x := symbolic.NewVariable("x")
	copyOfX := x

	m := map[symbolic.Variable]int{x: 1}
	m[copyOfX]++
	assert.Equal(t, 2, m[x], "a copy is the same key")
	assert.Len(t, m, 1)
}
