// Package analyst computes derived statistics and rankings over a loaded
// sales dataset. Every report is a pure function of the engine's collections:
// nothing is mutated and nothing is memoized, so calling a report twice with
// the same engine state yields identical results.
package analyst

import (
	"github.com/erp/salesengine/internal/engine"
)

// SalesAnalyst answers analytical questions over the engine's collections.
type SalesAnalyst struct {
	engine *engine.SalesEngine
}

// New creates a SalesAnalyst over the given engine.
func New(e *engine.SalesEngine) *SalesAnalyst {
	return &SalesAnalyst{engine: e}
}

// Engine returns the underlying sales engine.
func (a *SalesAnalyst) Engine() *engine.SalesEngine {
	return a.engine
}
