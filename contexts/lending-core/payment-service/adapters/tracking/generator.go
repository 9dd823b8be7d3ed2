// Package tracking mints shipment tracking codes.
package tracking

import (
	"fmt"
	"sync/atomic"
	"time"
)

// Generator produces TRK-YYYYMMDD-NNNN codes. The numeric suffix is a
// process-local counter modulo 10000; uniqueness of the payment itself is
// carried by the session id, so collisions here are cosmetic.
type Generator struct {
	seq atomic.Uint64
}

func NewGenerator() *Generator {
	return &Generator{}
}

func (g *Generator) NewTrackingID(now time.Time) string {
	n := g.seq.Add(1) % 10000
	return fmt.Sprintf("TRK-%s-%04d", now.UTC().Format("20060102"), n)
}
