package order

import (
	"fmt"
	"math/rand/v2"
	"time"
)

// GenerateNumber produces an order number of the form ORD-<YYYYMMDD>-<NNNN>
// where NNNN is a random 4-digit suffix. Used when the caller supplies no
// number of their own.
//
// Uniqueness is NOT guaranteed: two orders created on the same day can draw
// the same suffix. The store does not enforce number uniqueness either, so a
// collision produces two orders sharing a number rather than a failure.
func GenerateNumber() string {
	return fmt.Sprintf("ORD-%s-%04d",
		time.Now().UTC().Format("20060102"),
		1000+rand.IntN(9000),
	)
}
