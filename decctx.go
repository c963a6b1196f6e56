//go:build jv_decimal

package jv

import "sync"

// decimalContext holds the precision arbitrary-precision decimal
// arithmetic rounds results to. Go has no native thread-local storage,
// so this package follows a sync.Pool idiom for goroutine-scoped
// scratch state instead of a package-level mutex-guarded global.
type decimalContext struct {
	precision uint
}

// defaultDecimalPrecision is a math/big.Float bit precision, sized to
// comfortably exceed 34 decimal digits of precision (34 digits needs
// roughly 34*3.32 ≈ 113 bits to round-trip exactly; this rounds up
// generously).
const defaultDecimalPrecision = 160

var decimalContextPool = sync.Pool{
	New: func() any {
		return &decimalContext{precision: defaultDecimalPrecision}
	},
}

func acquireDecimalContext() *decimalContext {
	return decimalContextPool.Get().(*decimalContext)
}

func releaseDecimalContext(ctx *decimalContext) {
	ctx.precision = defaultDecimalPrecision
	decimalContextPool.Put(ctx)
}
