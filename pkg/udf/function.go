package udf

import (
	"github.com/apache/arrow-go/v18/arrow"

	"github.com/fyrsmithlabs/colfuncs/pkg/columnar"
)

// Volatility declares how a host may treat repeated evaluations of a
// function with identical arguments.
type Volatility int

const (
	// VolatilityImmutable marks a deterministic, side-effect-free
	// function: safe to cache, reorder, or constant-fold.
	VolatilityImmutable Volatility = iota
	// VolatilityStable marks a function stable within one query execution.
	VolatilityStable
	// VolatilityVolatile marks a function that must be re-evaluated per
	// call.
	VolatilityVolatile
)

func (v Volatility) String() string {
	switch v {
	case VolatilityImmutable:
		return "immutable"
	case VolatilityStable:
		return "stable"
	case VolatilityVolatile:
		return "volatile"
	default:
		return "unknown"
	}
}

// ScalarFunction describes one vectorized scalar function: its registration
// surface plus the batch-level implementation. The Fn runs synchronously on
// the caller's goroutine and either produces a full output datum or fails
// the whole batch; there are no partial results.
type ScalarFunction struct {
	// Name is the identifier the host resolves the function by.
	Name string
	// ArgTypes are the declared parameter types, in order.
	ArgTypes []arrow.DataType
	// ReturnType is the declared result type.
	ReturnType arrow.DataType
	// Nullable reports whether the result may contain nulls.
	Nullable bool
	// Volatility declares the function's evaluation purity.
	Volatility Volatility
	// Fn is the batch implementation.
	Fn func(args columnar.BatchArgs) (columnar.Datum, error)
}

// Invoke runs the function on one batch of arguments.
func (f *ScalarFunction) Invoke(args columnar.BatchArgs) (columnar.Datum, error) {
	return f.Fn(args)
}
