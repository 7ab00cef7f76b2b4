package columnar

import (
	"github.com/apache/arrow-go/v18/arrow"
	"github.com/apache/arrow-go/v18/arrow/memory"
	"github.com/apache/arrow-go/v18/arrow/scalar"
)

// DatumKind discriminates the shape of an argument value.
type DatumKind int

const (
	// KindScalar is a single value fixed for the entire batch.
	KindScalar DatumKind = iota
	// KindColumn is a per-row array of values.
	KindColumn
)

func (k DatumKind) String() string {
	switch k {
	case KindScalar:
		return "scalar"
	case KindColumn:
		return "column"
	default:
		return "unknown"
	}
}

// Datum is one argument slot of a scalar function invocation: either a scalar
// fixed for the whole batch or a column with one value per row.
type Datum interface {
	Kind() DatumKind
	// DataType returns the Arrow type of the value(s) in this slot.
	DataType() arrow.DataType
	// Len returns the logical row count of this datum: numRows for a
	// scalar (the value repeats across the batch), the array length for
	// a column.
	Len(numRows int) int
}

// ScalarDatum wraps a single Arrow scalar. The scalar carries its own type
// and validity, so a typed NULL is representable.
type ScalarDatum struct {
	Value scalar.Scalar
}

// NewScalar wraps an Arrow scalar as a Datum.
func NewScalar(v scalar.Scalar) *ScalarDatum { return &ScalarDatum{Value: v} }

func (d *ScalarDatum) Kind() DatumKind          { return KindScalar }
func (d *ScalarDatum) DataType() arrow.DataType { return d.Value.DataType() }
func (d *ScalarDatum) Len(numRows int) int      { return numRows }

// ColumnDatum wraps an Arrow array: one value per row, nulls tracked by the
// array's validity bitmap.
type ColumnDatum struct {
	Value arrow.Array
}

// NewColumn wraps an Arrow array as a Datum.
func NewColumn(arr arrow.Array) *ColumnDatum { return &ColumnDatum{Value: arr} }

func (d *ColumnDatum) Kind() DatumKind          { return KindColumn }
func (d *ColumnDatum) DataType() arrow.DataType { return d.Value.DataType() }
func (d *ColumnDatum) Len(numRows int) int      { return d.Value.Len() }

// BatchArgs carries the arguments of one scalar function invocation. It is
// constructed fresh per batch by the host and discarded after the output
// column is produced.
type BatchArgs struct {
	// Args are the argument values, one Datum per declared parameter.
	Args []Datum
	// ArgTypes are the declared static types of the argument slots.
	ArgTypes []arrow.DataType
	// NumRows is the row count of the batch.
	NumRows int
	// Alloc is the allocator for output arrays. Nil means
	// memory.DefaultAllocator.
	Alloc memory.Allocator
}

// Allocator returns the allocator to build output arrays with.
func (a BatchArgs) Allocator() memory.Allocator {
	if a.Alloc != nil {
		return a.Alloc
	}
	return memory.DefaultAllocator
}

var (
	_ Datum = (*ScalarDatum)(nil)
	_ Datum = (*ColumnDatum)(nil)
)
