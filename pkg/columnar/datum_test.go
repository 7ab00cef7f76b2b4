package columnar

import (
	"testing"

	"github.com/apache/arrow-go/v18/arrow"
	"github.com/apache/arrow-go/v18/arrow/array"
	"github.com/apache/arrow-go/v18/arrow/memory"
	"github.com/apache/arrow-go/v18/arrow/scalar"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScalarDatum(t *testing.T) {
	d := NewScalar(scalar.NewStringScalar("abc"))

	assert.Equal(t, KindScalar, d.Kind())
	assert.Equal(t, arrow.STRING, d.DataType().ID())
	assert.Equal(t, 7, d.Len(7), "a scalar spans every row of the batch")
}

func TestScalarDatum_NullScalar(t *testing.T) {
	d := NewScalar(scalar.MakeNullScalar(arrow.PrimitiveTypes.Int64))

	assert.Equal(t, KindScalar, d.Kind())
	assert.Equal(t, arrow.INT64, d.DataType().ID())
	assert.False(t, d.Value.IsValid())
}

func TestColumnDatum(t *testing.T) {
	b := array.NewStringBuilder(memory.DefaultAllocator)
	defer b.Release()
	b.Append("a")
	b.AppendNull()
	b.Append("c")
	arr := b.NewStringArray()
	defer arr.Release()

	d := NewColumn(arr)

	assert.Equal(t, KindColumn, d.Kind())
	assert.Equal(t, arrow.STRING, d.DataType().ID())
	assert.Equal(t, 3, d.Len(99), "a column's length is its own, not the declared batch size")
}

func TestDatumKind_String(t *testing.T) {
	assert.Equal(t, "scalar", KindScalar.String())
	assert.Equal(t, "column", KindColumn.String())
	assert.Equal(t, "unknown", DatumKind(42).String())
}

func TestBatchArgs_Allocator(t *testing.T) {
	var args BatchArgs
	require.NotNil(t, args.Allocator())
	assert.Equal(t, memory.DefaultAllocator, args.Allocator())

	mem := memory.NewCheckedAllocator(memory.NewGoAllocator())
	args = BatchArgs{Alloc: mem}
	assert.Equal(t, memory.Allocator(mem), args.Allocator())
}
