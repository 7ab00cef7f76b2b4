package udf

import (
	"fmt"
	"regexp"

	"github.com/apache/arrow-go/v18/arrow"
	"github.com/apache/arrow-go/v18/arrow/array"
	"github.com/apache/arrow-go/v18/arrow/memory"
	"github.com/apache/arrow-go/v18/arrow/scalar"

	"github.com/fyrsmithlabs/colfuncs/internal/regexcache"
	"github.com/fyrsmithlabs/colfuncs/pkg/columnar"
)

// RegexpExtractName is the name regexp_extract registers under.
const RegexpExtractName = "regexp_extract"

// RegexpExtract builds the regexp_extract(text, pattern, index) scalar
// function. Each call creates its own compiled-pattern cache, captured by the
// function value and shared across every batch of its registration lifetime.
func RegexpExtract() *ScalarFunction {
	cache := regexcache.New()
	return &ScalarFunction{
		Name: RegexpExtractName,
		ArgTypes: []arrow.DataType{
			arrow.BinaryTypes.String,
			arrow.BinaryTypes.String,
			arrow.PrimitiveTypes.Int64,
		},
		ReturnType: arrow.BinaryTypes.String,
		Nullable:   true,
		Volatility: VolatilityImmutable,
		Fn: func(args columnar.BatchArgs) (columnar.Datum, error) {
			return regexpExtract(cache, args)
		},
	}
}

// regexpExtract validates the batch arguments in a fixed order, resolves the
// compiled pattern, and runs the per-row extraction. The first failing check
// fails the whole batch; no partial output is produced.
func regexpExtract(cache *regexcache.Cache, args columnar.BatchArgs) (columnar.Datum, error) {
	if len(args.Args) != 3 {
		return nil, fmt.Errorf("%w: regexp_extract expects 3 arguments: text, pattern, index; got %d",
			ErrArity, len(args.Args))
	}

	pattern, err := scalarUtf8(args.Args[1], "pattern")
	if err != nil {
		return nil, err
	}
	index, err := scalarInt64(args.Args[2], "index")
	if err != nil {
		return nil, err
	}
	if index < 0 {
		return nil, fmt.Errorf("%w: got %d", ErrNegativeIndex, index)
	}
	texts, err := utf8Column(args.Args[0], "text")
	if err != nil {
		return nil, err
	}

	re, err := cache.Get(pattern)
	if err != nil {
		return nil, err
	}

	out, err := extractColumn(re, texts, int(index), args.Allocator())
	if err != nil {
		return nil, err
	}
	return columnar.NewColumn(out), nil
}

// scalarUtf8 unwraps an argument that must be a non-null Utf8 scalar, fixed
// for the whole batch. The three failure shapes (per-row column, wrong type,
// NULL) each report distinctly.
func scalarUtf8(d columnar.Datum, name string) (string, error) {
	sd, ok := d.(*columnar.ScalarDatum)
	if !ok {
		return "", fmt.Errorf("%w: %s must be a scalar, not a per-row column", ErrInvalidArgument, name)
	}
	s, ok := sd.Value.(*scalar.String)
	if !ok {
		return "", fmt.Errorf("%w: %s must be a Utf8 scalar, got %s",
			ErrInvalidArgument, name, sd.Value.DataType().Name())
	}
	if !s.IsValid() {
		return "", fmt.Errorf("%w: %s must not be NULL", ErrInvalidArgument, name)
	}
	return string(s.Data()), nil
}

// scalarInt64 unwraps an argument that must be a non-null Int64 scalar, with
// the same three distinguishable failure shapes as scalarUtf8.
func scalarInt64(d columnar.Datum, name string) (int64, error) {
	sd, ok := d.(*columnar.ScalarDatum)
	if !ok {
		return 0, fmt.Errorf("%w: %s must be a scalar, not a per-row column", ErrInvalidArgument, name)
	}
	i, ok := sd.Value.(*scalar.Int64)
	if !ok {
		return 0, fmt.Errorf("%w: %s must be an Int64 scalar, got %s",
			ErrInvalidArgument, name, sd.Value.DataType().Name())
	}
	if !i.IsValid() {
		return 0, fmt.Errorf("%w: %s must not be NULL", ErrInvalidArgument, name)
	}
	return i.Value, nil
}

// utf8Column unwraps an argument that must be a per-row Utf8 column. Scalar
// text is rejected: only the text argument varies per row.
func utf8Column(d columnar.Datum, name string) (*array.String, error) {
	cd, ok := d.(*columnar.ColumnDatum)
	if !ok {
		return nil, fmt.Errorf("%w: %s must be a per-row column, not a scalar", ErrInvalidArgument, name)
	}
	arr, ok := cd.Value.(*array.String)
	if !ok {
		return nil, fmt.Errorf("%w: %s must be a Utf8 column, got %s",
			ErrInvalidArgument, name, cd.Value.DataType().Name())
	}
	return arr, nil
}

// extractColumn runs the row loop: null rows stay null, every other row gets
// the extracted group of the leftmost match of re.
func extractColumn(re *regexp.Regexp, texts *array.String, index int, mem memory.Allocator) (*array.String, error) {
	b := array.NewStringBuilder(mem)
	defer b.Release()
	b.Reserve(texts.Len())

	for i := 0; i < texts.Len(); i++ {
		if texts.IsNull(i) {
			b.AppendNull()
			continue
		}
		v, err := extractOne(re, texts.Value(i), index)
		if err != nil {
			return nil, err
		}
		b.Append(v)
	}
	return b.NewStringArray(), nil
}

// extractOne applies re to s and returns the substring captured by the
// index-th group of the leftmost match. No match, and a group that did not
// participate in the match, both yield the empty string rather than null;
// this mirrors Spark's regexp_extract.
func extractOne(re *regexp.Regexp, s string, index int) (string, error) {
	loc := re.FindStringSubmatchIndex(s)
	if loc == nil {
		return "", nil
	}
	if index > re.NumSubexp() {
		return "", fmt.Errorf("%w: requested group %d but pattern has %d capturing groups",
			ErrGroupRange, index, re.NumSubexp())
	}
	start, end := loc[2*index], loc[2*index+1]
	if start < 0 {
		return "", nil
	}
	return s[start:end], nil
}
