// Package columnar models the argument and result values exchanged with a
// columnar query host.
//
// A host delivers each argument of a scalar function invocation as a Datum:
// either a ScalarDatum (one value fixed for the entire batch) or a ColumnDatum
// (one value per row, as an Arrow array). BatchArgs bundles the datums for one
// invocation together with the declared argument types and the batch row
// count.
//
// The package is a thin layer over github.com/apache/arrow-go: arrays carry
// their own validity bitmaps, so null handling comes for free from Arrow.
package columnar
