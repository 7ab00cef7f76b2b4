// Package udf implements vectorized scalar functions for a columnar query
// host, together with the registry the host resolves them from.
//
// A ScalarFunction declares its name, argument and return types, and
// volatility, and carries the batch-level implementation. The host invokes a
// function once per batch with columnar.BatchArgs; the function validates
// argument shapes, then produces one output value per input row.
//
// # regexp_extract
//
// RegexpExtract builds the regexp_extract(text, pattern, index) function:
// for each row of the text column it returns the substring captured by the
// index-th group of the first (leftmost) match of pattern, the empty string
// when the pattern does not match or the group did not participate, and null
// when the input row is null. Pattern and index are fixed for the whole
// invocation; compiled patterns are cached across batches.
package udf
