// Package palette holds the color records spinesort works on together with
// the line parser and the color-space conversions used as sort keys.
//
// # Records
//
// A [Record] is a titled RGB color. Records are plain values: sorting and
// grouping only reorder copies, they never modify a record.
//
//	recs := palette.Parse("Dune rgb(201,140,60)\nSolaris rgb(20,40,90)")
//
// # Input Format
//
// One color per line, a free-text title followed by whitespace and an
// rgb(r,g,b) triple:
//
//	The Left Hand of Darkness rgb(233,24,22)
//
// The title is everything before the last rgb(...) on the line. Lines that do
// not match are dropped without error. Channel values are not range-checked;
// out-of-range values flow through the conversions unchanged.
//
// # Conversions
//
// [Luminosity] is a weighted-channel brightness approximation
// (sqrt(0.241r + 0.691g + 0.068b)) used as the luminosity sort key and as the
// bucketing key. [ToHSV] and [ToHLS] are the conventional conversions on
// channels normalized by 255. [Step] computes the step-sort key that
// alternates sweep direction across hue sectors.
package palette
