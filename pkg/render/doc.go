// Package render flattens grouped records into the stripe list that every
// output sink draws.
//
// The stripe list is a flat sequence of [Element] values: a divider before
// each group after the first, and one stripe per record. Empty groups still
// contribute their divider, so the number of dividers is always one less than
// the group count.
//
// Concrete output formats live in the [sink] subpackage.
//
// [sink]: github.com/matzehuels/spinesort/pkg/render/sink
package render
