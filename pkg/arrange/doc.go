// Package arrange sorts color records and buckets them into luminosity
// groups.
//
// # Sort Methods
//
// [Method] is a closed set of orderings:
//
//   - [Luminosity]: ascending perceived brightness (default)
//   - [HSV]: ascending HSV hue
//   - [HLS]: ascending HLS hue
//   - [Step]: ascending step-sort key
//   - [InvertedStep]: descending step-sort key
//
// Step keys are compared as their comma-joined strings ("0,113,6"), byte by
// byte. This differs from comparing the integer triples once a bucket has more
// than one digit, which luminosity buckets routinely do.
//
// # Bucketing
//
// [Bucket] always partitions by luminosity, whatever the sort method. Each
// record goes to floor((lum-min)/(max-min) * n), clamped to [0, n-1], and keeps
// its sorted position relative to the other records in its group. When every
// record has the same luminosity (including zero or one record) all records
// land in group 0.
//
// Because bucketing ignores the sort method, group order need not follow the
// displayed order for methods other than [Luminosity].
//
// # Usage
//
//	groups, err := arrange.Arrange(records, arrange.HSV, 3)
package arrange
