package arrange

import (
	"math"

	"github.com/matzehuels/spinesort/pkg/errors"
	"github.com/matzehuels/spinesort/pkg/palette"
)

// Group count bounds exposed by the front ends.
const (
	MinGroups     = 1
	MaxGroups     = 4
	DefaultGroups = 1
)

// Groups is an ordered partition of records. Groups[i] holds the records
// assigned to luminosity bucket i, in sorted order.
type Groups [][]palette.Record

// Len returns the total number of records across all groups.
func (g Groups) Len() int {
	n := 0
	for _, grp := range g {
		n += len(grp)
	}
	return n
}

// Flatten concatenates the groups in index order.
func (g Groups) Flatten() []palette.Record {
	out := make([]palette.Record, 0, g.Len())
	for _, grp := range g {
		out = append(out, grp...)
	}
	return out
}

// NonEmpty returns the number of groups holding at least one record.
func (g Groups) NonEmpty() int {
	n := 0
	for _, grp := range g {
		if len(grp) > 0 {
			n++
		}
	}
	return n
}

// Bucket partitions sorted records into groupCount luminosity groups. The
// result always has groupCount entries, some possibly empty. groupCount must
// be at least 1; smaller values are treated as 1.
func Bucket(sorted []palette.Record, groupCount int) Groups {
	if groupCount < 1 {
		groupCount = 1
	}
	groups := make(Groups, groupCount)
	if len(sorted) == 0 {
		return groups
	}

	lums := make([]float64, len(sorted))
	minLum, maxLum := math.Inf(1), math.Inf(-1)
	for i, rec := range sorted {
		lum := rec.Luminosity()
		lums[i] = lum
		minLum = math.Min(minLum, lum)
		maxLum = math.Max(maxLum, lum)
	}
	lumRange := maxLum - minLum

	for i, rec := range sorted {
		idx := groupIndex(lums[i], minLum, lumRange, groupCount)
		groups[idx] = append(groups[idx], rec)
	}
	return groups
}

// groupIndex maps a luminosity to its bucket. A zero or NaN range puts
// everything in bucket 0.
func groupIndex(lum, minLum, lumRange float64, groupCount int) int {
	if lumRange == 0 || math.IsNaN(lumRange) {
		return 0
	}
	pos := math.Floor((lum - minLum) / lumRange * float64(groupCount))
	if math.IsNaN(pos) || pos < 0 {
		return 0
	}
	if pos > float64(groupCount-1) {
		return groupCount - 1
	}
	return int(pos)
}

// Arrange sorts records by m and buckets them into groupCount groups.
// Only the group count is validated; records are never rejected.
func Arrange(records []palette.Record, m Method, groupCount int) (Groups, error) {
	if groupCount < MinGroups {
		return nil, errors.New(errors.ErrCodeInvalidGroupCount, "group count must be at least %d, got %d", MinGroups, groupCount)
	}
	if !m.Valid() {
		return nil, errors.New(errors.ErrCodeInvalidMethod, "invalid sort method: %d", int(m))
	}
	return Bucket(Sort(records, m), groupCount), nil
}
