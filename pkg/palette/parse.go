package palette

import (
	"fmt"
	"io"
	"regexp"
	"strconv"
	"strings"
	"unicode"
)

// linePattern matches "<title> rgb(r,g,b)". It is not anchored and the title
// is greedy, so the last rgb(...) preceded by whitespace wins. The separator
// accepts Unicode spaces (NBSP, U+3000, BOM) and the title never spans a line
// terminator.
var linePattern = regexp.MustCompile(`([^\n\r\x{2028}\x{2029}]+)[\s\v\p{Z}\x{FEFF}]+rgb\((\d+),(\d+),(\d+)\)`)

// isSpace reports Unicode white space plus the byte order mark.
func isSpace(r rune) bool {
	return unicode.IsSpace(r) || r == '\uFEFF'
}

// Parse turns multi-line text into records in line order.
// Lines that do not match the expected syntax are skipped.
func Parse(text string) []Record {
	recs, _ := ParseWithStats(text)
	return recs
}

// ParseStats counts the lines seen by [ParseWithStats].
type ParseStats struct {
	Lines   int // lines after trimming the outer whitespace of the input
	Records int // lines that produced a record
	Skipped int // lines dropped as malformed
}

// ParseWithStats is [Parse] plus line counts. The counts are informational;
// skipped lines never produce an error.
func ParseWithStats(text string) ([]Record, ParseStats) {
	var stats ParseStats
	text = strings.TrimFunc(text, isSpace)
	if text == "" {
		return nil, stats
	}

	lines := strings.Split(text, "\n")
	recs := make([]Record, 0, len(lines))
	for _, line := range lines {
		stats.Lines++
		rec, ok := ParseLine(line)
		if !ok {
			stats.Skipped++
			continue
		}
		recs = append(recs, rec)
	}
	stats.Records = len(recs)
	return recs, stats
}

// ParseReader reads all of r and parses it. Only read errors are returned.
func ParseReader(r io.Reader) ([]Record, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read input: %w", err)
	}
	return Parse(string(data)), nil
}

// ParseLine parses a single line. The second result is false when the line
// does not match or a channel does not fit in an int.
func ParseLine(line string) (Record, bool) {
	m := linePattern.FindStringSubmatch(strings.TrimRight(line, "\r"))
	if m == nil {
		return Record{}, false
	}
	title := strings.TrimFunc(m[1], isSpace)
	if title == "" {
		return Record{}, false
	}

	var ch [3]int
	for i := range ch {
		v, err := strconv.Atoi(m[i+2])
		if err != nil {
			return Record{}, false
		}
		ch[i] = v
	}
	return NewRecord(title, ch[0], ch[1], ch[2]), true
}
