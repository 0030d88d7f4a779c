package core

import (
	"regexp"
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/rs/zerolog/log"

	"wingetctl/internal/types"
)

// NoResultsMarker is the literal line winget prints when a query matches
// nothing. It signals an empty result set, not a failure.
const NoResultsMarker = "No package found matching input criteria."

// PackageColumns is the ordered set of column titles winget prints for
// search, list, and upgrade tables. Titles absent from a given table (list
// output often has no Available column) are simply skipped.
var PackageColumns = []string{"Name", "Id", "Version", "Available", "Source"}

// Row maps a column title to the trimmed cell value of one table row.
// Cells that are empty after trimming are omitted entirely.
type Row map[string]string

// ColumnSpec describes one resolved column of a fixed-width table: where it
// starts in the header line and how many characters it spans. Offsets and
// lengths are in runes, not bytes, so a normalized ellipsis in the header
// cannot shift the data columns. Length -1 means the column extends to the
// end of each line.
type ColumnSpec struct {
	Title  string
	Start  int
	Length int
}

// ParseTable converts winget's fixed-width table output into one Row per
// data line, keyed by column title. Rows come back in source order; an
// empty table body is a successful empty result.
//
// Column membership is purely positional. This relies on winget padding
// every column with spaces to a fixed width; it holds for the tables this
// tool consumes but has a known limitation: if one expected title occurs as
// a substring of another inside the header line, the computed offsets are
// meaningless. Only the identical-offset case is guarded; overlapping
// prefixes are undefined behavior.
func ParseTable(lines []string, titles []string) ([]Row, error) {
	for _, line := range lines {
		if strings.TrimSpace(line) == NoResultsMarker {
			return []Row{}, nil
		}
	}

	headerIdx := headerIndex(lines, titles)
	if headerIdx < 0 {
		return nil, errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("unrecognized winget output: header row not found")
	}
	header := lines[headerIdx]

	columns, err := ResolveColumns(header, titles)
	if err != nil {
		return nil, err
	}
	log.Debug().
		Int("header_line", headerIdx).
		Int("columns", len(columns)).
		Msg("resolved table layout")

	rows := []Row{}
	for _, line := range lines[headerIdx+1:] {
		if skipStructuralLine(line, header) {
			continue
		}
		row := extractRow(line, columns)
		if len(row) == 0 {
			continue
		}
		rows = append(rows, row)
	}
	return rows, nil
}

// ResolveColumns locates each expected title in the header line and derives
// the column boundaries. Titles missing from the header are skipped; the
// found ones are ordered by their offset, which is authoritative regardless
// of the order titles were supplied in. Each column ends one character
// before the next one starts; the last column is unbounded.
func ResolveColumns(header string, titles []string) ([]ColumnSpec, error) {
	var columns []ColumnSpec
	for _, title := range titles {
		byteOffset := strings.Index(header, title)
		if byteOffset < 0 {
			continue
		}
		columns = append(columns, ColumnSpec{
			Title:  title,
			Start:  utf8.RuneCountInString(header[:byteOffset]),
			Length: -1,
		})
	}
	sort.SliceStable(columns, func(i, j int) bool {
		return columns[i].Start < columns[j].Start
	})
	for i := 0; i < len(columns)-1; i++ {
		if columns[i+1].Start == columns[i].Start {
			return nil, errbuilder.New().
				WithCode(errbuilder.CodeInvalidArgument).
				WithMsg("column titles '" + columns[i].Title + "' and '" + columns[i+1].Title + "' resolve to the same offset")
		}
		columns[i].Length = columns[i+1].Start - 1 - columns[i].Start
	}
	return columns, nil
}

// PackageRecords converts parsed rows into PackageRecord values, keyed by
// the canonical PackageColumns titles. Absent cells stay empty strings.
func PackageRecords(rows []Row) []types.PackageRecord {
	records := make([]types.PackageRecord, 0, len(rows))
	for _, row := range rows {
		records = append(records, types.PackageRecord{
			Name:      row["Name"],
			ID:        row["Id"],
			Version:   row["Version"],
			Available: row["Available"],
			Source:    row["Source"],
		})
	}
	return records
}

// headerIndex returns the index of the first line whose leading
// whitespace-delimited token matches one of the expected titles, or -1.
// The titles are compared as a single case-sensitive alternation.
func headerIndex(lines []string, titles []string) int {
	quoted := make([]string, 0, len(titles))
	for _, title := range titles {
		quoted = append(quoted, regexp.QuoteMeta(title))
	}
	pattern := regexp.MustCompile(`^(?:` + strings.Join(quoted, "|") + `)(?:\s|$)`)
	for i, line := range lines {
		if pattern.MatchString(line) {
			return i
		}
	}
	return -1
}

// skipStructuralLine reports whether a line is table furniture rather than
// data: the dash separator under the header, a repeat of the header line,
// the no-results marker, or a blank line.
func skipStructuralLine(line string, header string) bool {
	trimmed := strings.TrimSpace(line)
	if trimmed == "" || trimmed == NoResultsMarker {
		return true
	}
	if line == header {
		return true
	}
	// Separator lines are dash runs, contiguous or padded per column.
	return strings.Trim(trimmed, "- ") == ""
}

// extractRow slices one data line by the resolved column boundaries.
func extractRow(line string, columns []ColumnSpec) Row {
	runes := []rune(line)
	row := Row{}
	for _, column := range columns {
		if column.Start >= len(runes) {
			continue
		}
		end := len(runes)
		if column.Length >= 0 && column.Start+column.Length < end {
			end = column.Start + column.Length
		}
		value := strings.TrimSpace(string(runes[column.Start:end]))
		if value == "" {
			continue
		}
		row[column.Title] = value
	}
	return row
}
