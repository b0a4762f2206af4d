package loader

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"
	"time"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

const (
	NotProvided = "Not Provided"

	expiryDateLayout = "2006-01-02"
	timestampLayout  = "2006-01-02 15:04:05"
)

var dateLayouts = []string{
	"2006-01-02",
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
	"2006-01-02T15:04:05",
	time.RFC3339,
	"2006/01/02",
	"1/2/2006",
	"1/2/2006 15:04",
	"1/2/2006 15:04:05",
}

// rawTable is one CSV file: a header and string records of the same width.
// lines[i] is the file line records[i] started on.
type rawTable struct {
	name    string
	header  []string
	index   map[string]int
	records [][]string
	lines   []int
}

func readTable(name string, r io.Reader) (*rawTable, error) {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("%s: read header: %w", name, err)
	}
	// a UTF-8 BOM survives csv parsing on the first header cell
	if len(header) > 0 {
		header[0] = strings.TrimPrefix(header[0], "\ufeff")
	}

	t := &rawTable{name: name, header: header, index: make(map[string]int, len(header))}
	for i, h := range header {
		t.index[normalizeHeader(h)] = i
	}

	for {
		rec, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%s: %w", name, err)
		}
		line, _ := reader.FieldPos(0)
		t.records = append(t.records, rec)
		t.lines = append(t.lines, line)
	}
	return t, nil
}

// line is the file line of records[i].
func (t *rawTable) line(i int) int {
	if i < len(t.lines) {
		return t.lines[i]
	}
	return i + 2
}

func (t *rawTable) write(w io.Writer) error {
	writer := csv.NewWriter(w)
	if err := writer.Write(t.header); err != nil {
		return err
	}
	if err := writer.WriteAll(t.records); err != nil {
		return err
	}
	return writer.Error()
}

func normalizeHeader(h string) string {
	return strings.ToLower(strings.TrimSpace(h))
}

func (t *rawTable) require(columns ...string) error {
	for _, c := range columns {
		if _, ok := t.index[normalizeHeader(c)]; !ok {
			return fmt.Errorf("%s: missing column %q", t.name, c)
		}
	}
	return nil
}

func (t *rawTable) has(column string) bool {
	_, ok := t.index[normalizeHeader(column)]
	return ok
}

func (t *rawTable) get(rec []string, column string) string {
	i, ok := t.index[normalizeHeader(column)]
	if !ok || i >= len(rec) {
		return ""
	}
	return rec[i]
}

func (t *rawTable) set(rec []string, column, value string) {
	if i, ok := t.index[normalizeHeader(column)]; ok && i < len(rec) {
		rec[i] = value
	}
}

// dedupe drops records identical to an earlier one and returns how many went.
func (t *rawTable) dedupe() int {
	seen := make(map[string]struct{}, len(t.records))
	kept := t.records[:0]
	var keptLines []int
	for i, rec := range t.records {
		key := strings.Join(rec, "\x1f")
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		kept = append(kept, rec)
		keptLines = append(keptLines, t.line(i))
	}
	dropped := len(t.records) - len(kept)
	t.records = kept
	t.lines = keptLines
	return dropped
}

func (t *rawTable) titleCase(column string) {
	if !t.has(column) {
		return
	}
	caser := cases.Title(language.Und)
	for _, rec := range t.records {
		t.set(rec, column, caser.String(strings.TrimSpace(t.get(rec, column))))
	}
}

func (t *rawTable) fillMissing(column, value string) {
	if !t.has(column) {
		return
	}
	for _, rec := range t.records {
		if strings.TrimSpace(t.get(rec, column)) == "" {
			t.set(rec, column, value)
		}
	}
}

// normalizeDates rewrites column in layout; values that do not parse become
// empty, which loads as NULL.
func (t *rawTable) normalizeDates(column, layout string) {
	if !t.has(column) {
		return
	}
	for _, rec := range t.records {
		parsed, ok := parseDate(t.get(rec, column))
		if !ok {
			t.set(rec, column, "")
			continue
		}
		t.set(rec, column, parsed.Format(layout))
	}
}

func parseDate(raw string) (time.Time, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return time.Time{}, false
	}
	for _, layout := range dateLayouts {
		if ts, err := time.Parse(layout, raw); err == nil {
			return ts, true
		}
	}
	return time.Time{}, false
}
