// Package pdflayout rebuilds table rows from positioned text fragments.
//
// Reports are laid out with fixed columns whose x offsets drift between
// reports, so columns are located from the header row of each page rather
// than from constants.
package pdflayout

import (
	"math"
	"sort"
	"strconv"
	"strings"
)

// Fragment is one run of text at a PDF user-space position.
type Fragment struct {
	Text string
	X    float64
	Y    float64
}

// Page is the unordered fragment list of one page.
type Page []Fragment

// Row is a set of fragments sharing a baseline, ordered left to right.
type Row struct {
	Y         float64
	Fragments []Fragment
}

// Column binds a logical column name to its x anchor on the header row.
type Column struct {
	Name string
	X    float64
}

// Spec describes a table to extract.
type Spec struct {
	// Columns are the expected header names. A header fragment matches a
	// column when it contains every whitespace-separated token of the name,
	// case-insensitively.
	Columns []string
	// MinHeaderMatches is how many columns a row must match to be taken as
	// the header row. Zero means all of them.
	MinHeaderMatches int
	// RowFilter selects data rows by their first fragment's text. Nil
	// accepts every row after the header.
	RowFilter func(first string) bool
	// Limit stops after this many data rows per page. Zero means no limit.
	Limit int
}

// Record maps column names to the joined text found in that column.
type Record map[string]string

// Rows clusters fragments by y rounded to one decimal, top to bottom.
func Rows(page Page) []Row {
	byY := make(map[float64][]Fragment)
	for _, f := range page {
		if strings.TrimSpace(f.Text) == "" {
			continue
		}
		y := math.Round(f.Y*10) / 10
		byY[y] = append(byY[y], f)
	}

	out := make([]Row, 0, len(byY))
	for y, frags := range byY {
		sort.SliceStable(frags, func(i, j int) bool { return frags[i].X < frags[j].X })
		out = append(out, Row{Y: y, Fragments: frags})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Y > out[j].Y })

	return out
}

func tokens(name string) []string {
	return strings.Fields(strings.ToLower(name))
}

func matches(text string, toks []string) bool {
	text = strings.ToLower(text)
	for _, t := range toks {
		if !strings.Contains(text, t) {
			return false
		}
	}
	return len(toks) > 0
}

// FindHeader returns the index of the first row matching enough columns,
// together with the matched columns ordered by x. It returns -1 when no row
// qualifies.
func FindHeader(rows []Row, spec Spec) (int, []Column) {
	need := spec.MinHeaderMatches
	if need <= 0 || need > len(spec.Columns) {
		need = len(spec.Columns)
	}

	for i, r := range rows {
		cols := headerColumns(r, spec.Columns)
		if len(cols) >= need && len(cols) > 0 {
			return i, cols
		}
	}
	return -1, nil
}

func headerColumns(r Row, names []string) []Column {
	cols := make([]Column, 0, len(names))
	used := make(map[int]bool, len(r.Fragments))
	for _, name := range names {
		toks := tokens(name)
		for fi, f := range r.Fragments {
			if used[fi] || !matches(f.Text, toks) {
				continue
			}
			used[fi] = true
			cols = append(cols, Column{Name: name, X: f.X})
			break
		}
	}
	sort.SliceStable(cols, func(i, j int) bool { return cols[i].X < cols[j].X })
	return cols
}

// Bounds returns the right edge of every column: the midpoint to the next
// header x, and +Inf for the last column.
func Bounds(cols []Column) []float64 {
	out := make([]float64, len(cols))
	for i := range cols {
		if i == len(cols)-1 {
			out[i] = math.Inf(1)
			continue
		}
		out[i] = (cols[i].X + cols[i+1].X) / 2
	}
	return out
}

// Assign places fragments into columns by x. Fragments sharing a column are
// joined with a single space.
func Assign(r Row, cols []Column, bounds []float64) Record {
	rec := make(Record, len(cols))
	for _, f := range r.Fragments {
		idx := len(cols) - 1
		for i, b := range bounds {
			if f.X < b {
				idx = i
				break
			}
		}
		if idx < 0 {
			continue
		}
		name := cols[idx].Name
		t := strings.TrimSpace(f.Text)
		if prev, ok := rec[name]; ok && prev != "" {
			rec[name] = prev + " " + t
		} else {
			rec[name] = t
		}
	}
	return rec
}

// Extract runs header detection and column assignment on every page and
// concatenates the records. Pages without a header row contribute nothing.
func Extract(pages []Page, spec Spec) []Record {
	var out []Record
	for _, p := range pages {
		rows := Rows(p)
		hi, cols := FindHeader(rows, spec)
		if hi < 0 {
			continue
		}
		bounds := Bounds(cols)

		n := 0
		for _, r := range rows[hi+1:] {
			if len(r.Fragments) == 0 {
				continue
			}
			if spec.RowFilter != nil && !spec.RowFilter(strings.TrimSpace(r.Fragments[0].Text)) {
				continue
			}
			out = append(out, Assign(r, cols, bounds))
			n++
			if spec.Limit > 0 && n >= spec.Limit {
				break
			}
		}
	}
	return out
}

// Digits parses s only if it is a non-empty run of ASCII digits.
func Digits(s string) *int {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	for _, c := range s {
		if c < '0' || c > '9' {
			return nil
		}
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return nil
	}
	return &n
}
