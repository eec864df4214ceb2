// Package pdf turns PDF bytes into positioned text fragments and a plain
// text rendering of the same content.
package pdf

import (
	"bytes"
	"fmt"
	"math"
	"sort"
	"strings"

	lpdf "github.com/ledongthuc/pdf"

	"github.com/you-humble/ge-sync/internal/model"
	"github.com/you-humble/ge-sync/platform/pdflayout"
)

// columnGap is the horizontal gap, in multiples of the font size, that
// separates two fragments on one line.
const columnGap = 1.2

type reader struct{}

func NewReader() *reader { return &reader{} }

// Read extracts fragments for every page and the plain text built from
// them, one line per row.
func (r *reader) Read(data []byte) (pages []pdflayout.Page, text string, err error) {
	const op = "pdf.reader.Read"

	defer func() {
		if rec := recover(); rec != nil {
			pages, text = nil, ""
			err = fmt.Errorf("%s: %w: %v", op, model.ErrPDFParse, rec)
		}
	}()

	doc, err := lpdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, "", fmt.Errorf("%s: %w: %v", op, model.ErrPDFParse, err)
	}

	var sb strings.Builder
	for i := 1; i <= doc.NumPage(); i++ {
		p := doc.Page(i)
		if p.V.IsNull() {
			continue
		}
		page := Fragments(p.Content().Text)
		pages = append(pages, page)

		for _, row := range pdflayout.Rows(page) {
			for j, f := range row.Fragments {
				if j > 0 {
					sb.WriteByte(' ')
				}
				sb.WriteString(f.Text)
			}
			sb.WriteByte('\n')
		}
	}

	return pages, sb.String(), nil
}

type glyph struct {
	s        string
	x, y, w  float64
	fontSize float64
}

// Fragments merges single glyph runs into word-level fragments. Glyphs on
// one baseline join while the gap between them stays under columnGap font
// sizes, so multi-word headers stay in one fragment.
func Fragments(texts []lpdf.Text) pdflayout.Page {
	lines := map[float64][]glyph{}
	for _, t := range texts {
		if t.S == "" {
			continue
		}
		y := math.Round(t.Y*10) / 10
		lines[y] = append(lines[y], glyph{s: t.S, x: t.X, y: y, w: t.W, fontSize: t.FontSize})
	}

	ys := make([]float64, 0, len(lines))
	for y := range lines {
		ys = append(ys, y)
	}
	sort.Sort(sort.Reverse(sort.Float64Slice(ys)))

	var out pdflayout.Page
	for _, y := range ys {
		gs := lines[y]
		sort.SliceStable(gs, func(i, j int) bool { return gs[i].x < gs[j].x })

		var (
			cur    strings.Builder
			startX float64
			end    float64
		)
		flush := func() {
			if s := strings.TrimSpace(cur.String()); s != "" {
				out = append(out, pdflayout.Fragment{Text: s, X: startX, Y: y})
			}
			cur.Reset()
		}

		for _, g := range gs {
			fs := g.fontSize
			if fs <= 0 {
				fs = 8
			}
			w := g.w
			if w <= 0 {
				w = fs * 0.5 * float64(len([]rune(g.s)))
			}

			if cur.Len() > 0 && g.x-end > fs*columnGap {
				flush()
			}
			if cur.Len() == 0 {
				if strings.TrimSpace(g.s) == "" {
					continue
				}
				startX = g.x
			}
			cur.WriteString(g.s)
			end = g.x + w
		}
		flush()
	}

	return out
}
