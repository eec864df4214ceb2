package pdflayout

import (
	"fmt"
	"math"
	"regexp"
	"testing"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var shipmentRe = regexp.MustCompile(`^[A-Z]\d{7}-\d$`)

var itemColumns = []string{"Inbound Shipment", "Model", "Serial", "Qty", "RCVD", "Short", "Damage", "CSO"}

var headerX = []float64{20, 110, 190, 290, 330, 370, 410, 460}

func itemSpec() Spec {
	return Spec{
		Columns:          itemColumns,
		MinHeaderMatches: 4,
		RowFilter:        shipmentRe.MatchString,
	}
}

func headerRow(y float64) []Fragment {
	out := make([]Fragment, len(itemColumns))
	for i, c := range itemColumns {
		out[i] = Fragment{Text: c, X: headerX[i], Y: y}
	}
	return out
}

func TestRows(t *testing.T) {
	t.Parallel()

	page := Page{
		{Text: "b", X: 50, Y: 700.04},
		{Text: "a", X: 10, Y: 699.96},
		{Text: "low", X: 10, Y: 100},
		{Text: "  ", X: 5, Y: 700},
		{Text: "top", X: 10, Y: 750},
	}

	rows := Rows(page)
	require.Len(t, rows, 3)
	assert.Equal(t, 750.0, rows[0].Y)
	assert.Equal(t, 700.0, rows[1].Y)
	assert.Equal(t, 100.0, rows[2].Y)

	require.Len(t, rows[1].Fragments, 2)
	assert.Equal(t, "a", rows[1].Fragments[0].Text)
	assert.Equal(t, "b", rows[1].Fragments[1].Text)
}

func TestBounds(t *testing.T) {
	t.Parallel()

	b := Bounds([]Column{{Name: "a", X: 10}, {Name: "b", X: 30}, {Name: "c", X: 100}})
	require.Len(t, b, 3)
	assert.Equal(t, 20.0, b[0])
	assert.Equal(t, 65.0, b[1])
	assert.True(t, math.IsInf(b[2], 1))
}

func TestExtractRoundTrip(t *testing.T) {
	t.Parallel()

	for _, shift := range []float64{-1, 0, 1} {
		t.Run(fmt.Sprintf("shift %+.0f", shift), func(t *testing.T) {
			t.Parallel()

			n := gofakeit.IntRange(1, 12)
			page := Page(headerRow(600))
			want := make([]Record, 0, n)

			for i := 0; i < n; i++ {
				y := 580 - float64(i)*14
				values := []string{
					fmt.Sprintf("A%07d-%d", 1000000+i, i%10),
					fmt.Sprintf("GTW%03d", i),
					fmt.Sprintf("SN%s", gofakeit.LetterN(6)),
					fmt.Sprint(i + 1),
					fmt.Sprint(i + 1),
					"0",
					"0",
					fmt.Sprintf("%d", 5000000+i),
				}
				rec := Record{}
				for c, v := range values {
					page = append(page, Fragment{Text: v, X: headerX[c] + shift, Y: y})
					rec[itemColumns[c]] = v
				}
				want = append(want, rec)
			}

			got := Extract([]Page{page}, itemSpec())
			require.Len(t, got, n)
			assert.Equal(t, want, got)
		})
	}
}

func TestExtract(t *testing.T) {
	t.Parallel()

	type testCase struct {
		name   string
		pages  []Page
		spec   Spec
		assert func(t *testing.T, got []Record)
	}

	tests := []testCase{
		{
			name:  "no header row",
			pages: []Page{{{Text: "A1234567-1", X: 20, Y: 500}, {Text: "GTW", X: 110, Y: 500}}},
			spec:  itemSpec(),
			assert: func(t *testing.T, got []Record) {
				assert.Empty(t, got)
			},
		},
		{
			name: "rows not starting with a shipment number are skipped",
			pages: []Page{append(headerRow(600),
				Fragment{Text: "Page 1 of 1", X: 20, Y: 580},
				Fragment{Text: "A1234567-1", X: 20, Y: 560},
				Fragment{Text: "GTW", X: 110, Y: 560},
				Fragment{Text: "Total", X: 20, Y: 540},
			)},
			spec: itemSpec(),
			assert: func(t *testing.T, got []Record) {
				require.Len(t, got, 1)
				assert.Equal(t, "A1234567-1", got[0]["Inbound Shipment"])
			},
		},
		{
			name: "fragments in one column are joined with a space",
			pages: []Page{append(headerRow(600),
				Fragment{Text: "A1234567-1", X: 20, Y: 560},
				Fragment{Text: "GTW", X: 110, Y: 560},
				Fragment{Text: "755NW", X: 130, Y: 560},
			)},
			spec: itemSpec(),
			assert: func(t *testing.T, got []Record) {
				require.Len(t, got, 1)
				assert.Equal(t, "GTW 755NW", got[0]["Model"])
			},
		},
		{
			name: "header found with only some columns present",
			pages: []Page{{
				{Text: "Inbound Shipment", X: 20, Y: 600},
				{Text: "Model", X: 110, Y: 600},
				{Text: "Serial", X: 190, Y: 600},
				{Text: "Qty", X: 290, Y: 600},
				{Text: "A1234567-1", X: 21, Y: 580},
				{Text: "GTW", X: 111, Y: 580},
				{Text: "SN1", X: 191, Y: 580},
				{Text: "3", X: 291, Y: 580},
			}},
			spec: itemSpec(),
			assert: func(t *testing.T, got []Record) {
				require.Len(t, got, 1)
				assert.Equal(t, "3", got[0]["Qty"])
				_, ok := got[0]["CSO"]
				assert.False(t, ok)
			},
		},
		{
			name: "limit stops after first data row",
			pages: []Page{append(headerRow(600),
				Fragment{Text: "A1234567-1", X: 20, Y: 580},
				Fragment{Text: "A1234567-2", X: 20, Y: 560},
			)},
			spec: Spec{Columns: itemColumns, MinHeaderMatches: 4, RowFilter: shipmentRe.MatchString, Limit: 1},
			assert: func(t *testing.T, got []Record) {
				require.Len(t, got, 1)
				assert.Equal(t, "A1234567-1", got[0]["Inbound Shipment"])
			},
		},
		{
			name: "each page locates its own header",
			pages: []Page{
				append(headerRow(600), Fragment{Text: "A1234567-1", X: 20, Y: 580}),
				append(headerRow(700), Fragment{Text: "A1234567-2", X: 20, Y: 680}),
			},
			spec: itemSpec(),
			assert: func(t *testing.T, got []Record) {
				require.Len(t, got, 2)
				assert.Equal(t, "A1234567-2", got[1]["Inbound Shipment"])
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			tt.assert(t, Extract(tt.pages, tt.spec))
		})
	}
}

func TestDigits(t *testing.T) {
	t.Parallel()

	n := gofakeit.IntRange(0, 9999)
	got := Digits(fmt.Sprint(n))
	require.NotNil(t, got)
	assert.Equal(t, n, *got)

	for _, s := range []string{"", " ", "1a", "-1", "1.0", "N/A", "99999999999999999999"} {
		assert.Nil(t, Digits(s), s)
	}
	assert.Equal(t, 7, *Digits(" 7 "))
}
