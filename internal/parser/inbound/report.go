package inbound

import (
	"regexp"
	"strings"

	"github.com/you-humble/ge-sync/internal/model"
	"github.com/you-humble/ge-sync/internal/parser/field"
	"github.com/you-humble/ge-sync/platform/pdflayout"
)

const (
	colShipment   = "Inbound Shipment"
	colSCAC       = "SCAC"
	colTruck      = "Truck"
	colDate       = "Date"
	colTime       = "Time"
	colTotalUnits = "Total Units"

	colModel  = "Model"
	colSerial = "Serial"
	colQty    = "Qty"
	colRcvd   = "RCVD"
	colShort  = "Short"
	colDamage = "Damage"
	colCSO    = "CSO"
)

var summarySpec = pdflayout.Spec{
	Columns:          []string{colShipment, colSCAC, colTruck, colDate, colTime, colTotalUnits},
	MinHeaderMatches: 4,
	RowFilter:        field.ShipmentNumber.MatchString,
	Limit:            1,
}

var itemSpec = pdflayout.Spec{
	Columns:          []string{colShipment, colCSO, colModel, colSerial, colQty, colRcvd, colShort, colDamage},
	MinHeaderMatches: 4,
	RowFilter:        field.ShipmentNumber.MatchString,
}

// ParseReport prefers the layout parse and falls back to the plain-text
// heuristic only when the layout parse finds no items.
func ParseReport(pages []pdflayout.Page, text string) model.ReceivingReport {
	header, items := ParseLayout(pages)
	if len(items) > 0 {
		return model.ReceivingReport{Header: header, Items: items, FromLayout: true}
	}

	header, items = ParseText(text)
	return model.ReceivingReport{Header: header, Items: items}
}

// ParseLayout reads the summary block and item table by column position.
func ParseLayout(pages []pdflayout.Page) (model.ReceivingReportHeader, []model.ReceivingReportItem) {
	var header model.ReceivingReportHeader
	if recs := pdflayout.Extract(firstPage(pages), summarySpec); len(recs) > 0 {
		r := recs[0]
		header = model.ReceivingReportHeader{
			InboundShipmentNo: r[colShipment],
			SCAC:              r[colSCAC],
			Truck:             r[colTruck],
			Date:              r[colDate],
			Time:              r[colTime],
			TotalUnits:        pdflayout.Digits(r[colTotalUnits]),
		}
	}

	recs := pdflayout.Extract(pages, itemSpec)
	if len(recs) == 0 {
		return model.ReceivingReportHeader{}, nil
	}

	items := make([]model.ReceivingReportItem, 0, len(recs))
	for i, r := range recs {
		items = append(items, model.ReceivingReportItem{
			InboundShipmentNo: r[colShipment],
			LineIndex:         i + 1,
			Model:             field.Upper(r[colModel]),
			Serial:            field.Upper(r[colSerial]),
			Qty:               pdflayout.Digits(r[colQty]),
			Rcvd:              pdflayout.Digits(r[colRcvd]),
			Short:             pdflayout.Digits(r[colShort]),
			Damage:            pdflayout.Digits(r[colDamage]),
			CSO:               r[colCSO],
		})
	}

	if header.InboundShipmentNo == "" {
		header.InboundShipmentNo = items[0].InboundShipmentNo
	}

	return header, items
}

func firstPage(pages []pdflayout.Page) []pdflayout.Page {
	if len(pages) == 0 {
		return nil
	}
	return pages[:1]
}

var (
	dateToken      = regexp.MustCompile(`^\d{1,2}/\d{1,2}/\d{2,4}$`)
	numericToken   = regexp.MustCompile(`^\d+$`)
	rowTerminators = regexp.MustCompile(`(?i)^(page\s+\d+|total\b|inbound\s+shipment\b|printed\b)`)
)

// ParseText is the lower-fidelity fallback over the report's plain text.
// It never fails; unreadable input yields fewer or no items.
func ParseText(text string) (model.ReceivingReportHeader, []model.ReceivingReportItem) {
	lines := make([]string, 0)
	for _, l := range strings.Split(text, "\n") {
		if l = field.Clean(l); l != "" {
			lines = append(lines, l)
		}
	}

	headerAt := -1
	for i, l := range lines {
		if shipmentIn(strings.Fields(l)) >= 0 {
			headerAt = i
			break
		}
	}
	if headerAt < 0 {
		return model.ReceivingReportHeader{}, nil
	}

	header := textHeader(strings.Fields(lines[headerAt]))

	var (
		rows [][]string
		cur  []string
	)
	flush := func() {
		if len(cur) > 0 {
			rows = append(rows, cur)
		}
		cur = nil
	}
	for _, l := range lines[headerAt+1:] {
		toks := strings.Fields(l)
		switch {
		case field.ShipmentNumber.MatchString(toks[0]):
			flush()
			cur = toks
		case rowTerminators.MatchString(l):
			flush()
		case cur != nil:
			cur = append(cur, toks...)
		}
	}
	flush()

	items := make([]model.ReceivingReportItem, 0, len(rows))
	for _, toks := range rows {
		item := model.ReceivingReportItem{
			InboundShipmentNo: toks[0],
			LineIndex:         len(items) + 1,
		}

		q := lastNumeric(toks)
		if q > 0 {
			item.Qty = pdflayout.Digits(toks[q])
			if q-1 > 0 && !numericToken.MatchString(toks[q-1]) {
				item.Serial = field.Upper(toks[q-1])
			}
			if q-2 > 0 {
				item.Model = field.Upper(toks[q-2])
			}
		}

		items = append(items, item)
	}

	if header.InboundShipmentNo == "" && len(items) > 0 {
		header.InboundShipmentNo = items[0].InboundShipmentNo
	}

	return header, items
}

func shipmentIn(toks []string) int {
	for i, t := range toks {
		if field.ShipmentNumber.MatchString(t) {
			return i
		}
	}
	return -1
}

// textHeader reads SCAC and truck as the two tokens before the first date,
// time and total units as the two after it.
func textHeader(toks []string) model.ReceivingReportHeader {
	h := model.ReceivingReportHeader{}
	if i := shipmentIn(toks); i >= 0 {
		h.InboundShipmentNo = toks[i]
	}

	d := -1
	for i, t := range toks {
		if dateToken.MatchString(t) {
			d = i
			break
		}
	}
	if d < 0 {
		return h
	}

	h.Date = toks[d]
	if d-2 >= 0 && !field.ShipmentNumber.MatchString(toks[d-2]) {
		h.SCAC = toks[d-2]
	}
	if d-1 >= 0 && !field.ShipmentNumber.MatchString(toks[d-1]) {
		h.Truck = toks[d-1]
	}
	if d+1 < len(toks) {
		h.Time = toks[d+1]
	}
	if d+2 < len(toks) {
		h.TotalUnits = pdflayout.Digits(toks[d+2])
	}

	return h
}

func lastNumeric(toks []string) int {
	for i := len(toks) - 1; i > 0; i-- {
		if numericToken.MatchString(toks[i]) {
			return i
		}
	}
	return -1
}
