// Package inbound parses the inbound shipment listing and receiving
// reports.
package inbound

import (
	"strconv"
	"strings"

	"github.com/you-humble/ge-sync/internal/model"
	"github.com/you-humble/ge-sync/internal/parser/field"
	"github.com/you-humble/ge-sync/platform/htmlextract"
)

const (
	historyTableID       = "inboundHistory"
	shipmentNumberPrefix = "shipmentNumber"
)

// ParseHistory returns the listing rows and the page's hidden-input blob.
// The hidden shipmentNumber{lineId} input is authoritative for the shipment
// number of the row with that line id.
func ParseHistory(doc string) ([]model.InboundHistoryRow, map[string]string) {
	blob := htmlextract.HiddenInputs(doc)
	tbl := htmlextract.ParseTable(doc, historyTableID)

	rows := make([]model.InboundHistoryRow, 0, len(tbl.Rows))
	for i, r := range tbl.Rows {
		lineID, err := strconv.Atoi(strings.TrimSpace(tbl.Cell(r, "#", "Line", "Line ID")))
		if err != nil || lineID <= 0 {
			lineID = i + 1
		}

		shipment := field.Upper(tbl.Cell(r, "Shipment #", "Inbound Shipment", "Shipment"))
		if hidden := field.Upper(blob[shipmentNumberPrefix+strconv.Itoa(lineID)]); hidden != "" {
			shipment = hidden
		}
		if !field.ShipmentNumber.MatchString(shipment) {
			continue
		}

		rows = append(rows, model.InboundHistoryRow{
			ShipmentNumber: shipment,
			Vendor:         field.Clean(tbl.Cell(r, "Vendor")),
			Location:       field.Clean(tbl.Cell(r, "Location")),
			Truck:          field.Clean(tbl.Cell(r, "Truck", "Truck #")),
			ScheduledDate:  field.Date(tbl.Cell(r, "Scheduled Date", "Sched Date")),
			Status:         field.Clean(tbl.Cell(r, "Status")),
			LineID:         lineID,
		})
	}

	return rows, blob
}

// ReportForm copies blob and sets the per-row fields that select the
// receiving report of row.
func ReportForm(blob map[string]string, row model.InboundHistoryRow) map[string][]string {
	form := make(map[string][]string, len(blob)+3)
	for k, v := range blob {
		form[k] = []string{v}
	}
	form["rowRecNo"] = []string{strconv.Itoa(row.LineID)}
	form["selShipmentNumVal"] = []string{row.ShipmentNumber}
	form["hCmd"] = []string{"PRINTRCVRPT"}
	return form
}
