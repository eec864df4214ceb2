// Package asis parses the ASIS load list, load detail and inventory report
// pages.
package asis

import (
	"strings"

	"github.com/samber/lo"

	"github.com/you-humble/ge-sync/internal/model"
	"github.com/you-humble/ge-sync/internal/parser/field"
	"github.com/you-humble/ge-sync/platform/htmlextract"
)

const (
	loadsTableID     = "asisLoads"
	loadItemsTableID = "loadItems"
	reportTableID    = "inventoryReport"
)

// Item is one unit row from a load detail or the inventory report.
type Item struct {
	Model      string
	Serial     string
	Qty        int
	LoadNumber string
	Status     string
}

// ParseLoads returns the load list. Rows without a load number are dropped.
func ParseLoads(doc string) []model.ASISLoad {
	tbl := htmlextract.ParseTable(doc, loadsTableID)

	return lo.FilterMap(tbl.Rows, func(r []string, _ int) (model.ASISLoad, bool) {
		load := field.Upper(tbl.Cell(r, "Load #", "Load Number", "Load"))
		if load == "" {
			return model.ASISLoad{}, false
		}
		return model.ASISLoad{
			LoadNumber: load,
			Status:     model.LoadStatus(field.Upper(tbl.Cell(r, "Status"))),
			Units:      field.Int(tbl.Cell(r, "Units", "Qty")),
			CSO:        field.Clean(tbl.Cell(r, "CSO")),
			UpdatedAt:  field.Date(tbl.Cell(r, "Last Updated", "Updated")),
		}, true
	})
}

// ParseLoadItems returns the units of one load. The load number is taken
// from the argument since the detail table does not repeat it.
func ParseLoadItems(doc, loadNumber string) []Item {
	tbl := htmlextract.ParseTable(doc, loadItemsTableID)
	load := field.Upper(loadNumber)

	return lo.FilterMap(tbl.Rows, func(r []string, _ int) (Item, bool) {
		it := item(tbl, r)
		it.LoadNumber = load
		return it, it.Model != "" || it.Serial != ""
	})
}

// ParseInventoryReport returns every unit of the report, with its load
// number when the report carries one.
func ParseInventoryReport(doc string) []Item {
	tbl := htmlextract.ParseTable(doc, reportTableID)

	return lo.FilterMap(tbl.Rows, func(r []string, _ int) (Item, bool) {
		it := item(tbl, r)
		it.LoadNumber = field.Upper(tbl.Cell(r, "Load", "Load #", "Load Number"))
		return it, it.Model != "" || it.Serial != ""
	})
}

func item(tbl htmlextract.Table, r []string) Item {
	qty := 1
	if raw := strings.TrimSpace(tbl.Cell(r, "Qty", "Quantity")); raw != "" {
		qty = field.Int(raw)
	}
	return Item{
		Model:  field.Upper(tbl.Cell(r, "Model", "Model #")),
		Serial: field.Upper(tbl.Cell(r, "Serial", "Serial #")),
		Qty:    qty,
		Status: field.Clean(tbl.Cell(r, "Status")),
	}
}
