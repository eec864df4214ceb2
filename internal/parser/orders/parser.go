// Package orders parses DMS order payloads and the order search page.
package orders

import (
	"bytes"
	"encoding/json"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/samber/lo"

	"github.com/you-humble/ge-sync/internal/model"
	"github.com/you-humble/ge-sync/internal/parser/field"
	"github.com/you-humble/ge-sync/platform/htmlextract"
)

const orderNumberPrefix = "orderNumber"

// ParseJSON decodes an order payload. The DMS sends either
// {"orderData": [...]} or a bare array; both are accepted. Orders without a
// CSO are dropped.
func ParseJSON(body []byte, locationID string) ([]model.OrderRecord, error) {
	const op = "orders.ParseJSON"

	body = bytes.TrimSpace(body)
	if len(body) == 0 {
		return nil, nil
	}

	var raw []orderJSON
	switch body[0] {
	case '[':
		if err := json.Unmarshal(body, &raw); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
	case '{':
		var env envelopeJSON
		if err := json.Unmarshal(body, &env); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		raw = env.OrderData
	default:
		return nil, fmt.Errorf("%s: unexpected payload start %q", op, body[0])
	}

	out := make([]model.OrderRecord, 0, len(raw))
	for _, o := range raw {
		cso := string(o.CSO)
		if cso == "" {
			continue
		}
		out = append(out, toOrder(o, locationID))
	}

	return out, nil
}

func toOrder(o orderJSON, locationID string) model.OrderRecord {
	cso := string(o.CSO)

	return model.OrderRecord{
		CSO:        cso,
		LocationID: locationID,
		OrderType:  string(o.OrderType),
		OrderDate:  field.Date(string(o.OrderDate)),
		Customer: model.Customer{
			Name:    field.Clean(string(o.Customer.Name)),
			Phone:   string(o.Customer.Phone),
			Email:   string(o.Customer.Email),
			Address: field.Clean(string(o.Customer.Address)),
		},
		FreightTerms:         string(o.FreightTerms),
		ShippingInstructions: field.Clean(string(o.ShippingInstructions)),
		Deliveries: lo.FilterMap(o.Deliveries, func(d deliveryJSON, _ int) (model.DeliveryRecord, bool) {
			if d.DeliveryID == "" {
				return model.DeliveryRecord{}, false
			}
			return toDelivery(cso, d), true
		}),
	}
}

func toDelivery(cso string, d deliveryJSON) model.DeliveryRecord {
	return model.DeliveryRecord{
		CSO:           cso,
		DeliveryID:    string(d.DeliveryID),
		Status:        string(d.Status),
		Address:       field.Clean(string(d.Address)),
		ScheduledDate: field.Date(string(d.ScheduledDate)),
		ShipDate:      field.Date(string(d.ShipDate)),
		Route:         string(d.Route),
		ProductLines: lo.Map(d.ProductLines, func(p productLineJSON, i int) model.ProductLineRecord {
			return model.ProductLineRecord{
				LineNumber: lineNumber(int(p.LineNumber), i),
				Model:      field.Upper(string(p.Model)),
				Serial:     field.Upper(string(p.Serial)),
				Qty:        int(p.Qty),
				Status:     string(p.Status),
			}
		}),
		ServiceLines: lo.Map(d.ServiceLines, func(s serviceLineJSON, i int) model.ServiceLineRecord {
			return model.ServiceLineRecord{
				LineNumber:  lineNumber(int(s.LineNumber), i),
				Code:        string(s.Code),
				Description: field.Clean(string(s.Description)),
				Qty:         int(s.Qty),
			}
		}),
	}
}

// lineNumber falls back to the 1-based position when the payload omits it.
func lineNumber(n, idx int) int {
	if n > 0 {
		return n
	}
	return idx + 1
}

// CSOsFromHTML reads CSOs from the hidden orderNumber{n} inputs of the
// search page, ordered by n, trimmed and de-duplicated.
func CSOsFromHTML(doc string) []string {
	type numbered struct {
		n   int
		cso string
	}

	var found []numbered
	for name, v := range htmlextract.HiddenInputs(doc) {
		suffix, ok := strings.CutPrefix(name, orderNumberPrefix)
		if !ok {
			continue
		}
		n, err := strconv.Atoi(suffix)
		if err != nil {
			continue
		}
		if v = strings.TrimSpace(v); v != "" {
			found = append(found, numbered{n: n, cso: v})
		}
	}

	sort.Slice(found, func(i, j int) bool { return found[i].n < found[j].n })

	return lo.Uniq(lo.Map(found, func(f numbered, _ int) string { return f.cso }))
}
