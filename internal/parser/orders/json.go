package orders

import (
	"bytes"
	"encoding/json"
	"strconv"
	"strings"
)

// flexString accepts a JSON string, number or null.
type flexString string

func (f *flexString) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if bytes.Equal(b, []byte("null")) {
		*f = ""
		return nil
	}
	if len(b) > 0 && b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*f = flexString(strings.TrimSpace(s))
		return nil
	}
	*f = flexString(string(b))
	return nil
}

// flexInt accepts a JSON number, a numeric string, or null.
type flexInt int

func (f *flexInt) UnmarshalJSON(b []byte) error {
	var s flexString
	if err := s.UnmarshalJSON(b); err != nil {
		return err
	}
	if s == "" {
		*f = 0
		return nil
	}
	n, err := strconv.ParseFloat(strings.ReplaceAll(string(s), ",", ""), 64)
	if err != nil {
		*f = 0
		return nil
	}
	*f = flexInt(int(n))
	return nil
}

type customerJSON struct {
	Name    flexString `json:"name"`
	Phone   flexString `json:"phone"`
	Email   flexString `json:"email"`
	Address flexString `json:"address"`
}

type productLineJSON struct {
	LineNumber flexInt    `json:"lineNumber"`
	Model      flexString `json:"model"`
	Serial     flexString `json:"serial"`
	Qty        flexInt    `json:"qty"`
	Status     flexString `json:"status"`
}

type serviceLineJSON struct {
	LineNumber  flexInt    `json:"lineNumber"`
	Code        flexString `json:"code"`
	Description flexString `json:"description"`
	Qty         flexInt    `json:"qty"`
}

type deliveryJSON struct {
	DeliveryID    flexString        `json:"deliveryId"`
	Status        flexString        `json:"status"`
	Address       flexString        `json:"address"`
	ScheduledDate flexString        `json:"scheduledDate"`
	ShipDate      flexString        `json:"shipDate"`
	Route         flexString        `json:"route"`
	ProductLines  []productLineJSON `json:"productLines"`
	ServiceLines  []serviceLineJSON `json:"serviceLines"`
}

type orderJSON struct {
	CSO                  flexString     `json:"cso"`
	OrderType            flexString     `json:"orderType"`
	OrderDate            flexString     `json:"orderDate"`
	Customer             customerJSON   `json:"customer"`
	FreightTerms         flexString     `json:"freightTerms"`
	ShippingInstructions flexString     `json:"shippingInstructions"`
	Deliveries           []deliveryJSON `json:"deliveries"`
}

type envelopeJSON struct {
	OrderData []orderJSON `json:"orderData"`
}
