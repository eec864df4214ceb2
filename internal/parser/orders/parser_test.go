package orders

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/you-humble/ge-sync/internal/model"
)

const wrappedPayload = `{
  "orderData": [
    {
      "cso": "1234567890",
      "orderType": "SALES",
      "orderDate": "10/01/2025",
      "customer": {"name": "  Jane   Doe ", "phone": "555-0100", "email": "jane@example.com", "address": "1 Main St"},
      "freightTerms": "PREPAID",
      "shippingInstructions": "Call ahead",
      "deliveries": [
        {
          "deliveryId": "D1",
          "status": "SCHEDULED",
          "scheduledDate": "2025-10-04",
          "route": "R7",
          "productLines": [
            {"lineNumber": "1", "model": "gtw755", "serial": "sn001", "qty": 1, "status": "OPEN"},
            {"model": "PVD28", "serial": null, "qty": "2"}
          ],
          "serviceLines": [
            {"lineNumber": 10, "code": "HAUL", "description": "Haul away", "qty": 1}
          ]
        },
        {"deliveryId": "", "status": "VOID"}
      ]
    },
    {"cso": "", "orderType": "SALES"}
  ]
}`

func TestParseJSON(t *testing.T) {
	t.Parallel()

	type testCase struct {
		name   string
		body   string
		assert func(t *testing.T, got []model.OrderRecord, err error)
	}

	tests := []testCase{
		{
			name: "object wrapped payload",
			body: wrappedPayload,
			assert: func(t *testing.T, got []model.OrderRecord, err error) {
				require.NoError(t, err)
				require.Len(t, got, 1)

				o := got[0]
				assert.Equal(t, "1234567890", o.CSO)
				assert.Equal(t, "19SU", o.LocationID)
				assert.Equal(t, "Jane Doe", o.Customer.Name)
				require.NotNil(t, o.OrderDate)
				assert.True(t, o.OrderDate.Equal(time.Date(2025, 10, 1, 0, 0, 0, 0, time.UTC)))

				require.Len(t, o.Deliveries, 1)
				d := o.Deliveries[0]
				assert.Equal(t, "1234567890", d.CSO)
				assert.Equal(t, "D1", d.DeliveryID)
				assert.Nil(t, d.ShipDate)
				require.NotNil(t, d.ScheduledDate)

				require.Len(t, d.ProductLines, 2)
				assert.Equal(t, model.ProductLineRecord{LineNumber: 1, Model: "GTW755", Serial: "SN001", Qty: 1, Status: "OPEN"}, d.ProductLines[0])
				assert.Equal(t, model.ProductLineRecord{LineNumber: 2, Model: "PVD28", Qty: 2}, d.ProductLines[1])

				require.Len(t, d.ServiceLines, 1)
				assert.Equal(t, 10, d.ServiceLines[0].LineNumber)
			},
		},
		{
			name: "bare array payload",
			body: `[{"cso": 42, "deliveries": []}]`,
			assert: func(t *testing.T, got []model.OrderRecord, err error) {
				require.NoError(t, err)
				require.Len(t, got, 1)
				assert.Equal(t, "42", got[0].CSO)
				assert.Empty(t, got[0].Deliveries)
			},
		},
		{
			name: "empty body",
			body: "  \n",
			assert: func(t *testing.T, got []model.OrderRecord, err error) {
				require.NoError(t, err)
				assert.Empty(t, got)
			},
		},
		{
			name: "empty envelope",
			body: `{"orderData": []}`,
			assert: func(t *testing.T, got []model.OrderRecord, err error) {
				require.NoError(t, err)
				assert.Empty(t, got)
			},
		},
		{
			name: "html is rejected",
			body: `<html>login</html>`,
			assert: func(t *testing.T, got []model.OrderRecord, err error) {
				require.Error(t, err)
				assert.Nil(t, got)
			},
		},
		{
			name: "malformed json",
			body: `{"orderData": [`,
			assert: func(t *testing.T, got []model.OrderRecord, err error) {
				require.Error(t, err)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, err := ParseJSON([]byte(tt.body), "19SU")
			tt.assert(t, got, err)
		})
	}
}

func TestCSOsFromHTML(t *testing.T) {
	t.Parallel()

	doc := `<form name="orderSearch">
		<input type="hidden" name="hCmd" value="SEARCH">
		<input type="hidden" name="orderNumber10" value="A3">
		<input type="hidden" name="orderNumber2" value=" A2 ">
		<input type="hidden" name="orderNumber1" value="A1">
		<input type="hidden" name="orderNumber3" value="A1">
		<input type="hidden" name="orderNumber4" value="">
		<input type="hidden" name="orderNumberX" value="bogus">
		<input type="text" name="orderNumber5" value="visible">
	</form>`

	assert.Equal(t, []string{"A1", "A2", "A3"}, CSOsFromHTML(doc))
	assert.Empty(t, CSOsFromHTML(`<table id="orders"></table>`))
}
