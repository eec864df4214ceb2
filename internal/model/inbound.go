package model

import "time"

// InboundHistoryRow is one shipment candidate from the inbound listing page.
type InboundHistoryRow struct {
	ShipmentNumber string
	Vendor         string
	Location       string
	Truck          string
	ScheduledDate  *time.Time
	Status         string
	// LineID pairs the row with the shipmentNumber{n} hidden input of the
	// same page. Not persisted.
	LineID int
}

type ReceivingReportHeader struct {
	InboundShipmentNo string
	SCAC              string
	Truck             string
	Date              string
	Time              string
	TotalUnits        *int
}

type ReceivingReportItem struct {
	InboundShipmentNo string
	LineIndex         int
	Model             string
	Serial            string
	Qty               *int
	Rcvd              *int
	Short             *int
	Damage            *int
	CSO               string
}

// ReceivingReport is a parsed receiving report together with the strategy
// that produced it.
type ReceivingReport struct {
	Header ReceivingReportHeader
	Items  []ReceivingReportItem
	// FromLayout is false when the plain-text fallback produced the result.
	FromLayout bool
}
