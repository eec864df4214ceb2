package model

import "time"

type Customer struct {
	Name    string
	Phone   string
	Email   string
	Address string
}

type OrderRecord struct {
	// Customer sales order number, unique per location.
	CSO                  string
	LocationID           string
	OrderType            string
	OrderDate            *time.Time
	Customer             Customer
	FreightTerms         string
	ShippingInstructions string
	Deliveries           []DeliveryRecord
}

type DeliveryRecord struct {
	CSO           string
	DeliveryID    string
	Status        string
	Address       string
	ScheduledDate *time.Time
	ShipDate      *time.Time
	Route         string
	ProductLines  []ProductLineRecord
	ServiceLines  []ServiceLineRecord
}

type ProductLineRecord struct {
	LineNumber int
	Model      string
	Serial     string
	Qty        int
	Status     string
}

type ServiceLineRecord struct {
	LineNumber  int
	Code        string
	Description string
	Qty         int
}
