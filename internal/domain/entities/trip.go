package entities

// Trip is a logistics shipment. Invoices is fixed when the trip is created.
type Trip struct {
	ID           string   `json:"id"`
	Code         string   `json:"code"`
	Driver       string   `json:"driver"`
	LicensePlate string   `json:"license_plate"`
	Transporter  string   `json:"transporter"`
	Date         string   `json:"date"`
	FreightCost  float64  `json:"freight_cost"`
	TotalWeight  float64  `json:"total_weight"`
	Invoices     []string `json:"invoices"`
}
