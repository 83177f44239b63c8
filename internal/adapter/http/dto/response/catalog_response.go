package response

import "mercado_erp/internal/domain/entities"

func FromSuppliers(list []entities.Supplier) []entities.Supplier {
	return nonNil(list)
}

func FromProducts(list []entities.Product) []entities.Product {
	return nonNil(list)
}

type TripResponse struct {
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

func FromTrip(t entities.Trip) TripResponse {
	return TripResponse{
		ID:           t.ID,
		Code:         t.Code,
		Driver:       t.Driver,
		LicensePlate: t.LicensePlate,
		Transporter:  t.Transporter,
		Date:         t.Date,
		FreightCost:  t.FreightCost,
		TotalWeight:  t.TotalWeight,
		Invoices:     nonNil(t.Invoices),
	}
}

func FromTrips(list []entities.Trip) []TripResponse {
	out := make([]TripResponse, 0, len(list))
	for _, t := range list {
		out = append(out, FromTrip(t))
	}
	return out
}
