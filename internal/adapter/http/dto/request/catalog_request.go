package request

import "mercado_erp/internal/domain/entities"

type SupplierRequest struct {
	Name         string `json:"name"`
	CNPJ         string `json:"cnpj"`
	Category     string `json:"category"`
	ZipCode      string `json:"zip_code"`
	Address      string `json:"address"`
	Number       string `json:"number"`
	Neighborhood string `json:"neighborhood"`
	City         string `json:"city"`
	State        string `json:"state"`
	ContactName  string `json:"contact_name"`
	ContactPhone string `json:"contact_phone"`
}

func (r SupplierRequest) ToEntity() entities.Supplier {
	return entities.Supplier{
		Name:         r.Name,
		CNPJ:         r.CNPJ,
		Category:     entities.SupplierCategory(r.Category),
		ZipCode:      r.ZipCode,
		Address:      r.Address,
		Number:       r.Number,
		Neighborhood: r.Neighborhood,
		City:         r.City,
		State:        r.State,
		ContactName:  r.ContactName,
		ContactPhone: r.ContactPhone,
	}
}

type ProductRequest struct {
	Code          string  `json:"code"`
	Description   string  `json:"description"`
	Unit          string  `json:"unit"`
	WeightPerUnit float64 `json:"weight_per_unit"`
}

func (r ProductRequest) ToEntity() entities.Product {
	return entities.Product{
		Code:          r.Code,
		Description:   r.Description,
		Unit:          entities.ProductUnit(r.Unit),
		WeightPerUnit: r.WeightPerUnit,
	}
}

type TripRequest struct {
	Code         string   `json:"code"`
	Driver       string   `json:"driver"`
	LicensePlate string   `json:"license_plate"`
	Transporter  string   `json:"transporter"`
	Date         string   `json:"date"`
	FreightCost  float64  `json:"freight_cost"`
	TotalWeight  float64  `json:"total_weight"`
	Invoices     []string `json:"invoices"`
}

func (r TripRequest) ToEntity() entities.Trip {
	return entities.Trip{
		Code:         r.Code,
		Driver:       r.Driver,
		LicensePlate: r.LicensePlate,
		Transporter:  r.Transporter,
		Date:         r.Date,
		FreightCost:  r.FreightCost,
		TotalWeight:  r.TotalWeight,
		Invoices:     r.Invoices,
	}
}
