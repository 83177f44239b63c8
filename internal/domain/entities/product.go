package entities

type ProductUnit string

const (
	ProductUnitKG ProductUnit = "KG"
	ProductUnitCX ProductUnit = "CX"
	ProductUnitUN ProductUnit = "UN"
	ProductUnitSC ProductUnit = "SC"
)

func (u ProductUnit) Valid() bool {
	switch u {
	case ProductUnitKG, ProductUnitCX, ProductUnitUN, ProductUnitSC:
		return true
	}
	return false
}

type Product struct {
	ID            string      `json:"id"`
	Code          string      `json:"code"`
	Description   string      `json:"description"`
	Unit          ProductUnit `json:"unit"`
	WeightPerUnit float64     `json:"weight_per_unit"`
}
