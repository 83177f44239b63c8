package entities

type SupplierCategory string

const (
	SupplierCategoryHortifruti SupplierCategory = "Hortifruti"
	SupplierCategoryMercearia  SupplierCategory = "Mercearia"
	SupplierCategoryLimpeza    SupplierCategory = "Limpeza"
	SupplierCategoryOutros     SupplierCategory = "Outros"
)

func (c SupplierCategory) Valid() bool {
	switch c {
	case SupplierCategoryHortifruti, SupplierCategoryMercearia, SupplierCategoryLimpeza, SupplierCategoryOutros:
		return true
	}
	return false
}

// Supplier is a flat vendor record. Nothing references it beyond its id.
type Supplier struct {
	ID       string           `json:"id"`
	Name     string           `json:"name"`
	CNPJ     string           `json:"cnpj"`
	Category SupplierCategory `json:"category"`

	ZipCode      string `json:"zip_code,omitempty"`
	Address      string `json:"address,omitempty"`
	Number       string `json:"number,omitempty"`
	Neighborhood string `json:"neighborhood,omitempty"`
	City         string `json:"city"`
	State        string `json:"state,omitempty"`

	ContactName  string `json:"contact_name,omitempty"`
	ContactPhone string `json:"contact_phone,omitempty"`
}
