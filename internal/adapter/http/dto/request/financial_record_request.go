package request

import (
	"mercado_erp/internal/domain/entities"
	"mercado_erp/internal/usecase"
)

// PayRequest is optional; an empty payment_date means today and an empty
// payment_method keeps the title's method.
type PayRequest struct {
	PaymentDate   string `json:"payment_date"`
	PaymentMethod string `json:"payment_method" enums:"BOLETO,PIX,TRANSFER,CASH"`
}

func (r PayRequest) ToInput() usecase.PayInput {
	return usecase.PayInput{
		PaymentDate:   r.PaymentDate,
		PaymentMethod: entities.PaymentMethod(r.PaymentMethod),
	}
}
