package interfaces

import (
	"context"
	"mercado_erp/internal/domain/entities"
)

// ITripRepository abstracts the trip collection. Create puts the new trip
// first so listings come out newest first.
type ITripRepository interface {
	List(ctx context.Context) ([]entities.Trip, error)
	Create(ctx context.Context, t entities.Trip) (entities.Trip, error)
}
