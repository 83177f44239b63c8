package repository

import (
	"context"

	"mercado_erp/internal/domain/entities"
	"mercado_erp/internal/usecase/interfaces"
)

type TripRepository struct {
	c *collection[entities.Trip]
}

var _ interfaces.ITripRepository = (*TripRepository)(nil)

func NewTripRepository(ctx context.Context, store interfaces.ISnapshotStore, seed []entities.Trip) (*TripRepository, error) {
	c, err := openCollection(ctx, store, KeyTrips, seed, func(t entities.Trip) string { return t.ID })
	if err != nil {
		return nil, err
	}
	return &TripRepository{c: c}, nil
}

func (r *TripRepository) List(_ context.Context) ([]entities.Trip, error) {
	return r.c.all(), nil
}

func (r *TripRepository) Create(ctx context.Context, t entities.Trip) (entities.Trip, error) {
	r.c.prepend(ctx, t)
	return t, nil
}
