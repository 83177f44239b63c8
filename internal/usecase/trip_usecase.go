package usecase

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"mercado_erp/internal/domain/entities"
	"mercado_erp/internal/logger"
	"mercado_erp/internal/usecase/interfaces"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

var ErrInvalidTrip = errors.New("invalid trip")

type ITripUseCase interface {
	List(ctx context.Context) ([]entities.Trip, error)
	Create(ctx context.Context, t entities.Trip) (entities.Trip, error)
}

type TripUseCase struct {
	repo  interfaces.ITripRepository
	newID func() string
	now   func() time.Time
	log   zerolog.Logger
}

var _ ITripUseCase = (*TripUseCase)(nil)

func NewTripUseCase(repo interfaces.ITripRepository) *TripUseCase {
	return &TripUseCase{repo: repo, newID: uuid.NewString, now: time.Now, log: logger.WithComponent("trip")}
}

func (u *TripUseCase) List(ctx context.Context) ([]entities.Trip, error) {
	return u.repo.List(ctx)
}

// Create stores a new trip at the head of the list. The invoice list is
// fixed from here on.
func (u *TripUseCase) Create(ctx context.Context, t entities.Trip) (entities.Trip, error) {
	t.Driver = strings.TrimSpace(t.Driver)
	t.LicensePlate = strings.ToUpper(strings.TrimSpace(t.LicensePlate))
	t.Transporter = strings.TrimSpace(t.Transporter)
	if t.Driver == "" || t.LicensePlate == "" || t.Transporter == "" {
		return entities.Trip{}, fmt.Errorf("%w: driver, license_plate and transporter are required", ErrInvalidTrip)
	}
	if t.FreightCost < 0 || t.TotalWeight < 0 {
		return entities.Trip{}, fmt.Errorf("%w: freight_cost and total_weight cannot be negative", ErrInvalidTrip)
	}

	now := u.now()
	t.Date = strings.TrimSpace(t.Date)
	if t.Date == "" {
		t.Date = now.Format(dateLayout)
	}
	t.Code = strings.TrimSpace(t.Code)
	if t.Code == "" {
		existing, err := u.repo.List(ctx)
		if err != nil {
			return entities.Trip{}, err
		}
		t.Code = nextTripCode(existing, now.Year())
	}
	if t.Invoices == nil {
		t.Invoices = []string{}
	}

	t.ID = u.newID()
	saved, err := u.repo.Create(ctx, t)
	if err != nil {
		return entities.Trip{}, err
	}
	u.log.Info().Str("trip_id", saved.ID).Str("code", saved.Code).Msg("[trip][usecase] created")
	return saved, nil
}

// nextTripCode returns V-<year>-<NNN>, one past the highest sequence used
// that year.
func nextTripCode(trips []entities.Trip, year int) string {
	prefix := fmt.Sprintf("V-%d-", year)
	last := 0
	for _, t := range trips {
		if !strings.HasPrefix(t.Code, prefix) {
			continue
		}
		if n, err := strconv.Atoi(strings.TrimPrefix(t.Code, prefix)); err == nil && n > last {
			last = n
		}
	}
	return fmt.Sprintf("%s%03d", prefix, last+1)
}
