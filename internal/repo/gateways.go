package repo

import (
	"context"
	"fmt"

	"github.com/Maoxiaogui/lvyouzhinan/internal/domain"
)

// TripStore persists saved itineraries under KeySavedTrips.
type TripStore interface {
	// Append adds a trip to the saved list. The whole list is rewritten;
	// there is no per-item write.
	Append(ctx context.Context, trip domain.TripOption) error
	// List returns every saved trip, oldest first. Never returns nil.
	List(ctx context.Context) ([]domain.TripOption, error)
}

// BookingStore persists experience bookings under KeyExperienceBookings.
type BookingStore interface {
	Append(ctx context.Context, b domain.ExperienceBooking) error
	List(ctx context.Context) ([]domain.ExperienceBooking, error)
}

// ReviewStore persists experience reviews under KeyExperienceReviews.
type ReviewStore interface {
	Append(ctx context.Context, r domain.ExperienceReview) error
	List(ctx context.Context) ([]domain.ExperienceReview, error)
}

// listGateway implements the append-to-a-JSON-list pattern shared by all
// three typed stores. T must be JSON-serializable.
type listGateway[T any] struct {
	store Store
	key   string
}

func (g listGateway[T]) Append(ctx context.Context, item T) error {
	items, err := g.List(ctx)
	if err != nil {
		return err
	}
	items = append(items, item)
	if err := g.store.Save(ctx, g.key, items); err != nil {
		return fmt.Errorf("repo.listGateway.Append(%s): %w", g.key, err)
	}
	return nil
}

func (g listGateway[T]) List(ctx context.Context) ([]T, error) {
	items := []T{}
	if err := g.store.Load(ctx, g.key, &items); err != nil {
		return nil, fmt.Errorf("repo.listGateway.List(%s): %w", g.key, err)
	}
	return items, nil
}

// NewTripStore returns a TripStore over the given Store.
func NewTripStore(s Store) TripStore {
	return listGateway[domain.TripOption]{store: s, key: KeySavedTrips}
}

// NewBookingStore returns a BookingStore over the given Store.
func NewBookingStore(s Store) BookingStore {
	return listGateway[domain.ExperienceBooking]{store: s, key: KeyExperienceBookings}
}

// NewReviewStore returns a ReviewStore over the given Store.
func NewReviewStore(s Store) ReviewStore {
	return listGateway[domain.ExperienceReview]{store: s, key: KeyExperienceReviews}
}
