package service

import (
	"context"
	"fmt"
	"math/rand"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/Maoxiaogui/lvyouzhinan/internal/catalog"
	"github.com/Maoxiaogui/lvyouzhinan/internal/domain"
	"github.com/Maoxiaogui/lvyouzhinan/internal/repo"
)

// ExperienceService recommends and books cultural experiences and manages
// their reviews. Recommendation ratings are synthesized from the injected
// random source until real review aggregation exists.
type ExperienceService struct {
	catalog  catalog.Catalog
	bookings repo.BookingStore
	reviews  repo.ReviewStore

	mu  sync.Mutex
	rng *rand.Rand
}

// NewExperienceService constructs an ExperienceService. Pass a seeded rng
// for reproducible output; nil selects a time-seeded source.
func NewExperienceService(cat catalog.Catalog, bookings repo.BookingStore, reviews repo.ReviewStore, rng *rand.Rand) *ExperienceService {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &ExperienceService{catalog: cat, bookings: bookings, reviews: reviews, rng: rng}
}

// Recommend returns up to limit experiences, optionally filtered by
// location, ordered by how many catalog tags match the traveller's
// interests (stable, best match first).
func (s *ExperienceService) Recommend(interests []string, location string, limit int) []domain.Experience {
	limit = domain.RecommendationLimit(limit)

	interestSet := make(map[string]struct{}, len(interests))
	for _, in := range interests {
		interestSet[strings.ToLower(in)] = struct{}{}
	}

	var matched []domain.Experience
	for _, exp := range s.catalog.Experiences {
		if location != "" && !strings.EqualFold(exp.Location, location) {
			continue
		}
		matched = append(matched, exp)
	}

	sort.SliceStable(matched, func(i, j int) bool {
		return tagMatches(matched[i].Tags, interestSet) > tagMatches(matched[j].Tags, interestSet)
	})

	if len(matched) > limit {
		matched = matched[:limit]
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]domain.Experience, len(matched))
	for i, exp := range matched {
		exp.Rating = round2(3 + s.rng.Float64()*2)
		exp.Reviews = 10 + s.rng.Intn(200)
		out[i] = exp
	}
	return out
}

// tagMatches counts how many of tags appear in the interest set.
func tagMatches(tags []string, interests map[string]struct{}) int {
	n := 0
	for _, t := range tags {
		if _, ok := interests[strings.ToLower(t)]; ok {
			n++
		}
	}
	return n
}

// GetByID returns a single experience. Returns domain.ErrNotFound when the
// id is not in the catalog.
func (s *ExperienceService) GetByID(id int) (domain.Experience, error) {
	exp, ok := s.catalog.ExperienceByID(id)
	if !ok {
		return domain.Experience{}, fmt.Errorf("service.ExperienceService.GetByID: %w", domain.ErrNotFound)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	exp.Rating = round2(4.5 + s.rng.Float64()*0.5)
	exp.Reviews = 50 + s.rng.Intn(500)
	return exp, nil
}

// Search returns experiences whose title, description, or tags contain the
// query (case-insensitive), optionally restricted to a location.
func (s *ExperienceService) Search(query, location string) []domain.Experience {
	query = strings.ToLower(strings.TrimSpace(query))

	var results []domain.Experience
	for _, exp := range s.catalog.Experiences {
		if location != "" && !strings.EqualFold(exp.Location, location) {
			continue
		}
		if query != "" && !matchesQuery(exp, query) {
			continue
		}
		results = append(results, exp)
	}
	if results == nil {
		results = []domain.Experience{}
	}
	return results
}

func matchesQuery(exp domain.Experience, query string) bool {
	if strings.Contains(strings.ToLower(exp.Title), query) ||
		strings.Contains(strings.ToLower(exp.Description), query) {
		return true
	}
	for _, t := range exp.Tags {
		if strings.Contains(strings.ToLower(t), query) {
			return true
		}
	}
	return false
}

// Book validates and persists a reservation. The experience must exist, the
// participant count must be positive and within the experience's capacity,
// and the date must be one of its available dates. The total price is
// computed from the catalog, never trusted from the caller.
func (s *ExperienceService) Book(ctx context.Context, b domain.ExperienceBooking) (domain.ExperienceBooking, error) {
	exp, ok := s.catalog.ExperienceByID(b.ExperienceID)
	if !ok {
		return domain.ExperienceBooking{}, fmt.Errorf("service.ExperienceService.Book: %w", domain.ErrNotFound)
	}
	if b.Participants < 1 {
		return domain.ExperienceBooking{}, fmt.Errorf("%w: participants must be positive", domain.ErrValidation)
	}
	if exp.MaxParticipants > 0 && b.Participants > exp.MaxParticipants {
		return domain.ExperienceBooking{}, fmt.Errorf("%w: participants exceeds capacity of %d", domain.ErrValidation, exp.MaxParticipants)
	}
	if len(exp.AvailableDates) > 0 && !availableOn(exp.AvailableDates, b.Date) {
		return domain.ExperienceBooking{}, fmt.Errorf("%w: experience not available on %s", domain.ErrValidation, b.Date.Format("2006-01-02"))
	}

	b.ID = uuid.NewString()
	b.TotalPrice = exp.Price * float64(b.Participants)
	b.Status = domain.BookingConfirmed
	b.BookedAt = time.Now().UTC()

	if err := s.bookings.Append(ctx, b); err != nil {
		return domain.ExperienceBooking{}, fmt.Errorf("service.ExperienceService.Book: %w", err)
	}
	return b, nil
}

func availableOn(dates []time.Time, d time.Time) bool {
	for _, ad := range dates {
		if ad.Year() == d.Year() && ad.YearDay() == d.YearDay() {
			return true
		}
	}
	return false
}

// ListBookings returns the bookings made by the given user, oldest first.
// Always returns a non-nil slice.
func (s *ExperienceService) ListBookings(ctx context.Context, userID int) ([]domain.ExperienceBooking, error) {
	all, err := s.bookings.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("service.ExperienceService.ListBookings: %w", err)
	}
	out := []domain.ExperienceBooking{}
	for _, b := range all {
		if b.UserID == userID {
			out = append(out, b)
		}
	}
	return out, nil
}

// Reviews returns the persisted reviews for an experience, oldest first.
// Always returns a non-nil slice.
func (s *ExperienceService) Reviews(ctx context.Context, experienceID int) ([]domain.ExperienceReview, error) {
	all, err := s.reviews.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("service.ExperienceService.Reviews: %w", err)
	}
	out := []domain.ExperienceReview{}
	for _, r := range all {
		if r.ExperienceID == experienceID {
			out = append(out, r)
		}
	}
	return out, nil
}

// SubmitReview validates and persists a review, stamping its id and date.
func (s *ExperienceService) SubmitReview(ctx context.Context, r domain.ExperienceReview) (domain.ExperienceReview, error) {
	if _, ok := s.catalog.ExperienceByID(r.ExperienceID); !ok {
		return domain.ExperienceReview{}, fmt.Errorf("service.ExperienceService.SubmitReview: %w", domain.ErrNotFound)
	}
	if r.Rating < 1 || r.Rating > 5 {
		return domain.ExperienceReview{}, fmt.Errorf("%w: rating must be between 1 and 5", domain.ErrValidation)
	}
	if strings.TrimSpace(r.Comment) == "" {
		return domain.ExperienceReview{}, fmt.Errorf("%w: comment is required", domain.ErrValidation)
	}

	r.ID = uuid.NewString()
	r.Date = time.Now().UTC().Truncate(24 * time.Hour)

	if err := s.reviews.Append(ctx, r); err != nil {
		return domain.ExperienceReview{}, fmt.Errorf("service.ExperienceService.SubmitReview: %w", err)
	}
	return r, nil
}
