package domain

import "time"

// Experience is a bookable cultural-experience catalog record.
// Rating and Reviews may be filled in by the recommendation service.
type Experience struct {
	ID              int         `json:"id"`
	Title           string      `json:"title"`
	Location        string      `json:"location"`
	Price           float64     `json:"price"`
	Duration        float64     `json:"duration"` // hours
	Category        string      `json:"category"`
	Tags            []string    `json:"tags"`
	Description     string      `json:"description"`
	Rating          float64     `json:"rating,omitempty"`
	Reviews         int         `json:"reviews,omitempty"`
	ImageURL        string      `json:"image_url,omitempty"`
	AvailableDates  []time.Time `json:"available_dates,omitempty"`
	MaxParticipants int         `json:"max_participants,omitempty"`
}

// BookingStatus is the lifecycle state of an experience booking.
type BookingStatus string

const (
	BookingConfirmed BookingStatus = "confirmed"
	BookingPending   BookingStatus = "pending"
	BookingCancelled BookingStatus = "cancelled"
)

// ContactInfo is the optional contact block attached to a booking.
type ContactInfo struct {
	Name  string `json:"name"`
	Phone string `json:"phone"`
	Email string `json:"email"`
}

// ExperienceBooking records one confirmed reservation for an experience.
// TotalPrice is computed by the service from the catalog price, never
// trusted from the caller.
type ExperienceBooking struct {
	ID           string        `json:"id"`
	ExperienceID int           `json:"experience_id"`
	UserID       int           `json:"user_id"`
	Date         time.Time     `json:"date"`
	Participants int           `json:"participants"`
	TotalPrice   float64       `json:"total_price"`
	Status       BookingStatus `json:"status"`
	BookedAt     time.Time     `json:"booked_at"`
	Contact      *ContactInfo  `json:"contact_info,omitempty"`
}

// ExperienceReview is one traveller review of an experience.
type ExperienceReview struct {
	ID           string    `json:"id"`
	ExperienceID int       `json:"experience_id"`
	UserID       int       `json:"user_id"`
	UserName     string    `json:"user_name"`
	Rating       float64   `json:"rating"` // 1..5
	Comment      string    `json:"comment"`
	Date         time.Time `json:"date"`
	Images       []string  `json:"images,omitempty"`
}

// RecommendationLimit clamps the requested experience-list size.
// Non-positive values fall back to 10; the cap of 50 keeps responses bounded.
func RecommendationLimit(limit int) int {
	if limit <= 0 {
		return 10
	}
	if limit > 50 {
		return 50
	}
	return limit
}
