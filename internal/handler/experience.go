package handler

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/Maoxiaogui/lvyouzhinan/internal/domain"
)

// ListExperiences handles GET /api/experiences.
// Query params: interests (comma-separated), location, limit.
func (s *Server) ListExperiences(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	var interests []string
	for _, part := range strings.Split(q.Get("interests"), ",") {
		if t := strings.TrimSpace(part); t != "" {
			interests = append(interests, t)
		}
	}

	limit := 0
	if raw := q.Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			badRequest(w, "limit must be an integer")
			return
		}
		limit = n
	}

	writeJSON(w, http.StatusOK, s.experiences.Recommend(interests, q.Get("location"), limit))
}

// SearchExperiences handles GET /api/experiences/search?q=&location=.
func (s *Server) SearchExperiences(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	writeJSON(w, http.StatusOK, s.experiences.Search(q.Get("q"), q.Get("location")))
}

// GetExperience handles GET /api/experiences/{id}.
func (s *Server) GetExperience(w http.ResponseWriter, r *http.Request) {
	id, err := experienceID(r)
	if err != nil {
		badRequest(w, err.Error())
		return
	}

	exp, err := s.experiences.GetByID(id)
	if err != nil {
		respondError(w, r, err, "experience not found")
		return
	}
	writeJSON(w, http.StatusOK, exp)
}

// ListReviews handles GET /api/experiences/{id}/reviews.
func (s *Server) ListReviews(w http.ResponseWriter, r *http.Request) {
	id, err := experienceID(r)
	if err != nil {
		badRequest(w, err.Error())
		return
	}

	reviews, err := s.experiences.Reviews(r.Context(), id)
	if err != nil {
		respondError(w, r, err, "experience not found")
		return
	}
	writeJSON(w, http.StatusOK, reviews)
}

// SubmitReview handles POST /api/experiences/{id}/reviews.
// The experience id in the path wins over any id in the body.
func (s *Server) SubmitReview(w http.ResponseWriter, r *http.Request) {
	id, err := experienceID(r)
	if err != nil {
		badRequest(w, err.Error())
		return
	}

	var review domain.ExperienceReview
	if err := decodeJSON(r, &review); err != nil {
		badRequest(w, err.Error())
		return
	}
	review.ExperienceID = id

	created, err := s.experiences.SubmitReview(r.Context(), review)
	if err != nil {
		respondError(w, r, err, "experience not found")
		return
	}
	writeJSON(w, http.StatusCreated, created)
}

// CreateBooking handles POST /api/bookings.
func (s *Server) CreateBooking(w http.ResponseWriter, r *http.Request) {
	var booking domain.ExperienceBooking
	if err := decodeJSON(r, &booking); err != nil {
		badRequest(w, err.Error())
		return
	}

	created, err := s.experiences.Book(r.Context(), booking)
	if err != nil {
		respondError(w, r, err, "experience not found")
		return
	}
	writeJSON(w, http.StatusCreated, created)
}

// ListBookings handles GET /api/bookings?user_id=.
func (s *Server) ListBookings(w http.ResponseWriter, r *http.Request) {
	userID, err := strconv.Atoi(r.URL.Query().Get("user_id"))
	if err != nil {
		badRequest(w, "user_id must be an integer")
		return
	}

	bookings, err := s.experiences.ListBookings(r.Context(), userID)
	if err != nil {
		respondError(w, r, err, "")
		return
	}
	writeJSON(w, http.StatusOK, bookings)
}

// experienceID parses the {id} path parameter.
func experienceID(r *http.Request) (int, error) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		return 0, errors.New("experience id must be an integer")
	}
	return id, nil
}
