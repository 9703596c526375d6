package handlers

import (
	"net/http"

	"lawmanBack/internal/models"
	"lawmanBack/internal/services"
)

type ReviewHandler struct {
	Service *services.ReviewService
}

var (
	reviewCreated = outcome{
		good: "Review Added Successfully.",
		bad:  "Review Could Not Be Added.",
	}
	reviewUpdated = outcome{
		good:     "Review Updated Successfully.",
		bad:      "Review Could Not Be Updated.",
		notFound: "Review Not Found.",
	}
	reviewDeleted = outcome{
		good:     "Review Deleted Successfully.",
		bad:      "Review Could Not Be Deleted.",
		notFound: "Review Not Found.",
	}
	reviewRead = outcome{bad: "Reviews Could Not Be Loaded."}
)

// GetReviewSummaries handles GET /reviews: count and rounded average
// rating per service.
func (h *ReviewHandler) GetReviewSummaries(w http.ResponseWriter, r *http.Request) {
	summaries, err := h.Service.SummarizeReviews(r.Context())
	if err != nil {
		fail(w, r, err, reviewRead)
		return
	}
	writeJSON(w, http.StatusOK, summaries)
}

func (h *ReviewHandler) GetReviewsByServiceID(w http.ResponseWriter, r *http.Request) {
	reviews, err := h.Service.GetReviewsByServiceID(r.Context(), pathParam(r, "serviceID"))
	if err != nil {
		fail(w, r, err, reviewRead)
		return
	}
	writeJSON(w, http.StatusOK, reviews)
}

func (h *ReviewHandler) GetReviewsByUserID(w http.ResponseWriter, r *http.Request) {
	actor, ok := h.actor(w, r)
	if !ok {
		return
	}
	reviews, err := h.Service.GetReviewsByAuthorID(r.Context(), actor, pathParam(r, "userID"))
	if err != nil {
		fail(w, r, err, reviewRead)
		return
	}
	writeJSON(w, http.StatusOK, reviews)
}

func (h *ReviewHandler) CreateReview(w http.ResponseWriter, r *http.Request) {
	actor, ok := h.actor(w, r)
	if !ok {
		return
	}
	var review models.Review
	if err := decodeJSON(w, r, &review); err != nil {
		invalidRequest(w, r, err)
		return
	}

	created, err := h.Service.CreateReview(r.Context(), actor, review)
	if err != nil {
		fail(w, r, err, reviewCreated)
		return
	}

	env := models.Good(reviewCreated.good)
	env.InsertedID = created.ID.Hex()
	WriteEnvelope(w, http.StatusOK, env)
}

func (h *ReviewHandler) UpdateReview(w http.ResponseWriter, r *http.Request) {
	actor, ok := h.actor(w, r)
	if !ok {
		return
	}
	var raw map[string]interface{}
	if err := decodeJSON(w, r, &raw); err != nil {
		invalidRequest(w, r, err)
		return
	}
	patch, err := models.NewReviewPatch(raw)
	if err != nil {
		invalidRequest(w, r, err)
		return
	}

	if err := h.Service.UpdateReview(r.Context(), actor, pathParam(r, "reviewID"), patch); err != nil {
		fail(w, r, err, reviewUpdated)
		return
	}
	WriteEnvelope(w, http.StatusOK, models.Good(reviewUpdated.good))
}

func (h *ReviewHandler) DeleteReview(w http.ResponseWriter, r *http.Request) {
	actor, ok := h.actor(w, r)
	if !ok {
		return
	}
	if err := h.Service.DeleteReview(r.Context(), actor, pathParam(r, "reviewID")); err != nil {
		fail(w, r, err, reviewDeleted)
		return
	}
	WriteEnvelope(w, http.StatusOK, models.Good(reviewDeleted.good))
}

// actor returns the verified user. Protected routes always carry one; a
// missing identity means the route was mounted without the token check.
func (h *ReviewHandler) actor(w http.ResponseWriter, r *http.Request) (string, bool) {
	userID, ok := UserIDFromContext(r.Context())
	if !ok {
		Unauthorized(w)
		return "", false
	}
	return userID, true
}

// Unauthorized writes the fixed response for a missing or invalid token.
func Unauthorized(w http.ResponseWriter) {
	WriteEnvelope(w, http.StatusUnauthorized, models.Envelope{
		Status:  models.StatusUnverified,
		Message: "Unauthorized Access.",
	})
}
