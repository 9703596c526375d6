package main

import (
	"net/http"

	"github.com/bmizerany/pat"
	"github.com/justinas/alice"

	"lawmanBack/internal/handlers"
)

func (app *application) routes() http.Handler {
	standardMiddleware := alice.New(app.recoverPanic, app.logRequest, secureHeaders, makeResponseJSON)
	authMiddleware := standardMiddleware.Append(app.JWTMiddleware)

	mux := pat.New()

	// Services
	mux.Get("/services", standardMiddleware.ThenFunc(app.serviceHandler.GetServices))
	mux.Get("/services/:serviceID", standardMiddleware.ThenFunc(app.serviceHandler.GetServiceByID))
	mux.Post("/my-services", standardMiddleware.ThenFunc(app.serviceHandler.CreateService))
	mux.Get("/my-services/:userID", standardMiddleware.ThenFunc(app.serviceHandler.GetServicesByUserID))
	mux.Del("/my-services/:serviceID", standardMiddleware.ThenFunc(app.serviceHandler.DeleteService))

	// Reviews
	mux.Get("/reviews", standardMiddleware.ThenFunc(app.reviewsHandler.GetReviewSummaries))
	mux.Get("/reviews/:serviceID", standardMiddleware.ThenFunc(app.reviewsHandler.GetReviewsByServiceID))
	mux.Post("/reviews", authMiddleware.ThenFunc(app.reviewsHandler.CreateReview))
	mux.Add("PATCH", "/my-reviews/edit/:reviewID", authMiddleware.ThenFunc(app.reviewsHandler.UpdateReview))
	mux.Del("/reviews/:reviewID", authMiddleware.ThenFunc(app.reviewsHandler.DeleteReview))
	mux.Get("/my-reviews/:userID", authMiddleware.ThenFunc(app.reviewsHandler.GetReviewsByUserID))

	// Tokens
	mux.Post("/createjwt", standardMiddleware.ThenFunc(app.tokenHandler.CreateJWT))

	// Liveness answers "/" and every other unmatched path.
	mux.NotFound = standardMiddleware.ThenFunc(handlers.Liveness)

	return mux
}
