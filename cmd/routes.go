package main

import (
	"net/http"

	"github.com/bmizerany/pat"
	"github.com/justinas/alice"
)

func (app *application) routes() http.Handler {
	standardMiddleware := alice.New(app.recoverPanic, app.logRequest, secureHeaders, makeResponseJSON)
	authMiddleware := standardMiddleware.Append(app.jwtAuthenticate)

	mux := pat.New()

	// Users
	mux.Post("/user/sign_up", standardMiddleware.ThenFunc(app.userHandler.SignUp))
	mux.Post("/user/sign_in", standardMiddleware.ThenFunc(app.userHandler.SignIn))
	mux.Get("/user", authMiddleware.ThenFunc(app.userHandler.UserInfo))

	// Ads
	mux.Post("/create-ad", authMiddleware.ThenFunc(app.adHandler.CreateAd))
	mux.Post("/delete-ad", authMiddleware.ThenFunc(app.adHandler.DeleteAd))
	mux.Post("/edit-ad", authMiddleware.ThenFunc(app.adHandler.EditAd))
	mux.Post("/ads", authMiddleware.ThenFunc(app.adHandler.GetAds))

	// Exchanges
	mux.Post("/create-exchange", authMiddleware.ThenFunc(app.exchangeHandler.CreateExchange))
	mux.Post("/edit-exchange", authMiddleware.ThenFunc(app.exchangeHandler.EditExchange))
	mux.Post("/exchanges", authMiddleware.ThenFunc(app.exchangeHandler.GetExchanges))

	// Catalog
	mux.Get("/categories", authMiddleware.ThenFunc(app.categoryHandler.GetAllCategories))
	mux.Get("/conditions", authMiddleware.ThenFunc(app.conditionHandler.GetAllConditions))

	// Exchange status notifications
	mux.Get("/ws", authMiddleware.ThenFunc(app.WebSocketHandler))

	return mux
}
