package main

import (
	"net/http"

	"github.com/bmizerany/pat"
	"github.com/justinas/alice"
)

func (app *application) routes() http.Handler {
	standardMiddleware := alice.New(app.recoverPanic, app.logRequest, secureHeaders)
	authMiddleware := standardMiddleware.Append(app.requireAuth)
	publicMiddleware := standardMiddleware.Append(app.optionalAuth)

	mux := pat.New()

	// Auth & profile
	mux.Post("/api/auth/register", standardMiddleware.ThenFunc(app.userHandler.SignUp))
	mux.Post("/api/auth/login", standardMiddleware.ThenFunc(app.userHandler.SignIn))
	mux.Get("/api/auth/profile", authMiddleware.ThenFunc(app.userHandler.GetProfile))
	mux.Put("/api/auth/profile", authMiddleware.ThenFunc(app.userHandler.UpdateProfile))
	mux.Put("/api/auth/change-password", authMiddleware.ThenFunc(app.userHandler.ChangePassword))

	// Categories
	mux.Get("/api/categories", standardMiddleware.ThenFunc(app.categoryHandler.ListCategories))
	mux.Get("/api/categories/:id", standardMiddleware.ThenFunc(app.categoryHandler.GetCategory))

	// Services. The "my" route must be registered before ":id" so pat does
	// not swallow it as an id parameter.
	mux.Get("/api/services/my", authMiddleware.ThenFunc(app.serviceHandler.GetMyServices))
	mux.Get("/api/services", standardMiddleware.ThenFunc(app.serviceHandler.ListServices))
	mux.Post("/api/services", authMiddleware.ThenFunc(app.serviceHandler.CreateService))
	mux.Get("/api/services/:id", publicMiddleware.ThenFunc(app.serviceHandler.GetService))
	mux.Put("/api/services/:id", authMiddleware.ThenFunc(app.serviceHandler.UpdateService))
	mux.Del("/api/services/:id", authMiddleware.ThenFunc(app.serviceHandler.DeleteService))
	mux.Get("/api/services/:id/portfolios", standardMiddleware.ThenFunc(app.portfolioHandler.ListServicePortfolios))
	mux.Get("/api/services/:id/contacts", authMiddleware.ThenFunc(app.contactLogHandler.ListServiceContacts))

	// Reviews
	mux.Post("/api/reviews", authMiddleware.ThenFunc(app.reviewHandler.CreateReview))
	mux.Put("/api/reviews/:id", authMiddleware.ThenFunc(app.reviewHandler.UpdateReview))
	mux.Del("/api/reviews/:id", authMiddleware.ThenFunc(app.reviewHandler.DeleteReview))
	mux.Get("/api/reviews/service/:id", standardMiddleware.ThenFunc(app.reviewHandler.ListServiceReviews))
	mux.Get("/api/reviews/provider/:id", standardMiddleware.ThenFunc(app.reviewHandler.ListProviderReviews))
	mux.Get("/api/reviews/stats/service/:id", standardMiddleware.ThenFunc(app.reviewHandler.GetServiceStats))

	// Portfolios
	mux.Post("/api/portfolios", authMiddleware.ThenFunc(app.portfolioHandler.CreatePortfolio))
	mux.Put("/api/portfolios/:id", authMiddleware.ThenFunc(app.portfolioHandler.UpdatePortfolio))
	mux.Del("/api/portfolios/:id", authMiddleware.ThenFunc(app.portfolioHandler.DeletePortfolio))

	// Contact logs
	mux.Post("/api/contact-log", authMiddleware.ThenFunc(app.contactLogHandler.RecordContact))

	// Uploads
	mux.Post("/api/upload/images", authMiddleware.ThenFunc(app.uploadHandler.UploadImages))
	mux.Post("/api/upload/profile-image", authMiddleware.ThenFunc(app.uploadHandler.UploadProfileImage))
	mux.Del("/api/upload/files/:name", authMiddleware.ThenFunc(app.uploadHandler.DeleteFile))
	mux.Get("/api/upload/files/:name/info", standardMiddleware.ThenFunc(app.uploadHandler.GetFileInfo))

	// Locally stored uploads are served straight off the disk; S3 objects
	// carry their own public URLs.
	if local, ok := app.store.(interface{ Dir() string }); ok {
		fileServer := http.StripPrefix("/api/upload/files/", http.FileServer(http.Dir(local.Dir())))
		mux.Get("/api/upload/files/:name", standardMiddleware.Then(fileServer))
	}

	mux.Get("/api/health", standardMiddleware.ThenFunc(app.healthCheck))

	// Trailing-slash patterns are prefix matches in pat, so these catch
	// everything the routes above did not and keep 404s JSON like the rest
	// of the API.
	notFound := standardMiddleware.ThenFunc(app.notFound)
	mux.Get("/", notFound)
	mux.Post("/", notFound)
	mux.Put("/", notFound)
	mux.Del("/", notFound)

	return mux
}
