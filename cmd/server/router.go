package main

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/joinboard/joinboard-api/internal/api"
	apiMiddleware "github.com/joinboard/joinboard-api/internal/api/middleware"
)

// setupRouter builds the route tree. Authorization is an explicit
// policy: the board CRUD and session endpoints are public, the profile
// endpoints require an access token.
func (app *application) setupRouter() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(apiMiddleware.TraceMiddleware)

	authHandler := api.NewAuthHandler(app.sessionService, app.config.Auth)
	authMiddleware := apiMiddleware.NewAuthMiddleware(app.jwtService)
	userHandler := api.NewUserHandler(app.userStore)
	taskHandler := api.NewTaskHandler(app.taskService)
	refDataHandler := api.NewRefDataHandler(app.categoryStore, app.prioStore)
	summaryHandler := api.NewSummaryHandler(app.summaryStore)
	profileHandler := api.NewProfileHandler(app.profileStore)

	// Session endpoints
	r.Post("/registration/", authHandler.Register)
	r.Post("/login/", authHandler.Login)
	r.Post("/login/refresh/", authHandler.Refresh)
	r.Post("/login/guest/", authHandler.GuestLogin)
	r.Post("/logout/", authHandler.Logout)
	r.Post("/logout/guest/", authHandler.GuestLogout)

	// Board users
	r.Route("/user", func(r chi.Router) {
		r.Get("/", userHandler.List)
		r.Post("/", userHandler.Create)
		r.Route("/{id}", func(r chi.Router) {
			r.Get("/", userHandler.Get)
			r.Put("/", userHandler.Update)
			r.Patch("/", userHandler.Update)
			r.Delete("/", userHandler.Delete)
		})
	})

	// Tasks and task-scoped subtasks
	r.Route("/task", func(r chi.Router) {
		r.Get("/", taskHandler.List)
		r.Post("/", taskHandler.Create)
		r.Route("/{id}", func(r chi.Router) {
			r.Get("/", taskHandler.Get)
			r.Put("/", taskHandler.Update)
			r.Patch("/", taskHandler.Update)
			r.Delete("/", taskHandler.Delete)
		})
		r.Route("/{taskId}/subtask", func(r chi.Router) {
			r.Get("/", taskHandler.ListSubtasks)
			r.Post("/", taskHandler.CreateSubtask)
			r.Route("/{id}", func(r chi.Router) {
				r.Get("/", taskHandler.GetSubtask)
				r.Put("/", taskHandler.UpdateSubtask)
				r.Patch("/", taskHandler.UpdateSubtask)
				r.Delete("/", taskHandler.DeleteSubtask)
			})
		})
	})

	// Reference data
	r.Route("/category", func(r chi.Router) {
		r.Get("/", refDataHandler.ListCategories)
		r.Post("/", refDataHandler.CreateCategory)
		r.Route("/{id}", func(r chi.Router) {
			r.Get("/", refDataHandler.GetCategory)
			r.Delete("/", refDataHandler.DeleteCategory)
		})
	})
	r.Route("/prio", func(r chi.Router) {
		r.Get("/", refDataHandler.ListPrios)
		r.Post("/", refDataHandler.CreatePrio)
		r.Route("/{id}", func(r chi.Router) {
			r.Get("/", refDataHandler.GetPrio)
			r.Delete("/", refDataHandler.DeletePrio)
		})
	})

	// Dashboard
	r.Get("/summary/", summaryHandler.Get)

	// Profiles (access token required)
	r.Route("/profiles", func(r chi.Router) {
		r.Use(authMiddleware.Authenticate)
		r.Get("/", profileHandler.List)
		r.Post("/", profileHandler.Create)
		r.Route("/{id}", func(r chi.Router) {
			r.Get("/", profileHandler.Get)
			r.Put("/", profileHandler.Update)
			r.Patch("/", profileHandler.Update)
			r.Delete("/", profileHandler.Delete)
		})
	})

	// Health check endpoint
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		if _, err := w.Write([]byte("OK")); err != nil {
			app.logger.Error("failed to write health check response", "error", err)
		}
	})

	return r
}
