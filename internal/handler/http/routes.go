// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 SpaceNote Authors

package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID, h.withLogging, withGZip)

	router.Route("/api/v1", func(r chi.Router) {
		// routes without authorization
		r.Post("/auth/login", h.login)

		r.Group(func(r chi.Router) {
			r.Use(h.auth)

			r.Route("/users", func(r chi.Router) {
				r.Get("/me", h.me)
				r.Get("/", h.listUsers)
				r.Post("/", h.createUser)
				r.Delete("/{username}", h.deleteUser)
			})

			r.Route("/spaces", func(r chi.Router) {
				r.Get("/", h.listSpaces)
				r.Post("/", h.createSpace)

				r.Route("/{slug}", func(r chi.Router) {
					r.Post("/members", h.addMember)
					r.Post("/fields", h.addField)
					r.Put("/fields/{name}", h.updateField)
					r.Delete("/fields/{name}", h.removeField)

					r.Route("/notes", func(r chi.Router) {
						r.Get("/", h.listNotes)
						r.Post("/", h.createNote)
						r.Get("/{number}", h.getNote)
						r.Patch("/{number}/fields", h.updateNoteFields)

						r.Route("/{number}/comments", func(r chi.Router) {
							r.Get("/", h.listComments)
							r.Post("/", h.createComment)
						})
					})
				})
			})
		})
	})

	return router
}
