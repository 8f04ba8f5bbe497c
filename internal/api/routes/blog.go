package routes

import (
	"net/http"

	"Inkwell/internal/api/middleware"
	"Inkwell/internal/web"

	"github.com/go-chi/chi/v5"
)

// RegisterBlogRoutes registers the blog pages on the router.
// Reading is open to anonymous visitors (the visibility filter decides
// what they see); authoring always requires a logged-in viewer.
func RegisterBlogRoutes(r chi.Router, h *web.Handlers, viewer *middleware.ViewerMiddleware) {
	// Front page: every post the viewer may see, newest first
	r.Get("/", h.Index)

	// Post authoring - requires a logged-in viewer
	r.With(viewer.RequireViewer).Get("/create", h.CreatePostForm)
	r.With(viewer.RequireViewer).Post("/create", h.CreatePost)
	r.With(viewer.RequireViewer).Get("/{id}/update", h.UpdatePostForm)
	r.With(viewer.RequireViewer).Post("/{id}/update", h.UpdatePost)
	r.With(viewer.RequireViewer).Post("/{id}/delete", h.DeletePost)

	// Comment removal - {id} is the comment's id; only the parent
	// post's author may remove it
	r.With(viewer.RequireViewer).Post("/{id}/deleteComment", h.DeleteComment)

	// Post detail with its comment thread. The comment form POSTs back
	// to the same URL and is open to anonymous visitors.
	r.Get("/post/{id}", h.ViewPost)
	r.Post("/post/{id}", h.CreateComment)

	// Static assets (stylesheet)
	r.Get("/static/*", func(w http.ResponseWriter, r *http.Request) {
		fs := http.StripPrefix("/static/", http.FileServer(http.Dir("static")))
		fs.ServeHTTP(w, r)
	})
}
