package web

import (
	"errors"
	"fmt"
	"html/template"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/gorilla/sessions"

	"Inkwell/internal/api/middleware"
	"Inkwell/internal/core/comments"
	"Inkwell/internal/core/posts"
	"Inkwell/internal/core/users"
)

// Handlers provides the HTTP handlers behind the blog pages.
type Handlers struct {
	templates      *Templates
	store          sessions.Store
	userService    users.UserService
	postService    posts.Service
	commentService comments.Service
	logger         *slog.Logger
}

// NewHandlers creates a new Handlers instance with the provided dependencies.
func NewHandlers(
	templates *Templates,
	store sessions.Store,
	userService users.UserService,
	postService posts.Service,
	commentService comments.Service,
	logger *slog.Logger,
) *Handlers {
	if logger == nil {
		logger = slog.Default()
	}
	return &Handlers{
		templates:      templates,
		store:          store,
		userService:    userService,
		postService:    postService,
		commentService: commentService,
		logger:         logger,
	}
}

// basePage carries the fields the base layout renders on every page.
type basePage struct {
	Title   string
	Viewer  *users.User
	Flashes []string
}

// postView pairs a post with its body marked safe for rendering. Bodies
// pass through the sanitizer when a post is created; the update path
// stores them verbatim (see posts.Service.UpdatePost), so edited posts
// are only as clean as their authors keep them.
type postView struct {
	*posts.Post
	BodyHTML template.HTML
}

func newPostView(post *posts.Post) postView {
	return postView{Post: post, BodyHTML: template.HTML(post.Body)}
}

type indexPage struct {
	basePage
	Posts []postView
}

type postPage struct {
	basePage
	Post     postView
	Comments []*comments.Comment
}

// postFormPage backs the create and update forms. Post is nil on the
// create form; Selected is the visibility token the selector highlights.
type postFormPage struct {
	basePage
	Post     *posts.Post
	Users    []*users.User
	Selected string
}

// Index handles GET / and lists every post the viewer may read, newest first.
func (h *Handlers) Index(w http.ResponseWriter, r *http.Request) {
	viewer := middleware.Viewer(r)

	list, err := h.postService.ListPosts(r.Context(), viewer)
	if err != nil {
		h.logger.Error("failed to list posts", "error", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	views := make([]postView, 0, len(list))
	for _, post := range list {
		views = append(views, newPostView(post))
	}

	h.render(w, "index.html", indexPage{
		basePage: h.basePage(w, r, "Posts"),
		Posts:    views,
	})
}

// ViewPost handles GET /post/{id}: the post plus its comment thread.
func (h *Handlers) ViewPost(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		http.NotFound(w, r)
		return
	}

	viewer := middleware.Viewer(r)
	post, err := h.postService.GetPost(r.Context(), id, viewer, false)
	if err != nil {
		if posts.IsNotFound(err) {
			http.Error(w, fmt.Sprintf("No post with id %d.", id), http.StatusNotFound)
			return
		}
		h.logger.Error("failed to get post", "postID", id, "error", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	// A restricted post the viewer may not read reports as missing, not
	// forbidden, so its existence doesn't leak.
	if !posts.CanView(viewer, post) {
		http.Error(w, fmt.Sprintf("No post with id %d.", id), http.StatusNotFound)
		return
	}

	thread, err := h.commentService.ListByPost(r.Context(), id)
	if err != nil {
		h.logger.Error("failed to list comments", "postID", id, "error", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	h.render(w, "post.html", postPage{
		basePage: h.basePage(w, r, post.Title),
		Post:     newPostView(post),
		Comments: thread,
	})
}

// CreateComment handles POST /post/{id}. Anonymous visitors may comment;
// validation failures flash and land back on the post, same as success.
func (h *Handlers) CreateComment(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		http.NotFound(w, r)
		return
	}

	if err := r.ParseForm(); err != nil {
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return
	}

	viewer := middleware.Viewer(r)
	req := comments.CreateCommentRequest{
		Title: r.PostFormValue("title"),
		Body:  r.PostFormValue("body"),
	}

	_, err = h.commentService.Create(r.Context(), viewer, id, req)
	switch {
	case err == nil:
	case errors.Is(err, comments.ErrTitleRequired):
		h.flash(w, r, "Title is required.")
	case errors.Is(err, comments.ErrPostNotFound):
		http.Error(w, fmt.Sprintf("No post with id %d.", id), http.StatusNotFound)
		return
	default:
		h.logger.Error("failed to create comment", "postID", id, "error", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	http.Redirect(w, r, fmt.Sprintf("/post/%d", id), http.StatusFound)
}

// CreatePostForm handles GET /create.
func (h *Handlers) CreatePostForm(w http.ResponseWriter, r *http.Request) {
	h.renderPostForm(w, r, "create.html", "New Post", nil, posts.PublicToken)
}

// CreatePost handles POST /create.
func (h *Handlers) CreatePost(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return
	}

	viewer := middleware.Viewer(r)
	req := posts.CreatePostRequest{
		Title:      r.PostFormValue("title"),
		Body:       r.PostFormValue("body"),
		Visibility: r.PostFormValue("visibility"),
	}

	_, err := h.postService.CreatePost(r.Context(), viewer, req)
	switch {
	case err == nil:
		http.Redirect(w, r, "/", http.StatusFound)
	case posts.IsValidationError(err):
		h.flash(w, r, validationMessage(err))
		h.renderPostForm(w, r, "create.html", "New Post", nil, posts.PublicToken)
	case posts.IsNotAuthorized(err):
		http.Error(w, "Forbidden", http.StatusForbidden)
	default:
		h.logger.Error("failed to create post", "error", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
	}
}

// UpdatePostForm handles GET /{id}/update. Only the author gets the form.
func (h *Handlers) UpdatePostForm(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		http.NotFound(w, r)
		return
	}

	viewer := middleware.Viewer(r)
	post, err := h.postService.GetPost(r.Context(), id, viewer, true)
	if err != nil {
		h.writePostError(w, id, err)
		return
	}

	h.renderPostForm(w, r, "update.html", fmt.Sprintf("Edit %q", post.Title), post, post.Visibility.String())
}

// UpdatePost handles POST /{id}/update.
func (h *Handlers) UpdatePost(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		http.NotFound(w, r)
		return
	}

	if err := r.ParseForm(); err != nil {
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return
	}

	viewer := middleware.Viewer(r)
	req := posts.UpdatePostRequest{
		Title:      r.PostFormValue("title"),
		Body:       r.PostFormValue("body"),
		Visibility: r.PostFormValue("visibility"),
	}

	_, err = h.postService.UpdatePost(r.Context(), viewer, id, req)
	switch {
	case err == nil:
		http.Redirect(w, r, "/", http.StatusFound)
	case posts.IsValidationError(err):
		// The service enforces authorship before validating, so the
		// refetch for the re-render cannot 403 here.
		h.flash(w, r, validationMessage(err))
		post, gerr := h.postService.GetPost(r.Context(), id, viewer, true)
		if gerr != nil {
			h.writePostError(w, id, gerr)
			return
		}
		h.renderPostForm(w, r, "update.html", fmt.Sprintf("Edit %q", post.Title), post, post.Visibility.String())
	default:
		h.writePostError(w, id, err)
	}
}

// DeletePost handles POST /{id}/delete.
func (h *Handlers) DeletePost(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		http.NotFound(w, r)
		return
	}

	viewer := middleware.Viewer(r)
	if err := h.postService.DeletePost(r.Context(), viewer, id); err != nil {
		h.writePostError(w, id, err)
		return
	}

	http.Redirect(w, r, "/", http.StatusFound)
}

// DeleteComment handles POST /{id}/deleteComment, where {id} is the
// comment's id. Redirects back to the parent post.
func (h *Handlers) DeleteComment(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		http.NotFound(w, r)
		return
	}

	viewer := middleware.Viewer(r)
	postID, err := h.commentService.Delete(r.Context(), viewer, id)
	switch {
	case err == nil:
		http.Redirect(w, r, fmt.Sprintf("/post/%d", postID), http.StatusFound)
	case errors.Is(err, comments.ErrCommentNotFound):
		http.Error(w, fmt.Sprintf("No comment with id %d.", id), http.StatusNotFound)
	case errors.Is(err, comments.ErrNotAuthorized):
		http.Error(w, "Forbidden", http.StatusForbidden)
	default:
		h.logger.Error("failed to delete comment", "commentID", id, "error", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
	}
}

// renderPostForm renders the create or update form with the audience
// selector populated from the user directory.
func (h *Handlers) renderPostForm(w http.ResponseWriter, r *http.Request, name, title string, post *posts.Post, selected string) {
	audience, err := h.userService.List(r.Context())
	if err != nil {
		h.logger.Error("failed to list users for audience selector", "error", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	h.render(w, name, postFormPage{
		basePage: h.basePage(w, r, title),
		Post:     post,
		Users:    audience,
		Selected: selected,
	})
}

// writePostError maps post service errors onto HTTP status codes.
func (h *Handlers) writePostError(w http.ResponseWriter, id int64, err error) {
	switch {
	case posts.IsNotFound(err):
		http.Error(w, fmt.Sprintf("No post with id %d.", id), http.StatusNotFound)
	case posts.IsNotAuthorized(err):
		http.Error(w, "Forbidden", http.StatusForbidden)
	default:
		h.logger.Error("post operation failed", "postID", id, "error", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
	}
}

// basePage drains pending flashes and assembles the layout data. It must
// run before the body is written so the session cookie header can go out.
func (h *Handlers) basePage(w http.ResponseWriter, r *http.Request, title string) basePage {
	return basePage{
		Title:   title,
		Viewer:  middleware.Viewer(r),
		Flashes: h.popFlashes(w, r),
	}
}

func (h *Handlers) render(w http.ResponseWriter, name string, data interface{}) {
	if err := h.templates.Render(w, name, data); err != nil {
		h.logger.Error("failed to render page", "template", name, "error", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
	}
}

// flash queues a one-shot message for the next rendered page. Within one
// request the store returns the same session instance, so a flash added
// here is visible to an immediate re-render.
func (h *Handlers) flash(w http.ResponseWriter, r *http.Request, message string) {
	// Get returns a usable blank session even when the cookie is undecodable
	session, _ := h.store.Get(r, middleware.SessionName)
	session.AddFlash(message)
	if err := session.Save(r, w); err != nil {
		h.logger.Error("failed to save flash message", "error", err)
	}
}

// popFlashes drains the pending flash messages and persists the removal.
func (h *Handlers) popFlashes(w http.ResponseWriter, r *http.Request) []string {
	session, _ := h.store.Get(r, middleware.SessionName)
	raw := session.Flashes()
	if len(raw) > 0 {
		if err := session.Save(r, w); err != nil {
			h.logger.Error("failed to clear flash messages", "error", err)
		}
	}

	flashes := make([]string, 0, len(raw))
	for _, f := range raw {
		if s, ok := f.(string); ok {
			flashes = append(flashes, s)
		}
	}
	return flashes
}

// validationMessage extracts the human-readable message from a service
// validation error.
func validationMessage(err error) string {
	var postErr *posts.ValidationError
	if errors.As(err, &postErr) {
		return postErr.Message
	}
	var userErr *users.ValidationError
	if errors.As(err, &userErr) {
		return userErr.Message
	}
	return err.Error()
}

func parseID(r *http.Request) (int64, error) {
	return strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
}
