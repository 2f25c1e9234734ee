package controllers

import (
	"html/template"
	"net/http"
	"strconv"

	"netblog/app/models"
	"netblog/app/repositories"
	"netblog/app/services"
	"netblog/app/views"

	"github.com/gorilla/mux"
)

// PostController handles the public listing and detail pages.
type PostController struct {
	postService *services.PostService
	templates   map[string]*template.Template
}

// NewPostController creates a new PostController
func NewPostController(postService *services.PostService) *PostController {
	return &PostController{
		postService: postService,
		templates:   views.Load(),
	}
}

type indexData struct {
	Page     *services.Page
	Authors  []*models.User
	BasePath string
}

type showData struct {
	Post   *models.Post
	Form   CommentForm
	Errors map[string]string
}

// CommentForm holds submitted comment fields so a failed submission can
// be re-rendered with the visitor's input preserved.
type CommentForm struct {
	Name string
	Body string
}

// Index lists visible posts, paginated, with the authors sidebar.
func (pc *PostController) Index(w http.ResponseWriter, r *http.Request) {
	pc.renderListing(w, r, services.PostFilter{})
}

// Author lists visible posts by a single author.
func (pc *PostController) Author(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	authorID, err := strconv.Atoi(vars["id"])
	if err != nil {
		http.Error(w, "Invalid author ID", http.StatusBadRequest)
		return
	}
	pc.renderListing(w, r, services.PostFilter{AuthorID: authorID})
}

// Promoted lists only promoted posts.
func (pc *PostController) Promoted(w http.ResponseWriter, r *http.Request) {
	pc.renderListing(w, r, services.PostFilter{PromotedOnly: true})
}

func (pc *PostController) renderListing(w http.ResponseWriter, r *http.Request, filter services.PostFilter) {
	page := 1
	if pageStr := r.URL.Query().Get("page"); pageStr != "" {
		if p, err := strconv.Atoi(pageStr); err == nil && p > 0 {
			page = p
		}
	}

	result, err := pc.postService.ListPosts(filter, page)
	if err != nil {
		http.Error(w, "Failed to fetch posts: "+err.Error(), http.StatusInternalServerError)
		return
	}

	authors, err := pc.postService.VisibleAuthors(filter)
	if err != nil {
		http.Error(w, "Failed to fetch authors: "+err.Error(), http.StatusInternalServerError)
		return
	}

	data := indexData{
		Page:     result,
		Authors:  authors,
		BasePath: r.URL.Path,
	}
	if err := pc.templates["index"].ExecuteTemplate(w, "layout", data); err != nil {
		http.Error(w, "Template error: "+err.Error(), http.StatusInternalServerError)
	}
}

// Show displays a single visible post with its comments. An unknown
// slug and an invisible post both yield 404.
func (pc *PostController) Show(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	post, err := pc.postService.GetPostBySlug(vars["slug"])
	if err == repositories.ErrNotFound {
		http.Error(w, "Post not found", http.StatusNotFound)
		return
	}
	if err != nil {
		http.Error(w, "Failed to fetch post: "+err.Error(), http.StatusInternalServerError)
		return
	}

	pc.RenderShow(w, post, CommentForm{}, nil, http.StatusOK)
}

// RenderShow renders the post detail page. The comment controller uses
// it to re-render the page with field errors after a failed submission.
func (pc *PostController) RenderShow(w http.ResponseWriter, post *models.Post, form CommentForm, fieldErrors map[string]string, status int) {
	data := showData{
		Post:   post,
		Form:   form,
		Errors: fieldErrors,
	}

	if status != http.StatusOK {
		w.WriteHeader(status)
	}
	if err := pc.templates["show"].ExecuteTemplate(w, "layout", data); err != nil {
		http.Error(w, "Template error: "+err.Error(), http.StatusInternalServerError)
	}
}
