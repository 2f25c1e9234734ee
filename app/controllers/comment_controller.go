package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"netblog/app/models"
	"netblog/app/repositories"
	"netblog/app/services"

	"github.com/gorilla/mux"
)

// CommentController handles comment submission and deletion.
type CommentController struct {
	commentService *services.CommentService
	postController *PostController
}

// NewCommentController creates a new CommentController
func NewCommentController(commentService *services.CommentService, postController *PostController) *CommentController {
	return &CommentController{
		commentService: commentService,
		postController: postController,
	}
}

// Create validates and persists a comment, then redirects back to the
// post's detail page. A validation failure re-renders the detail page
// with per-field messages and the visitor's input preserved.
func (cc *CommentController) Create(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	postID, err := strconv.Atoi(vars["id"])
	if err != nil {
		http.Error(w, "Invalid post ID", http.StatusBadRequest)
		return
	}

	post, err := cc.postController.postService.GetPostByID(postID)
	if err == repositories.ErrNotFound {
		http.Error(w, "Post not found", http.StatusNotFound)
		return
	}
	if err != nil {
		http.Error(w, "Failed to fetch post: "+err.Error(), http.StatusInternalServerError)
		return
	}

	if err := r.ParseForm(); err != nil {
		http.Error(w, "Failed to parse form: "+err.Error(), http.StatusBadRequest)
		return
	}
	form := CommentForm{
		Name: r.FormValue("name"),
		Body: r.FormValue("body"),
	}

	_, err = cc.commentService.SubmitComment(postID, form.Name, form.Body)
	if err != nil {
		var verr *models.ValidationError
		if errors.As(err, &verr) {
			cc.postController.RenderShow(w, post, form, verr.Fields, http.StatusUnprocessableEntity)
			return
		}
		http.Error(w, "Failed to create comment: "+err.Error(), http.StatusInternalServerError)
		return
	}

	http.Redirect(w, r, "/posts/"+post.Slug, http.StatusSeeOther)
}

// Delete removes a comment and redirects to the owning post. Deleting an
// unknown or already-deleted comment is a 404, never a crash.
func (cc *CommentController) Delete(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	id, err := strconv.Atoi(vars["id"])
	if err != nil {
		http.Error(w, "Invalid comment ID", http.StatusBadRequest)
		return
	}

	comment, err := cc.commentService.DeleteComment(id)
	if err == repositories.ErrNotFound {
		http.Error(w, "Comment not found", http.StatusNotFound)
		return
	}
	if err != nil {
		http.Error(w, "Failed to delete comment: "+err.Error(), http.StatusInternalServerError)
		return
	}

	post, err := cc.postController.postService.GetPostByID(comment.PostID)
	if err != nil {
		// Owning post gone or no longer visible: fall back to the listing.
		http.Redirect(w, r, "/posts", http.StatusSeeOther)
		return
	}
	http.Redirect(w, r, "/posts/"+post.Slug, http.StatusSeeOther)
}
