package controllers

import (
	"html/template"
	"net/http"
	"time"

	"netblog/app/middleware"
	"netblog/app/models"
	"netblog/app/services"
	"netblog/app/views"

	"golang.org/x/crypto/bcrypt"
)

// AdminController serves the login form and the dashboard of all posts,
// including ones not publicly visible.
type AdminController struct {
	postService  *services.PostService
	passwordHash string
	jwtSecret    string
	templates    map[string]*template.Template
}

// NewAdminController creates a new AdminController. The admin area is
// disabled when no password hash is configured.
func NewAdminController(postService *services.PostService, passwordHash, jwtSecret string) *AdminController {
	return &AdminController{
		postService:  postService,
		passwordHash: passwordHash,
		jwtSecret:    jwtSecret,
		templates:    views.Load(),
	}
}

type loginData struct {
	Error string
}

type adminData struct {
	Posts []*models.Post
}

// LoginForm displays the admin login form.
func (ac *AdminController) LoginForm(w http.ResponseWriter, r *http.Request) {
	ac.renderLogin(w, "", http.StatusOK)
}

// Login checks the submitted password against the configured bcrypt
// hash and issues a session cookie.
func (ac *AdminController) Login(w http.ResponseWriter, r *http.Request) {
	if ac.passwordHash == "" {
		http.Error(w, "Admin area is disabled", http.StatusNotFound)
		return
	}

	if err := r.ParseForm(); err != nil {
		http.Error(w, "Failed to parse form: "+err.Error(), http.StatusBadRequest)
		return
	}

	password := r.FormValue("password")
	if err := bcrypt.CompareHashAndPassword([]byte(ac.passwordHash), []byte(password)); err != nil {
		ac.renderLogin(w, "Invalid password.", http.StatusUnauthorized)
		return
	}

	token, err := middleware.IssueAdminToken(ac.jwtSecret)
	if err != nil {
		http.Error(w, "Failed to create session: "+err.Error(), http.StatusInternalServerError)
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     middleware.SessionCookie,
		Value:    token,
		Path:     "/",
		Expires:  time.Now().Add(24 * time.Hour),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	http.Redirect(w, r, "/admin", http.StatusSeeOther)
}

// Logout clears the session cookie.
func (ac *AdminController) Logout(w http.ResponseWriter, r *http.Request) {
	http.SetCookie(w, &http.Cookie{
		Name:     middleware.SessionCookie,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
	})
	http.Redirect(w, r, "/posts", http.StatusSeeOther)
}

// Index shows every post with its visibility status.
func (ac *AdminController) Index(w http.ResponseWriter, r *http.Request) {
	posts, err := ac.postService.ListAllPosts()
	if err != nil {
		http.Error(w, "Failed to fetch posts: "+err.Error(), http.StatusInternalServerError)
		return
	}

	if err := ac.templates["admin_index"].ExecuteTemplate(w, "layout", adminData{Posts: posts}); err != nil {
		http.Error(w, "Template error: "+err.Error(), http.StatusInternalServerError)
	}
}

func (ac *AdminController) renderLogin(w http.ResponseWriter, errMsg string, status int) {
	if status != http.StatusOK {
		w.WriteHeader(status)
	}
	if err := ac.templates["admin_login"].ExecuteTemplate(w, "layout", loginData{Error: errMsg}); err != nil {
		http.Error(w, "Template error: "+err.Error(), http.StatusInternalServerError)
	}
}
