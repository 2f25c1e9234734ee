package routes

import (
	"net/http"

	"netblog/app/config"
	"netblog/app/controllers"
	"netblog/app/middleware"
	"netblog/app/repositories"
	"netblog/app/services"

	"github.com/dgraph-io/badger/v4"
	"github.com/gorilla/mux"
)

// Setup wires repositories, services and controllers onto a router,
// using the provided Badger DB.
func Setup(db *badger.DB, cfg *config.Config) *mux.Router {
	router := mux.NewRouter()

	// Apply global middleware
	router.Use(middleware.Logger)
	router.Use(middleware.Recoverer)

	postRepo := repositories.NewBadgerPostRepository(db)
	userRepo := repositories.NewBadgerUserRepository(db)
	commentRepo := repositories.NewBadgerCommentRepository(db)

	postService := services.NewPostService(postRepo, userRepo, commentRepo)
	commentService := services.NewCommentService(commentRepo, postRepo)

	postController := controllers.NewPostController(postService)
	commentController := controllers.NewCommentController(commentService, postController)
	adminController := controllers.NewAdminController(postService, cfg.AdminPasswordHash, cfg.JWTSecret)

	// Serve static files
	router.PathPrefix("/static/").Handler(http.StripPrefix("/static/", http.FileServer(http.Dir("static"))))

	// Public pages
	router.HandleFunc("/", postController.Index).Methods("GET")
	router.HandleFunc("/posts", postController.Index).Methods("GET")
	router.HandleFunc("/promoted", postController.Promoted).Methods("GET")
	router.HandleFunc("/posts/{slug}", postController.Show).Methods("GET")
	router.HandleFunc("/authors/{id:[0-9]+}", postController.Author).Methods("GET")

	// Comment writes
	router.HandleFunc("/posts/{id:[0-9]+}/comments", commentController.Create).Methods("POST")
	router.HandleFunc("/comments/{id:[0-9]+}", commentController.Delete).Methods("DELETE")
	// HTML forms cannot issue DELETE; accept a POST alias
	router.HandleFunc("/comments/{id:[0-9]+}/delete", commentController.Delete).Methods("POST")

	// Admin area: login is open, everything else behind the gate
	router.HandleFunc("/admin/login", adminController.LoginForm).Methods("GET")
	router.HandleFunc("/admin/login", adminController.Login).Methods("POST")

	admin := router.PathPrefix("/admin").Subrouter()
	admin.Use(middleware.AdminAuth(cfg.JWTSecret))
	admin.HandleFunc("", adminController.Index).Methods("GET")
	admin.HandleFunc("/logout", adminController.Logout).Methods("POST")

	return router
}

// StartServer starts the HTTP server on the specified address with the given router.
func StartServer(addr string, router http.Handler) error {
	return http.ListenAndServe(addr, router)
}
