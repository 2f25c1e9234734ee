package main

import (
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"netblog/app/config"
	"netblog/app/models"
	"netblog/app/repositories"
	"netblog/app/routes"
	"netblog/app/services"

	"golang.org/x/crypto/bcrypt"
)

const cliVersion = "1.0.0"

func main() {
	if len(os.Args) < 2 {
		printHelp()
		os.Exit(1)
	}

	cmd := strings.ToLower(os.Args[1])
	switch cmd {
	case "help":
		printHelp()
	case "version":
		fmt.Printf("netblog version %s\n", cliVersion)
	case "serve":
		serve()
	case "seed":
		seed()
	case "hash-password":
		hashPassword()
	default:
		fmt.Printf("Unknown command: %s\n\n", os.Args[1])
		printHelp()
		os.Exit(1)
	}
}

func printHelp() {
	helpText := `Usage: netblog <command>
Commands:
  help             Display this help message.
  version          Show version information.
  serve            Run the blog server (configured via environment / .env).
  seed             Fill the database with example authors, posts and comments.
  hash-password    Read a password from the first argument and print its
                   bcrypt hash, for NETBLOG_ADMIN_PASSWORD_HASH.
`
	fmt.Println(helpText)
}

func serve() {
	cfg := config.Load()

	db, err := repositories.Open(cfg.DBPath)
	if err != nil {
		log.Fatalf("Failed to open Badger DB: %v", err)
	}
	defer db.Close()

	router := routes.Setup(db, cfg)

	log.Printf("Starting blog server on %s", cfg.Addr)
	if err := routes.StartServer(cfg.Addr, router); err != nil {
		log.Fatalf("Server error: %v", err)
	}
}

func seed() {
	cfg := config.Load()

	db, err := repositories.Open(cfg.DBPath)
	if err != nil {
		log.Fatalf("Failed to open Badger DB: %v", err)
	}
	defer db.Close()

	postRepo := repositories.NewBadgerPostRepository(db)
	userRepo := repositories.NewBadgerUserRepository(db)
	commentRepo := repositories.NewBadgerCommentRepository(db)
	postService := services.NewPostService(postRepo, userRepo, commentRepo)
	commentService := services.NewCommentService(commentRepo, postRepo)

	authors := []*models.User{
		{Name: "Ada Fleming"},
		{Name: "Marco Santis"},
		{Name: "June Parker"},
	}
	for _, author := range authors {
		if err := userRepo.Create(author); err != nil {
			log.Fatalf("Failed to create author: %v", err)
		}
	}

	now := time.Now()
	image := func(id int) *string {
		url := fmt.Sprintf("https://picsum.photos/id/%d/800/400", id)
		return &url
	}
	past := func(days int) *time.Time {
		t := now.AddDate(0, 0, -days)
		return &t
	}

	posts := []*models.Post{
		{Title: "Announcing the relaunch", Description: "The blog is back.", Body: "We rebuilt the whole site from scratch.", Image: image(1), PublishedAt: past(1), Promoted: true, AuthorID: authors[0].ID},
		{Title: "Writing every day", Description: "A habit worth keeping.", Body: "Small daily notes beat rare long essays.", Image: image(2), PublishedAt: past(2), AuthorID: authors[0].ID},
		{Title: "On reading old code", Description: "Archaeology for programmers.", Body: "Old code tells you what the team believed.", Image: image(3), PublishedAt: past(5), AuthorID: authors[1].ID},
		{Title: "Draft: untitled thoughts", Description: "Not ready yet.", Body: "This one is still being written.", Image: image(4), AuthorID: authors[1].ID},
		{Title: "A post without a cover", Description: "Invisible until it gets one.", Body: "No image, so not listed.", PublishedAt: past(3), AuthorID: authors[2].ID},
		{Title: "Scheduled for next week", Description: "Patience.", Body: "Published in the future.", Image: image(5), PublishedAt: func() *time.Time { t := now.AddDate(0, 0, 7); return &t }(), AuthorID: authors[2].ID},
	}
	for _, post := range posts {
		if err := postService.CreatePost(post); err != nil {
			log.Fatalf("Failed to create post %q: %v", post.Title, err)
		}
	}

	comments := []struct {
		postID     int
		name, body string
	}{
		{posts[0].ID, "John Doe", "Great to see the blog back!"},
		{posts[0].ID, "Jane Doe", "Looking forward to more posts."},
		{posts[2].ID, "Sam Reader", "This matches my experience exactly."},
	}
	for _, c := range comments {
		if _, err := commentService.SubmitComment(c.postID, c.name, c.body); err != nil {
			log.Fatalf("Failed to create comment: %v", err)
		}
	}

	log.Printf("Seeded %d authors, %d posts, %d comments", len(authors), len(posts), len(comments))
}

func hashPassword() {
	if len(os.Args) < 3 {
		fmt.Println("Usage: netblog hash-password <password>")
		os.Exit(1)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(os.Args[2]), bcrypt.DefaultCost)
	if err != nil {
		log.Fatalf("Failed to hash password: %v", err)
	}
	fmt.Println(string(hash))
}
