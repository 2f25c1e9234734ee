package repositories

import "netblog/app/models"

// PostRepository defines the interface for post data access
type PostRepository interface {
	Create(post *models.Post) error
	GetByID(id int) (*models.Post, error)
	GetBySlug(slug string) (*models.Post, error)
	List() ([]*models.Post, error)
	ListByAuthor(authorID int) ([]*models.Post, error)
	Update(post *models.Post) error
	Delete(id int) error
}

// UserRepository defines the interface for author data access
type UserRepository interface {
	Create(user *models.User) error
	GetByID(id int) (*models.User, error)
	List() ([]*models.User, error)
}

// CommentRepository defines the interface for comment data access
type CommentRepository interface {
	Create(comment *models.Comment) error
	GetByID(id int) (*models.Comment, error)
	ListByPost(postID int) ([]*models.Comment, error)
	Delete(id int) error
}
