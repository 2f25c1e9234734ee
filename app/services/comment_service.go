package services

import (
	"fmt"

	"netblog/app/models"
	"netblog/app/repositories"
)

// CommentService handles comment submission and deletion.
type CommentService struct {
	commentRepo repositories.CommentRepository
	postRepo    repositories.PostRepository
}

// NewCommentService creates a new CommentService
func NewCommentService(commentRepo repositories.CommentRepository, postRepo repositories.PostRepository) *CommentService {
	return &CommentService{
		commentRepo: commentRepo,
		postRepo:    postRepo,
	}
}

// SubmitComment validates and persists a new comment on the given post.
// A validation failure is returned as *models.ValidationError with one
// message per missing field, and nothing is persisted. An unknown post
// is repositories.ErrNotFound.
func (s *CommentService) SubmitComment(postID int, name, body string) (*models.Comment, error) {
	comment := &models.Comment{
		PostID: postID,
		Name:   name,
		Body:   body,
	}

	if err := comment.Validate(); err != nil {
		return nil, err
	}

	if _, err := s.postRepo.GetByID(postID); err != nil {
		return nil, err
	}

	if err := s.commentRepo.Create(comment); err != nil {
		return nil, fmt.Errorf("failed to create comment: %v", err)
	}
	return comment, nil
}

// DeleteComment deletes the identified comment and returns it, so the
// caller can redirect to the owning post. A second deletion of the same
// ID is repositories.ErrNotFound, never a crash.
func (s *CommentService) DeleteComment(id int) (*models.Comment, error) {
	comment, err := s.commentRepo.GetByID(id)
	if err != nil {
		return nil, err
	}

	if err := s.commentRepo.Delete(id); err != nil {
		return nil, err
	}
	return comment, nil
}
