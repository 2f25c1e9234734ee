package models

import (
	"errors"
	"time"
)

// Visible reports whether the post is eligible for public display at the
// given instant: its image is set and it has a publication time that is
// not in the future. Both the listing query and the by-slug lookup go
// through this single predicate so the two paths cannot disagree.
func (p *Post) Visible(now time.Time) bool {
	if p.Image == nil {
		return false
	}
	if p.PublishedAt == nil {
		return false
	}
	return !p.PublishedAt.After(now)
}

// Validate checks if the post meets all validation requirements
func (p *Post) Validate() error {
	if err := validate.Struct(p); err != nil {
		return newValidationError(err)
	}

	if p.CreatedAt.IsZero() {
		return errors.New("created_at cannot be zero")
	}

	return nil
}

// BeforeCreate sets up any necessary fields before creation
func (p *Post) BeforeCreate() {
	if p.CreatedAt.IsZero() {
		p.CreatedAt = time.Now()
	}
}

// AddComment attaches a comment to the post
func (p *Post) AddComment(comment *Comment) error {
	if comment == nil {
		return errors.New("comment cannot be nil")
	}

	comment.PostID = p.ID
	p.Comments = append(p.Comments, comment)
	return nil
}
