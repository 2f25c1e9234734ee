package models

import "time"

// Post represents a blog post written by an author.
// Image and PublishedAt are nullable: both must be set (and PublishedAt
// must not be in the future) for the post to be publicly visible.
type Post struct {
	ID          int        `json:"id" validate:"gte=0"`
	Slug        string     `json:"slug" validate:"required"`
	Title       string     `json:"title" validate:"required,max=200"`
	Description string     `json:"description"`
	Body        string     `json:"body"`
	Image       *string    `json:"image"`
	PublishedAt *time.Time `json:"published_at"`
	Promoted    bool       `json:"promoted"`
	AuthorID    int        `json:"author_id" validate:"required,gt=0"`
	CreatedAt   time.Time  `json:"created_at"`

	Author   *User      `json:"author,omitempty" validate:"-"`
	Comments []*Comment `json:"comments,omitempty" validate:"-"`
}

// User is a post author.
type User struct {
	ID   int    `json:"id" validate:"gte=0"`
	Name string `json:"name" validate:"required,max=100"`
}

// Comment is a visitor comment on a post. Name and Body are both
// required and validated independently so a missing field can be
// reported on its own.
type Comment struct {
	ID        int       `json:"id" validate:"gte=0"`
	PostID    int       `json:"post_id" validate:"required,gt=0"`
	Name      string    `json:"name" validate:"required,max=100"`
	Body      string    `json:"body" validate:"required,max=1000"`
	CreatedAt time.Time `json:"created_at"`
}
