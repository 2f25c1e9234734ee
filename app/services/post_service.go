package services

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"netblog/app/models"
	"netblog/app/repositories"

	"github.com/google/uuid"
)

// PostFilter narrows the public listing. The zero value selects every
// visible post.
type PostFilter struct {
	AuthorID     int // 0 selects all authors
	PromotedOnly bool
}

// PostService computes the visible, ordered view of the blog's posts.
type PostService struct {
	postRepo    repositories.PostRepository
	userRepo    repositories.UserRepository
	commentRepo repositories.CommentRepository
}

// NewPostService creates a new PostService
func NewPostService(postRepo repositories.PostRepository, userRepo repositories.UserRepository, commentRepo repositories.CommentRepository) *PostService {
	return &PostService{
		postRepo:    postRepo,
		userRepo:    userRepo,
		commentRepo: commentRepo,
	}
}

// visiblePosts returns the filtered set of publicly visible posts in
// display order: promoted first, then newest publication time, then
// highest ID. The single composite comparator keeps promotion from ever
// breaking ties non-deterministically.
func (s *PostService) visiblePosts(filter PostFilter) ([]*models.Post, error) {
	var posts []*models.Post
	var err error
	if filter.AuthorID > 0 {
		posts, err = s.postRepo.ListByAuthor(filter.AuthorID)
	} else {
		posts, err = s.postRepo.List()
	}
	if err != nil {
		return nil, err
	}

	now := time.Now()
	visible := make([]*models.Post, 0, len(posts))
	for _, post := range posts {
		if !post.Visible(now) {
			continue
		}
		if filter.PromotedOnly && !post.Promoted {
			continue
		}
		visible = append(visible, post)
	}

	sort.Slice(visible, func(i, j int) bool {
		a, b := visible[i], visible[j]
		if a.Promoted != b.Promoted {
			return a.Promoted
		}
		if !a.PublishedAt.Equal(*b.PublishedAt) {
			return a.PublishedAt.After(*b.PublishedAt)
		}
		return a.ID > b.ID
	})

	return visible, nil
}

// ListPosts returns the requested page of visible posts with their
// authors attached, ordered for display.
func (s *PostService) ListPosts(filter PostFilter, pageNum int) (*Page, error) {
	visible, err := s.visiblePosts(filter)
	if err != nil {
		return nil, err
	}

	page := paginate(visible, pageNum, PostsPerPage)
	if err := s.attachAuthors(page.Posts); err != nil {
		return nil, err
	}
	return page, nil
}

// VisibleAuthors returns each author with at least one visible post
// exactly once, ordered by author ID. The set is built from the filtered
// post collection keyed by author ID; a join-style traversal would yield
// one row per post, not per author.
func (s *PostService) VisibleAuthors(filter PostFilter) ([]*models.User, error) {
	visible, err := s.visiblePosts(filter)
	if err != nil {
		return nil, err
	}

	ids := make(map[int]bool, len(visible))
	for _, post := range visible {
		ids[post.AuthorID] = true
	}

	authors := make([]*models.User, 0, len(ids))
	for id := range ids {
		user, err := s.userRepo.GetByID(id)
		if err != nil {
			return nil, fmt.Errorf("failed to load author %d: %v", id, err)
		}
		authors = append(authors, user)
	}

	sort.Slice(authors, func(i, j int) bool {
		return authors[i].ID < authors[j].ID
	})

	return authors, nil
}

// GetPostBySlug returns the post with the given slug, its author and its
// comments (newest first). An unknown slug and an invisible post are
// indistinguishable to the caller: both are ErrNotFound, so unpublished
// or imageless posts are unreachable by direct URL.
func (s *PostService) GetPostBySlug(slug string) (*models.Post, error) {
	post, err := s.postRepo.GetBySlug(slug)
	if err != nil {
		return nil, err
	}
	return s.loadVisiblePost(post)
}

// GetPostByID is GetPostBySlug for callers that hold the numeric ID
// (the comment submission and deletion paths). Visibility is enforced
// the same way.
func (s *PostService) GetPostByID(id int) (*models.Post, error) {
	post, err := s.postRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	return s.loadVisiblePost(post)
}

// loadVisiblePost applies the visibility gate and attaches the author
// and comments (newest first).
func (s *PostService) loadVisiblePost(post *models.Post) (*models.Post, error) {
	if !post.Visible(time.Now()) {
		return nil, repositories.ErrNotFound
	}

	author, err := s.userRepo.GetByID(post.AuthorID)
	if err != nil {
		return nil, fmt.Errorf("failed to load author %d: %v", post.AuthorID, err)
	}
	post.Author = author

	comments, err := s.commentRepo.ListByPost(post.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to get comments: %v", err)
	}
	sortCommentsNewestFirst(comments)
	post.Comments = comments

	return post, nil
}

// ListAllPosts returns every post regardless of visibility, newest
// created first. Used by the admin dashboard.
func (s *PostService) ListAllPosts() ([]*models.Post, error) {
	posts, err := s.postRepo.List()
	if err != nil {
		return nil, err
	}

	sort.Slice(posts, func(i, j int) bool {
		a, b := posts[i], posts[j]
		if !a.CreatedAt.Equal(b.CreatedAt) {
			return a.CreatedAt.After(b.CreatedAt)
		}
		return a.ID > b.ID
	})

	if err := s.attachAuthors(posts); err != nil {
		return nil, err
	}
	return posts, nil
}

// CreatePost creates a post with validation, deriving a slug from the
// title when none is given. On a slug collision a short random suffix is
// appended.
func (s *PostService) CreatePost(post *models.Post) error {
	if post.Slug == "" {
		post.Slug = Slugify(post.Title)
	}
	post.BeforeCreate()

	if err := post.Validate(); err != nil {
		return fmt.Errorf("invalid post: %v", err)
	}

	err := s.postRepo.Create(post)
	if err == repositories.ErrSlugTaken {
		post.Slug = fmt.Sprintf("%s-%s", post.Slug, uuid.NewString()[:8])
		err = s.postRepo.Create(post)
	}
	return err
}

// attachAuthors loads each post's author, fetching every distinct author
// once.
func (s *PostService) attachAuthors(posts []*models.Post) error {
	users := make(map[int]*models.User)
	for _, post := range posts {
		user, ok := users[post.AuthorID]
		if !ok {
			var err error
			user, err = s.userRepo.GetByID(post.AuthorID)
			if err != nil {
				return fmt.Errorf("failed to load author %d: %v", post.AuthorID, err)
			}
			users[post.AuthorID] = user
		}
		post.Author = user
	}
	return nil
}

func sortCommentsNewestFirst(comments []*models.Comment) {
	sort.Slice(comments, func(i, j int) bool {
		a, b := comments[i], comments[j]
		if !a.CreatedAt.Equal(b.CreatedAt) {
			return a.CreatedAt.After(b.CreatedAt)
		}
		return a.ID > b.ID
	})
}

// Slugify turns a title into a lowercase URL-safe slug.
func Slugify(title string) string {
	var b strings.Builder
	lastDash := true
	for _, r := range strings.ToLower(title) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
			lastDash = false
		default:
			if !lastDash {
				b.WriteByte('-')
				lastDash = true
			}
		}
	}
	return strings.TrimSuffix(b.String(), "-")
}
