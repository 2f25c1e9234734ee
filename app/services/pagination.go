package services

import "netblog/app/models"

// PostsPerPage is the fixed page size of the public listing.
const PostsPerPage = 9

// Page is one page of a post listing, with enough metadata for a
// "go to page N" UI.
type Page struct {
	Posts      []*models.Post
	Total      int
	Number     int
	PerPage    int
	TotalPages int
}

// Empty reports whether the whole result set (not just this page) is empty.
func (p *Page) Empty() bool { return p.Total == 0 }

func (p *Page) HasPrev() bool { return p.Number > 1 }

func (p *Page) HasNext() bool { return p.Number < p.TotalPages }

func (p *Page) PrevPage() int { return p.Number - 1 }

func (p *Page) NextPage() int { return p.Number + 1 }

// Numbers returns all page numbers from 1 to TotalPages.
func (p *Page) Numbers() []int {
	nums := make([]int, 0, p.TotalPages)
	for n := 1; n <= p.TotalPages; n++ {
		nums = append(nums, n)
	}
	return nums
}

// paginate slices posts into the given 1-based page of size perPage.
func paginate(posts []*models.Post, pageNum, perPage int) *Page {
	if pageNum < 1 {
		pageNum = 1
	}

	total := len(posts)
	totalPages := (total + perPage - 1) / perPage

	offset := (pageNum - 1) * perPage
	if offset > total {
		offset = total
	}
	end := offset + perPage
	if end > total {
		end = total
	}

	return &Page{
		Posts:      posts[offset:end],
		Total:      total,
		Number:     pageNum,
		PerPage:    perPage,
		TotalPages: totalPages,
	}
}
