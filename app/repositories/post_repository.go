package repositories

import (
	"fmt"

	"netblog/app/models"

	"github.com/dgraph-io/badger/v4"
)

// BadgerPostRepository implements PostRepository using BadgerDB
type BadgerPostRepository struct {
	db *badger.DB
}

// NewBadgerPostRepository creates a new BadgerPostRepository
func NewBadgerPostRepository(db *badger.DB) *BadgerPostRepository {
	return &BadgerPostRepository{db: db}
}

func postKey(id int) []byte {
	return []byte(fmt.Sprintf("%s%d", PostKeyPrefix, id))
}

func slugKey(slug string) []byte {
	return []byte(SlugKeyPrefix + slug)
}

// Create creates a new post, claiming its slug in the index.
func (r *BadgerPostRepository) Create(post *models.Post) error {
	return update(r.db, func(txn *badger.Txn) error {
		// Slugs are unique across all posts
		_, err := txn.Get(slugKey(post.Slug))
		if err == nil {
			return ErrSlugTaken
		}
		if err != badger.ErrKeyNotFound {
			return err
		}

		id, err := getNextID(txn, PostSeqKey)
		if err != nil {
			return err
		}
		post.ID = id
		post.BeforeCreate()

		data, err := marshalEntity(post)
		if err != nil {
			return err
		}

		if err := txn.Set(postKey(post.ID), data); err != nil {
			return err
		}
		return txn.Set(slugKey(post.Slug), encodeID(post.ID))
	})
}

// GetByID retrieves a post by ID
func (r *BadgerPostRepository) GetByID(id int) (*models.Post, error) {
	var post models.Post

	err := r.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(postKey(id))
		if err == badger.ErrKeyNotFound {
			return ErrNotFound
		}
		if err != nil {
			return err
		}

		return item.Value(func(val []byte) error {
			return unmarshalEntity(val, &post)
		})
	})

	if err != nil {
		return nil, err
	}
	return &post, nil
}

// GetBySlug retrieves a post by its unique slug via the slug index.
func (r *BadgerPostRepository) GetBySlug(slug string) (*models.Post, error) {
	var post models.Post

	err := r.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(slugKey(slug))
		if err == badger.ErrKeyNotFound {
			return ErrNotFound
		}
		if err != nil {
			return err
		}

		var id int
		if err := item.Value(func(val []byte) error {
			id = decodeID(val)
			return nil
		}); err != nil {
			return err
		}

		item, err = txn.Get(postKey(id))
		if err == badger.ErrKeyNotFound {
			return ErrNotFound
		}
		if err != nil {
			return err
		}

		return item.Value(func(val []byte) error {
			return unmarshalEntity(val, &post)
		})
	})

	if err != nil {
		return nil, err
	}
	return &post, nil
}

// List retrieves all posts
func (r *BadgerPostRepository) List() ([]*models.Post, error) {
	var posts []*models.Post
	err := r.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		it := txn.NewIterator(opts)
		defer it.Close()

		prefix := []byte(PostKeyPrefix)
		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			item := it.Item()
			var post models.Post
			err := item.Value(func(val []byte) error {
				return unmarshalEntity(val, &post)
			})
			if err != nil {
				return fmt.Errorf("failed to unmarshal post: %v", err)
			}
			posts = append(posts, &post)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return posts, nil
}

// ListByAuthor retrieves all posts by the given author
func (r *BadgerPostRepository) ListByAuthor(authorID int) ([]*models.Post, error) {
	posts, err := r.List()
	if err != nil {
		return nil, err
	}

	var filtered []*models.Post
	for _, post := range posts {
		if post.AuthorID == authorID {
			filtered = append(filtered, post)
		}
	}
	return filtered, nil
}

// Update updates an existing post, moving its slug index entry if the
// slug changed.
func (r *BadgerPostRepository) Update(post *models.Post) error {
	return update(r.db, func(txn *badger.Txn) error {
		item, err := txn.Get(postKey(post.ID))
		if err == badger.ErrKeyNotFound {
			return ErrNotFound
		}
		if err != nil {
			return err
		}

		var existing models.Post
		if err := item.Value(func(val []byte) error {
			return unmarshalEntity(val, &existing)
		}); err != nil {
			return err
		}

		if existing.Slug != post.Slug {
			_, err := txn.Get(slugKey(post.Slug))
			if err == nil {
				return ErrSlugTaken
			}
			if err != badger.ErrKeyNotFound {
				return err
			}
			if err := txn.Delete(slugKey(existing.Slug)); err != nil {
				return err
			}
			if err := txn.Set(slugKey(post.Slug), encodeID(post.ID)); err != nil {
				return err
			}
		}

		data, err := marshalEntity(post)
		if err != nil {
			return err
		}
		return txn.Set(postKey(post.ID), data)
	})
}

// Delete deletes a post by ID along with its slug index entry
func (r *BadgerPostRepository) Delete(id int) error {
	return update(r.db, func(txn *badger.Txn) error {
		item, err := txn.Get(postKey(id))
		if err == badger.ErrKeyNotFound {
			return ErrNotFound
		}
		if err != nil {
			return err
		}

		var post models.Post
		if err := item.Value(func(val []byte) error {
			return unmarshalEntity(val, &post)
		}); err != nil {
			return err
		}

		if err := txn.Delete(slugKey(post.Slug)); err != nil {
			return err
		}
		return txn.Delete(postKey(id))
	})
}
