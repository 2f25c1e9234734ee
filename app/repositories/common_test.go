package repositories

import (
	"testing"

	"netblog/app/models"

	"github.com/dgraph-io/badger/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupTestDB(t *testing.T) *badger.DB {
	opts := badger.DefaultOptions("").WithInMemory(true).WithLogger(nil)
	db, err := badger.Open(opts)
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return db
}

func TestGetNextID(t *testing.T) {
	db := setupTestDB(t)

	t.Run("first ID", func(t *testing.T) {
		err := db.Update(func(txn *badger.Txn) error {
			id, err := getNextID(txn, PostSeqKey)
			assert.NoError(t, err)
			assert.Equal(t, 1, id)
			return nil
		})
		assert.NoError(t, err)
	})

	t.Run("sequential IDs", func(t *testing.T) {
		err := db.Update(func(txn *badger.Txn) error {
			for i := 2; i <= 5; i++ {
				id, err := getNextID(txn, PostSeqKey)
				assert.NoError(t, err)
				assert.Equal(t, i, id)
			}
			return nil
		})
		assert.NoError(t, err)
	})

	t.Run("different sequence keys", func(t *testing.T) {
		err := db.Update(func(txn *badger.Txn) error {
			_, err := getNextID(txn, PostSeqKey)
			assert.NoError(t, err)

			commentID, err := getNextID(txn, CommentSeqKey)
			assert.NoError(t, err)
			assert.Equal(t, 1, commentID, "Comment sequence should start from 1")

			return nil
		})
		assert.NoError(t, err)
	})
}

func TestEncodeDecodeID(t *testing.T) {
	for _, id := range []int{1, 255, 256, 70000, 1 << 24} {
		assert.Equal(t, id, decodeID(encodeID(id)))
	}
}

func TestMarshalEntity(t *testing.T) {
	image := "https://picsum.photos/id/1/800/400"
	post := &models.Post{
		ID:       1,
		Slug:     "test-post",
		Title:    "Test Post",
		Image:    &image,
		AuthorID: 2,
	}

	data, err := marshalEntity(post)
	assert.NoError(t, err)
	assert.NotEmpty(t, data)

	var unmarshaled models.Post
	err = unmarshalEntity(data, &unmarshaled)
	assert.NoError(t, err)
	assert.Equal(t, post.ID, unmarshaled.ID)
	assert.Equal(t, post.Slug, unmarshaled.Slug)
	assert.Equal(t, post.Title, unmarshaled.Title)
	require.NotNil(t, unmarshaled.Image)
	assert.Equal(t, image, *unmarshaled.Image)
}
