package repositories

import (
	"encoding/binary"
	"errors"
	"fmt"
	"sort"

	"quillpad/app/models"

	"github.com/dgraph-io/badger/v4"
)

// BadgerCommentRepository implements CommentRepository using BadgerDB.
// Comments are stored under their post so listing is a prefix scan; an
// index key maps each comment ID back to its post.
type BadgerCommentRepository struct {
	db *badger.DB
}

var _ CommentRepository = (*BadgerCommentRepository)(nil)

// NewBadgerCommentRepository creates a new BadgerCommentRepository
func NewBadgerCommentRepository(db *badger.DB) *BadgerCommentRepository {
	return &BadgerCommentRepository{db: db}
}

// Create creates a new comment
func (r *BadgerCommentRepository) Create(comment *models.Comment) error {
	return r.db.Update(func(txn *badger.Txn) error {
		id, err := getNextID(txn, CommentSeqKey)
		if err != nil {
			return err
		}
		comment.ID = id

		data, err := marshalEntity(comment)
		if err != nil {
			return err
		}
		if err := txn.Set(commentKey(comment.PostID, comment.ID), data); err != nil {
			return err
		}
		return txn.Set(commentIndexKey(comment.ID), encodePostID(comment.PostID))
	})
}

// lookupPostID resolves the post a comment belongs to.
func lookupPostID(txn *badger.Txn, id int) (int, error) {
	item, err := txn.Get(commentIndexKey(id))
	if errors.Is(err, badger.ErrKeyNotFound) {
		return 0, ErrNotFound
	}
	if err != nil {
		return 0, err
	}
	var postID int
	err = item.Value(func(val []byte) error {
		if len(val) != 4 {
			return fmt.Errorf("corrupt index for comment %d", id)
		}
		postID = int(binary.BigEndian.Uint32(val))
		return nil
	})
	return postID, err
}

func encodePostID(postID int) []byte {
	b := make([]byte, 4)
	binary.BigEndian.PutUint32(b, uint32(postID))
	return b
}

// GetByID retrieves a comment by ID
func (r *BadgerCommentRepository) GetByID(id int) (*models.Comment, error) {
	var comment models.Comment
	err := r.db.View(func(txn *badger.Txn) error {
		postID, err := lookupPostID(txn, id)
		if err != nil {
			return err
		}
		return getEntity(txn, commentKey(postID, id), &comment)
	})
	if err != nil {
		return nil, err
	}
	return &comment, nil
}

// ListByPost retrieves all comments for a post, newest first.
func (r *BadgerCommentRepository) ListByPost(postID int) ([]*models.Comment, error) {
	var comments []*models.Comment
	err := r.db.View(func(txn *badger.Txn) error {
		it := txn.NewIterator(badger.DefaultIteratorOptions)
		defer it.Close()

		prefix := commentPrefix(postID)
		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			var comment models.Comment
			err := it.Item().Value(func(val []byte) error {
				return unmarshalEntity(val, &comment)
			})
			if err != nil {
				return fmt.Errorf("failed to unmarshal comment: %w", err)
			}
			comments = append(comments, &comment)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	sort.SliceStable(comments, func(i, j int) bool {
		if !comments[i].CreatedAt.Equal(comments[j].CreatedAt) {
			return comments[i].CreatedAt.After(comments[j].CreatedAt)
		}
		return comments[i].ID > comments[j].ID
	})
	return comments, nil
}

// Update updates an existing comment. The comment stays attached to the
// post it was created under.
func (r *BadgerCommentRepository) Update(comment *models.Comment) error {
	return r.db.Update(func(txn *badger.Txn) error {
		postID, err := lookupPostID(txn, comment.ID)
		if err != nil {
			return err
		}
		comment.PostID = postID

		data, err := marshalEntity(comment)
		if err != nil {
			return err
		}
		return txn.Set(commentKey(postID, comment.ID), data)
	})
}

// Delete deletes a comment by ID
func (r *BadgerCommentRepository) Delete(id int) error {
	return r.db.Update(func(txn *badger.Txn) error {
		postID, err := lookupPostID(txn, id)
		if err != nil {
			return err
		}
		if err := txn.Delete(commentKey(postID, id)); err != nil {
			return err
		}
		return txn.Delete(commentIndexKey(id))
	})
}

// DeleteByPost removes every comment of a post and reports how many were
// deleted.
func (r *BadgerCommentRepository) DeleteByPost(postID int) (int, error) {
	comments, err := r.ListByPost(postID)
	if err != nil {
		return 0, err
	}
	err = r.db.Update(func(txn *badger.Txn) error {
		for _, c := range comments {
			if err := txn.Delete(commentKey(postID, c.ID)); err != nil {
				return err
			}
			if err := txn.Delete(commentIndexKey(c.ID)); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	return len(comments), nil
}
