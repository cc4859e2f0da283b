package repositories

import (
	"fmt"
	"os"
	"sync"

	"github.com/dgraph-io/badger/v4"
	"go.uber.org/zap"
)

// Store owns the Badger database shared by the post and comment
// repositories.
type Store struct {
	db       *badger.DB
	mutex    sync.Mutex
	dbPath   string
	isTempDB bool
	closed   bool

	Posts    *BadgerPostRepository
	Comments *BadgerCommentRepository
}

// Open opens (or creates) the database at path. An empty path creates an
// isolated temporary database that is removed again on Close.
func Open(path string, logger *zap.Logger) (*Store, error) {
	isTemp := false
	if path == "" {
		tempPath, err := os.MkdirTemp("", "quillpad_db_")
		if err != nil {
			return nil, fmt.Errorf("create temp dir: %w", err)
		}
		path = tempPath
		isTemp = true
	}
	opts := badger.DefaultOptions(path).
		WithLogger(newBadgerLogger(logger)).
		WithNumVersionsToKeep(1)
	if isTemp {
		opts = opts.WithSyncWrites(false)
	}
	db, err := badger.Open(opts)
	if err != nil {
		if isTemp {
			os.RemoveAll(path)
		}
		return nil, fmt.Errorf("open badger at %s: %w", path, err)
	}
	return newStore(db, path, isTemp), nil
}

// OpenInMemory opens a database that lives only in memory.
func OpenInMemory(logger *zap.Logger) (*Store, error) {
	opts := badger.DefaultOptions("").
		WithInMemory(true).
		WithLogger(newBadgerLogger(logger))
	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("open in-memory badger: %w", err)
	}
	return newStore(db, "", false), nil
}

func newStore(db *badger.DB, path string, isTemp bool) *Store {
	return &Store{
		db:       db,
		dbPath:   path,
		isTempDB: isTemp,
		Posts:    NewBadgerPostRepository(db),
		Comments: NewBadgerCommentRepository(db),
	}
}

// Close closes the database. Temporary databases are deleted.
func (s *Store) Close() error {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	if s.closed {
		return nil
	}
	s.closed = true
	if err := s.db.Close(); err != nil {
		return err
	}

	if s.isTempDB {
		if err := os.RemoveAll(s.dbPath); err != nil {
			return fmt.Errorf("failed to cleanup temp database: %w", err)
		}
	}
	return nil
}

// badgerLogger routes Badger's internal logging through zap.
type badgerLogger struct {
	s *zap.SugaredLogger
}

func newBadgerLogger(logger *zap.Logger) badger.Logger {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &badgerLogger{s: logger.Named("badger").Sugar()}
}

func (l *badgerLogger) Errorf(f string, v ...interface{})   { l.s.Errorf(f, v...) }
func (l *badgerLogger) Warningf(f string, v ...interface{}) { l.s.Warnf(f, v...) }
func (l *badgerLogger) Infof(f string, v ...interface{})    { l.s.Debugf(f, v...) }
func (l *badgerLogger) Debugf(f string, v ...interface{})   { l.s.Debugf(f, v...) }
