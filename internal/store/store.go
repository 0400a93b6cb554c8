package store

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/gofrs/flock"
	"github.com/rogersnm/taskcli/internal/model"
	"github.com/rs/zerolog/log"
)

// DefaultFile is the store file name used when none is configured.
const DefaultFile = "task_data.json"

const defaultLockRetry = 50 * time.Millisecond

// FileStore implements Store over a single JSON file.
type FileStore struct {
	Path string

	now       func() time.Time
	locking   bool
	lockRetry time.Duration
}

// compile-time check
var _ Store = (*FileStore)(nil)

type Option func(*FileStore)

// WithClock replaces time.Now for timestamping mutations.
func WithClock(now func() time.Time) Option {
	return func(s *FileStore) { s.now = now }
}

// WithLocking toggles the advisory lock taken around each transaction.
func WithLocking(enabled bool) Option {
	return func(s *FileStore) { s.locking = enabled }
}

// WithLockRetry sets how often a contended lock is retried until ctx is done.
func WithLockRetry(d time.Duration) Option {
	return func(s *FileStore) {
		if d > 0 {
			s.lockRetry = d
		}
	}
}

func New(path string, opts ...Option) *FileStore {
	s := &FileStore{
		Path:      path,
		now:       time.Now,
		locking:   true,
		lockRetry: defaultLockRetry,
	}
	for _, o := range opts {
		o(s)
	}
	return s
}

func (s *FileStore) LockPath() string {
	return s.Path + ".lock"
}

// Load returns every task in file order. A missing file is an empty store.
func (s *FileStore) Load(ctx context.Context) ([]model.Task, error) {
	unlock, err := s.lock(ctx, false)
	if err != nil {
		return nil, err
	}
	defer unlock()
	return s.read()
}

// Save replaces the file contents with tasks.
func (s *FileStore) Save(ctx context.Context, tasks []model.Task) error {
	unlock, err := s.lock(ctx, true)
	if err != nil {
		return err
	}
	defer unlock()
	return s.write(tasks)
}

// transact runs one load -> mutate -> save cycle under the exclusive lock.
// If fn returns an error nothing is written.
func (s *FileStore) transact(ctx context.Context, fn func([]model.Task) ([]model.Task, error)) error {
	unlock, err := s.lock(ctx, true)
	if err != nil {
		return err
	}
	defer unlock()

	tasks, err := s.read()
	if err != nil {
		return err
	}
	next, err := fn(tasks)
	if err != nil {
		return err
	}
	return s.write(next)
}

// view runs fn over the current contents under a shared lock.
func (s *FileStore) view(ctx context.Context, fn func([]model.Task) error) error {
	tasks, err := s.Load(ctx)
	if err != nil {
		return err
	}
	return fn(tasks)
}

func (s *FileStore) read() ([]model.Task, error) {
	data, err := os.ReadFile(s.Path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			log.Debug().Str("path", s.Path).Msg("store file absent, starting empty")
			return []model.Task{}, nil
		}
		return nil, ioErr("reading", s.Path, err)
	}

	if err := validateDocument(data); err != nil {
		return nil, corrupt(s.Path, err)
	}
	tasks := []model.Task{}
	if err := json.Unmarshal(data, &tasks); err != nil {
		return nil, corrupt(s.Path, err)
	}
	log.Debug().Str("path", s.Path).Int("tasks", len(tasks)).Msg("loaded store")
	return tasks, nil
}

// write encodes tasks to a temp file beside the target and renames it into place.
func (s *FileStore) write(tasks []model.Task) error {
	if tasks == nil {
		tasks = []model.Task{}
	}
	data, err := encode(tasks)
	if err != nil {
		return fmt.Errorf("encoding tasks: %w", err)
	}

	dir := filepath.Dir(s.Path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return ioErr("creating directory", dir, err)
	}
	tmp, err := os.CreateTemp(dir, "."+filepath.Base(s.Path)+"-*.tmp")
	if err != nil {
		return ioErr("creating temp file in", dir, err)
	}
	tmpPath := tmp.Name()
	defer func() { _ = os.Remove(tmpPath) }()

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		return ioErr("writing", tmpPath, err)
	}
	if err := tmp.Sync(); err != nil {
		_ = tmp.Close()
		return ioErr("syncing", tmpPath, err)
	}
	if err := tmp.Close(); err != nil {
		return ioErr("closing", tmpPath, err)
	}
	if err := os.Chmod(tmpPath, 0644); err != nil {
		return ioErr("chmod", tmpPath, err)
	}
	if err := os.Rename(tmpPath, s.Path); err != nil {
		return ioErr("replacing", s.Path, err)
	}
	log.Debug().Str("path", s.Path).Int("tasks", len(tasks)).Msg("saved store")
	return nil
}

func encode(tasks []model.Task) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "    ")
	if err := enc.Encode(tasks); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// lock takes the advisory lock beside the store file. Shared locks are
// best-effort: if the lock file cannot be created the read proceeds unlocked.
func (s *FileStore) lock(ctx context.Context, exclusive bool) (func(), error) {
	noop := func() {}
	if !s.locking {
		return noop, nil
	}

	path := s.LockPath()
	if exclusive {
		if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
			return noop, ioErr("creating directory", filepath.Dir(path), err)
		}
	} else if _, err := os.Stat(filepath.Dir(path)); err != nil {
		return noop, nil
	}

	fl := flock.New(path)
	var (
		ok  bool
		err error
	)
	if exclusive {
		ok, err = fl.TryLockContext(ctx, s.lockRetry)
	} else {
		ok, err = fl.TryRLockContext(ctx, s.lockRetry)
	}
	if err != nil && !exclusive && errors.Is(err, fs.ErrPermission) {
		log.Debug().Err(err).Str("lock", path).Msg("read lock unavailable, continuing unlocked")
		return noop, nil
	}
	if err != nil {
		return noop, ioErr("locking", path, err)
	}
	if !ok {
		return noop, ioErr("locking", path, fmt.Errorf("lock not acquired"))
	}
	return func() {
		if err := fl.Unlock(); err != nil {
			log.Warn().Err(err).Str("lock", path).Msg("releasing store lock")
		}
	}, nil
}
