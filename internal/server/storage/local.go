package storage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"mime"
	"os"
	"path/filepath"

	"github.com/dmitrijs2005/lifelog/internal/common"
	"github.com/dmitrijs2005/lifelog/internal/filex"
)

// LocalStore keeps objects as files in one directory.
type LocalStore struct {
	root string
}

func NewLocalStore(dir string) (*LocalStore, error) {
	root, err := filex.EnsureDir(dir)
	if err != nil {
		return nil, err
	}
	return &LocalStore{root: root}, nil
}

// Put writes to a temp file first so readers never see a partial object.
func (s *LocalStore) Put(ctx context.Context, key string, r io.Reader, size int64, contentType string) error {
	path, err := filex.SafeJoin(s.root, key)
	if err != nil {
		return err
	}

	tmp, err := os.CreateTemp(s.root, ".upload-*")
	if err != nil {
		return fmt.Errorf("create temp: %w", err)
	}
	defer os.Remove(tmp.Name())

	n, err := io.Copy(tmp, r)
	if cerr := tmp.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		return fmt.Errorf("write %s: %w", key, err)
	}
	if size >= 0 && n != size {
		return fmt.Errorf("write %s: got %d bytes, want %d", key, n, size)
	}

	return os.Rename(tmp.Name(), path)
}

func (s *LocalStore) Get(ctx context.Context, key string) (io.ReadCloser, *ObjectInfo, error) {
	path, err := filex.SafeJoin(s.root, key)
	if err != nil {
		return nil, nil, common.ErrorNotFound
	}

	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil, common.ErrorNotFound
		}
		return nil, nil, err
	}

	st, err := f.Stat()
	if err != nil {
		f.Close()
		return nil, nil, err
	}

	ct := mime.TypeByExtension(filepath.Ext(key))
	if ct == "" {
		ct = "application/octet-stream"
	}
	return f, &ObjectInfo{ContentType: ct, Size: st.Size()}, nil
}

func (s *LocalStore) Delete(ctx context.Context, key string) error {
	path, err := filex.SafeJoin(s.root, key)
	if err != nil {
		return err
	}
	if err := os.Remove(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return err
	}
	return nil
}
