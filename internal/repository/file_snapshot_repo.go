package repository

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"regexp"

	pkgerrors "course-planner/pkg/errors"
)

var unsafeKeyChars = regexp.MustCompile(`[^A-Za-z0-9._-]`)

type fileSnapshotRepo struct {
	dir string
}

// NewFileSnapshotRepo 创建基于本地文件的 SnapshotRepository
// 每个 key 存为 dir/<key>.json，写入时先写临时文件再 rename
func NewFileSnapshotRepo(dir string) (SnapshotRepository, error) {
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return nil, fmt.Errorf("创建数据目录失败: %w", err)
	}
	return &fileSnapshotRepo{dir: dir}, nil
}

func (r *fileSnapshotRepo) path(key string) string {
	return filepath.Join(r.dir, unsafeKeyChars.ReplaceAllString(key, "_")+".json")
}

func (r *fileSnapshotRepo) Get(_ context.Context, key string) ([]byte, error) {
	data, err := os.ReadFile(r.path(key))
	if errors.Is(err, fs.ErrNotExist) {
		return nil, pkgerrors.ErrSnapshotNotFound
	}
	return data, err
}

func (r *fileSnapshotRepo) Put(_ context.Context, key string, payload []byte) error {
	tmp, err := os.CreateTemp(r.dir, ".snapshot-*")
	if err != nil {
		return err
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(payload); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	return os.Rename(tmp.Name(), r.path(key))
}

func (r *fileSnapshotRepo) Delete(_ context.Context, key string) error {
	err := os.Remove(r.path(key))
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	return err
}
