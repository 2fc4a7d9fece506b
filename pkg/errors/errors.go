package errors

import "errors"

// ErrSnapshotNotFound 指定 key 下不存在课程快照
var ErrSnapshotNotFound = errors.New("课程快照不存在")
