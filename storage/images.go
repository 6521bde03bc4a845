package storage

import (
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"
	"time"
)

var (
	ErrTooLarge   = errors.New("storage: image exceeds the size limit")
	ErrNotAllowed = errors.New("storage: file type not allowed")
)

// DefaultMaxSize caps product image uploads at 4 MB.
const DefaultMaxSize = 4 << 20

var allowedExt = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
}

// ImageStore writes product images to a local directory served by the static
// /uploads route and hands back the public reference path. Callers treat the
// returned string as opaque.
type ImageStore struct {
	Dir        string
	PublicPath string
	MaxSize    int64
}

func NewImageStore(dir string) *ImageStore {
	return &ImageStore{
		Dir:        dir,
		PublicPath: "/uploads/products",
		MaxSize:    DefaultMaxSize,
	}
}

// Save stores an uploaded image and returns its reference path. The filename
// gets a nanosecond prefix so repeated uploads of the same file never clash.
func (s *ImageStore) Save(file *multipart.FileHeader) (string, error) {
	if file.Size > s.MaxSize {
		return "", ErrTooLarge
	}
	ext := strings.ToLower(filepath.Ext(file.Filename))
	if !allowedExt[ext] {
		return "", ErrNotAllowed
	}

	if err := os.MkdirAll(s.Dir, 0o755); err != nil {
		return "", err
	}

	base := strings.TrimSuffix(filepath.Base(file.Filename), filepath.Ext(file.Filename))
	base = strings.ReplaceAll(base, " ", "_")
	filename := fmt.Sprintf("%d_%s%s", time.Now().UnixNano(), base, ext)

	src, err := file.Open()
	if err != nil {
		return "", err
	}
	defer src.Close()

	dst, err := os.Create(filepath.Join(s.Dir, filename))
	if err != nil {
		return "", err
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		return "", err
	}
	return s.PublicPath + "/" + filename, nil
}
