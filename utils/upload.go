package utils

import (
	"fmt"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
)

const MaxImageSize = 5 * 1024 * 1024 // 5MB

// SaveImage stores one uploaded image under dir with a timestamp-prefixed key
// and returns that key. Rejects non-image content types and files over 5MB.
func SaveImage(c *gin.Context, fh *multipart.FileHeader, dir string) (string, error) {
	if fh.Size > MaxImageSize {
		return "", fmt.Errorf("image exceeds 5MB limit")
	}
	ct := fh.Header.Get("Content-Type")
	if !strings.HasPrefix(ct, "image/") {
		return "", fmt.Errorf("only image files are allowed")
	}

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", err
	}

	key := fmt.Sprintf("%d-%s", time.Now().UnixMilli(), sanitizeFileName(fh.Filename))
	if err := c.SaveUploadedFile(fh, filepath.Join(dir, key)); err != nil {
		return "", err
	}
	return key, nil
}

// RemoveImage deletes a stored image by its public URL. Best effort; callers
// log and ignore the error.
func RemoveImage(imageURL, dir string) error {
	key := imageURL[strings.LastIndex(imageURL, "/")+1:]
	if key == "" {
		return nil
	}
	return os.Remove(filepath.Join(dir, key))
}

func sanitizeFileName(name string) string {
	name = filepath.Base(name)
	name = strings.ReplaceAll(name, " ", "_")
	var b strings.Builder
	for _, r := range name {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9',
			r == '.', r == '-', r == '_':
			b.WriteRune(r)
		}
	}
	if b.Len() == 0 {
		return "image"
	}
	return b.String()
}
