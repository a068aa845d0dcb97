// Package images turns uploaded logo and signature files into inline
// data URLs so the aggregate carries the image itself rather than an
// external file reference.
package images

import (
	"encoding/base64"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/gabriel-vasile/mimetype"
)

// MaxUploadSize bounds a single logo or signature upload.
const MaxUploadSize = 5 << 20

var (
	// ErrNotImage means the upload is not a recognizable image format.
	ErrNotImage = errors.New("upload is not an image")
	// ErrTooLarge means the upload exceeds MaxUploadSize.
	ErrTooLarge = errors.New("upload exceeds the size limit")
)

// DataURL reads an uploaded image and returns it encoded as a
// data:<mime>;base64 URL. A failed read or a non-image payload returns an
// error and nothing else: the caller's aggregate must stay untouched.
func DataURL(r io.Reader) (string, error) {
	data, err := io.ReadAll(io.LimitReader(r, MaxUploadSize+1))
	if err != nil {
		return "", fmt.Errorf("read upload: %w", err)
	}
	if len(data) > MaxUploadSize {
		return "", ErrTooLarge
	}
	mime := mimetype.Detect(data)
	if !strings.HasPrefix(mime.String(), "image/") {
		return "", ErrNotImage
	}
	return "data:" + mime.String() + ";base64," + base64.StdEncoding.EncodeToString(data), nil
}
