package storage

import (
	"context"
	"errors"
)

// Default size (pixels, square) of decoded coach avatars
const DefaultAvatarSize = 256

var (
	ErrObjectNotFound   = errors.New("object not found in storage")
	ErrUnsupportedImage = errors.New("unsupported image format")
)

// ImageSource fetches the raw bytes of a coach photo by its descriptor.
type ImageSource interface {
	FetchImage(ctx context.Context, coachID int64, descriptor string) (data []byte, contentType string, err error)
}

// ImageSourceFunc adapts a plain function, such as the REST client's FetchPhoto, to ImageSource.
type ImageSourceFunc func(ctx context.Context, coachID int64, descriptor string) ([]byte, string, error)

func (f ImageSourceFunc) FetchImage(ctx context.Context, coachID int64, descriptor string) ([]byte, string, error) {
	return f(ctx, coachID, descriptor)
}
