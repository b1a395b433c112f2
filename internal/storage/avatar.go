package storage

import (
	"bytes"
	"context"
	"fmt"
	"image"
	"image/jpeg"
	"image/png"
	"net/http"
	"strings"

	"alcyxob/training-client/internal/domain"

	"github.com/chai2010/webp"
	"github.com/disintegration/imaging"
)

// AvatarLoader fetches coach photos and turns them into square PNG thumbnails.
type AvatarLoader struct {
	source ImageSource
	size   int
}

func NewAvatarLoader(source ImageSource, size int) *AvatarLoader {
	if size <= 0 {
		size = DefaultAvatarSize
	}
	return &AvatarLoader{source: source, size: size}
}

// LoadPhoto fetches and decodes the photo for descriptor.
func (l *AvatarLoader) LoadPhoto(ctx context.Context, coachID int64, descriptor string) (*domain.ProfilePhoto, error) {
	data, contentType, err := l.source.FetchImage(ctx, coachID, descriptor)
	if err != nil {
		return nil, err
	}
	img, err := decodeImage(data, contentType)
	if err != nil {
		return nil, fmt.Errorf("decode photo of coach %d: %w", coachID, err)
	}

	thumb := imaging.Fill(img, l.size, l.size, imaging.Center, imaging.Lanczos)
	buf := new(bytes.Buffer)
	if err := imaging.Encode(buf, thumb, imaging.PNG); err != nil {
		return nil, fmt.Errorf("encode photo of coach %d: %w", coachID, err)
	}
	return &domain.ProfilePhoto{
		Descriptor:  descriptor,
		ContentType: "image/png",
		Data:        buf.Bytes(),
	}, nil
}

// decodeImage sniffs the content and decodes jpeg, png or webp. The declared
// content type is only used when sniffing is inconclusive.
func decodeImage(all []byte, declared string) (image.Image, error) {
	if len(all) == 0 {
		return nil, fmt.Errorf("%w: empty body", ErrUnsupportedImage)
	}
	head := all
	if len(head) > 512 {
		head = head[:512]
	}
	ct := http.DetectContentType(head)
	if ct == "application/octet-stream" {
		ct = declared
	}

	switch {
	case strings.Contains(ct, "jpeg"):
		return jpeg.Decode(bytes.NewReader(all))
	case strings.Contains(ct, "png"):
		return png.Decode(bytes.NewReader(all))
	case strings.Contains(ct, "webp"):
		return webp.Decode(bytes.NewReader(all))
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedImage, ct)
	}
}
