package cloudinaryx

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
	"github.com/google/uuid"
)

// AllowedFormats mirrors the gateway-side encoding allow-list; the media
// host enforces it a second time.
var AllowedFormats = api.CldAPIArray{"jpeg", "png", "jpg", "webp"}

type Uploader struct {
	cld    *cloudinary.Cloudinary
	folder string
}

func New(cloudName, apiKey, apiSecret, folder string) (*Uploader, error) {
	cld, err := cloudinary.NewFromParams(cloudName, apiKey, apiSecret)
	if err != nil {
		return nil, fmt.Errorf("cloudinary config: %w", err)
	}
	return &Uploader{cld: cld, folder: folder}, nil
}

// Upload stores one image under the configured folder and returns its
// public URL.
func (u *Uploader) Upload(ctx context.Context, r io.Reader) (string, error) {
	res, err := u.cld.Upload.Upload(ctx, r, uploader.UploadParams{
		Folder:         u.folder,
		PublicID:       uuid.NewString(),
		AllowedFormats: AllowedFormats,
	})
	if err != nil {
		return "", err
	}
	// The SDK reports host-side rejections in the body, not as err.
	if res.Error.Message != "" {
		return "", errors.New(res.Error.Message)
	}
	return res.SecureURL, nil
}
