// Package upload wraps the third-party asset host behind a narrow
// interface: a file goes in, a secure URL comes out.
package upload

import (
	"context"
	"io"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
)

type Uploader interface {
	Upload(ctx context.Context, file io.Reader, folder string) (string, error)
}

type CloudinaryUploader struct {
	cld *cloudinary.Cloudinary
}

// NewCloudinary builds an uploader from a cloudinary:// URL.
func NewCloudinary(url string) (*CloudinaryUploader, error) {
	cld, err := cloudinary.NewFromURL(url)
	if err != nil {
		return nil, err
	}
	return &CloudinaryUploader{cld: cld}, nil
}

func (u *CloudinaryUploader) Upload(ctx context.Context, file io.Reader, folder string) (string, error) {
	resp, err := u.cld.Upload.Upload(ctx, file, uploader.UploadParams{Folder: folder})
	if err != nil {
		return "", err
	}
	return resp.SecureURL, nil
}
