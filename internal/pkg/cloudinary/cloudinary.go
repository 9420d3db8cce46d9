package cloudinary

import (
	"context"
	"errors"
	"fmt"
	"mime/multipart"
	"net/url"
	"path/filepath"
	"strings"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
)

// Service handles avatar storage on Cloudinary.
type Service struct {
	cld          *cloudinary.Cloudinary
	uploadFolder string
}

// UploadResult contains the result of a successful upload. URL is the
// previewable secure URL stored on the user document.
type UploadResult struct {
	URL      string
	PublicID string
	Width    int
	Height   int
	FileSize int64
	Format   string
}

var (
	AllowedImageTypes = []string{".jpg", ".jpeg", ".png", ".gif", ".webp"}

	MaxImageSize = int64(10 * 1024 * 1024) // 10MB
)

// hostMarker identifies files stored on this backend; only avatars whose
// URL carries it are candidates for stale-file cleanup.
const hostMarker = "res.cloudinary.com"

// NewService creates a new Cloudinary service instance.
func NewService(cloudName, apiKey, apiSecret, uploadFolder string) (*Service, error) {
	if cloudName == "" || apiKey == "" || apiSecret == "" {
		return nil, errors.New("cloudinary credentials are required")
	}

	cloudinaryURL := fmt.Sprintf("cloudinary://%s:%s@%s", apiKey, apiSecret, cloudName)

	cld, err := cloudinary.NewFromURL(cloudinaryURL)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize cloudinary client: %w", err)
	}

	if uploadFolder == "" {
		uploadFolder = "movira"
	}

	return &Service{
		cld:          cld,
		uploadFolder: uploadFolder,
	}, nil
}

// UploadImage uploads an avatar image and returns its preview URL.
func (s *Service) UploadImage(ctx context.Context, file multipart.File, filename string) (*UploadResult, error) {
	uploadParams := uploader.UploadParams{
		Folder:       s.uploadFolder + "/avatars",
		ResourceType: "image",
	}

	result, err := s.cld.Upload.Upload(ctx, file, uploadParams)
	if err != nil {
		return nil, fmt.Errorf("failed to upload image: %w", err)
	}

	return &UploadResult{
		URL:      result.SecureURL,
		PublicID: result.PublicID,
		Width:    result.Width,
		Height:   result.Height,
		FileSize: int64(result.Bytes),
		Format:   result.Format,
	}, nil
}

// Delete removes a stored file by its public id.
func (s *Service) Delete(ctx context.Context, publicID string) error {
	if publicID == "" {
		return errors.New("publicID is required")
	}

	destroyParams := uploader.DestroyParams{
		PublicID:     publicID,
		ResourceType: "image",
	}

	_, err := s.cld.Upload.Destroy(ctx, destroyParams)
	if err != nil {
		return fmt.Errorf("failed to delete asset: %w", err)
	}

	return nil
}

// ValidateImageFile validates an avatar upload.
func ValidateImageFile(header *multipart.FileHeader) error {
	if header.Size > MaxImageSize {
		return fmt.Errorf("image file size exceeds maximum allowed size of %d MB", MaxImageSize/(1024*1024))
	}

	ext := strings.ToLower(filepath.Ext(header.Filename))
	if !isAllowedExtension(ext, AllowedImageTypes) {
		return fmt.Errorf("invalid image file type: %s. Allowed types: %s", ext, strings.Join(AllowedImageTypes, ", "))
	}

	return nil
}

// IsHostedURL reports whether a URL points at a file stored on this
// backend, i.e. one the app itself uploaded earlier.
func IsHostedURL(fileURL string) bool {
	return strings.Contains(fileURL, hostMarker)
}

// PublicIDFromURL extracts the public id from a Cloudinary delivery URL,
// e.g. .../image/upload/v12345/movira/avatars/abc123.jpg ->
// movira/avatars/abc123. Returns empty when the URL does not look like a
// delivery URL.
func PublicIDFromURL(fileURL string) string {
	u, err := url.Parse(fileURL)
	if err != nil {
		return ""
	}

	parts := strings.Split(strings.Trim(u.Path, "/"), "/")
	uploadIdx := -1
	for i, p := range parts {
		if p == "upload" {
			uploadIdx = i
			break
		}
	}
	if uploadIdx == -1 || uploadIdx == len(parts)-1 {
		return ""
	}

	rest := parts[uploadIdx+1:]
	// Skip the version segment when present.
	if len(rest) > 1 && strings.HasPrefix(rest[0], "v") && isDigits(rest[0][1:]) {
		rest = rest[1:]
	}

	publicID := strings.Join(rest, "/")
	if ext := filepath.Ext(publicID); ext != "" {
		publicID = strings.TrimSuffix(publicID, ext)
	}
	return publicID
}

func isAllowedExtension(ext string, allowedTypes []string) bool {
	for _, allowed := range allowedTypes {
		if ext == allowed {
			return true
		}
	}
	return false
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
