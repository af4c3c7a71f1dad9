package media

import (
	"context" // Context for outbound calls
	"errors"  // Sentinel error
	"fmt"     // Error formatting
	"io"      // Upload body
	"sync"    // Lazy one-time client init

	"github.com/cloudinary/cloudinary-go/v2"              // Cloudinary SDK
	"github.com/cloudinary/cloudinary-go/v2/api/uploader" // Upload API
)

// ProductFolder is where product images land on the media host
const ProductFolder = "catalog/products"

// ErrNotConfigured is returned when the Cloudinary credentials are absent
var ErrNotConfigured = errors.New("media: cloudinary credentials not configured")

// UploadResult carries the canonical URL and the deletion handle of a blob
type UploadResult struct {
	URL      string // Canonical (secure) URL
	PublicID string // Handle used to delete the blob later
}

// Service is the slice of the media host the handlers depend on
type Service interface {
	Upload(ctx context.Context, r io.Reader, folder string) (*UploadResult, error)
	Destroy(ctx context.Context, publicID string) error
}

// Cloudinary implements Service against the Cloudinary API. The underlying
// client is built once on first use and reused for the process lifetime.
type Cloudinary struct {
	cloudName string
	apiKey    string
	apiSecret string

	once    sync.Once
	client  *cloudinary.Cloudinary
	initErr error
}

// NewCloudinary returns a delegate for the given credentials; empty
// credentials yield a delegate whose calls fail with ErrNotConfigured
func NewCloudinary(cloudName, apiKey, apiSecret string) *Cloudinary {
	return &Cloudinary{
		cloudName: cloudName,
		apiKey:    apiKey,
		apiSecret: apiSecret,
	}
}

// init lazily builds the shared client
func (m *Cloudinary) init() error {
	if m.cloudName == "" || m.apiKey == "" || m.apiSecret == "" {
		return ErrNotConfigured // Deployment without media credentials
	}
	m.once.Do(func() {
		m.client, m.initErr = cloudinary.NewFromParams(m.cloudName, m.apiKey, m.apiSecret)
	})
	return m.initErr
}

// Upload streams bytes to the media host and returns the canonical URL
// plus the deletion handle. Automatic quality/format transformation is
// applied on delivery.
func (m *Cloudinary) Upload(ctx context.Context, r io.Reader, folder string) (*UploadResult, error) {
	if err := m.init(); err != nil {
		return nil, err
	}
	resp, err := m.client.Upload.Upload(ctx, r, uploader.UploadParams{
		Folder:         folder,          // Target folder on the host
		ResourceType:   "image",         // Images only
		Transformation: "q_auto,f_auto", // Automatic quality and format
	})
	if err != nil {
		return nil, err
	}
	return &UploadResult{URL: resp.SecureURL, PublicID: resp.PublicID}, nil
}

// Destroy removes a blob by its handle. A missing blob is not an error.
func (m *Cloudinary) Destroy(ctx context.Context, publicID string) error {
	if err := m.init(); err != nil {
		return err
	}
	resp, err := m.client.Upload.Destroy(ctx, uploader.DestroyParams{PublicID: publicID})
	if err != nil {
		return err
	}
	if resp.Result != "ok" && resp.Result != "not found" {
		return fmt.Errorf("media: destroy %s: %s", publicID, resp.Result)
	}
	return nil
}
