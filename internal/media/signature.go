package media

import (
	"crypto/sha1"  // Cloudinary signs with SHA-1
	"encoding/hex" // Hex-encoded digest
	"strconv"      // Timestamp formatting
	"time"         // Unix timestamp
)

// SignaturePayload is everything a client needs for a direct upload
type SignaturePayload struct {
	Timestamp int64  `json:"timestamp"` // Unix seconds the signature was minted at
	Folder    string `json:"folder"`    // Folder the client must upload into
	Signature string `json:"signature"` // Hex SHA-1 over the canonical params
	CloudName string `json:"cloudName"` // Target cloud
	APIKey    string `json:"apiKey"`    // Public API key
}

// SignUpload mints a direct-upload signature for the given folder.
// The canonical string is "folder=<folder>&timestamp=<unixSeconds>" and the
// signature is SHA-1(canonical + apiSecret), hex-encoded, which is the exact
// scheme the Cloudinary upload endpoint verifies against.
func SignUpload(folder, cloudName, apiKey, apiSecret string) *SignaturePayload {
	return signUploadAt(folder, cloudName, apiKey, apiSecret, time.Now().Unix())
}

// signUploadAt is the deterministic core, split out for testing
func signUploadAt(folder, cloudName, apiKey, apiSecret string, ts int64) *SignaturePayload {
	canonical := "folder=" + folder + "&timestamp=" + strconv.FormatInt(ts, 10)
	sum := sha1.Sum([]byte(canonical + apiSecret)) // One-way hash over params + secret
	return &SignaturePayload{
		Timestamp: ts,
		Folder:    folder,
		Signature: hex.EncodeToString(sum[:]),
		CloudName: cloudName,
		APIKey:    apiKey,
	}
}
