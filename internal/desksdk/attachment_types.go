package desksdk

import (
	"time"
)

// AttachmentRecord is the server-owned metadata for one stored object
// (image or document) belonging to a parent entity.
type AttachmentRecord struct {
	ID           string    `json:"id"`
	ParentID     string    `json:"parent_id"`
	Kind         string    `json:"kind"` // "image" or "document"
	ContentType  string    `json:"content_type"`
	S3Key        string    `json:"s3_key"`
	AssetURL     string    `json:"asset_url"`
	OriginalName string    `json:"original_name"`
	Size         int64     `json:"size"`
	IsCover      bool      `json:"is_cover,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
}

// ===================================================================================================

// UploadURLParams requests a one-time presigned upload target
type UploadURLParams struct {
	FileExt     string `json:"fileExt"`
	ContentType string `json:"contentType"`
}

// UploadURLResponse carries the presigned target and the key the object will
// be registered under
type UploadURLResponse struct {
	UploadURL string `json:"uploadUrl"`
	S3Key     string `json:"s3_key"`
	AssetURL  string `json:"asset_url"`
}

// ===================================================================================================

// RegisterParams registers an uploaded object as an attachment of its parent.
// IsCover is always submitted false; cover/avatar designation goes through the
// dedicated PATCH endpoint, which is the only place exclusivity is enforced.
type RegisterParams struct {
	S3Key        string `json:"s3_key"`
	ContentType  string `json:"content_type"`
	Kind         string `json:"kind"`
	OriginalName string `json:"original_name"`
	Size         int64  `json:"size"`
	IsCover      bool   `json:"is_cover"`
}

// ===================================================================================================

// AttachmentListResponse is the envelope for attachment listings
type AttachmentListResponse struct {
	Items []*AttachmentRecord `json:"items"`
}
