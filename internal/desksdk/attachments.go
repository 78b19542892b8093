package desksdk

import (
	"context"
	"fmt"

	"github.com/imroc/req/v3"
)

// Collection is one attachment namespace under a parent entity.
type Collection string

const (
	CollectionMedia     Collection = "media"
	CollectionDocuments Collection = "documents"
)

// AttachmentAPI is the attachment surface shared by companies, projects and
// profiles. One instance is bound to a single {entity path, collection} pair
// so the same code serves every screen that used to duplicate this protocol.
type AttachmentAPI struct {
	client      *req.Client
	entityPath  string
	collection  Collection
	designation string // URL verb for the designation PATCH ("cover", "avatar"), empty when unsupported
}

func newAttachmentAPI(client *req.Client, entityPath string, collection Collection, designation string) *AttachmentAPI {
	return &AttachmentAPI{
		client:      client,
		entityPath:  entityPath,
		collection:  collection,
		designation: designation,
	}
}

// Kind returns the attachment kind registered for objects in this collection.
func (a *AttachmentAPI) Kind() string {
	if a.collection == CollectionMedia {
		return "image"
	}
	return "document"
}

func (a *AttachmentAPI) collectionPath(parentID string) string {
	return fmt.Sprintf("/api/v1/%s/%s/%s", a.entityPath, parentID, a.collection)
}

// UploadURL requests a one-time presigned upload target for a new object
func (a *AttachmentAPI) UploadURL(ctx context.Context, parentID string, params *UploadURLParams) (target *UploadURLResponse, err error) {
	resp, err := a.client.R().
		SetContext(ctx).
		SetBody(params).
		SetSuccessResult(&target).
		Post(a.collectionPath(parentID) + "/upload-url")

	if err := handleAPIError(resp, err, "attachment upload url"); err != nil {
		return nil, err
	}

	return target, nil
}

// Register records an uploaded object's metadata and returns the created record
func (a *AttachmentAPI) Register(ctx context.Context, parentID string, params *RegisterParams) (record *AttachmentRecord, err error) {
	resp, err := a.client.R().
		SetContext(ctx).
		SetBody(params).
		SetSuccessResult(&record).
		SetRetryCount(0). // registration is not idempotent
		Post(a.collectionPath(parentID))

	if err := handleAPIError(resp, err, "attachment register"); err != nil {
		return nil, err
	}

	return record, nil
}

// SetCover marks a record as the parent's sole cover/avatar. The server clears
// any previous designee; the client never infers exclusivity beyond its own
// queue bookkeeping.
func (a *AttachmentAPI) SetCover(ctx context.Context, parentID string, recordID string) error {
	if a.designation == "" {
		return ErrNoDesignation
	}

	resp, err := a.client.R().
		SetContext(ctx).
		Patch(fmt.Sprintf("%s/%s/%s", a.collectionPath(parentID), recordID, a.designation))

	return handleAPIError(resp, err, "attachment set "+a.designation)
}

// List fetches the authoritative attachment list for a parent
func (a *AttachmentAPI) List(ctx context.Context, parentID string) ([]*AttachmentRecord, error) {
	var listResp AttachmentListResponse

	resp, err := a.client.R().
		SetContext(ctx).
		SetSuccessResult(&listResp).
		Get(a.collectionPath(parentID))

	if err := handleAPIError(resp, err, "attachment list"); err != nil {
		return nil, err
	}

	return listResp.Items, nil
}

// Delete removes a persisted attachment
func (a *AttachmentAPI) Delete(ctx context.Context, parentID string, recordID string) error {
	resp, err := a.client.R().
		SetContext(ctx).
		Delete(fmt.Sprintf("%s/%s", a.collectionPath(parentID), recordID))

	return handleAPIError(resp, err, "attachment delete")
}
