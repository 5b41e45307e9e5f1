package profile

import (
	"context"
	"fmt"
	"io"

	"github.com/aivault/profile-client/pkg/client"
)

// MediaUpload describes one asset upload. The upload path exchanges a
// multipart body and is excluded from the cache-aside protocol entirely.
type MediaUpload struct {
	BusinessID string `validate:"required,uuid4"`
	MediaType  string `validate:"required,oneof=image video document"`
	Filename   string `validate:"required"`
	Content    io.Reader
}

// UploadMedia uploads a file and records it as a media asset.
func (a *API) UploadMedia(ctx context.Context, in MediaUpload) (*MediaAsset, error) {
	if err := a.validate.Struct(in); err != nil {
		return nil, fmt.Errorf("validate media upload: %w", err)
	}

	form := client.UploadForm{
		BusinessID: in.BusinessID,
		MediaType:  in.MediaType,
		Filename:   in.Filename,
		Content:    in.Content,
	}

	var out MediaAsset
	if err := a.client.Upload(ctx, client.KindMedia, "/media/upload", form, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Media fetches a single media asset record by ID.
func (a *API) Media(ctx context.Context, mediaID string) (*MediaAsset, error) {
	var out MediaAsset
	if _, err := a.client.Get(ctx, client.KindMedia, "/media/"+mediaID, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// MediaList lists a business's media assets, most recent first.
func (a *API) MediaList(ctx context.Context, businessID string, limit, offset int) ([]MediaAsset, error) {
	var out []MediaAsset
	path := listPath("/media/", businessID, limit, offset)
	if _, err := a.client.Get(ctx, client.KindMedia, path, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// DeleteMedia removes a media asset record.
func (a *API) DeleteMedia(ctx context.Context, mediaID string) error {
	return a.client.Delete(ctx, client.KindMedia, "/media/"+mediaID)
}

// HydrateMediaList synchronously returns the cached asset list for the
// same pagination window, if a previous fetch saw it.
func (a *API) HydrateMediaList(businessID string, limit, offset int) ([]MediaAsset, bool) {
	var out []MediaAsset
	if !a.client.Hydrate(listPath("/media/", businessID, limit, offset), &out) {
		return nil, false
	}
	return out, true
}
