package fixit

import (
	"context"
	"io"
	"net/url"
	"strconv"

	"github.com/google/uuid"
)

// MediaService wraps the /media resource. This endpoint generation returns
// the {success, data, meta} envelope; uploads go under the files field.
type MediaService service

const mediaShape = ShapeSuccessData

// MediaListOptions filters media by its owning context.
type MediaListOptions struct {
	ContextType string
	ContextID   uuid.UUID
	Page        int
	PerPage     int
}

func (o *MediaListOptions) values() url.Values {
	q := url.Values{}
	if o == nil {
		return q
	}
	if o.ContextType != "" {
		q.Set("contextType", NormalizeEnum(o.ContextType))
	}
	if o.ContextID != uuid.Nil {
		q.Set("contextId", o.ContextID.String())
	}
	if o.Page > 0 {
		q.Set("page", strconv.Itoa(o.Page))
	}
	if o.PerPage > 0 {
		q.Set("pageSize", strconv.Itoa(o.PerPage))
	}
	return q
}

func (s *MediaService) List(ctx context.Context, opts *MediaListOptions) (*Page[MediaItem], error) {
	return getPage[MediaItem](ctx, s.client, "/media", opts.values(), mediaShape)
}

// Upload attaches files to a context (request, lease, property). The
// contextType is an enum field and is lowercased before transmission.
func (s *MediaService) Upload(ctx context.Context, contextType string, contextID uuid.UUID, files []Upload) ([]MediaItem, error) {
	form := NewForm().
		SetEnum("contextType", contextType).
		Set("contextId", contextID.String()).
		AddFiles(uploadField("media.upload"), files)

	var items []MediaItem
	if err := s.client.sendForm(ctx, "POST", "/media", form, &items); err != nil {
		return nil, err
	}
	return items, nil
}

// Download streams a stored file into w.
func (s *MediaService) Download(ctx context.Context, id uuid.UUID, w io.Writer) (*DownloadInfo, error) {
	return s.client.download(ctx, "/media/"+id.String()+"/download", nil, w)
}

func (s *MediaService) Delete(ctx context.Context, id uuid.UUID) error {
	return s.client.deletePath(ctx, "/media/"+id.String())
}
