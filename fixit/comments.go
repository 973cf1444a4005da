package fixit

import (
	"context"
	"net/url"

	"github.com/google/uuid"
)

// CommentsService wraps threaded comments on requests, leases, and
// properties, returning bare arrays.
type CommentsService service

const commentsShape = ShapeBareArray

// List returns the comments for a context. The contextType is an enum field
// and is lowercased before transmission.
func (s *CommentsService) List(ctx context.Context, contextType string, contextID uuid.UUID) (*Page[Comment], error) {
	q := url.Values{}
	q.Set("contextType", NormalizeEnum(contextType))
	q.Set("contextId", contextID.String())
	return getPage[Comment](ctx, s.client, "/comments", q, commentsShape)
}

// CommentParams creates a comment on a context.
type CommentParams struct {
	ContextType string    `json:"contextType"`
	ContextID   uuid.UUID `json:"contextId"`
	Body        string    `json:"body"`
}

func (s *CommentsService) Create(ctx context.Context, params CommentParams) (*Comment, error) {
	params.ContextType = NormalizeEnum(params.ContextType)
	var c Comment
	if err := s.client.postJSON(ctx, "/comments", params, &c); err != nil {
		return nil, err
	}
	return &c, nil
}

func (s *CommentsService) Delete(ctx context.Context, id uuid.UUID) error {
	return s.client.deletePath(ctx, "/comments/"+id.String())
}
