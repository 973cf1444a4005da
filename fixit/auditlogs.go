package fixit

import (
	"context"
	"net/url"
	"strconv"

	"github.com/google/uuid"
)

// AuditLogsService wraps the read-only /audit-logs resource, using the
// {data, pagination} envelope.
type AuditLogsService service

const auditLogsShape = ShapeDataPagination

// AuditLogListOptions filters and paginates audit log listings.
type AuditLogListOptions struct {
	ActorID  uuid.UUID
	Resource string
	Action   string
	Page     int
	PerPage  int
}

func (o *AuditLogListOptions) values() url.Values {
	q := url.Values{}
	if o == nil {
		return q
	}
	if o.ActorID != uuid.Nil {
		q.Set("actorId", o.ActorID.String())
	}
	if o.Resource != "" {
		q.Set("resource", NormalizeEnum(o.Resource))
	}
	if o.Action != "" {
		q.Set("action", NormalizeEnum(o.Action))
	}
	if o.Page > 0 {
		q.Set("page", strconv.Itoa(o.Page))
	}
	if o.PerPage > 0 {
		q.Set("limit", strconv.Itoa(o.PerPage))
	}
	return q
}

func (s *AuditLogsService) List(ctx context.Context, opts *AuditLogListOptions) (*Page[AuditLog], error) {
	return getPage[AuditLog](ctx, s.client, "/audit-logs", opts.values(), auditLogsShape)
}

func (s *AuditLogsService) Get(ctx context.Context, id uuid.UUID) (*AuditLog, error) {
	var l AuditLog
	if err := s.client.getJSON(ctx, "/audit-logs/"+id.String(), nil, &l); err != nil {
		return nil, err
	}
	return &l, nil
}
