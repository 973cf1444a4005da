package fixit

import (
	"context"
	"net/url"
	"strconv"

	"github.com/google/uuid"
)

// RequestsService wraps maintenance requests. List responses use the
// {items, total} envelope; attachments upload under the mediaFiles field.
type RequestsService service

const requestsShape = ShapeItemsTotal

// RequestListOptions filters and paginates maintenance requests.
type RequestListOptions struct {
	PropertyID uuid.UUID
	UnitID     uuid.UUID
	Status     string
	Category   string
	Priority   string
	Page       int
	PerPage    int
}

func (o *RequestListOptions) values() url.Values {
	q := url.Values{}
	if o == nil {
		return q
	}
	if o.PropertyID != uuid.Nil {
		q.Set("propertyId", o.PropertyID.String())
	}
	if o.UnitID != uuid.Nil {
		q.Set("unitId", o.UnitID.String())
	}
	if o.Status != "" {
		q.Set("status", NormalizeEnum(o.Status))
	}
	if o.Category != "" {
		q.Set("category", NormalizeEnum(o.Category))
	}
	if o.Priority != "" {
		q.Set("priority", NormalizeEnum(o.Priority))
	}
	if o.Page > 0 {
		q.Set("page", strconv.Itoa(o.Page))
	}
	if o.PerPage > 0 {
		q.Set("limit", strconv.Itoa(o.PerPage))
	}
	return q
}

func (s *RequestsService) List(ctx context.Context, opts *RequestListOptions) (*Page[MaintenanceRequest], error) {
	return getPage[MaintenanceRequest](ctx, s.client, "/requests", opts.values(), requestsShape)
}

func (s *RequestsService) Get(ctx context.Context, id uuid.UUID) (*MaintenanceRequest, error) {
	var r MaintenanceRequest
	if err := s.client.getJSON(ctx, "/requests/"+id.String(), nil, &r); err != nil {
		return nil, err
	}
	return &r, nil
}

// RequestParams is the create payload. Category and priority are enum
// fields and are lowercased before transmission.
type RequestParams struct {
	Title       string    `json:"title"`
	Description string    `json:"description,omitempty"`
	Category    string    `json:"category"`
	Priority    string    `json:"priority,omitempty"`
	PropertyID  uuid.UUID `json:"propertyId"`
	UnitID      uuid.UUID `json:"unitId,omitempty"`
}

// Create files a maintenance request. With no attachments the payload is
// JSON; with at least one file the whole payload switches to multipart with
// the files under the mediaFiles field.
func (s *RequestsService) Create(ctx context.Context, params RequestParams, files []Upload) (*MaintenanceRequest, error) {
	params.Category = NormalizeEnum(params.Category)
	params.Priority = NormalizeEnum(params.Priority)

	var r MaintenanceRequest
	if len(files) == 0 {
		if err := s.client.postJSON(ctx, "/requests", params, &r); err != nil {
			return nil, err
		}
		return &r, nil
	}

	form := NewForm().
		Set("title", params.Title).
		Set("description", params.Description).
		SetEnum("category", params.Category).
		SetEnum("priority", params.Priority).
		Set("propertyId", params.PropertyID.String())
	if params.UnitID != uuid.Nil {
		form.Set("unitId", params.UnitID.String())
	}
	form.AddFiles(uploadField("requests.media"), files)

	if err := s.client.sendForm(ctx, "POST", "/requests", form, &r); err != nil {
		return nil, err
	}
	return &r, nil
}

// AddMedia attaches more files to an existing request.
func (s *RequestsService) AddMedia(ctx context.Context, id uuid.UUID, files []Upload) (*MaintenanceRequest, error) {
	form := NewForm().AddFiles(uploadField("requests.media"), files)
	var r MaintenanceRequest
	if err := s.client.sendForm(ctx, "POST", "/requests/"+id.String()+"/media", form, &r); err != nil {
		return nil, err
	}
	return &r, nil
}

// UpdateStatus moves a request through its workflow (new, assigned,
// in_progress, completed, verified, archived).
func (s *RequestsService) UpdateStatus(ctx context.Context, id uuid.UUID, status string) (*MaintenanceRequest, error) {
	body := map[string]string{"status": NormalizeEnum(status)}
	var r MaintenanceRequest
	if err := s.client.patchJSON(ctx, "/requests/"+id.String()+"/status", body, &r); err != nil {
		return nil, err
	}
	return &r, nil
}

// Assign routes a request to a vendor or staff user.
func (s *RequestsService) Assign(ctx context.Context, id, assigneeID uuid.UUID) (*MaintenanceRequest, error) {
	body := map[string]string{"assignedTo": assigneeID.String()}
	var r MaintenanceRequest
	if err := s.client.postJSON(ctx, "/requests/"+id.String()+"/assign", body, &r); err != nil {
		return nil, err
	}
	return &r, nil
}

func (s *RequestsService) Delete(ctx context.Context, id uuid.UUID) error {
	return s.client.deletePath(ctx, "/requests/"+id.String())
}
