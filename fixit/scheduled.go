package fixit

import (
	"context"
	"net/url"
	"strconv"
	"time"

	"github.com/google/uuid"
)

// ScheduledService wraps scheduled maintenance tasks. This is the oldest
// endpoint generation and returns the
// {tasks, total, currentPage, itemsPerPage} envelope.
type ScheduledService service

const scheduledShape = ShapeTaskList

// ScheduledListOptions filters and paginates scheduled tasks.
type ScheduledListOptions struct {
	PropertyID uuid.UUID
	Status     string
	Frequency  string
	Page       int
	PerPage    int
}

func (o *ScheduledListOptions) values() url.Values {
	q := url.Values{}
	if o == nil {
		return q
	}
	if o.PropertyID != uuid.Nil {
		q.Set("propertyId", o.PropertyID.String())
	}
	if o.Status != "" {
		q.Set("status", NormalizeEnum(o.Status))
	}
	if o.Frequency != "" {
		q.Set("frequency", NormalizeEnum(o.Frequency))
	}
	if o.Page > 0 {
		q.Set("page", strconv.Itoa(o.Page))
	}
	if o.PerPage > 0 {
		q.Set("limit", strconv.Itoa(o.PerPage))
	}
	return q
}

func (s *ScheduledService) List(ctx context.Context, opts *ScheduledListOptions) (*Page[ScheduledTask], error) {
	return getPage[ScheduledTask](ctx, s.client, "/scheduled-maintenance", opts.values(), scheduledShape)
}

func (s *ScheduledService) Get(ctx context.Context, id uuid.UUID) (*ScheduledTask, error) {
	var t ScheduledTask
	if err := s.client.getJSON(ctx, "/scheduled-maintenance/"+id.String(), nil, &t); err != nil {
		return nil, err
	}
	return &t, nil
}

// ScheduledTaskParams is the create/update payload.
type ScheduledTaskParams struct {
	Title       string    `json:"title"`
	Description string    `json:"description,omitempty"`
	Category    string    `json:"category"`
	Frequency   string    `json:"frequency"`
	PropertyID  uuid.UUID `json:"propertyId"`
	UnitID      uuid.UUID `json:"unitId,omitempty"`
	NextDueAt   time.Time `json:"nextDueAt"`
}

func (s *ScheduledService) Create(ctx context.Context, params ScheduledTaskParams, files []Upload) (*ScheduledTask, error) {
	params.Category = NormalizeEnum(params.Category)
	params.Frequency = NormalizeEnum(params.Frequency)

	var t ScheduledTask
	if len(files) == 0 {
		if err := s.client.postJSON(ctx, "/scheduled-maintenance", params, &t); err != nil {
			return nil, err
		}
		return &t, nil
	}

	form := NewForm().
		Set("title", params.Title).
		Set("description", params.Description).
		SetEnum("category", params.Category).
		SetEnum("frequency", params.Frequency).
		Set("propertyId", params.PropertyID.String()).
		Set("nextDueAt", params.NextDueAt.Format(time.RFC3339))
	if params.UnitID != uuid.Nil {
		form.Set("unitId", params.UnitID.String())
	}
	form.AddFiles(uploadField("scheduled.media"), files)

	if err := s.client.sendForm(ctx, "POST", "/scheduled-maintenance", form, &t); err != nil {
		return nil, err
	}
	return &t, nil
}

func (s *ScheduledService) Update(ctx context.Context, id uuid.UUID, params ScheduledTaskParams) (*ScheduledTask, error) {
	params.Category = NormalizeEnum(params.Category)
	params.Frequency = NormalizeEnum(params.Frequency)
	var t ScheduledTask
	if err := s.client.putJSON(ctx, "/scheduled-maintenance/"+id.String(), params, &t); err != nil {
		return nil, err
	}
	return &t, nil
}

// Pause suspends a recurring task without deleting its history.
func (s *ScheduledService) Pause(ctx context.Context, id uuid.UUID) error {
	return s.client.postJSON(ctx, "/scheduled-maintenance/"+id.String()+"/pause", nil, nil)
}

// Resume reactivates a paused task.
func (s *ScheduledService) Resume(ctx context.Context, id uuid.UUID) error {
	return s.client.postJSON(ctx, "/scheduled-maintenance/"+id.String()+"/resume", nil, nil)
}

func (s *ScheduledService) Delete(ctx context.Context, id uuid.UUID) error {
	return s.client.deletePath(ctx, "/scheduled-maintenance/"+id.String())
}
