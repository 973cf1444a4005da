package fixit

import (
	"context"
	"net/url"
	"strconv"
	"time"

	"github.com/google/uuid"
)

// RentService wraps the /rent resource. This endpoint generation returns
// the {success, data, meta} envelope.
type RentService service

const rentShape = ShapeSuccessData

// RentListOptions filters and paginates rent records.
type RentListOptions struct {
	LeaseID uuid.UUID
	Status  string
	Period  string
	Page    int
	PerPage int
}

func (o *RentListOptions) values() url.Values {
	q := url.Values{}
	if o == nil {
		return q
	}
	if o.LeaseID != uuid.Nil {
		q.Set("leaseId", o.LeaseID.String())
	}
	if o.Status != "" {
		q.Set("status", NormalizeEnum(o.Status))
	}
	if o.Period != "" {
		q.Set("period", o.Period)
	}
	if o.Page > 0 {
		q.Set("page", strconv.Itoa(o.Page))
	}
	if o.PerPage > 0 {
		q.Set("pageSize", strconv.Itoa(o.PerPage))
	}
	return q
}

func (s *RentService) List(ctx context.Context, opts *RentListOptions) (*Page[RentRecord], error) {
	return getPage[RentRecord](ctx, s.client, "/rent", opts.values(), rentShape)
}

func (s *RentService) Get(ctx context.Context, id uuid.UUID) (*RentRecord, error) {
	var r RentRecord
	if err := s.client.getJSON(ctx, "/rent/"+id.String(), nil, &r); err != nil {
		return nil, err
	}
	return &r, nil
}

// RentParams creates a rent record for a lease period.
type RentParams struct {
	LeaseID   uuid.UUID `json:"leaseId"`
	Period    string    `json:"period"`
	AmountDue float64   `json:"amountDue"`
	DueDate   time.Time `json:"dueDate"`
}

func (s *RentService) Create(ctx context.Context, params RentParams) (*RentRecord, error) {
	var r RentRecord
	if err := s.client.postJSON(ctx, "/rent", params, &r); err != nil {
		return nil, err
	}
	return &r, nil
}

// RecordPayment marks an amount paid against a rent record.
func (s *RentService) RecordPayment(ctx context.Context, id uuid.UUID, amount float64, paidAt time.Time) (*RentRecord, error) {
	body := map[string]any{"amount": amount, "paidAt": paidAt}
	var r RentRecord
	if err := s.client.postJSON(ctx, "/rent/"+id.String()+"/payments", body, &r); err != nil {
		return nil, err
	}
	return &r, nil
}

func (s *RentService) Delete(ctx context.Context, id uuid.UUID) error {
	return s.client.deletePath(ctx, "/rent/"+id.String())
}
