package fixit

import (
	"context"
	"io"
	"net/url"
	"strconv"
	"time"

	"github.com/google/uuid"
)

// LeasesService wraps the /leases resource. List responses use the
// {data, pagination} envelope; the signed lease document is uploaded as
// multipart under the documentFile field and downloaded as a blob.
type LeasesService service

const leasesShape = ShapeDataPagination

// LeaseListOptions filters and paginates lease listings.
type LeaseListOptions struct {
	PropertyID uuid.UUID
	TenantID   uuid.UUID
	Status     string
	Page       int
	PerPage    int
}

func (o *LeaseListOptions) values() url.Values {
	q := url.Values{}
	if o == nil {
		return q
	}
	if o.PropertyID != uuid.Nil {
		q.Set("propertyId", o.PropertyID.String())
	}
	if o.TenantID != uuid.Nil {
		q.Set("tenantId", o.TenantID.String())
	}
	if o.Status != "" {
		q.Set("status", NormalizeEnum(o.Status))
	}
	if o.Page > 0 {
		q.Set("page", strconv.Itoa(o.Page))
	}
	if o.PerPage > 0 {
		q.Set("limit", strconv.Itoa(o.PerPage))
	}
	return q
}

func (s *LeasesService) List(ctx context.Context, opts *LeaseListOptions) (*Page[Lease], error) {
	return getPage[Lease](ctx, s.client, "/leases", opts.values(), leasesShape)
}

func (s *LeasesService) Get(ctx context.Context, id uuid.UUID) (*Lease, error) {
	var l Lease
	if err := s.client.getJSON(ctx, "/leases/"+id.String(), nil, &l); err != nil {
		return nil, err
	}
	return &l, nil
}

// LeaseParams is the create/update payload.
type LeaseParams struct {
	PropertyID uuid.UUID `json:"propertyId"`
	UnitID     uuid.UUID `json:"unitId"`
	TenantID   uuid.UUID `json:"tenantId"`
	StartDate  time.Time `json:"startDate"`
	EndDate    time.Time `json:"endDate"`
	RentAmount float64   `json:"rentAmount"`
	Currency   string    `json:"currency,omitempty"`
	Status     string    `json:"status,omitempty"`
}

func (s *LeasesService) Create(ctx context.Context, params LeaseParams) (*Lease, error) {
	params.Status = NormalizeEnum(params.Status)
	var l Lease
	if err := s.client.postJSON(ctx, "/leases", params, &l); err != nil {
		return nil, err
	}
	return &l, nil
}

func (s *LeasesService) Update(ctx context.Context, id uuid.UUID, params LeaseParams) (*Lease, error) {
	params.Status = NormalizeEnum(params.Status)
	var l Lease
	if err := s.client.putJSON(ctx, "/leases/"+id.String(), params, &l); err != nil {
		return nil, err
	}
	return &l, nil
}

func (s *LeasesService) Delete(ctx context.Context, id uuid.UUID) error {
	return s.client.deletePath(ctx, "/leases/"+id.String())
}

// UploadDocument attaches the signed lease document.
func (s *LeasesService) UploadDocument(ctx context.Context, id uuid.UUID, doc Upload) (*Lease, error) {
	form := NewForm().AddFiles(uploadField("leases.document"), []Upload{doc})
	var l Lease
	if err := s.client.sendForm(ctx, "POST", "/leases/"+id.String()+"/document", form, &l); err != nil {
		return nil, err
	}
	return &l, nil
}

// DownloadDocument streams the lease document into w.
func (s *LeasesService) DownloadDocument(ctx context.Context, id uuid.UUID, w io.Writer) (*DownloadInfo, error) {
	return s.client.download(ctx, "/leases/"+id.String()+"/document", nil, w)
}
