package fixit

import (
	"context"
	"net/url"

	"github.com/google/uuid"
)

// VendorsService wraps the /vendors resource, returning bare arrays.
// Vendor certifications upload under the documentFile field.
type VendorsService service

const vendorsShape = ShapeBareArray

// VendorListOptions filters vendor listings.
type VendorListOptions struct {
	Service string
	Active  *bool
}

func (o *VendorListOptions) values() url.Values {
	q := url.Values{}
	if o == nil {
		return q
	}
	if o.Service != "" {
		q.Set("service", NormalizeEnum(o.Service))
	}
	if o.Active != nil {
		if *o.Active {
			q.Set("active", "true")
		} else {
			q.Set("active", "false")
		}
	}
	return q
}

func (s *VendorsService) List(ctx context.Context, opts *VendorListOptions) (*Page[Vendor], error) {
	return getPage[Vendor](ctx, s.client, "/vendors", opts.values(), vendorsShape)
}

func (s *VendorsService) Get(ctx context.Context, id uuid.UUID) (*Vendor, error) {
	var v Vendor
	if err := s.client.getJSON(ctx, "/vendors/"+id.String(), nil, &v); err != nil {
		return nil, err
	}
	return &v, nil
}

// VendorParams is the create/update payload. Service names are enum values
// and are lowercased before transmission.
type VendorParams struct {
	Name     string   `json:"name"`
	Services []string `json:"services"`
	Phone    string   `json:"phone,omitempty"`
	Email    string   `json:"email,omitempty"`
	Address  string   `json:"address,omitempty"`
}

func (s *VendorsService) Create(ctx context.Context, params VendorParams) (*Vendor, error) {
	for i, svc := range params.Services {
		params.Services[i] = NormalizeEnum(svc)
	}
	var v Vendor
	if err := s.client.postJSON(ctx, "/vendors", params, &v); err != nil {
		return nil, err
	}
	return &v, nil
}

func (s *VendorsService) Update(ctx context.Context, id uuid.UUID, params VendorParams) (*Vendor, error) {
	for i, svc := range params.Services {
		params.Services[i] = NormalizeEnum(svc)
	}
	var v Vendor
	if err := s.client.putJSON(ctx, "/vendors/"+id.String(), params, &v); err != nil {
		return nil, err
	}
	return &v, nil
}

// UploadDocument attaches a certification or insurance document.
func (s *VendorsService) UploadDocument(ctx context.Context, id uuid.UUID, doc Upload) (*Vendor, error) {
	form := NewForm().AddFiles(uploadField("vendors.document"), []Upload{doc})
	var v Vendor
	if err := s.client.sendForm(ctx, "POST", "/vendors/"+id.String()+"/documents", form, &v); err != nil {
		return nil, err
	}
	return &v, nil
}

func (s *VendorsService) Delete(ctx context.Context, id uuid.UUID) error {
	return s.client.deletePath(ctx, "/vendors/"+id.String())
}
