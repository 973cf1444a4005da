package fixit

import (
	"context"
	"net/url"
	"strconv"

	"github.com/google/uuid"
)

// PropertiesService wraps the /properties resource.
// List responses use the {data, pagination} envelope.
type PropertiesService service

const propertiesShape = ShapeDataPagination

// PropertyListOptions filters and paginates property listings.
type PropertyListOptions struct {
	Search  string
	City    string
	Type    string
	Page    int
	PerPage int
}

func (o *PropertyListOptions) values() url.Values {
	q := url.Values{}
	if o == nil {
		return q
	}
	if o.Search != "" {
		q.Set("search", o.Search)
	}
	if o.City != "" {
		q.Set("city", o.City)
	}
	if o.Type != "" {
		q.Set("type", NormalizeEnum(o.Type))
	}
	if o.Page > 0 {
		q.Set("page", strconv.Itoa(o.Page))
	}
	if o.PerPage > 0 {
		q.Set("limit", strconv.Itoa(o.PerPage))
	}
	return q
}

func (s *PropertiesService) List(ctx context.Context, opts *PropertyListOptions) (*Page[Property], error) {
	return getPage[Property](ctx, s.client, "/properties", opts.values(), propertiesShape)
}

func (s *PropertiesService) Get(ctx context.Context, id uuid.UUID) (*Property, error) {
	var p Property
	if err := s.client.getJSON(ctx, "/properties/"+id.String(), nil, &p); err != nil {
		return nil, err
	}
	return &p, nil
}

// PropertyParams is the create/update payload.
type PropertyParams struct {
	Name    string `json:"name"`
	Address string `json:"address"`
	City    string `json:"city"`
	Country string `json:"country,omitempty"`
	Type    string `json:"type"`
}

func (s *PropertiesService) Create(ctx context.Context, params PropertyParams) (*Property, error) {
	params.Type = NormalizeEnum(params.Type)
	var p Property
	if err := s.client.postJSON(ctx, "/properties", params, &p); err != nil {
		return nil, err
	}
	return &p, nil
}

func (s *PropertiesService) Update(ctx context.Context, id uuid.UUID, params PropertyParams) (*Property, error) {
	params.Type = NormalizeEnum(params.Type)
	var p Property
	if err := s.client.putJSON(ctx, "/properties/"+id.String(), params, &p); err != nil {
		return nil, err
	}
	return &p, nil
}

func (s *PropertiesService) Delete(ctx context.Context, id uuid.UUID) error {
	return s.client.deletePath(ctx, "/properties/"+id.String())
}
