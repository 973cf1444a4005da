package fixit

import (
	"context"
	"net/url"

	"github.com/google/uuid"
)

// UnitsService wraps units nested under a property. This endpoint generation
// returns bare arrays with no pagination envelope.
type UnitsService service

const unitsShape = ShapeBareArray

// UnitListOptions filters unit listings.
type UnitListOptions struct {
	Status string
}

func (o *UnitListOptions) values() url.Values {
	q := url.Values{}
	if o != nil && o.Status != "" {
		q.Set("status", NormalizeEnum(o.Status))
	}
	return q
}

func (s *UnitsService) List(ctx context.Context, propertyID uuid.UUID, opts *UnitListOptions) (*Page[Unit], error) {
	path := "/properties/" + propertyID.String() + "/units"
	return getPage[Unit](ctx, s.client, path, opts.values(), unitsShape)
}

func (s *UnitsService) Get(ctx context.Context, propertyID, unitID uuid.UUID) (*Unit, error) {
	var u Unit
	path := "/properties/" + propertyID.String() + "/units/" + unitID.String()
	if err := s.client.getJSON(ctx, path, nil, &u); err != nil {
		return nil, err
	}
	return &u, nil
}

// UnitParams is the create/update payload.
type UnitParams struct {
	Name       string  `json:"name"`
	Floor      string  `json:"floor,omitempty"`
	Bedrooms   int     `json:"bedrooms"`
	Bathrooms  int     `json:"bathrooms"`
	RentAmount float64 `json:"rentAmount"`
	Status     string  `json:"status,omitempty"`
}

func (s *UnitsService) Create(ctx context.Context, propertyID uuid.UUID, params UnitParams) (*Unit, error) {
	params.Status = NormalizeEnum(params.Status)
	var u Unit
	path := "/properties/" + propertyID.String() + "/units"
	if err := s.client.postJSON(ctx, path, params, &u); err != nil {
		return nil, err
	}
	return &u, nil
}

func (s *UnitsService) Update(ctx context.Context, propertyID, unitID uuid.UUID, params UnitParams) (*Unit, error) {
	params.Status = NormalizeEnum(params.Status)
	var u Unit
	path := "/properties/" + propertyID.String() + "/units/" + unitID.String()
	if err := s.client.putJSON(ctx, path, params, &u); err != nil {
		return nil, err
	}
	return &u, nil
}

// AssignTenant places a tenant into a unit.
func (s *UnitsService) AssignTenant(ctx context.Context, propertyID, unitID, tenantID uuid.UUID) error {
	body := map[string]string{"tenantId": tenantID.String()}
	path := "/properties/" + propertyID.String() + "/units/" + unitID.String() + "/tenant"
	return s.client.postJSON(ctx, path, body, nil)
}

func (s *UnitsService) Delete(ctx context.Context, propertyID, unitID uuid.UUID) error {
	return s.client.deletePath(ctx, "/properties/"+propertyID.String()+"/units/"+unitID.String())
}
