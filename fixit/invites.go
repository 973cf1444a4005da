package fixit

import (
	"context"
	"net/url"

	"github.com/google/uuid"
)

// InvitesService wraps the /invites resource, returning bare arrays.
// Accepting an invite is unauthenticated and lives on PublicService.
type InvitesService service

const invitesShape = ShapeBareArray

// InviteListOptions filters invite listings.
type InviteListOptions struct {
	PropertyID uuid.UUID
	Status     string
}

func (o *InviteListOptions) values() url.Values {
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
	return q
}

func (s *InvitesService) List(ctx context.Context, opts *InviteListOptions) (*Page[Invite], error) {
	return getPage[Invite](ctx, s.client, "/invites", opts.values(), invitesShape)
}

// InviteParams creates an invite. Role is normalized to lowercase.
type InviteParams struct {
	Email      string    `json:"email"`
	Role       string    `json:"role"`
	PropertyID uuid.UUID `json:"propertyId"`
	UnitID     uuid.UUID `json:"unitId,omitempty"`
}

func (s *InvitesService) Create(ctx context.Context, params InviteParams) (*Invite, error) {
	params.Role = NormalizeEnum(params.Role)
	var inv Invite
	if err := s.client.postJSON(ctx, "/invites", params, &inv); err != nil {
		return nil, err
	}
	return &inv, nil
}

// Resend re-sends the invite email and refreshes its expiry.
func (s *InvitesService) Resend(ctx context.Context, id uuid.UUID) (*Invite, error) {
	var inv Invite
	if err := s.client.postJSON(ctx, "/invites/"+id.String()+"/resend", nil, &inv); err != nil {
		return nil, err
	}
	return &inv, nil
}

// Revoke cancels a pending invite.
func (s *InvitesService) Revoke(ctx context.Context, id uuid.UUID) error {
	return s.client.deletePath(ctx, "/invites/"+id.String())
}
