package fixit

import (
	"context"
	"net/url"
	"strconv"

	"github.com/google/uuid"
)

// AdminService wraps the /admin endpoints. These are the calls the admin
// override token exists for: with an admin-role session and a configured
// override, the override is attached instead of the session's own token.
type AdminService service

const adminShape = ShapeDataPagination

// AdminUserListOptions filters the all-users admin view.
type AdminUserListOptions struct {
	Role     string
	Approved *bool
	Page     int
	PerPage  int
}

func (o *AdminUserListOptions) values() url.Values {
	q := url.Values{}
	if o == nil {
		return q
	}
	if o.Role != "" {
		q.Set("role", NormalizeEnum(o.Role))
	}
	if o.Approved != nil {
		if *o.Approved {
			q.Set("approved", "true")
		} else {
			q.Set("approved", "false")
		}
	}
	if o.Page > 0 {
		q.Set("page", strconv.Itoa(o.Page))
	}
	if o.PerPage > 0 {
		q.Set("limit", strconv.Itoa(o.PerPage))
	}
	return q
}

// ListUsers returns every account, regardless of the caller's property
// scope.
func (s *AdminService) ListUsers(ctx context.Context, opts *AdminUserListOptions) (*Page[User], error) {
	return getPage[User](ctx, s.client, "/admin/users", opts.values(), adminShape)
}

// ApproveUser activates a pending registration.
func (s *AdminService) ApproveUser(ctx context.Context, id uuid.UUID) (*User, error) {
	var u User
	if err := s.client.postJSON(ctx, "/admin/users/"+id.String()+"/approve", nil, &u); err != nil {
		return nil, err
	}
	return &u, nil
}

// DeactivateUser disables an account without deleting its records.
func (s *AdminService) DeactivateUser(ctx context.Context, id uuid.UUID) error {
	return s.client.postJSON(ctx, "/admin/users/"+id.String()+"/deactivate", nil, nil)
}

// SetRole changes an account's role; the value is lowercased per the
// backend's enum contract.
func (s *AdminService) SetRole(ctx context.Context, id uuid.UUID, role string) (*User, error) {
	body := map[string]string{"role": NormalizeEnum(role)}
	var u User
	if err := s.client.patchJSON(ctx, "/admin/users/"+id.String()+"/role", body, &u); err != nil {
		return nil, err
	}
	return &u, nil
}
