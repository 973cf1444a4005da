package fixit

import (
	"context"
	"net/url"
	"strconv"

	"github.com/google/uuid"
)

// UsersService wraps the /users resource. The profile endpoint is
// /users/me: the backend briefly exposed /users/profile during a migration,
// and this SDK standardizes on the /me contract.
type UsersService service

const usersShape = ShapeDataPagination

// Me returns the authenticated user's own record.
func (s *UsersService) Me(ctx context.Context) (*User, error) {
	var u User
	if err := s.client.getJSON(ctx, "/users/me", nil, &u); err != nil {
		return nil, err
	}
	return &u, nil
}

// UserUpdateParams edits the caller's own profile.
type UserUpdateParams struct {
	Name  string `json:"name,omitempty"`
	Phone string `json:"phone,omitempty"`
}

// UpdateMe edits the authenticated user's own record.
func (s *UsersService) UpdateMe(ctx context.Context, params UserUpdateParams) (*User, error) {
	var u User
	if err := s.client.putJSON(ctx, "/users/me", params, &u); err != nil {
		return nil, err
	}
	return &u, nil
}

// UploadAvatar replaces the profile picture, uploaded under the media field.
func (s *UsersService) UploadAvatar(ctx context.Context, avatar Upload) (*User, error) {
	form := NewForm().AddFiles(uploadField("users.avatar"), []Upload{avatar})
	var u User
	if err := s.client.sendForm(ctx, "POST", "/users/me/avatar", form, &u); err != nil {
		return nil, err
	}
	return &u, nil
}

// UserListOptions filters and paginates user listings (staff only).
type UserListOptions struct {
	Role    string
	Search  string
	Page    int
	PerPage int
}

func (o *UserListOptions) values() url.Values {
	q := url.Values{}
	if o == nil {
		return q
	}
	if o.Role != "" {
		q.Set("role", NormalizeEnum(o.Role))
	}
	if o.Search != "" {
		q.Set("search", o.Search)
	}
	if o.Page > 0 {
		q.Set("page", strconv.Itoa(o.Page))
	}
	if o.PerPage > 0 {
		q.Set("limit", strconv.Itoa(o.PerPage))
	}
	return q
}

func (s *UsersService) List(ctx context.Context, opts *UserListOptions) (*Page[User], error) {
	return getPage[User](ctx, s.client, "/users", opts.values(), usersShape)
}

func (s *UsersService) Get(ctx context.Context, id uuid.UUID) (*User, error) {
	var u User
	if err := s.client.getJSON(ctx, "/users/"+id.String(), nil, &u); err != nil {
		return nil, err
	}
	return &u, nil
}
