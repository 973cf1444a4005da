package fixit

import (
	"context"
	"net/url"
)

// PublicService wraps unauthenticated endpoints: vacancy listings, invite
// preview/acceptance, and the contact form. These requests still carry a
// bearer token if a session happens to be stored; the backend ignores it.
type PublicService service

const vacanciesShape = ShapeBareArray

// Vacancies lists publicly advertised units, optionally filtered by city.
func (s *PublicService) Vacancies(ctx context.Context, city string) (*Page[VacancyListing], error) {
	q := url.Values{}
	if city != "" {
		q.Set("city", city)
	}
	return getPage[VacancyListing](ctx, s.client, "/public/vacancies", q, vacanciesShape)
}

// PreviewInvite resolves an invite token to its details so the signup page
// can show what is being joined.
func (s *PublicService) PreviewInvite(ctx context.Context, token string) (*Invite, error) {
	var inv Invite
	if err := s.client.getJSON(ctx, "/public/invites/"+url.PathEscape(token), nil, &inv); err != nil {
		return nil, err
	}
	return &inv, nil
}

// AcceptInviteParams completes signup from an invite token.
type AcceptInviteParams struct {
	Token    string `json:"token"`
	Name     string `json:"name"`
	Password string `json:"password"`
	Phone    string `json:"phone,omitempty"`
}

// AcceptInvite creates the invited account. The caller logs in afterwards.
func (s *PublicService) AcceptInvite(ctx context.Context, params AcceptInviteParams) (*User, error) {
	var u User
	if err := s.client.postJSON(ctx, "/public/invites/accept", params, &u); err != nil {
		return nil, err
	}
	return &u, nil
}

// ContactParams is the public contact form payload.
type ContactParams struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Message string `json:"message"`
}

// Contact submits the public contact form.
func (s *PublicService) Contact(ctx context.Context, params ContactParams) error {
	return s.client.postJSON(ctx, "/public/contact", params, nil)
}
