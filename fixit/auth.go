package fixit

import (
	"context"
)

// AuthService handles login, logout, and registration. Login persists the
// returned credential into the session store; every later request reads it
// from there.
type AuthService service

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginResponse struct {
	Token string  `json:"token"`
	User  Profile `json:"user"`
}

// Login authenticates and stores the resulting session credential.
func (s *AuthService) Login(ctx context.Context, email, password string) (*Profile, error) {
	var resp loginResponse
	if err := s.client.postJSON(ctx, "/auth/login", loginRequest{Email: email, Password: password}, &resp); err != nil {
		return nil, err
	}
	cred := &Credential{Token: resp.Token, Profile: resp.User}
	if err := s.client.store.Save(cred); err != nil {
		return nil, &Error{Kind: KindServer, Message: "persist session", Cause: err}
	}
	return &resp.User, nil
}

// Logout notifies the backend and clears the stored session. The local
// session is cleared even when the backend call fails.
func (s *AuthService) Logout(ctx context.Context) error {
	apiErr := s.client.postJSON(ctx, "/auth/logout", nil, nil)
	if err := s.client.store.Clear(); err != nil {
		return &Error{Kind: KindServer, Message: "clear session", Cause: err}
	}
	return apiErr
}

// RegisterParams creates a new account. Role is normalized to the backend's
// lowercase enum form.
type RegisterParams struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Phone    string `json:"phone,omitempty"`
	Role     string `json:"role"`
}

// Register creates an account. The new session is not stored; callers log
// in afterwards (some roles require approval first).
func (s *AuthService) Register(ctx context.Context, params RegisterParams) (*User, error) {
	params.Role = NormalizeEnum(params.Role)
	var user User
	if err := s.client.postJSON(ctx, "/auth/register", params, &user); err != nil {
		return nil, err
	}
	return &user, nil
}
