package inmobiliaria

import (
	"context"
	"encoding/json"
	"net/http"
)

// AuthService handles panel sign-in against the backend
type AuthService struct {
	client *Client
}

// LoginResult is the data returned by a successful login.
type LoginResult struct {
	JWT  string `json:"jwt"`
	User User   `json:"-"`
}

func (r *LoginResult) UnmarshalJSON(b []byte) error {
	var aux struct {
		JWT   string `json:"jwt"`
		Token string `json:"token"`
		User  *User  `json:"user"`
	}
	if err := json.Unmarshal(b, &aux); err != nil {
		return err
	}
	r.JWT = aux.JWT
	if r.JWT == "" {
		r.JWT = aux.Token
	}
	if aux.User != nil {
		r.User = *aux.User
		return nil
	}
	// Some backend versions return the user fields next to the token.
	return json.Unmarshal(b, &r.User)
}

// Login exchanges credentials for a backend bearer token
func (s *AuthService) Login(ctx context.Context, email, password string) (*LoginResult, error) {
	req, err := jsonCall(http.MethodPost, "/user/login", "/user/login", map[string]string{
		"email":    email,
		"password": password,
	})
	if err != nil {
		return nil, err
	}

	var result LoginResult
	if _, err := s.client.do(ctx, req, &result); err != nil {
		return nil, err
	}
	if result.JWT == "" {
		return nil, &Error{StatusCode: http.StatusOK, Message: "login response did not include a token"}
	}
	result.User.Password = ""
	return &result, nil
}
