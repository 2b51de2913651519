package inmobiliaria

import (
	"context"
	"net/http"
	"net/url"
)

// UserService handles panel account operations
type UserService struct {
	client *Client
}

func (s *UserService) List(ctx context.Context) ([]User, error) {
	var users []User
	if _, err := s.client.do(ctx, call{method: http.MethodGet, endpoint: "/users", path: "/users"}, &users); err != nil {
		return nil, err
	}
	for i := range users {
		users[i].Password = ""
	}
	return users, nil
}

func (s *UserService) Get(ctx context.Context, id string) (*User, error) {
	var user User
	req := call{method: http.MethodGet, endpoint: "/user/:id", path: "/user/" + url.PathEscape(id)}
	if _, err := s.client.do(ctx, req, &user); err != nil {
		return nil, err
	}
	if user.ID == "" {
		return nil, ErrNotFound
	}
	user.Password = ""
	return &user, nil
}

func (s *UserService) Create(ctx context.Context, user *User) (string, error) {
	req, err := jsonCall(http.MethodPost, "/user", "/user", user)
	if err != nil {
		return "", err
	}
	return s.client.do(ctx, req, nil)
}

// Update sends the user's data. An empty password is left out of the body.
func (s *UserService) Update(ctx context.Context, id string, user *User) (string, error) {
	req, err := jsonCall(http.MethodPut, "/user/:id", "/user/"+url.PathEscape(id), user)
	if err != nil {
		return "", err
	}
	return s.client.do(ctx, req, nil)
}

func (s *UserService) Delete(ctx context.Context, id string) (string, error) {
	return s.client.do(ctx, call{method: http.MethodDelete, endpoint: "/user/:id", path: "/user/" + url.PathEscape(id)}, nil)
}
