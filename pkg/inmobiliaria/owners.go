package inmobiliaria

import (
	"context"
	"net/http"
	"net/url"
)

// OwnerService handles owner operations
type OwnerService struct {
	client *Client
}

// List returns every owner
func (s *OwnerService) List(ctx context.Context) ([]Owner, error) {
	var owners []Owner
	if _, err := s.client.do(ctx, call{method: http.MethodGet, endpoint: "/owners", path: "/owners"}, &owners); err != nil {
		return nil, err
	}
	return owners, nil
}

// Search looks owners up by name or document
func (s *OwnerService) Search(ctx context.Context, query string) ([]Owner, error) {
	var owners []Owner
	req := call{
		method:   http.MethodGet,
		endpoint: "/owners/search",
		path:     "/owners/search?q=" + url.QueryEscape(query),
	}
	if _, err := s.client.do(ctx, req, &owners); err != nil {
		return nil, err
	}
	return owners, nil
}

// Get fetches an owner by ID
func (s *OwnerService) Get(ctx context.Context, id string) (*Owner, error) {
	var owner Owner
	req := call{method: http.MethodGet, endpoint: "/owner/:id", path: "/owner/" + url.PathEscape(id)}
	if _, err := s.client.do(ctx, req, &owner); err != nil {
		return nil, err
	}
	if owner.ID == "" {
		return nil, ErrNotFound
	}
	return &owner, nil
}

// GetByDocument fetches an owner by document type and number
func (s *OwnerService) GetByDocument(ctx context.Context, docType, number string) (*Owner, error) {
	var owner Owner
	req := call{
		method:   http.MethodGet,
		endpoint: "/owner/document/:type/:number",
		path:     "/owner/document/" + url.PathEscape(docType) + "/" + url.PathEscape(number),
	}
	if _, err := s.client.do(ctx, req, &owner); err != nil {
		return nil, err
	}
	if owner.ID == "" {
		return nil, ErrNotFound
	}
	return &owner, nil
}

// Create registers an owner
func (s *OwnerService) Create(ctx context.Context, owner *Owner) (*Owner, string, error) {
	req, err := jsonCall(http.MethodPost, "/owner", "/owner", owner)
	if err != nil {
		return nil, "", err
	}
	var created Owner
	msg, err := s.client.do(ctx, req, &created)
	if err != nil {
		return nil, msg, err
	}
	return &created, msg, nil
}

// Update replaces an owner's data
func (s *OwnerService) Update(ctx context.Context, id string, owner *Owner) (string, error) {
	req, err := jsonCall(http.MethodPut, "/owner/:id", "/owner/"+url.PathEscape(id), owner)
	if err != nil {
		return "", err
	}
	return s.client.do(ctx, req, nil)
}

// Delete removes an owner
func (s *OwnerService) Delete(ctx context.Context, id string) (string, error) {
	return s.client.do(ctx, call{method: http.MethodDelete, endpoint: "/owner/:id", path: "/owner/" + url.PathEscape(id)}, nil)
}
