package inmobiliaria

import (
	"context"
	"net/http"
	"net/url"

	"karttem-admin/pkg/logger"
)

// PropertyService handles listing operations
type PropertyService struct {
	client *Client
}

// List returns every active listing
func (s *PropertyService) List(ctx context.Context) ([]Property, error) {
	var properties []Property
	_, err := s.client.do(ctx, call{method: http.MethodGet, endpoint: "/properties", path: "/properties"}, &properties)
	if err != nil {
		return nil, err
	}
	return properties, nil
}

// ListByStatus returns the listings in the given status
func (s *PropertyService) ListByStatus(ctx context.Context, status Status) ([]Property, error) {
	var properties []Property
	req := call{
		method:   http.MethodGet,
		endpoint: "/properties/status/:status",
		path:     "/properties/status/" + url.PathEscape(string(status)),
	}
	if _, err := s.client.do(ctx, req, &properties); err != nil {
		return nil, err
	}
	return properties, nil
}

// ListInactive returns listings that were deactivated
func (s *PropertyService) ListInactive(ctx context.Context) ([]Property, error) {
	var properties []Property
	req := call{method: http.MethodGet, endpoint: "/properties/inactive", path: "/properties/inactive"}
	if _, err := s.client.do(ctx, req, &properties); err != nil {
		return nil, err
	}
	return properties, nil
}

// Get fetches a listing and resolves its owner when the backend only sent owner_id.
func (s *PropertyService) Get(ctx context.Context, id string) (*Property, error) {
	var property Property
	req := call{method: http.MethodGet, endpoint: "/property/:id", path: "/property/" + url.PathEscape(id)}
	if _, err := s.client.do(ctx, req, &property); err != nil {
		return nil, err
	}

	if property.Owner == nil && property.OwnerID != "" {
		owner, err := s.client.Owners.Get(ctx, property.OwnerID.String())
		if err != nil {
			if IsUnauthorized(err) {
				return nil, err
			}
			logger.GlobalLogger.Warnf("Failed to resolve owner for property: property_id=%s, owner_id=%s, error=%v", id, property.OwnerID, err)
		} else {
			property.Owner = owner
		}
	}

	return &property, nil
}

// Create uploads a new listing
func (s *PropertyService) Create(ctx context.Context, form *PropertyForm) (*Property, string, error) {
	body, contentType, err := form.Encode()
	if err != nil {
		return nil, "", err
	}

	var property Property
	req := call{method: http.MethodPost, endpoint: "/property", path: "/property", body: body, contentType: contentType}
	msg, err := s.client.do(ctx, req, &property)
	if err != nil {
		return nil, msg, err
	}
	return &property, msg, nil
}

// Update replaces a listing. The backend takes updates as POST because of the multipart body.
func (s *PropertyService) Update(ctx context.Context, id string, form *PropertyForm) (*Property, string, error) {
	body, contentType, err := form.Encode()
	if err != nil {
		return nil, "", err
	}

	var property Property
	req := call{
		method:      http.MethodPost,
		endpoint:    "/property/:id",
		path:        "/property/" + url.PathEscape(id),
		body:        body,
		contentType: contentType,
	}
	msg, err := s.client.do(ctx, req, &property)
	if err != nil {
		return nil, msg, err
	}
	return &property, msg, nil
}

// UpdateStatus changes the commercial status of a listing
func (s *PropertyService) UpdateStatus(ctx context.Context, id string, status Status) (string, error) {
	req, err := jsonCall(http.MethodPatch, "/property/:id/status", "/property/"+url.PathEscape(id)+"/status", map[string]string{
		"status": string(status),
	})
	if err != nil {
		return "", err
	}
	return s.client.do(ctx, req, nil)
}

// Delete removes a listing
func (s *PropertyService) Delete(ctx context.Context, id string) (string, error) {
	req := call{method: http.MethodDelete, endpoint: "/property/:id", path: "/property/" + url.PathEscape(id)}
	return s.client.do(ctx, req, nil)
}
