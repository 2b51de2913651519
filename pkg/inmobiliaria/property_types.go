package inmobiliaria

import (
	"context"
	"net/http"
	"net/url"
)

// PropertyTypeService handles the property type catalog
type PropertyTypeService struct {
	client *Client
}

func (s *PropertyTypeService) List(ctx context.Context) ([]PropertyType, error) {
	var types []PropertyType
	req := call{method: http.MethodGet, endpoint: "/property-types", path: "/property-types"}
	if _, err := s.client.do(ctx, req, &types); err != nil {
		return nil, err
	}
	return types, nil
}

func (s *PropertyTypeService) Create(ctx context.Context, pt *PropertyType) (string, error) {
	req, err := jsonCall(http.MethodPost, "/property-type", "/property-type", map[string]string{
		"name":        pt.Name,
		"description": pt.Description,
	})
	if err != nil {
		return "", err
	}
	return s.client.do(ctx, req, nil)
}

func (s *PropertyTypeService) Update(ctx context.Context, id string, pt *PropertyType) (string, error) {
	req, err := jsonCall(http.MethodPut, "/property-type/:id", "/property-type/"+url.PathEscape(id), map[string]string{
		"name":        pt.Name,
		"description": pt.Description,
	})
	if err != nil {
		return "", err
	}
	return s.client.do(ctx, req, nil)
}

func (s *PropertyTypeService) Delete(ctx context.Context, id string) (string, error) {
	req := call{method: http.MethodDelete, endpoint: "/property-type/:id", path: "/property-type/" + url.PathEscape(id)}
	return s.client.do(ctx, req, nil)
}

// Activate puts a type back into the catalog
func (s *PropertyTypeService) Activate(ctx context.Context, id string) (string, error) {
	req := call{method: http.MethodPatch, endpoint: "/property-type/:id/activate", path: "/property-type/" + url.PathEscape(id) + "/activate"}
	return s.client.do(ctx, req, nil)
}

// Deactivate hides a type from the catalog without deleting it
func (s *PropertyTypeService) Deactivate(ctx context.Context, id string) (string, error) {
	req := call{method: http.MethodPatch, endpoint: "/property-type/:id/deactivate", path: "/property-type/" + url.PathEscape(id) + "/deactivate"}
	return s.client.do(ctx, req, nil)
}
