package services

import (
	"context"

	"karttem-admin/pkg/imageproc"
	"karttem-admin/pkg/inmobiliaria"
)

// The backend interfaces are satisfied by the inmobiliaria client's sub-services.

type AuthBackend interface {
	Login(ctx context.Context, email, password string) (*inmobiliaria.LoginResult, error)
}

type PropertyBackend interface {
	List(ctx context.Context) ([]inmobiliaria.Property, error)
	ListByStatus(ctx context.Context, status inmobiliaria.Status) ([]inmobiliaria.Property, error)
	ListInactive(ctx context.Context) ([]inmobiliaria.Property, error)
	Get(ctx context.Context, id string) (*inmobiliaria.Property, error)
	Create(ctx context.Context, form *inmobiliaria.PropertyForm) (*inmobiliaria.Property, string, error)
	Update(ctx context.Context, id string, form *inmobiliaria.PropertyForm) (*inmobiliaria.Property, string, error)
	UpdateStatus(ctx context.Context, id string, status inmobiliaria.Status) (string, error)
	Delete(ctx context.Context, id string) (string, error)
}

type OwnerBackend interface {
	List(ctx context.Context) ([]inmobiliaria.Owner, error)
	Search(ctx context.Context, query string) ([]inmobiliaria.Owner, error)
	Get(ctx context.Context, id string) (*inmobiliaria.Owner, error)
	GetByDocument(ctx context.Context, docType, number string) (*inmobiliaria.Owner, error)
	Create(ctx context.Context, owner *inmobiliaria.Owner) (*inmobiliaria.Owner, string, error)
	Update(ctx context.Context, id string, owner *inmobiliaria.Owner) (string, error)
	Delete(ctx context.Context, id string) (string, error)
}

type UserBackend interface {
	List(ctx context.Context) ([]inmobiliaria.User, error)
	Get(ctx context.Context, id string) (*inmobiliaria.User, error)
	Create(ctx context.Context, user *inmobiliaria.User) (string, error)
	Update(ctx context.Context, id string, user *inmobiliaria.User) (string, error)
	Delete(ctx context.Context, id string) (string, error)
}

type PropertyTypeBackend interface {
	List(ctx context.Context) ([]inmobiliaria.PropertyType, error)
	Create(ctx context.Context, pt *inmobiliaria.PropertyType) (string, error)
	Update(ctx context.Context, id string, pt *inmobiliaria.PropertyType) (string, error)
	Delete(ctx context.Context, id string) (string, error)
	Activate(ctx context.Context, id string) (string, error)
	Deactivate(ctx context.Context, id string) (string, error)
}

type ImageCompressor interface {
	Compress(filename, contentType string, data []byte) (*imageproc.Result, error)
}
