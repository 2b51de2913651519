package transformers

import (
	"strings"

	"karttem-admin/pkg/inmobiliaria"
)

// TypeOption is an entry of the built-in property type catalog.
type TypeOption struct {
	Slug string `json:"id"`
	Name string `json:"name"`
}

// PropertyTypeCatalog lists the property types the backend accepts.
var PropertyTypeCatalog = []TypeOption{
	{Slug: "cabana", Name: "Cabaña"},
	{Slug: "campo", Name: "Campo"},
	{Slug: "casa", Name: "Casa"},
	{Slug: "cochera", Name: "Cochera"},
	{Slug: "complejo-turistico", Name: "Complejo turístico"},
	{Slug: "departamento", Name: "Departamento"},
	{Slug: "departamentos-en-pozo", Name: "Departamentos en pozo"},
	{Slug: "deposito", Name: "Depósito"},
	{Slug: "duplex", Name: "Dúplex"},
	{Slug: "galpon", Name: "Galpón"},
	{Slug: "local-comercial", Name: "Local comercial"},
	{Slug: "loteo", Name: "Loteo"},
	{Slug: "monoambiente", Name: "Monoambiente"},
	{Slug: "oficina", Name: "Oficina"},
	{Slug: "planta-industrial", Name: "Planta industrial"},
	{Slug: "terreno", Name: "Terreno"},
}

var statusLabels = map[inmobiliaria.Status]string{
	inmobiliaria.StatusSale:     "En Venta",
	inmobiliaria.StatusRent:     "En Alquiler",
	inmobiliaria.StatusRented:   "Alquilada",
	inmobiliaria.StatusSold:     "Vendida",
	inmobiliaria.StatusReserved: "Reservada",
}

// NormalizeTypeSlug lowercases the slug and accepts underscores for dashes
// (older listings were stored as "local_comercial").
func NormalizeTypeSlug(slug string) string {
	return strings.ReplaceAll(strings.ToLower(strings.TrimSpace(slug)), "_", "-")
}

// IsKnownType reports whether slug belongs to the catalog.
func IsKnownType(slug string) bool {
	normalized := NormalizeTypeSlug(slug)
	for _, option := range PropertyTypeCatalog {
		if option.Slug == normalized {
			return true
		}
	}
	return false
}

// TypeLabel returns the display name for a type slug, or the slug itself when unknown.
func TypeLabel(slug string) string {
	normalized := NormalizeTypeSlug(slug)
	for _, option := range PropertyTypeCatalog {
		if option.Slug == normalized {
			return option.Name
		}
	}
	if slug == "" {
		return "No especificado"
	}
	return slug
}

// StatusLabel returns the display name for a status.
func StatusLabel(status inmobiliaria.Status) string {
	if label, ok := statusLabels[status]; ok {
		return label
	}
	return "Desconocido"
}
