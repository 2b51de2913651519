package transformers

import (
	"strings"

	"karttem-admin/pkg/inmobiliaria"
)

func containsFold(value, query string) bool {
	return strings.Contains(strings.ToLower(value), query)
}

func normalizeQuery(q string) string {
	return strings.ToLower(strings.TrimSpace(q))
}

// FilterProperties keeps listings whose title or address contains q (case-insensitive).
func FilterProperties(properties []inmobiliaria.Property, q string) []inmobiliaria.Property {
	q = normalizeQuery(q)
	if q == "" {
		return properties
	}
	filtered := make([]inmobiliaria.Property, 0, len(properties))
	for _, p := range properties {
		if containsFold(p.Title, q) || containsFold(p.Address, q) {
			filtered = append(filtered, p)
		}
	}
	return filtered
}

// FilterOwners keeps owners whose name, email or document number contains q.
func FilterOwners(owners []inmobiliaria.Owner, q string) []inmobiliaria.Owner {
	q = normalizeQuery(q)
	if q == "" {
		return owners
	}
	filtered := make([]inmobiliaria.Owner, 0, len(owners))
	for _, o := range owners {
		if containsFold(o.Name, q) || containsFold(o.Email, q) || containsFold(o.DocumentNumber, q) {
			filtered = append(filtered, o)
		}
	}
	return filtered
}

// FilterUsers keeps users whose first name, last name or email contains q.
func FilterUsers(users []inmobiliaria.User, q string) []inmobiliaria.User {
	q = normalizeQuery(q)
	if q == "" {
		return users
	}
	filtered := make([]inmobiliaria.User, 0, len(users))
	for _, u := range users {
		if containsFold(u.Firstname, q) || containsFold(u.Lastname, q) || containsFold(u.Email, q) {
			filtered = append(filtered, u)
		}
	}
	return filtered
}

// FilterPropertyTypes keeps types whose name or description contains q.
func FilterPropertyTypes(types []inmobiliaria.PropertyType, q string) []inmobiliaria.PropertyType {
	q = normalizeQuery(q)
	if q == "" {
		return types
	}
	filtered := make([]inmobiliaria.PropertyType, 0, len(types))
	for _, pt := range types {
		if containsFold(pt.Name, q) || containsFold(pt.Description, q) {
			filtered = append(filtered, pt)
		}
	}
	return filtered
}
