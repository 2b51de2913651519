package cache

import (
	"fmt"
	"strings"
)

const propertyListPrefix = "properties:list:"

// cache key for a stored session.
func SessionKey(id string) string {
	return fmt.Sprintf("session:%s", id)
}

// cache key for a property list in the given scope (all, a status, inactive).
func PropertyListKey(scope string) string {
	return propertyListPrefix + normalizeScope(scope)
}

// set holding every cached property list key, used for invalidation.
func PropertyListIndexKey() string {
	return "properties:keys"
}

func normalizeScope(scope string) string {
	scope = strings.ToLower(strings.TrimSpace(scope))
	if scope == "" {
		return "all"
	}
	return scope
}
