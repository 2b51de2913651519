package utils

import (
	"fmt"
	"net/url"

	"karttem-admin/internal/models"
)

const (
	DefaultPageLimit = 10
	MaxPageLimit     = 100
)

func BuildPaginationURL(baseURL string, offset, limit int, params url.Values) string {
	u, err := url.Parse(baseURL)
	if err != nil {
		u = &url.URL{Path: baseURL}
	}
	q := url.Values{}
	q.Set("offset", fmt.Sprintf("%d", offset))
	q.Set("limit", fmt.Sprintf("%d", limit))
	for key, values := range params {
		if key != "offset" && key != "limit" {
			for _, value := range values {
				q.Add(key, value)
			}
		}
	}
	u.RawQuery = q.Encode()
	return u.String()
}

// Paginate slices items to one page and builds the page links.
func Paginate[T any](items []T, offset, limit int, baseURL string, params url.Values) ([]T, *models.PaginationMeta) {
	if limit <= 0 || limit > MaxPageLimit {
		limit = DefaultPageLimit
	}
	if offset < 0 {
		offset = 0
	}

	total := len(items)
	meta := &models.PaginationMeta{
		Total:  int64(total),
		Offset: offset,
		Limit:  limit,
	}
	if offset+limit < total {
		nextURL := BuildPaginationURL(baseURL, offset+limit, limit, params)
		meta.Next = &nextURL
	}
	if offset > 0 {
		prevOffset := offset - limit
		if prevOffset < 0 {
			prevOffset = 0
		}
		prevURL := BuildPaginationURL(baseURL, prevOffset, limit, params)
		meta.Prev = &prevURL
	}

	if offset >= total {
		return []T{}, meta
	}
	end := offset + limit
	if end > total {
		end = total
	}
	return items[offset:end], meta
}
