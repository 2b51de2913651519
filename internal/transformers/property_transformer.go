package transformers

import (
	"sort"
	"strconv"

	"karttem-admin/internal/models"
	"karttem-admin/pkg/inmobiliaria"
)

type propertyTransformer struct{}

func NewPropertyTransformer() PropertyTransformer {
	return &propertyTransformer{}
}

func (t *propertyTransformer) ToRow(property inmobiliaria.Property) models.PropertyRow {
	row := models.PropertyRow{
		Property:     property,
		TypeLabel:    TypeLabel(property.Type),
		StatusLabel:  StatusLabel(property.Status),
		PriceDisplay: FormatPrice(&property),
	}
	if img := property.MainImage(); img != nil {
		row.MainImageURL = img.URL
	}
	return row
}

func (t *propertyTransformer) ToRows(properties []inmobiliaria.Property) []models.PropertyRow {
	rows := make([]models.PropertyRow, 0, len(properties))
	for _, property := range properties {
		rows = append(rows, t.ToRow(property))
	}
	return rows
}

// MostRecent returns up to n listings, newest first by creation date and then by numeric ID.
func MostRecent(properties []inmobiliaria.Property, n int) []inmobiliaria.Property {
	sorted := make([]inmobiliaria.Property, len(properties))
	copy(sorted, properties)
	sort.SliceStable(sorted, func(i, j int) bool {
		if sorted[i].CreatedAt != sorted[j].CreatedAt {
			return sorted[i].CreatedAt > sorted[j].CreatedAt
		}
		return numericID(sorted[i].ID) > numericID(sorted[j].ID)
	})
	if len(sorted) > n {
		sorted = sorted[:n]
	}
	return sorted
}

func numericID(id inmobiliaria.ID) int64 {
	n, err := strconv.ParseInt(id.String(), 10, 64)
	if err != nil {
		return 0
	}
	return n
}
