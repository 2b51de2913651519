package transformers

import (
	"karttem-admin/internal/models"
	"karttem-admin/pkg/inmobiliaria"
)

type PropertyTransformer interface {
	ToRow(property inmobiliaria.Property) models.PropertyRow
	ToRows(properties []inmobiliaria.Property) []models.PropertyRow
}
