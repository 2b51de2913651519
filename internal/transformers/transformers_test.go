package transformers

import (
	"testing"
	"time"

	"karttem-admin/pkg/inmobiliaria"

	"github.com/stretchr/testify/assert"
)

func TestFormatNumberES(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{0, "0"},
		{950, "950"},
		{1500, "1.500"},
		{1234567.5, "1.234.567,5"},
		{120000.125, "120.000,125"},
		{-2500, "-2.500"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, FormatNumberES(tt.in))
	}
}

func TestFormatPrice(t *testing.T) {
	assert.Equal(t, "USD $120.000", FormatPrice(&inmobiliaria.Property{PriceUSD: 120000, PriceARS: 5}))
	assert.Equal(t, "$95.000.000", FormatPrice(&inmobiliaria.Property{PriceARS: 95000000}))
	assert.Equal(t, "-", FormatPrice(&inmobiliaria.Property{}))
}

func TestFormatDocument(t *testing.T) {
	assert.Equal(t, "20-12345678-9", FormatDocument("cuil", "20123456789"))
	assert.Equal(t, "20-12345678-9", FormatDocument("cuit", "20.12345678.9"))
	assert.Equal(t, "2012345", FormatDocument("cuit", "2012345"))
	assert.Equal(t, "30123456", FormatDocument("dni", " 30123456 "))
}

func TestLongDateES(t *testing.T) {
	assert.Equal(t, "15 de octubre de 2026", LongDateES(time.Date(2026, 10, 15, 9, 0, 0, 0, time.UTC)))
	assert.Equal(t, "1 de enero de 2025", LongDateES(time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)))
}

func TestTypeCatalog(t *testing.T) {
	assert.True(t, IsKnownType("casa"))
	assert.True(t, IsKnownType("local_comercial"))
	assert.True(t, IsKnownType("Local-Comercial"))
	assert.False(t, IsKnownType("castillo"))
	assert.Equal(t, "Local comercial", TypeLabel("local_comercial"))
	assert.Equal(t, "castillo", TypeLabel("castillo"))
	assert.Equal(t, "No especificado", TypeLabel(""))
}

func TestStatusLabel(t *testing.T) {
	assert.Equal(t, "En Venta", StatusLabel(inmobiliaria.StatusSale))
	assert.Equal(t, "Reservada", StatusLabel(inmobiliaria.StatusReserved))
	assert.Equal(t, "Desconocido", StatusLabel("temporary_rent"))
}

func TestFilterProperties(t *testing.T) {
	properties := []inmobiliaria.Property{
		{ID: "1", Title: "Casa Quinta", Address: "Ruta 9 km 1300"},
		{ID: "2", Title: "Departamento", Address: "Av. Mate de Luna 2000"},
		{ID: "3", Title: "Lote", Address: "Barrio Casas Blancas"},
	}

	got := FilterProperties(properties, "  CASA ")
	assert.Len(t, got, 2)
	assert.Equal(t, inmobiliaria.ID("1"), got[0].ID)
	assert.Equal(t, inmobiliaria.ID("3"), got[1].ID)
	assert.Len(t, FilterProperties(properties, ""), 3)
	assert.Empty(t, FilterProperties(properties, "oficina"))
}

func TestFilterOwnersUsersAndTypes(t *testing.T) {
	owners := []inmobiliaria.Owner{
		{Name: "Juan Gómez", Email: "juan@example.com", DocumentNumber: "30123456"},
		{Name: "Inmo SA", DocumentNumber: "30-71234567-1"},
	}
	assert.Len(t, FilterOwners(owners, "3012"), 1)
	assert.Len(t, FilterOwners(owners, "30"), 2)

	users := []inmobiliaria.User{{Firstname: "Ana", Lastname: "Pérez", Email: "ana@example.com"}, {Firstname: "Luis", Lastname: "Díaz"}}
	assert.Len(t, FilterUsers(users, "pérez"), 1)

	types := []inmobiliaria.PropertyType{{Name: "Casa"}, {Name: "Quinta", Description: "Casa de fin de semana"}}
	assert.Len(t, FilterPropertyTypes(types, "casa"), 2)
}

func TestToRowAndMostRecent(t *testing.T) {
	transformer := NewPropertyTransformer()
	row := transformer.ToRow(inmobiliaria.Property{
		ID:       "4",
		Type:     "galpon",
		Status:   inmobiliaria.StatusSold,
		PriceARS: 1500,
		Images:   []inmobiliaria.Image{{ID: "8", URL: "/a.jpg"}, {ID: "9", URL: "/b.jpg", IsMain: true}},
	})
	assert.Equal(t, "Galpón", row.TypeLabel)
	assert.Equal(t, "Vendida", row.StatusLabel)
	assert.Equal(t, "$1.500", row.PriceDisplay)
	assert.Equal(t, "/b.jpg", row.MainImageURL)

	properties := []inmobiliaria.Property{{ID: "2"}, {ID: "10"}, {ID: "7"}}
	recent := MostRecent(properties, 2)
	assert.Equal(t, []inmobiliaria.ID{"10", "7"}, []inmobiliaria.ID{recent[0].ID, recent[1].ID})
	assert.Equal(t, inmobiliaria.ID("2"), properties[0].ID)
}
