package listingsheet

import "karttem-admin/pkg/inmobiliaria"

type feature struct {
	label   string
	enabled func(p *inmobiliaria.Property) bool
}

var services = []feature{
	{"Electricidad", func(p *inmobiliaria.Property) bool { return bool(p.HasElectricity) }},
	{"Gas Natural", func(p *inmobiliaria.Property) bool { return bool(p.HasNaturalGas) }},
	{"Cloacas", func(p *inmobiliaria.Property) bool { return bool(p.HasSewage) }},
	{"Calle Asfaltada", func(p *inmobiliaria.Property) bool { return bool(p.HasPavedStreet) }},
	{"Cochera", func(p *inmobiliaria.Property) bool { return bool(p.Garage) }},
}

var amenities = []feature{
	{"Piscina", func(p *inmobiliaria.Property) bool { return bool(p.Amenities.HasPool) }},
	{"Calefacción", func(p *inmobiliaria.Property) bool { return bool(p.Amenities.HasHeating) }},
	{"Aire Acondicionado", func(p *inmobiliaria.Property) bool { return bool(p.Amenities.HasAC) }},
	{"Jardín", func(p *inmobiliaria.Property) bool { return bool(p.Amenities.HasGarden) }},
	{"Lavandería", func(p *inmobiliaria.Property) bool { return bool(p.Amenities.HasLaundry) }},
	{"Estacionamiento", func(p *inmobiliaria.Property) bool { return bool(p.Amenities.HasParking) }},
	{"Calefacción Central", func(p *inmobiliaria.Property) bool { return bool(p.Amenities.HasCentralHeating) }},
	{"Césped", func(p *inmobiliaria.Property) bool { return bool(p.Amenities.HasLawn) }},
	{"Chimenea", func(p *inmobiliaria.Property) bool { return bool(p.Amenities.HasFireplace) }},
	{"Refrigeración Central", func(p *inmobiliaria.Property) bool { return bool(p.Amenities.HasCentralAC) }},
	{"Techos Altos", func(p *inmobiliaria.Property) bool { return bool(p.Amenities.HasHighCeiling) }},
}

// Services lists the labels of the services the property has.
func Services(p *inmobiliaria.Property) []string {
	return enabled(services, p)
}

// Amenities lists the labels of the amenities the property has.
func Amenities(p *inmobiliaria.Property) []string {
	return enabled(amenities, p)
}

func enabled(features []feature, p *inmobiliaria.Property) []string {
	var labels []string
	for _, f := range features {
		if f.enabled(p) {
			labels = append(labels, f.label)
		}
	}
	return labels
}
