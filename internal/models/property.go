package models

import "karttem-admin/pkg/inmobiliaria"

// PropertyRow is a listing with the display fields the tables need.
type PropertyRow struct {
	inmobiliaria.Property
	TypeLabel    string `json:"type_label"`
	StatusLabel  string `json:"status_label"`
	PriceDisplay string `json:"price_display"`
	MainImageURL string `json:"main_image_url,omitempty"`
}

// ImageUpload is an image received from the panel form.
type ImageUpload struct {
	Filename    string
	ContentType string
	Data        []byte
	IsMain      bool
}

// PropertyInput is the raw property form before validation.
type PropertyInput struct {
	Title       string
	Description string
	Type        string
	Status      string

	PriceARS    string
	PriceUSD    string
	CoveredArea string
	TotalArea   string
	Bedrooms    string
	Bathrooms   string

	Garage         bool
	Featured       bool
	HasElectricity bool
	HasNaturalGas  bool
	HasSewage      bool
	HasPavedStreet bool
	Amenities      map[string]bool

	Address   string
	City      string
	Province  string
	Latitude  string
	Longitude string

	OwnerID     string
	MainImageID string
	Images      []ImageUpload
}

type StatusRequest struct {
	Status string `json:"status" form:"status"`
}

type PropertyListQuery struct {
	Query  string `form:"q"`
	Status string `form:"status"`
	Offset int    `form:"offset"`
	Limit  int    `form:"limit"`
}

// DashboardData is the summary shown on the home page.
type DashboardData struct {
	Total    int            `json:"total"`
	Counts   map[string]int `json:"counts"`
	Recent   []PropertyRow  `json:"recent"`
	Activity []Activity     `json:"activity"`
}
