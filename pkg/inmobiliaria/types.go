package inmobiliaria

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// ID is a resource identifier. The backend sends it as a JSON number or a string.
type ID string

func (id *ID) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) == 0 || string(b) == "null" {
		*id = ""
		return nil
	}
	if b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*id = ID(strings.TrimSpace(s))
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(b, &n); err != nil {
		return fmt.Errorf("invalid id %s: %w", string(b), err)
	}
	*id = ID(n.String())
	return nil
}

func (id ID) String() string { return string(id) }

// Flag is a boolean the backend may encode as true/false, 1/0 or "1"/"0".
type Flag bool

func (f *Flag) UnmarshalJSON(b []byte) error {
	s := strings.Trim(strings.TrimSpace(string(b)), `"`)
	switch strings.ToLower(s) {
	case "true", "1", "yes", "si", "sí":
		*f = true
	case "false", "0", "", "null", "no":
		*f = false
	default:
		return fmt.Errorf("invalid boolean %s", string(b))
	}
	return nil
}

// Amount is a decimal value that may arrive as a number, a numeric string or null.
type Amount float64

func (a *Amount) UnmarshalJSON(b []byte) error {
	v, err := looseNumber(b)
	if err != nil {
		return err
	}
	*a = Amount(v)
	return nil
}

// Count is an integer that may arrive as a number, a numeric string or null.
type Count int

func (c *Count) UnmarshalJSON(b []byte) error {
	v, err := looseNumber(b)
	if err != nil {
		return err
	}
	*c = Count(int(v))
	return nil
}

func looseNumber(b []byte) (float64, error) {
	s := strings.Trim(strings.TrimSpace(string(b)), `"`)
	s = strings.TrimSpace(s)
	if s == "" || s == "null" {
		return 0, nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid number %s: %w", string(b), err)
	}
	return v, nil
}

// Status is the commercial status of a listing.
type Status string

const (
	StatusSale     Status = "sale"
	StatusRent     Status = "rent"
	StatusRented   Status = "rented"
	StatusSold     Status = "sold"
	StatusReserved Status = "reserved"
)

// Statuses lists every status in display order.
var Statuses = []Status{StatusSale, StatusRent, StatusRented, StatusSold, StatusReserved}

// Valid reports whether s is one of the known statuses.
func (s Status) Valid() bool {
	for _, known := range Statuses {
		if s == known {
			return true
		}
	}
	return false
}

// Amenities are the optional features of a listing. The backend sends them
// as an object or as a JSON-encoded string of that object.
type Amenities struct {
	HasPool           Flag `json:"has_pool"`
	HasHeating        Flag `json:"has_heating"`
	HasAC             Flag `json:"has_ac"`
	HasGarden         Flag `json:"has_garden"`
	HasLaundry        Flag `json:"has_laundry"`
	HasParking        Flag `json:"has_parking"`
	HasCentralHeating Flag `json:"has_central_heating"`
	HasLawn           Flag `json:"has_lawn"`
	HasFireplace      Flag `json:"has_fireplace"`
	HasCentralAC      Flag `json:"has_central_ac"`
	HasHighCeiling    Flag `json:"has_high_ceiling"`
}

func (a *Amenities) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) == 0 || string(b) == "null" {
		return nil
	}
	if b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		s = strings.TrimSpace(s)
		if s == "" || s == "null" {
			return nil
		}
		b = []byte(s)
	}
	type alias Amenities
	if err := json.Unmarshal(b, (*alias)(a)); err != nil {
		return fmt.Errorf("invalid amenities: %w", err)
	}
	return nil
}

// Image is a picture attached to a listing.
type Image struct {
	ID     ID     `json:"id"`
	URL    string `json:"url"`
	IsMain Flag   `json:"is_main"`
}

// Property is a listing as the backend returns it.
type Property struct {
	ID          ID     `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Type        string `json:"type"`
	Status      Status `json:"status"`
	Active      *Flag  `json:"active,omitempty"`

	PriceARS Amount `json:"price_ars"`
	PriceUSD Amount `json:"price_usd"`

	CoveredArea Amount `json:"covered_area"`
	TotalArea   Amount `json:"total_area"`
	Bedrooms    Count  `json:"bedrooms"`
	Bathrooms   Count  `json:"bathrooms"`
	Garage      Flag   `json:"garage"`
	Featured    Flag   `json:"featured"`

	HasElectricity Flag `json:"has_electricity"`
	HasNaturalGas  Flag `json:"has_natural_gas"`
	HasSewage      Flag `json:"has_sewage"`
	HasPavedStreet Flag `json:"has_paved_street"`

	Amenities Amenities `json:"amenities"`

	Address   string `json:"address"`
	City      string `json:"city"`
	Province  string `json:"province"`
	Latitude  Amount `json:"latitude"`
	Longitude Amount `json:"longitude"`

	OwnerID ID     `json:"owner_id"`
	Owner   *Owner `json:"owner,omitempty"`

	Images    []Image `json:"images"`
	CreatedAt string  `json:"created_at,omitempty"`
	UpdatedAt string  `json:"updated_at,omitempty"`
}

// HasLocation reports whether both coordinates are set.
func (p *Property) HasLocation() bool {
	return p.Latitude != 0 && p.Longitude != 0
}

// MainImage returns the image flagged as main, falling back to the first image.
func (p *Property) MainImage() *Image {
	for i := range p.Images {
		if p.Images[i].IsMain {
			return &p.Images[i]
		}
	}
	if len(p.Images) > 0 {
		return &p.Images[0]
	}
	return nil
}

// Owner is a property owner.
type Owner struct {
	ID             ID     `json:"id,omitempty"`
	Name           string `json:"name"`
	DocumentType   string `json:"document_type"`
	DocumentNumber string `json:"document_number"`
	Email          string `json:"email"`
	Phone          string `json:"phone"`
	Address        string `json:"address"`
	City           string `json:"city"`
	Province       string `json:"province"`
	IsCompany      Flag   `json:"is_company"`
	Notes          string `json:"notes"`
}

// UnmarshalJSON folds the legacy "_id" field into ID.
func (o *Owner) UnmarshalJSON(b []byte) error {
	type alias Owner
	aux := struct {
		*alias
		LegacyID ID `json:"_id"`
	}{alias: (*alias)(o)}
	if err := json.Unmarshal(b, &aux); err != nil {
		return err
	}
	if o.ID == "" {
		o.ID = aux.LegacyID
	}
	return nil
}

// User is a panel account managed by the backend.
type User struct {
	ID        ID     `json:"id,omitempty"`
	Email     string `json:"email"`
	Firstname string `json:"firstname"`
	Lastname  string `json:"lastname"`
	Password  string `json:"password,omitempty"`
}

// FullName joins first and last name.
func (u *User) FullName() string {
	return strings.TrimSpace(u.Firstname + " " + u.Lastname)
}

// PropertyType is an entry of the backend's property type catalog.
type PropertyType struct {
	ID          ID     `json:"id,omitempty"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Active      Flag   `json:"active"`
}
