package models

type OwnerRequest struct {
	Name           string `json:"name" form:"name"`
	DocumentType   string `json:"document_type" form:"document_type"`
	DocumentNumber string `json:"document_number" form:"document_number"`
	Email          string `json:"email" form:"email"`
	Phone          string `json:"phone" form:"phone"`
	Address        string `json:"address" form:"address"`
	City           string `json:"city" form:"city"`
	Province       string `json:"province" form:"province"`
	IsCompany      bool   `json:"is_company" form:"is_company"`
	Notes          string `json:"notes" form:"notes"`
}
