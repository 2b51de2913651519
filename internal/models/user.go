package models

type UserRequest struct {
	Email     string `json:"email" form:"email"`
	Firstname string `json:"firstname" form:"firstname"`
	Lastname  string `json:"lastname" form:"lastname"`
	Password  string `json:"password" form:"password"`
}
