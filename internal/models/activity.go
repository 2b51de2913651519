package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	ActionCreate       = "create"
	ActionUpdate       = "update"
	ActionDelete       = "delete"
	ActionStatusChange = "status_change"
	ActionActivate     = "activate"
	ActionDeactivate   = "deactivate"
	ActionLogin        = "login"
	ActionLogout       = "logout"
)

const (
	EntityProperty     = "property"
	EntityOwner        = "owner"
	EntityUser         = "user"
	EntityPropertyType = "property_type"
	EntitySession      = "session"
)

// Activity is one entry of the admin audit trail.
type Activity struct {
	ID        primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	UserID    string             `json:"user_id" bson:"user_id"`
	UserEmail string             `json:"user_email" bson:"user_email"`
	Action    string             `json:"action" bson:"action"`
	Entity    string             `json:"entity" bson:"entity"`
	EntityID  string             `json:"entity_id,omitempty" bson:"entity_id,omitempty"`
	Summary   string             `json:"summary" bson:"summary"`
	CreatedAt time.Time          `json:"created_at" bson:"created_at"`
}
