package model

import "time"

// Channel is keyed by its owner's address; an account owns at most one.
type Channel struct {
	Owner         string    `json:"owner"           bson:"_id"`
	Name          string    `json:"name"            bson:"name"`
	Image         string    `json:"image"           bson:"image"`
	Cover         *string   `json:"cover"           bson:"cover"`
	SFollowAmount uint64    `json:"s_follow_amount" bson:"s_follow_amount"`
	CreatedAt     time.Time `json:"created_at"      bson:"created_at"`

	OwnerInfo *Account `json:"owner_info,omitempty" bson:"owner_info,omitempty"`
}
