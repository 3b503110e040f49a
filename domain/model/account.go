package model

import "time"

// Account is keyed by the wallet address. Addresses are always stored in
// their lowercase canonical form; the HTTP layer normalizes before calling in.
type Account struct {
	Address   string    `json:"address"    bson:"_id"`
	Name      string    `json:"name"       bson:"name"`
	Email     *string   `json:"email"      bson:"email"`
	Image     *string   `json:"image"      bson:"image"`
	Followers []string  `json:"followers"  bson:"followers"`
	Channel   *string   `json:"channel"    bson:"channel"`
	Videos    []string  `json:"videos"     bson:"videos"`
	Streams   []string  `json:"streams"    bson:"streams"`
	CreatedAt time.Time `json:"created_at" bson:"created_at"`

	// ChannelInfo is filled in by the lookup hydration stage, never stored.
	ChannelInfo *Channel `json:"channel_info,omitempty" bson:"channel_info,omitempty"`
}
