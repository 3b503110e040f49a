package model

import "time"

// Video is keyed by its on-chain video address. Views counts every playback,
// identified or anonymous; Viewers records identified watchers only.
type Video struct {
	VideoAddress string     `json:"videoAddress" bson:"_id"`
	Streamer     string     `json:"streamer"     bson:"streamer"`
	Name         string     `json:"name"         bson:"name"`
	Description  *string    `json:"description"  bson:"description"`
	Thumbnail    string     `json:"thumbnail"    bson:"thumbnail"`
	ThetaID      *string    `json:"thetaId"      bson:"theta_id"`
	Tips         bool       `json:"tips"         bson:"tips"`
	Visibility   Visibility `json:"visibility"   bson:"visibility"`
	Duration     int64      `json:"duration"     bson:"duration"`
	CreatedAt    time.Time  `json:"created_at"   bson:"created_at"`
	Views        int64      `json:"views"        bson:"views"`
	Viewers      []string   `json:"viewers"      bson:"viewers"`
	Likes        []string   `json:"likes"        bson:"likes"`
	Dislikes     []string   `json:"dislikes"     bson:"dislikes"`

	Owner *Account `json:"owner,omitempty" bson:"owner,omitempty"`
}
