package model

import "time"

type Visibility int

const (
	VisibilityEveryone Visibility = iota
	VisibilityFollower
	VisibilitySuperFollower
)

type StreamType int

const (
	StreamTypeDirect StreamType = iota
	StreamTypeExternal
)

// Stream is keyed by its on-chain stream address. StreamServer and StreamKey
// are set only while the stream is live; likes and dislikes are mutually
// exclusive per viewer.
type Stream struct {
	StreamAddress string     `json:"streamAddress" bson:"_id"`
	Streamer      string     `json:"streamer"      bson:"streamer"`
	Name          string     `json:"name"          bson:"name"`
	Description   *string    `json:"description"   bson:"description"`
	Thumbnail     string     `json:"thumbnail"     bson:"thumbnail"`
	ThetaID       *string    `json:"thetaId"       bson:"theta_id"`
	StreamServer  *string    `json:"stream_server" bson:"stream_server"`
	StreamKey     *string    `json:"stream_key"    bson:"stream_key"`
	Tips          bool       `json:"tips"          bson:"tips"`
	Visibility    Visibility `json:"visibility"    bson:"visibility"`
	StreamType    StreamType `json:"streamType"    bson:"stream_type"`
	StartAt       time.Time  `json:"start_at"      bson:"start_at"`
	CreatedAt     time.Time  `json:"created_at"    bson:"created_at"`
	Live          bool       `json:"live"          bson:"live"`
	Viewers       []string   `json:"viewers"       bson:"viewers"`
	Likes         []string   `json:"likes"         bson:"likes"`
	Dislikes      []string   `json:"dislikes"      bson:"dislikes"`

	Owner *Account `json:"owner,omitempty" bson:"owner,omitempty"`
}

// StreamEvent is the fire-and-forget payload submitted to the notifier
// backend when a stream starts or stops.
type StreamEvent struct {
	StreamAddress string `json:"streamAddress"`
	Started       bool   `json:"started"`
}
