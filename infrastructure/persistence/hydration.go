package persistence

import (
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
)

// ownerStages expands the owning account and, when present, the owner's
// channel into the document — one level each, applied uniformly to streams
// and videos.
func ownerStages() []bson.D {
	return []bson.D{
		{{Key: "$lookup", Value: bson.D{
			{Key: "from", Value: accountCollection},
			{Key: "localField", Value: "streamer"},
			{Key: "foreignField", Value: "_id"},
			{Key: "as", Value: "owner"},
		}}},
		{{Key: "$set", Value: bson.D{
			{Key: "owner", Value: bson.D{{Key: "$arrayElemAt", Value: bson.A{"$owner", 0}}}},
		}}},
		{{Key: "$lookup", Value: bson.D{
			{Key: "from", Value: channelCollection},
			{Key: "localField", Value: "owner.channel"},
			{Key: "foreignField", Value: "_id"},
			{Key: "as", Value: "owner_channel"},
		}}},
		{{Key: "$set", Value: bson.D{
			{Key: "owner.channel_info", Value: bson.D{{Key: "$arrayElemAt", Value: bson.A{"$owner_channel", 0}}}},
		}}},
		{{Key: "$unset", Value: "owner_channel"}},
	}
}

// channelInfoStages expands an account's channel reference.
func channelInfoStages() []bson.D {
	return []bson.D{
		{{Key: "$lookup", Value: bson.D{
			{Key: "from", Value: channelCollection},
			{Key: "localField", Value: "channel"},
			{Key: "foreignField", Value: "_id"},
			{Key: "as", Value: "channel_docs"},
		}}},
		{{Key: "$set", Value: bson.D{
			{Key: "channel_info", Value: bson.D{{Key: "$arrayElemAt", Value: bson.A{"$channel_docs", 0}}}},
		}}},
		{{Key: "$unset", Value: "channel_docs"}},
	}
}

// ownerInfoStages expands a channel's owning account.
func ownerInfoStages() []bson.D {
	return []bson.D{
		{{Key: "$lookup", Value: bson.D{
			{Key: "from", Value: accountCollection},
			{Key: "localField", Value: "_id"},
			{Key: "foreignField", Value: "_id"},
			{Key: "as", Value: "owner_docs"},
		}}},
		{{Key: "$set", Value: bson.D{
			{Key: "owner_info", Value: bson.D{{Key: "$arrayElemAt", Value: bson.A{"$owner_docs", 0}}}},
		}}},
		{{Key: "$unset", Value: "owner_docs"}},
	}
}

// pagedPipeline assembles match -> sort -> window -> hydration.
func pagedPipeline(match bson.D, sortField string, skip, limit int64, hydration []bson.D) mongo.Pipeline {
	pipeline := mongo.Pipeline{
		bson.D{{Key: "$match", Value: match}},
		bson.D{{Key: "$sort", Value: bson.D{{Key: sortField, Value: -1}}}},
		bson.D{{Key: "$skip", Value: skip}},
		bson.D{{Key: "$limit", Value: limit}},
	}
	return append(pipeline, hydration...)
}

// streamerFilter narrows a listing to one owner; empty means no filter.
func streamerFilter(streamer string) bson.D {
	if streamer == "" {
		return bson.D{}
	}
	return bson.D{{Key: "streamer", Value: streamer}}
}
