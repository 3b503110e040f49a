package persistence

import (
	"context"

	"enthro-backend/domain/model"
	"enthro-backend/domain/repository"
	"enthro-backend/infrastructure/logger"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

type StreamRepository struct {
	client     *mongo.Client
	collection *mongo.Collection
	accounts   *mongo.Collection
}

func NewStreamRepository(client *mongo.Client, dbName string) repository.IStream {
	db := client.Database(dbName)
	return &StreamRepository{
		client:     client,
		collection: db.Collection(streamCollection),
		accounts:   db.Collection(accountCollection),
	}
}

func (r *StreamRepository) Exists(ctx context.Context, streamAddress string) (bool, error) {
	count, err := r.collection.CountDocuments(ctx, idFilter(streamAddress), options.Count().SetLimit(1))
	if err != nil {
		logger.GetLogger().WithField("error", err).Error("Error while checking stream existence")
		return false, err
	}
	return count > 0, nil
}

// Create registers the stream on the streamer's account and inserts the
// stream record inside one session transaction.
func (r *StreamRepository) Create(ctx context.Context, stream model.Stream) error {
	session, err := r.client.StartSession()
	if err != nil {
		logger.GetLogger().WithField("error", err).Error("Error while starting session")
		return err
	}
	defer session.EndSession(ctx)

	_, err = session.WithTransaction(ctx, func(ctx context.Context) (interface{}, error) {
		if _, err := r.accounts.UpdateOne(ctx, idFilter(stream.Streamer), ownedStreamUpdate(stream.StreamAddress)); err != nil {
			return nil, err
		}
		_, err := r.collection.InsertOne(ctx, stream)
		return nil, err
	})
	if err != nil {
		logger.GetLogger().WithField("error", err).Error("Error while creating stream")
	}
	return err
}

func (r *StreamRepository) GetByAddress(ctx context.Context, streamAddress string) (*model.Stream, error) {
	pipeline := append(mongo.Pipeline{
		bson.D{{Key: "$match", Value: idFilter(streamAddress)}},
		bson.D{{Key: "$limit", Value: 1}},
	}, ownerStages()...)

	cursor, err := r.collection.Aggregate(ctx, pipeline)
	if err != nil {
		logger.GetLogger().WithField("error", err).Error("Error while fetching stream")
		return nil, err
	}

	var streams []model.Stream
	if err := cursor.All(ctx, &streams); err != nil {
		logger.GetLogger().WithField("error", err).Error("Error while decoding stream")
		return nil, err
	}
	if len(streams) == 0 {
		return nil, nil
	}
	return &streams[0], nil
}

func (r *StreamRepository) Find(ctx context.Context, streamer string, page repository.Page) ([]model.Stream, error) {
	pipeline := pagedPipeline(streamerFilter(streamer), "start_at", page.Skip, page.Limit, ownerStages())

	cursor, err := r.collection.Aggregate(ctx, pipeline)
	if err != nil {
		logger.GetLogger().WithField("error", err).Error("Error while listing streams")
		return nil, err
	}

	streams := []model.Stream{}
	if err := cursor.All(ctx, &streams); err != nil {
		logger.GetLogger().WithField("error", err).Error("Error while decoding streams")
		return nil, err
	}
	return streams, nil
}

func (r *StreamRepository) Count(ctx context.Context, streamer string) (int64, error) {
	count, err := r.collection.CountDocuments(ctx, streamerFilter(streamer))
	if err != nil {
		logger.GetLogger().WithField("error", err).Error("Error while counting streams")
		return 0, err
	}
	return count, nil
}

// Start and End are conditional updates guarded by the current live state; an
// attempt from the wrong state matches no document and is a no-op.
func (r *StreamRepository) Start(ctx context.Context, streamAddress, server, key string) error {
	if _, err := r.collection.UpdateOne(ctx, offlineFilter(streamAddress), goLiveUpdate(server, key)); err != nil {
		logger.GetLogger().WithField("error", err).Error("Error while starting stream")
		return err
	}
	return nil
}

func (r *StreamRepository) End(ctx context.Context, streamAddress string) error {
	if _, err := r.collection.UpdateOne(ctx, liveFilter(streamAddress), goOfflineUpdate()); err != nil {
		logger.GetLogger().WithField("error", err).Error("Error while ending stream")
		return err
	}
	return nil
}

func (r *StreamRepository) AddViewer(ctx context.Context, streamAddress, viewer string) error {
	if _, err := r.collection.UpdateOne(ctx, liveFilter(streamAddress), joinUpdate(viewer)); err != nil {
		logger.GetLogger().WithField("error", err).Error("Error while adding viewer")
		return err
	}
	return nil
}

func (r *StreamRepository) React(ctx context.Context, streamAddress, viewer string, like bool) error {
	if _, err := r.collection.UpdateOne(ctx, liveFilter(streamAddress), reactionUpdate(viewer, like)); err != nil {
		logger.GetLogger().WithField("error", err).Error("Error while reacting to stream")
		return err
	}
	return nil
}

func liveFilter(streamAddress string) bson.D {
	return bson.D{{Key: "_id", Value: streamAddress}, {Key: "live", Value: true}}
}

func offlineFilter(streamAddress string) bson.D {
	return bson.D{{Key: "_id", Value: streamAddress}, {Key: "live", Value: false}}
}

func goLiveUpdate(server, key string) bson.D {
	return bson.D{{Key: "$set", Value: bson.D{
		{Key: "stream_server", Value: server},
		{Key: "stream_key", Value: key},
		{Key: "live", Value: true},
	}}}
}

func goOfflineUpdate() bson.D {
	return bson.D{{Key: "$set", Value: bson.D{
		{Key: "stream_server", Value: nil},
		{Key: "stream_key", Value: nil},
		{Key: "live", Value: false},
	}}}
}

func joinUpdate(viewer string) bson.D {
	return bson.D{{Key: "$addToSet", Value: bson.D{{Key: "viewers", Value: viewer}}}}
}

// reactionUpdate adds the viewer to the chosen set and pulls it from the
// opposite one in the same update, keeping the two sets mutually exclusive
// even under concurrent toggles.
func reactionUpdate(viewer string, like bool) bson.D {
	target, opposite := "likes", "dislikes"
	if !like {
		target, opposite = "dislikes", "likes"
	}
	return bson.D{
		{Key: "$addToSet", Value: bson.D{{Key: target, Value: viewer}}},
		{Key: "$pull", Value: bson.D{{Key: opposite, Value: viewer}}},
	}
}

func ownedStreamUpdate(streamAddress string) bson.D {
	return bson.D{{Key: "$addToSet", Value: bson.D{{Key: "streams", Value: streamAddress}}}}
}
