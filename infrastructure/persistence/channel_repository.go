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

type ChannelRepository struct {
	client     *mongo.Client
	collection *mongo.Collection
	accounts   *mongo.Collection
}

func NewChannelRepository(client *mongo.Client, dbName string) repository.IChannel {
	db := client.Database(dbName)
	return &ChannelRepository{
		client:     client,
		collection: db.Collection(channelCollection),
		accounts:   db.Collection(accountCollection),
	}
}

func (r *ChannelRepository) Exists(ctx context.Context, owner string) (bool, error) {
	count, err := r.collection.CountDocuments(ctx, idFilter(owner), options.Count().SetLimit(1))
	if err != nil {
		logger.GetLogger().WithField("error", err).Error("Error while checking channel existence")
		return false, err
	}
	return count > 0, nil
}

// Create stamps the owner account with the channel back-reference and inserts
// the channel inside one session transaction, so a failed insert never leaves
// an orphaned reference behind.
func (r *ChannelRepository) Create(ctx context.Context, channel model.Channel) error {
	session, err := r.client.StartSession()
	if err != nil {
		logger.GetLogger().WithField("error", err).Error("Error while starting session")
		return err
	}
	defer session.EndSession(ctx)

	_, err = session.WithTransaction(ctx, func(ctx context.Context) (interface{}, error) {
		if _, err := r.accounts.UpdateOne(ctx, idFilter(channel.Owner), channelRefUpdate(channel.Owner)); err != nil {
			return nil, err
		}
		_, err := r.collection.InsertOne(ctx, channel)
		return nil, err
	})
	if err != nil {
		logger.GetLogger().WithField("error", err).Error("Error while creating channel")
	}
	return err
}

func (r *ChannelRepository) GetByOwner(ctx context.Context, owner string) (*model.Channel, error) {
	pipeline := append(mongo.Pipeline{
		bson.D{{Key: "$match", Value: idFilter(owner)}},
		bson.D{{Key: "$limit", Value: 1}},
	}, ownerInfoStages()...)

	cursor, err := r.collection.Aggregate(ctx, pipeline)
	if err != nil {
		logger.GetLogger().WithField("error", err).Error("Error while fetching channel")
		return nil, err
	}

	var channels []model.Channel
	if err := cursor.All(ctx, &channels); err != nil {
		logger.GetLogger().WithField("error", err).Error("Error while decoding channel")
		return nil, err
	}
	if len(channels) == 0 {
		return nil, nil
	}
	return &channels[0], nil
}

func (r *ChannelRepository) Find(ctx context.Context, page repository.Page) ([]model.Channel, error) {
	pipeline := pagedPipeline(bson.D{}, "created_at", page.Skip, page.Limit, ownerInfoStages())

	cursor, err := r.collection.Aggregate(ctx, pipeline)
	if err != nil {
		logger.GetLogger().WithField("error", err).Error("Error while listing channels")
		return nil, err
	}

	channels := []model.Channel{}
	if err := cursor.All(ctx, &channels); err != nil {
		logger.GetLogger().WithField("error", err).Error("Error while decoding channels")
		return nil, err
	}
	return channels, nil
}

func (r *ChannelRepository) Count(ctx context.Context) (int64, error) {
	count, err := r.collection.CountDocuments(ctx, bson.D{})
	if err != nil {
		logger.GetLogger().WithField("error", err).Error("Error while counting channels")
		return 0, err
	}
	return count, nil
}

func channelRefUpdate(owner string) bson.D {
	return bson.D{{Key: "$set", Value: bson.D{{Key: "channel", Value: owner}}}}
}
