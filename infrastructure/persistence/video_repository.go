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

type VideoRepository struct {
	client     *mongo.Client
	collection *mongo.Collection
	accounts   *mongo.Collection
}

func NewVideoRepository(client *mongo.Client, dbName string) repository.IVideo {
	db := client.Database(dbName)
	return &VideoRepository{
		client:     client,
		collection: db.Collection(videoCollection),
		accounts:   db.Collection(accountCollection),
	}
}

func (r *VideoRepository) Exists(ctx context.Context, videoAddress string) (bool, error) {
	count, err := r.collection.CountDocuments(ctx, idFilter(videoAddress), options.Count().SetLimit(1))
	if err != nil {
		logger.GetLogger().WithField("error", err).Error("Error while checking video existence")
		return false, err
	}
	return count > 0, nil
}

// Create registers the video on the streamer's account and inserts the video
// record inside one session transaction.
func (r *VideoRepository) Create(ctx context.Context, video model.Video) error {
	session, err := r.client.StartSession()
	if err != nil {
		logger.GetLogger().WithField("error", err).Error("Error while starting session")
		return err
	}
	defer session.EndSession(ctx)

	_, err = session.WithTransaction(ctx, func(ctx context.Context) (interface{}, error) {
		if _, err := r.accounts.UpdateOne(ctx, idFilter(video.Streamer), ownedVideoUpdate(video.VideoAddress)); err != nil {
			return nil, err
		}
		_, err := r.collection.InsertOne(ctx, video)
		return nil, err
	})
	if err != nil {
		logger.GetLogger().WithField("error", err).Error("Error while creating video")
	}
	return err
}

func (r *VideoRepository) GetByAddress(ctx context.Context, videoAddress string) (*model.Video, error) {
	pipeline := append(mongo.Pipeline{
		bson.D{{Key: "$match", Value: idFilter(videoAddress)}},
		bson.D{{Key: "$limit", Value: 1}},
	}, ownerStages()...)

	cursor, err := r.collection.Aggregate(ctx, pipeline)
	if err != nil {
		logger.GetLogger().WithField("error", err).Error("Error while fetching video")
		return nil, err
	}

	var videos []model.Video
	if err := cursor.All(ctx, &videos); err != nil {
		logger.GetLogger().WithField("error", err).Error("Error while decoding video")
		return nil, err
	}
	if len(videos) == 0 {
		return nil, nil
	}
	return &videos[0], nil
}

func (r *VideoRepository) Find(ctx context.Context, streamer string, page repository.Page) ([]model.Video, error) {
	pipeline := pagedPipeline(streamerFilter(streamer), "created_at", page.Skip, page.Limit, ownerStages())

	cursor, err := r.collection.Aggregate(ctx, pipeline)
	if err != nil {
		logger.GetLogger().WithField("error", err).Error("Error while listing videos")
		return nil, err
	}

	videos := []model.Video{}
	if err := cursor.All(ctx, &videos); err != nil {
		logger.GetLogger().WithField("error", err).Error("Error while decoding videos")
		return nil, err
	}
	return videos, nil
}

func (r *VideoRepository) Count(ctx context.Context, streamer string) (int64, error) {
	count, err := r.collection.CountDocuments(ctx, streamerFilter(streamer))
	if err != nil {
		logger.GetLogger().WithField("error", err).Error("Error while counting videos")
		return 0, err
	}
	return count, nil
}

func (r *VideoRepository) React(ctx context.Context, videoAddress, viewer string, like bool) error {
	if _, err := r.collection.UpdateOne(ctx, idFilter(videoAddress), reactionUpdate(viewer, like)); err != nil {
		logger.GetLogger().WithField("error", err).Error("Error while reacting to video")
		return err
	}
	return nil
}

func (r *VideoRepository) Watch(ctx context.Context, videoAddress, viewer string) error {
	if _, err := r.collection.UpdateOne(ctx, idFilter(videoAddress), watchUpdate(viewer)); err != nil {
		logger.GetLogger().WithField("error", err).Error("Error while counting view")
		return err
	}
	return nil
}

// watchUpdate always bumps the counter; only an identified viewer is recorded
// in the viewer set, and both happen in the same atomic update.
func watchUpdate(viewer string) bson.D {
	update := bson.D{{Key: "$inc", Value: bson.D{{Key: "views", Value: 1}}}}
	if viewer != "" {
		update = append(update, bson.E{Key: "$addToSet", Value: bson.D{{Key: "viewers", Value: viewer}}})
	}
	return update
}

func ownedVideoUpdate(videoAddress string) bson.D {
	return bson.D{{Key: "$addToSet", Value: bson.D{{Key: "videos", Value: videoAddress}}}}
}
