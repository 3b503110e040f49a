package persistence

import (
	"context"
	"errors"

	"enthro-backend/domain/model"
	"enthro-backend/domain/repository"
	"enthro-backend/infrastructure/logger"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

type AccountRepository struct {
	collection *mongo.Collection
}

func NewAccountRepository(client *mongo.Client, dbName string) repository.IAccount {
	return &AccountRepository{
		collection: client.Database(dbName).Collection(accountCollection),
	}
}

func (r *AccountRepository) Exists(ctx context.Context, address string) (bool, error) {
	count, err := r.collection.CountDocuments(ctx, idFilter(address), options.Count().SetLimit(1))
	if err != nil {
		logger.GetLogger().WithField("error", err).Error("Error while checking account existence")
		return false, err
	}
	return count > 0, nil
}

func (r *AccountRepository) Insert(ctx context.Context, account model.Account) error {
	if _, err := r.collection.InsertOne(ctx, account); err != nil {
		logger.GetLogger().WithField("error", err).Error("Error while inserting account")
		return err
	}
	return nil
}

func (r *AccountRepository) GetByAddress(ctx context.Context, address string) (*model.Account, error) {
	pipeline := append(mongo.Pipeline{
		bson.D{{Key: "$match", Value: idFilter(address)}},
		bson.D{{Key: "$limit", Value: 1}},
	}, channelInfoStages()...)

	cursor, err := r.collection.Aggregate(ctx, pipeline)
	if err != nil {
		logger.GetLogger().WithField("error", err).Error("Error while fetching account")
		return nil, err
	}

	var accounts []model.Account
	if err := cursor.All(ctx, &accounts); err != nil {
		logger.GetLogger().WithField("error", err).Error("Error while decoding account")
		return nil, err
	}
	if len(accounts) == 0 {
		return nil, nil
	}
	return &accounts[0], nil
}

func (r *AccountRepository) AddFollower(ctx context.Context, streamer, viewer string) error {
	return r.updateFollowers(ctx, streamer, followUpdate(viewer))
}

func (r *AccountRepository) RemoveFollower(ctx context.Context, streamer, viewer string) error {
	return r.updateFollowers(ctx, streamer, unfollowUpdate(viewer))
}

func (r *AccountRepository) updateFollowers(ctx context.Context, streamer string, update bson.D) error {
	if _, err := r.collection.UpdateOne(ctx, idFilter(streamer), update); err != nil {
		logger.GetLogger().WithField("error", err).Error("Error while updating followers")
		return err
	}
	return nil
}

func idFilter(id string) bson.D {
	return bson.D{{Key: "_id", Value: id}}
}

// followUpdate and unfollowUpdate are single set-membership mutations, so
// concurrent toggles from independent viewers never lose an update.
func followUpdate(viewer string) bson.D {
	return bson.D{{Key: "$addToSet", Value: bson.D{{Key: "followers", Value: viewer}}}}
}

func unfollowUpdate(viewer string) bson.D {
	return bson.D{{Key: "$pull", Value: bson.D{{Key: "followers", Value: viewer}}}}
}

// IsDuplicateKey reports whether an insert failed on the unique primary key.
func IsDuplicateKey(err error) bool {
	var writeErr mongo.WriteException
	if errors.As(err, &writeErr) {
		for _, we := range writeErr.WriteErrors {
			if we.Code == 11000 {
				return true
			}
		}
	}
	return false
}
