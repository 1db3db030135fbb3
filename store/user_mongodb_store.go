package store

import (
	"context"

	"github.com/alamin516/roombooking-server/domain"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const USER_COLLECTION = "users"

type UserMongoDBStore struct {
	users *mongo.Collection
}

func NewUserMongoDBStore(client *mongo.Client) domain.UserStore {
	users := client.Database(DATABASE).Collection(USER_COLLECTION)
	return &UserMongoDBStore{
		users: users,
	}
}

func (store *UserMongoDBStore) Upsert(ctx context.Context, email string, profile domain.Profile) (*domain.UpsertResult, error) {
	filter := bson.M{"email": email}
	update := bson.M{"$set": profile}
	opts := options.Update().SetUpsert(true)

	result, err := store.users.UpdateOne(ctx, filter, update, opts)
	if err != nil {
		return nil, err
	}

	return &domain.UpsertResult{
		MatchedCount:  result.MatchedCount,
		ModifiedCount: result.ModifiedCount,
		UpsertedCount: result.UpsertedCount,
		UpsertedID:    result.UpsertedID,
	}, nil
}

func (store *UserMongoDBStore) GetByEmail(ctx context.Context, email string) (domain.Profile, error) {
	filter := bson.M{"email": email}
	return store.filterOne(ctx, filter)
}

func (store *UserMongoDBStore) GetAll(ctx context.Context) ([]domain.Profile, error) {
	filter := bson.D{{}}
	return store.filter(ctx, filter)
}

func (store *UserMongoDBStore) filter(ctx context.Context, filter interface{}) ([]domain.Profile, error) {
	cursor, err := store.users.Find(ctx, filter)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	return decodeProfiles(ctx, cursor)
}

func (store *UserMongoDBStore) filterOne(ctx context.Context, filter interface{}) (domain.Profile, error) {
	result := store.users.FindOne(ctx, filter)

	var profile domain.Profile
	if err := result.Decode(&profile); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, err
	}

	return profile, nil
}

func decodeProfiles(ctx context.Context, cursor *mongo.Cursor) (profiles []domain.Profile, err error) {
	for cursor.Next(ctx) {
		var profile domain.Profile
		err = cursor.Decode(&profile)
		if err != nil {
			return
		}
		profiles = append(profiles, profile)
	}
	err = cursor.Err()
	return
}
