package store

import (
	"context"

	"github.com/alamin516/roombooking-server/domain"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

const HOME_COLLECTION = "homes"

type HomeMongoDBStore struct {
	homes *mongo.Collection
}

func NewHomeMongoDBStore(client *mongo.Client) domain.HomeStore {
	homes := client.Database(DATABASE).Collection(HOME_COLLECTION)
	return &HomeMongoDBStore{
		homes: homes,
	}
}

func (store *HomeMongoDBStore) Insert(ctx context.Context, home *domain.Home) (*domain.Home, error) {
	home.ID = primitive.NewObjectID()
	result, err := store.homes.InsertOne(ctx, home)
	if err != nil {
		return nil, err
	}
	home.ID = result.InsertedID.(primitive.ObjectID)
	return home, nil
}

func (store *HomeMongoDBStore) GetAll(ctx context.Context) ([]*domain.Home, error) {
	filter := bson.D{{}}
	return store.filter(ctx, filter)
}

func (store *HomeMongoDBStore) GetByHostEmail(ctx context.Context, email string) ([]*domain.Home, error) {
	filter := bson.M{"host.email": email}
	return store.filter(ctx, filter)
}

func (store *HomeMongoDBStore) SearchByLocation(ctx context.Context, location string) ([]*domain.Home, error) {
	filter := bson.M{"location": location}
	return store.filter(ctx, filter)
}

func (store *HomeMongoDBStore) Get(ctx context.Context, id primitive.ObjectID) (*domain.Home, error) {
	filter := bson.M{"_id": id}
	return store.filterOne(ctx, filter)
}

// Update replaces the listing matched by its id. The id filter is
// mandatory here, a listing without one never reaches the collection.
func (store *HomeMongoDBStore) Update(ctx context.Context, home *domain.Home) (*domain.UpdateResult, error) {
	updateData := bson.M{
		"location":    home.Location,
		"price":       home.Price,
		"image":       home.Image,
		"description": home.Description,
		"from":        home.From,
		"to":          home.To,
		"host":        home.Host,
	}

	filter := bson.M{"_id": home.ID}
	update := bson.M{"$set": updateData}

	result, err := store.homes.UpdateOne(ctx, filter, update)
	if err != nil {
		return nil, err
	}

	return &domain.UpdateResult{
		MatchedCount:  result.MatchedCount,
		ModifiedCount: result.ModifiedCount,
	}, nil
}

func (store *HomeMongoDBStore) Delete(ctx context.Context, id primitive.ObjectID) (*domain.DeleteResult, error) {
	filter := bson.M{"_id": id}
	result, err := store.homes.DeleteOne(ctx, filter)
	if err != nil {
		return nil, err
	}

	return &domain.DeleteResult{DeletedCount: result.DeletedCount}, nil
}

func (store *HomeMongoDBStore) filter(ctx context.Context, filter interface{}) ([]*domain.Home, error) {
	cursor, err := store.homes.Find(ctx, filter)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	return decodeHomes(ctx, cursor)
}

func (store *HomeMongoDBStore) filterOne(ctx context.Context, filter interface{}) (*domain.Home, error) {
	result := store.homes.FindOne(ctx, filter)

	var home domain.Home
	if err := result.Decode(&home); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, err
	}

	return &home, nil
}

func decodeHomes(ctx context.Context, cursor *mongo.Cursor) (homes []*domain.Home, err error) {
	for cursor.Next(ctx) {
		var home domain.Home
		err = cursor.Decode(&home)
		if err != nil {
			return
		}
		homes = append(homes, &home)
	}
	err = cursor.Err()
	return
}
