package store

import (
	"context"

	"github.com/alamin516/roombooking-server/domain"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

const NOTIFICATION_COLLECTION = "notifications"

type NotificationMongoDBStore struct {
	notifications *mongo.Collection
}

func NewNotificationMongoDBStore(client *mongo.Client) domain.NotificationStore {
	notifications := client.Database(DATABASE).Collection(NOTIFICATION_COLLECTION)
	return &NotificationMongoDBStore{
		notifications: notifications,
	}
}

func (store *NotificationMongoDBStore) Insert(ctx context.Context, notification *domain.Notification) (*domain.Notification, error) {
	notification.ID = primitive.NewObjectID()
	result, err := store.notifications.InsertOne(ctx, notification)
	if err != nil {
		return nil, err
	}
	notification.ID = result.InsertedID.(primitive.ObjectID)
	return notification, nil
}

func (store *NotificationMongoDBStore) GetByRecipient(ctx context.Context, email string) ([]*domain.Notification, error) {
	filter := bson.M{"to": email}

	cursor, err := store.notifications.Find(ctx, filter)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	return decodeNotifications(ctx, cursor)
}

func decodeNotifications(ctx context.Context, cursor *mongo.Cursor) (notifications []*domain.Notification, err error) {
	for cursor.Next(ctx) {
		var notification domain.Notification
		err = cursor.Decode(&notification)
		if err != nil {
			return
		}
		notifications = append(notifications, &notification)
	}
	err = cursor.Err()
	return
}
