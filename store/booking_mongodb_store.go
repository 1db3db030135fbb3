package store

import (
	"context"
	"time"

	"github.com/alamin516/roombooking-server/domain"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

const BOOKING_COLLECTION = "bookings"

type BookingMongoDBStore struct {
	bookings *mongo.Collection
}

func NewBookingMongoDBStore(client *mongo.Client) domain.BookingStore {
	bookings := client.Database(DATABASE).Collection(BOOKING_COLLECTION)
	return &BookingMongoDBStore{
		bookings: bookings,
	}
}

func (store *BookingMongoDBStore) Insert(ctx context.Context, booking *domain.Booking) (*domain.Booking, error) {
	booking.ID = primitive.NewObjectID()
	booking.CreatedAt = time.Now()

	result, err := store.bookings.InsertOne(ctx, booking)
	if err != nil {
		return nil, err
	}
	booking.ID = result.InsertedID.(primitive.ObjectID)
	return booking, nil
}

func (store *BookingMongoDBStore) GetAll(ctx context.Context) ([]*domain.Booking, error) {
	filter := bson.D{{}}
	return store.filter(ctx, filter)
}

func (store *BookingMongoDBStore) GetByGuestEmail(ctx context.Context, email string) ([]*domain.Booking, error) {
	filter := bson.M{"guestEmail": email}
	return store.filter(ctx, filter)
}

func (store *BookingMongoDBStore) filter(ctx context.Context, filter interface{}) ([]*domain.Booking, error) {
	cursor, err := store.bookings.Find(ctx, filter)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	return decodeBookings(ctx, cursor)
}

func decodeBookings(ctx context.Context, cursor *mongo.Cursor) (bookings []*domain.Booking, err error) {
	for cursor.Next(ctx) {
		var booking domain.Booking
		err = cursor.Decode(&booking)
		if err != nil {
			return
		}
		bookings = append(bookings, &booking)
	}
	err = cursor.Err()
	return
}
