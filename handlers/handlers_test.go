package handlers

import (
	"context"
	"io"
	"testing"

	"github.com/alamin516/roombooking-server/authorization"
	"github.com/alamin516/roombooking-server/domain"
	application "github.com/alamin516/roombooking-server/service"
	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"gopkg.in/gomail.v2"
)

type fakeUserStore struct {
	records map[string]domain.Profile
}

func (store *fakeUserStore) Upsert(ctx context.Context, email string, profile domain.Profile) (*domain.UpsertResult, error) {
	result := &domain.UpsertResult{}
	if _, ok := store.records[email]; ok {
		result.MatchedCount = 1
		result.ModifiedCount = 1
	} else {
		result.UpsertedCount = 1
	}
	store.records[email] = profile
	return result, nil
}

func (store *fakeUserStore) GetByEmail(ctx context.Context, email string) (domain.Profile, error) {
	profile, ok := store.records[email]
	if !ok {
		return nil, nil
	}
	return profile, nil
}

func (store *fakeUserStore) GetAll(ctx context.Context) ([]domain.Profile, error) {
	var profiles []domain.Profile
	for _, profile := range store.records {
		profiles = append(profiles, profile)
	}
	return profiles, nil
}

type fakeHomeStore struct {
	homes map[primitive.ObjectID]*domain.Home
}

func (store *fakeHomeStore) Insert(ctx context.Context, home *domain.Home) (*domain.Home, error) {
	home.ID = primitive.NewObjectID()
	copied := *home
	store.homes[home.ID] = &copied
	return home, nil
}

func (store *fakeHomeStore) GetAll(ctx context.Context) ([]*domain.Home, error) {
	var homes []*domain.Home
	for _, home := range store.homes {
		homes = append(homes, home)
	}
	return homes, nil
}

func (store *fakeHomeStore) GetByHostEmail(ctx context.Context, email string) ([]*domain.Home, error) {
	var homes []*domain.Home
	for _, home := range store.homes {
		if home.Host.Email == email {
			homes = append(homes, home)
		}
	}
	return homes, nil
}

func (store *fakeHomeStore) SearchByLocation(ctx context.Context, location string) ([]*domain.Home, error) {
	var homes []*domain.Home
	for _, home := range store.homes {
		if home.Location == location {
			homes = append(homes, home)
		}
	}
	return homes, nil
}

func (store *fakeHomeStore) Get(ctx context.Context, id primitive.ObjectID) (*domain.Home, error) {
	home, ok := store.homes[id]
	if !ok {
		return nil, nil
	}
	return home, nil
}

func (store *fakeHomeStore) Update(ctx context.Context, home *domain.Home) (*domain.UpdateResult, error) {
	if _, ok := store.homes[home.ID]; !ok {
		return &domain.UpdateResult{}, nil
	}
	copied := *home
	store.homes[home.ID] = &copied
	return &domain.UpdateResult{MatchedCount: 1, ModifiedCount: 1}, nil
}

func (store *fakeHomeStore) Delete(ctx context.Context, id primitive.ObjectID) (*domain.DeleteResult, error) {
	if _, ok := store.homes[id]; !ok {
		return &domain.DeleteResult{}, nil
	}
	delete(store.homes, id)
	return &domain.DeleteResult{DeletedCount: 1}, nil
}

type fakeBookingStore struct {
	bookings []*domain.Booking
}

func (store *fakeBookingStore) Insert(ctx context.Context, booking *domain.Booking) (*domain.Booking, error) {
	booking.ID = primitive.NewObjectID()
	copied := *booking
	store.bookings = append(store.bookings, &copied)
	return booking, nil
}

func (store *fakeBookingStore) GetAll(ctx context.Context) ([]*domain.Booking, error) {
	return store.bookings, nil
}

func (store *fakeBookingStore) GetByGuestEmail(ctx context.Context, email string) ([]*domain.Booking, error) {
	var bookings []*domain.Booking
	for _, booking := range store.bookings {
		if booking.GuestEmail == email {
			bookings = append(bookings, booking)
		}
	}
	return bookings, nil
}

type fakeNotificationStore struct {
	records []*domain.Notification
}

func (store *fakeNotificationStore) Insert(ctx context.Context, notification *domain.Notification) (*domain.Notification, error) {
	notification.ID = primitive.NewObjectID()
	store.records = append(store.records, notification)
	return notification, nil
}

func (store *fakeNotificationStore) GetByRecipient(ctx context.Context, email string) ([]*domain.Notification, error) {
	var notifications []*domain.Notification
	for _, notification := range store.records {
		if notification.To == email {
			notifications = append(notifications, notification)
		}
	}
	return notifications, nil
}

type fakeSender struct {
	sent chan *gomail.Message
}

func (sender *fakeSender) DialAndSend(m ...*gomail.Message) error {
	for _, message := range m {
		sender.sent <- message
	}
	return nil
}

type fakeGateway struct {
	secret string
	err    error
}

func (gateway *fakeGateway) CreateIntent(ctx context.Context, price float64) (string, error) {
	if gateway.err != nil {
		return "", gateway.err
	}
	return gateway.secret, nil
}

type fixtures struct {
	router   *mux.Router
	tokens   *authorization.TokenManager
	users    *fakeUserStore
	homes    *fakeHomeStore
	bookings *fakeBookingStore
	sender   *fakeSender
	gateway  *fakeGateway
}

func newTestRouter(t *testing.T) *fixtures {
	t.Helper()

	logger := logrus.New()
	logger.SetOutput(io.Discard)

	tokens, err := authorization.NewTokenManager([]byte("test-secret"))
	require.NoError(t, err)

	f := &fixtures{
		tokens:   tokens,
		users:    &fakeUserStore{records: make(map[string]domain.Profile)},
		homes:    &fakeHomeStore{homes: make(map[primitive.ObjectID]*domain.Home)},
		bookings: &fakeBookingStore{},
		sender:   &fakeSender{sent: make(chan *gomail.Message, 8)},
		gateway:  &fakeGateway{secret: "pi_123_secret_456"},
	}

	notifications := application.NewNotificationService(&fakeNotificationStore{}, f.sender, "noreply@roombooking.com")

	router := mux.NewRouter()
	NewUserHandler(logger, application.NewUserService(f.users, tokens), tokens).Init(router)
	NewHomeHandler(logger, application.NewHomeService(f.homes)).Init(router)
	NewBookingHandler(logger, application.NewBookingService(f.bookings), notifications).Init(router)
	NewPaymentHandler(logger, application.NewPaymentService(f.gateway)).Init(router)

	f.router = router
	return f
}
