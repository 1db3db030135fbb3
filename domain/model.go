package domain

import (
	"encoding/json"
	"io"
	"time"

	"github.com/go-playground/validator/v10"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Profile carries whatever fields the client submitted on sign-in. The
// directory only keys on the email taken from the request path, so no
// schema is enforced beyond that.
type Profile map[string]interface{}

type Host struct {
	Email string `bson:"email" json:"email" validate:"required,email"`
	Name  string `bson:"name,omitempty" json:"name,omitempty"`
	Image string `bson:"image,omitempty" json:"image,omitempty"`
}

type Home struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	Location    string             `bson:"location" json:"location" validate:"required"`
	Price       float64            `bson:"price" json:"price" validate:"required,gt=0"`
	Image       string             `bson:"image,omitempty" json:"image,omitempty"`
	Description string             `bson:"description,omitempty" json:"description,omitempty"`
	From        string             `bson:"from,omitempty" json:"from,omitempty"`
	To          string             `bson:"to,omitempty" json:"to,omitempty"`
	Host        Host               `bson:"host" json:"host"`
}

// BookedHome is the denormalized copy of the listing a booking was made
// against, frozen at checkout time.
type BookedHome struct {
	Location string `bson:"location,omitempty" json:"location,omitempty"`
	From     string `bson:"from,omitempty" json:"from,omitempty"`
	To       string `bson:"to,omitempty" json:"to,omitempty"`
	Image    string `bson:"image,omitempty" json:"image,omitempty"`
}

type Booking struct {
	ID            primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	GuestEmail    string             `bson:"guestEmail" json:"guestEmail" validate:"required,email"`
	TransactionId string             `bson:"transactionId,omitempty" json:"transactionId,omitempty"`
	HostEmail     string             `bson:"hostEmail,omitempty" json:"hostEmail,omitempty"`
	Price         float64            `bson:"price,omitempty" json:"price,omitempty"`
	Home          BookedHome         `bson:"home,omitempty" json:"home,omitempty"`
	CreatedAt     time.Time          `bson:"createdAt,omitempty" json:"createdAt,omitempty"`
}

type Notification struct {
	ID        primitive.ObjectID `bson:"_id" json:"id"`
	To        string             `bson:"to" json:"to"`
	Subject   string             `bson:"subject" json:"subject"`
	BookingId string             `bson:"bookingId,omitempty" json:"bookingId,omitempty"`
	CreatedAt time.Time          `bson:"createdAt,omitempty" json:"createdAt"`
}

type PaymentRequest struct {
	Price float64 `json:"price" validate:"required,gt=0"`
}

// UpsertResult mirrors the write summary the store reports back to the
// caller of PUT /user/{email}.
type UpsertResult struct {
	MatchedCount  int64       `json:"matchedCount"`
	ModifiedCount int64       `json:"modifiedCount"`
	UpsertedCount int64       `json:"upsertedCount"`
	UpsertedID    interface{} `json:"upsertedId,omitempty"`
}

type UpdateResult struct {
	MatchedCount  int64 `json:"matchedCount"`
	ModifiedCount int64 `json:"modifiedCount"`
}

type DeleteResult struct {
	DeletedCount int64 `json:"deletedCount"`
}

func (home *Home) Validate() error {
	validate := validator.New()
	return validate.Struct(home)
}

func (booking *Booking) Validate() error {
	validate := validator.New()
	return validate.Struct(booking)
}

func (home *Home) FromJSON(reader io.Reader) error {
	d := json.NewDecoder(reader)
	return d.Decode(home)
}

func (booking *Booking) FromJSON(reader io.Reader) error {
	d := json.NewDecoder(reader)
	return d.Decode(booking)
}
