package handlers

import (
	"context"
	"fmt"
	"net/http"

	"github.com/alamin516/roombooking-server/domain"
	"github.com/alamin516/roombooking-server/errors"
	application "github.com/alamin516/roombooking-server/service"
	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"
)

// KeyBooking is the context key the validation middleware stores the
// decoded booking under.
type KeyBooking struct{}

type BookingHandler struct {
	logger        *logrus.Logger
	service       *application.BookingService
	notifications *application.NotificationService
}

func NewBookingHandler(logger *logrus.Logger, service *application.BookingService, notifications *application.NotificationService) *BookingHandler {
	return &BookingHandler{
		logger:        logger,
		service:       service,
		notifications: notifications,
	}
}

func (handler *BookingHandler) Init(router *mux.Router) {
	createRouter := router.Methods(http.MethodPost).Subrouter()
	createRouter.HandleFunc("/bookings", handler.Create)
	createRouter.Use(MiddlewareBookingValidation)

	router.HandleFunc("/bookings", handler.List).Methods("GET")
}

// Create stores the booking and fires the confirmation mail off the
// response path. The response is committed whatever the mail does.
func (handler *BookingHandler) Create(writer http.ResponseWriter, req *http.Request) {
	booking := req.Context().Value(KeyBooking{}).(*domain.Booking)

	created, err := handler.service.Create(req.Context(), booking)
	if err != nil {
		handler.logger.Errorln(err)
		http.Error(writer, errors.DatabaseError, http.StatusInternalServerError)
		return
	}

	go func(booking domain.Booking) {
		if err := handler.notifications.SendBookingConfirmation(context.Background(), &booking); err != nil {
			handler.logger.Errorf("Booking confirmation mail for %s failed: %s", booking.GuestEmail, err)
		}
	}(*created)

	jsonResponse(created, writer)
}

func (handler *BookingHandler) List(writer http.ResponseWriter, req *http.Request) {
	guestEmail := req.URL.Query().Get("email")

	bookings, err := handler.service.List(req.Context(), guestEmail)
	if err != nil {
		handler.logger.Errorln(err)
		http.Error(writer, errors.DatabaseError, http.StatusInternalServerError)
		return
	}
	if bookings == nil {
		bookings = []*domain.Booking{}
	}

	jsonResponse(bookings, writer)
}

func MiddlewareBookingValidation(next http.Handler) http.Handler {
	return http.HandlerFunc(func(responseWriter http.ResponseWriter, request *http.Request) {
		booking := &domain.Booking{}
		err := booking.FromJSON(request.Body)
		if err != nil {
			http.Error(responseWriter, "Unable to Decode JSON", http.StatusBadRequest)
			return
		}

		err = booking.Validate()
		if err != nil {
			http.Error(responseWriter, fmt.Sprintf("Validation Error:\n %s.", err), http.StatusBadRequest)
			return
		}

		ctx := context.WithValue(request.Context(), KeyBooking{}, booking)
		next.ServeHTTP(responseWriter, request.WithContext(ctx))
	})
}
