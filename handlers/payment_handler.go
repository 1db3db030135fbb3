package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/alamin516/roombooking-server/domain"
	"github.com/alamin516/roombooking-server/errors"
	application "github.com/alamin516/roombooking-server/service"
	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"
)

type PaymentHandler struct {
	logger  *logrus.Logger
	service *application.PaymentService
}

func NewPaymentHandler(logger *logrus.Logger, service *application.PaymentService) *PaymentHandler {
	return &PaymentHandler{
		logger:  logger,
		service: service,
	}
}

func (handler *PaymentHandler) Init(router *mux.Router) {
	router.HandleFunc("/create-payment", handler.CreatePayment).Methods("POST")
}

func (handler *PaymentHandler) CreatePayment(writer http.ResponseWriter, req *http.Request) {
	var request domain.PaymentRequest
	err := json.NewDecoder(req.Body).Decode(&request)
	if err != nil {
		http.Error(writer, errors.InvalidRequestFormatError, http.StatusBadRequest)
		return
	}

	if request.Price <= 0 {
		http.Error(writer, errors.InvalidPriceError, http.StatusBadRequest)
		return
	}

	clientSecret, err := handler.service.CreatePaymentIntent(req.Context(), request.Price)
	if err != nil {
		handler.logger.Errorln(err)
		http.Error(writer, errors.PaymentGatewayError, http.StatusBadGateway)
		return
	}

	jsonResponse(map[string]string{"clientSecret": clientSecret}, writer)
}
