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
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// KeyHome is the context key the validation middleware stores the
// decoded listing under.
type KeyHome struct{}

type HomeHandler struct {
	logger  *logrus.Logger
	service *application.HomeService
}

func NewHomeHandler(logger *logrus.Logger, service *application.HomeService) *HomeHandler {
	return &HomeHandler{
		logger:  logger,
		service: service,
	}
}

func (handler *HomeHandler) Init(router *mux.Router) {
	createRouter := router.Methods(http.MethodPost).Subrouter()
	createRouter.HandleFunc("/services", handler.Create)
	createRouter.Use(MiddlewareHomeValidation)

	router.HandleFunc("/services", handler.List).Methods("GET")
	router.HandleFunc("/service", handler.Update).Methods("PUT")
	router.HandleFunc("/service/{id}", handler.Get).Methods("GET")
	router.HandleFunc("/services/{id}", handler.Delete).Methods("DELETE")
	router.HandleFunc("/search-result", handler.Search).Methods("GET")
}

func (handler *HomeHandler) Create(writer http.ResponseWriter, req *http.Request) {
	home := req.Context().Value(KeyHome{}).(*domain.Home)

	created, err := handler.service.Create(req.Context(), home)
	if err != nil {
		handler.logger.Errorln(err)
		http.Error(writer, errors.DatabaseError, http.StatusInternalServerError)
		return
	}

	jsonResponse(created, writer)
}

func (handler *HomeHandler) List(writer http.ResponseWriter, req *http.Request) {
	hostEmail := req.URL.Query().Get("host")

	homes, err := handler.service.List(req.Context(), hostEmail)
	if err != nil {
		handler.logger.Errorln(err)
		http.Error(writer, errors.DatabaseError, http.StatusInternalServerError)
		return
	}
	if homes == nil {
		homes = []*domain.Home{}
	}

	jsonResponse(homes, writer)
}

// Search filters listings by exact location. A missing location is a
// client error rather than a full dump.
func (handler *HomeHandler) Search(writer http.ResponseWriter, req *http.Request) {
	location := req.URL.Query().Get("location")
	if location == "" {
		writer.WriteHeader(http.StatusBadRequest)
		jsonResponse(map[string]string{"message": errors.RequiredLocationError}, writer)
		return
	}

	homes, err := handler.service.Search(req.Context(), location)
	if err != nil {
		handler.logger.Errorln(err)
		http.Error(writer, errors.DatabaseError, http.StatusInternalServerError)
		return
	}
	if homes == nil {
		homes = []*domain.Home{}
	}

	jsonResponse(homes, writer)
}

func (handler *HomeHandler) Get(writer http.ResponseWriter, req *http.Request) {
	vars := mux.Vars(req)
	id, err := primitive.ObjectIDFromHex(vars["id"])
	if err != nil {
		http.Error(writer, errors.InvalidIdError, http.StatusBadRequest)
		return
	}

	home, err := handler.service.Get(req.Context(), id)
	if err != nil {
		handler.logger.Errorln(err)
		http.Error(writer, errors.DatabaseError, http.StatusInternalServerError)
		return
	}
	if home == nil {
		http.Error(writer, errors.NotFoundError, http.StatusNotFound)
		return
	}

	jsonResponse(home, writer)
}

func (handler *HomeHandler) Update(writer http.ResponseWriter, req *http.Request) {
	var home domain.Home
	if err := home.FromJSON(req.Body); err != nil {
		http.Error(writer, errors.InvalidRequestFormatError, http.StatusBadRequest)
		return
	}

	if home.ID.IsZero() {
		http.Error(writer, errors.RequiredIdError, http.StatusBadRequest)
		return
	}
	if err := home.Validate(); err != nil {
		http.Error(writer, fmt.Sprintf("Validation Error:\n %s.", err), http.StatusBadRequest)
		return
	}

	result, err := handler.service.Update(req.Context(), &home)
	if err != nil {
		handler.logger.Errorln(err)
		http.Error(writer, errors.DatabaseError, http.StatusInternalServerError)
		return
	}
	if result.MatchedCount == 0 {
		http.Error(writer, errors.NotFoundError, http.StatusNotFound)
		return
	}

	jsonResponse(result, writer)
}

func (handler *HomeHandler) Delete(writer http.ResponseWriter, req *http.Request) {
	vars := mux.Vars(req)
	id, err := primitive.ObjectIDFromHex(vars["id"])
	if err != nil {
		http.Error(writer, errors.InvalidIdError, http.StatusBadRequest)
		return
	}

	result, err := handler.service.Delete(req.Context(), id)
	if err != nil {
		handler.logger.Errorln(err)
		http.Error(writer, errors.DatabaseError, http.StatusInternalServerError)
		return
	}
	if result.DeletedCount == 0 {
		http.Error(writer, errors.NotFoundError, http.StatusNotFound)
		return
	}

	jsonResponse(result, writer)
}

func MiddlewareHomeValidation(next http.Handler) http.Handler {
	return http.HandlerFunc(func(responseWriter http.ResponseWriter, request *http.Request) {
		home := &domain.Home{}
		err := home.FromJSON(request.Body)
		if err != nil {
			http.Error(responseWriter, "Unable to Decode JSON", http.StatusBadRequest)
			return
		}

		err = home.Validate()
		if err != nil {
			http.Error(responseWriter, fmt.Sprintf("Validation Error:\n %s.", err), http.StatusBadRequest)
			return
		}

		ctx := context.WithValue(request.Context(), KeyHome{}, home)
		next.ServeHTTP(responseWriter, request.WithContext(ctx))
	})
}
