package handlers

import (
	"encoding/json"
	"net/http"
	"regexp"

	"github.com/alamin516/roombooking-server/authorization"
	"github.com/alamin516/roombooking-server/domain"
	"github.com/alamin516/roombooking-server/errors"
	application "github.com/alamin516/roombooking-server/service"
	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"
)

var emailRegex = regexp.MustCompile(`[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}`)

type UserHandler struct {
	logger  *logrus.Logger
	service *application.UserService
	tokens  *authorization.TokenManager
}

func NewUserHandler(logger *logrus.Logger, service *application.UserService, tokens *authorization.TokenManager) *UserHandler {
	return &UserHandler{
		logger:  logger,
		service: service,
		tokens:  tokens,
	}
}

func (handler *UserHandler) Init(router *mux.Router) {
	router.Handle("/user/{email}", handler.tokens.Middleware(http.HandlerFunc(handler.Upsert))).Methods("PUT")
	router.HandleFunc("/user/{email}", handler.Get).Methods("GET")
	router.HandleFunc("/users", handler.GetAll).Methods("GET")
}

// Upsert saves the profile under the path email and hands back the
// write result together with a fresh token.
func (handler *UserHandler) Upsert(writer http.ResponseWriter, req *http.Request) {
	vars := mux.Vars(req)
	email := vars["email"]

	if !emailRegex.MatchString(email) {
		http.Error(writer, errors.InvalidEmailError, http.StatusBadRequest)
		return
	}

	var profile domain.Profile
	err := json.NewDecoder(req.Body).Decode(&profile)
	if err != nil {
		handler.logger.Errorln(err)
		http.Error(writer, errors.InvalidRequestFormatError, http.StatusBadRequest)
		return
	}

	result, token, err := handler.service.Upsert(req.Context(), email, profile)
	if err != nil {
		handler.logger.Errorln(err)
		http.Error(writer, errors.DatabaseError, http.StatusInternalServerError)
		return
	}

	jsonResponse(map[string]interface{}{
		"result": result,
		"token":  token,
	}, writer)
}

func (handler *UserHandler) Get(writer http.ResponseWriter, req *http.Request) {
	vars := mux.Vars(req)
	email := vars["email"]

	profile, err := handler.service.GetByEmail(req.Context(), email)
	if err != nil {
		handler.logger.Errorln(err)
		http.Error(writer, errors.DatabaseError, http.StatusInternalServerError)
		return
	}
	if profile == nil {
		http.Error(writer, errors.NotFoundError, http.StatusNotFound)
		return
	}

	jsonResponse(profile, writer)
}

func (handler *UserHandler) GetAll(writer http.ResponseWriter, req *http.Request) {
	profiles, err := handler.service.GetAll(req.Context())
	if err != nil {
		handler.logger.Errorln(err)
		writer.WriteHeader(http.StatusInternalServerError)
		return
	}
	if profiles == nil {
		profiles = []domain.Profile{}
	}

	jsonResponse(profiles, writer)
}

func jsonResponse(object interface{}, writer http.ResponseWriter) {
	resp, err := json.Marshal(object)
	if err != nil {
		http.Error(writer, err.Error(), http.StatusInternalServerError)
		return
	}
	writer.Write(resp)
}
