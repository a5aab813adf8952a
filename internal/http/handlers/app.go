package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"

	"server/internal/auth"
	"server/internal/domain"
	"server/internal/infra/geoip"
	"server/internal/middleware"
	"server/internal/workflow"
)

// validate is shared across handlers; a validator.Validate caches struct
// metadata and is safe for concurrent use.
var validate = validator.New()

// App bundles the dependencies of the HTTP layer. Handlers reach storage only
// through the repository interfaces and the workflow services.
type App struct {
	Logger       zerolog.Logger
	Credentials  *auth.Service
	Users        domain.UserRepository
	Events       domain.EventRepository
	Donations    domain.DonationRepository
	Applications domain.ApplicationRepository
	Contacts     domain.ContactRepository
	Stats        domain.StatsRepository
	Registration *workflow.RegistrationService
	Review       *workflow.ApplicationService
	Country      geoip.CountryResolver
}

func (a *App) json(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

func (a *App) error(w http.ResponseWriter, code int, message string) {
	a.json(w, code, map[string]string{"error": message})
}

// internalError logs the cause and returns the generic envelope; internals
// never leak to the caller.
func (a *App) internalError(w http.ResponseWriter, err error, msg string) {
	a.Logger.Error().Err(err).Msg(msg)
	a.error(w, http.StatusInternalServerError, "Internal server error")
}

// decode parses the JSON body into dst and validates it. On failure it writes
// the error response and returns false.
func (a *App) decode(w http.ResponseWriter, r *http.Request, dst any) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		a.error(w, http.StatusBadRequest, "Invalid request body")
		return false
	}
	if err := validate.Struct(dst); err != nil {
		a.json(w, http.StatusBadRequest, map[string]any{"error": validationMessages(err)})
		return false
	}
	return true
}

func validationMessages(err error) []string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return []string{"invalid payload"}
	}
	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		field := strings.ToLower(fe.Field())
		switch fe.Tag() {
		case "required":
			msgs = append(msgs, field+" is required")
		case "email":
			msgs = append(msgs, field+" must be a valid email address")
		case "min":
			msgs = append(msgs, fmt.Sprintf("%s must be at least %s characters", field, fe.Param()))
		case "gt":
			msgs = append(msgs, fmt.Sprintf("%s must be greater than %s", field, fe.Param()))
		case "oneof":
			msgs = append(msgs, fmt.Sprintf("%s must be one of: %s", field, fe.Param()))
		case "numeric":
			msgs = append(msgs, field+" must be a decimal number")
		default:
			msgs = append(msgs, field+" is invalid")
		}
	}
	return msgs
}

func currentUser(r *http.Request) *domain.User {
	return middleware.UserFromContext(r.Context())
}
