package http

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/cmlabs-hris/nomina-backend-go/internal/domain/user"
	"github.com/cmlabs-hris/nomina-backend-go/internal/handler/http/middleware"
)

// currentActor returns the user loaded by middleware.AuthRequired. Routes
// outside the authenticated group never call it.
func currentActor(r *http.Request) user.User {
	actor, _ := middleware.ActorFromContext(r.Context())
	return actor
}

func decodeJSON(r *http.Request, dst any) error {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	return dec.Decode(dst)
}

// queryInt returns 0 when the parameter is missing or not a number, leaving
// defaults to the service.
func queryInt(r *http.Request, key string) int {
	v, err := strconv.Atoi(r.URL.Query().Get(key))
	if err != nil {
		return 0
	}
	return v
}
