package middleware

import (
	"fmt"
	"net/http"
	"runtime/debug"

	"github.com/SleeperKt/GoogleTeamRepo/internal/api/shared"
)

// Recover turns a panic in a downstream handler into a 500 response with the
// standard error body. http.ErrAbortHandler is re-raised so the server can
// abort the connection.
func Recover(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			rec := recover()
			if rec == nil {
				return
			}
			if rec == http.ErrAbortHandler {
				panic(rec)
			}

			err := fmt.Errorf("panic: %v\n%s", rec, debug.Stack())
			shared.RespondWithErrorAndLog(w, r, http.StatusInternalServerError,
				fmt.Sprintf("Internal server error: %v", rec), err)
		}()

		next.ServeHTTP(w, r)
	})
}
