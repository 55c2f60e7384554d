package endpoints

import (
	"net/http"

	"github.com/doodlesbykumbi/cookie-session/pkg/server"
)

// StatusResponse represents the response from /status
type StatusResponse struct {
	Status        string `json:"status"`
	Cipher        string `json:"cipher"`
	Authenticator string `json:"authenticator,omitempty"`
	Error         string `json:"error,omitempty"`
}

// RegisterStatusEndpoints registers the status endpoint
func RegisterStatusEndpoints(s *server.Server) {
	// GET /status - no auth required
	s.Router.HandleFunc("/status", handleStatus(s)).Methods("GET")
}

func handleStatus(s *server.Server) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		resp := StatusResponse{
			Status: "ok",
			Cipher: s.Config.Cipher,
		}

		if s.Authenticator != nil {
			resp.Authenticator = s.Authenticator.Name()
			if err := s.Authenticator.Status(r.Context()); err != nil {
				resp.Status = "error"
				resp.Error = err.Error()
				respondWithJSON(w, http.StatusServiceUnavailable, resp)
				return
			}
		}

		respondWithJSON(w, http.StatusOK, resp)
	}
}
