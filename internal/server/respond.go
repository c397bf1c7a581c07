package server

import (
	"encoding/json"
	"net/http"
	"strconv"

	"reliefledger/pkg/types"

	"github.com/alexedwards/flow"
)

func (s *Service) writeResult(w http.ResponseWriter, result types.Result) {
	status := http.StatusOK
	if result.Error != nil {
		status = httpStatus(*result.Error)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(result); err != nil {
		s.logger.WithError(err).Error("failed to encode result")
	}
}

func (s *Service) writeError(w http.ResponseWriter, code int) {
	s.writeResult(w, types.Result{Error: &code})
}

// httpStatus maps an envelope error code to the response status. Registry
// validation codes are small integers and all map to 400.
func httpStatus(code int) int {
	switch code {
	case http.StatusUnauthorized, http.StatusForbidden, http.StatusNotFound, http.StatusInternalServerError:
		return code
	}
	return http.StatusBadRequest
}

// decodeForm parses the form-encoded body (or query string) into dst.
func decodeForm(r *http.Request, dst any) error {
	if err := r.ParseForm(); err != nil {
		return err
	}
	return decoder.Decode(dst, r.Form)
}

func idParam(r *http.Request) (uint64, error) {
	return strconv.ParseUint(flow.Param(r.Context(), "id"), 10, 64)
}

func (s *Service) badRequest(w http.ResponseWriter, r *http.Request, err error, msg string) {
	requestID, _ := r.Context().Value(contextKeyRequestID).(string)
	s.logger.WithError(err).WithField("request_id", requestID).Debug(msg)
	s.writeError(w, http.StatusBadRequest)
}
