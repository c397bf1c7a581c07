package server

import (
	"net/http"

	"reliefledger/pkg/types"
)

type needStatusForm struct {
	Status types.NeedStatus `form:"status"`
}

type needPriorityForm struct {
	Priority types.Priority `form:"priority"`
}

func (s *Service) handleRegisterNeed(w http.ResponseWriter, r *http.Request) {
	principal, err := s.principalFromContext(r.Context())
	if err != nil {
		s.writeError(w, http.StatusUnauthorized)
		return
	}

	var in types.NewNeed
	if err := decodeForm(r, &in); err != nil {
		s.badRequest(w, r, err, "invalid need payload")
		return
	}

	s.writeResult(w, s.ledger.RegisterNeed(principal, in))
}

func (s *Service) handleUpdateNeedStatus(w http.ResponseWriter, r *http.Request) {
	principal, err := s.principalFromContext(r.Context())
	if err != nil {
		s.writeError(w, http.StatusUnauthorized)
		return
	}

	needID, err := idParam(r)
	if err != nil {
		s.badRequest(w, r, err, "invalid need id")
		return
	}

	var in needStatusForm
	if err := decodeForm(r, &in); err != nil {
		s.badRequest(w, r, err, "invalid status payload")
		return
	}

	s.writeResult(w, s.ledger.UpdateNeedStatus(principal, needID, in.Status))
}

func (s *Service) handleUpdateNeedPriority(w http.ResponseWriter, r *http.Request) {
	principal, err := s.principalFromContext(r.Context())
	if err != nil {
		s.writeError(w, http.StatusUnauthorized)
		return
	}

	needID, err := idParam(r)
	if err != nil {
		s.badRequest(w, r, err, "invalid need id")
		return
	}

	var in needPriorityForm
	if err := decodeForm(r, &in); err != nil {
		s.badRequest(w, r, err, "invalid priority payload")
		return
	}

	s.writeResult(w, s.ledger.UpdateNeedPriority(principal, needID, in.Priority))
}

func (s *Service) handleGetNeed(w http.ResponseWriter, r *http.Request) {
	needID, err := idParam(r)
	if err != nil {
		s.badRequest(w, r, err, "invalid need id")
		return
	}

	s.writeResult(w, s.ledger.GetNeed(needID))
}
