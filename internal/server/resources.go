package server

import (
	"net/http"

	"reliefledger/pkg/types"
)

type quantityForm struct {
	Quantity int64 `form:"quantity"`
}

type resourceStatusForm struct {
	Status types.ResourceStatus `form:"status"`
}

func (s *Service) handleRegisterResource(w http.ResponseWriter, r *http.Request) {
	principal, err := s.principalFromContext(r.Context())
	if err != nil {
		s.writeError(w, http.StatusUnauthorized)
		return
	}

	var in types.NewResource
	if err := decodeForm(r, &in); err != nil {
		s.badRequest(w, r, err, "invalid resource payload")
		return
	}

	s.writeResult(w, s.ledger.RegisterResource(principal, in))
}

func (s *Service) handleUpdateQuantity(w http.ResponseWriter, r *http.Request) {
	principal, err := s.principalFromContext(r.Context())
	if err != nil {
		s.writeError(w, http.StatusUnauthorized)
		return
	}

	resourceID, err := idParam(r)
	if err != nil {
		s.badRequest(w, r, err, "invalid resource id")
		return
	}

	var in quantityForm
	if err := decodeForm(r, &in); err != nil {
		s.badRequest(w, r, err, "invalid quantity payload")
		return
	}

	s.writeResult(w, s.ledger.UpdateQuantity(principal, resourceID, in.Quantity))
}

func (s *Service) handleUpdateStatus(w http.ResponseWriter, r *http.Request) {
	principal, err := s.principalFromContext(r.Context())
	if err != nil {
		s.writeError(w, http.StatusUnauthorized)
		return
	}

	resourceID, err := idParam(r)
	if err != nil {
		s.badRequest(w, r, err, "invalid resource id")
		return
	}

	var in resourceStatusForm
	if err := decodeForm(r, &in); err != nil {
		s.badRequest(w, r, err, "invalid status payload")
		return
	}

	s.writeResult(w, s.ledger.UpdateStatus(principal, resourceID, in.Status))
}

func (s *Service) handleGetResource(w http.ResponseWriter, r *http.Request) {
	resourceID, err := idParam(r)
	if err != nil {
		s.badRequest(w, r, err, "invalid resource id")
		return
	}

	s.writeResult(w, s.ledger.GetResource(resourceID))
}
