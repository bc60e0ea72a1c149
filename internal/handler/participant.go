package handler

import (
	"context"

	"github.com/pkordes/planner/internal/domain"
	"github.com/pkordes/planner/internal/handler/gen"
)

// CreateInvite handles POST /trips/{tripId}/invites.
func (s *Server) CreateInvite(ctx context.Context, req gen.CreateInviteRequestObject) (gen.CreateInviteResponseObject, error) {
	p, err := s.participants.Invite(ctx, req.TripId, req.Body.Email)
	if err != nil {
		if isNotFound(err) {
			return gen.CreateInvite404JSONResponse{NotFoundJSONResponse: notFound(err)}, nil
		}
		if isUnprocessable(err) {
			return gen.CreateInvite422JSONResponse{UnprocessableJSONResponse: unprocessable(err)}, nil
		}
		return nil, err
	}

	return gen.CreateInvite201JSONResponse{ParticipantId: p.ID}, nil
}

// ListParticipants handles GET /trips/{tripId}/participants.
func (s *Server) ListParticipants(ctx context.Context, req gen.ListParticipantsRequestObject) (gen.ListParticipantsResponseObject, error) {
	ps, err := s.participants.ListByTrip(ctx, req.TripId)
	if err != nil {
		if isNotFound(err) {
			return gen.ListParticipants404JSONResponse{NotFoundJSONResponse: notFound(err)}, nil
		}
		return nil, err
	}

	out := make([]gen.Participant, len(ps))
	for i, p := range ps {
		out[i] = participantToResponse(p)
	}
	return gen.ListParticipants200JSONResponse{Participants: out}, nil
}

// GetParticipant handles GET /participants/{participantId}.
func (s *Server) GetParticipant(ctx context.Context, req gen.GetParticipantRequestObject) (gen.GetParticipantResponseObject, error) {
	p, err := s.participants.GetByID(ctx, req.ParticipantId)
	if err != nil {
		if isNotFound(err) {
			return gen.GetParticipant404JSONResponse{NotFoundJSONResponse: notFound(err)}, nil
		}
		return nil, err
	}

	return gen.GetParticipant200JSONResponse{Participant: participantToResponse(p)}, nil
}

// ConfirmParticipant handles GET /participants/{participantId}/confirm, the
// link emailed to invitees, and redirects to their trip's page.
func (s *Server) ConfirmParticipant(ctx context.Context, req gen.ConfirmParticipantRequestObject) (gen.ConfirmParticipantResponseObject, error) {
	p, err := s.participants.Confirm(ctx, req.ParticipantId)
	if err != nil {
		if isNotFound(err) {
			return gen.ConfirmParticipant404JSONResponse{NotFoundJSONResponse: notFound(err)}, nil
		}
		return nil, err
	}

	return gen.ConfirmParticipant302Response{
		Headers: gen.RedirectResponseHeaders{Location: s.tripPageURL(p.TripID)},
	}, nil
}

func participantToResponse(p domain.Participant) gen.Participant {
	return gen.Participant{
		Id:          p.ID,
		Name:        p.Name,
		Email:       p.Email,
		IsOwner:     p.IsOwner,
		IsConfirmed: p.IsConfirmed,
	}
}
