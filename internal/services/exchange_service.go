package services

import (
	"context"
	"errors"
	"fmt"

	"barterBack/internal/fsm"
	"barterBack/internal/models"
)

// ExchangeService runs the proposal lifecycle: create -> pending ->
// accepted/declined. Status transitions go through the fsm policy; the
// default permissive policy keeps the historically observed overwrite
// behavior.
type ExchangeService struct {
	UserRepo     UserStore
	AdRepo       AdStore
	ExchangeRepo ExchangeStore
	Policy       fsm.Policy
	Notifier     StatusNotifier
}

// CreateExchange does not require the caller to own the sender ad. Anyone
// may open a proposal between two existing ads; tightening this is a policy
// decision recorded in DESIGN.md.
func (s *ExchangeService) CreateExchange(ctx context.Context, req models.ExchangeCreateRequest) models.ExchangeCreateResult {
	if req.AdSenderID == 0 || req.AdReceiverID == 0 {
		return models.ExchangeCreateResult{
			Kind:    models.FailureMissingField,
			Message: "Send all required fields (ad_sender_id, ad_receiver_id)",
		}
	}

	if req.AdSenderID == req.AdReceiverID {
		return models.ExchangeCreateResult{
			Kind:    models.FailureInvariantViolation,
			Message: "ad_sender_id and ad_receiver_id must be different",
		}
	}

	if _, err := s.AdRepo.GetAdByID(ctx, req.AdSenderID); err != nil {
		if errors.Is(err, models.ErrAdNotFound) {
			return models.ExchangeCreateResult{
				Kind:    models.FailureInvalidReference,
				Message: fmt.Sprintf("Invalid ad_sender_id (%d)", req.AdSenderID),
			}
		}
		return models.ExchangeCreateResult{Kind: models.FailureUnexpected, Message: err.Error()}
	}

	receiverAd, err := s.AdRepo.GetAdByID(ctx, req.AdReceiverID)
	if err != nil {
		if errors.Is(err, models.ErrAdNotFound) {
			return models.ExchangeCreateResult{
				Kind:    models.FailureInvalidReference,
				Message: fmt.Sprintf("Invalid ad_receiver_id (%d)", req.AdReceiverID),
			}
		}
		return models.ExchangeCreateResult{Kind: models.FailureUnexpected, Message: err.Error()}
	}

	// Caller-supplied status is ignored; every proposal starts out pending.
	exchange, err := s.ExchangeRepo.CreateExchange(ctx, models.ExchangeProposal{
		AdSenderID:   req.AdSenderID,
		AdReceiverID: req.AdReceiverID,
		Status:       fsm.StatusPending,
		Comment:      req.Comment,
	})
	if err != nil {
		return models.ExchangeCreateResult{Kind: models.FailureUnexpected, Message: err.Error()}
	}

	if s.Notifier != nil {
		s.Notifier.NotifyExchange(receiverAd.UserID, models.ExchangeEvent{
			ExchangeID:   exchange.ID,
			AdSenderID:   exchange.AdSenderID,
			AdReceiverID: exchange.AdReceiverID,
			Status:       exchange.Status,
		})
	}

	return models.ExchangeCreateResult{
		IsCreated: true,
		Message:   fmt.Sprintf("Exchange created successfully (%d, %d, %s)", req.AdSenderID, req.AdReceiverID, req.Comment),
	}
}

// EditExchange lets either counterparty change the status: the owner of the
// sender ad and the owner of the receiver ad are both authorized.
func (s *ExchangeService) EditExchange(ctx context.Context, username string, req models.ExchangeEditRequest) models.ExchangeEditResult {
	if req.ExchangeID == 0 || req.Status == "" {
		return models.ExchangeEditResult{
			Kind:    models.FailureMissingField,
			Message: "Send all required fields (exchange_id, status)",
		}
	}

	exchange, err := s.ExchangeRepo.GetExchangeByID(ctx, req.ExchangeID)
	if err != nil {
		if errors.Is(err, models.ErrExchangeNotFound) {
			return models.ExchangeEditResult{
				Kind:    models.FailureNotFound,
				Message: fmt.Sprintf("Invalid exchange_id (%d)", req.ExchangeID),
			}
		}
		return models.ExchangeEditResult{Kind: models.FailureUnexpected, Message: err.Error()}
	}

	senderAd, err := s.AdRepo.GetAdByID(ctx, exchange.AdSenderID)
	if err != nil {
		return models.ExchangeEditResult{Kind: models.FailureUnexpected, Message: err.Error()}
	}
	receiverAd, err := s.AdRepo.GetAdByID(ctx, exchange.AdReceiverID)
	if err != nil {
		return models.ExchangeEditResult{Kind: models.FailureUnexpected, Message: err.Error()}
	}

	user, err := s.UserRepo.GetUserByUsername(ctx, username)
	if err != nil && !errors.Is(err, models.ErrUserNotFound) {
		return models.ExchangeEditResult{Kind: models.FailureUnexpected, Message: err.Error()}
	}
	if err != nil || (user.ID != senderAd.UserID && user.ID != receiverAd.UserID) {
		return models.ExchangeEditResult{
			Kind:    models.FailureNotFound,
			Message: fmt.Sprintf("Exchange with ID:%d does not belong to the user", req.ExchangeID),
		}
	}

	status, ok := fsm.Normalize(req.Status)
	if !ok {
		return models.ExchangeEditResult{
			Kind:    models.FailureInvalidReference,
			Message: fmt.Sprintf("Invalid status: %s", req.Status),
		}
	}

	if !s.Policy.Allowed(exchange.Status, status) {
		return models.ExchangeEditResult{
			Kind:    models.FailureInvariantViolation,
			Message: fmt.Sprintf("Status transition %s -> %s is not allowed", exchange.Status, status),
		}
	}

	if err := s.ExchangeRepo.UpdateExchangeStatus(ctx, exchange.ID, status); err != nil {
		return models.ExchangeEditResult{Kind: models.FailureUnexpected, Message: err.Error()}
	}

	if s.Notifier != nil {
		event := models.ExchangeEvent{
			ExchangeID:   exchange.ID,
			AdSenderID:   exchange.AdSenderID,
			AdReceiverID: exchange.AdReceiverID,
			Status:       status,
		}
		// The counterparty gets notified, whichever side the actor is.
		if user.ID == senderAd.UserID {
			s.Notifier.NotifyExchange(receiverAd.UserID, event)
		} else {
			s.Notifier.NotifyExchange(senderAd.UserID, event)
		}
	}

	return models.ExchangeEditResult{
		IsEdited: true,
		Message:  fmt.Sprintf("Exchange edited successfully (%s)", status),
	}
}

// ListExchanges resolves username filters strictly (unknown username fails
// with ErrInvalidFilter) but treats unknown status labels as matching
// nothing. The asymmetry mirrors the ads strict-filter contract on one side
// only and is kept deliberately.
func (s *ExchangeService) ListExchanges(ctx context.Context, filter models.ExchangeFilterRequest) ([]models.ExchangeProposal, error) {
	var search models.ExchangeSearch

	if filter.SenderUsername != "" {
		user, err := s.UserRepo.GetUserByUsername(ctx, filter.SenderUsername)
		if err != nil {
			if errors.Is(err, models.ErrUserNotFound) {
				return nil, models.ErrInvalidFilter
			}
			return nil, err
		}
		search.SenderUserID = &user.ID
	}

	if filter.ReceiverUsername != "" {
		user, err := s.UserRepo.GetUserByUsername(ctx, filter.ReceiverUsername)
		if err != nil {
			if errors.Is(err, models.ErrUserNotFound) {
				return nil, models.ErrInvalidFilter
			}
			return nil, err
		}
		search.ReceiverUserID = &user.ID
	}

	if len(filter.Statuses) > 0 {
		for _, label := range filter.Statuses {
			if status, ok := fsm.Normalize(label); ok {
				search.Statuses = append(search.Statuses, status)
			}
		}
		// Only unknown labels supplied: nothing can match.
		if len(search.Statuses) == 0 {
			return []models.ExchangeProposal{}, nil
		}
	}

	return s.ExchangeRepo.GetExchangesFiltered(ctx, search)
}
