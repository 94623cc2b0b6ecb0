package models

import (
	"time"
)

type ExchangeProposal struct {
	ID           int       `json:"id"`
	AdSenderID   int       `json:"ad_sender_id"`
	AdReceiverID int       `json:"ad_receiver_id"`
	Status       string    `json:"status"`
	Comment      string    `json:"comment,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
}

// ExchangeCreateRequest accepts a Status field because clients keep sending
// one; it is ignored and every new proposal starts out pending.
type ExchangeCreateRequest struct {
	AdSenderID   int    `json:"ad_sender_id"`
	AdReceiverID int    `json:"ad_receiver_id"`
	Comment      string `json:"comment"`
	Status       string `json:"status,omitempty"`
}

type ExchangeEditRequest struct {
	ExchangeID int    `json:"exchange_id"`
	Status     string `json:"status"`
}

type ExchangeFilterRequest struct {
	SenderUsername   string   `json:"sender_username"`
	ReceiverUsername string   `json:"receiver_username"`
	Statuses         []string `json:"status"`
}

// ExchangeSearch is the resolved repository-side filter. Usernames have been
// turned into the ids of the users owning the sender/receiver ads, statuses
// into canonical labels.
type ExchangeSearch struct {
	SenderUserID   *int
	ReceiverUserID *int
	Statuses       []string
}

type ExchangeCreateResult struct {
	IsCreated bool        `json:"is_created"`
	Kind      FailureKind `json:"-"`
	Message   string      `json:"message"`
}

type ExchangeEditResult struct {
	IsEdited bool        `json:"is_edited"`
	Kind     FailureKind `json:"-"`
	Message  string      `json:"message"`
}

// ExchangeEvent is pushed to connected counterparties when a proposal is
// created or its status changes.
type ExchangeEvent struct {
	ExchangeID   int    `json:"exchange_id"`
	AdSenderID   int    `json:"ad_sender_id"`
	AdReceiverID int    `json:"ad_receiver_id"`
	Status       string `json:"status"`
}
