package models

import (
	"time"
)

type Ad struct {
	ID          int        `json:"id"`
	UserID      int        `json:"user_id,omitempty"`
	Username    string     `json:"user"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Category    *Category  `json:"category"`
	Condition   *Condition `json:"condition"`
	CreatedAt   time.Time  `json:"created_at"`
}

// AdMutationRequest carries the payload of create-ad and edit-ad; AdID is
// only meaningful for edits. Category and Condition are names, resolved
// against the catalog before anything is persisted.
type AdMutationRequest struct {
	AdID        int    `json:"ad_id,omitempty"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Category    string `json:"category"`
	Condition   string `json:"condition"`
}

type AdDeleteRequest struct {
	AdID int `json:"ad_id"`
}

type AdFilterRequest struct {
	Query      string   `json:"query"`
	Categories []string `json:"category"`
	Conditions []string `json:"condition"`
	Page       int      `json:"page"`
	Limit      int      `json:"limit"`
}

// AdSearch is the resolved form of AdFilterRequest handed to the repository:
// catalog names already turned into ids, paging into limit/offset.
type AdSearch struct {
	Query        string
	CategoryIDs  []int
	ConditionIDs []int
	Limit        int
	Offset       int
}

type AdListResponse struct {
	Page    int  `json:"page"`
	Limit   int  `json:"limit"`
	Results []Ad `json:"results"`
}

type AdCreateResult struct {
	IsCreated bool        `json:"is_created"`
	Kind      FailureKind `json:"-"`
	Message   string      `json:"message"`
}

type AdDeleteResult struct {
	IsDeleted bool        `json:"is_deleted"`
	Kind      FailureKind `json:"-"`
	Message   string      `json:"message"`
}

type AdEditResult struct {
	IsEdited bool        `json:"is_edited"`
	Kind     FailureKind `json:"-"`
	Message  string      `json:"message"`
}
