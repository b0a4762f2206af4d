package domain

import "time"

type (
	ContactResponse struct {
		ID      uint   `json:"id"`
		Name    string `json:"name"`
		Type    string `json:"type"`
		City    string `json:"city"`
		Contact string `json:"contact"`
	}

	OrphanedClaimResponse struct {
		ClaimID    uint       `json:"claim_id"`
		FoodID     uint       `json:"food_id"`
		ReceiverID uint       `json:"receiver_id"`
		Status     string     `json:"status"`
		Timestamp  *time.Time `json:"timestamp,omitempty"`
	}

	SessionResponse struct {
		SessionID string `json:"session_id"`
	}

	LoginRequest struct {
		Username string `json:"username" validate:"required"`
		Password string `json:"password" validate:"required"`
	}

	LoginResponse struct {
		Token string `json:"token"`
		Role  string `json:"role"`
	}
)
