package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Chat is one persisted question/answer pair, keyed by the user's email.
// Records are created once per successful generation and never updated.
type Chat struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	UserMessage string             `bson:"userMessage" json:"userMessage"`
	BotResponse string             `bson:"botResponse" json:"botResponse"`
	Email       string             `bson:"email" json:"email"`
	CreatedAt   time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt   time.Time          `bson:"updatedAt" json:"updatedAt"`
}

// AskRequest is the payload sent to the /ask endpoint.
type AskRequest struct {
	Message string `json:"message"`
	Email   string `json:"email"`
}

// AskResponse carries the generated text back to the client.
type AskResponse struct {
	Response string `json:"response"`
}

// HistoryRequest is the payload sent to the /chat-history endpoint.
type HistoryRequest struct {
	Email string `json:"email"`
}

// ErrorResponse is the JSON shape for every 4xx/5xx body.
type ErrorResponse struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}
