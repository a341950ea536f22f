package handlers

import (
	"context"
	"encoding/json"
	"log"
	"net/http"

	"chatbot-backend/internal/models"
)

type ChatHandler struct {
	chatRepo chatRepository
	gateway  aiGateway
}

type chatRepository interface {
	Create(ctx context.Context, chat *models.Chat) error
	ListByEmail(ctx context.Context, email string) ([]models.Chat, error)
}

type aiGateway interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

func NewChatHandler(chatRepo chatRepository, gateway aiGateway) *ChatHandler {
	return &ChatHandler{
		chatRepo: chatRepo,
		gateway:  gateway,
	}
}

// Ask forwards the message to the AI gateway, persists the exchange, and
// returns the generated text. Gateway and persistence failures collapse to
// the same 500 shape; no record is written unless generation succeeded.
func (h *ChatHandler) Ask(w http.ResponseWriter, r *http.Request) {
	var req models.AskRequest
	// A malformed body leaves the fields empty and fails the presence check.
	json.NewDecoder(r.Body).Decode(&req)

	if req.Message == "" || req.Email == "" {
		writeJSON(w, http.StatusBadRequest, models.ErrorResponse{
			Error: "Message and email are required.",
		})
		return
	}

	botResponse, err := h.gateway.Generate(r.Context(), req.Message)
	if err != nil {
		log.Printf("Error during AI generation: %v", err)
		writeJSON(w, http.StatusInternalServerError, models.ErrorResponse{
			Error:   "Failed to generate a response.",
			Details: err.Error(),
		})
		return
	}

	chat := &models.Chat{
		UserMessage: req.Message,
		BotResponse: botResponse,
		Email:       req.Email,
	}
	if err := h.chatRepo.Create(r.Context(), chat); err != nil {
		log.Printf("Error during AI generation: %v", err)
		writeJSON(w, http.StatusInternalServerError, models.ErrorResponse{
			Error:   "Failed to generate a response.",
			Details: err.Error(),
		})
		return
	}

	writeJSON(w, http.StatusOK, models.AskResponse{Response: botResponse})
}

// History returns every chat for the given email, most recent first.
func (h *ChatHandler) History(w http.ResponseWriter, r *http.Request) {
	var req models.HistoryRequest
	json.NewDecoder(r.Body).Decode(&req)

	if req.Email == "" {
		writeJSON(w, http.StatusBadRequest, models.ErrorResponse{
			Error: "Email is required.",
		})
		return
	}

	chats, err := h.chatRepo.ListByEmail(r.Context(), req.Email)
	if err != nil {
		log.Printf("Error fetching chat history: %v", err)
		writeJSON(w, http.StatusInternalServerError, models.ErrorResponse{
			Error:   "Failed to fetch chat history.",
			Details: err.Error(),
		})
		return
	}

	writeJSON(w, http.StatusOK, chats)
}

// Shared helpers

func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}
