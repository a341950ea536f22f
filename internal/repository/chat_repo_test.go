package repository

import (
	"context"
	"errors"
	"testing"

	"chatbot-backend/internal/models"
)

func TestChatRepoNotConnected(t *testing.T) {
	repo := NewChatRepo(nil)
	ctx := context.Background()

	err := repo.Create(ctx, &models.Chat{UserMessage: "hi", BotResponse: "yo", Email: "a@x.com"})
	if !errors.Is(err, ErrNotConnected) {
		t.Errorf("Create: expected ErrNotConnected, got %v", err)
	}

	_, err = repo.ListByEmail(ctx, "a@x.com")
	if !errors.Is(err, ErrNotConnected) {
		t.Errorf("ListByEmail: expected ErrNotConnected, got %v", err)
	}
}
