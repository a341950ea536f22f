package repository

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"chatbot-backend/internal/models"
)

var ErrNotConnected = errors.New("database not connected")

type ChatRepo struct {
	db *mongo.Database
}

// NewChatRepo accepts a nil database; methods then fail with ErrNotConnected
// so a process that started without a reachable store still serves requests.
func NewChatRepo(db *mongo.Database) *ChatRepo {
	return &ChatRepo{db: db}
}

func (r *ChatRepo) Create(ctx context.Context, chat *models.Chat) error {
	if r.db == nil {
		return ErrNotConnected
	}

	now := time.Now().UTC()
	chat.CreatedAt = now
	chat.UpdatedAt = now

	res, err := r.db.Collection("chats").InsertOne(ctx, chat)
	if err != nil {
		return err
	}

	if id, ok := res.InsertedID.(primitive.ObjectID); ok {
		chat.ID = id
	}
	return nil
}

// ListByEmail returns every chat for the email, most recent first.
func (r *ChatRepo) ListByEmail(ctx context.Context, email string) ([]models.Chat, error) {
	if r.db == nil {
		return nil, ErrNotConnected
	}

	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cursor, err := r.db.Collection("chats").Find(ctx, bson.M{"email": email}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	chats := []models.Chat{}
	if err := cursor.All(ctx, &chats); err != nil {
		return nil, err
	}
	return chats, nil
}
