// Package redisflash guarda mensajes flash de un solo uso en Redis.
// Cada usuario tiene a lo sumo un mensaje pendiente; leerlo lo consume.
package redisflash

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

type message struct {
	Kind string `json:"kind"`
	Text string `json:"text"`
}

// Store implementa el buzón flash sobre Redis.
type Store struct {
	client *redis.Client
	ttl    time.Duration
}

// NewStore construye el buzón. ttl acota la vida de mensajes nunca leídos.
func NewStore(client *redis.Client, ttl time.Duration) *Store {
	return &Store{client: client, ttl: ttl}
}

func flashKey(userID string) string {
	return "flash:" + userID
}

// Set deja un mensaje pendiente para el usuario, reemplazando el anterior.
func (s *Store) Set(ctx context.Context, userID, kind, text string) error {
	payload, err := json.Marshal(message{Kind: kind, Text: text})
	if err != nil {
		return fmt.Errorf("marshal flash: %w", err)
	}
	if err := s.client.Set(ctx, flashKey(userID), payload, s.ttl).Err(); err != nil {
		return fmt.Errorf("set flash: %w", err)
	}
	return nil
}

// Take devuelve y consume el mensaje pendiente del usuario.
// kind vacío significa que no había mensaje.
func (s *Store) Take(ctx context.Context, userID string) (kind, text string, err error) {
	raw, err := s.client.GetDel(ctx, flashKey(userID)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", "", nil
		}
		return "", "", fmt.Errorf("take flash: %w", err)
	}
	var msg message
	if err := json.Unmarshal([]byte(raw), &msg); err != nil {
		return "", "", fmt.Errorf("unmarshal flash: %w", err)
	}
	return msg.Kind, msg.Text, nil
}
