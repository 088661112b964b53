package repository

import (
	"sync"

	"car-shopper/domain"
)

type MessageRepositoryMemory struct {
	mu       sync.RWMutex
	messages []domain.ChatMessage
}

func NewMessageRepositoryMemory() *MessageRepositoryMemory {
	return &MessageRepositoryMemory{}
}

func (r *MessageRepositoryMemory) Append(messages ...domain.ChatMessage) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.messages = append(r.messages, messages...)
}

func (r *MessageRepositoryMemory) List() []domain.ChatMessage {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]domain.ChatMessage, len(r.messages))
	copy(out, r.messages)
	return out
}

func (r *MessageRepositoryMemory) Clear() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.messages = nil
}
