package service

import (
	"context"
	"time"

	"alcyxob/training-client/internal/domain"
)

//go:generate mockgen -source=ports.go -destination=mock_ports_test.go -package=service

// PhotoLoader fetches and decodes a coach photo.
type PhotoLoader interface {
	LoadPhoto(ctx context.Context, coachID int64, descriptor string) (*domain.ProfilePhoto, error)
}

// Navigator resets the UI navigation stack to a single root screen.
type Navigator interface {
	Reset(screen domain.Screen)
}

// Notifier shows transient, toast-like messages.
type Notifier interface {
	Notify(n Notification)
}

type Level string

const (
	LevelInfo  Level = "info"
	LevelError Level = "error"
)

type Notification struct {
	Level   Level     `json:"level"`
	Kind    string    `json:"kind"`
	Message string    `json:"message"`
	At      time.Time `json:"at"`
}
