// Package archive stores destruction reports for self-destructed gadgets.
package archive

import (
	"context"
	"time"
)

// Report describes one completed self-destruct.
type Report struct {
	GadgetID         string    `json:"gadgetId"`
	GadgetName       string    `json:"gadgetName"`
	DestroyedByID    string    `json:"destroyedById"`
	ConfirmationCode int       `json:"confirmationCode"`
	DestroyedAt      time.Time `json:"destroyedAt"`
}

type Archiver interface {
	Archive(ctx context.Context, r *Report) error
}

// Nop discards reports. It is used when no bucket is configured.
type Nop struct{}

func (Nop) Archive(context.Context, *Report) error { return nil }
