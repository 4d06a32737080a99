package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestGadget_Details(t *testing.T) {
	at := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)
	g := Gadget{ID: "id-1", Name: "The Kraken", Status: "AVAILABLE", CreatedAt: at, UpdatedAt: at}

	d := g.Details()
	assert.Contains(t, d, "Name:      The Kraken")
	assert.Contains(t, d, "Created:   2025-03-01T10:00:00Z")
	assert.NotContains(t, d, "Decommissioned")
	assert.NotContains(t, d, "Destroyed by")

	actor := "user-7"
	g.Status = "DESTROYED"
	g.DecommissionedAt = &at
	g.DestroyedByID = &actor
	d = g.Details()
	assert.Contains(t, d, "Decommissioned: 2025-03-01T10:00:00Z")
	assert.Contains(t, d, "Destroyed by:   user-7")
}
