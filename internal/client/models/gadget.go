// Package models holds the wire types the CLI decodes from the gadgetkeeper
// HTTP API.
package models

import (
	"fmt"
	"strings"
	"time"
)

type Gadget struct {
	ID               string     `json:"id"`
	Name             string     `json:"name"`
	Status           string     `json:"status"`
	CreatedAt        time.Time  `json:"createdAt"`
	UpdatedAt        time.Time  `json:"updatedAt"`
	DecommissionedAt *time.Time `json:"decommissionedAt"`
	DestroyedByID    *string    `json:"destroyedById"`
}

// Details renders every known field, one per line.
func (g Gadget) Details() string {
	var b strings.Builder
	fmt.Fprintf(&b, "ID:        %s\n", g.ID)
	fmt.Fprintf(&b, "Name:      %s\n", g.Name)
	fmt.Fprintf(&b, "Status:    %s\n", g.Status)
	fmt.Fprintf(&b, "Created:   %s\n", g.CreatedAt.Format(time.RFC3339))
	fmt.Fprintf(&b, "Updated:   %s", g.UpdatedAt.Format(time.RFC3339))
	if g.DecommissionedAt != nil {
		fmt.Fprintf(&b, "\nDecommissioned: %s", g.DecommissionedAt.Format(time.RFC3339))
	}
	if g.DestroyedByID != nil {
		fmt.Fprintf(&b, "\nDestroyed by:   %s", *g.DestroyedByID)
	}
	return b.String()
}

// SelfDestructResult is the payload of a successful self-destruct call.
type SelfDestructResult struct {
	Gadget           Gadget `json:"gadget"`
	ConfirmationCode int    `json:"confirmationCode"`
}

// SignUp is the registration form sent to the server.
type SignUp struct {
	Name            string `json:"name"`
	Email           string `json:"email"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirmPassword"`
	Role            string `json:"role,omitempty"`
}
