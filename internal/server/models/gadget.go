package models

import (
	"fmt"
	"time"

	"github.com/dmitrijs2005/gadgetkeeper/internal/common"
)

// GadgetStatus is the lifecycle state of a gadget. Values are transmitted
// and stored as the literal upper-case strings.
type GadgetStatus string

const (
	StatusAvailable      GadgetStatus = "AVAILABLE"
	StatusDeployed       GadgetStatus = "DEPLOYED"
	StatusDecommissioned GadgetStatus = "DECOMMISSIONED"
	StatusDestroyed      GadgetStatus = "DESTROYED"
)

// AllStatuses lists every status in display order.
var AllStatuses = []GadgetStatus{StatusAvailable, StatusDecommissioned, StatusDeployed, StatusDestroyed}

// transitions is the lifecycle graph. Terminal states have no outgoing edges.
var transitions = map[GadgetStatus][]GadgetStatus{
	StatusAvailable: {StatusDeployed, StatusDecommissioned, StatusDestroyed},
	StatusDeployed:  {StatusDecommissioned, StatusDestroyed},
}

// Valid reports whether s is a known status.
func (s GadgetStatus) Valid() bool {
	switch s {
	case StatusAvailable, StatusDeployed, StatusDecommissioned, StatusDestroyed:
		return true
	}
	return false
}

// Terminal reports whether no transition may leave s.
func (s GadgetStatus) Terminal() bool {
	return s == StatusDecommissioned || s == StatusDestroyed
}

// CanTransitionTo reports whether the lifecycle graph has an edge s -> next.
func (s GadgetStatus) CanTransitionTo(next GadgetStatus) bool {
	for _, t := range transitions[s] {
		if t == next {
			return true
		}
	}
	return false
}

// ParseGadgetStatus converts a wire value into a GadgetStatus. The error
// wraps common.ErrInvalidStatus.
func ParseGadgetStatus(v string) (GadgetStatus, error) {
	s := GadgetStatus(v)
	if !s.Valid() {
		return "", fmt.Errorf("%w %q. Expected one of: %s, %s, %s, %s",
			common.ErrInvalidStatus, v, StatusAvailable, StatusDecommissioned, StatusDeployed, StatusDestroyed)
	}
	return s, nil
}

type Gadget struct {
	ID               string       `json:"id"`
	Name             string       `json:"name"`
	Status           GadgetStatus `json:"status"`
	CreatedAt        time.Time    `json:"createdAt"`
	UpdatedAt        time.Time    `json:"updatedAt"`
	DecommissionedAt *time.Time   `json:"decommissionedAt"`
	DestroyedByID    *string      `json:"destroyedById"`
}

// GadgetPatch carries the optional fields of an update. Nil means "leave as is".
type GadgetPatch struct {
	Name   *string
	Status *GadgetStatus
}

// Empty reports whether no field is set.
func (p GadgetPatch) Empty() bool {
	return p.Name == nil && p.Status == nil
}
