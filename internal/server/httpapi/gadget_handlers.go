package httpapi

import (
	"net/http"

	"github.com/dmitrijs2005/gadgetkeeper/internal/common"
	"github.com/dmitrijs2005/gadgetkeeper/internal/server/models"
	"github.com/gin-gonic/gin"
)

// Names are capped at the width of gadgets.name.
type createGadgetRequest struct {
	Name string `json:"name" binding:"omitempty,max=100"`
}

type updateGadgetRequest struct {
	ID     string  `json:"id"`
	Name   *string `json:"name" binding:"omitempty,max=100"`
	Status *string `json:"status"`
}

type decommissionRequest struct {
	ID string `json:"id"`
}

type selfDestructResponse struct {
	Gadget           *models.Gadget `json:"gadget"`
	ConfirmationCode int            `json:"confirmationCode"`
}

func (h *Handlers) ListGadgets(c *gin.Context) {
	res, err := h.gadgets.List(c.Request.Context(), c.Query("status"))
	if err != nil {
		h.respondError(c, err)
		return
	}
	respondOK(c, http.StatusOK, res.Items, res.Message)
}

func (h *Handlers) GetGadget(c *gin.Context) {
	g, err := h.gadgets.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.respondError(c, err)
		return
	}
	respondOK(c, http.StatusOK, g, "")
}

// CreateGadget accepts an optional name; an empty or missing body allocates one.
func (h *Handlers) CreateGadget(c *gin.Context) {
	var req createGadgetRequest
	if c.Request.ContentLength != 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			abortWithError(c, http.StatusBadRequest, bindingMessage(err))
			return
		}
	}

	g, err := h.gadgets.Create(c.Request.Context(), req.Name)
	if err != nil {
		h.respondError(c, err)
		return
	}
	respondOK(c, http.StatusCreated, g, "Gadget added successfully")
}

// UpdateGadget treats empty strings as absent fields.
func (h *Handlers) UpdateGadget(c *gin.Context) {
	var req updateGadgetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, bindingMessage(err))
		return
	}

	var patch models.GadgetPatch
	if req.Name != nil && *req.Name != "" {
		patch.Name = req.Name
	}
	if req.Status != nil && *req.Status != "" {
		st := models.GadgetStatus(*req.Status)
		patch.Status = &st
	}

	g, err := h.gadgets.Update(c.Request.Context(), req.ID, patch)
	if err != nil {
		h.respondError(c, err)
		return
	}
	respondOK(c, http.StatusOK, g, "Gadget updated successfully")
}

func (h *Handlers) DecommissionGadget(c *gin.Context) {
	var req decommissionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, bindingMessage(err))
		return
	}

	g, err := h.gadgets.Decommission(c.Request.Context(), req.ID)
	if err != nil {
		h.respondError(c, err)
		return
	}
	respondOK(c, http.StatusOK, g, "Gadget decommissioned successfully")
}

func (h *Handlers) SelfDestructGadget(c *gin.Context) {
	id := identityFrom(c)
	if id == nil {
		h.respondError(c, common.ErrorUnauthenticated)
		return
	}

	res, err := h.gadgets.SelfDestruct(c.Request.Context(), c.Param("id"), id.UserID)
	if err != nil {
		h.respondError(c, err)
		return
	}
	respondOK(c, http.StatusOK, selfDestructResponse{Gadget: res.Gadget, ConfirmationCode: res.ConfirmationCode}, "Gadget destroyed successfully")
}
