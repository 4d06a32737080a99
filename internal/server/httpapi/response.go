package httpapi

import (
	"errors"
	"net/http"
	"strings"
	"unicode"

	"github.com/dmitrijs2005/gadgetkeeper/internal/common"
	"github.com/dmitrijs2005/gadgetkeeper/internal/dbx"
	"github.com/gin-gonic/gin"
)

const internalErrorMessage = "Internal server error"

// envelope is the body of every response.
type envelope struct {
	Success bool   `json:"success"`
	Data    any    `json:"data"`
	Error   string `json:"error,omitempty"`
	Message string `json:"message,omitempty"`
}

// statusGroups maps sentinel errors to HTTP codes. Order matters only for
// errors that wrap more than one sentinel.
var statusGroups = []struct {
	code int
	errs []error
}{
	{http.StatusBadRequest, []error{
		common.ErrorValidation, common.ErrNoFieldsProvided, common.ErrInvalidStatus,
		common.ErrInvalidTransition, common.ErrAlreadyDecommissioned, common.ErrAlreadyDestroyed,
		common.ErrGadgetIDRequired, common.ErrInvalidGadgetID,
	}},
	{http.StatusNotFound, []error{common.ErrorNotFound}},
	{http.StatusConflict, []error{common.ErrorAlreadyExists, common.ErrDuplicateName, common.ErrDuplicateEmail}},
	{http.StatusUnauthorized, []error{
		common.ErrorUnauthenticated, common.ErrInvalidToken, common.ErrTokenExpired, common.ErrInvalidPassword,
	}},
	{http.StatusForbidden, []error{common.ErrorForbidden}},
}

func statusFor(err error) int {
	for _, g := range statusGroups {
		for _, target := range g.errs {
			if errors.Is(err, target) {
				return g.code
			}
		}
	}
	return http.StatusInternalServerError
}

// publicMessage is the text placed in the envelope's error field.
func publicMessage(err error, code int) string {
	switch {
	case errors.Is(err, common.ErrorUnauthenticated):
		return "Please login to continue"
	case errors.Is(err, common.ErrInvalidToken), errors.Is(err, common.ErrTokenExpired):
		return "Invalid or expired token"
	case errors.Is(err, common.ErrorForbidden):
		return "Access denied: Admin privileges required"
	case errors.Is(err, common.ErrInvalidPassword):
		return "Invalid credentials"
	case errors.Is(err, common.ErrAlreadyDecommissioned):
		return "Gadget already decommissioned"
	case errors.Is(err, common.ErrAlreadyDestroyed):
		return "Gadget already destroyed"
	}

	if code == http.StatusInternalServerError {
		var se *dbx.StorageError
		if errors.As(err, &se) && se.Msg != "" {
			return se.Msg
		}
		if errors.Is(err, common.ErrNameAllocationFailed) {
			return capitalize(common.ErrNameAllocationFailed.Error())
		}
		return internalErrorMessage
	}

	return capitalize(err.Error())
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	r := []rune(s)
	r[0] = unicode.ToUpper(r[0])
	return string(r)
}

func respondOK(c *gin.Context, code int, data any, message string) {
	c.JSON(code, envelope{Success: true, Data: data, Message: message})
}

// respondError writes the error envelope and logs server-side failures.
func (h *Handlers) respondError(c *gin.Context, err error) {
	code := statusFor(err)
	if code == http.StatusInternalServerError {
		h.logger.Error(c.Request.Context(), "request failed", "path", c.FullPath(), "error", err)
	}
	abortWithError(c, code, publicMessage(err, code))
}

func abortWithError(c *gin.Context, code int, msg string) {
	c.AbortWithStatusJSON(code, envelope{Success: false, Error: strings.TrimSpace(msg)})
}
