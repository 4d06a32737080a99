package httpapi

import (
	"net/http"

	"github.com/dmitrijs2005/gadgetkeeper/internal/common"
	"github.com/dmitrijs2005/gadgetkeeper/internal/server/models"
	"github.com/dmitrijs2005/gadgetkeeper/internal/server/services"
	"github.com/gin-gonic/gin"
)

type signUpRequest struct {
	Name            string `json:"name" binding:"required,min=1,max=20,personname"`
	Email           string `json:"email" binding:"required,email,max=50"`
	Password        string `json:"password" binding:"required,min=8,max=30"`
	ConfirmPassword string `json:"confirmPassword" binding:"required,eqfield=Password"`
	Role            string `json:"role" binding:"omitempty,oneof=ADMIN USER"`
}

type signInRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type tokenResponse struct {
	Token string `json:"token"`
}

func (h *Handlers) SignUp(c *gin.Context) {
	var req signUpRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, bindingMessage(err))
		return
	}

	sess, err := h.users.SignUp(c.Request.Context(), services.SignUpInput{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
		Role:     models.Role(req.Role),
	})
	if err != nil {
		h.respondError(c, err)
		return
	}

	h.setTokenCookie(c, sess.Token)
	respondOK(c, http.StatusCreated, tokenResponse{Token: sess.Token}, "User signed up successfully")
}

func (h *Handlers) SignIn(c *gin.Context) {
	var req signInRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, bindingMessage(err))
		return
	}

	sess, err := h.users.SignIn(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		h.respondError(c, err)
		return
	}

	h.setTokenCookie(c, sess.Token)
	respondOK(c, http.StatusOK, tokenResponse{Token: sess.Token}, "User signed in successfully")
}

// SignOut clears the cookie. Tokens are not tracked server-side, so header
// clients just discard theirs.
func (h *Handlers) SignOut(c *gin.Context) {
	c.SetSameSite(http.SameSiteStrictMode)
	c.SetCookie(common.AccessTokenCookieName, "", -1, "/", "", h.secureCookies, true)
	respondOK(c, http.StatusOK, nil, "User signed out successfully")
}

func (h *Handlers) setTokenCookie(c *gin.Context, token string) {
	c.SetSameSite(http.SameSiteStrictMode)
	c.SetCookie(common.AccessTokenCookieName, token, int(h.users.TokenValidity().Seconds()), "/", "", h.secureCookies, true)
}
