package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"life-admin/pkg/response"
)

// Signup godoc
// @Summary     Register an account
// @Tags        Auth
// @Accept      json
// @Produce     json
// @Param       body body     credentialsReq true "Email and password"
// @Success     200  {object} userResp
// @Failure     400  {object} response.DetailResp "Bad Request"
// @Failure     409  {object} response.DetailResp "Email already registered"
// @Router      /signup [POST]
func (h *handler) Signup(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processCredentialsReq(c)
	if err != nil {
		response.Detail(c, http.StatusBadRequest, "useremail and password are required")
		return
	}

	user, err := h.uc.Signup(ctx, req.toInput())
	if err != nil {
		status, msg := mapError(err)
		if status == http.StatusInternalServerError {
			h.l.Errorf(ctx, "uc.Signup: %v", err)
		}
		response.Detail(c, status, msg)
		return
	}

	c.JSON(http.StatusOK, newUserResp(user))
}

// Login godoc
// @Summary     Exchange credentials for an access token
// @Tags        Auth
// @Accept      json
// @Produce     json
// @Param       body body     credentialsReq true "Email and password"
// @Success     200  {object} tokenResp
// @Failure     400  {object} response.DetailResp "Bad Request"
// @Failure     401  {object} response.DetailResp "Incorrect email or password"
// @Router      /login [POST]
func (h *handler) Login(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processCredentialsReq(c)
	if err != nil {
		response.Detail(c, http.StatusBadRequest, "useremail and password are required")
		return
	}

	token, err := h.uc.Login(ctx, req.toInput())
	if err != nil {
		status, msg := mapError(err)
		if status == http.StatusInternalServerError {
			h.l.Errorf(ctx, "uc.Login: %v", err)
		}
		response.Detail(c, status, msg)
		return
	}

	c.JSON(http.StatusOK, newTokenResp(token))
}
