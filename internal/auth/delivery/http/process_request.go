package http

import "github.com/gin-gonic/gin"

func (h *handler) processCredentialsReq(c *gin.Context) (credentialsReq, error) {
	var req credentialsReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, nil
}
