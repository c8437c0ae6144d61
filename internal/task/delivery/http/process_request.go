package http

import (
	"fmt"
	"io"

	"github.com/gin-gonic/gin"
)

const (
	formFieldFile  = "file"
	formFieldAudio = "audio"

	// maxAudioBytes bounds voice notes sent for capture.
	maxAudioBytes = 20 << 20
)

func (h *handler) processCredentialsReq(c *gin.Context) (credentialsReq, error) {
	var req credentialsReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, nil
}

func (h *handler) processDashboardReq(c *gin.Context) (dashboardReq, error) {
	var req dashboardReq
	if err := c.ShouldBindQuery(&req); err != nil {
		return req, err
	}
	return req, nil
}

func (h *handler) processCreateReq(c *gin.Context) (createReq, error) {
	var req createReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, nil
}

// processUpdateReq binds the full task body plus the URI param.
func (h *handler) processUpdateReq(c *gin.Context) (updateReq, error) {
	var req updateReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	req.ID = c.Param("id")
	if req.ID == "" {
		return req, errMissingID
	}
	return req, nil
}

func (h *handler) processCaptureReq(c *gin.Context) (captureReq, error) {
	var req captureReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, nil
}

func (h *handler) processAskReq(c *gin.Context) (askReq, error) {
	var req askReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, nil
}

// readFormFile reads a multipart file field, stopping one byte past limit so
// oversized uploads can be rejected without buffering them whole.
func (h *handler) readFormFile(c *gin.Context, field string, limit int64) (name, contentType string, data []byte, err error) {
	fh, err := c.FormFile(field)
	if err != nil {
		return "", "", nil, fmt.Errorf("%w: %v", errMissingFile, err)
	}

	f, err := fh.Open()
	if err != nil {
		return "", "", nil, fmt.Errorf("failed to open upload: %w", err)
	}
	defer f.Close()

	data, err = io.ReadAll(io.LimitReader(f, limit+1))
	if err != nil {
		return "", "", nil, fmt.Errorf("failed to read upload: %w", err)
	}
	return fh.Filename, fh.Header.Get("Content-Type"), data, nil
}
