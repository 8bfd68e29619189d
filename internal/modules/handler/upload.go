package handler

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/void-labs/showcase/internal/infra/blob"
	"github.com/void-labs/showcase/internal/modules/serializer"
)

var allowedUploadPrefixes = map[string]bool{
	"profile_pics": true,
	"projects":     true,
	"thumbnails":   true,
}

type UploadHandler struct {
	s3     *blob.S3Deps
	expire time.Duration
}

func NewUploadHandler(s3 *blob.S3Deps, expire time.Duration) *UploadHandler {
	return &UploadHandler{s3: s3, expire: expire}
}

type PresignReq struct {
	Prefix      string `json:"prefix" binding:"required"`
	Filename    string `json:"filename" binding:"required"`
	ContentType string `json:"content_type" binding:"required"`
}

type PresignResp struct {
	Key       string `json:"key"`
	UploadURL string `json:"upload_url"`
	PublicURL string `json:"public_url"`
	ExpiresIn int    `json:"expires_in"`
}

// Presign godoc
//
//	@Summary		Pre-sign an upload
//	@Description	Returns a time-limited PUT URL. The client uploads directly to
//	@Description	object storage and stores public_url on the entity afterwards.
//	@Tags			upload
//	@Accept			json
//	@Produce		json
//	@Param			payload	body	handler.PresignReq	true	"Upload descriptor"
//	@Security		BearerAuth
//	@Success		200	{object}	serializer.Response{data=handler.PresignResp}
//	@Router			/uploads/presign [post]
func (h *UploadHandler) Presign(c *gin.Context) {
	req := PresignReq{}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, serializer.ParamErr("", err))
		return
	}
	if !allowedUploadPrefixes[req.Prefix] {
		c.JSON(http.StatusBadRequest, serializer.ParamErr("unknown prefix", nil))
		return
	}

	key := blob.ObjectKey(req.Prefix, req.Filename)
	uploadURL, err := h.s3.PresignPut(c.Request.Context(), key, req.ContentType, h.expire)
	if err != nil {
		respondErr(c, err)
		return
	}

	c.JSON(http.StatusOK, serializer.Response{Data: PresignResp{
		Key:       key,
		UploadURL: uploadURL,
		PublicURL: h.s3.ObjectURL(key),
		ExpiresIn: int(h.expire.Seconds()),
	}})
}
