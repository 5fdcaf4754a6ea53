package assets

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"photoapp-backend/internal/shared/server/respond"
)

const maxUploadSize = 10 << 20 // 10MB

// Handler wires HTTP handlers to the service.
type Handler struct {
	Svc *Service
}

// NewHandler constructs a Handler.
func NewHandler(svc *Service) *Handler {
	return &Handler{Svc: svc}
}

// RegisterRoutes attaches asset routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/image/:userid", h.upload)
	rg.GET("/image/:assetid", h.retrieve)
	rg.GET("/assets", h.list)
}

type uploadRequest struct {
	AssetName string `json:"assetname"`
	Data      string `json:"data"`
}

func (h *Handler) upload(c *gin.Context) {
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxUploadSize)

	userID, err := strconv.ParseInt(c.Param("userid"), 10, 64)
	if err != nil {
		respond.ClientError(c, "invalid user id", gin.H{
			"message": ErrUnknownOwner.Error(),
			"assetid": -1,
		})
		return
	}
	c.Set("userId", userID)

	var req uploadRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.ServerError(c, "validation_error", err, gin.H{
			"message": ErrMissingInput.Error(),
			"assetid": -1,
		})
		return
	}

	assetID, err := h.Svc.Upload(c.Request.Context(), userID, req.AssetName, req.Data)
	if err != nil {
		var postWrite *PostWriteMetadataError
		switch {
		case errors.Is(err, ErrUnknownOwner):
			respond.ClientError(c, ErrUnknownOwner.Error(), gin.H{
				"message": ErrUnknownOwner.Error(),
				"assetid": -1,
			})
		case errors.As(err, &postWrite):
			respond.ServerError(c, "post_write_metadata_failure", err, gin.H{
				"message": err.Error(),
				"assetid": -1,
			})
		default:
			respond.ServerError(c, "upload_failure", err, gin.H{
				"message": err.Error(),
				"assetid": -1,
			})
		}
		return
	}

	c.Set("assetId", assetID)
	respond.OK(c, gin.H{
		"message": "success",
		"assetid": assetID,
	})
}

func (h *Handler) retrieve(c *gin.Context) {
	assetID, err := strconv.ParseInt(c.Param("assetid"), 10, 64)
	if err != nil {
		respond.ClientError(c, "invalid asset id", unknownAssetBody())
		return
	}
	c.Set("assetId", assetID)

	out, err := h.Svc.Retrieve(c.Request.Context(), assetID)
	if err != nil {
		var dangling *DanglingReferenceError
		switch {
		case errors.Is(err, ErrUnknownAsset):
			respond.ClientError(c, ErrUnknownAsset.Error(), unknownAssetBody())
		case errors.As(err, &dangling):
			respond.ServerError(c, "dangling_reference", err, serverErrorBody(err))
		default:
			respond.ServerError(c, "retrieve_failure", err, serverErrorBody(err))
		}
		return
	}

	respond.OK(c, gin.H{
		"message":    "success",
		"user_id":    out.Asset.UserID,
		"asset_name": out.Asset.AssetName,
		"bucket_key": out.Asset.BucketKey,
		"data":       out.Data,
	})
}

func (h *Handler) list(c *gin.Context) {
	all, err := h.Svc.List(c.Request.Context())
	if err != nil {
		respond.ServerError(c, "store_error", err, gin.H{
			"message": err.Error(),
			"data":    []Asset{},
		})
		return
	}
	if all == nil {
		all = []Asset{}
	}
	respond.OK(c, gin.H{
		"message": "success",
		"data":    all,
	})
}

func unknownAssetBody() gin.H {
	return gin.H{
		"message":    ErrUnknownAsset.Error(),
		"user_id":    -1,
		"asset_name": "?",
		"bucket_key": "?",
		"data":       []string{},
	}
}

func serverErrorBody(err error) gin.H {
	return gin.H{
		"message":    err.Error(),
		"user_id":    -1,
		"asset_name": "?",
		"bucket_key": "?",
		"data":       []string{},
	}
}
