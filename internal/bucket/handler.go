package bucket

import (
	"time"

	"github.com/gin-gonic/gin"

	"photoapp-backend/internal/shared/server/respond"
	"photoapp-backend/internal/shared/storage/object"
)

// Handler wires HTTP handlers to the service.
type Handler struct {
	Svc *Service
}

// NewHandler constructs a Handler.
func NewHandler(svc *Service) *Handler {
	return &Handler{Svc: svc}
}

// RegisterRoutes attaches bucket routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/bucket", h.listPage)
}

// entryResponse preserves the S3 listing field casing clients already
// parse.
type entryResponse struct {
	Key          string    `json:"Key"`
	LastModified time.Time `json:"LastModified"`
	ETag         string    `json:"ETag"`
	Size         int64     `json:"Size"`
	StorageClass string    `json:"StorageClass"`
}

func (h *Handler) listPage(c *gin.Context) {
	afterKey := c.Query("startafter")

	page, err := h.Svc.ListPage(c.Request.Context(), afterKey)
	if err != nil {
		respond.ServerError(c, "store_error", err, gin.H{
			"message": err.Error(),
			"data":    []entryResponse{},
		})
		return
	}

	respond.OK(c, gin.H{
		"message": "success",
		"data":    toResponse(page.Entries),
	})
}

func toResponse(entries []object.Entry) []entryResponse {
	out := make([]entryResponse, 0, len(entries))
	for _, entry := range entries {
		out = append(out, entryResponse{
			Key:          entry.Key,
			LastModified: entry.LastModified,
			ETag:         entry.ETag,
			Size:         entry.Size,
			StorageClass: entry.StorageClass,
		})
	}
	return out
}
