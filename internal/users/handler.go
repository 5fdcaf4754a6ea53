package users

import (
	"strings"

	"github.com/gin-gonic/gin"

	"photoapp-backend/internal/shared/server/respond"
)

// Handler wires HTTP handlers to the service.
type Handler struct {
	Svc *Service
}

// NewHandler constructs a Handler.
func NewHandler(svc *Service) *Handler {
	return &Handler{Svc: svc}
}

// RegisterRoutes attaches user routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.PUT("/user", h.upsert)
	rg.GET("/users", h.list)
}

type upsertRequest struct {
	Email        string `json:"email"`
	LastName     string `json:"lastname"`
	FirstName    string `json:"firstname"`
	BucketFolder string `json:"bucketfolder"`
}

func (h *Handler) upsert(c *gin.Context) {
	var req upsertRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.ClientError(c, "invalid request body", gin.H{
			"message": "missing required information",
		})
		return
	}

	req.Email = strings.TrimSpace(req.Email)
	if req.Email == "" || req.LastName == "" || req.FirstName == "" || req.BucketFolder == "" {
		respond.ClientError(c, "missing required information", gin.H{
			"message": "missing required information",
		})
		return
	}

	userID, inserted, err := h.Svc.Upsert(c.Request.Context(), User{
		Email:        req.Email,
		LastName:     req.LastName,
		FirstName:    req.FirstName,
		BucketFolder: req.BucketFolder,
	})
	if err != nil {
		respond.ServerError(c, "store_error", err, gin.H{
			"message": err.Error(),
			"userid":  -1,
		})
		return
	}

	message := "updated"
	if inserted {
		message = "inserted"
	}
	c.Set("userId", userID)
	respond.OK(c, gin.H{
		"userid":  userID,
		"message": message,
	})
}

func (h *Handler) list(c *gin.Context) {
	all, err := h.Svc.List(c.Request.Context())
	if err != nil {
		respond.ServerError(c, "store_error", err, gin.H{
			"message": err.Error(),
			"data":    []User{},
		})
		return
	}
	if all == nil {
		all = []User{}
	}
	respond.OK(c, gin.H{
		"message": "success",
		"data":    all,
	})
}
