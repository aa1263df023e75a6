package infrastructure

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"go-shop/internal/members/application"
	"go-shop/internal/members/domain"
	"go-shop/pkg/errors"
	"go-shop/pkg/middleware"
)

// HTTPHandler handles HTTP requests for members
type HTTPHandler struct {
	useCase *application.MemberUseCase
}

// NewHTTPHandler creates a new HTTP handler
func NewHTTPHandler(useCase *application.MemberUseCase) *HTTPHandler {
	return &HTTPHandler{useCase: useCase}
}

// RegisterRoutes registers the member routes
func (h *HTTPHandler) RegisterRoutes(r *gin.RouterGroup) {
	members := r.Group("/members")
	{
		members.GET("", h.ListMembers)
		members.POST("", h.RegisterMember)
		members.PUT("/:id", h.UpdateMember)
	}
}

// AddressPayload is the JSON shape of a postal address
type AddressPayload struct {
	Street  string `json:"street"`
	City    string `json:"city"`
	Zipcode string `json:"zipcode"`
}

// RegisterMemberRequest is the request body for registering a member
type RegisterMemberRequest struct {
	Name    string          `json:"name" binding:"required"`
	Address *AddressPayload `json:"address"`
}

// UpdateMemberRequest is the request body for renaming a member
type UpdateMemberRequest struct {
	Name string `json:"name" binding:"required"`
}

// MemberResponse is the response body for member reads
type MemberResponse struct {
	ID      uint           `json:"id"`
	Name    string         `json:"name"`
	Address AddressPayload `json:"address"`
}

// RegisterMember handles POST /members
//
//	@Summary	Register a member
//	@Tags		members
//	@Accept		json
//	@Produce	json
//	@Param		member	body		RegisterMemberRequest	true	"member to register"
//	@Success	201		{object}	map[string]interface{}
//	@Failure	400		{object}	errors.ErrorResponse
//	@Router		/api/v1/members [post]
func (h *HTTPHandler) RegisterMember(c *gin.Context) {
	var req RegisterMemberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(errors.NewValidation("invalid request body", err.Error()))
		return
	}

	var address domain.Address
	if req.Address != nil {
		address = domain.Address{
			Street:  req.Address.Street,
			City:    req.Address.City,
			Zipcode: req.Address.Zipcode,
		}
	}

	output, err := h.useCase.RegisterMember(c.Request.Context(), application.RegisterMemberInput{
		Name:    req.Name,
		Address: address,
	})
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"data":     gin.H{"id": output.Member.ID},
		"trace_id": c.GetString(middleware.TraceIDKey),
	})
}

// UpdateMember handles PUT /members/:id
//
//	@Summary	Rename a member
//	@Tags		members
//	@Accept		json
//	@Produce	json
//	@Param		id		path		int					true	"member id"
//	@Param		member	body		UpdateMemberRequest	true	"new name"
//	@Success	200		{object}	map[string]interface{}
//	@Failure	404		{object}	errors.ErrorResponse
//	@Router		/api/v1/members/{id} [put]
func (h *HTTPHandler) UpdateMember(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.Error(errors.NewValidation("invalid member id", nil))
		return
	}

	var req UpdateMemberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(errors.NewValidation("invalid request body", err.Error()))
		return
	}

	output, err := h.useCase.UpdateMember(c.Request.Context(), application.UpdateMemberInput{
		ID:   uint(id),
		Name: req.Name,
	})
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"data": gin.H{
			"id":   output.Member.ID,
			"name": output.Member.Name,
		},
		"trace_id": c.GetString(middleware.TraceIDKey),
	})
}

// ListMembers handles GET /members
//
//	@Summary	List all members
//	@Tags		members
//	@Produce	json
//	@Success	200	{object}	map[string]interface{}
//	@Router		/api/v1/members [get]
func (h *HTTPHandler) ListMembers(c *gin.Context) {
	output, err := h.useCase.ListMembers(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}

	members := make([]MemberResponse, len(output.Members))
	for i, m := range output.Members {
		members[i] = MemberResponse{
			ID:   m.ID,
			Name: m.Name,
			Address: AddressPayload{
				Street:  m.Address.Street,
				City:    m.Address.City,
				Zipcode: m.Address.Zipcode,
			},
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"count":    len(members),
		"data":     members,
		"trace_id": c.GetString(middleware.TraceIDKey),
	})
}
