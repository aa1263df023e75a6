package infrastructure

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"go-shop/internal/items/application"
	"go-shop/internal/items/domain"
	"go-shop/pkg/errors"
	"go-shop/pkg/middleware"
)

// HTTPHandler handles HTTP requests for the catalog
type HTTPHandler struct {
	useCase *application.ItemUseCase
}

// NewHTTPHandler creates a new HTTP handler
func NewHTTPHandler(useCase *application.ItemUseCase) *HTTPHandler {
	return &HTTPHandler{useCase: useCase}
}

// RegisterRoutes registers the item routes
func (h *HTTPHandler) RegisterRoutes(r *gin.RouterGroup) {
	items := r.Group("/items")
	{
		items.GET("", h.ListItems)
		items.POST("", h.RegisterItem)
		items.PUT("/:id", h.UpdateItem)
	}
}

// RegisterItemRequest is the request body for registering an item
type RegisterItemRequest struct {
	Kind     string `json:"kind" binding:"required"`
	Name     string `json:"name" binding:"required"`
	Price    int64  `json:"price"`
	Stock    int    `json:"stock"`
	Author   string `json:"author,omitempty"`
	ISBN     string `json:"isbn,omitempty"`
	Artist   string `json:"artist,omitempty"`
	Studio   string `json:"studio,omitempty"`
	Director string `json:"director,omitempty"`
	Actor    string `json:"actor,omitempty"`
}

// UpdateItemRequest is the request body for updating an item.
// All fields are required: the update is a full overwrite.
type UpdateItemRequest struct {
	Name  string `json:"name" binding:"required"`
	Price *int64 `json:"price" binding:"required"`
	Stock *int   `json:"stock" binding:"required"`
}

// ItemResponse is the response body for item reads
type ItemResponse struct {
	ID       uint   `json:"id"`
	Kind     string `json:"kind"`
	Name     string `json:"name"`
	Price    int64  `json:"price"`
	Stock    int    `json:"stock"`
	Author   string `json:"author,omitempty"`
	ISBN     string `json:"isbn,omitempty"`
	Artist   string `json:"artist,omitempty"`
	Studio   string `json:"studio,omitempty"`
	Director string `json:"director,omitempty"`
	Actor    string `json:"actor,omitempty"`
}

func toResponse(item *domain.Item) ItemResponse {
	resp := ItemResponse{
		ID:    item.ID,
		Kind:  string(item.Kind),
		Name:  item.Name,
		Price: item.Price,
		Stock: item.StockQuantity,
	}
	switch {
	case item.Book != nil:
		resp.Author = item.Book.Author
		resp.ISBN = item.Book.ISBN
	case item.Album != nil:
		resp.Artist = item.Album.Artist
		resp.Studio = item.Album.Studio
	case item.Movie != nil:
		resp.Director = item.Movie.Director
		resp.Actor = item.Movie.Actor
	}
	return resp
}

// RegisterItem handles POST /items
//
//	@Summary	Register a catalog item
//	@Tags		items
//	@Accept		json
//	@Produce	json
//	@Param		item	body		RegisterItemRequest	true	"item to register"
//	@Success	201		{object}	map[string]interface{}
//	@Failure	400		{object}	errors.ErrorResponse
//	@Router		/api/v1/items [post]
func (h *HTTPHandler) RegisterItem(c *gin.Context) {
	var req RegisterItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(errors.NewValidation("invalid request body", err.Error()))
		return
	}

	input := application.RegisterItemInput{
		Kind:  domain.Kind(req.Kind),
		Name:  req.Name,
		Price: req.Price,
		Stock: req.Stock,
	}
	switch input.Kind {
	case domain.KindBook:
		input.Book = &domain.BookDetails{Author: req.Author, ISBN: req.ISBN}
	case domain.KindAlbum:
		input.Album = &domain.AlbumDetails{Artist: req.Artist, Studio: req.Studio}
	case domain.KindMovie:
		input.Movie = &domain.MovieDetails{Director: req.Director, Actor: req.Actor}
	}

	output, err := h.useCase.RegisterItem(c.Request.Context(), input)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"data":     gin.H{"id": output.Item.ID},
		"trace_id": c.GetString(middleware.TraceIDKey),
	})
}

// UpdateItem handles PUT /items/:id
//
//	@Summary	Overwrite a catalog item's name, price and stock
//	@Tags		items
//	@Accept		json
//	@Produce	json
//	@Param		id		path		int					true	"item id"
//	@Param		item	body		UpdateItemRequest	true	"full set of mutable fields"
//	@Success	200		{object}	map[string]interface{}
//	@Failure	404		{object}	errors.ErrorResponse
//	@Router		/api/v1/items/{id} [put]
func (h *HTTPHandler) UpdateItem(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.Error(errors.NewValidation("invalid item id", nil))
		return
	}

	var req UpdateItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(errors.NewValidation("invalid request body", err.Error()))
		return
	}

	output, err := h.useCase.UpdateItem(c.Request.Context(), application.UpdateItemInput{
		ID:    uint(id),
		Name:  req.Name,
		Price: *req.Price,
		Stock: *req.Stock,
	})
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"data":     toResponse(output.Item),
		"trace_id": c.GetString(middleware.TraceIDKey),
	})
}

// ListItems handles GET /items
//
//	@Summary	List the catalog
//	@Tags		items
//	@Produce	json
//	@Success	200	{object}	map[string]interface{}
//	@Router		/api/v1/items [get]
func (h *HTTPHandler) ListItems(c *gin.Context) {
	output, err := h.useCase.ListItems(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}

	items := make([]ItemResponse, len(output.Items))
	for i, item := range output.Items {
		items[i] = toResponse(item)
	}

	c.JSON(http.StatusOK, gin.H{
		"count":    len(items),
		"data":     items,
		"trace_id": c.GetString(middleware.TraceIDKey),
	})
}
