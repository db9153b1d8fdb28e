package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"bookrec/src/app/http/dto"
	"bookrec/src/app/http/response"
	"bookrec/src/app/middleware"
	"bookrec/src/core/usecase"
)

// UserHandler handles user endpoints.
type UserHandler struct {
	userService *usecase.UserService
}

func NewUserHandler(userService *usecase.UserService) *UserHandler {
	return &UserHandler{userService: userService}
}

// parseUserID extracts the :user_id path parameter, writing a 400
// response when it is not a valid UUID.
func parseUserID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("user_id"))
	if err != nil {
		response.BadRequest(c, "invalid user id", middleware.GetRequestID(c))
		return uuid.Nil, false
	}
	return id, true
}

func (h *UserHandler) Create(c *gin.Context) {
	var req dto.CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error(), middleware.GetRequestID(c))
		return
	}
	user, err := h.userService.Create(c.Request.Context(), usecase.CreateUserInput{
		Username:        req.Username,
		FirstName:       req.FirstName,
		LastName:        req.LastName,
		Email:           req.Email,
		PreferredGenres: req.PreferredGenres,
	})
	if err != nil {
		response.FromDomainError(c, err, middleware.GetRequestID(c))
		return
	}
	response.Created(c, dto.UserFromDomain(user))
}

func (h *UserHandler) Get(c *gin.Context) {
	id, ok := parseUserID(c)
	if !ok {
		return
	}
	user, err := h.userService.GetByID(c.Request.Context(), id)
	if err != nil {
		response.FromDomainError(c, err, middleware.GetRequestID(c))
		return
	}
	response.OK(c, dto.UserFromDomain(user))
}

// List returns all users, or a single-user lookup when the email or
// username query parameter is present.
func (h *UserHandler) List(c *gin.Context) {
	ctx := c.Request.Context()
	requestID := middleware.GetRequestID(c)

	if email := c.Query("email"); email != "" {
		user, err := h.userService.GetByEmail(ctx, email)
		if err != nil {
			response.FromDomainError(c, err, requestID)
			return
		}
		response.OK(c, dto.UserFromDomain(user))
		return
	}
	if username := c.Query("username"); username != "" {
		user, err := h.userService.GetByUsername(ctx, username)
		if err != nil {
			response.FromDomainError(c, err, requestID)
			return
		}
		response.OK(c, dto.UserFromDomain(user))
		return
	}

	users, err := h.userService.ListAll(ctx)
	if err != nil {
		response.FromDomainError(c, err, requestID)
		return
	}
	response.OK(c, gin.H{"users": dto.UsersFromDomain(users)})
}

func (h *UserHandler) Update(c *gin.Context) {
	id, ok := parseUserID(c)
	if !ok {
		return
	}
	var req dto.UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error(), middleware.GetRequestID(c))
		return
	}
	user, err := h.userService.Update(c.Request.Context(), id, usecase.UpdateUserInput{
		Username:  req.Username,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
	})
	if err != nil {
		response.FromDomainError(c, err, middleware.GetRequestID(c))
		return
	}
	response.OK(c, dto.UserFromDomain(user))
}

func (h *UserHandler) UpdatePreferredGenres(c *gin.Context) {
	id, ok := parseUserID(c)
	if !ok {
		return
	}
	var req dto.UpdateGenresRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error(), middleware.GetRequestID(c))
		return
	}
	user, err := h.userService.UpdatePreferredGenres(c.Request.Context(), id, req.Genres)
	if err != nil {
		response.FromDomainError(c, err, middleware.GetRequestID(c))
		return
	}
	response.OK(c, dto.UserFromDomain(user))
}

func (h *UserHandler) MarkRead(c *gin.Context) {
	userID, ok := parseUserID(c)
	if !ok {
		return
	}
	bookID, ok := parseBookID(c)
	if !ok {
		return
	}
	user, err := h.userService.MarkBookAsRead(c.Request.Context(), userID, bookID)
	if err != nil {
		response.FromDomainError(c, err, middleware.GetRequestID(c))
		return
	}
	response.OK(c, dto.UserFromDomain(user))
}

func (h *UserHandler) UnmarkRead(c *gin.Context) {
	userID, ok := parseUserID(c)
	if !ok {
		return
	}
	bookID, ok := parseBookID(c)
	if !ok {
		return
	}
	user, err := h.userService.UnmarkBookAsRead(c.Request.Context(), userID, bookID)
	if err != nil {
		response.FromDomainError(c, err, middleware.GetRequestID(c))
		return
	}
	response.OK(c, dto.UserFromDomain(user))
}

func (h *UserHandler) Delete(c *gin.Context) {
	id, ok := parseUserID(c)
	if !ok {
		return
	}
	if err := h.userService.Delete(c.Request.Context(), id); err != nil {
		response.FromDomainError(c, err, middleware.GetRequestID(c))
		return
	}
	response.NoContent(c)
}
