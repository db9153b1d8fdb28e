package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"bookrec/src/app/http/dto"
	"bookrec/src/app/http/response"
	"bookrec/src/app/middleware"
	"bookrec/src/core/usecase"
)

// BookHandler handles book endpoints.
type BookHandler struct {
	bookService *usecase.BookService
}

func NewBookHandler(bookService *usecase.BookService) *BookHandler {
	return &BookHandler{bookService: bookService}
}

// parseBookID extracts the :book_id path parameter, writing a 400
// response when it is not a valid UUID.
func parseBookID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("book_id"))
	if err != nil {
		response.BadRequest(c, "invalid book id", middleware.GetRequestID(c))
		return uuid.Nil, false
	}
	return id, true
}

func (h *BookHandler) Create(c *gin.Context) {
	var req dto.CreateBookRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error(), middleware.GetRequestID(c))
		return
	}
	book, err := h.bookService.Create(c.Request.Context(), usecase.CreateBookInput{
		Title:       req.Title,
		Author:      req.Author,
		Description: req.Description,
		Genres:      req.Genres,
		PublishDate: req.PublishDate,
	})
	if err != nil {
		response.FromDomainError(c, err, middleware.GetRequestID(c))
		return
	}
	response.Created(c, dto.BookFromDomain(book))
}

func (h *BookHandler) Get(c *gin.Context) {
	id, ok := parseBookID(c)
	if !ok {
		return
	}
	book, err := h.bookService.GetByID(c.Request.Context(), id)
	if err != nil {
		response.FromDomainError(c, err, middleware.GetRequestID(c))
		return
	}
	response.OK(c, dto.BookFromDomain(book))
}

func (h *BookHandler) GetByTitle(c *gin.Context) {
	title := c.Param("title")
	book, err := h.bookService.GetByTitle(c.Request.Context(), title)
	if err != nil {
		response.FromDomainError(c, err, middleware.GetRequestID(c))
		return
	}
	response.OK(c, dto.BookFromDomain(book))
}

// List returns all books, optionally filtered by the author or genre
// query parameter.
func (h *BookHandler) List(c *gin.Context) {
	ctx := c.Request.Context()
	if author := c.Query("author"); author != "" {
		books, err := h.bookService.ListByAuthor(ctx, author)
		if err != nil {
			response.FromDomainError(c, err, middleware.GetRequestID(c))
			return
		}
		response.OK(c, gin.H{"books": dto.BooksFromDomain(books)})
		return
	}
	if genre := c.Query("genre"); genre != "" {
		books, err := h.bookService.ListByGenre(ctx, genre)
		if err != nil {
			response.FromDomainError(c, err, middleware.GetRequestID(c))
			return
		}
		response.OK(c, gin.H{"books": dto.BooksFromDomain(books)})
		return
	}
	books, err := h.bookService.ListAll(ctx)
	if err != nil {
		response.FromDomainError(c, err, middleware.GetRequestID(c))
		return
	}
	response.OK(c, gin.H{"books": dto.BooksFromDomain(books)})
}

func (h *BookHandler) AddGenre(c *gin.Context) {
	id, ok := parseBookID(c)
	if !ok {
		return
	}
	var req dto.AddGenreRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error(), middleware.GetRequestID(c))
		return
	}
	book, err := h.bookService.AddGenre(c.Request.Context(), id, req.Genre)
	if err != nil {
		response.FromDomainError(c, err, middleware.GetRequestID(c))
		return
	}
	response.OK(c, dto.BookFromDomain(book))
}

func (h *BookHandler) UpdateGenres(c *gin.Context) {
	id, ok := parseBookID(c)
	if !ok {
		return
	}
	var req dto.UpdateGenresRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error(), middleware.GetRequestID(c))
		return
	}
	book, err := h.bookService.UpdateGenres(c.Request.Context(), id, req.Genres)
	if err != nil {
		response.FromDomainError(c, err, middleware.GetRequestID(c))
		return
	}
	response.OK(c, dto.BookFromDomain(book))
}

func (h *BookHandler) Delete(c *gin.Context) {
	id, ok := parseBookID(c)
	if !ok {
		return
	}
	if err := h.bookService.Delete(c.Request.Context(), id); err != nil {
		response.FromDomainError(c, err, middleware.GetRequestID(c))
		return
	}
	response.NoContent(c)
}
