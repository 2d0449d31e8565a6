package handlers

import (
	"net/http"

	"mublog/internal/services"
	"mublog/internal/utils"

	"github.com/gin-gonic/gin"
)

type CommentsHandler struct {
	commentsService *services.CommentsService
}

func NewCommentsHandler() *CommentsHandler {
	return &CommentsHandler{
		commentsService: services.NewCommentsService(),
	}
}

type commentRequest struct {
	Content string `json:"content" binding:"required"`
}

func (h *CommentsHandler) FindAllByPost(c *gin.Context) {
	list, err := h.commentsService.FindAllByPost(utils.StringToUint(c.Param("id")))
	if err != nil {
		abortError(c, err)
		return
	}
	c.JSON(http.StatusOK, list)
}

func (h *CommentsHandler) Create(c *gin.Context) {
	var req commentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c)
		return
	}

	comment, err := h.commentsService.Create(
		utils.StringToUint(c.Param("id")),
		CurrentUser(c).ID,
		req.Content,
	)
	if err != nil {
		abortError(c, err)
		return
	}
	c.JSON(http.StatusCreated, comment)
}

func (h *CommentsHandler) Update(c *gin.Context) {
	var req commentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c)
		return
	}

	comment, err := h.commentsService.Update(
		utils.StringToUint(c.Param("commentId")),
		req.Content,
		CurrentUser(c).ID,
		utils.StringToUint(c.Param("id")),
	)
	if err != nil {
		abortError(c, err)
		return
	}
	c.JSON(http.StatusOK, comment)
}

func (h *CommentsHandler) Delete(c *gin.Context) {
	comment, err := h.commentsService.Remove(
		utils.StringToUint(c.Param("commentId")),
		CurrentUser(c).ID,
		utils.StringToUint(c.Param("id")),
	)
	if err != nil {
		abortError(c, err)
		return
	}
	c.JSON(http.StatusOK, comment)
}
