package handlers

import (
	"net/http"

	"mublog/internal/models"
	"mublog/internal/services"
	"mublog/internal/utils"

	"github.com/gin-gonic/gin"
)

type PostsHandler struct {
	postsService *services.PostsService
}

func NewPostsHandler() *PostsHandler {
	return &PostsHandler{
		postsService: services.NewPostsService(),
	}
}

type createPostRequest struct {
	Title   string `json:"title" binding:"required"`
	Content string `json:"content"`
}

type updatePostRequest struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}

// postDetail 详情响应额外携带渲染后的 HTML
type postDetail struct {
	models.Post
	ContentHTML string `json:"contentHtml"`
}

func (h *PostsHandler) Create(c *gin.Context) {
	var req createPostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c)
		return
	}

	post, err := h.postsService.Create(services.PostInput{
		Title:   req.Title,
		Content: req.Content,
	}, CurrentUser(c).ID)
	if err != nil {
		abortError(c, err)
		return
	}
	c.JSON(http.StatusCreated, post)
}

func (h *PostsHandler) FindAll(c *gin.Context) {
	posts, err := h.postsService.FindAll()
	if err != nil {
		abortError(c, err)
		return
	}
	c.JSON(http.StatusOK, posts)
}

func (h *PostsHandler) FindOne(c *gin.Context) {
	post, err := h.postsService.FindOne(utils.StringToUint(c.Param("id")))
	if err != nil {
		abortError(c, err)
		return
	}
	c.JSON(http.StatusOK, postDetail{
		Post:        *post,
		ContentHTML: utils.RenderMarkdown(post.Content),
	})
}

func (h *PostsHandler) Update(c *gin.Context) {
	var req updatePostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c)
		return
	}

	post, err := h.postsService.Update(utils.StringToUint(c.Param("id")), services.PostInput{
		Title:   req.Title,
		Content: req.Content,
	}, CurrentUser(c).ID)
	if err != nil {
		abortError(c, err)
		return
	}
	c.JSON(http.StatusOK, post)
}

func (h *PostsHandler) Delete(c *gin.Context) {
	post, err := h.postsService.Remove(utils.StringToUint(c.Param("id")), CurrentUser(c).ID)
	if err != nil {
		abortError(c, err)
		return
	}
	c.JSON(http.StatusOK, post)
}

// ToggleLike 点赞/取消点赞
func (h *PostsHandler) ToggleLike(c *gin.Context) {
	result, err := h.postsService.ToggleLike(utils.StringToUint(c.Param("id")), CurrentUser(c).ID)
	if err != nil {
		abortError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}
