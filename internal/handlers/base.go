package handlers

import (
	"errors"
	"net/http"

	"mublog/internal/middleware"
	"mublog/internal/models"
	"mublog/internal/services"

	"github.com/gin-gonic/gin"
)

// CurrentUser 取出 middleware.AuthRequired 加载的当前用户
func CurrentUser(c *gin.Context) *models.User {
	return c.MustGet(middleware.CheckUserKey).(*models.User)
}

// abortError 将业务错误翻译为 JSON 响应，未知错误一律 500
func abortError(c *gin.Context, err error) {
	var svcErr *services.Error
	if errors.As(err, &svcErr) {
		c.JSON(svcErr.Status, gin.H{"error": svcErr.Message})
		return
	}
	c.JSON(http.StatusInternalServerError, gin.H{"error": "服务器内部错误"})
}

func badRequest(c *gin.Context) {
	c.JSON(http.StatusBadRequest, gin.H{"error": "请求参数不正确"})
}
