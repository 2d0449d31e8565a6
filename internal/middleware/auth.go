package middleware

import (
	"net/http"
	"strings"

	"mublog/internal/db"
	"mublog/internal/models"
	"mublog/internal/utils"

	"github.com/gin-gonic/gin"
)

const CheckUserKey = "user"

// AuthRequired 校验 Bearer Token 并加载当前用户到上下文
func AuthRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "未登录"})
			return
		}

		tokenStr := strings.TrimPrefix(authHeader, "Bearer ")
		userID, err := utils.ParseToken(tokenStr)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "登录凭证无效或已过期"})
			return
		}

		// token 只携带用户 ID，这里重新查库确认用户仍然存在
		var user models.User
		if err := db.DB.First(&user, userID).Error; err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "用户不存在"})
			return
		}

		c.Set(CheckUserKey, &user)
		c.Next()
	}
}
