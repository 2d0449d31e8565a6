package router

import (
	"mublog/internal/handlers"
	"mublog/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.Engine) {
	// Handlers
	authHandler := handlers.NewAuthHandler()
	usersHandler := handlers.NewUsersHandler()
	postsHandler := handlers.NewPostsHandler()
	commentsHandler := handlers.NewCommentsHandler()

	// 公共路由 (Public Routes)
	r.POST("/auth/signup", authHandler.Signup) // 注册
	r.POST("/auth/login", authHandler.Login)   // 登录

	r.POST("/users", usersHandler.Create) // 创建用户
	r.GET("/users", usersHandler.FindAll) // 用户列表

	r.GET("/posts", postsHandler.FindAll)                       // 文章列表（含作者与评论）
	r.GET("/posts/:id", postsHandler.FindOne)                   // 文章详情
	r.GET("/posts/:id/comments", commentsHandler.FindAllByPost) // 文章下的评论列表

	// 受保护路由 (Protected Routes)
	authorized := r.Group("/")
	authorized.Use(middleware.AuthRequired())
	{
		authorized.GET("/users/me", usersHandler.Me)          // 当前用户
		authorized.PATCH("/users/me", usersHandler.UpdateMe)  // 更新资料
		authorized.DELETE("/users/me", usersHandler.DeleteMe) // 注销账号

		authorized.POST("/posts", postsHandler.Create)              // 发布文章
		authorized.PATCH("/posts/:id", postsHandler.Update)         // 编辑文章（仅作者）
		authorized.DELETE("/posts/:id", postsHandler.Delete)        // 删除文章（仅作者）
		authorized.POST("/posts/:id/like", postsHandler.ToggleLike) // 点赞/取消点赞

		authorized.POST("/posts/:id/comments", commentsHandler.Create)              // 发表评论
		authorized.PATCH("/posts/:id/comments/:commentId", commentsHandler.Update)  // 编辑评论（仅作者）
		authorized.DELETE("/posts/:id/comments/:commentId", commentsHandler.Delete) // 删除评论（仅作者）
	}
}
