package handlers

import (
	"net/http"

	"mublog/internal/services"

	"github.com/gin-gonic/gin"
)

type UsersHandler struct {
	usersService *services.UsersService
}

func NewUsersHandler() *UsersHandler {
	return &UsersHandler{
		usersService: services.NewUsersService(),
	}
}

type createUserRequest struct {
	Email       string `json:"email" binding:"required,email"`
	Password    string `json:"password" binding:"required,min=8"`
	Name        string `json:"name" binding:"required"`
	Nickname    string `json:"nickname" binding:"required,min=2"`
	PhoneNumber string `json:"phoneNumber" binding:"required"`
}

type updateUserRequest struct {
	Name        string `json:"name"`
	Nickname    string `json:"nickname"`
	PhoneNumber string `json:"phoneNumber"`
}

func (h *UsersHandler) Create(c *gin.Context) {
	var req createUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c)
		return
	}

	user, err := h.usersService.Create(services.CreateUserInput{
		Email:       req.Email,
		Password:    req.Password,
		Name:        req.Name,
		Nickname:    req.Nickname,
		PhoneNumber: req.PhoneNumber,
	})
	if err != nil {
		abortError(c, err)
		return
	}
	c.JSON(http.StatusCreated, user)
}

func (h *UsersHandler) FindAll(c *gin.Context) {
	users, err := h.usersService.FindAll()
	if err != nil {
		abortError(c, err)
		return
	}
	c.JSON(http.StatusOK, users)
}

// Me 当前登录用户
func (h *UsersHandler) Me(c *gin.Context) {
	c.JSON(http.StatusOK, CurrentUser(c))
}

// UpdateMe 更新当前用户资料
func (h *UsersHandler) UpdateMe(c *gin.Context) {
	var req updateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c)
		return
	}

	user, err := h.usersService.Update(CurrentUser(c).ID, services.UpdateUserInput{
		Name:        req.Name,
		Nickname:    req.Nickname,
		PhoneNumber: req.PhoneNumber,
	})
	if err != nil {
		abortError(c, err)
		return
	}
	c.JSON(http.StatusOK, user)
}

// DeleteMe 注销当前用户
func (h *UsersHandler) DeleteMe(c *gin.Context) {
	user, err := h.usersService.Remove(CurrentUser(c).ID)
	if err != nil {
		abortError(c, err)
		return
	}
	c.JSON(http.StatusOK, user)
}
