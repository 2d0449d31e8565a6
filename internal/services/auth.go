package services

import (
	"errors"

	"mublog/internal/db"
	"mublog/internal/models"
	"mublog/internal/utils"

	"gorm.io/gorm"
)

type AuthService struct{}

func NewAuthService() *AuthService {
	return &AuthService{}
}

type SignupInput struct {
	Email       string
	Password    string
	Name        string
	Nickname    string
	PhoneNumber string
}

// AuthResult 注册/登录的统一返回：脱敏用户 + 访问令牌
type AuthResult struct {
	User        *models.User `json:"user"`
	AccessToken string       `json:"accessToken"`
}

// Signup 注册新用户。邮箱、昵称、手机号三者全局唯一，
// 冲突时按 邮箱 > 昵称 > 手机号 的优先级返回对应提示。
func (s *AuthService) Signup(input SignupInput) (*AuthResult, error) {
	var existing models.User
	err := db.DB.
		Where("email = ? OR nickname = ? OR phone_number = ?", input.Email, input.Nickname, input.PhoneNumber).
		First(&existing).Error
	if err == nil {
		switch {
		case existing.Email == input.Email:
			return nil, conflict("邮箱已被注册")
		case existing.Nickname == input.Nickname:
			return nil, conflict("昵称已被使用")
		case existing.PhoneNumber == input.PhoneNumber:
			return nil, conflict("手机号已被注册")
		}
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	hash, err := utils.HashPassword(input.Password)
	if err != nil {
		return nil, err
	}

	user := models.User{
		Email:       input.Email,
		Password:    hash,
		Name:        input.Name,
		Nickname:    input.Nickname,
		PhoneNumber: input.PhoneNumber,
	}
	if err := db.DB.Create(&user).Error; err != nil {
		return nil, err
	}

	token, err := utils.GenerateToken(user.ID)
	if err != nil {
		return nil, err
	}

	return &AuthResult{User: &user, AccessToken: token}, nil
}

// Login 邮箱 + 密码登录。未注册与密码错误返回不同提示，状态码均为 401。
func (s *AuthService) Login(email, password string) (*AuthResult, error) {
	var user models.User
	if err := db.DB.Where("email = ?", email).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, unauthorized("邮箱未注册")
		}
		return nil, err
	}

	if !utils.CheckPasswordHash(password, user.Password) {
		return nil, unauthorized("密码不正确")
	}

	token, err := utils.GenerateToken(user.ID)
	if err != nil {
		return nil, err
	}

	return &AuthResult{User: &user, AccessToken: token}, nil
}
