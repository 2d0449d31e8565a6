package services

import (
	"errors"

	"mublog/internal/db"
	"mublog/internal/models"

	"gorm.io/gorm"
)

type UsersService struct{}

func NewUsersService() *UsersService {
	return &UsersService{}
}

type CreateUserInput struct {
	Email       string
	Password    string
	Name        string
	Nickname    string
	PhoneNumber string
}

// UpdateUserInput 局部更新，空字符串表示不修改该字段
type UpdateUserInput struct {
	Name        string
	Nickname    string
	PhoneNumber string
}

// Create 按传入数据落库（密码已由上游处理），返回脱敏记录。
// 唯一索引冲突直接映射为 409。
func (s *UsersService) Create(input CreateUserInput) (*models.User, error) {
	user := models.User{
		Email:       input.Email,
		Password:    input.Password,
		Name:        input.Name,
		Nickname:    input.Nickname,
		PhoneNumber: input.PhoneNumber,
	}
	if err := db.DB.Create(&user).Error; err != nil {
		return nil, conflict("邮箱、昵称或手机号已被使用")
	}
	return &user, nil
}

func (s *UsersService) FindAll() ([]models.User, error) {
	var users []models.User
	if err := db.DB.Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}

func (s *UsersService) FindOne(id uint) (*models.User, error) {
	var user models.User
	if err := db.DB.First(&user, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, notFound("用户不存在")
		}
		return nil, err
	}
	return &user, nil
}

// Update 局部更新资料。昵称或手机号变更时先检查是否与其他用户冲突，
// 昵称优先于手机号返回提示。
func (s *UsersService) Update(id uint, input UpdateUserInput) (*models.User, error) {
	if input.Nickname != "" || input.PhoneNumber != "" {
		query := db.DB.Where("id != ?", id)
		switch {
		case input.Nickname != "" && input.PhoneNumber != "":
			query = query.Where("nickname = ? OR phone_number = ?", input.Nickname, input.PhoneNumber)
		case input.Nickname != "":
			query = query.Where("nickname = ?", input.Nickname)
		default:
			query = query.Where("phone_number = ?", input.PhoneNumber)
		}

		var other models.User
		err := query.First(&other).Error
		if err == nil {
			if input.Nickname != "" && other.Nickname == input.Nickname {
				return nil, conflict("昵称已被使用")
			}
			return nil, conflict("手机号已被注册")
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
	}

	user, err := s.FindOne(id)
	if err != nil {
		return nil, err
	}

	updates := make(map[string]interface{})
	if input.Name != "" {
		updates["name"] = input.Name
	}
	if input.Nickname != "" {
		updates["nickname"] = input.Nickname
	}
	if input.PhoneNumber != "" {
		updates["phone_number"] = input.PhoneNumber
	}

	if len(updates) > 0 {
		if err := db.DB.Model(user).Updates(updates).Error; err != nil {
			return nil, err
		}
		if err := db.DB.First(user, id).Error; err != nil {
			return nil, err
		}
	}
	return user, nil
}

// Remove 删除用户并返回被删除的脱敏记录
func (s *UsersService) Remove(id uint) (*models.User, error) {
	user, err := s.FindOne(id)
	if err != nil {
		return nil, err
	}
	if err := db.DB.Delete(user).Error; err != nil {
		return nil, err
	}
	return user, nil
}
