package services

import (
	"errors"

	"mublog/internal/db"
	"mublog/internal/models"

	"gorm.io/gorm"
)

type PostsService struct{}

func NewPostsService() *PostsService {
	return &PostsService{}
}

// PostInput 创建/更新文章的输入，更新时空字段表示不修改
type PostInput struct {
	Title   string
	Content string
}

type LikeResult struct {
	Liked bool  `json:"liked"`
	Likes int64 `json:"likes"`
}

func (s *PostsService) Create(input PostInput, authorID uint) (*models.Post, error) {
	post := models.Post{
		AuthorID: authorID,
		Title:    input.Title,
		Content:  input.Content,
	}
	if err := db.DB.Create(&post).Error; err != nil {
		return nil, err
	}
	return &post, nil
}

func (s *PostsService) FindAll() ([]models.Post, error) {
	var posts []models.Post
	if err := db.DB.Preload("Author").Preload("Comments").Find(&posts).Error; err != nil {
		return nil, err
	}
	return posts, nil
}

func (s *PostsService) FindOne(id uint) (*models.Post, error) {
	var post models.Post
	if err := db.DB.First(&post, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, notFound("文章不存在")
		}
		return nil, err
	}
	return &post, nil
}

func (s *PostsService) Update(id uint, input PostInput, userID uint) (*models.Post, error) {
	post, err := s.FindOne(id)
	if err != nil {
		return nil, err
	}
	if err := authorizeOwner(post.AuthorID, userID); err != nil {
		return nil, err
	}

	if input.Title != "" {
		post.Title = input.Title
	}
	if input.Content != "" {
		post.Content = input.Content
	}
	if err := db.DB.Save(post).Error; err != nil {
		return nil, err
	}
	return post, nil
}

func (s *PostsService) Remove(id, userID uint) (*models.Post, error) {
	post, err := s.FindOne(id)
	if err != nil {
		return nil, err
	}
	if err := authorizeOwner(post.AuthorID, userID); err != nil {
		return nil, err
	}
	if err := db.DB.Delete(post).Error; err != nil {
		return nil, err
	}
	return post, nil
}

// ToggleLike 切换点赞状态。查赞、增删、重算计数、回写冗余字段
// 放在同一个事务里，避免并发切换时计数落后于真实行数。
func (s *PostsService) ToggleLike(postID, userID uint) (*LikeResult, error) {
	if _, err := s.FindOne(postID); err != nil {
		return nil, err
	}

	result := &LikeResult{}
	err := db.DB.Transaction(func(tx *gorm.DB) error {
		var existing models.PostLike
		err := tx.Where("post_id = ? AND user_id = ?", postID, userID).First(&existing).Error
		switch {
		case err == nil:
			// 已点赞，取消
			if err := tx.Delete(&existing).Error; err != nil {
				return err
			}
			result.Liked = false
		case errors.Is(err, gorm.ErrRecordNotFound):
			like := models.PostLike{PostID: postID, UserID: userID}
			if err := tx.Create(&like).Error; err != nil {
				return err
			}
			result.Liked = true
		default:
			return err
		}

		// 重算点赞数并回写到 posts.likes
		var likes int64
		if err := tx.Model(&models.PostLike{}).Where("post_id = ?", postID).Count(&likes).Error; err != nil {
			return err
		}
		if err := tx.Model(&models.Post{}).Where("id = ?", postID).UpdateColumn("likes", likes).Error; err != nil {
			return err
		}
		result.Likes = likes
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}
