package services

import (
	"errors"
	"time"

	"mublog/internal/db"
	"mublog/internal/models"

	"gorm.io/gorm"
)

type CommentsService struct{}

func NewCommentsService() *CommentsService {
	return &CommentsService{}
}

// CommentAuthor 评论作者的对外视图，只暴露 id 和昵称
type CommentAuthor struct {
	ID       uint   `json:"id"`
	Nickname string `json:"nickname"`
}

type ShapedComment struct {
	ID        uint          `json:"id"`
	Author    CommentAuthor `json:"author"`
	Content   string        `json:"content"`
	CreatedAt time.Time     `json:"createdAt"`
}

type CommentList struct {
	Comments []ShapedComment `json:"comments"`
	Total    int             `json:"total"`
}

func shapeComment(c *models.Comment) ShapedComment {
	return ShapedComment{
		ID:        c.ID,
		Author:    CommentAuthor{ID: c.Author.ID, Nickname: c.Author.Nickname},
		Content:   c.Content,
		CreatedAt: c.CreatedAt,
	}
}

// ensurePostExists 所有评论写操作的前置检查。父文章被删后，
// 其评论通过正常接口即不可再改/删（维持既有行为）。
func (s *CommentsService) ensurePostExists(postID uint) error {
	var post models.Post
	if err := db.DB.Select("id").First(&post, postID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return notFound("文章不存在")
		}
		return err
	}
	return nil
}

func (s *CommentsService) getComment(id uint) (*models.Comment, error) {
	var comment models.Comment
	if err := db.DB.Preload("Author").First(&comment, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, notFound("评论不存在")
		}
		return nil, err
	}
	return &comment, nil
}

// FindAllByPost 返回文章下的全部评论，按时间倒序，并附带总数
func (s *CommentsService) FindAllByPost(postID uint) (*CommentList, error) {
	var comments []models.Comment
	err := db.DB.Preload("Author").
		Where("post_id = ?", postID).
		Order("created_at DESC").
		Find(&comments).Error
	if err != nil {
		return nil, err
	}

	shaped := make([]ShapedComment, len(comments))
	for i := range comments {
		shaped[i] = shapeComment(&comments[i])
	}
	return &CommentList{Comments: shaped, Total: len(comments)}, nil
}

func (s *CommentsService) Create(postID, authorID uint, content string) (*ShapedComment, error) {
	if err := s.ensurePostExists(postID); err != nil {
		return nil, err
	}

	comment := models.Comment{
		PostID:   postID,
		AuthorID: authorID,
		Content:  content,
	}
	if err := db.DB.Create(&comment).Error; err != nil {
		return nil, err
	}
	if err := db.DB.Preload("Author").First(&comment, comment.ID).Error; err != nil {
		return nil, err
	}

	shaped := shapeComment(&comment)
	return &shaped, nil
}

func (s *CommentsService) Update(commentID uint, content string, userID, postID uint) (*ShapedComment, error) {
	if err := s.ensurePostExists(postID); err != nil {
		return nil, err
	}
	comment, err := s.getComment(commentID)
	if err != nil {
		return nil, err
	}
	// 双重校验：关联作者与外键任一匹配即放行（沿用旧实现的防御性检查）
	if comment.Author.ID != userID && comment.AuthorID != userID {
		return nil, forbidden("无权操作")
	}

	if content != "" {
		comment.Content = content
		if err := db.DB.Model(comment).Update("content", content).Error; err != nil {
			return nil, err
		}
	}

	shaped := shapeComment(comment)
	return &shaped, nil
}

// Remove 删除评论。注意：返回的是原始记录，而非 shaped 结构，
// 与 Create/Update 不一致，但既有调用方可能依赖这个形状。
func (s *CommentsService) Remove(commentID, userID, postID uint) (*models.Comment, error) {
	if err := s.ensurePostExists(postID); err != nil {
		return nil, err
	}
	comment, err := s.getComment(commentID)
	if err != nil {
		return nil, err
	}
	if comment.Author.ID != userID && comment.AuthorID != userID {
		return nil, forbidden("无权操作")
	}

	if err := db.DB.Delete(comment).Error; err != nil {
		return nil, err
	}
	return comment, nil
}
