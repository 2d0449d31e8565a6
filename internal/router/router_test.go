package router

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"mublog/internal/config"
	"mublog/internal/db"
	"mublog/internal/models"

	"github.com/gin-gonic/gin"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	config.Load()

	gdb, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}
	sqlDB, err := gdb.DB()
	if err != nil {
		t.Fatalf("failed to get sql.DB: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)
	if err := gdb.AutoMigrate(&models.User{}, &models.Post{}, &models.Comment{}, &models.PostLike{}); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}
	db.DB = gdb

	r := gin.New()
	RegisterRoutes(r)
	return r
}

func doJSON(r *gin.Engine, method, path, token string, body interface{}) *httptest.ResponseRecorder {
	var reader *bytes.Reader
	if body != nil {
		data, _ := json.Marshal(body)
		reader = bytes.NewReader(data)
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func signupVia(t *testing.T, r *gin.Engine, email, nickname, phone string) (uint, string) {
	t.Helper()
	w := doJSON(r, http.MethodPost, "/auth/signup", "", gin.H{
		"email":       email,
		"password":    "Passw0rd!",
		"name":        "tester",
		"nickname":    nickname,
		"phoneNumber": phone,
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("signup status = %d, body = %s", w.Code, w.Body.String())
	}
	var resp struct {
		User struct {
			ID uint `json:"id"`
		} `json:"user"`
		AccessToken string `json:"accessToken"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("bad signup body: %v", err)
	}
	return resp.User.ID, resp.AccessToken
}

func TestSignupLoginAndMe(t *testing.T) {
	r := setupRouter(t)

	userID, token := signupVia(t, r, "a@x.com", "n1", "01011112222")

	// 重复注册 409
	w := doJSON(r, http.MethodPost, "/auth/signup", "", gin.H{
		"email":       "a@x.com",
		"password":    "Passw0rd!",
		"name":        "tester",
		"nickname":    "other",
		"phoneNumber": "01099998888",
	})
	if w.Code != http.StatusConflict {
		t.Errorf("duplicate signup status = %d, want 409", w.Code)
	}

	// 登录拿到新 token
	w = doJSON(r, http.MethodPost, "/auth/login", "", gin.H{
		"email":    "a@x.com",
		"password": "Passw0rd!",
	})
	if w.Code != http.StatusOK {
		t.Fatalf("login status = %d, body = %s", w.Code, w.Body.String())
	}
	if strings.Contains(w.Body.String(), "password") {
		t.Errorf("password leaked: %s", w.Body.String())
	}

	// /users/me 返回 token 对应的用户
	w = doJSON(r, http.MethodGet, "/users/me", token, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("me status = %d", w.Code)
	}
	var me struct {
		ID uint `json:"id"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &me); err != nil || me.ID != userID {
		t.Errorf("me = %s, want id %d", w.Body.String(), userID)
	}

	// 无 token 一律 401
	w = doJSON(r, http.MethodGet, "/users/me", "", nil)
	if w.Code != http.StatusUnauthorized {
		t.Errorf("unauthenticated me status = %d, want 401", w.Code)
	}
	w = doJSON(r, http.MethodGet, "/users/me", "garbage", nil)
	if w.Code != http.StatusUnauthorized {
		t.Errorf("bad token me status = %d, want 401", w.Code)
	}
}

func TestLikeToggleScenario(t *testing.T) {
	r := setupRouter(t)

	_, token1 := signupVia(t, r, "a@x.com", "n1", "01011112222")
	_, token2 := signupVia(t, r, "b@x.com", "n2", "01033334444")

	w := doJSON(r, http.MethodPost, "/posts", token1, gin.H{"title": "첫 글", "content": "**hello**"})
	if w.Code != http.StatusCreated {
		t.Fatalf("create post status = %d, body = %s", w.Code, w.Body.String())
	}
	var post struct {
		ID uint `json:"id"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &post); err != nil {
		t.Fatalf("bad post body: %v", err)
	}

	likePath := fmt.Sprintf("/posts/%d/like", post.ID)
	w = doJSON(r, http.MethodPost, likePath, token2, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("like status = %d, body = %s", w.Code, w.Body.String())
	}
	var result struct {
		Liked bool  `json:"liked"`
		Likes int64 `json:"likes"`
	}
	json.Unmarshal(w.Body.Bytes(), &result)
	if !result.Liked || result.Likes != 1 {
		t.Errorf("first like = %+v, want {true 1}", result)
	}

	w = doJSON(r, http.MethodPost, likePath, token2, nil)
	json.Unmarshal(w.Body.Bytes(), &result)
	if result.Liked || result.Likes != 0 {
		t.Errorf("second like = %+v, want {false 0}", result)
	}

	// 详情返回渲染后的 HTML
	w = doJSON(r, http.MethodGet, fmt.Sprintf("/posts/%d", post.ID), "", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("detail status = %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), "contentHtml") || !strings.Contains(w.Body.String(), "strong") {
		t.Errorf("markdown not rendered: %s", w.Body.String())
	}
}

func TestCommentRoutesAuthz(t *testing.T) {
	r := setupRouter(t)

	_, token1 := signupVia(t, r, "a@x.com", "n1", "01011112222")
	_, token2 := signupVia(t, r, "b@x.com", "n2", "01033334444")

	w := doJSON(r, http.MethodPost, "/posts", token1, gin.H{"title": "t", "content": "c"})
	var post struct {
		ID uint `json:"id"`
	}
	json.Unmarshal(w.Body.Bytes(), &post)

	commentsPath := fmt.Sprintf("/posts/%d/comments", post.ID)
	w = doJSON(r, http.MethodPost, commentsPath, token2, gin.H{"content": "댓글"})
	if w.Code != http.StatusCreated {
		t.Fatalf("create comment status = %d, body = %s", w.Code, w.Body.String())
	}
	var comment struct {
		ID     uint `json:"id"`
		Author struct {
			Nickname string `json:"nickname"`
		} `json:"author"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &comment); err != nil {
		t.Fatalf("bad comment body: %v", err)
	}
	if comment.Author.Nickname != "n2" {
		t.Errorf("comment author = %q, want n2", comment.Author.Nickname)
	}

	// 他人编辑 403
	onePath := fmt.Sprintf("/posts/%d/comments/%d", post.ID, comment.ID)
	w = doJSON(r, http.MethodPatch, onePath, token1, gin.H{"content": "hacked"})
	if w.Code != http.StatusForbidden {
		t.Errorf("foreign edit status = %d, want 403", w.Code)
	}

	// 文章删除后评论不可再删
	w = doJSON(r, http.MethodDelete, fmt.Sprintf("/posts/%d", post.ID), token1, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("delete post status = %d", w.Code)
	}
	w = doJSON(r, http.MethodDelete, onePath, token2, nil)
	if w.Code != http.StatusNotFound {
		t.Errorf("orphan comment delete status = %d, want 404", w.Code)
	}
}
