package services

import (
	"net/http"
)

// Error 业务错误，携带对应的 HTTP 状态码，对请求而言是终态（不重试）
type Error struct {
	Status  int
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

func conflict(message string) *Error {
	return &Error{Status: http.StatusConflict, Message: message}
}

func unauthorized(message string) *Error {
	return &Error{Status: http.StatusUnauthorized, Message: message}
}

func notFound(message string) *Error {
	return &Error{Status: http.StatusNotFound, Message: message}
}

func forbidden(message string) *Error {
	return &Error{Status: http.StatusForbidden, Message: message}
}

// authorizeOwner 统一的属主校验：只有资源作者本人可以修改或删除
func authorizeOwner(ownerID, userID uint) error {
	if ownerID != userID {
		return forbidden("无权操作")
	}
	return nil
}
