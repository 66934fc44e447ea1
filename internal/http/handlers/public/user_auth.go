package public

import (
	"strings"

	"github.com/minimall-next/internal/cache"
	"github.com/minimall-next/internal/constants"
	"github.com/minimall-next/internal/http/response"
	"github.com/minimall-next/internal/models"
	"github.com/minimall-next/internal/service"

	"github.com/gin-gonic/gin"
)

// UserRegisterRequest 注册请求
type UserRegisterRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
	Role     string `json:"role"`
}

// UserRegister 用户注册。角色缺省为普通用户。
func (h *Handler) UserRegister(c *gin.Context) {
	var req UserRegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "bad request", err)
		return
	}

	role := strings.TrimSpace(req.Role)
	if role == "" {
		role = constants.RoleUser
	}

	user, err := h.AuthService.Register(service.RegisterInput{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
		Role:     role,
	})
	if err != nil {
		respondWithMappedError(c, err, registerErrorRules, response.CodeInternal, "register failed")
		return
	}

	response.SuccessWithMsg(c, "registered", userResponse(user))
}

// UserLoginRequest 登录请求
type UserLoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// UserLogin 用户登录，成功后通过 Cookie 下发会话令牌
func (h *Handler) UserLogin(c *gin.Context) {
	var req UserLoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "bad request", err)
		return
	}

	user, err := h.AuthService.Login(req.Email, req.Password)
	if err != nil {
		if err == service.ErrInvalidCredentials {
			respondError(c, response.CodeUnauthorized, "invalid email or password", nil)
			return
		}
		respondError(c, response.CodeInternal, "login failed", err)
		return
	}

	token, expiresAt, err := h.AuthService.GenerateSessionToken(user)
	if err != nil {
		respondError(c, response.CodeInternal, "login failed", err)
		return
	}

	c.SetCookie(
		constants.SessionCookieName,
		token,
		h.Config.Session.ExpireHours*3600,
		"/",
		"",
		h.Config.Session.CookieSecure,
		true,
	)

	if cache.Enabled() {
		_ = cache.SetUserAuthState(c.Request.Context(), cache.BuildUserAuthState(user))
	}

	response.Success(c, gin.H{
		"user":       userResponse(user),
		"expires_at": expiresAt.Format("2006-01-02T15:04:05Z07:00"),
	})
}

// UserLogout 用户登出，清除会话 Cookie
func (h *Handler) UserLogout(c *gin.Context) {
	if uid, exists := c.Get(constants.ContextKeyUserID); exists {
		if id, ok := uid.(uint); ok {
			_ = cache.DelUserAuthState(c.Request.Context(), id)
		}
	}
	c.SetCookie(constants.SessionCookieName, "", -1, "/", "", h.Config.Session.CookieSecure, true)
	response.SuccessWithMsg(c, "logged out", nil)
}

func userResponse(user *models.User) gin.H {
	return gin.H{
		"id":    user.ID,
		"name":  user.Name,
		"email": user.Email,
		"role":  user.Role,
	}
}
