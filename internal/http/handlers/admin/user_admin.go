package admin

import (
	"github.com/minimall-next/internal/http/response"
	"github.com/minimall-next/internal/models"

	"github.com/gin-gonic/gin"
)

// ListUsers 查看全部用户
func (h *Handler) ListUsers(c *gin.Context) {
	users, err := h.AdminService.ListUsers()
	if err != nil {
		respondError(c, response.CodeInternal, "load users failed", err)
		return
	}

	items := make([]gin.H, 0, len(users))
	for i := range users {
		items = append(items, adminUserResponse(&users[i]))
	}
	response.Success(c, gin.H{"users": items})
}

func adminUserResponse(user *models.User) gin.H {
	return gin.H{
		"id":         user.ID,
		"name":       user.Name,
		"email":      user.Email,
		"role":       user.Role,
		"created_at": user.CreatedAt,
	}
}
