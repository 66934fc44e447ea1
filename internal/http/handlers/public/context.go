package public

import (
	"github.com/minimall-next/internal/constants"
	handlershared "github.com/minimall-next/internal/http/handlers/shared"

	"github.com/gin-gonic/gin"
)

func getUserID(c *gin.Context) (uint, bool) {
	return handlershared.GetContextUint(c, constants.ContextKeyUserID)
}

func getUserRole(c *gin.Context) string {
	return handlershared.GetContextString(c, constants.ContextKeyRole)
}

func respondError(c *gin.Context, code int, msg string, err error) {
	handlershared.RespondError(c, code, msg, err)
}
