package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/seungHoon0422/Degururu/internal/model"
)

func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		if GetCurrentUserRole(c) != model.RoleAdmin {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{
				"code":    40301,
				"message": "not enough privileges",
				"data":    nil,
			})
			return
		}
		c.Next()
	}
}
