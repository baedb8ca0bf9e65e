package middleware

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/portfolio-dev/portfolio/internal/auth"
	"github.com/portfolio-dev/portfolio/internal/store"
)

type AuthenticatedUser struct {
	ID      uint   `json:"id"`
	Name    string `json:"name"`
	Email   string `json:"email"`
	IsAdmin bool   `json:"isAdmin"`
}

const ContextUserKey = "user"

// Auth holds the guards composed in front of protected routes.
type Auth struct {
	Users store.Users
}

func NewAuth(users store.Users) *Auth {
	return &Auth{Users: users}
}

// RequireAuth accepts the token from the Authorization header or the auth
// cookie and resolves the current user into the request context.
func (a *Auth) RequireAuth() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		tokenString := bearerToken(ctx)

		if tokenString == "" {
			if cookie, err := ctx.Cookie("token"); err == nil {
				tokenString = cookie
			}
		}

		if tokenString == "" {
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authorization token is required"})
			return
		}

		token, err := auth.VerifyJWT(tokenString)

		if err != nil {
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired token"})
			return
		}

		userID, ok := auth.UserID(token)

		if !ok {
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid token claims"})
			return
		}

		user, err := a.Users.Get(ctx.Request.Context(), userID)

		if err != nil {
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "User not found"})
			return
		}

		ctx.Set(ContextUserKey, AuthenticatedUser{
			ID:      user.ID,
			Name:    user.Name,
			Email:   user.Email,
			IsAdmin: user.IsAdmin,
		})
		ctx.Next()
	}
}

// RequireAdmin builds on RequireAuth and must run after it.
func (a *Auth) RequireAdmin() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		user, err := CurrentUser(ctx)

		if err != nil {
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
			return
		}

		if !user.IsAdmin {
			ctx.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "User is not authorized"})
			return
		}

		ctx.Next()
	}
}

// RequireSelfOrAdmin allows the request when the authenticated user matches
// the :id route parameter, or is an admin.
func (a *Auth) RequireSelfOrAdmin() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		user, err := CurrentUser(ctx)

		if err != nil {
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
			return
		}

		targetID, err := strconv.ParseUint(ctx.Param("id"), 10, 32)

		if err != nil {
			ctx.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "Invalid user id"})
			return
		}

		if !user.IsAdmin && uint(targetID) != user.ID {
			ctx.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "User is not authorized"})
			return
		}

		ctx.Next()
	}
}

// CurrentUser reads the authenticated user placed in the context by
// RequireAuth.
func CurrentUser(ctx *gin.Context) (AuthenticatedUser, error) {
	user, exists := ctx.Get(ContextUserKey)

	if !exists {
		return AuthenticatedUser{}, fmt.Errorf("User not authenticated")
	}

	authenticatedUser, ok := user.(AuthenticatedUser)

	if !ok {
		return AuthenticatedUser{}, fmt.Errorf("Invalid user type in context")
	}

	return authenticatedUser, nil
}

func bearerToken(ctx *gin.Context) string {
	authHeader := ctx.GetHeader("Authorization")

	if authHeader == "" {
		return ""
	}

	parts := strings.SplitN(authHeader, " ", 2)

	if len(parts) != 2 || parts[0] != "Bearer" {
		return ""
	}

	return parts[1]
}
