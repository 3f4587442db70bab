// Package middleware chứa các middleware HTTP của ứng dụng.
package middleware

import (
	"context"
	"strings"
	"time"

	"github.com/dgrijalva/jwt-go"
	"github.com/gofiber/fiber/v3"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	authmodels "food_market/internal/api/auth/models"
	basehdl "food_market/internal/api/base/handler"
	"food_market/internal/common"
	"food_market/internal/global"
	"food_market/internal/utility"
)

// authCache cache kết quả tra cứu user theo token để giảm truy vấn database.
// Cache được dọn toàn bộ mỗi 5 phút nên thay đổi status của user có hiệu lực trễ tối đa bấy nhiêu.
var authCache = utility.NewCache(5 * time.Minute)

// cachedPrincipal là thông tin người dùng đã xác thực lưu trong cache
type cachedPrincipal struct {
	UserID  string
	UserSeq int64
	Status  bool
}

// AuthMiddleware xác thực JWT token từ header Authorization.
// Token hợp lệ thì lưu user_id (hex ObjectID) và user_seq (seqId) vào Locals
// cho các handler phía sau; token thiếu/sai/hết hạn trả về 401.
func AuthMiddleware() fiber.Handler {
	return func(c fiber.Ctx) error {
		header := c.Get("Authorization")
		if header == "" {
			basehdl.HandleError(c, common.ErrTokenMissing)
			return nil
		}

		tokenString := strings.TrimPrefix(header, "Bearer ")
		if tokenString == header || tokenString == "" {
			basehdl.HandleError(c, common.ErrTokenInvalid)
			return nil
		}

		claims := &authmodels.JwtToken{}
		token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, common.ErrTokenInvalid
			}
			return []byte(global.MongoDB_ServerConfig.JwtSecret), nil
		})
		if err != nil {
			if ve, ok := err.(*jwt.ValidationError); ok && ve.Errors&jwt.ValidationErrorExpired != 0 {
				basehdl.HandleError(c, common.ErrTokenExpired)
				return nil
			}
			basehdl.HandleError(c, common.ErrTokenInvalid)
			return nil
		}
		if !token.Valid {
			basehdl.HandleError(c, common.ErrTokenInvalid)
			return nil
		}

		principal, err := resolvePrincipal(c.Context(), claims.UserID)
		if err != nil {
			basehdl.HandleError(c, err)
			return nil
		}
		if !principal.Status {
			basehdl.HandleError(c, common.NewError(
				common.ErrCodeAuthCredentials,
				"Tài khoản đã ngừng hoạt động",
				common.StatusUnauthorized,
				nil,
			))
			return nil
		}

		c.Locals("user_id", principal.UserID)
		c.Locals("user_seq", principal.UserSeq)
		return c.Next()
	}
}

// resolvePrincipal tra cứu user từ cache hoặc database theo ObjectID trong token
func resolvePrincipal(ctx context.Context, userID string) (*cachedPrincipal, error) {
	cacheKey := "auth_principal:" + userID
	if cached, found := authCache.Get(cacheKey); found {
		if principal, ok := cached.(*cachedPrincipal); ok {
			return principal, nil
		}
	}

	oid, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		return nil, common.ErrTokenInvalid
	}

	users, exists := global.RegistryCollections.Get(global.MongoDB_ColNames.Users)
	if !exists {
		return nil, common.ErrMongoConnection
	}

	var userDoc struct {
		ID     primitive.ObjectID `bson:"_id"`
		SeqID  int64              `bson:"seqId"`
		Status bool               `bson:"status"`
	}
	if err := users.FindOne(ctx, bson.M{"_id": oid}).Decode(&userDoc); err != nil {
		return nil, common.ErrInvalidCredentials
	}

	principal := &cachedPrincipal{
		UserID:  userID,
		UserSeq: userDoc.SeqID,
		Status:  userDoc.Status,
	}
	authCache.Set(cacheKey, principal)
	return principal, nil
}
