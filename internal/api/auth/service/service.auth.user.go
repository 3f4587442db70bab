// Package authsvc - service người dùng và xác thực.
package authsvc

import (
	"context"
	"fmt"
	"math/rand"
	"strconv"
	"time"

	"github.com/dgrijalva/jwt-go"
	"go.mongodb.org/mongo-driver/bson"
	"golang.org/x/crypto/bcrypt"

	authdto "food_market/internal/api/auth/dto"
	models "food_market/internal/api/auth/models"
	basesvc "food_market/internal/api/base/service"
	"food_market/internal/common"
	"food_market/internal/global"
)

// tokenLifetime thời gian sống của JWT token
const tokenLifetime = 72 * time.Hour

// UserService là cấu trúc chứa các phương thức liên quan đến người dùng
type UserService struct {
	*basesvc.BaseServiceMongoImpl[models.User]
}

// NewUserService tạo mới UserService
func NewUserService() (*UserService, error) {
	userCollection, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.Users)
	if !exist {
		return nil, fmt.Errorf("failed to get users collection: %v", common.ErrNotFound)
	}

	sequence, err := basesvc.NewSequenceServiceFromRegistry()
	if err != nil {
		return nil, err
	}

	return &UserService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[models.User](userCollection, sequence),
	}, nil
}

// InsertOne tạo người dùng mới: kiểm tra email chưa tồn tại và hash password trước khi lưu
func (s *UserService) InsertOne(ctx context.Context, user models.User) (models.User, error) {
	var zero models.User

	exists, err := s.DocumentExists(ctx, bson.M{"email": user.Email})
	if err != nil {
		return zero, err
	}
	if exists {
		return zero, common.NewError(
			common.ErrCodeBusinessOperation,
			"Email đã được sử dụng",
			common.StatusConflict,
			nil,
		)
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(user.Password), bcrypt.DefaultCost)
	if err != nil {
		return zero, common.NewError(common.ErrCodeInternalServer, common.MsgInternalError, common.StatusInternalServerError, nil)
	}
	user.Password = string(hashed)

	return s.BaseServiceMongoImpl.InsertOne(ctx, user)
}

// Login xác thực email/password và sinh JWT token cho người dùng.
// Tài khoản đã ngừng hoạt động không đăng nhập được.
func (s *UserService) Login(ctx context.Context, input authdto.LoginInput) (*authdto.LoginResponse, error) {
	user, err := s.FindOne(ctx, bson.M{"email": input.Email}, nil)
	if err != nil {
		if err == common.ErrNotFound {
			return nil, common.ErrInvalidCredentials
		}
		return nil, err
	}

	if !user.Status {
		return nil, common.NewError(
			common.ErrCodeAuthCredentials,
			"Tài khoản đã ngừng hoạt động",
			common.StatusUnauthorized,
			nil,
		)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(input.Password)); err != nil {
		return nil, common.ErrInvalidCredentials
	}

	token, err := s.generateToken(user)
	if err != nil {
		return nil, err
	}

	return &authdto.LoginResponse{Token: token, User: user}, nil
}

// ChangePassword đổi mật khẩu sau khi xác thực mật khẩu cũ
func (s *UserService) ChangePassword(ctx context.Context, userSeq int64, input authdto.ChangePasswordInput) error {
	user, err := s.FindOne(ctx, bson.M{"seqId": userSeq}, nil)
	if err != nil {
		return err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(input.OldPassword)); err != nil {
		return common.ErrInvalidCredentials
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(input.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		return common.NewError(common.ErrCodeInternalServer, common.MsgInternalError, common.StatusInternalServerError, nil)
	}

	_, err = s.UpdateOne(ctx, bson.M{"seqId": userSeq}, bson.M{"$set": bson.M{"password": string(hashed)}})
	return err
}

// generateToken sinh JWT token chứa ObjectID của user
func (s *UserService) generateToken(user models.User) (string, error) {
	now := time.Now()
	claims := models.JwtToken{
		UserID:       user.ID.Hex(),
		Time:         strconv.FormatInt(now.UnixMilli(), 10),
		RandomNumber: strconv.Itoa(rand.Intn(1000000)),
		StandardClaims: jwt.StandardClaims{
			IssuedAt:  now.Unix(),
			ExpiresAt: now.Add(tokenLifetime).Unix(),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(global.MongoDB_ServerConfig.JwtSecret))
	if err != nil {
		return "", common.NewError(common.ErrCodeInternalServer, common.MsgInternalError, common.StatusInternalServerError, nil)
	}
	return signed, nil
}
