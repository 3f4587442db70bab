package main

import (
	"context"
	"os"

	"github.com/sirupsen/logrus"

	authmodels "food_market/internal/api/auth/models"
	authsvc "food_market/internal/api/auth/service"
	"food_market/internal/global"
)

// InitDefaultData tạo tài khoản quản trị mặc định khi chạy ở chế độ khởi tạo.
// Chỉ tạo khi collection users còn trống.
func InitDefaultData() {
	if !global.MongoDB_ServerConfig.InitMode {
		return
	}

	userService, err := authsvc.NewUserService()
	if err != nil {
		logrus.Errorf("Failed to create user service for default data: %v", err)
		return
	}

	ctx := context.Background()
	count, err := userService.CountDocuments(ctx, nil)
	if err != nil {
		logrus.Errorf("Failed to count users for default data: %v", err)
		return
	}
	if count > 0 {
		logrus.Info("Users already exist, skipping default admin creation")
		return
	}

	adminEmail := os.Getenv("ADMIN_EMAIL")
	if adminEmail == "" {
		adminEmail = "admin@food-market.local"
	}
	adminPassword := os.Getenv("ADMIN_PASSWORD")
	if adminPassword == "" {
		adminPassword = "Admin@12345"
	}

	admin := authmodels.User{
		Name:     "Administrator",
		Email:    adminEmail,
		Password: adminPassword,
		Role:     authmodels.UserRoleAdmin,
	}

	if _, err := userService.InsertOne(ctx, admin); err != nil {
		logrus.Errorf("Failed to create default admin user: %v", err)
		return
	}
	logrus.Infof("Created default admin user %s", adminEmail)
}
