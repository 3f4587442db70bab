package main

import (
	"context"

	"github.com/sirupsen/logrus"

	"food_market/config"
	"food_market/internal/database"
	"food_market/internal/global"
)

// InitGlobal khởi tạo các biến toàn cục
func InitGlobal() {
	initColNames()         // Khởi tạo tên các collection trong database
	initValidator()        // Khởi tạo validator
	initConfig()           // Khởi tạo cấu hình server
	initDatabase_MongoDB() // Khởi tạo kết nối database
}

// Hàm khởi tạo tên các collection trong database
func initColNames() {
	global.MongoDB_ColNames.Users = "users"

	global.MongoDB_ColNames.BusinessTypes = "business_types"
	global.MongoDB_ColNames.BusinessBranches = "business_branches"
	global.MongoDB_ColNames.Plans = "plans"
	global.MongoDB_ColNames.Subscriptions = "subscriptions"
	global.MongoDB_ColNames.GiftCards = "gift_cards"

	global.MongoDB_ColNames.CateringEvents = "catering_events"
	global.MongoDB_ColNames.ScheduleMeetings = "schedule_meetings"
	global.MongoDB_ColNames.ReviewRequests = "review_requests"

	global.MongoDB_ColNames.Countries = "countries"
	global.MongoDB_ColNames.States = "states"
	global.MongoDB_ColNames.Cities = "cities"
	global.MongoDB_ColNames.UserAddresses = "user_addresses"

	global.MongoDB_ColNames.ChatMessages = "chat_messages"
	global.MongoDB_ColNames.Notifications = "notifications"

	global.MongoDB_ColNames.Counters = "counters"

	logrus.Info("Initialized collection names")
}

// Hàm khởi tạo validator với các custom validator (no_xss, no_sql_injection, strong_password)
func initValidator() {
	global.InitValidator()
	logrus.Info("Initialized validator")
}

// Hàm khởi tạo cấu hình server
func initConfig() {
	global.MongoDB_ServerConfig = config.NewConfig()
	if global.MongoDB_ServerConfig == nil {
		logrus.Fatalf("Failed to initialize config: config is nil")
	}
	logrus.Info("Initialized server config")
}

// Hàm khởi tạo kết nối database và các index
func initDatabase_MongoDB() {
	var err error
	global.MongoDB_Session, err = database.GetInstance(global.MongoDB_ServerConfig)
	if err != nil {
		logrus.Fatalf("Failed to get database instance: %v", err)
	}
	logrus.Info("Connected to MongoDB")

	db := global.MongoDB_Session.Database(global.MongoDB_ServerConfig.MongoDB_DBName)
	if err := database.CreateIndexes(context.TODO(), db); err != nil {
		logrus.Fatalf("Failed to create indexes: %v", err)
	}
	logrus.Info("Ensured MongoDB indexes")
}
