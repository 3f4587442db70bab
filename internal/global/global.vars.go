package global

import (
	"food_market/config"
	"food_market/internal/registry"

	"github.com/go-playground/validator/v10"
	"go.mongodb.org/mongo-driver/mongo"
)

// MongoDB_CollectionName chứa tên các collection trong MongoDB
type MongoDB_CollectionName struct {
	// Auth
	Users string // Tên collection cho người dùng

	// Catalog
	BusinessTypes    string // Tên collection cho loại hình kinh doanh
	BusinessBranches string // Tên collection cho chi nhánh kinh doanh (nhà hàng, vendor...)
	Plans            string // Tên collection cho gói dịch vụ
	Subscriptions    string // Tên collection cho đăng ký gói dịch vụ
	GiftCards        string // Tên collection cho thẻ quà tặng

	// Catering
	CateringEvents   string // Tên collection cho sự kiện catering
	ScheduleMeetings string // Tên collection cho lịch hẹn của sự kiện
	ReviewRequests   string // Tên collection cho yêu cầu đánh giá

	// Geo
	Countries     string // Tên collection cho quốc gia
	States        string // Tên collection cho tỉnh/bang
	Cities        string // Tên collection cho thành phố
	UserAddresses string // Tên collection cho địa chỉ người dùng

	// Chat
	ChatMessages  string // Tên collection cho tin nhắn
	Notifications string // Tên collection cho thông báo

	// Infrastructure
	Counters string // Tên collection cấp phát khóa số tuần tự
}

// Các biến toàn cục
var Validate *validator.Validate                    // Biến để xác thực dữ liệu
var MongoDB_Session *mongo.Client                   // Phiên kết nối tới MongoDB
var MongoDB_ServerConfig *config.Configuration      // Cấu hình của server
var MongoDB_ColNames = *new(MongoDB_CollectionName) // Tên các collection

// Các Registry
var RegistryCollections = registry.NewRegistry[*mongo.Collection]() // Registry chứa các collections
var RegistryDatabase = registry.NewRegistry[*mongo.Database]()      // Registry chứa các databases
