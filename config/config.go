package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/caarlos0/env"
	"github.com/joho/godotenv"
)

// Configuration chứa thông tin tĩnh cần thiết để chạy ứng dụng.
// Các giá trị được đọc từ file env theo môi trường (GO_ENV) và biến môi trường hệ thống.
type Configuration struct {
	InitMode              bool   `env:"INITMODE" envDefault:"false"`               // Chế độ khởi tạo dữ liệu mẫu
	Address               string `env:"ADDRESS" envDefault:":8080"`                // Địa chỉ server
	JwtSecret             string `env:"JWT_SECRET,required"`                       // Bí mật JWT
	MongoDB_ConnectionURI string `env:"MONGODB_CONNECTION_URI,required"`           // URL kết nối cơ sở dữ liệu
	MongoDB_DBName        string `env:"MONGODB_DBNAME,required"`                   // Tên cơ sở dữ liệu chính
	CORS_Origins          string `env:"CORS_ORIGINS" envDefault:"*"`               // Các origins được phép (phân cách bởi dấu phẩy, * = tất cả)
	CORS_AllowCredentials bool   `env:"CORS_ALLOW_CREDENTIALS" envDefault:"false"` // Cho phép gửi credentials
	RateLimit_Max         int    `env:"RATE_LIMIT_MAX" envDefault:"100"`           // Số request tối đa trong window (0 = disable rate limit)
	RateLimit_Window      int    `env:"RATE_LIMIT_WINDOW" envDefault:"60"`         // Thời gian window (giây)
	RateLimit_Enabled     bool   `env:"RATE_LIMIT_ENABLED" envDefault:"true"`      // Bật/tắt rate limiting

	// SMTP Configuration (gửi email xác nhận lịch hẹn, yêu cầu đánh giá...)
	SMTPHost     string `env:"SMTP_HOST"`                  // Địa chỉ SMTP server
	SMTPPort     int    `env:"SMTP_PORT" envDefault:"587"` // Cổng SMTP
	SMTPUsername string `env:"SMTP_USERNAME"`              // Tài khoản SMTP
	SMTPPassword string `env:"SMTP_PASSWORD"`              // Mật khẩu SMTP
	SMTPSender   string `env:"SMTP_SENDER"`                // Địa chỉ email người gửi

	// Stripe Configuration (thanh toán subscription và gift card)
	StripeSecretKey     string `env:"STRIPE_SECRET_KEY"`     // Secret key của Stripe
	StripeWebhookSecret string `env:"STRIPE_WEBHOOK_SECRET"` // Secret xác thực webhook Stripe

	// MealMe Configuration (tích hợp đặt món từ bên thứ ba)
	MealMeAPIKey  string `env:"MEALME_API_KEY"`                                     // API key của MealMe
	MealMeBaseURL string `env:"MEALME_BASE_URL" envDefault:"https://api.mealme.ai"` // Base URL của MealMe API

	// S3 Configuration (lưu trữ ảnh món ăn, logo chi nhánh)
	S3Region    string `env:"S3_REGION" envDefault:"us-east-1"` // Region của S3 bucket
	S3Bucket    string `env:"S3_BUCKET"`                        // Tên S3 bucket
	S3AccessKey string `env:"S3_ACCESS_KEY"`                    // Access key
	S3SecretKey string `env:"S3_SECRET_KEY"`                    // Secret key

	// Frontend URL (dùng trong link email)
	FrontendURL string `env:"FRONTEND_URL" envDefault:"http://localhost:3000"` // URL frontend

	// TLS/HTTPS Configuration
	EnableTLS   bool   `env:"ENABLE_TLS" envDefault:"false"` // Bật HTTPS
	TLSCertFile string `env:"TLS_CERT_FILE"`                 // Đường dẫn đến file certificate (.crt hoặc .pem)
	TLSKeyFile  string `env:"TLS_KEY_FILE"`                  // Đường dẫn đến file private key (.key)
}

// getEnvPath trả về đường dẫn đến file env dựa trên môi trường
func getEnvPath() string {
	// Mặc định sử dụng môi trường development
	env := os.Getenv("GO_ENV")
	if env == "" {
		env = "development"
	}

	currentDir, err := os.Getwd()
	if err != nil {
		// Sử dụng fmt.Printf vì logger có thể chưa được init ở đây
		fmt.Printf("Không thể lấy được thư mục hiện tại: %v\n", err)
		return ""
	}

	// Tìm thư mục config/env bằng cách đi lên từ thư mục hiện tại
	for {
		envDir := filepath.Join(currentDir, "config", "env")
		if _, err := os.Stat(envDir); err == nil {
			return filepath.Join(envDir, fmt.Sprintf("%s.env", env))
		}

		parentDir := filepath.Dir(currentDir)
		if parentDir == currentDir {
			return ""
		}
		currentDir = parentDir
	}
}

// NewConfig đọc dữ liệu cấu hình từ file env theo môi trường hiện tại
func NewConfig() *Configuration {
	envPath := getEnvPath()
	if envPath == "" {
		fmt.Printf("Không tìm thấy thư mục config/env\n")
		return nil
	}

	if err := godotenv.Load(envPath); err != nil {
		fmt.Printf("Không thể load file env tại %s: %v\n", envPath, err)
		return nil
	}

	cfg := Configuration{}
	if err := env.Parse(&cfg); err != nil {
		fmt.Printf("Lỗi khi parse config: %+v\n", err)
		return nil
	}

	return &cfg
}
