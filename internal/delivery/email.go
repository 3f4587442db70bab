// Package delivery - kênh gửi thông báo ra ngoài hệ thống (hiện tại chỉ có email).
package delivery

import (
	"context"
	"fmt"

	"gopkg.in/gomail.v2"

	"food_market/internal/global"
	"food_market/internal/logger"
)

// EmailMessage nội dung email cần gửi
type EmailMessage struct {
	Recipient string
	Subject   string
	Body      string // nội dung HTML
}

// EmailSender gửi email, tách interface để test không cần SMTP thật
type EmailSender interface {
	Send(ctx context.Context, msg EmailMessage) error
}

// SMTPEmailSender gửi email qua SMTP server cấu hình trong env
type SMTPEmailSender struct{}

// NewSMTPEmailSender tạo mới SMTPEmailSender
func NewSMTPEmailSender() *SMTPEmailSender {
	return &SMTPEmailSender{}
}

// Send gửi một email qua SMTP. Trả về lỗi nếu thiếu cấu hình hoặc gửi thất bại.
func (s *SMTPEmailSender) Send(ctx context.Context, msg EmailMessage) error {
	cfg := global.MongoDB_ServerConfig
	if cfg == nil || cfg.SMTPHost == "" {
		return fmt.Errorf("smtp chưa được cấu hình")
	}

	m := gomail.NewMessage()
	m.SetHeader("From", cfg.SMTPSender)
	m.SetHeader("To", msg.Recipient)
	m.SetHeader("Subject", msg.Subject)
	m.SetBody("text/html", msg.Body)

	dialer := gomail.NewDialer(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUsername, cfg.SMTPPassword)
	return dialer.DialAndSend(m)
}

// SendAsync gửi email trên goroutine riêng; lỗi chỉ ghi log, không chặn request.
// Dùng cho các email mang tính thông báo (xác nhận lịch hẹn, mời đánh giá).
func SendAsync(sender EmailSender, msg EmailMessage) {
	go func() {
		if err := sender.Send(context.Background(), msg); err != nil {
			logger.GetErrorLogger().WithError(err).
				WithField("recipient", msg.Recipient).
				Error("Gửi email thất bại")
		}
	}()
}
