package jobs

import (
	"context"
	"time"

	"resort/config"
	"resort/services"
	"resort/services/logger"
	"resort/services/notification"

	"github.com/olahol/melody"
	"github.com/robfig/cron/v3"
)

// InitCronJobs khởi tạo các cron jobs
func InitCronJobs(c *cron.Cron, m *melody.Melody) error {
	lg := logger.NewDefaultLogger(logger.InfoLevel).WithPrefix("cron: ")
	notifier := notification.NewMelodyService(m)
	provider := services.NewHTTPPaymentProvider()

	// Tắt khuyến mãi hết hạn lúc 0h mỗi ngày
	_, err := c.AddFunc("0 0 * * *", func() {
		now := time.Now()
		count, err := services.DeactivateExpiredPromotions(config.DB, now)
		if err != nil {
			lg.Error("Lỗi khi tắt khuyến mãi hết hạn: %v", err)
			return
		}
		if count > 0 {
			lg.Info("Đã tắt %d khuyến mãi hết hạn lúc: %v", count, now)
			if err := notifier.SendMessage("Khuyến mãi hết hạn đã được tắt"); err != nil {
				lg.Error("Lỗi gửi thông báo khuyến mãi: %v", err)
			}
		}
	})
	if err != nil {
		return err
	}

	// Đối soát hóa đơn PENDING với cổng thanh toán mỗi giờ
	_, err = c.AddFunc("0 * * * *", func() {
		updated, err := services.ReconcilePendingInvoices(context.Background(), config.DB, provider, time.Now())
		if err != nil {
			lg.Error("Lỗi khi đối soát hóa đơn: %v", err)
			return
		}
		if updated > 0 {
			lg.Info("Đã cập nhật trạng thái %d hóa đơn từ cổng thanh toán", updated)
		}
	})
	if err != nil {
		return err
	}

	c.Start()
	lg.Info("Cron jobs initialized successfully")
	return nil
}
