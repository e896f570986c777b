package handler

import (
	"time"

	"hargeisa_vibes/database"
	"hargeisa_vibes/model"
	"hargeisa_vibes/utils"

	"github.com/go-co-op/gocron/v2"
	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

var (
	dealScheduler    *cron.Cron
	cleanupScheduler gocron.Scheduler
)

// StartDealExpiryWorker deactivates deals whose valid_until has passed.
// Runs every 5 minutes so expired deals drop out of listings promptly.
func StartDealExpiryWorker() {
	dealScheduler = cron.New(cron.WithChain(
		cron.SkipIfStillRunning(cron.DefaultLogger),
	))

	_, err := dealScheduler.AddFunc("*/5 * * * *", deactivateExpiredDeals)
	if err != nil {
		utils.GetLogger().Error("deal expiry worker failed to start", zap.Error(err))
		return
	}

	dealScheduler.Start()
	utils.GetLogger().Info("deal expiry worker started")
}

func deactivateExpiredDeals() {
	var expired model.Deals
	if err := database.DB.
		Where("is_active = ? AND valid_until IS NOT NULL AND valid_until < ?", true, time.Now()).
		Find(&expired).Error; err != nil {
		utils.GetLogger().Error("deal expiry sweep failed", zap.Error(err))
		return
	}
	if len(expired) == 0 {
		return
	}

	for _, deal := range expired {
		notifyDealExpired(deal)

		if err := database.DB.Model(&model.Deal{}).
			Where("id = ?", deal.ID).
			Update("is_active", false).Error; err != nil {
			utils.GetLogger().Error("deal deactivation failed",
				zap.Uint("dealId", deal.ID), zap.Error(err))
		}
	}

	utils.GetLogger().Info("deals deactivated", zap.Int("count", len(expired)))
}

// notifyDealExpired tells everyone who saved the deal that it is gone.
func notifyDealExpired(deal model.Deal) {
	var saved []model.SavedDeal
	if err := database.DB.Where("deal_id = ?", deal.ID).Find(&saved).Error; err != nil {
		utils.GetLogger().Error("saved deal lookup failed",
			zap.Uint("dealId", deal.ID), zap.Error(err))
		return
	}

	for _, s := range saved {
		notification := model.Notification{
			UserId: s.UserId,
			Title:  "Deal expired",
			Body:   "The deal \"" + deal.Title + "\" you saved has expired.",
		}
		if err := database.DB.Create(&notification).Error; err != nil {
			utils.GetLogger().Error("expiry notification failed",
				zap.Uint("userId", s.UserId), zap.Error(err))
		}
	}
}

func StopDealExpiryWorker() {
	if dealScheduler != nil {
		dealScheduler.Stop()
	}
}

// StartCleanupScheduler purges expired password reset tokens and read
// notifications older than 30 days, once a day at 03:00.
func StartCleanupScheduler() {
	s, err := gocron.NewScheduler()
	if err != nil {
		utils.GetLogger().Error("cleanup scheduler failed to start", zap.Error(err))
		return
	}

	cleanupScheduler = s

	_, err = s.NewJob(
		gocron.DailyJob(
			1,
			gocron.NewAtTimes(
				gocron.NewAtTime(3, 0, 0),
			),
		),
		gocron.NewTask(purgeStaleRecords),
	)
	if err != nil {
		utils.GetLogger().Error("cleanup job registration failed", zap.Error(err))
		return
	}

	s.Start()
	utils.GetLogger().Info("cleanup scheduler started")
}

func purgeStaleRecords() {
	now := time.Now()

	if err := database.DB.Unscoped().
		Where("expires_at < ?", now).
		Delete(&model.PasswordResetToken{}).Error; err != nil {
		utils.GetLogger().Error("reset token purge failed", zap.Error(err))
	}

	if err := database.DB.
		Where("`read` = ? AND created_at < ?", true, now.AddDate(0, 0, -30)).
		Delete(&model.Notification{}).Error; err != nil {
		utils.GetLogger().Error("notification purge failed", zap.Error(err))
	}
}

func StopCleanupScheduler() {
	if cleanupScheduler != nil {
		_ = cleanupScheduler.Shutdown()
	}
}
