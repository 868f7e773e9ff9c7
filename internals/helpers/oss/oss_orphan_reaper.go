// internals/helpers/oss/oss_orphan_reaper.go
package helper

import (
	"context"
	"log"
	"os"
	"strconv"
	"time"

	"github.com/aliyun/aliyun-oss-go-sdk/oss"
	"github.com/robfig/cron/v3"
	"gorm.io/gorm"

	uploadModel "desacitamiang_backend/internals/features/storage/uploads/model"
)

type OrphanReaperConfig struct {
	Endpoint        string
	AccessKeyID     string
	AccessKeySecret string
	Bucket          string
	RetentionHours  int
	CronSchedule    string
	DryRun          bool
}

func getEnvOrDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvBool(key string, def bool) bool {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	switch v {
	case "1", "true", "TRUE", "True", "yes", "on":
		return true
	default:
		return false
	}
}

func getEnvInt(key string, def int) int {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	i, err := strconv.Atoi(v)
	if err != nil {
		return def
	}
	return i
}

// ── ENTRYPOINT: panggil dari main.go setelah DB siap.
//
// Rekonsiliasi upload → row: baris ledger `uploads` yang tidak pernah
// di-claim (upload sukses tapi insert row-nya gagal, atau prosesnya mati di
// tengah jalan) dihapus berikut objectnya setelah lewat masa retensi.
func StartOrphanReaperCron(db *gorm.DB) {
	cfg := OrphanReaperConfig{
		Endpoint:        os.Getenv("ALI_OSS_ENDPOINT"),
		AccessKeyID:     os.Getenv("ALI_OSS_ACCESS_KEY"),
		AccessKeySecret: os.Getenv("ALI_OSS_SECRET_KEY"),
		Bucket:          os.Getenv("ALI_OSS_BUCKET"),
		RetentionHours:  getEnvInt("ORPHAN_RETENTION_HOURS", 24),
		CronSchedule:    getEnvOrDefault("ORPHAN_CRON_SCHEDULE", "45 2 * * *"),
		DryRun:          getEnvBool("DRY_RUN", false),
	}

	var bucket *oss.Bucket
	if cfg.Endpoint != "" && cfg.AccessKeyID != "" && cfg.AccessKeySecret != "" && cfg.Bucket != "" {
		if cli, err := oss.New(cfg.Endpoint, cfg.AccessKeyID, cfg.AccessKeySecret); err == nil {
			if b, e := cli.Bucket(cfg.Bucket); e == nil {
				bucket = b
			} else {
				log.Printf("[ORPHAN-REAPER] get bucket gagal: %v", e)
			}
		} else {
			log.Printf("[ORPHAN-REAPER] OSS init gagal: %v", err)
		}
	} else {
		log.Printf("[ORPHAN-REAPER] ENV ALI_OSS_* tidak lengkap — ledger dibersihkan tanpa hapus object")
	}

	c := cron.New(cron.WithChain(cron.SkipIfStillRunning(cron.DefaultLogger)))
	_, err := c.AddFunc(cfg.CronSchedule, func() {
		ctx, cancel := context.WithTimeout(context.Background(), 4*time.Minute)
		defer cancel()
		retention := time.Duration(cfg.RetentionHours) * time.Hour
		if err := RunOrphanReaper(ctx, db, bucket, retention, cfg.DryRun); err != nil {
			log.Printf("[ORPHAN-REAPER] error: %v", err)
		}
	})
	if err != nil {
		log.Fatalf("[ORPHAN-REAPER] add cron gagal: %v", err)
	}
	log.Printf("[ORPHAN-REAPER] started schedule=%q retention=%dh dryRun=%v",
		cfg.CronSchedule, cfg.RetentionHours, cfg.DryRun)
	c.Start()
}

// RunOrphanReaper sekali jalan; dipisah supaya bisa dites tanpa cron.
func RunOrphanReaper(ctx context.Context, db *gorm.DB, bucket *oss.Bucket, retention time.Duration, dryRun bool) error {
	cutoff := time.Now().Add(-retention)

	var orphans []uploadModel.UploadModel
	if err := db.WithContext(ctx).
		Where("upload_claimed_at IS NULL AND upload_created_at < ?", cutoff).
		Limit(1000).
		Find(&orphans).Error; err != nil {
		return err
	}
	if len(orphans) == 0 {
		log.Printf("[ORPHAN-REAPER] nothing to delete (cutoff=%s)", cutoff.Format(time.RFC3339))
		return nil
	}
	if dryRun {
		log.Printf("[ORPHAN-REAPER] DRY-RUN would delete %d orphan uploads", len(orphans))
		return nil
	}

	keys := make([]string, 0, len(orphans))
	ids := make([]uint, 0, len(orphans))
	for _, o := range orphans {
		keys = append(keys, o.UploadObjectKey)
		ids = append(ids, o.UploadID)
	}

	if bucket != nil {
		for i := 0; i < len(keys); i += 1000 {
			end := i + 1000
			if end > len(keys) {
				end = len(keys)
			}
			if _, err := bucket.DeleteObjects(keys[i:end], oss.DeleteObjectsQuiet(true)); err != nil {
				log.Printf("[ORPHAN-REAPER] delete batch %d-%d gagal: %v", i, end, err)
				// object masih ada → biarkan ledger-nya, coba lagi run berikutnya
				return err
			}
		}
	}

	res := db.WithContext(ctx).Delete(&uploadModel.UploadModel{}, ids)
	if res.Error != nil {
		return res.Error
	}
	log.Printf("[ORPHAN-REAPER] reaped %d orphan uploads (cutoff=%s)", res.RowsAffected, cutoff.Format(time.RFC3339))
	return nil
}
