// internals/features/publication/service/publication_service.go
//
// Lifecycle publikasi konten: create (upload gambar + insert row, dua fase
// dengan kompensasi), toggle aktif/non-aktif (satu transaksi, termasuk
// invariant "maksimal satu aktif" untuk tipe singleton), dan pelepasan
// gambar saat row dihapus.
package service

import (
	"context"
	"fmt"
	"log"
	"mime/multipart"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	helperOSS "desacitamiang_backend/internals/helpers/oss"

	"desacitamiang_backend/internals/constants"
	uploadModel "desacitamiang_backend/internals/features/storage/uploads/model"
)

// StatusSpec memetakan satu tipe entity ber-status ke tabelnya.
type StatusSpec struct {
	Table        string
	IDColumn     string
	StatusColumn string
	// Singleton: public site hanya mengharapkan satu row aktif (banner).
	// Saat mengaktifkan, semua row lain dinon-aktifkan dalam transaksi yang sama.
	Singleton bool
}

// ToggleStatus membalik status aktif <-> non-aktif dalam SATU transaksi.
// Dua toggle berturut-turut pada id yang sama mengembalikan status semula.
func ToggleStatus(db *gorm.DB, spec StatusSpec, id uint) (string, error) {
	var newStatus string
	err := db.Transaction(func(tx *gorm.DB) error {
		var current string
		row := tx.Table(spec.Table).
			Select(spec.StatusColumn).
			Where(fmt.Sprintf("%s = ?", spec.IDColumn), id).
			Row()
		if err := row.Scan(&current); err != nil {
			return fiber.NewError(fiber.StatusNotFound, "Data tidak ditemukan")
		}

		newStatus = constants.ToggleStatus(current)

		if newStatus == constants.StatusAktif && spec.Singleton {
			// non-aktifkan saudara-saudaranya dulu, masih di transaksi yang sama
			if err := tx.Table(spec.Table).
				Where(fmt.Sprintf("%s <> ?", spec.IDColumn), id).
				Update(spec.StatusColumn, constants.StatusNonAktif).Error; err != nil {
				return fiber.NewError(fiber.StatusInternalServerError, "Gagal menon-aktifkan data lain")
			}
		}

		res := tx.Table(spec.Table).
			Where(fmt.Sprintf("%s = ?", spec.IDColumn), id).
			Update(spec.StatusColumn, newStatus)
		if res.Error != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Gagal update status")
		}
		if res.RowsAffected == 0 {
			return fiber.NewError(fiber.StatusNotFound, "Data tidak ditemukan")
		}
		return nil
	})
	if err != nil {
		return "", err
	}
	return newStatus, nil
}

// UploadResult hasil fase upload: URL publik + thumbnail (opsional).
type UploadResult struct {
	PublicURL string
	ThumbURL  string
	objectKey string
	thumbKey  string
}

// CreateWithImage menjalankan create dua-fase:
//  1. upload gambar (re-encode WebP) + catat di ledger uploads
//  2. insert row konten via callback, lalu claim ledger — satu transaksi
//
// Kalau insert gagal, object yang sudah terlanjur naik dihapus (kompensasi);
// kalau penghapusan kompensasi ikut gagal, ledger membiarkan reaper yang
// membereskannya.
func CreateWithImage(ctx context.Context, db *gorm.DB, blob helperOSS.BlobService, dir string, fh *multipart.FileHeader, insert func(tx *gorm.DB, up UploadResult) error) error {
	return createTwoPhase(ctx, db, blob, dir, fh, 0, insert)
}

// CreateWithImageThumb seperti CreateWithImage plus thumbnail selebar thumbW.
func CreateWithImageThumb(ctx context.Context, db *gorm.DB, blob helperOSS.BlobService, dir string, fh *multipart.FileHeader, thumbW int, insert func(tx *gorm.DB, up UploadResult) error) error {
	if thumbW <= 0 {
		thumbW = 400
	}
	return createTwoPhase(ctx, db, blob, dir, fh, thumbW, insert)
}

func createTwoPhase(ctx context.Context, db *gorm.DB, blob helperOSS.BlobService, dir string, fh *multipart.FileHeader, thumbW int, insert func(tx *gorm.DB, up UploadResult) error) error {
	if fh == nil {
		return fiber.NewError(fiber.StatusBadRequest, "File gambar wajib diisi")
	}
	if blob == nil {
		return fiber.NewError(fiber.StatusBadGateway, "Storage belum terkonfigurasi")
	}

	// Fase 1: upload
	var up UploadResult
	var err error
	if thumbW > 0 {
		up.PublicURL, up.ThumbURL, up.objectKey, up.thumbKey, err = blob.UploadImageWithThumb(ctx, dir, fh, thumbW)
	} else {
		up.PublicURL, up.objectKey, err = blob.UploadImage(ctx, dir, fh)
	}
	if err != nil {
		if fe, ok := err.(*fiber.Error); ok {
			return fe
		}
		return fiber.NewError(fiber.StatusBadGateway, "Gagal upload gambar. Pastikan bucket storage tersedia.")
	}

	ledger := []uploadModel.UploadModel{{
		UploadObjectKey: up.objectKey,
		UploadPublicURL: up.PublicURL,
		UploadDir:       dir,
	}}
	if up.thumbKey != "" {
		ledger = append(ledger, uploadModel.UploadModel{
			UploadObjectKey: up.thumbKey,
			UploadPublicURL: up.ThumbURL,
			UploadDir:       dir,
		})
	}
	if err := db.Create(&ledger).Error; err != nil {
		// ledger gagal → object yatim tanpa pencatat; hapus langsung
		compensate(ctx, blob, up)
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal mencatat upload")
	}

	// Fase 2: insert row + claim ledger
	err = db.Transaction(func(tx *gorm.DB) error {
		if err := insert(tx, up); err != nil {
			return err
		}
		now := time.Now()
		keys := []string{up.objectKey}
		if up.thumbKey != "" {
			keys = append(keys, up.thumbKey)
		}
		return tx.Model(&uploadModel.UploadModel{}).
			Where("upload_object_key IN ?", keys).
			Update("upload_claimed_at", &now).Error
	})
	if err != nil {
		compensate(ctx, blob, up)
		for _, l := range ledger {
			db.Where("upload_object_key = ?", l.UploadObjectKey).Delete(&uploadModel.UploadModel{})
		}
		if fe, ok := err.(*fiber.Error); ok {
			return fe
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal menyimpan data")
	}
	return nil
}

func compensate(ctx context.Context, blob helperOSS.BlobService, up UploadResult) {
	if err := blob.DeleteByPublicURL(ctx, up.PublicURL); err != nil {
		log.Printf("[PUBLICATION] kompensasi hapus object gagal (key=%s): %v — diserahkan ke reaper", up.objectKey, err)
	}
	if up.ThumbURL != "" {
		if err := blob.DeleteByPublicURL(ctx, up.ThumbURL); err != nil {
			log.Printf("[PUBLICATION] kompensasi hapus thumb gagal (key=%s): %v", up.thumbKey, err)
		}
	}
}

// ReleaseImages dipanggil setelah row konten dihapus: hapus object + baris
// ledger-nya, best-effort. Kegagalan hanya dicatat; row sudah hilang dan
// respons ke admin tetap sukses.
func ReleaseImages(ctx context.Context, db *gorm.DB, blob helperOSS.BlobService, urls ...string) {
	if blob == nil {
		log.Println("[PUBLICATION] storage belum terkonfigurasi, object dibiarkan")
		return
	}
	for _, u := range urls {
		if u == "" {
			continue
		}
		if err := blob.DeleteByPublicURL(ctx, u); err != nil {
			log.Printf("[PUBLICATION] hapus object gagal (url=%s): %v", u, err)
			continue
		}
		if err := db.Where("upload_public_url = ?", u).Delete(&uploadModel.UploadModel{}).Error; err != nil {
			log.Printf("[PUBLICATION] hapus ledger gagal (url=%s): %v", u, err)
		}
	}
}
