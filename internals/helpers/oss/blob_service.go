// internals/helpers/oss/blob_service.go
package helper

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"path/filepath"
	"strings"

	"github.com/chai2010/webp"
	"github.com/disintegration/imaging"
	"github.com/gofiber/fiber/v2"
)

/*
BlobService adalah facade upload/hapus yang seragam untuk controller dan
service publikasi. Implementasi produksi memakai Aliyun OSS; untuk unit test
ada MockBlobService di bawah.
*/

type BlobService interface {
	// UploadImage re-encode gambar ke WebP lalu simpan ke <dir>/.
	// Mengembalikan publicURL + objectKey (objectKey disimpan di ledger uploads).
	UploadImage(ctx context.Context, dir string, fh *multipart.FileHeader) (publicURL, objectKey string, err error)

	// UploadImageWithThumb seperti UploadImage plus thumbnail WebP selebar thumbW.
	UploadImageWithThumb(ctx context.Context, dir string, fh *multipart.FileHeader, thumbW int) (publicURL, thumbURL, objectKey, thumbKey string, err error)

	DeleteByPublicURL(ctx context.Context, publicURL string) error
}

// --------------------------------------------------
// Implementasi berbasis Aliyun OSS (OSSService)
// --------------------------------------------------

type OSSBlobService struct {
	svc *OSSService
}

// Buat instance dari ENV. prefix opsional (contoh: "uploads").
func NewOSSBlobServiceFromEnv(prefix string) (*OSSBlobService, error) {
	s, err := NewOSSServiceFromEnv(prefix)
	if err != nil {
		return nil, err
	}
	return &OSSBlobService{svc: s}, nil
}

func (b *OSSBlobService) UploadImage(ctx context.Context, dir string, fh *multipart.FileHeader) (string, string, error) {
	if fh == nil {
		return "", "", fiber.NewError(fiber.StatusBadRequest, "File tidak ditemukan")
	}
	key, err := b.svc.UploadAsWebP(ctx, fh, dir)
	if err != nil {
		if fe, ok := err.(*fiber.Error); ok {
			return "", "", fe
		}
		return "", "", fiber.NewError(fiber.StatusBadGateway, fmt.Sprintf("Gagal upload ke OSS: %v", err))
	}
	return b.svc.PublicURL(key), key, nil
}

func (b *OSSBlobService) UploadImageWithThumb(ctx context.Context, dir string, fh *multipart.FileHeader, thumbW int) (string, string, string, string, error) {
	publicURL, key, err := b.UploadImage(ctx, dir, fh)
	if err != nil {
		return "", "", "", "", err
	}

	thumbData, err := thumbWebP(fh, thumbW)
	if err != nil {
		// thumbnail gagal bukan alasan membatalkan upload utama
		return publicURL, "", key, "", nil
	}

	ext := filepath.Ext(key)
	thumbKey := strings.TrimSuffix(key, ext) + "_thumb" + ext
	if err := b.svc.UploadWebPBytes(ctx, thumbKey, thumbData); err != nil {
		return publicURL, "", key, "", nil
	}
	return publicURL, b.svc.PublicURL(thumbKey), key, thumbKey, nil
}

func (b *OSSBlobService) DeleteByPublicURL(ctx context.Context, publicURL string) error {
	if strings.TrimSpace(publicURL) == "" {
		return fiber.NewError(fiber.StatusBadRequest, "URL kosong")
	}
	key, err := ExtractKeyFromPublicURL(publicURL)
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}
	if err := b.svc.DeleteObject(ctx, key); err != nil {
		return fiber.NewError(fiber.StatusBadGateway, fmt.Sprintf("Gagal hapus object: %v", err))
	}
	return nil
}

// thumbWebP: decode ulang file form lalu kecilkan dengan imaging (Lanczos).
func thumbWebP(fh *multipart.FileHeader, maxW int) ([]byte, error) {
	if maxW <= 0 {
		maxW = 400
	}
	src, err := fh.Open()
	if err != nil {
		return nil, err
	}
	defer src.Close()

	all, err := io.ReadAll(src)
	if err != nil {
		return nil, err
	}
	img, err := decodeImage(all, fh.Filename)
	if err != nil {
		return nil, err
	}

	thumb := imaging.Resize(img, maxW, 0, imaging.Lanczos)
	buf := new(bytes.Buffer)
	if err := webp.Encode(buf, thumb, &webp.Options{Lossless: false, Quality: 70}); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// --------------------------------------------------
// Helper kecil untuk controller
// --------------------------------------------------

// IsMultipart menilai request multipart/form-data
func IsMultipart(c *fiber.Ctx) bool {
	ct := strings.ToLower(strings.TrimSpace(c.Get(fiber.HeaderContentType)))
	return strings.HasPrefix(ct, "multipart/form-data")
}

// Nama-nama field umum untuk upload gambar
var defaultImageFields = []string{"image", "file", "photo", "foto"}

// GetImageFile mencari file dari beberapa kemungkinan field form.
// Jika tidak ada file, kembalikan (nil, nil) supaya controller bisa fallback.
func GetImageFile(c *fiber.Ctx, fieldNames ...string) (*multipart.FileHeader, error) {
	if !IsMultipart(c) {
		return nil, fiber.NewError(fiber.StatusBadRequest, "Gunakan multipart/form-data")
	}
	names := fieldNames
	if len(names) == 0 {
		names = defaultImageFields
	}
	for _, fn := range names {
		if fh, err := c.FormFile(fn); err == nil && fh != nil {
			return fh, nil
		}
	}
	return nil, nil
}

// --------------------------------------------------
// Mock untuk unit test
// --------------------------------------------------

type MockBlobService struct {
	UploadImageFn          func(ctx context.Context, dir string, fh *multipart.FileHeader) (string, string, error)
	UploadImageWithThumbFn func(ctx context.Context, dir string, fh *multipart.FileHeader, thumbW int) (string, string, string, string, error)
	DeleteByPublicURLFn    func(ctx context.Context, publicURL string) error
}

func (m *MockBlobService) UploadImage(ctx context.Context, dir string, fh *multipart.FileHeader) (string, string, error) {
	if m.UploadImageFn == nil {
		return "", "", errors.New("not implemented")
	}
	return m.UploadImageFn(ctx, dir, fh)
}

func (m *MockBlobService) UploadImageWithThumb(ctx context.Context, dir string, fh *multipart.FileHeader, thumbW int) (string, string, string, string, error) {
	if m.UploadImageWithThumbFn == nil {
		url, key, err := m.UploadImage(ctx, dir, fh)
		return url, "", key, "", err
	}
	return m.UploadImageWithThumbFn(ctx, dir, fh, thumbW)
}

func (m *MockBlobService) DeleteByPublicURL(ctx context.Context, publicURL string) error {
	if m.DeleteByPublicURLFn == nil {
		return errors.New("not implemented")
	}
	return m.DeleteByPublicURLFn(ctx, publicURL)
}
