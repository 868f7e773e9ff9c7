package routes

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"desacitamiang_backend/internals/constants"
	helperOSS "desacitamiang_backend/internals/helpers/oss"
	authMw "desacitamiang_backend/internals/middlewares/auth"

	bannerRoute "desacitamiang_backend/internals/features/home/banners/route"
	dokumentasiRoute "desacitamiang_backend/internals/features/home/dokumentasi/route"
	homeRoute "desacitamiang_backend/internals/features/home/route"
	perangkatRoute "desacitamiang_backend/internals/features/perangkat/route"
	potensiRoute "desacitamiang_backend/internals/features/potensi/route"
	profilRoute "desacitamiang_backend/internals/features/profil/route"
	umkmRoute "desacitamiang_backend/internals/features/umkm/route"
	adminUserRoute "desacitamiang_backend/internals/features/users/admin/route"
	authRoute "desacitamiang_backend/internals/features/users/auth/route"
)

// SetupRoutes mendaftarkan seluruh route aplikasi:
//
//	/api/auth    → login/logout/refresh (publik + rate limit login)
//	/api/public  → konten untuk website desa (tanpa auth)
//	/api/a       → panel admin (role admin/owner)
//	/api/o       → manajemen akun (khusus owner)
func SetupRoutes(app *fiber.App, db *gorm.DB) {
	var blob helperOSS.BlobService
	if svc, err := helperOSS.NewOSSBlobServiceFromEnv("desacitamiang"); err != nil {
		log.Println("⚠️ OSS tidak terkonfigurasi, upload gambar akan gagal:", err)
	} else {
		blob = svc
	}

	BaseRoutes(app, db)

	api := app.Group("/api")

	// 🔓 Auth
	authRoute.AuthRoutes(api.Group("/auth"), db)

	// 🔓 Publik (website desa)
	public := api.Group("/public")
	homeRoute.HomePublicRoutes(public, db)
	bannerRoute.BannerPublicRoutes(public, db)
	dokumentasiRoute.DokumentasiPublicRoutes(public, db)
	potensiRoute.PotensiPublicRoutes(public, db)
	umkmRoute.UmkmPublicRoutes(public, db)
	perangkatRoute.PerangkatPublicRoutes(public, db)
	profilRoute.ProfilPublicRoutes(public, db)

	// 🔒 Panel admin (admin & owner)
	admin := api.Group("/a",
		authMw.AuthMiddleware(),
		authMw.OnlyRolesSlice(constants.RoleErrorAdmin("panel admin"), constants.AdminAndAbove),
	)
	bannerRoute.BannerAdminRoutes(admin, db, blob)
	dokumentasiRoute.DokumentasiAdminRoutes(admin, db, blob)
	potensiRoute.PotensiAdminRoutes(admin, db, blob)
	umkmRoute.UmkmAdminRoutes(admin, db, blob)
	perangkatRoute.PerangkatAdminRoutes(admin, db, blob)
	profilRoute.ProfilAdminRoutes(admin, db)

	// 🔒 Manajemen akun (owner saja)
	owner := api.Group("/o",
		authMw.AuthMiddleware(),
		authMw.OnlyRolesSlice(constants.RoleErrorOwner("manajemen akun"), constants.OwnerOnly),
	)
	adminUserRoute.AdminUserOwnerRoutes(owner, db)
}
