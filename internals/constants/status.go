package constants

// Status publikasi konten, mengikuti nilai yang dikonsumsi frontend publik.
const (
	StatusAktif    = "aktif"
	StatusNonAktif = "non-aktif"
)

// ToggleStatus membalik aktif <-> non-aktif.
func ToggleStatus(current string) string {
	if current == StatusAktif {
		return StatusNonAktif
	}
	return StatusAktif
}

// Hero default ketika belum ada banner aktif sama sekali.
const (
	DefaultHeroTitle       = "Selamat Datang di Desa Citamiang"
	DefaultHeroDescription = "Kecamatan Maniis, Kabupaten Purwakarta - Bersama Membangun Desa yang Maju dan Sejahtera"
)
