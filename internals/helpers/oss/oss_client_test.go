package helper

import (
	"regexp"
	"strings"
	"testing"
)

func TestSlugifyKey(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"Foto Kegiatan 17an", "foto-kegiatan-17an"},
		{"banner_utama", "banner-utama"},
		{"???", "file"},
		{"", "file"},
	}
	for _, c := range cases {
		if got := slugifyKey(c.in); got != c.want {
			t.Errorf("slugifyKey(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestBuildObjectKeyFormat(t *testing.T) {
	s := &OSSService{Prefix: "desacitamiang"}
	key := s.buildObjectKey("Foto Kegiatan.webp")

	// desacitamiang/foto-kegiatan_YYYYMMDD_HHMMSS_xxxxxx.webp
	re := regexp.MustCompile(`^desacitamiang/foto-kegiatan_\d{8}_\d{6}_[0-9a-f]{6}\.webp$`)
	if !re.MatchString(key) {
		t.Fatalf("object key %q tidak sesuai pola", key)
	}
}

func TestBuildObjectKeyUnique(t *testing.T) {
	s := &OSSService{}
	seen := map[string]bool{}
	for i := 0; i < 50; i++ {
		key := s.buildObjectKey("a.webp")
		if seen[key] {
			t.Fatalf("object key duplikat dalam satu detik: %q", key)
		}
		seen[key] = true
	}
}

func TestPublicURLAndExtractKey(t *testing.T) {
	t.Setenv("ALI_OSS_PUBLIC_BASE", "")
	s := &OSSService{
		Endpoint:   "https://oss-ap-southeast-5.aliyuncs.com",
		BucketName: "desa-citamiang",
	}

	url := s.PublicURL("banners/foto.webp")
	want := "https://desa-citamiang.oss-ap-southeast-5.aliyuncs.com/banners/foto.webp"
	if url != want {
		t.Fatalf("PublicURL = %q, want %q", url, want)
	}

	key, err := ExtractKeyFromPublicURL(url)
	if err != nil {
		t.Fatalf("extract: %v", err)
	}
	if key != "banners/foto.webp" {
		t.Fatalf("key = %q", key)
	}
}

func TestExtractKeyWithPublicBase(t *testing.T) {
	t.Setenv("ALI_OSS_PUBLIC_BASE", "https://cdn.desacitamiang.id")

	key, err := ExtractKeyFromPublicURL("https://cdn.desacitamiang.id/banners/foto.webp")
	if err != nil {
		t.Fatalf("extract: %v", err)
	}
	if key != "banners/foto.webp" {
		t.Fatalf("key = %q", key)
	}
}

func TestExtractKeyErrors(t *testing.T) {
	t.Setenv("ALI_OSS_PUBLIC_BASE", "")
	if _, err := ExtractKeyFromPublicURL(""); err == nil {
		t.Fatal("expected error for empty url")
	}
	if _, err := ExtractKeyFromPublicURL("https://host-tanpa-path"); err == nil {
		t.Fatal("expected error for url without key")
	}
}

func TestDecodeImageUnsupported(t *testing.T) {
	_, err := decodeImage([]byte("bukan gambar sama sekali, cuma teks"), "file.txt")
	if err == nil || !strings.Contains(err.Error(), "format tidak didukung") {
		t.Fatalf("err = %v, want format tidak didukung", err)
	}
}
