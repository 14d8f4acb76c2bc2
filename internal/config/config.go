package config

import (
	"os"
	"strconv"
	"strings"
)

type Config struct {
	HTTPAddr string

	FirebaseDatabaseURL     string
	FirebaseCredentialsFile string

	CloudinaryCloudName string
	CloudinaryAPIKey    string
	CloudinaryAPISecret string
	CloudinaryFolder    string

	RazorpayKeyID     string
	RazorpayKeySecret string

	AllowedOrigins []string
	AllowNoOrigin  bool
}

func Load() Config {
	return Config{
		HTTPAddr:                ":" + getenv("PORT", "10000"),
		FirebaseDatabaseURL:     os.Getenv("FIREBASE_DATABASE_URL"),
		FirebaseCredentialsFile: getenv("FIREBASE_CREDENTIALS_FILE", "serviceAccountKey.json"),
		CloudinaryCloudName:     os.Getenv("CLOUDINARY_CLOUD_NAME"),
		CloudinaryAPIKey:        os.Getenv("CLOUDINARY_API_KEY"),
		CloudinaryAPISecret:     os.Getenv("CLOUDINARY_API_SECRET"),
		CloudinaryFolder:        getenv("CLOUDINARY_UPLOAD_FOLDER", "hyjain-products"),
		RazorpayKeyID:           os.Getenv("RAZORPAY_KEY_ID"),
		RazorpayKeySecret:       os.Getenv("RAZORPAY_KEY_SECRET"),
		AllowedOrigins:          splitCSV(os.Getenv("ALLOWED_ORIGINS")),
		AllowNoOrigin:           getbool("ALLOW_NO_ORIGIN", true),
	}
}

// PaymentsEnabled reports whether both payment credentials are present;
// absence disables the order route entirely.
func (c Config) PaymentsEnabled() bool {
	return c.RazorpayKeyID != "" && c.RazorpayKeySecret != ""
}

func getenv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

func getbool(k string, def bool) bool {
	v := os.Getenv(k)
	if v == "" {
		return def
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return def
	}
	return b
}

func splitCSV(s string) []string {
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if t := strings.TrimSpace(p); t != "" {
			out = append(out, t)
		}
	}
	return out
}
