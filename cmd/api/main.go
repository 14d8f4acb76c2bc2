package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/hyjain/ecom-backend/internal/cloudinaryx"
	"github.com/hyjain/ecom-backend/internal/config"
	"github.com/hyjain/ecom-backend/internal/firestorex"
	"github.com/hyjain/ecom-backend/internal/httpx"
	"github.com/hyjain/ecom-backend/internal/razorpayx"
	"github.com/joho/godotenv"
)

func main() {
	_ = godotenv.Load()

	cfg := config.Load()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Firestore
	db, err := firestorex.Connect(ctx, cfg.FirebaseCredentialsFile, cfg.FirebaseDatabaseURL)
	if err != nil {
		slog.Error("firestore connect", "err", err)
		os.Exit(1)
	}
	defer db.Close()

	// Cloudinary
	media, err := cloudinaryx.New(
		cfg.CloudinaryCloudName, cfg.CloudinaryAPIKey, cfg.CloudinaryAPISecret,
		cfg.CloudinaryFolder,
	)
	if err != nil {
		slog.Error("cloudinary init", "err", err)
		os.Exit(1)
	}

	// Razorpay (optional)
	var payments httpx.PaymentGateway
	if cfg.PaymentsEnabled() {
		payments = razorpayx.New(cfg.RazorpayKeyID, cfg.RazorpayKeySecret)
		slog.Info("razorpay initialized")
	} else {
		slog.Warn("razorpay keys not found, payment route disabled")
	}

	router := httpx.NewRouter(httpx.NewOriginPolicy(cfg.AllowNoOrigin, cfg.AllowedOrigins))
	(&httpx.ProductsHandler{Store: &firestorex.ProductStore{Client: db}}).Register(router)
	(&httpx.UploadHandler{Store: media}).Register(router)
	(&httpx.OrdersHandler{Gateway: payments}).Register(router)

	srv := &http.Server{Addr: cfg.HTTPAddr, Handler: router}

	// graceful shutdown
	go func() {
		slog.Info("server running", "addr", cfg.HTTPAddr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("listen", "err", err)
			os.Exit(1)
		}
	}()

	// wait signal
	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)
	<-sig
	slog.Info("shutting down...")

	ctx2, cancel2 := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel2()
	_ = srv.Shutdown(ctx2)
}
