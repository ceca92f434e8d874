package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/fintrackhq/fintrack-backend/internal/adapter/auth"
	"github.com/fintrackhq/fintrack-backend/internal/adapter/httpapi"
	"github.com/fintrackhq/fintrack-backend/internal/adapter/repository/postgres"
	"github.com/fintrackhq/fintrack-backend/internal/config"
)

func main() {
	log := logrus.New()
	log.SetFormatter(&logrus.JSONFormatter{})

	cfg, err := config.NewConfig()
	if err != nil {
		log.WithError(err).Fatal("failed to load configuration")
	}
	if level, err := logrus.ParseLevel(cfg.LogLevel); err == nil {
		log.SetLevel(level)
	}

	db, err := postgres.NewDB(cfg.DBConn)
	if err != nil {
		log.WithError(err).Fatal("failed to connect to database")
	}
	defer db.Close()

	verifier := auth.NewVerifier(cfg.JWTSecret, !cfg.Production())
	api := httpapi.NewAPI(log, verifier, httpapi.Repositories{
		Cards:            postgres.NewCreditCardRepository(db),
		Loans:            postgres.NewLoanRepository(db),
		Income:           postgres.NewIncomeSourceRepository(db),
		Expenses:         postgres.NewExpenseRepository(db),
		Payments:         postgres.NewPaymentRepository(db),
		Assets:           postgres.NewAssetRepository(db),
		Liabilities:      postgres.NewLiabilityRepository(db),
		Snapshots:        postgres.NewSnapshotRepository(db),
		BusinessProfiles: postgres.NewBusinessProfileRepository(db),
		BusinessRevenue:  postgres.NewBusinessRevenueRepository(db),
		BusinessExpenses: postgres.NewBusinessExpenseRepository(db),
		Vendors:          postgres.NewVendorRepository(db),
		PurchaseOrders:   postgres.NewPurchaseOrderRepository(db),
	})

	server := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      api.Router(),
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.WithField("port", cfg.Port).Info("http server listening")
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.WithError(err).Fatal("http server failed")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("shutting down")
	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		log.WithError(err).Error("graceful shutdown failed")
	}
}
