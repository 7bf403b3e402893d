// Command demo creates a sandbox checkout end to end: config from the
// environment, a line item with a derived total, and the creation call,
// then fetches the session back by id.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"go.uber.org/zap"

	"maya-go/checkout"
	"maya-go/config"
	"maya-go/data"
	"maya-go/internal/logger"
)

func main() {
	logger.Init(os.Getenv("APP_ENV"))
	defer logger.Sync()

	cfg := config.Load()
	if cfg.PublicKey == "" || cfg.SecretKey == "" {
		logger.L().Fatal("MAYA_PUBLIC_KEY and MAYA_SECRET_KEY must be set")
	}

	redirect, err := cfg.Redirect()
	if err != nil {
		logger.L().Fatal("invalid redirect URL configuration", zap.Error(err))
	}

	unit, err := data.NewAmount(499.75, "PHP")
	if err != nil {
		logger.L().Fatal("bad amount", zap.Error(err))
	}
	item, err := data.NewItem("Annual subscription", 2, unit, nil)
	if err != nil {
		logger.L().Fatal("bad item", zap.Error(err))
	}
	total, err := data.NewAmount(999.50, "PHP")
	if err != nil {
		logger.L().Fatal("bad amount", zap.Error(err))
	}

	req := &data.CheckoutRequest{
		TotalAmount:     total,
		RedirectURLs:    redirect,
		ReferenceNumber: data.NewReferenceNumber(),
		Buyer: &data.Buyer{
			FirstName: data.String("Juan"),
			LastName:  data.String("Dela Cruz"),
		},
		Items:    []*data.Item{item},
		Metadata: map[string]any{"channel": "demo"},
	}

	client := cfg.Client()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	result, err := client.Create(ctx, req)
	if err != nil {
		var failure *checkout.ValidationFailure
		if errors.As(err, &failure) {
			logger.L().Fatal("checkout rejected", zap.Any("errors", failure.Errors))
		}
		logger.L().Fatal("checkout creation failed", zap.Error(err))
	}

	fmt.Printf("checkout %s created, send the payer to %s\n", result.CheckoutID, result.RedirectURL)

	details, err := client.Get(ctx, result.CheckoutID)
	if err != nil {
		logger.L().Fatal("checkout retrieval failed", zap.Error(err))
	}
	fmt.Printf("checkout %s is %s for %.2f %s\n",
		details.ID, details.Status, details.TotalAmount.Value, details.TotalAmount.Currency)
}
