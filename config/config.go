// Package config reads the SDK's configuration surface from the environment,
// optionally seeded from a .env file. It hands the values to the rest of the
// library as plain structs; nothing here is required, a host application can
// just as well construct checkout.Config and webhook.Validator directly.
package config

import (
	"os"

	"github.com/joho/godotenv"

	"maya-go/checkout"
	"maya-go/data"
)

type Config struct {
	Environment         checkout.Environment
	PublicKey           string
	SecretKey           string
	BaseURL             string
	WebhookSecret       string
	SuccessURL          string
	FailureURL          string
	CancelURL           string
	CheckoutURLTemplate string
}

// Load reads the MAYA_* variables. Missing keys are not fatal here; the
// components that need them fail with typed errors at construction instead.
func Load() *Config {
	_ = godotenv.Load()

	env := checkout.Environment(os.Getenv("MAYA_ENVIRONMENT"))
	if env == "" {
		env = checkout.Sandbox
	}

	return &Config{
		Environment:         env,
		PublicKey:           os.Getenv("MAYA_PUBLIC_KEY"),
		SecretKey:           os.Getenv("MAYA_SECRET_KEY"),
		BaseURL:             os.Getenv("MAYA_BASE_URL"),
		WebhookSecret:       os.Getenv("MAYA_WEBHOOK_SECRET"),
		SuccessURL:          os.Getenv("MAYA_REDIRECT_URL_SUCCESS"),
		FailureURL:          os.Getenv("MAYA_REDIRECT_URL_FAILURE"),
		CancelURL:           os.Getenv("MAYA_REDIRECT_URL_CANCEL"),
		CheckoutURLTemplate: os.Getenv("MAYA_CHECKOUT_URL_TEMPLATE"),
	}
}

// Client builds a checkout client from the loaded credentials.
func (c *Config) Client() *checkout.Client {
	return checkout.NewClient(checkout.Config{
		Environment:         c.Environment,
		PublicKey:           c.PublicKey,
		SecretKey:           c.SecretKey,
		BaseURL:             c.BaseURL,
		CheckoutURLTemplate: c.CheckoutURLTemplate,
	})
}

// Redirect builds the configured default redirect targets. It validates the
// three URLs the same way caller-supplied ones are validated.
func (c *Config) Redirect() (*data.RedirectURLs, error) {
	return data.NewRedirectURLs(c.SuccessURL, c.FailureURL, c.CancelURL)
}
