// Command bizos_token mints a bearer token for local use against the API,
// signed with the same JWT_SECRET and JWT_ISSUER the server loads.
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/SscSPs/bizos_calc/internal/platform/config"
	"github.com/SscSPs/bizos_calc/internal/utils/authtoken"
)

func main() {
	subject := flag.String("sub", "local-dev", "user ID placed in the sub claim")
	ttl := flag.Duration("ttl", 24*time.Hour, "token lifetime")
	flag.Parse()

	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Error("Failed to load config", slog.String("error", err.Error()))
		os.Exit(1)
	}
	if cfg.IsProduction {
		logger.Error("Refusing to mint tokens with a production configuration")
		os.Exit(1)
	}

	token, err := authtoken.Issue(*subject, cfg.JWTSecret, cfg.JWTIssuer, *ttl, time.Now())
	if err != nil {
		logger.Error("Failed to issue token", slog.String("error", err.Error()))
		os.Exit(1)
	}
	fmt.Println(token)
}
