package main

import (
	"os"

	"github.com/SscSPs/dre_backoffice/internal/commands"
)

// @title DRE Back Office API
// @version 1.0
// @description Posting rules, ledger entries and the income statement (DRE) of the back office.

// @host localhost:8080
// @BasePath /api/v1

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

// @security BearerAuth
func main() {
	if err := commands.NewRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}
