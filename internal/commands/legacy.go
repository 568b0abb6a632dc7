package commands

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/SscSPs/dre_backoffice/internal/apperrors"
	portssvc "github.com/SscSPs/dre_backoffice/internal/core/ports/services"
	"github.com/SscSPs/dre_backoffice/internal/core/services"
	"github.com/SscSPs/dre_backoffice/internal/middleware"
	"github.com/SscSPs/dre_backoffice/internal/platform/config"
	"github.com/spf13/cobra"
)

// Status values written by legacy resolve.
const (
	legacyFound    = "FOUND"
	legacyNotFound = "NOT_FOUND"
)

func newLegacyCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "legacy",
		Short: "Helpers for migrating legacy classifications",
	}
	cmd.AddCommand(newLegacyResolveCommand())
	return cmd
}

func newLegacyResolveCommand() *cobra.Command {
	var workplaceID string
	var file string

	cmd := &cobra.Command{
		Use:   "resolve",
		Short: "Map legacy category names (one per CSV row) to DRE accounts",
		Long: "Reads legacy names from the first column of a CSV file (or stdin with --file -) and\n" +
			"writes legacy_name,account_id,account_name,status rows to stdout.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := newLogger()
			cfg, err := config.LoadConfig()
			if err != nil {
				return fmt.Errorf("loading config: %w", err)
			}

			in := cmd.InOrStdin()
			if file != "-" {
				f, err := os.Open(file)
				if err != nil {
					return fmt.Errorf("opening %s: %w", file, err)
				}
				defer f.Close()
				in = f
			}

			ctx := middleware.WithLogger(cmd.Context(), logger)
			repos, closeRepos, err := openRepositories(ctx, logger, cfg)
			if err != nil {
				return err
			}
			defer closeRepos()

			chart := services.NewServiceContainer(repos, nil).Chart
			found, missing, err := resolveLegacyNames(ctx, chart, workplaceID, cfg.OperatorUserID, in, cmd.OutOrStdout())
			if err != nil {
				return err
			}
			logger.Info("Legacy names resolved", "found", found, "not_found", missing)
			return nil
		},
	}

	cmd.Flags().StringVar(&workplaceID, "workplace", "", "workplace ID (required)")
	_ = cmd.MarkFlagRequired("workplace")
	cmd.Flags().StringVar(&file, "file", "-", "CSV file with legacy names, - for stdin")

	return cmd
}

// resolveLegacyNames looks up every legacy name read from in and writes one
// CSV row per name to out. Blank names and a leading legacy_name header are
// skipped; a name is resolved once even when it repeats.
func resolveLegacyNames(ctx context.Context, chart portssvc.AccountReaderSvc, workplaceID, userID string, in io.Reader, out io.Writer) (found int, missing int, err error) {
	reader := csv.NewReader(in)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	writer := csv.NewWriter(out)
	if err := writer.Write([]string{"legacy_name", "account_id", "account_name", "status"}); err != nil {
		return 0, 0, err
	}

	seen := make(map[string]bool)
	for line := 1; ; line++ {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return found, missing, fmt.Errorf("reading legacy names: %w", err)
		}

		name := strings.TrimSpace(record[0])
		if name == "" || seen[name] || (line == 1 && strings.EqualFold(name, "legacy_name")) {
			continue
		}
		seen[name] = true

		account, err := chart.FindAccountByLegacyName(ctx, workplaceID, name, userID)
		switch {
		case errors.Is(err, apperrors.ErrNotFound):
			missing++
			err = writer.Write([]string{name, "", "", legacyNotFound})
		case err != nil:
			return found, missing, fmt.Errorf("resolving %q: %w", name, err)
		default:
			found++
			err = writer.Write([]string{name, account.AccountID, account.Name, legacyFound})
		}
		if err != nil {
			return found, missing, err
		}
	}

	writer.Flush()
	return found, missing, writer.Error()
}
