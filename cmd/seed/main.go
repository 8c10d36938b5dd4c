package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"enersite-backend/internal/auth"
	"enersite-backend/internal/cache"
	"enersite-backend/internal/config"
	"enersite-backend/internal/db"
	"enersite-backend/internal/seed"
	"enersite-backend/internal/storage"
	"enersite-backend/internal/validation"

	"github.com/spf13/cobra"
)

var seedFile string

var rootCmd = &cobra.Command{
	Use:   "seed",
	Short: "Load site content into MongoDB",
	Long: `Load solutions, projects, partner types, team members and FAQs from a
YAML file into MongoDB. Without --file the built-in content is used.

Rows whose slug already exists are skipped, so the command can be re-run.
Team members and FAQs are only seeded into empty collections.

Examples:
  # Seed the built-in content
  seed

  # Seed from a custom file
  seed --file content.yaml`,
	RunE: runSeed,
}

var hashPasswordCmd = &cobra.Command{
	Use:   "hash-password",
	Short: "Print a bcrypt hash for ADMIN_PASSWORD_HASH",
	Long: `Read a password from standard input and print its bcrypt hash, suitable
for the ADMIN_PASSWORD_HASH environment variable.

Examples:
  echo -n 'a-long-password' | seed hash-password`,
	Args: cobra.NoArgs,
	RunE: runHashPassword,
}

func init() {
	rootCmd.Flags().StringVarP(&seedFile, "file", "f", "", "Path to a YAML seed file (default: built-in content)")
	rootCmd.AddCommand(hashPasswordCmd)
}

func runSeed(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: cfg.LogLevel}))

	content, err := seed.Load(seedFile)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(cmd.Context(), time.Minute)
	defer cancel()

	client, cols, err := db.Connect(ctx, cfg.MongoURI, cfg.MongoDB)
	if err != nil {
		return fmt.Errorf("mongo connection failed: %w", err)
	}
	defer client.Disconnect(context.Background())

	if err := db.EnsureIndexes(ctx, cols); err != nil {
		return fmt.Errorf("index creation failed: %w", err)
	}

	store := storage.NewMongoStorage(cols, validation.New(), cfg.Timezone)
	res, err := seed.Run(ctx, store, content, logger)
	if err != nil {
		return err
	}

	logger.Info("seed completed", slog.Int("created", res.Created), slog.Int("skipped", res.Skipped))
	clearContentCache(ctx, cfg, logger)
	return nil
}

// clearContentCache drops cached public lists so the API serves the seeded
// rows on the next request. Failures are logged; the data is already written.
func clearContentCache(ctx context.Context, cfg *config.Config, logger *slog.Logger) {
	rc, err := cache.Open(cfg.RedisURL, cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
	if err != nil {
		logger.Warn("cache clear skipped", slog.String("error", err.Error()))
		return
	}
	if rc == nil {
		return
	}
	defer rc.Close()
	if err := rc.Delete(ctx, cache.ContentKeys...); err != nil {
		logger.Warn("cache clear failed", slog.String("error", err.Error()))
		return
	}
	logger.Info("cache cleared", slog.Int("keys", len(cache.ContentKeys)))
}

func runHashPassword(cmd *cobra.Command, args []string) error {
	line, err := bufio.NewReader(cmd.InOrStdin()).ReadString('\n')
	if err != nil && line == "" {
		return errors.New("no password on stdin")
	}
	hash, err := auth.HashPassword(strings.TrimRight(line, "\r\n"))
	if err != nil {
		if errors.Is(err, auth.ErrPasswordTooShort) {
			return fmt.Errorf("password must be at least %d characters", auth.MinPasswordLength)
		}
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), hash)
	return nil
}

func main() {
	rootCmd.SilenceUsage = true
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
