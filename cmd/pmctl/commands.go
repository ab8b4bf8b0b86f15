package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"property-manager-backend/internal/config"
	"property-manager-backend/internal/database"
	apperrors "property-manager-backend/internal/errors"
	"property-manager-backend/internal/logger"
	"property-manager-backend/internal/seed"
	"property-manager-backend/internal/service"
	"property-manager-backend/internal/validation"

	"github.com/spf13/cobra"
	"gorm.io/gorm"
)

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "pmctl",
		Short:         "Property manager operator tool",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	rootCmd.PersistentFlags().String("sqlite", "", "use a local sqlite file instead of the configured database")

	rootCmd.AddCommand(
		migrateCmd(),
		seedCmd(),
		validateCmd(),
	)
	return rootCmd
}

func migrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Create or update the database schema",
		RunE: func(cmd *cobra.Command, args []string) error {
			db, err := openDB(cmd, false)
			if err != nil {
				return err
			}
			defer database.Close(db)

			if err := database.Migrate(db); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Schema is up to date.")
			return nil
		},
	}
}

func seedCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Load YAML fixtures through the entity services",
		RunE: func(cmd *cobra.Command, args []string) error {
			file, _ := cmd.Flags().GetString("file")

			fixtures, err := seed.ParseFile(file)
			if err != nil {
				return err
			}

			db, err := openDB(cmd, true)
			if err != nil {
				return err
			}
			defer database.Close(db)

			res, err := seed.NewLoader(service.NewServices(db)).Load(cmd.Context(), fixtures)
			if res != nil {
				printCounts(cmd.OutOrStdout(), "Created", res.Created)
				printCounts(cmd.OutOrStdout(), "Skipped", res.Skipped)
			}
			return err
		},
	}
	cmd.Flags().StringP("file", "f", "fixtures.yaml", "fixture file")
	return cmd
}

func validateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Check a JSON request body against the field rules without touching the database",
		RunE: func(cmd *cobra.Command, args []string) error {
			entity, _ := cmd.Flags().GetString("entity")
			op, _ := cmd.Flags().GetString("op")
			file, _ := cmd.Flags().GetString("file")

			schema, ok := validation.Lookup(entity, op)
			if !ok {
				return fmt.Errorf("unknown schema %s.%s, known: %s", entity, op, strings.Join(validation.Names(), ", "))
			}

			input, err := readBody(cmd.InOrStdin(), file)
			if err != nil {
				return err
			}

			record, err := validation.New(nil).Validate(schema, input)
			if err != nil {
				var verr *apperrors.ValidationError
				if errors.As(err, &verr) {
					return errors.New(verr.Message)
				}
				return err
			}

			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(record)
		},
	}
	cmd.Flags().StringP("entity", "e", "", "entity name: property, tenant, expense, payment, financial")
	cmd.Flags().StringP("op", "o", "create", "operation: create, update, status")
	cmd.Flags().StringP("file", "f", "-", "JSON body file, - for stdin")
	_ = cmd.MarkFlagRequired("entity")
	return cmd
}

// openDB connects to the configured database, or to --sqlite when given
func openDB(cmd *cobra.Command, migrate bool) (*gorm.DB, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	logger.Setup(cfg.LogLevel)

	dsn := cfg.DatabaseURL
	if path, _ := cmd.Flags().GetString("sqlite"); path != "" {
		dsn = "sqlite:" + path
	}

	opts := database.OptionsFromConfig(cfg)
	opts.AutoMigrate = migrate
	return database.Initialize(dsn, opts)
}

func readBody(stdin io.Reader, file string) (map[string]interface{}, error) {
	r := stdin
	if file != "-" {
		f, err := os.Open(file)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		r = f
	}

	dec := json.NewDecoder(r)
	dec.UseNumber()
	var body map[string]interface{}
	if err := dec.Decode(&body); err != nil || body == nil {
		return nil, errors.New("body must be a JSON object")
	}
	return body, nil
}

func printCounts(w io.Writer, label string, counts map[string]int) {
	if len(counts) == 0 {
		return
	}
	names := make([]string, 0, len(counts))
	for name := range counts {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		fmt.Fprintf(w, "%s %d %s\n", label, counts[name], name)
	}
}
