package main

import (
	"context"
	"fmt"
	"os"
	"regexp"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/collagendirect/portal/internal/config"
	"github.com/collagendirect/portal/internal/domain/catalog"
	"github.com/collagendirect/portal/internal/domain/identity"
	"github.com/collagendirect/portal/internal/domain/orders"
	"github.com/collagendirect/portal/internal/platform/db"
	"github.com/collagendirect/portal/internal/platform/ident"
	"github.com/collagendirect/portal/internal/platform/sandbox"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "portal",
		Short: "CollagenDirect ordering portal",
	}

	rootCmd.AddCommand(migrateCmd())
	rootCmd.AddCommand(seedCmd())
	rootCmd.AddCommand(smokeCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func newLogger(cfg *config.Config) zerolog.Logger {
	logger := zerolog.New(os.Stdout).With().Timestamp().Logger()
	if cfg.IsDev() {
		logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stdout}).With().Timestamp().Logger()
	}
	if level, err := zerolog.ParseLevel(cfg.LogLevel); err == nil {
		logger = logger.Level(level)
	}
	return logger
}

func loadConfig() (*config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func migrateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Run database migrations",
	}

	upCmd := &cobra.Command{
		Use:   "up",
		Short: "Apply pending migrations",
		RunE: func(cmd *cobra.Command, args []string) error {
			schema, _ := cmd.Flags().GetString("schema")
			dir, _ := cmd.Flags().GetString("dir")

			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			if schema == "" {
				schema = cfg.PortalSchema
			}

			ctx := context.Background()
			pool, err := db.NewPool(ctx, cfg.DatabaseURL, schema, cfg.DBMaxConns, cfg.DBMinConns)
			if err != nil {
				return err
			}
			defer pool.Close()

			if err := db.CreateSchema(ctx, pool, schema); err != nil {
				return err
			}

			migrator := db.NewMigrator(pool, dir)
			fmt.Printf("Running migrations on schema: %s\n", schema)

			count, err := migrator.Up(ctx, schema)
			if err != nil {
				return fmt.Errorf("migration failed: %w", err)
			}

			fmt.Printf("Applied %d migration(s) successfully.\n", count)
			return nil
		},
	}
	upCmd.Flags().String("schema", "", "Target schema (defaults to PORTAL_SCHEMA)")
	upCmd.Flags().String("dir", "./migrations", "Path to migrations directory")
	cmd.AddCommand(upCmd)

	statusCmd := &cobra.Command{
		Use:   "status",
		Short: "Show migration status",
		RunE: func(cmd *cobra.Command, args []string) error {
			schema, _ := cmd.Flags().GetString("schema")
			dir, _ := cmd.Flags().GetString("dir")

			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			if schema == "" {
				schema = cfg.PortalSchema
			}

			ctx := context.Background()
			pool, err := db.NewPool(ctx, cfg.DatabaseURL, schema, cfg.DBMaxConns, cfg.DBMinConns)
			if err != nil {
				return err
			}
			defer pool.Close()

			migrator := db.NewMigrator(pool, dir)
			statuses, err := migrator.Status(ctx, schema)
			if err != nil {
				return fmt.Errorf("failed to get migration status: %w", err)
			}

			fmt.Printf("Migration status for schema: %s\n", schema)
			fmt.Printf("%-10s %-40s %-10s %s\n", "VERSION", "NAME", "STATUS", "APPLIED AT")
			fmt.Println("---------- ---------------------------------------- ---------- --------------------")
			for _, s := range statuses {
				status := "pending"
				appliedAt := ""
				if s.Applied {
					status = "applied"
					if s.AppliedAt != nil {
						appliedAt = s.AppliedAt.Format("2006-01-02 15:04:05")
					}
				}
				fmt.Printf("%-10d %-40s %-10s %s\n", s.Version, s.Name, status, appliedAt)
			}
			return nil
		},
	}
	statusCmd.Flags().String("schema", "", "Target schema (defaults to PORTAL_SCHEMA)")
	statusCmd.Flags().String("dir", "./migrations", "Path to migrations directory")
	cmd.AddCommand(statusCmd)

	return cmd
}

func seedCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Insert demo data (catalog, clinicians, patients)",
		RunE: func(cmd *cobra.Command, args []string) error {
			clinicians, _ := cmd.Flags().GetInt("clinicians")
			patients, _ := cmd.Flags().GetInt("patients")
			seed, _ := cmd.Flags().GetInt64("seed")

			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			logger := newLogger(cfg)

			ctx := context.Background()
			pool, err := db.NewPool(ctx, cfg.DatabaseURL, cfg.PortalSchema, cfg.DBMaxConns, cfg.DBMinConns)
			if err != nil {
				return err
			}
			defer pool.Close()

			ids := ident.NewRandom()
			identitySvc := identity.NewService(identity.NewClinicianRepoPG(pool), identity.NewPatientRepoPG(pool), ids)
			catalogSvc := catalog.NewService(catalog.NewProductRepoPG(pool))

			seedCfg := sandbox.DefaultSeedConfig()
			if clinicians > 0 {
				seedCfg.ClinicianCount = clinicians
			}
			if patients > 0 {
				seedCfg.PatientsPerClinician = patients
			}
			seedCfg.Seed = seed

			result, err := sandbox.NewSeeder(identitySvc, catalogSvc, seedCfg).Seed(ctx)
			if err != nil {
				return fmt.Errorf("seed failed: %w", err)
			}

			logger.Info().
				Int("products", result.Products).
				Int("clinicians", result.Clinicians).
				Int("patients", result.Patients).
				Dur("duration", result.Duration).
				Msg("seed complete")
			return nil
		},
	}
	cmd.Flags().Int("clinicians", 0, "Number of clinicians to create")
	cmd.Flags().Int("patients", 0, "Patients per clinician")
	cmd.Flags().Int64("seed", 0, "RNG seed for reproducible data (0 = time-based)")
	return cmd
}

func smokeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "smoke",
		Short: "Run the end-to-end order flow against a disposable schema",
		RunE: func(cmd *cobra.Command, args []string) error {
			keep, _ := cmd.Flags().GetBool("keep-schema")
			dir, _ := cmd.Flags().GetString("dir")

			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			logger := newLogger(cfg)

			if err := runSmoke(context.Background(), cfg, logger, dir, keep); err != nil {
				logger.Error().Err(err).Msg("SMOKE TEST FAILED")
				os.Exit(1)
			}
			return nil
		},
	}
	cmd.Flags().Bool("keep-schema", false, "Keep the smoke schema for inspection instead of dropping it")
	cmd.Flags().String("dir", "./migrations", "Path to migrations directory")
	return cmd
}

var mrnPattern = regexp.MustCompile(`^` + ident.MRNPrefix + `-\d{8}-[0-9A-F]{4}$`)

// runSmoke exercises the whole order flow against a freshly provisioned
// schema: migrate, insert fixtures, register a patient, submit a self-pay
// order, and verify both rows landed. The schema is dropped afterwards so
// repeated runs never interfere with each other or with real data.
func runSmoke(ctx context.Context, cfg *config.Config, logger zerolog.Logger, migrationsDir string, keep bool) error {
	ids := ident.NewRandom()
	schema := "smoke_" + ids.Token()[:8]
	logger.Info().Str("schema", schema).Msg("provisioning smoke schema")

	pool, err := db.NewPool(ctx, cfg.DatabaseURL, schema, cfg.DBMaxConns, cfg.DBMinConns)
	if err != nil {
		return fmt.Errorf("connect: %w", err)
	}
	defer pool.Close()

	if err := db.Health(ctx, pool); err != nil {
		return fmt.Errorf("database health check: %w", err)
	}
	stats := db.GetPoolStats(pool)
	logger.Debug().Int32("total_conns", stats.TotalConns).Int32("max_conns", stats.MaxConns).Msg("pool ready")

	if err := db.CreateSchema(ctx, pool, schema); err != nil {
		return err
	}
	if !keep {
		defer func() {
			if err := db.DropSchema(context.Background(), pool, schema); err != nil {
				logger.Warn().Err(err).Str("schema", schema).Msg("failed to drop smoke schema")
			}
		}()
	}

	if _, err := db.NewMigrator(pool, migrationsDir).Up(ctx, schema); err != nil {
		return fmt.Errorf("migrate: %w", err)
	}

	clinicianRepo := identity.NewClinicianRepoPG(pool)
	patientRepo := identity.NewPatientRepoPG(pool)
	productRepo := catalog.NewProductRepoPG(pool)
	orderRepo := orders.NewOrderRepoPG(pool)

	identitySvc := identity.NewService(clinicianRepo, patientRepo, ids)
	catalogSvc := catalog.NewService(productRepo)
	orderSvc := orders.NewService(orderRepo, productRepo, clinicianRepo, patientRepo, ids,
		func(ctx context.Context, fn func(context.Context) error) error {
			return db.InTx(ctx, pool, fn)
		})

	// Fixtures
	clinician := &identity.Clinician{
		FirstName: strPtr("Jane"),
		LastName:  strPtr("Smith"),
		Email:     strPtr("dr.smith@example.com"),
		NPI:       strPtr("1234567890"),
		SignName:  strPtr("Dr. Jane Smith"),
		SignTitle: strPtr("MD"),
	}
	if err := identitySvc.CreateClinician(ctx, clinician); err != nil {
		return fmt.Errorf("create clinician: %w", err)
	}
	product := &catalog.Product{
		ID:         1,
		Name:       "Test Product",
		PriceAdmin: floatPtr(199.99),
		CPTCode:    strPtr("Q4205"),
		Active:     true,
	}
	if err := catalogSvc.Create(ctx, product); err != nil {
		return fmt.Errorf("create product: %w", err)
	}

	// Register a patient
	patient, err := identitySvc.RegisterPatient(ctx, clinician.ID, identity.Demographics{
		FirstName: "John",
		LastName:  "Doe",
		DOB:       "1960-05-15",
		Phone:     "(555) 201-3344",
		Address:   "123 Main St",
		City:      "Dallas",
		State:     "TX",
		Zip:       "75201",
	})
	if err != nil {
		return fmt.Errorf("register patient: %w", err)
	}
	if !mrnPattern.MatchString(patient.MRN) {
		return fmt.Errorf("generated MRN %q does not match expected format", patient.MRN)
	}

	stored, err := identitySvc.GetPatientForClinician(ctx, patient.ID, clinician.ID)
	if err != nil {
		return fmt.Errorf("verify patient row: %w", err)
	}
	fmt.Printf("PATIENT OK  id=%s mrn=%s name=%s\n", stored.ID, stored.MRN, stored.FullName())

	// Submit a self-pay order
	order, err := orderSvc.Submit(ctx, orders.SubmitInput{
		PatientID:     "pat-missing-check",
		ClinicianID:   clinician.ID,
		ProductID:     1,
		PaymentType:   "self_pay",
		WoundLocation: "left heel",
	})
	if err == nil {
		return fmt.Errorf("expected invalid patient reference to be rejected, got order %s", order.ID)
	}

	order, err = orderSvc.Submit(ctx, orders.SubmitInput{
		PatientID:       patient.ID,
		ClinicianID:     clinician.ID,
		ProductID:       1,
		PaymentType:     "self_pay",
		DeliveryMode:    "patient",
		WoundLocation:   "left heel",
		ICD10Primary:    "L97.429",
		ShippingName:    stored.FullName(),
		ShippingAddress: "123 Main St",
		ShippingCity:    "Dallas",
		ShippingState:   "TX",
		ShippingZip:     "75201",
	})
	if err != nil {
		return fmt.Errorf("submit order: %w", err)
	}

	got, err := orderSvc.Get(ctx, order.ID)
	if err != nil {
		return fmt.Errorf("verify order row: %w", err)
	}
	switch {
	case got.Status != orders.StatusSubmitted:
		return fmt.Errorf("order status = %q, want %q", got.Status, orders.StatusSubmitted)
	case got.Product != "Test Product":
		return fmt.Errorf("product snapshot = %q, want Test Product", got.Product)
	case got.ProductPrice == nil || *got.ProductPrice != 199.99:
		return fmt.Errorf("price snapshot = %v, want 199.99", got.ProductPrice)
	case got.ShipmentsRemaining != 0:
		return fmt.Errorf("shipments_remaining = %d, want 0", got.ShipmentsRemaining)
	}
	fmt.Printf("ORDER OK    id=%s product=%q price=%.2f status=%s\n",
		got.ID, got.Product, *got.ProductPrice, got.Status)

	logger.Info().
		Str("schema", schema).
		Time("finished_at", time.Now().UTC()).
		Msg("smoke test passed")
	return nil
}

func strPtr(s string) *string     { return &s }
func floatPtr(f float64) *float64 { return &f }
