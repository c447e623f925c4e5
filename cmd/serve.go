// Copyright 2026 Future Internet Consulting and Development Solutions S.L.
// SPDX-License-Identifier: AGPL-3.0

package cmd

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/kelseyhightower/envconfig"
	"github.com/spf13/cobra"

	"github.com/opplafy/tenant-manager/internal/config"
	"github.com/opplafy/tenant-manager/internal/db"
	"github.com/opplafy/tenant-manager/internal/keyrock"
	"github.com/opplafy/tenant-manager/internal/logging"
	"github.com/opplafy/tenant-manager/internal/monitoring/prometheus"
	"github.com/opplafy/tenant-manager/internal/storage"
	"github.com/opplafy/tenant-manager/internal/tracing"
	"github.com/opplafy/tenant-manager/internal/umbrella"
	"github.com/opplafy/tenant-manager/pkg/authentication"
	"github.com/opplafy/tenant-manager/pkg/tenant"
	"github.com/opplafy/tenant-manager/pkg/users"
	"github.com/opplafy/tenant-manager/pkg/web"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "serve starts the web server",
	Long:  `Launch the web application, list of environment variables is available in the readme`,
	Run: func(cmd *cobra.Command, args []string) {
		if err := serve(); err != nil {
			fmt.Fprintf(os.Stderr, "Fatal error: %v\n", err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
}

func serve() error {
	specs := new(config.EnvSpec)
	if err := envconfig.Process("", specs); err != nil {
		panic(fmt.Errorf("issues with environment sourcing: %s", err))
	}

	logger := logging.NewLogger(specs.LogLevel)
	logger.Debugf("env vars: %v", specs)
	defer logger.Sync()

	monitor := prometheus.NewMonitor("tenant-manager", logger)
	tracer := tracing.NewTracer(tracing.NewConfig(specs.TracingEnabled, specs.OtelGRPCEndpoint, specs.OtelHTTPEndpoint, logger))

	dbConfig := db.Config{
		DSN:             specs.DSN,
		MaxConns:        specs.DBMaxConns,
		MinConns:        specs.DBMinConns,
		MaxConnLifetime: specs.DBMaxConnLifetime,
		MaxConnIdleTime: specs.DBMaxConnIdleTime,
		TracingEnabled:  specs.TracingEnabled,
	}
	dbClient, err := db.NewDBClient(dbConfig, tracer, monitor, logger)
	if err != nil {
		return fmt.Errorf("failed to create database client: %v", err)
	}
	defer dbClient.Close()
	s := storage.NewStorage(dbClient, tracer, monitor, logger)

	idmClient := keyrock.NewClient(
		specs.IdmURL,
		specs.IdmUser,
		specs.IdmPassword,
		tracer,
		monitor,
		logger,
	)

	policyClient := umbrella.NewClient(
		specs.UmbrellaURL,
		specs.UmbrellaToken,
		specs.UmbrellaKey,
		tracer,
		monitor,
		logger,
	)

	var verifier authentication.TokenVerifierInterface
	if specs.AuthenticationEnabled {
		verifier, err = authentication.NewJWTAuthenticator(
			context.Background(),
			specs.OIDCIssuer,
			specs.JWKSURL,
			specs.AllowedSubjects,
			specs.RequiredScope,
			tracer,
			monitor,
			logger,
		)
		if err != nil {
			return fmt.Errorf("failed to set up authentication: %v", err)
		}
	} else {
		verifier = authentication.NewNoopVerifier()
		logger.Info("Using noop token verifier")
	}
	authMiddleware := authentication.NewMiddleware(verifier, tracer, monitor, logger)

	tenantService := tenant.NewService(
		s,
		idmClient,
		policyClient,
		tenant.Config{
			BrokerAppID:        specs.BrokerAppID,
			BrokerAdminRole:    specs.BrokerAdminRole,
			BrokerConsumerRole: specs.BrokerConsumerRole,
			BAEAppID:           specs.BAEAppID,
			BAESellerRole:      specs.BAESellerRole,
			BAECustomerRole:    specs.BAECustomerRole,
			BAEAdminRole:       specs.BAEAdminRole,
			TenantHeader:       specs.TenantHeader,
		},
		tracer,
		monitor,
		logger,
	)
	tenantAPI := tenant.NewAPI(tenantService, tracer, monitor, logger)

	usersService := users.NewService(idmClient, tracer, monitor, logger)
	usersAPI := users.NewAPI(usersService, tracer, monitor, logger)

	router := web.NewRouter(
		tenantAPI,
		usersAPI,
		authMiddleware,
		dbClient,
		tracer,
		monitor,
		logger,
	)
	logger.Infof("Starting HTTP server on port %v", specs.Port)

	srv := &http.Server{
		Addr:         fmt.Sprintf("0.0.0.0:%v", specs.Port),
		WriteTimeout: time.Second * 60,
		ReadTimeout:  time.Second * 15,
		IdleTimeout:  time.Second * 60,
		Handler:      router,
	}

	var serverError error
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	go func() {
		logger.Security().SystemStartup()
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverError = fmt.Errorf("server error: %w", err)
			c <- os.Interrupt
		}
	}()

	<-c

	// Create a deadline to wait for.
	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	logger.Security().SystemShutdown()
	if err := srv.Shutdown(ctx); err != nil {
		serverError = fmt.Errorf("server shutdown error: %w", err)
	}

	return serverError
}
