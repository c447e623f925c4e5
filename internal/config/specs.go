// Copyright 2026 Future Internet Consulting and Development Solutions S.L.
// SPDX-License-Identifier: AGPL-3.0

package config

import (
	"time"
)

// EnvSpec is the basic environment configuration setup needed for the app to start
type EnvSpec struct {
	OtelGRPCEndpoint string `envconfig:"otel_grpc_endpoint"`
	OtelHTTPEndpoint string `envconfig:"otel_http_endpoint"`
	TracingEnabled   bool   `envconfig:"tracing_enabled" default:"true"`

	IdmURL      string `envconfig:"idm_url" required:"true"`
	IdmUser     string `envconfig:"idm_user" required:"true"`
	IdmPassword string `envconfig:"idm_passwd" required:"true"`

	UmbrellaURL   string `envconfig:"umbrella_url" required:"true"`
	UmbrellaToken string `envconfig:"umbrella_token" required:"true"`
	UmbrellaKey   string `envconfig:"umbrella_key" required:"true"`

	BrokerAppID        string `envconfig:"broker_app_id" required:"true"`
	BrokerAdminRole    string `envconfig:"broker_admin_role" default:"admin-role"`
	BrokerConsumerRole string `envconfig:"broker_consumer_role" default:"consumer-role"`

	BAEAppID        string `envconfig:"bae_app_id" required:"true"`
	BAESellerRole   string `envconfig:"bae_seller_role" default:"seller"`
	BAECustomerRole string `envconfig:"bae_customer_role" default:"customer"`
	BAEAdminRole    string `envconfig:"bae_admin_role" default:"admin"`

	TenantHeader string `envconfig:"tenant_header" default:"Fiware-Service"`

	AuthenticationEnabled bool     `envconfig:"authentication_enabled" default:"false"`
	OIDCIssuer            string   `envconfig:"oidc_issuer"`
	JWKSURL               string   `envconfig:"jwks_url"`
	AllowedSubjects       []string `envconfig:"allowed_subjects"`
	RequiredScope         string   `envconfig:"required_scope"`

	LogLevel string `envconfig:"log_level" default:"error"`
	Debug    bool   `envconfig:"debug" default:"false"`

	Port int `envconfig:"port" default:"8080"`

	DSN string `envconfig:"DSN" required:"true"`

	DBMaxConns        int32         `envconfig:"db_max_conns" default:"25"`
	DBMinConns        int32         `envconfig:"db_min_conns" default:"2"`
	DBMaxConnLifetime time.Duration `envconfig:"db_max_conn_lifetime" default:"1h"`
	DBMaxConnIdleTime time.Duration `envconfig:"db_max_conn_idle_time" default:"30m"`
}
