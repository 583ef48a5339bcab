// Package config loads and validates quickserve configuration.
//
// # Configuration Precedence
//
// Values are loaded in this order (later sources override earlier ones):
//
//  1. Default values
//  2. Configuration file(s), merged left-to-right
//  3. Environment variables (QUICKSERVE_ prefix), including those read from
//     .env.local and .env
//  4. CLI flags
//
// # Usage
//
//	cfg, err := config.Load([]string{"config.yaml"}, cmd.Flags())
//	if err != nil {
//	    log.Fatal(err)
//	}
//	ctx = config.WithContext(ctx, cfg)
//
// # Environment Variables
//
// Every key maps to a QUICKSERVE_ variable with dots replaced by underscores:
//   - server.port → QUICKSERVE_SERVER_PORT (also PORT)
//   - env → QUICKSERVE_ENV (also APP_ENV)
//   - cors.allowed_origins → QUICKSERVE_CORS_ALLOWED_ORIGINS (comma separated)
//
// # Development Mode
//
// Any env other than production (or prod) is development mode, in which
// error responses carry a diagnostic trace.
package config
