// Package environment names the deployment environments (development,
// staging, production) and parses them from configuration values.
//
//	env := environment.Parse(os.Getenv("APP_ENV")) // "prod" -> Production
//	if env.IsProduction() {
//	    // ...
//	}
//
// The logger package uses it to pick per-environment defaults.
package environment
