// Command server serves the complex function engine and the sample
// statistics tools over HTTP.
//
// Settings come from the environment (see package config) and a few flags
// override them:
//
//	server -port 8000 -series-max 500
//	server -dev            # console logs at debug level
//	server -rate-global    # one rate limit bucket for every client
//
// An invalid environment is a startup error. SIGINT or SIGTERM drains
// in-flight requests before exiting.
package main
