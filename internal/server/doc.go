// Package server assembles the numerics HTTP server from configuration.
//
// NewServer builds one cmath.Engine with the configured series cap and
// shares it between the complex provider and the direct /complex/:fn
// route, registers the providers, and installs the middleware in order:
// recovery, request IDs, request logging, metrics, CORS and, when enabled,
// rate limiting. Prometheus collectors live on a private registry served
// at /metrics.
//
//	srv, err := server.NewServer(cfg)
//	if err != nil {
//		return err
//	}
//	go srv.Run()
//	defer srv.Close()
package server
