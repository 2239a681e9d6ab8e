// Package logging provides structured logging using uber/zap.
//
// This package offers two modes:
//   - Production: JSON output for machine parsing
//   - Development: Colored console output for human readability
//
// The numerical packages never log; logging happens at the service
// boundary, where a non-convergence is reported at Warn and a rejected
// argument at Debug.
//
// Example Usage:
//
//	logger, err := logging.New(logging.Config{Level: "info"})
//	logger.Info("Server starting", zap.String("port", "8000"))
//	logger.Warn("Series did not converge", zap.Int("limit", 250))
package logging
