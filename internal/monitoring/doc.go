/*
Package monitoring collects Prometheus metrics for the numerics server.

Every collector is registered on the prometheus.Registerer passed to
NewMetrics, so tests can use a private registry and read values back with
testutil.

HTTP traffic is recorded by Middleware under the matched route template,
with unmatched requests sharing one label. Tool calls are timed with
StartTool; a failed call also counts its failure kind (nonconvergence,
domain, invalid_params) so a tally of numerical failures is available
from Snapshot without scraping:

	done := metrics.StartTool("complex", "complex.sqrt")
	result, err := provider.Execute(ctx, toolID, params, appCtx)
	done(monitoring.ToolFailure, types.KindNonconvergence)
*/
package monitoring
