// Package service routes tool calls to the registered providers.
//
// A provider owns a service ID and every tool it exposes is named
// "<service>.<tool>"; Register enforces that. Discover ranks services for
// a free text query by weighted word matches, with the service ID counting
// most and the description least. Execute times each call and counts
// failures by their error_kind.
//
//	registry := service.NewRegistry(metrics, logger)
//	if err := registry.Register(complexmath.NewProvider(engine, logger)); err != nil {
//		return err
//	}
//	hits := registry.Discover("complex square root", 5)
//	result, err := registry.Execute(ctx, "complex.sqrt", params, appCtx)
package service
