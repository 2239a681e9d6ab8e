// Package types provides shared data structures for the numerics service.
//
// Core Types:
//   - Service: Service provider definition
//   - Tool: one callable operation of a service
//   - Context: Execution context for operations
//   - Result: Standard operation result
//
// Request Types:
//   - ExecuteRequest: Service tool execution
//   - EvaluateRequest: Direct complex function evaluation
//   - ComplexValue: {"re", "im"} wire form of a complex number
//
// Floats:
//   - Float: float64 that reads and writes NaN and ±Inf as "NaN", "+Inf", "-Inf"
//   - JSONFloat: the same encoding for values placed in Result.Data
//
// Tools report numerical failures in the Result rather than as errors:
//
//	return types.Failed(types.KindDomain, "log of zero"), nil
package types
