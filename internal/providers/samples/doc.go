// Package samples provides the "samples" service: descriptive statistics,
// CSV loading and correlation over the statistics containers.
package samples
