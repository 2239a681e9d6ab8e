// Package statistics provides sample containers that can be filled from
// tabular data sources.
//
// Containers:
//   - Sample: univariate values (mean, variance, median, extremes)
//   - BivariateSample: paired values (correlation, covariance)
//   - MultivariateSample: fixed-width rows (covariance matrix)
//
// Loading goes through the DataReader interface, which only needs to
// advance rows, report absent cells and hand out cell values. Rows with an
// absent cell in any requested column are skipped. CSVReader adapts
// encoding/csv input to that interface.
//
// Statistical algorithms come from gonum.org/v1/gonum/stat.
//
// Example Usage:
//
//	reader, err := statistics.NewCSVReader(file, true)
//	if err != nil {
//	    return err
//	}
//	sample := statistics.NewSample()
//	if err := sample.Load(reader, 2); err != nil {
//	    return err
//	}
//	mean, err := sample.Mean()
package statistics
