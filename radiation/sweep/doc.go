// Package sweep evaluates blackbody spectra over a grid of temperatures and
// compares three ways of integrating them.
//
// For every temperature the radiance curve is sampled on a log-spaced
// frequency grid and integrated with the trapezoid rule and Simpson's rule.
// The same temperature is integrated over the full band with adaptive
// quadrature, and the frequency of peak emission is located.
//
// # Usage
//
//	res, err := sweep.Run(sweep.DefaultConfig())
//	if err != nil {
//	    return err
//	}
//	for _, row := range res.Rows {
//	    fmt.Println(row.Temperature, row.Quad, row.PeakFrequency)
//	}
//
// The sampled curves are kept in [Result.Curves] for plotting.
package sweep
