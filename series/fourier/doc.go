// Package fourier loads tables of sampled Fourier components and analyses
// them.
//
// A table is a headerless comma-separated file. The first column is time
// and every further column is one Fourier component sampled at that time.
// [Table.PartialSum] reconstructs the signal from its first n terms, and
// [Spectrum] gives the one-sided magnitude spectrum of any sampled signal.
//
// # Usage
//
//	tbl, err := fourier.LoadFile("data1.csv")
//	if err != nil {
//	    return err
//	}
//	sum, _ := tbl.PartialSum(10)
//	fs, _ := tbl.SampleRate()
//	spec, _ := fourier.Spectrum(sum, fs)
//	f0, _ := spec.Peak()
package fourier
