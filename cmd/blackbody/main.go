// Command blackbody evaluates Planck's law from the command line.
//
// Usage:
//
//	blackbody <command> [flags]
//
// Examples:
//
//	blackbody radiance --freq 5e14 --scale 1e4 --temp 5800
//	blackbody power --radius 6.957e8 --temp 5772
//	blackbody peak --temp 5800 --format json
//	blackbody sweep --plots out --pdf sweep.pdf
//	blackbody fourier data1.csv --terms 5,10,100 --plots out
//	blackbody words words.txt --top 10
package main

import "github.com/cwbudde/algo-blackbody/internal/cli"

func main() {
	cli.Execute()
}
