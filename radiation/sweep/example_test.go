package sweep_test

import (
	"fmt"

	"github.com/cwbudde/algo-blackbody/radiation/sweep"
)

func ExampleRun() {
	cfg := sweep.DefaultConfig()
	cfg.TempMin, cfg.TempMax, cfg.TempSteps = 4000, 8000, 3

	res, err := sweep.Run(cfg)
	if err != nil {
		fmt.Println(err)
		return
	}
	for _, row := range res.Rows {
		fmt.Printf("%.0f K: peak %.2e Hz\n", row.Temperature, row.PeakFrequency)
	}
	// Output:
	// 4000 K: peak 2.35e+14 Hz
	// 6000 K: peak 3.53e+14 Hz
	// 8000 K: peak 4.70e+14 Hz
}
