package spectrum_test

import (
	"fmt"

	"github.com/cwbudde/algo-siggen/dsp/spectrum"
)

func ExampleFoldedFrequency() {
	for _, bin := range []int{0, 1, 4, 7} {
		fmt.Printf("bin %d: %.0f Hz\n", bin, spectrum.FoldedFrequency(bin, 8, 80))
	}

	// Output:
	// bin 0: 0 Hz
	// bin 1: 10 Hz
	// bin 4: 40 Hz
	// bin 7: 10 Hz
}
