package core_test

import (
	"errors"
	"fmt"

	"github.com/cwbudde/algo-siggen/dsp/core"
)

func ExampleApplyProcessorOptions() {
	cfg := core.ApplyProcessorOptions(
		core.WithBlockSize(256),
		core.WithWorkers(2),
	)

	fmt.Printf("blockSize=%d workers=%d\n", cfg.BlockSize, cfg.Workers)

	// Output:
	// blockSize=256 workers=2
}

func ExampleValidateBand() {
	err := core.ValidateBand(300, 100)
	fmt.Println(errors.Is(err, core.ErrInvalidArgument))

	// Output:
	// true
}
