package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/imx-rt/ccm"
	"github.com/imx-rt/ccm/mmio"
	"github.com/imx-rt/ccm/sim"
)

var (
	memFile string
	useSim  bool

	rootCmd = &cobra.Command{
		Use:   "ccmctl",
		Short: "Inspect and program the i.MX RT clock control module",
		Long: "ccmctl reads and writes the CCM registers of an i.MX RT 1060-family\n" +
			"processor. It can retime the ARM core clock, query clock root\n" +
			"frequencies and control peripheral clock gates.",
		SilenceUsage: true,
	}
)

func init() {
	rootCmd.PersistentFlags().StringVar(&memFile, "mem", mmio.MEM_FILE, "memory device to map the CCM registers from")
	rootCmd.PersistentFlags().BoolVar(&useSim, "sim", false, "run against an in-memory register file instead of hardware")
	rootCmd.AddCommand(freqCmd, setFreqCmd, gateCmd, rootsCmd)
}

// openCCM returns the CCM handle for the selected backend and a cleanup
// function. ccmctl is a short-lived single-threaded process, so the one
// handle it creates satisfies the driver's single-writer rule.
func openCCM() (*ccm.CCM, func(), error) {
	if useSim {
		return ccm.New(sim.New()), func() {}, nil
	}
	dm, err := mmio.Open(memFile, ccm.CCM_ANALOG_PLL_ARM, ccm.CCM_CBCDR)
	if err != nil {
		return nil, nil, fmt.Errorf("couldn't open register space: %v", err)
	}
	return ccm.New(dm), func() { dm.Close() }, nil
}
