package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

var freqCmd = &cobra.Command{
	Use:   "freq",
	Short: "Print the ARM and IPG clock frequencies",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		c, done, err := openCCM()
		if err != nil {
			return err
		}
		defer done()
		armHz, ipgHz := c.FrequencyARM()
		fmt.Printf("ARM %d Hz\nIPG %d Hz\n", armHz, ipgHz)
		return nil
	},
}

var setFreqCmd = &cobra.Command{
	Use:   "set-freq <hz>",
	Short: "Retime the ARM core clock",
	Long: "Retime the ARM core clock to approximate the given frequency. The\n" +
		"achieved frequencies are printed; unreachable targets clamp to the\n" +
		"nearest achievable value.",
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		target, err := strconv.ParseUint(args[0], 10, 32)
		if err != nil {
			return fmt.Errorf("couldn't parse frequency '%s': %v", args[0], err)
		}
		c, done, err := openCCM()
		if err != nil {
			return err
		}
		defer done()
		armHz, ipgHz := c.SetFrequencyARM(uint32(target))
		fmt.Printf("ARM %d Hz\nIPG %d Hz\n", armHz, ipgHz)
		return nil
	},
}
