package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/imx-rt/ccm"
)

var rootsCmd = &cobra.Command{
	Use:   "roots",
	Short: "Print the peripheral clock root frequencies",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		c, done, err := openCCM()
		if err != nil {
			return err
		}
		defer done()

		src := "ipg"
		if c.PerClockSelection() == ccm.PerClockSourceOscillator {
			src = "oscillator"
		}
		fmt.Printf("perclk %d Hz (%s)\n", c.PerClockFrequency(), src)
		fmt.Printf("i2c    %d Hz\n", c.I2CClockFrequency())
		fmt.Printf("uart   %d Hz\n", c.UARTClockFrequency())
		fmt.Printf("spi    %d Hz\n", c.SPIClockFrequency())
		return nil
	},
}
