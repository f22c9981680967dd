package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"

	"github.com/imx-rt/ccm"
)

var peripherals = map[string]ccm.Peripheral{
	"adc1": ccm.ADC1, "adc2": ccm.ADC2,
	"pwm1": ccm.PWM1, "pwm2": ccm.PWM2, "pwm3": ccm.PWM3, "pwm4": ccm.PWM4,
	"dcdc": ccm.DCDC{}, "dma": ccm.DMA{}, "pit": ccm.PIT{},
	"gpt1": ccm.GPT1, "gpt2": ccm.GPT2,
	"i2c1": ccm.I2C1, "i2c2": ccm.I2C2, "i2c3": ccm.I2C3, "i2c4": ccm.I2C4,
	"uart1": ccm.UART1, "uart2": ccm.UART2, "uart3": ccm.UART3, "uart4": ccm.UART4,
	"uart5": ccm.UART5, "uart6": ccm.UART6, "uart7": ccm.UART7, "uart8": ccm.UART8,
	"spi1": ccm.SPI1, "spi2": ccm.SPI2, "spi3": ccm.SPI3, "spi4": ccm.SPI4,
}

var gates = map[string]ccm.ClockGate{
	"off": ccm.ClockGateOff,
	"run": ccm.ClockGateRunOnly,
	"on":  ccm.ClockGateOn,
}

func peripheralNames() string {
	names := maps.Keys(peripherals)
	slices.Sort(names)
	return strings.Join(names, ", ")
}

var gateCmd = &cobra.Command{
	Use:   "gate <peripheral> [off|run|on]",
	Short: "Query or set a peripheral clock gate",
	Args:  cobra.RangeArgs(1, 2),
	RunE: func(cmd *cobra.Command, args []string) error {
		p, ok := peripherals[strings.ToLower(args[0])]
		if !ok {
			return fmt.Errorf("unknown peripheral '%s', want one of: %s", args[0], peripheralNames())
		}
		c, done, err := openCCM()
		if err != nil {
			return err
		}
		defer done()

		if len(args) == 2 {
			g, ok := gates[strings.ToLower(args[1])]
			if !ok {
				return fmt.Errorf("unknown gate setting '%s', want off, run or on", args[1])
			}
			c.SetClockGate(p, g)
		}

		g, _ := c.ClockGate(p)
		fmt.Printf("%s %s\n", strings.ToLower(args[0]), g)
		return nil
	},
}
