// Command modcore runs the demonstration sequences for the modcore
// packages: the arithmetic/calculator walkthrough, the string/array
// helpers, and the config/logger/circular core.
package main

import (
	"fmt"
	"os"

	"github.com/alecthomas/kong"

	"github.com/katalvlaran/modcore/appconf"
	"github.com/katalvlaran/modcore/calc"
	"github.com/katalvlaran/modcore/circular"
	"github.com/katalvlaran/modcore/logging"
	"github.com/katalvlaran/modcore/mathops"
	"github.com/katalvlaran/modcore/textutil"
)

// CLI is the root command configuration with subcommands.
type CLI struct {
	Debug bool    `kong:"help='Enable debug records from the utility packages.',default='true'"`
	Math  MathCmd `kong:"cmd,help='Run the arithmetic and calculator walkthrough.'"`
	Text  TextCmd `kong:"cmd,help='Run the string and array helper walkthrough.'"`
	Core  CoreCmd `kong:"cmd,help='Run the config/logger/circular walkthrough.'"`
}

// MathCmd exercises mathops and calc without an active logger, so the
// DEBUG records inside Add/Subtract stay silent.
type MathCmd struct{}

// Run executes the math walkthrough.
func (c *MathCmd) Run(_ *CLI) error {
	fmt.Println("=== Test Math Utils ===")
	fmt.Printf("add(10, 20) = %d\n", mathops.Add(10, 20))
	fmt.Printf("multiply(7, 8) = %d\n", mathops.Multiply(7, 8))
	pow, err := mathops.Power(2, 8)
	if err != nil {
		return err
	}
	fmt.Printf("power(2, 8) = %d\n", pow)

	fmt.Println()
	fmt.Println("=== Test Calculator ===")
	fmt.Printf("rectangle_area(5, 10) = %d\n", calc.RectangleArea(5, 10))
	fmt.Printf("rectangle_perimeter(5, 10) = %d\n", calc.RectanglePerimeter(5, 10))
	fmt.Printf("sum_range(10) = %d\n", calc.SumRange(10))

	fmt.Println()
	fmt.Println("=== Test Complete ===")

	return nil
}

// TextCmd exercises the textutil helpers.
type TextCmd struct{}

// Run executes the text walkthrough.
func (c *TextCmd) Run(_ *CLI) error {
	s := "hello, modcore"
	fmt.Printf("length(%q) = %d\n", s, textutil.Length(s))
	fmt.Printf("compare(%q, %q) = %d\n", "abc", "abd", textutil.Compare("abc", "abd"))

	values := []int64{5, 2, 8, 1, 9, 3}
	fmt.Printf("values = %s\n", textutil.FormatArray(values))
	max, err := textutil.ArrayMax(values)
	if err != nil {
		return err
	}
	min, err := textutil.ArrayMin(values)
	if err != nil {
		return err
	}
	fmt.Printf("max = %d, min = %d\n", max, min)

	return nil
}

// CoreCmd walks the config/logger lifecycle and the circular records:
// init, create and process A and B, link them into a cycle, tear down.
type CoreCmd struct{}

// Run executes the core walkthrough.
func (c *CoreCmd) Run(cli *CLI) error {
	cfg := appconf.New(appconf.WithDebug(cli.Debug))
	fmt.Printf("%s v%d\n", cfg.Name(), cfg.Version())
	logging.Init(cfg)

	arena := circular.NewArena()
	a := arena.NewA(5)
	b := arena.NewB(5)
	arena.ProcessA(a)
	arena.ProcessB(b)
	if err := arena.LinkAToB(a, b); err != nil {
		return err
	}
	if err := arena.LinkBToA(b, a); err != nil {
		return err
	}

	va, err := arena.ValueA(a)
	if err != nil {
		return err
	}
	vb, err := arena.ValueB(b)
	if err != nil {
		return err
	}
	fmt.Printf("a = %d, b = %d\n", va, vb)

	arena.DestroyA(a)
	arena.DestroyB(b)
	logging.Shutdown()

	return nil
}

func main() {
	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Name("modcore"),
		kong.Description("Demonstration sequences for the modcore fixture packages."),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
		}),
	)

	if err := ctx.Run(&cli); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
