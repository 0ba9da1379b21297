package cmd

import (
	"fmt"
	"strconv"

	"github.com/arcanaland/frenchdeck/internal/logs"
	"github.com/arcanaland/frenchdeck/internal/vector"
	"github.com/spf13/cobra"
)

// vectorCmd represents the vector command group
var vectorCmd = &cobra.Command{
	Use:   "vector",
	Short: "Arithmetic on 2D vectors",
	Long: `Commands for adding, scaling and measuring 2D vectors.
Vectors are written x,y. Put negative values after -- so they are not read as flags:

  frenchdeck vector add -- -1,2 3,4`,
}

var vectorAddCmd = &cobra.Command{
	Use:   "add [x,y] [x,y]",
	Short: "Add two vectors",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := vector.Parse(args[0])
		if err != nil {
			return err
		}
		b, err := vector.Parse(args[1])
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), a.Add(b))
		return nil
	},
}

var vectorAbsCmd = &cobra.Command{
	Use:   "abs [x,y]",
	Short: "Print the magnitude of a vector",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		v, err := vector.Parse(args[0])
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), formatFloat(v.Abs()))
		return nil
	},
}

var vectorScaleCmd = &cobra.Command{
	Use:   "scale [x,y] [n]",
	Short: "Multiply a vector by a scalar",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		v, err := vector.Parse(args[0])
		if err != nil {
			return err
		}
		n, err := strconv.ParseFloat(args[1], 64)
		if err != nil {
			return fmt.Errorf("invalid scalar %q: %v", args[1], err)
		}
		fmt.Fprintln(cmd.OutOrStdout(), v.Mul(n))
		return nil
	},
}

var vectorBoolCmd = &cobra.Command{
	Use:   "bool [x,y]",
	Short: "Report whether a vector is non-zero",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		v, err := vector.Parse(args[0])
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), v.Bool())
		return nil
	},
}

var vectorSampleCmd = &cobra.Command{
	Use:   "sample",
	Short: "Walk through the vector operations",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		out := cmd.OutOrStdout()
		v1, v2 := vector.New(2, 4), vector.New(2, 1)
		v := vector.New(3, 4)

		logs.Debug("sample vectors %v %v %v", v1, v2, v)

		fmt.Fprintf(out, "%v + %v = %v\n", v1, v2, v1.Add(v2))
		fmt.Fprintf(out, "abs(%v) = %s\n", v, formatFloat(v.Abs()))
		fmt.Fprintf(out, "%v * 3 = %v\n", v, v.Mul(3))
		fmt.Fprintf(out, "abs(%v * 3) = %s\n", v, formatFloat(v.Mul(3).Abs()))
		fmt.Fprintf(out, "bool(%v) = %v\n", vector.Vector{}, vector.Vector{}.Bool())
	},
}

func init() {
	RootCmd.AddCommand(vectorCmd)
	vectorCmd.AddCommand(vectorAddCmd)
	vectorCmd.AddCommand(vectorAbsCmd)
	vectorCmd.AddCommand(vectorScaleCmd)
	vectorCmd.AddCommand(vectorBoolCmd)
	vectorCmd.AddCommand(vectorSampleCmd)
}

func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'g', -1, 64)
}
