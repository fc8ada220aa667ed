package main

import (
	"os"

	"github.com/balidani/coaster-generator/internal/server"
	"github.com/spf13/cobra"
)

func main() {
	var (
		templatePath string
		outputPath   string
		configPath   string
		reportPath   string
		seed         int64
	)

	rootCmd := &cobra.Command{
		Use:   "coastergen",
		Short: "Procedural roller-coaster track generator for TD6 designs",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			return runGenerate(templatePath, outputPath, configPath, reportPath, seed)
		},
	}
	rootCmd.Flags().StringVar(&templatePath, "template", "template.td6", "template design file to rebuild")
	rootCmd.Flags().StringVar(&outputPath, "output", "output.td6", "path for the generated design")
	rootCmd.Flags().StringVar(&configPath, "config", "", "YAML tuning file overriding the default options")
	rootCmd.Flags().StringVar(&reportPath, "report", "", "write a JSON run report to this path")
	rootCmd.Flags().Int64Var(&seed, "seed", 0, "random seed (0 seeds from the clock)")

	rootCmd.AddCommand(inspectCmd())
	rootCmd.AddCommand(verifyCmd())
	rootCmd.AddCommand(serveCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func inspectCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "inspect [design-path]",
		Short: "Decode a TD6 file and summarize its element lists",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			return runInspect(args[0])
		},
	}
}

func verifyCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "verify [design-path]",
		Short: "Replay a design against the placement rules",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			return runVerify(args[0])
		},
	}
}

func serveCmd() *cobra.Command {
	var port int

	cmd := &cobra.Command{
		Use:   "serve [design-path]",
		Short: "Start the local dev server for inspecting a design",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			srv := server.New(args[0], port)
			return srv.Start()
		},
	}

	cmd.Flags().IntVarP(&port, "port", "p", 3000, "HTTP server port")
	return cmd
}
