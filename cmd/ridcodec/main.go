package main

import (
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/FranGuam/remote-id-encoder-decoder/internal/app"
	"github.com/FranGuam/remote-id-encoder-decoder/internal/remoteid"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	config := app.DefaultConfig()

	rootCmd := &cobra.Command{
		Use:   "ridcodec",
		Short: "Remote ID message encoder/decoder",
		Long: `Encoder and decoder for the 25-byte Remote ID broadcast messages
(Basic ID, Location/Vector, Self-ID, System, Operator ID) and the
Message Pack that bundles them.

Example usage:
  ridcodec encode --record drone.yaml --type location
  ridcodec encode --record drone.yaml --pack basic-id,location,system
  ridcodec decode 02 12 44 52 4F 4E 45 30 30 31 00 ...
  ridcodec scan --hex capture.txt`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return loadConfig(cmd, &config)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if config.ShowVersion {
				app.ShowVersion(cmd.OutOrStdout())
				return nil
			}
			return cmd.Help()
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVarP(&config.ConfigFile, "config", "c", "", "TOML configuration file")
	flags.StringVar(&config.LogLevel, app.KeyLogLevel, app.DefaultLogLevel, "Log level (debug, info, warn, error)")
	flags.BoolVarP(&config.Verbose, "verbose", "v", false, "Verbose logging")
	flags.StringVarP(&config.Format, app.KeyFormat, "o", app.DefaultFormat, "Output format (text, yaml, hex)")
	flags.BoolVar(&config.Color, app.KeyColor, app.DefaultColor, "Color decoded output")
	rootCmd.Flags().BoolVar(&config.ShowVersion, "version", false, "Show version information")

	rootCmd.AddCommand(
		newEncodeCmd(&config),
		newDecodeCmd(&config),
		newScanCmd(&config),
	)
	return rootCmd
}

// loadConfig merges the config file under any flags given on the command line
func loadConfig(cmd *cobra.Command, config *app.Config) error {
	if config.ConfigFile != "" {
		explicit := func(key string) bool { return cmd.Flags().Changed(key) }
		if err := config.MergeFile(config.ConfigFile, explicit); err != nil {
			return err
		}
	}
	return config.Validate()
}

func newApplication(cmd *cobra.Command, config *app.Config) *app.Application {
	application := app.NewApplication(*config)
	application.SetOutput(cmd.OutOrStdout())
	application.Logger().SetOutput(cmd.ErrOrStderr())
	return application
}

func newEncodeCmd(config *app.Config) *cobra.Command {
	var (
		recordPath string
		typeName   string
	)

	cmd := &cobra.Command{
		Use:   "encode",
		Short: "Encode a YAML record into a message or Message Pack",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			application := newApplication(cmd, config)
			if typeName == "" {
				return application.EncodePack(recordPath)
			}

			t, err := remoteid.ParseMessageType(typeName)
			if err != nil {
				return err
			}
			if t == remoteid.MessageTypePack {
				return application.EncodePack(recordPath)
			}
			return application.Encode(recordPath, t)
		},
	}

	cmd.Flags().StringVarP(&recordPath, "record", "r", "", "YAML record file")
	cmd.Flags().StringVarP(&typeName, "type", "t", "", "Message type to encode (default: a Pack of --pack)")
	cmd.Flags().StringSliceVar(&config.PackTypes, app.KeyPack, config.PackTypes, "Message types bundled into a Pack")
	_ = cmd.MarkFlagRequired("record")
	cmd.MarkFlagsMutuallyExclusive("type", app.KeyPack)

	return cmd
}

func newDecodeCmd(config *app.Config) *cobra.Command {
	return &cobra.Command{
		Use:   "decode <hex>...",
		Short: "Decode a message or Message Pack given as hex",
		Long: `Decode a message or Message Pack given as hex. Bytes may be split over
several arguments and may carry a 0x prefix.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return newApplication(cmd, config).Decode(strings.Join(args, " "))
		},
	}
}

func newScanCmd(config *app.Config) *cobra.Command {
	var hexInput bool

	cmd := &cobra.Command{
		Use:   "scan [file|-]",
		Short: "Decode every message in a byte stream",
		Long: `Decode every message and Message Pack in a stream of concatenated
frames, read from a file or standard input. Garbage between frames is
skipped. With --hex the input is hex text, one or more frames per line,
with '#' starting a comment.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var input io.Reader = cmd.InOrStdin()
			if len(args) == 1 && args[0] != "-" {
				f, err := os.Open(args[0])
				if err != nil {
					return fmt.Errorf("failed to open input: %w", err)
				}
				defer f.Close()
				input = f
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			return newApplication(cmd, config).Scan(ctx, input, hexInput)
		},
	}

	cmd.Flags().BoolVar(&hexInput, "hex", false, "Input is hex text instead of raw bytes")
	cmd.Flags().StringVarP(&config.LogDir, app.KeyLogDir, "l", "", "Also append frames to daily CSV logs in this directory")
	cmd.Flags().BoolVarP(&config.LogRotateUTC, app.KeyUTC, "u", app.DefaultLogUTC, "Use UTC for log rotation")
	cmd.Flags().IntVar(&config.KeepDays, app.KeyKeepDays, 0, "Remove frame logs older than this many days (0 keeps all)")
	return cmd
}
