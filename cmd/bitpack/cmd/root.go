package cmd

import (
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"github.com/xssnick/bitbuf/frame"
)

var (
	Version = "0.0.0"
	Commit  = ""
)

// Config holds settings merged from flags, BITPACK_* environment and config file.
type Config struct {
	ConfigFile string `mapstructure:"config"`
	Verbose    bool   `mapstructure:"verbose"`

	Format  string `mapstructure:"format"`
	Seed    string `mapstructure:"seed"`
	Summary bool   `mapstructure:"summary"`

	Frame bool   `mapstructure:"frame"`
	Pub   string `mapstructure:"pub"`
}

func newRootCmd() *cobra.Command {
	v := viper.New()

	rootCmd := &cobra.Command{
		Use:   "bitpack",
		Short: "Pack and unpack fields which are not aligned to bytes",
		Long: `bitpack writes a list of value:length fields into a contiguous bit stream,
most significant bit first, and reads such streams back into a field table.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return initConfig(v)
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.String("config", "", "Path to configuration file (yaml, toml or json)")
	flags.Bool("verbose", false, "Log diagnostics of rejected frames")
	bindFlags(v, flags)

	rootCmd.AddCommand(newPackCmd(v), newUnpackCmd(v), newKeygenCmd(), newVersionCmd())
	return rootCmd
}

// Execute runs the root command, exits with code 1 on failure.
func Execute() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func initConfig(v *viper.Viper) error {
	v.SetEnvPrefix("bitpack")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if file := v.GetString("config"); file != "" {
		v.SetConfigFile(file)
		if err := v.ReadInConfig(); err != nil {
			return fmt.Errorf("failed to read config file: %w", err)
		}
	}

	if v.GetBool("verbose") {
		frame.Logger = func(args ...any) {
			log.Println(args...)
		}
	}
	return nil
}

// bindFlags makes flag values visible to viper, set flags override env and config file.
func bindFlags(v *viper.Viper, flags *pflag.FlagSet) {
	if err := v.BindPFlags(flags); err != nil {
		panic(err)
	}
}

func loadConfig(v *viper.Viper) (*Config, error) {
	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	return cfg, nil
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version of the binary",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			out := "bitpack " + Version
			if Commit != "" {
				out += " (" + Commit + ")"
			}
			fmt.Fprintln(cmd.OutOrStdout(), out)
		},
	}
}
