// Command skycat is a command-line client over the core astronomical
// packages: apparent positions, rise/transit/set times, conjunctions,
// satellite passes, and lunar phases. It is glue only — every
// computation it prints comes from the library packages, not from code
// in this tree.
package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	cfgFile string
	logger  zerolog.Logger
)

var rootCmd = &cobra.Command{
	Use:   "skycat",
	Short: "Astronomical position and event computations",
	Long: `skycat drives the core ephemeris, coordinate transform, and
event-finder packages from the command line: apparent positions,
rise/transit/set times, conjunctions, satellite passes, and lunar
phases.`,
	SilenceUsage:      true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error { return initConfig() },
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.StringVar(&cfgFile, "config", "", "config file (default $HOME/.skycat.yaml)")
	flags.String("de-file", "", "path to a JPL DE binary ephemeris file")
	flags.String("htm-dir", "", "directory of HTM region CSV files")
	flags.Float64("lat", 0.0, "observer geodetic latitude, degrees north")
	flags.Float64("lon", 0.0, "observer geodetic longitude, degrees east")
	flags.Float64("alt", 0.0, "observer height above the ellipsoid, km")
	flags.String("time", "", "instant, RFC3339 (default: now)")
	flags.Bool("parallax", true, "apply star parallax")
	flags.Bool("proper-motion", true, "apply star proper motion")
	flags.Bool("aberration", true, "apply annual aberration")
	flags.Bool("light-time", true, "apply light-time correction")
	flags.String("log-level", "info", "zerolog level: debug, info, warn, error")

	for _, name := range []string{
		"de-file", "htm-dir", "lat", "lon", "alt", "time",
		"parallax", "proper-motion", "aberration", "light-time", "log-level",
	} {
		if err := viper.BindPFlag(name, flags.Lookup(name)); err != nil {
			panic(err)
		}
	}

	rootCmd.AddCommand(positionCmd, risesetCmd, conjunctionCmd, passCmd, phaseCmd)
}

// initConfig loads viper's config file (if any) and environment
// overrides, then builds the process-wide logger at the requested level.
// Runs once per invocation, in PersistentPreRunE rather than
// cobra.OnInitialize, so flag values bound moments ago are already live.
func initConfig() error {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName(".skycat")
		viper.SetConfigType("yaml")
		if home, err := os.UserHomeDir(); err == nil {
			viper.AddConfigPath(home)
		}
	}
	viper.SetEnvPrefix("skycat")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok && cfgFile != "" {
			return errors.Wrap(err, "skycat: reading config file")
		}
	}

	level, err := zerolog.ParseLevel(strings.ToLower(viper.GetString("log-level")))
	if err != nil {
		level = zerolog.InfoLevel
	}
	logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: "15:04:05"}).
		Level(level).
		With().Timestamp().Logger()
	return nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
