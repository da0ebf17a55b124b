/*
Copyright © 2024 paul <paul@denknerd.org>
*/

package main

import (
	"errors"
	"fmt"
	"os"
	"reflect"

	"github.com/fatih/structs"
	"github.com/mitchellh/go-homedir"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v2"
)

var (
	// Store the result of binding cobra flags
	Config       string
	ConfigActual string
	Debug        bool

	// Command to run to retrieve the portal auth token, fallback for when
	// AUTH_TOKEN isn't set in the environment
	AuthTokenCmd []string

	LocalStore string
	Region     string

	ParsedConfig YamlConfig
)

// Build the cobra command that handles our command line tool.
var rootCmd = &cobra.Command{
	Use:   "portal-dump",
	Short: "Screenshot a CloudGenix portal into a local documentation tree",
	Long: `
Wish your network documentation updated itself?  This tool logs into the CloudGenix portal with a
headless browser, screenshots the config pages of your sites, elements and interfaces, and writes
a browsable Markdown tree around them.
`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// You can bind cobra and viper in a few locations, but PersistentPreRunE on the root command works well
		if err := initializeConfig(cmd); err != nil {
			return fmt.Errorf("portal-dump: failed to initialise config: %w", err)
		}

		return nil
	},
}

func init() {
	// Define cobra flags, the default value has the lowest (least significant) precedence
	rootCmd.PersistentFlags().StringVar(&Config, "config", "", "config file location (default: ~/.config/portal-dump.yaml, respects PORTAL_DUMP_CONFIG)")
	rootCmd.PersistentFlags().BoolVar(&Debug, "debug", false, "display debug output")
	rootCmd.PersistentFlags().StringSliceVar(&AuthTokenCmd, "auth-token-cmd", []string{}, "shell command to retrieve portal auth token (fallback for AUTH_TOKEN)")
	rootCmd.PersistentFlags().StringVar(&LocalStore, "store", ".", "location to save screenshots and Markdown")
	rootCmd.PersistentFlags().StringVar(&Region, "region", "", "portal region, e.g. REGION in portal.REGION.cloudgenix.com (default: detected from your profile)")
}

func initializeConfig(cmd *cobra.Command) error {
	// An explicitly requested config file must exist; the default one is optional.
	explicit := Config != "" || os.Getenv("PORTAL_DUMP_CONFIG") != ""

	if Config == "" {
		// Did the user provide an ENV?
		envConfig := os.Getenv("PORTAL_DUMP_CONFIG")
		if envConfig != "" {
			Config = envConfig
		} else {
			// As fallback, search for config in home XDG-ish directory
			Config = "~/.config/portal-dump.yaml"
		}
	}
	config, err := homedir.Expand(Config)
	if err != nil {
		return fmt.Errorf("portal-dump: unable to expand homedir: %w", err)
	}
	ConfigActual = config

	if _, err := os.Stat(ConfigActual); errors.Is(err, os.ErrNotExist) {
		if !explicit {
			// no config file, flags and env will have to do
			return nil
		}
		fmt.Printf("Couldn't read config file %s, does it exist?  Override with --config.\n", ConfigActual)
		return fmt.Errorf("portal-dump: specified config file does not exist: %w", err)
	}

	yamlFile, err := os.ReadFile(ConfigActual)
	if err != nil {
		return fmt.Errorf("portal-dump: error reading config file: %w", err)
	}

	// I'd like to bark if a user sets a flag we don't recognise:
	if err := yaml.UnmarshalStrict(yamlFile, &ParsedConfig); err != nil {
		return fmt.Errorf("portal-dump: issue parsing config file: %w", err)
	}

	// Bind the current command's flags to viper
	if err := bindFlags(cmd, ParsedConfig); err != nil {
		return fmt.Errorf("portal-dump: failed to bind flags: %w", err)
	}

	return nil
}

type YamlConfig struct {
	ExtractText  *bool `yaml:"extract-text"`
	SkipTopology *bool `yaml:"skip-topology"`
	WithVCR      *bool `yaml:"with-vcr"`
	Headful      *bool `yaml:"headful"`

	StorePath    string   `yaml:"store"`
	Region       string   `yaml:"region"`
	AuthTokenCmd []string `yaml:"auth-token-cmd"`
}

// Bind each cobra flag to its associated viper configuration (config file and environment variable)
func bindFlags(cmd *cobra.Command, v YamlConfig) error {
	for _, field := range structs.Fields(v) {
		key := field.Tag("yaml")
		if key == "" {
			return fmt.Errorf("portal-dump: could not retrieve struct tag 'yaml'")
		}
		if flag := cmd.Flag(key); flag == nil {
			// hmm... the flag is unknown.  but that can legitimately happen if you're running
			// e.g. `list sites` which has no `extract-text` flag but your YAML file does
			// define that flag...
			continue
		}
		if !cmd.Flags().Changed(key) {
			switch field.Kind() {
			case reflect.Ptr:
				// err, this is crappy, but i know YamlConfig only uses pointers for bools.....
				b, ok := field.Value().(*bool)
				if !ok {
					return fmt.Errorf("portal-dump: found unrecognised field: %+v", field)
				}
				if b != nil {
					cmd.Flags().Set(key, fmt.Sprintf("%v", *b))
				}

			case reflect.String:
				s, ok := field.Value().(string)
				if !ok {
					return fmt.Errorf("portal-dump: found unrecognised field: %+v", field)
				}
				if s != "" {
					cmd.Flags().Set(key, s)
				}

			case reflect.Slice:
				ss, ok := field.Value().([]string)
				if !ok {
					return fmt.Errorf("portal-dump: found unrecognised field: %+v", field)
				}
				for _, s := range ss {
					// yes, repeatedly calling Set() appends to the slice...
					cmd.Flags().Set(key, s)
				}

			default:
				return fmt.Errorf("portal-dump: found unrecognised field: %+v", field)
			}
		}
	}

	return nil
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() error {
	// Flags are only available after (or inside, presumably) the .Execute() thing.
	if err := rootCmd.Execute(); err != nil {
		return fmt.Errorf("portal-dump: execution error: %w", err)
	}

	return nil
}
