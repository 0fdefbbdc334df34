package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/parley-sh/parley/pkg/config"
	"github.com/parley-sh/parley/pkg/headless"
	"github.com/parley-sh/parley/pkg/logger"
	tuichat "github.com/parley-sh/parley/pkg/tui/chat"
)

var cfgFile string

var rootCmd = &cobra.Command{
	Use:   "parley",
	Short: "Terminal client for a conversational assistant",
	Long:  `Chat with a conversational assistant over websocket, with live reasoning updates and web search results rendered in the terminal.`,
	Run: func(cmd *cobra.Command, args []string) {
		// Save transient values before refreshing config
		promptValue := viper.GetString("prompt")
		headlessMode := viper.GetBool("headless")

		// Refresh config (this will clear and restore transient values)
		refreshConfig(promptValue, headlessMode)

		if err := config.Load(); err != nil {
			fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
			os.Exit(1)
		}
		if err := logger.Init(); err != nil {
			fmt.Fprintf(os.Stderr, "Error initializing logger: %v\n", err)
			os.Exit(1)
		}
		defer logger.Close()

		cfg := config.Get()

		if headlessMode {
			runHeadless(cfg, promptValue)
		} else {
			if err := tuichat.StartApp(cfg); err != nil {
				fmt.Printf("Error: %v\n", err)
				os.Exit(1)
			}
		}
	},
}

func runHeadless(cfg *config.Config, prompt string) {
	if prompt == "" {
		fmt.Fprintln(os.Stderr, "Error: headless mode requires --prompt")
		os.Exit(1)
	}

	if err := headless.RunHeadless(cfg, prompt); err != nil {
		fmt.Fprintf(os.Stderr, "Error running headless mode: %v\n", err)
		os.Exit(1)
	}
}

func refreshConfig(promptValue string, headlessMode bool) {
	// Clear transient flags that shouldn't be persisted
	viper.Set("prompt", "")
	viper.Set("headless", false)

	// Ensure config directory exists
	dirFromCfgFile := filepath.Dir(cfgFile)
	if _, err := os.Stat(dirFromCfgFile); os.IsNotExist(err) {
		os.Mkdir(dirFromCfgFile, 0755)
	}

	// Write config without transient values
	if err := viper.WriteConfigAs(cfgFile); err != nil {
		fmt.Printf("Error writing config: %v\n", err)
	}

	// Restore transient values for use in this session
	viper.Set("prompt", promptValue)
	viper.Set("headless", headlessMode)
}

func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", ".parley/settings.yaml", "config file (default is .parley/settings.yaml)")

	rootCmd.PersistentFlags().StringP("log-level", "l", "info", "log level")
	viper.BindPFlag("logging.level", rootCmd.PersistentFlags().Lookup("log-level"))

	rootCmd.PersistentFlags().StringP("prompt", "p", "", "execute a prompt directly without entering TUI")
	viper.BindPFlag("prompt", rootCmd.PersistentFlags().Lookup("prompt"))

	rootCmd.PersistentFlags().BoolP("headless", "H", false, "run without TUI (requires --prompt)")
	viper.BindPFlag("headless", rootCmd.PersistentFlags().Lookup("headless"))

	rootCmd.PersistentFlags().BoolP("search", "s", false, "enable web search for submitted prompts")
	viper.BindPFlag("search", rootCmd.PersistentFlags().Lookup("search"))

	rootCmd.PersistentFlags().String("server", "", "websocket server url")
	viper.BindPFlag("server.url", rootCmd.PersistentFlags().Lookup("server"))

	rootCmd.PersistentFlags().StringP("user", "u", "", "user identifier sent with each request")
	viper.BindPFlag("user", rootCmd.PersistentFlags().Lookup("user"))

	rootCmd.PersistentFlags().String("session", "", "session identifier (defaults to a fresh uuid per run)")
	viper.BindPFlag("session", rootCmd.PersistentFlags().Lookup("session"))

	viper.SetDefault("server.url", "ws://localhost:8000/ws")
	viper.SetDefault("server.handshake_timeout", "10s")
	viper.SetDefault("server.ping_interval", "30s")

	viper.SetDefault("user", "local")
	viper.SetDefault("search", false)

	viper.SetDefault("logging.log_file", "./.parley/parley.log")
	viper.SetDefault("logging.preserve", true)
	viper.SetDefault("logging.level", "info")
}

func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.AddConfigPath("./.parley")
		viper.SetConfigType("yaml")
		viper.SetConfigName("settings")
	}

	viper.SetEnvPrefix("PARLEY")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Println("Using config file:", viper.ConfigFileUsed())
	}
}
