package cmd

import (
	"context"
	"fmt"
	"lucky_spinner/internal/app"
	"lucky_spinner/internal/config"
	"lucky_spinner/internal/service"
	"lucky_spinner/pkg/logger"
	"os"
	"os/signal"
	"syscall"

	jsoniter "github.com/json-iterator/go"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

const (
	outputTable = "table"
	outputJSON  = "json"

	// без LOG_LEVEL команды CLI пишут в stderr только предупреждения
	cliLogLevel = "warn"
)

var (
	cfgFile      string
	envFile      string
	driver       string
	dsn          string
	outputFormat string
)

// rootCmd базовая команда
var rootCmd = &cobra.Command{
	Use:           "spinner",
	Short:         "Lucky spinner: a wheel that picks one option at a time",
	Long:          `spinner keeps a list of options, spins a wheel to pick one at random, removes the winner from the next draw and keeps a history of picks.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute запускает CLI; ошибка уже напечатана
func Execute() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	err := rootCmd.ExecuteContext(ctx)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
	}
	return err
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "config.yaml", "wheel config file (yaml)")
	rootCmd.PersistentFlags().StringVar(&envFile, "env-file", ".env", "file with environment variables")
	rootCmd.PersistentFlags().StringVar(&driver, "driver", "", "storage driver: sqlite, postgres, redis or memory (env STORAGE_DRIVER)")
	rootCmd.PersistentFlags().StringVar(&dsn, "dsn", "", "storage location: sqlite file, postgres dsn or redis addr (env STORAGE_DSN)")
	rootCmd.PersistentFlags().StringVar(&outputFormat, "output", outputTable, "output format: table or json")

	_ = viper.BindPFlag("driver", rootCmd.PersistentFlags().Lookup("driver"))
	_ = viper.BindPFlag("dsn", rootCmd.PersistentFlags().Lookup("dsn"))
}

// initConfig .env читается до viper, чтобы переменные из файла были видны через AutomaticEnv
func initConfig() {
	if err := config.Load(envFile); err != nil && envFile != ".env" {
		fmt.Fprintf(os.Stderr, "Warning: failed to load %s: %v\n", envFile, err)
	}

	viper.AutomaticEnv()
	_ = viper.BindEnv("driver", "STORAGE_DRIVER")
	_ = viper.BindEnv("dsn", "STORAGE_DSN")
}

// IsJSONOutput запрошен вывод в JSON
func IsJSONOutput() bool {
	return outputFormat == outputJSON
}

// providerOptions настройки ServiceProvider из флагов и окружения
func providerOptions(quiet bool) app.Options {
	opts := app.Options{
		ConfigPath: cfgFile,
		Driver:     viper.GetString("driver"),
		DSN:        viper.GetString("dsn"),
	}
	if quiet && os.Getenv("LOG_LEVEL") == "" {
		opts.Logger = logger.New(logger.Config{Level: cliLogLevel, App: "spinner"})
	}
	return opts
}

// withService собирает сервис на время одной команды и закрывает хранилище после.
// ServiceProvider паникует на ошибках конфигурации, здесь это превращается в ошибку.
func withService(cmd *cobra.Command, opts app.Options, fn func(ctx context.Context, serv service.SpinnerService) error) (err error) {
	sp := app.NewServiceProvider(opts)
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%v", r)
		}
		if closeErr := sp.Close(); closeErr != nil && err == nil {
			err = closeErr
		}
	}()

	ctx := cmd.Context()
	return fn(ctx, sp.SpinnerService(ctx))
}

func printJSON(v any) error {
	output, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}
	fmt.Println(string(output))
	return nil
}
