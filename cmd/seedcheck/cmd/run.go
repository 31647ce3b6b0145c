// Package cmd implements CLI commands for the seed validation tool.
package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"seedcheck/internal/config"
	"seedcheck/internal/report"
	"seedcheck/internal/seed"
)

// Command flags
var (
	hostsDir   string // Base hosts directory
	schemaPath string // Path to the autoinstall JSON schema
	failFast   bool   // Stop at the first failing host
)

// runCmd represents the run command.
var runCmd = &cobra.Command{
	Use:   "run",
	Short: "执行种子目录校验",
	Long: `执行完整的种子目录校验流程，包括：
1. 加载 autoinstall JSON Schema（失败则直接退出）
2. 扫描 hosts 目录下的主机子目录（忽略隐藏项和 *.tmp）
3. 逐台主机校验 meta-data 与 user-data
4. 输出逐主机的 [OK]/[FAIL] 报告

退出码: 0 = 全部通过; 1 = 存在校验失败的主机; 2 = 致命错误
（schema 加载失败或未发现主机目录）

示例:
  # 使用默认路径执行校验
  seedcheck run

  # 指定 hosts 目录与 schema 文件
  seedcheck run --hosts-dir cloud-init/v1/hosts --schema scripts/ubuntu_autoinstall_schema.json

  # 遇到第一台失败主机立即停止
  seedcheck run --fail-fast

  # 使用配置文件
  seedcheck run -c config.yaml`,
	Run: runValidation,
}

func init() {
	rootCmd.AddCommand(runCmd)

	// Define command-specific flags
	runCmd.Flags().StringVar(&hostsDir, "hosts-dir", "", "hosts 目录路径（默认 cloud-init/v1/hosts）")
	runCmd.Flags().StringVar(&schemaPath, "schema", "", "autoinstall JSON Schema 路径（默认 scripts/ubuntu_autoinstall_schema.json）")
	runCmd.Flags().BoolVar(&failFast, "fail-fast", false, "遇到第一台失败主机立即停止")
}

// runValidation executes the complete validation workflow.
func runValidation(cmd *cobra.Command, args []string) {
	// Step 1: Load configuration
	configPath := GetConfigFile()
	cfg, err := config.Load(configPath)
	if err != nil {
		tmpLogger := setupLogger("error", "console")
		tmpLogger.Error().Err(err).Str("path", configPath).Msg("failed to load config")
		fmt.Fprintf(os.Stderr, "❌ 加载配置失败: %v\n", err)
		os.Exit(2)
	}

	// Step 2: Apply flag overrides (flags win over config file and env)
	if cmd.Flags().Changed("hosts-dir") {
		cfg.HostsDir = hostsDir
	}
	if cmd.Flags().Changed("schema") {
		cfg.Schema = schemaPath
	}
	if cmd.Flags().Changed("fail-fast") {
		cfg.FailFast = failFast
	}

	// Step 3: Initialize logger with configuration
	// Command line --log-level overrides config file setting
	level := cfg.Logging.Level
	if GetLogLevel() != "info" { // If explicitly set via command line
		level = GetLogLevel()
	}
	logger := setupLogger(level, cfg.Logging.Format)
	logger.Debug().
		Str("config_path", configPath).
		Str("hosts_dir", cfg.HostsDir).
		Str("schema", cfg.Schema).
		Bool("fail_fast", cfg.FailFast).
		Msg("configuration loaded successfully")

	// Step 4: Run the validation pipeline; the report goes to stdout,
	// logs stay on stderr
	runner := seed.NewRunner(
		cfg.HostsDir,
		cfg.Schema,
		report.NewConsole(os.Stdout),
		logger,
		seed.WithFailFast(cfg.FailFast),
	)
	result := runner.Run()

	logger.Debug().
		Int("hosts", len(result.Hosts)).
		Strs("failed", result.FailedHosts()).
		Str("outcome", result.Outcome.String()).
		Msg("validation run finished")

	os.Exit(int(result.Outcome))
}

// setupLogger creates a zerolog logger with the specified level and format.
func setupLogger(level string, format string) zerolog.Logger {
	// Set log level
	logLevel, err := zerolog.ParseLevel(level)
	if err != nil {
		logLevel = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(logLevel)

	// Select output format based on configuration
	var output io.Writer
	if format == "json" {
		// JSON format - structured logging for log aggregation systems
		output = os.Stderr
	} else {
		// Console format - human-readable output for development
		output = zerolog.ConsoleWriter{
			Out:        os.Stderr,
			TimeFormat: "15:04:05",
			NoColor:    false,
		}
	}

	return zerolog.New(output).With().Timestamp().Logger()
}
