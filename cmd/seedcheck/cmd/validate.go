// Package cmd implements CLI commands for the seed validation tool.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"seedcheck/internal/config"
	"seedcheck/internal/schema"
)

// validateCmd represents the validate command.
var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "验证 Schema 文件",
	Long:  "加载配置并编译 autoinstall JSON Schema，检查文件存在且为合法的 draft-7 schema，不执行主机校验。",
	Run:   runValidate,
}

func init() {
	rootCmd.AddCommand(validateCmd)

	validateCmd.Flags().StringVar(&schemaPath, "schema", "", "autoinstall JSON Schema 路径（默认 scripts/ubuntu_autoinstall_schema.json）")
}

// runValidate executes the validate command logic.
func runValidate(cmd *cobra.Command, args []string) {
	cfg, err := config.Load(GetConfigFile())
	if err != nil {
		fmt.Fprintf(os.Stderr, "❌ 加载配置失败: %v\n", err)
		os.Exit(2)
	}
	if cmd.Flags().Changed("schema") {
		cfg.Schema = schemaPath
	}

	if _, err := schema.Load(cfg.Schema); err != nil {
		fmt.Fprintf(os.Stderr, "❌ Schema 验证失败: %v\n", err)
		os.Exit(2)
	}

	fmt.Printf("✅ Schema 验证通过: %s\n", cfg.Schema)
}
