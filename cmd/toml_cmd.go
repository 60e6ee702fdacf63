package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/dzjyyds666/tomlkit/parse/toml"
	"github.com/dzjyyds666/tomlkit/pkg"
)

type TomlParams struct {
	Find   string `json:"find"`   // 查找的key
	Input  string `json:"input"`  // 输入文件路径
	Output string `json:"output"` // 输出文件地址
}

var params *TomlParams

var tomlCmd = &cobra.Command{
	Use:   "toml",
	Short: "toml parse tools",
}

var tomlGetCmd = &cobra.Command{
	Use:   "get",
	Short: "resolve a dotted key path against a TOML file",
	Run:   tomlGetRun,
}

var tomlFmtCmd = &cobra.Command{
	Use:   "fmt",
	Short: "parse a TOML file and rewrite it in canonical form",
	Run:   tomlFmtRun,
}

var tomlWatchCmd = &cobra.Command{
	Use:   "watch",
	Short: "watch a TOML file and re-parse it on change",
	Run:   tomlWatchRun,
}

func init() {
	params = &TomlParams{}
	tomlGetCmd.Flags().StringVarP(&params.Find, "find", "f", "", "dotted key path to resolve")
	tomlGetCmd.Flags().StringVarP(&params.Input, "input", "i", "", "input file path")
	tomlFmtCmd.Flags().StringVarP(&params.Input, "input", "i", "", "input file path")
	tomlFmtCmd.Flags().StringVarP(&params.Output, "output", "o", "", "output file path (default: stdout)")
	tomlWatchCmd.Flags().StringVarP(&params.Input, "input", "i", "", "input file path")

	tomlCmd.AddCommand(tomlGetCmd, tomlFmtCmd, tomlWatchCmd)
}

func requireInputFile(input string) bool {
	if len(input) == 0 {
		fmt.Println("no input file path")
		return false
	}
	exist, err := pkg.CheckFileExist(input)
	if err != nil {
		fmt.Println("check file exist error:", err)
		return false
	}
	if !exist {
		fmt.Println("input file not exist")
		return false
	}
	return true
}

func tomlGetRun(cmd *cobra.Command, args []string) {
	if !requireInputFile(params.Input) {
		return
	}
	if params.Find == "" {
		fmt.Println("no key path given (-f)")
		return
	}
	result := toml.ParseFile(params.Input)
	if result.Err() {
		fmt.Println("parse error:", result.Error())
		return
	}
	v := result.View().At(params.Find)
	if v.IsNull() {
		fmt.Println("key not found:", params.Find)
		return
	}
	fmt.Println(toml.WriteString(v.Node()))
}

func tomlFmtRun(cmd *cobra.Command, args []string) {
	if !requireInputFile(params.Input) {
		return
	}
	result := toml.ParseFile(params.Input)
	if result.Err() {
		fmt.Println("parse error:", result.Error())
		return
	}
	out := toml.WriteString(result.Table())
	if params.Output == "" {
		fmt.Print(out)
		return
	}
	if err := os.WriteFile(params.Output, []byte(out), 0o644); err != nil {
		fmt.Println("write output error:", err)
	}
}

func tomlWatchRun(cmd *cobra.Command, args []string) {
	if !requireInputFile(params.Input) {
		return
	}
	w, err := pkg.NewWatcher(params.Input, 200*time.Millisecond)
	if err != nil {
		fmt.Println("watcher error:", err)
		return
	}
	defer w.Close()

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	fmt.Println("watching", params.Input, "- ctrl-c to stop")
	w.Run(ctx, func(root *toml.Table, perr *toml.ParseError) {
		if perr != nil {
			fmt.Println("reload failed:", perr)
			return
		}
		fmt.Println("reloaded", params.Input, "-", root.Len(), "top-level keys")
	})
}
