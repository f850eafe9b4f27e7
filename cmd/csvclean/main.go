package main

import (
	"os"

	"github.com/spf13/cobra"
	"github.com/yourorg/csvclean/internal/config"
	"github.com/yourorg/csvclean/internal/csvproc"
	"github.com/yourorg/csvclean/internal/logging"
)

var (
	cfgPath   string
	inputCSV  string
	outputCSV string
	quiet     bool
	verbose   bool

	rootCmd = &cobra.Command{
		Use:   "csvclean",
		Short: "CSV 検証・クリーンアップツール",
	}
	validateCmd = &cobra.Command{
		Use:   "validate",
		Short: "構造チェックと修復案の出力",
		RunE: func(cmd *cobra.Command, args []string) error {
			conf, log, err := setup(cmd)
			if err != nil {
				return err
			}
			return csvproc.Validate(inputCSV, outputCSV, conf, log)
		},
	}
	cleanCmd = &cobra.Command{
		Use:   "clean",
		Short: "クリーンアップして書き出す（検証エラーがあれば中断）",
		RunE: func(cmd *cobra.Command, args []string) error {
			conf, log, err := setup(cmd)
			if err != nil {
				return err
			}
			return csvproc.Clean(inputCSV, outputCSV, conf, log)
		},
	}
	exitOK      = 0
	exitErrExec = 2
)

func setup(cmd *cobra.Command) (config.Config, logging.Logger, error) {
	conf, err := config.Load(cfgPath, cmd.Flags())
	if err != nil {
		return config.Config{}, nil, err
	}
	log := logging.New(conf.Log)
	if quiet {
		log.SetLevel(logging.LevelQuiet)
	} else if verbose {
		log.SetLevel(logging.LevelVerbose)
	}
	return conf, log, nil
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.StringVarP(&cfgPath, "config", "c", "", "設定ファイル (yaml)")
	pf.BoolVarP(&quiet, "quiet", "q", false, "quiet モード (エラーのみ)")
	pf.BoolVarP(&verbose, "verbose", "v", false, "verbose モード")
	pf.String("code-page", "utf8", "入出力コードページ (utf8|cp932)")

	for _, cmd := range []*cobra.Command{validateCmd, cleanCmd} {
		f := cmd.Flags()
		f.StringVarP(&inputCSV, "input", "i", "", "入力 CSV ファイル (必須)")
		f.StringVarP(&outputCSV, "output", "o", "", "出力ファイル (省略時 STDOUT)")
		cmd.MarkFlagRequired("input")
	}

	// クリーンアップのトグル（デフォルトは config と揃える）
	f := cleanCmd.Flags()
	f.Bool("smart-quotes", true, "スマートクォートを直す")
	f.Bool("trim", true, "各フィールドの前後空白を除去")
	f.Bool("remove-empty", false, "空行を削除")
	f.Bool("dedupe", false, "重複行を削除 (先勝ち)")
	f.Bool("delimiters", true, "タブ/セミコロンをカンマに統一")
	f.Bool("nfkc", false, "NFKC 正規化")
	f.Bool("bom", false, "UTF-8 BOM を付けて出力")

	rootCmd.AddCommand(validateCmd, cleanCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(exitErrExec)
	}
	os.Exit(exitOK)
}
