package config

import (
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
	Output string `mapstructure:"output"`
}

// CleanupConfig toggles the export transforms.
type CleanupConfig struct {
	NFKC        bool `mapstructure:"nfkc"`
	SmartQuotes bool `mapstructure:"smart_quotes"`
	TrimFields  bool `mapstructure:"trim_fields"`
	RemoveEmpty bool `mapstructure:"remove_empty"`
	RemoveDupes bool `mapstructure:"remove_dupes"`
	Delimiters  bool `mapstructure:"delimiters"`
}

type Config struct {
	CodePage    string        `mapstructure:"code_page"` // cp932|utf8
	BOM         bool          `mapstructure:"bom"`       // UTF-8 出力に BOM を付ける
	PreviewRows int           `mapstructure:"preview_rows"`
	Log         LogConfig     `mapstructure:"log"`
	Cleanup     CleanupConfig `mapstructure:"cleanup"`
	Timeout     time.Duration `mapstructure:"timeout"`
}

func defaultConfig() Config {
	return Config{
		CodePage:    "utf8",
		PreviewRows: 6,
		Log: LogConfig{
			Level:  "info",
			Format: "text",
			Output: "stdout",
		},
		Cleanup: CleanupConfig{
			SmartQuotes: true,
			TrimFields:  true,
			Delimiters:  true,
		},
		Timeout: 10 * time.Minute,
	}
}

// flagKeys maps config keys to the CLI flag names bound onto them. Flag
// defaults must match defaultConfig so an untouched flag does not clobber
// file or env values.
var flagKeys = map[string]string{
	"cleanup.nfkc":         "nfkc",
	"cleanup.smart_quotes": "smart-quotes",
	"cleanup.trim_fields":  "trim",
	"cleanup.remove_empty": "remove-empty",
	"cleanup.remove_dupes": "dedupe",
	"cleanup.delimiters":   "delimiters",
	"code_page":            "code-page",
	"bom":                  "bom",
}

// Load merges: defaults < file < env < flags
func Load(cfgFile string, flags *pflag.FlagSet) (Config, error) {
	// 1 まずデフォルト値入りの構造体を作る
	c := defaultConfig()

	v := viper.New()
	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	}
	v.SetConfigType("yaml")
	v.SetEnvPrefix("CSVCLEAN")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// キーを登録しないと env だけの値が Unmarshal に乗らない
	v.SetDefault("code_page", c.CodePage)
	v.SetDefault("bom", c.BOM)
	v.SetDefault("preview_rows", c.PreviewRows)
	v.SetDefault("log.level", c.Log.Level)
	v.SetDefault("log.format", c.Log.Format)
	v.SetDefault("log.output", c.Log.Output)
	v.SetDefault("cleanup.nfkc", c.Cleanup.NFKC)
	v.SetDefault("cleanup.smart_quotes", c.Cleanup.SmartQuotes)
	v.SetDefault("cleanup.trim_fields", c.Cleanup.TrimFields)
	v.SetDefault("cleanup.remove_empty", c.Cleanup.RemoveEmpty)
	v.SetDefault("cleanup.remove_dupes", c.Cleanup.RemoveDupes)
	v.SetDefault("cleanup.delimiters", c.Cleanup.Delimiters)
	v.SetDefault("timeout", c.Timeout)

	// 2 設定ファイル・環境変数・フラグで「上書き」する
	_ = v.ReadInConfig()
	_ = v.BindPFlags(flags)
	for key, name := range flagKeys {
		if fl := flags.Lookup(name); fl != nil {
			_ = v.BindPFlag(key, fl)
		}
	}

	if err := v.Unmarshal(&c); err != nil { // ← デフォルト値を保持しつつマージ
		return Config{}, err
	}

	// 3 Level が空なら "info"
	if c.Log.Level == "" {
		c.Log.Level = "info"
	}
	if _, err := logrus.ParseLevel(c.Log.Level); err != nil {
		return Config{}, err
	}
	return c, nil
}
