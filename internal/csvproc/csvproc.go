// Package csvproc wires the csvtext core and the cleanup transforms to
// file input and output: decoding, the export gate, line-ending and BOM
// handling.
package csvproc

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/yourorg/csvclean/internal/cleanup"
	"github.com/yourorg/csvclean/internal/config"
	"github.com/yourorg/csvclean/internal/csvtext"
	"github.com/yourorg/csvclean/internal/logging"
	"golang.org/x/text/encoding/japanese"
	"golang.org/x/text/transform"
)

const utf8BOM = "\uFEFF"

// Validate reads inFile, runs a full validation pass and logs stats, a
// bounded preview and every issue found. When outFile is non-empty the
// repaired text is written there; the repair is informational and does not
// clear the issues. Returns an error when the document failed the CSV
// format gate.
func Validate(inFile, outFile string, conf config.Config, log logging.Logger) error {
	text, err := readInput(inFile, conf)
	if err != nil {
		return err
	}

	if st := csvtext.ComputeStats(text); st != nil {
		log.Infof("%d rows, %d columns", st.Rows, st.Columns)
	}
	for _, row := range csvtext.ComputePreview(text, conf.PreviewRows) {
		log.Debugf("preview: %s", strings.Join(row, " | "))
	}

	res := csvtext.ValidateDocument(text)
	for _, issue := range res.Issues {
		log.Warnf("line %d [%s]: %s", issue.Line, issue.Kind, issue.Message)
	}
	if len(res.Issues) == 0 {
		log.Info("no issues found")
	}

	if outFile != "" {
		name := outputName(outFile)
		if err := writeOutput(name, res.RepairedText, conf); err != nil {
			return err
		}
		log.Infof("repaired text written to %s", name)
	}

	if res.IsNotCSV {
		return fmt.Errorf("%s does not look like CSV", inFile)
	}
	return nil
}

// Clean runs the export pipeline: validate, apply the enabled cleanup
// transforms in fixed order, force \r\n line endings and write the result.
// Export is blocked while any validation issue exists, regardless of how
// fixable it is; repaired text is only reachable through Validate.
func Clean(inFile, outFile string, conf config.Config, log logging.Logger) error {
	text, err := readInput(inFile, conf)
	if err != nil {
		return err
	}

	res := csvtext.ValidateDocument(text)
	if n := len(res.Issues); n > 0 {
		return fmt.Errorf("validation found %d issue(s), fix them before exporting", n)
	}

	out := cleanup.Clean(text, cleanupOptions(conf.Cleanup))
	out = forceCRLF(out)

	if outFile == "" {
		// 出力先省略時は STDOUT
		return writeOutput("", out, conf)
	}
	name := outputName(outFile)
	if err := writeOutput(name, out, conf); err != nil {
		return err
	}
	log.Infof("exported %s", name)
	return nil
}

func cleanupOptions(c config.CleanupConfig) cleanup.Options {
	return cleanup.Options{
		NFKC:        c.NFKC,
		SmartQuotes: c.SmartQuotes,
		TrimFields:  c.TrimFields,
		RemoveEmpty: c.RemoveEmpty,
		RemoveDupes: c.RemoveDupes,
		Delimiters:  c.Delimiters,
	}
}

// readInput loads the whole file as UTF-8 text with any byte-order mark
// stripped. With code_page cp932 the bytes are decoded from Shift_JIS
// first.
func readInput(inFile string, conf config.Config) (string, error) {
	in, err := os.Open(inFile)
	if err != nil {
		return "", err
	}
	defer in.Close()

	var reader io.Reader = in
	if strings.EqualFold(conf.CodePage, "cp932") {
		reader = transform.NewReader(in, japanese.ShiftJIS.NewDecoder())
	}
	data, err := io.ReadAll(reader)
	if err != nil {
		return "", err
	}
	return strings.TrimPrefix(string(data), utf8BOM), nil
}

// writeOutput writes text to outFile, or to STDOUT when outFile is empty.
// With code_page cp932 the text is encoded to Shift_JIS; otherwise a UTF-8
// BOM is prefixed when configured.
func writeOutput(outFile, text string, conf config.Config) error {
	if strings.EqualFold(conf.CodePage, "cp932") {
		encoded, _, err := transform.String(japanese.ShiftJIS.NewEncoder(), text)
		if err != nil {
			return err
		}
		text = encoded
	} else if conf.BOM {
		text = utf8BOM + text
	}

	if outFile == "" {
		_, err := io.WriteString(os.Stdout, text)
		return err
	}
	return os.WriteFile(outFile, []byte(text), 0o644)
}

// outputName sanitizes the file-name part of path, keeping the directory.
func outputName(path string) string {
	dir, base := filepath.Split(path)
	return filepath.Join(dir, SafeFilename(base))
}

var illegalFilenameChars = strings.NewReplacer(
	`\`, "_", "/", "_", ":", "_", "*", "_", "?", "_",
	`"`, "_", "<", "_", ">", "_", "|", "_",
)

// SafeFilename strips trailing dots and spaces, replaces characters that
// are illegal in file names with underscores, and falls back to
// "export.csv" when nothing usable remains.
func SafeFilename(name string) string {
	name = illegalFilenameChars.Replace(strings.TrimSpace(name))
	name = strings.TrimRight(name, ". ")
	if name == "" {
		return "export.csv"
	}
	return name
}

// forceCRLF rewrites every line ending to \r\n.
func forceCRLF(text string) string {
	return strings.Join(csvtext.SplitLines(text), "\r\n")
}
