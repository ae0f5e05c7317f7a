// Package cli carries the collaborator layer shared by the detab
// commands: environment binding, stderr logging, line reading, and tree
// decoding. The conversion logic itself lives in the root package.
package cli

import (
	"bufio"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

// Logger returns the command logger writing to stderr. Output rows go to
// stdout, so diagnostics must never share the stream.
func Logger(verbose bool) zerolog.Logger {
	level := zerolog.WarnLevel
	if verbose {
		level = zerolog.DebugLevel
	}
	w := zerolog.ConsoleWriter{Out: os.Stderr}
	return zerolog.New(w).Level(level).With().Timestamp().Logger()
}

// Bind loads a local .env if present and exposes cmd's flags through
// viper, so PREFIX_FLAG_NAME environment variables override flag
// defaults (explicit flags still win).
func Bind(cmd *cobra.Command, prefix string) (*viper.Viper, error) {
	_ = godotenv.Load()
	v := viper.New()
	v.SetEnvPrefix(prefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	if err := v.BindPFlags(cmd.Flags()); err != nil {
		return nil, err
	}
	return v, nil
}

// Lines reads r to EOF and returns its lines without terminators.
func Lines(r io.Reader) ([]string, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 4*1024*1024)
	var lines []string
	for sc.Scan() {
		lines = append(lines, sc.Text())
	}
	return lines, sc.Err()
}

// DecodeTree parses one JSON or YAML document from r into a generic
// tree. JSON numbers keep their source text. Empty input decodes to a
// nil tree, not an error.
func DecodeTree(r io.Reader, format string) (any, error) {
	switch format {
	case "", "json":
		dec := json.NewDecoder(r)
		dec.UseNumber()
		var root any
		if err := dec.Decode(&root); err != nil {
			if errors.Is(err, io.EOF) {
				return nil, nil
			}
			return nil, err
		}
		return root, nil
	case "yaml", "yml":
		data, err := io.ReadAll(r)
		if err != nil {
			return nil, err
		}
		var root any
		if err := yaml.Unmarshal(data, &root); err != nil {
			return nil, err
		}
		return root, nil
	default:
		return nil, fmt.Errorf("unsupported input format %q", format)
	}
}
