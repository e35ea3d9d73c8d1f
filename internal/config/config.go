package config

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/spf13/viper"

	"github.com/burrowpick/burrow/internal/app"
	"github.com/burrowpick/burrow/internal/tree"
)

// Config captures runtime configuration for the application.
type Config struct {
	App     app.Config
	Logging Logging
	Flags   map[string]string
	Args    []string
}

type Logging struct {
	FilePath string
	Trace    bool
}

const (
	envConfigFile       = "BURROW_CONFIG"
	envFile             = "BURROW_FILE"
	envFormat           = "BURROW_FORMAT"
	envSelected         = "BURROW_SELECTED"
	envPlaceholder      = "BURROW_PLACEHOLDER"
	envIDKey            = "BURROW_ID_KEY"
	envLabelKey         = "BURROW_LABEL_KEY"
	envChildrenKey      = "BURROW_CHILDREN_KEY"
	envWidth            = "BURROW_WIDTH"
	envHeight           = "BURROW_HEIGHT"
	envShowFooter       = "BURROW_FOOTER"
	envBreadcrumb       = "BURROW_BREADCRUMB"
	envSelectLevel      = "BURROW_SELECT_LEVEL"
	envSelectLevelLabel = "BURROW_SELECT_LEVEL_LABEL"
	envWatch            = "BURROW_WATCH"
	envVerbose          = "BURROW_VERBOSE"
	envTrace            = "BURROW_TRACE"
	envLogFile          = "BURROW_LOG_FILE"
)

// fileDefaults holds the optional config-file layer. Flags and environment
// variables override these.
type fileDefaults struct {
	Format           string
	Placeholder      string
	IDKey            string
	LabelKey         string
	ChildrenKey      string
	Width            int
	Height           int
	Footer           bool
	Breadcrumb       bool
	SelectLevel      bool
	SelectLevelLabel string
	Watch            bool
	Trace            bool
	LogFile          string
}

// Load parses configuration from CLI arguments and environment variables.
func Load() (Config, error) {
	return LoadArgs(os.Args[1:], os.Environ())
}

// LoadArgs allows tests to supply specific args/environment.
func LoadArgs(args []string, environ []string) (Config, error) {
	env := parseEnv(environ)
	defaults := loadFileDefaults(env)

	fs := flag.NewFlagSet("burrow", flag.ContinueOnError)
	fs.SetOutput(new(strings.Builder))

	file := fs.String("file", envOrDefault(env, envFile, ""), "path to the hierarchical data file (JSON or YAML)")
	format := fs.String("format", envOrDefault(env, envFormat, defaults.Format), "data format: auto, json or yaml")
	selected := fs.String("selected", envOrDefault(env, envSelected, ""), "id of the initially selected node")
	placeholder := fs.String("placeholder", envOrDefault(env, envPlaceholder, defaults.Placeholder), "trigger text while nothing is selected")
	idKey := fs.String("id-key", envOrDefault(env, envIDKey, defaults.IDKey), "record key holding the node id")
	labelKey := fs.String("label-key", envOrDefault(env, envLabelKey, defaults.LabelKey), "record key holding the node label")
	childrenKey := fs.String("children-key", envOrDefault(env, envChildrenKey, defaults.ChildrenKey), "record key holding the child records")
	width := fs.Int("width", envOrInt(env, envWidth, defaults.Width), "desired viewport width in cells (0 uses terminal width)")
	height := fs.Int("height", envOrInt(env, envHeight, defaults.Height), "desired viewport height in rows (0 uses terminal height)")
	footer := fs.Bool("footer", envOrBool(env, envShowFooter, defaults.Footer), "enable footer hint row")
	breadcrumb := fs.Bool("breadcrumb", envOrBool(env, envBreadcrumb, defaults.Breadcrumb), "render the navigation trail while drilled in")
	selectLevel := fs.Bool("select-level", envOrBool(env, envSelectLevel, defaults.SelectLevel), "offer a row that picks the current branch itself")
	selectLevelLabel := fs.String("select-level-label", envOrDefault(env, envSelectLevelLabel, defaults.SelectLevelLabel), "text for the branch-picking row")
	watchFile := fs.Bool("watch", envOrBool(env, envWatch, defaults.Watch), "reload the data file when it changes on disk")
	verbose := fs.Bool("verbose", envOrBool(env, envVerbose, false), "print the selection trail to stderr")
	trace := fs.Bool("trace", envOrBool(env, envTrace, defaults.Trace), "enable verbose JSON trace logging")
	logFile := fs.String("log-file", envOrDefault(env, envLogFile, defaults.LogFile), "path to the log file")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	if *file == "" && fs.NArg() > 0 {
		*file = fs.Arg(0)
	}
	if *file == "" {
		return Config{}, fmt.Errorf("no data file given (pass a path or set %s)", envFile)
	}
	if *width < 0 {
		return Config{}, fmt.Errorf("width must be >= 0 (got %d)", *width)
	}
	if *height < 0 {
		return Config{}, fmt.Errorf("height must be >= 0 (got %d)", *height)
	}
	dataFormat, err := parseFormat(*format)
	if err != nil {
		return Config{}, err
	}

	cfg := Config{
		App: app.Config{
			File:   *file,
			Format: dataFormat,
			Keys: tree.Keys{
				ID:       *idKey,
				Label:    *labelKey,
				Children: *childrenKey,
			},
			SelectedID:       *selected,
			Placeholder:      *placeholder,
			Width:            *width,
			Height:           *height,
			ShowFooter:       *footer,
			ShowBreadcrumb:   *breadcrumb,
			ShowSelectLevel:  *selectLevel,
			SelectLevelLabel: *selectLevelLabel,
			Watch:            *watchFile,
			Verbose:          *verbose,
		},
		Logging: Logging{
			FilePath: *logFile,
			Trace:    *trace,
		},
		Flags: map[string]string{
			"file":        *file,
			"format":      *format,
			"selected":    *selected,
			"width":       strconv.Itoa(*width),
			"height":      strconv.Itoa(*height),
			"footer":      strconv.FormatBool(*footer),
			"breadcrumb":  strconv.FormatBool(*breadcrumb),
			"selectLevel": strconv.FormatBool(*selectLevel),
			"watch":       strconv.FormatBool(*watchFile),
			"verbose":     strconv.FormatBool(*verbose),
			"trace":       strconv.FormatBool(*trace),
			"logFile":     *logFile,
		},
		Args: append([]string(nil), args...),
	}

	return cfg, nil
}

// loadFileDefaults reads the optional YAML config file layer. A missing or
// unreadable file yields the built-in defaults.
func loadFileDefaults(env map[string]string) fileDefaults {
	v := viper.New()
	v.SetDefault("format", "auto")
	v.SetDefault("placeholder", "")
	v.SetDefault("keys.id", tree.DefaultKeys().ID)
	v.SetDefault("keys.label", tree.DefaultKeys().Label)
	v.SetDefault("keys.children", tree.DefaultKeys().Children)
	v.SetDefault("ui.width", 0)
	v.SetDefault("ui.height", 0)
	v.SetDefault("ui.footer", false)
	v.SetDefault("ui.breadcrumb", true)
	v.SetDefault("ui.select_level", false)
	v.SetDefault("ui.select_level_label", "")
	v.SetDefault("watch", false)
	v.SetDefault("logging.trace", false)
	v.SetDefault("logging.file", "")

	v.SetConfigType("yaml")
	if path := env[envConfigFile]; path != "" {
		v.SetConfigFile(path)
	} else {
		v.AddConfigPath(filepath.Join(os.Getenv("HOME"), ".config", "burrow"))
		v.SetConfigName("config")
	}
	_ = v.ReadInConfig()

	return fileDefaults{
		Format:           v.GetString("format"),
		Placeholder:      v.GetString("placeholder"),
		IDKey:            v.GetString("keys.id"),
		LabelKey:         v.GetString("keys.label"),
		ChildrenKey:      v.GetString("keys.children"),
		Width:            v.GetInt("ui.width"),
		Height:           v.GetInt("ui.height"),
		Footer:           v.GetBool("ui.footer"),
		Breadcrumb:       v.GetBool("ui.breadcrumb"),
		SelectLevel:      v.GetBool("ui.select_level"),
		SelectLevelLabel: v.GetString("ui.select_level_label"),
		Watch:            v.GetBool("watch"),
		Trace:            v.GetBool("logging.trace"),
		LogFile:          v.GetString("logging.file"),
	}
}

func parseFormat(value string) (tree.Format, error) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "", "auto":
		return tree.FormatAuto, nil
	case "json":
		return tree.FormatJSON, nil
	case "yaml", "yml":
		return tree.FormatYAML, nil
	default:
		return tree.FormatAuto, fmt.Errorf("unknown format %q (want auto, json or yaml)", value)
	}
}

func parseEnv(environ []string) map[string]string {
	values := make(map[string]string, len(environ))
	for _, entry := range environ {
		if entry == "" {
			continue
		}
		parts := strings.SplitN(entry, "=", 2)
		if len(parts) != 2 {
			continue
		}
		values[parts[0]] = parts[1]
	}
	return values
}

func envOrDefault(env map[string]string, key, fallback string) string {
	if v, ok := env[key]; ok {
		return v
	}
	return fallback
}

func envOrInt(env map[string]string, key string, fallback int) int {
	v, ok := env[key]
	if !ok || strings.TrimSpace(v) == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return parsed
}

func envOrBool(env map[string]string, key string, fallback bool) bool {
	v, ok := env[key]
	if !ok || strings.TrimSpace(v) == "" {
		return fallback
	}
	parsed, err := strconv.ParseBool(v)
	if err != nil {
		return fallback
	}
	return parsed
}

// MustLoad returns configuration or exits.
func MustLoad() Config {
	cfg, err := Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Configuration error: %v\n", err)
		os.Exit(2)
	}
	return cfg
}
