package config

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"sync"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// Recognized setting keys
const (
	KeyTheme          = "theme"
	KeyPrompt         = "prompt"
	KeyWelcomeMessage = "welcomeMessage"
)

// Themes
const (
	ThemeDefault  = "default"
	ThemeDark     = "dark"
	ThemeLight    = "light"
	ThemeColorful = "colorful"
)

const (
	// DefaultPath is used when neither a flag nor the environment names a file
	DefaultPath = "kisueeros_config.toml"

	// EnvConfig names the environment variable holding the config path
	EnvConfig = "KISUEEROS_CONFIG"
)

// ErrMalformed is returned by Load when the file exists but cannot be parsed
var ErrMalformed = errors.New("malformed configuration")

// Settings holds the persisted shell settings
type Settings struct {
	Theme          string `toml:"theme" yaml:"theme" json:"theme"`
	Prompt         string `toml:"prompt" yaml:"prompt" json:"prompt"`
	WelcomeMessage string `toml:"welcomeMessage" yaml:"welcomeMessage" json:"welcomeMessage"`
}

// Entry is a single key-value pair for display
type Entry struct {
	Key   string
	Value string
}

// Store is the key-value view of the settings used by shell commands
type Store interface {
	Get(key string) (string, bool)
	Set(key, value string) error
	Save() error
	Entries() []Entry
	Path() string
}

// Themes returns the available theme names in display order
func Themes() []string {
	return []string{ThemeDefault, ThemeDark, ThemeLight, ThemeColorful}
}

// DefaultSettings returns the built-in settings
func DefaultSettings() Settings {
	s := Settings{}
	s.applyDefaults()
	return s
}

// applyDefaults sets default values for missing or invalid settings
func (s *Settings) applyDefaults() {
	s.Theme = strings.ToLower(strings.TrimSpace(s.Theme))
	if !slices.Contains(Themes(), s.Theme) {
		s.Theme = ThemeDefault
	}
	if s.Prompt == "" {
		s.Prompt = "KisueerOS > "
	}
	if s.WelcomeMessage == "" {
		s.WelcomeMessage = "Welcome to KisueerOS! Type 'help' to see available commands."
	}
}

// FileStore is a Store backed by a TOML, YAML or JSON file
type FileStore struct {
	path     string
	settings Settings
	mu       sync.RWMutex
}

// New creates a store for path holding settings, without touching the disk
func New(path string, settings Settings) *FileStore {
	settings.applyDefaults()
	return &FileStore{path: path, settings: settings}
}

// Load reads settings from path. The returned store is always usable: a
// missing file yields defaults and no error, a malformed file yields
// defaults and an error wrapping ErrMalformed.
func Load(path string) (*FileStore, error) {
	path = expandPath(path)
	store := New(path, Settings{})

	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return store, nil
	}
	if err != nil {
		return store, fmt.Errorf("failed to read config %s: %w", path, err)
	}

	var cfg Settings
	if err := decode(path, data, &cfg); err != nil {
		return store, fmt.Errorf("%w: %s: %v", ErrMalformed, path, err)
	}
	cfg.applyDefaults()
	store.settings = cfg

	return store, nil
}

// ResolvePath picks the config path from an explicit value, the
// KISUEEROS_CONFIG environment variable, or DefaultPath
func ResolvePath(explicit string) string {
	if explicit != "" {
		return expandPath(explicit)
	}
	if env := os.Getenv(EnvConfig); env != "" {
		return expandPath(env)
	}
	return DefaultPath
}

// Path returns the file backing the store
func (f *FileStore) Path() string {
	return f.path
}

// Settings returns a copy of the current settings
func (f *FileStore) Settings() Settings {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return f.settings
}

// Get returns the value of a recognized key
func (f *FileStore) Get(key string) (string, bool) {
	f.mu.RLock()
	defer f.mu.RUnlock()

	switch key {
	case KeyTheme:
		return f.settings.Theme, true
	case KeyPrompt:
		return f.settings.Prompt, true
	case KeyWelcomeMessage:
		return f.settings.WelcomeMessage, true
	default:
		return "", false
	}
}

// Set updates a recognized key in memory. Call Save to persist.
func (f *FileStore) Set(key, value string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	switch key {
	case KeyTheme:
		theme := strings.ToLower(strings.TrimSpace(value))
		if !slices.Contains(Themes(), theme) {
			return fmt.Errorf("unknown theme: %s", value)
		}
		f.settings.Theme = theme
	case KeyPrompt:
		f.settings.Prompt = value
	case KeyWelcomeMessage:
		f.settings.WelcomeMessage = value
	default:
		return fmt.Errorf("unknown setting: %s", key)
	}
	return nil
}

// Entries returns all settings in a stable order
func (f *FileStore) Entries() []Entry {
	f.mu.RLock()
	defer f.mu.RUnlock()

	return []Entry{
		{Key: KeyTheme, Value: f.settings.Theme},
		{Key: KeyPrompt, Value: f.settings.Prompt},
		{Key: KeyWelcomeMessage, Value: f.settings.WelcomeMessage},
	}
}

// Save overwrites the backing file with the current settings
func (f *FileStore) Save() error {
	f.mu.RLock()
	settings := f.settings
	f.mu.RUnlock()

	data, err := encode(f.path, settings)
	if err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}

	if dir := filepath.Dir(f.path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create config directory: %w", err)
		}
	}

	if err := os.WriteFile(f.path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config %s: %w", f.path, err)
	}
	return nil
}

func decode(path string, data []byte, cfg *Settings) error {
	switch formatOf(path) {
	case "yaml":
		return yaml.Unmarshal(data, cfg)
	case "json":
		return json.Unmarshal(data, cfg)
	default:
		_, err := toml.Decode(string(data), cfg)
		return err
	}
}

func encode(path string, cfg Settings) ([]byte, error) {
	switch formatOf(path) {
	case "yaml":
		return yaml.Marshal(cfg)
	case "json":
		data, err := json.MarshalIndent(cfg, "", "    ")
		if err != nil {
			return nil, err
		}
		return append(data, '\n'), nil
	default:
		var buf bytes.Buffer
		if err := toml.NewEncoder(&buf).Encode(cfg); err != nil {
			return nil, err
		}
		return buf.Bytes(), nil
	}
}

func formatOf(path string) string {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return "yaml"
	case ".json":
		return "json"
	default:
		return "toml"
	}
}

// expandPath expands environment variables and a leading ~
func expandPath(path string) string {
	path = os.ExpandEnv(path)
	if path == "~" || strings.HasPrefix(path, "~/") {
		if home, err := os.UserHomeDir(); err == nil {
			path = filepath.Join(home, strings.TrimPrefix(path, "~"))
		}
	}
	return path
}
