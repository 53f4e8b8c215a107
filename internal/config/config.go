package config

import (
	"errors"
	"fmt"
	"image"
	_ "image/gif"  // register GIF decoder
	_ "image/jpeg" // register JPEG decoder
	_ "image/png"  // register PNG decoder
	"os"
	"path/filepath"

	"github.com/hashicorp/go-hclog"
	"github.com/pelletier/go-toml/v2"
	_ "golang.org/x/image/bmp"  // register BMP decoder
	_ "golang.org/x/image/webp" // register WebP decoder
)

// ErrInvalidConfig is returned when a config file parses but cannot be used
var ErrInvalidConfig = errors.New("invalid config")

// Config represents the application configuration
type Config struct {
	Version  int             `toml:"version"`
	Control  ControlSettings `toml:"control"`
	Segments []Segment       `toml:"segments"`

	// dir is where the config was loaded from; relative image paths resolve against it
	dir string
}

// ControlSettings holds the segmented control's appearance
type ControlSettings struct {
	HighlightColor string  `toml:"highlight_color"`
	TintColor      string  `toml:"tint_color"`
	CornerRadius   float64 `toml:"corner_radius"`
	Width          int     `toml:"width,omitempty"` // 0 sizes to content
}

// Segment is one segment's initial content. At most one of Title and Image is set.
type Segment struct {
	Title string `toml:"title,omitempty"`
	Image string `toml:"image,omitempty"`
}

// ConfigService handles configuration management
type ConfigService interface {
	Load() (*Config, error)
	Save(config *Config) error
	LoadFromPath(path string) (*Config, error)
	SaveToPath(config *Config, path string) error
	Path() string
}

// configService is the concrete implementation
type configService struct {
	logger   hclog.Logger
	filePath string
}

// DefaultPath returns the per-user config location
func DefaultPath() string {
	configDir, err := os.UserConfigDir()
	if err != nil {
		// Fallback to home directory
		configDir, err = os.UserHomeDir()
		if err != nil {
			configDir = "."
		}
		configDir = filepath.Join(configDir, ".config")
	}
	return filepath.Join(configDir, "segctl", "config.toml")
}

// NewConfigService creates a config service for path, or the default
// location when path is empty.
func NewConfigService(path string, logger hclog.Logger) ConfigService {
	if path == "" {
		path = DefaultPath()
	}
	if logger == nil {
		logger = hclog.NewNullLogger()
	}
	return &configService{
		logger:   logger.Named("config"),
		filePath: path,
	}
}

// Path returns the file Load and Save use
func (cs *configService) Path() string {
	return cs.filePath
}

// Load loads the configuration, returning the default if the file doesn't exist
func (cs *configService) Load() (*Config, error) {
	if _, err := os.Stat(cs.filePath); os.IsNotExist(err) {
		cs.logger.Info("no config file, using defaults", "path", cs.filePath)
		cfg := DefaultConfig()
		cfg.dir = filepath.Dir(cs.filePath)
		return cfg, nil
	}
	return cs.LoadFromPath(cs.filePath)
}

// Save saves the configuration to the service's file
func (cs *configService) Save(config *Config) error {
	return cs.SaveToPath(config, cs.filePath)
}

// LoadFromPath loads configuration from a specific path
func (cs *configService) LoadFromPath(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg, err := Parse(data)
	if err != nil {
		return nil, err
	}
	cfg.dir = filepath.Dir(path)

	cs.logger.Debug("config loaded", "path", path, "segments", len(cfg.Segments))
	return cfg, nil
}

// SaveToPath saves configuration to a specific path
func (cs *configService) SaveToPath(config *Config, path string) error {
	if err := config.Validate(); err != nil {
		return err
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := toml.Marshal(config)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	cs.logger.Debug("config saved", "path", path)
	return nil
}

// Parse decodes and validates a TOML config. Unset fields take their defaults.
func Parse(data []byte) (*Config, error) {
	cfg := DefaultConfig()
	cfg.Segments = nil
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks the config for values the control cannot use
func (c *Config) Validate() error {
	if c.Version != 1 {
		return fmt.Errorf("%w: unsupported version %d", ErrInvalidConfig, c.Version)
	}
	if c.Control.CornerRadius < 0 {
		return fmt.Errorf("%w: negative corner_radius %v", ErrInvalidConfig, c.Control.CornerRadius)
	}
	if c.Control.Width < 0 {
		return fmt.Errorf("%w: negative width %d", ErrInvalidConfig, c.Control.Width)
	}
	for i, seg := range c.Segments {
		if seg.Title != "" && seg.Image != "" {
			return fmt.Errorf("%w: segment %d sets both title and image", ErrInvalidConfig, i)
		}
	}
	return nil
}

// ResolvePath makes p absolute relative to the config's directory
func (c *Config) ResolvePath(p string) string {
	if p == "" || filepath.IsAbs(p) || c.dir == "" {
		return p
	}
	return filepath.Join(c.dir, p)
}

// LoadImage decodes the image configured for segment i
func (c *Config) LoadImage(i int) (image.Image, error) {
	if i < 0 || i >= len(c.Segments) || c.Segments[i].Image == "" {
		return nil, fmt.Errorf("segment %d has no image", i)
	}

	path := c.ResolvePath(c.Segments[i].Image)
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open image: %w", err)
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("failed to decode image %s: %w", path, err)
	}
	return img, nil
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		Version: 1,
		Control: ControlSettings{
			HighlightColor: "15", // white
			TintColor:      "33",
			CornerRadius:   1,
		},
		Segments: []Segment{
			{Title: "Mon"},
			{Title: "Tue"},
			{Title: "Wed"},
			{Title: "Thu"},
			{Title: "Fri"},
		},
	}
}
