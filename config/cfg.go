package config

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"os"
	"slices"
	"time"

	yaml "gopkg.in/yaml.v3"

	"github.com/rupor-github/gencfg"

	"tpledit/model"
	"tpledit/utils/images"
)

//go:embed config.yaml.tmpl
var ConfigTmpl []byte

type (
	TemplateFieldName string

	ImagesConfig struct {
		MaxWidth    int     `yaml:"max_width" validate:"gte=0"`
		MaxHeight   int     `yaml:"max_height" validate:"gte=0"`
		JPEGQuality int     `yaml:"jpeq_quality_level" validate:"min=40,max=100"`
		SVG         SVGMode `yaml:"svg" validate:"gte=0"`
		Grayscale   bool    `yaml:"grayscale"`
	}

	EditorConfig struct {
		Font         string       `yaml:"font" validate:"required"`
		FontSize     float64      `yaml:"font_size" validate:"gt=0"`
		TableRows    int          `yaml:"table_rows" validate:"min=1,max=100"`
		TableColumns int          `yaml:"table_columns" validate:"min=1,max=50"`
		SpacerHeight float64      `yaml:"spacer_height" validate:"gte=0"`
		ImageWidth   float64      `yaml:"image_width" validate:"gt=0"`
		ImageHeight  float64      `yaml:"image_height" validate:"gt=0"`
		Images       ImagesConfig `yaml:"images"`
	}

	ServiceConfig struct {
		BaseURL string        `yaml:"base_url" validate:"required,url"`
		Token   SecretString  `yaml:"token,omitempty"`
		Timeout time.Duration `yaml:"timeout" validate:"gt=0"`
	}

	OutputConfig struct {
		OutputNameTemplate    string `yaml:"output_name_template"`
		FileNameTransliterate bool   `yaml:"file_name_transliterate"`
	}

	Config struct {
		Version   int            `yaml:"version" validate:"eq=1"`
		Editor    EditorConfig   `yaml:"editor"`
		Service   ServiceConfig  `yaml:"service"`
		Output    OutputConfig   `yaml:"output"`
		Logging   LoggingConfig  `yaml:"logging"`
		Reporting ReporterConfig `yaml:"reporting"`
	}
)

// OutputNameTemplateFieldName is expanded per generated document, so it is
// left alone when configuration template is processed. Must match yaml tag.
const OutputNameTemplateFieldName TemplateFieldName = "output_name_template"

var requiredOptions = []func(*gencfg.ProcessingOptions){
	gencfg.WithDoNotExpandField(string(OutputNameTemplateFieldName)),
}

// Defaults returns settings for newly created elements.
func (conf *EditorConfig) Defaults() model.Defaults {
	return model.Defaults{
		Font:         conf.Font,
		FontSize:     conf.FontSize,
		TableRows:    conf.TableRows,
		TableColumns: conf.TableColumns,
		SpacerHeight: conf.SpacerHeight,
		ImageWidth:   conf.ImageWidth,
		ImageHeight:  conf.ImageHeight,
	}
}

// Limits returns picture preparation settings.
func (conf *ImagesConfig) Limits() images.Limits {
	return images.Limits{
		MaxWidth:     conf.MaxWidth,
		MaxHeight:    conf.MaxHeight,
		JPEGQuality:  conf.JPEGQuality,
		RasterizeSVG: conf.SVG == SVGModeRasterize,
		Grayscale:    conf.Grayscale,
	}
}

// decode superimposes YAML data on cfg. Unknown fields are errors.
func decode(data []byte, cfg *Config) error {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return err
	}
	return nil
}

// check sanitizes and validates final configuration.
func check(cfg *Config) error {
	if err := gencfg.Sanitize(cfg); err != nil {
		return fmt.Errorf("failed to sanitize configuration: %w", err)
	}
	if err := gencfg.Validate(cfg); err != nil {
		return fmt.Errorf("failed to validate configuration: %w", err)
	}
	return nil
}

// LoadConfiguration returns defaults from embedded template with values
// from file at path (if any) on top of them, sanitized and validated.
func LoadConfiguration(path string, options ...func(*gencfg.ProcessingOptions)) (*Config, error) {
	defaults, err := gencfg.Process(ConfigTmpl, append(slices.Clone(requiredOptions), options...)...)
	if err != nil {
		return nil, fmt.Errorf("failed to process configuration template: %w", err)
	}
	cfg := &Config{}
	if err := decode(defaults, cfg); err != nil {
		return nil, fmt.Errorf("failed to decode configuration template: %w", err)
	}

	if len(path) > 0 {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
		if err := decode(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to decode config file %s: %w", path, err)
		}
	}

	if err := check(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Prepare returns embedded configuration template with expanded values.
func Prepare() ([]byte, error) {
	return gencfg.Process(ConfigTmpl, requiredOptions...)
}

// Dump returns cfg as YAML, secrets are masked.
func Dump(cfg *Config) ([]byte, error) {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal config to yaml: %w", err)
	}
	return data, nil
}
