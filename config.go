package formkit

import (
	"strings"

	"github.com/gobeaver/beaver-kit/config"

	"github.com/flatluna/formkit/filevalidator"
)

type Config struct {
	// Strict makes the decoder fail on malformed or truncated bodies instead
	// of returning partial results
	Strict bool `env:"FORMKIT_STRICT,default:false"`

	// Maximum accepted body size in bytes (0 = unlimited)
	MaxBodySize int64 `env:"FORMKIT_MAX_BODY_SIZE,default:33554432"` // 32MB default

	// Maximum number of parts per body (0 = unlimited)
	MaxParts int `env:"FORMKIT_MAX_PARTS,default:64"`

	// Extension allow-lists, comma-separated, without dots. The tag parser
	// treats commas as option separators, so list defaults are applied in
	// GetConfig instead of the tag.
	ImageExtensions string `env:"FORMKIT_IMAGE_EXTENSIONS"`
	PDFExtensions   string `env:"FORMKIT_PDF_EXTENSIONS"`

	// Digest algorithm recorded on uploads (md5, sha1, sha256, crc32, xxhash)
	ChecksumAlgorithm string `env:"FORMKIT_CHECKSUM_ALGORITHM,default:xxhash"`
}

// GetConfig returns config loaded from environment
func GetConfig() (*Config, error) {
	cfg := &Config{}
	if err := config.Load(cfg); err != nil {
		return nil, err
	}
	if cfg.ImageExtensions == "" {
		cfg.ImageExtensions = strings.Join(filevalidator.DefaultImageExtensions, ",")
	}
	if cfg.PDFExtensions == "" {
		cfg.PDFExtensions = strings.Join(filevalidator.DefaultPDFExtensions, ",")
	}
	return cfg, nil
}

// DecoderOptions translates the config into decoder options.
func (c *Config) DecoderOptions() []Option {
	opts := []Option{
		WithMaxBodySize(c.MaxBodySize),
		WithMaxParts(c.MaxParts),
	}
	if c.Strict {
		opts = append(opts, WithStrict())
	}
	return opts
}

// Validator builds a file validator from the configured allow-lists.
func (c *Config) Validator() *filevalidator.Validator {
	return filevalidator.NewWithExtensions(map[filevalidator.Category][]string{
		filevalidator.CategoryImage: splitList(c.ImageExtensions),
		filevalidator.CategoryPDF:   splitList(c.PDFExtensions),
	})
}

func splitList(s string) []string {
	var out []string
	for _, item := range strings.Split(s, ",") {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	return out
}
