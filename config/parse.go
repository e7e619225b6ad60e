package config

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclsyntax"
	"github.com/turbot/pipe-fittings/error_helpers"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/function"
)

// Load reads and parses an HCL config file.
func Load(configPath string) (*Config, error) {
	hclBytes, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", configPath, err)
	}
	return Parse(hclBytes, configPath)
}

// Parse parses the HCL config and returns the Config struct. A config with
// no station block is valid - the zero Station is used.
func Parse(hclBytes []byte, filename string) (*Config, error) {
	file, diags := hclsyntax.ParseConfig(hclBytes, filename, hcl.Pos{Line: 1, Column: 1})
	if diags != nil && diags.HasErrors() {
		slog.Warn("failed to parse config", "file", filename)
		return nil, error_helpers.HclDiagsToError("failed to parse config", diags)
	}

	// create empty eval context - the config language has no variables or
	// functions
	evalCtx := &hcl.EvalContext{
		Variables: make(map[string]cty.Value),
		Functions: make(map[string]function.Function),
	}

	var c Config
	decodeDiags := gohcl.DecodeBody(file.Body, evalCtx, &c)
	if decodeDiags.HasErrors() {
		return nil, error_helpers.HclDiagsToError("failed to decode config", decodeDiags)
	}

	if c.Station == nil {
		c.Station = &Station{}
	}

	return &c, nil
}
