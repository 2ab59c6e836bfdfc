package configloader

import "github.com/yaklabco/markscan/pkg/config"

// merge combines two configurations, with override taking precedence over base.
// The merge follows these rules:
//   - Scalar values: override overwrites base if override is non-zero
//   - Pointers: override overwrites base if override is non-nil
//   - Slices: override replaces base entirely if override is non-nil
//   - Nil/unset values in override do not override values in base
func merge(base, override *config.Config) *config.Config {
	if base == nil {
		return override
	}
	if override == nil {
		return base
	}

	result := *base

	if override.Flavor != "" {
		result.Flavor = override.Flavor
	}
	if override.Format != "" {
		result.Format = override.Format
	}
	if override.Jobs != 0 {
		result.Jobs = override.Jobs
	}
	if override.MaxFileSize != 0 {
		result.MaxFileSize = override.MaxFileSize
	}

	// Summary can only be switched on by a later layer.
	if override.Summary {
		result.Summary = true
	}

	if override.Markdown != nil {
		markdown := *override.Markdown
		result.Markdown = &markdown
	}

	if override.RawTextElements != nil {
		result.RawTextElements = override.RawTextElements
	}
	if override.Extensions != nil {
		result.Extensions = override.Extensions
	}
	if override.Ignore != nil {
		result.Ignore = override.Ignore
	}

	return &result
}
