// Package confloader provides the configuration loading mechanism.
//
// It uses koanf to merge several sources into one typed struct.
//
// Priority (highest to lowest):
//
//  1. Explicitly set command-line flags (WithOverrides)
//  2. Environment variables (ACPBENCH_SECTION_KEY)
//  3. Configuration file (YAML)
//  4. Values already present in the target struct
package confloader
