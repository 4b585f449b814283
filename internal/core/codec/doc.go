// Package codec provides the JSON codecs measured by acp-bench.
//
// Every codec decodes into a generic JSON value (any) and encodes
// arbitrary Go values:
//
//   - std: encoding/json, the reference general-purpose codec
//   - sonic: github.com/bytedance/sonic
//   - jsoniter: github.com/json-iterator/go in standard-library mode
//
// Use Lookup to resolve a codec by name.
package codec
