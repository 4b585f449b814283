package codec

import (
	"encoding/json"
	"sort"

	"github.com/bytedance/sonic"
	jsoniter "github.com/json-iterator/go"

	"github.com/yndnr/acp-bench/internal/core/domain"
)

// Codec encodes and decodes JSON.
type Codec interface {
	Name() string
	Marshal(v any) ([]byte, error)
	Unmarshal(data []byte, v any) error
}

// Codec names.
const (
	NameStd      = "std"
	NameSonic    = "sonic"
	NameJSONIter = "jsoniter"
)

// DefaultName is the codec used when none is requested.
const DefaultName = NameStd

var registry = map[string]Codec{
	NameStd:      stdCodec{},
	NameSonic:    sonicCodec{api: sonic.ConfigStd},
	NameJSONIter: jsoniterCodec{api: jsoniter.ConfigCompatibleWithStandardLibrary},
}

// Lookup returns the codec registered under name.
func Lookup(name string) (Codec, error) {
	c, ok := registry[name]
	if !ok {
		return nil, domain.ErrUnknownCodec.WithDetails(name)
	}
	return c, nil
}

// Default returns the default codec.
func Default() Codec {
	return registry[DefaultName]
}

// Names returns all registered codec names, sorted.
func Names() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

type stdCodec struct{}

func (stdCodec) Name() string {
	return NameStd
}

func (stdCodec) Marshal(v any) ([]byte, error) {
	return json.Marshal(v)
}

func (stdCodec) Unmarshal(data []byte, v any) error {
	return json.Unmarshal(data, v)
}

type sonicCodec struct {
	api sonic.API
}

func (sonicCodec) Name() string {
	return NameSonic
}

func (c sonicCodec) Marshal(v any) ([]byte, error) {
	return c.api.Marshal(v)
}

func (c sonicCodec) Unmarshal(data []byte, v any) error {
	return c.api.Unmarshal(data, v)
}

type jsoniterCodec struct {
	api jsoniter.API
}

func (jsoniterCodec) Name() string {
	return NameJSONIter
}

func (c jsoniterCodec) Marshal(v any) ([]byte, error) {
	return c.api.Marshal(v)
}

func (c jsoniterCodec) Unmarshal(data []byte, v any) error {
	return c.api.Unmarshal(data, v)
}
