package config

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"reflect"
	"strconv"

	"github.com/naoina/toml"

	"github.com/eigerco/weights/internal/constants"
	"github.com/eigerco/weights/internal/dispatch"
	"github.com/eigerco/weights/internal/snapshot"
	"github.com/eigerco/weights/internal/weight"
	"github.com/eigerco/weights/pkg/log"
)

var ErrInvalidConfig = errors.New("invalid config")

const (
	BackendRocksDb  = "rocksdb"
	BackendParityDb = "paritydb"
	BackendCustom   = "custom"
)

const envPrefix = "WEIGHTS_"

// Config holds the runtime params of the weight model and the settings of the command line tool.
// ReadWeight and WriteWeight are only used by the custom backend.
type Config struct {
	Profile            string `toml:"profile"`
	DbBackend          string `toml:"db_backend"`
	ReadWeight         uint64 `toml:"read_weight"`
	WriteWeight        uint64 `toml:"write_weight"`
	MaximumBlockWeight uint64 `toml:"maximum_block_weight"`
	KeySlots           uint32 `toml:"key_slots"`
	MaxTippers         uint32 `toml:"max_tippers"`
	LogLevel           string `toml:"log_level"`
	LogFormat          string `toml:"log_format"`
	StorePath          string `toml:"store_path"`
}

var tomlSettings = toml.Config{
	NormFieldName: toml.DefaultConfig.NormFieldName,
	FieldToKey:    toml.DefaultConfig.FieldToKey,
	MissingField: func(rt reflect.Type, field string) error {
		return fmt.Errorf("%w: field %q is not defined in %s", ErrInvalidConfig, field, rt.String())
	},
}

// Default returns the config of the chain profile selected at build time.
func Default() *Config {
	return &Config{
		Profile:            constants.Profile,
		DbBackend:          BackendRocksDb,
		MaximumBlockWeight: constants.MaximumBlockWeight,
		KeySlots:           constants.SessionKeySlots,
		MaxTippers:         constants.MaxTippers,
		LogLevel:           "info",
		LogFormat:          "console",
		StorePath:          "weights-db",
	}
}

// Load builds the config from the defaults, the TOML file at path if it is not empty,
// and WEIGHTS_* environment variables, in that order.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path != "" {
		if err := cfg.loadFile(path); err != nil {
			return nil, err
		}
	}
	if err := cfg.applyEnv(); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) loadFile(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("open config: %w", err)
	}
	defer f.Close()

	if err := tomlSettings.NewDecoder(bufio.NewReader(f)).Decode(c); err != nil {
		return fmt.Errorf("%w: decode %s: %v", ErrInvalidConfig, path, err)
	}
	return nil
}

func (c *Config) applyEnv() error {
	strs := map[string]*string{
		"PROFILE":    &c.Profile,
		"DB_BACKEND": &c.DbBackend,
		"LOG_LEVEL":  &c.LogLevel,
		"LOG_FORMAT": &c.LogFormat,
		"STORE_PATH": &c.StorePath,
	}
	for name, dst := range strs {
		if v, ok := os.LookupEnv(envPrefix + name); ok {
			*dst = v
		}
	}

	u64s := map[string]*uint64{
		"READ_WEIGHT":          &c.ReadWeight,
		"WRITE_WEIGHT":         &c.WriteWeight,
		"MAXIMUM_BLOCK_WEIGHT": &c.MaximumBlockWeight,
	}
	for name, dst := range u64s {
		v, ok := os.LookupEnv(envPrefix + name)
		if !ok {
			continue
		}
		n, err := strconv.ParseUint(v, 10, 64)
		if err != nil {
			return fmt.Errorf("%w: %s%s: %w", ErrInvalidConfig, envPrefix, name, err)
		}
		*dst = n
	}

	u32s := map[string]*uint32{
		"KEY_SLOTS":   &c.KeySlots,
		"MAX_TIPPERS": &c.MaxTippers,
	}
	for name, dst := range u32s {
		v, ok := os.LookupEnv(envPrefix + name)
		if !ok {
			continue
		}
		n, err := strconv.ParseUint(v, 10, 32)
		if err != nil {
			return fmt.Errorf("%w: %s%s: %w", ErrInvalidConfig, envPrefix, name, err)
		}
		*dst = uint32(n)
	}
	return nil
}

func (c *Config) Validate() error {
	if err := snapshot.ValidateProfile(c.Profile); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}

	switch c.DbBackend {
	case BackendRocksDb, BackendParityDb:
		if c.ReadWeight != 0 || c.WriteWeight != 0 {
			return fmt.Errorf("%w: read_weight and write_weight require db_backend %q", ErrInvalidConfig, BackendCustom)
		}
	case BackendCustom:
		if c.ReadWeight == 0 || c.WriteWeight == 0 {
			return fmt.Errorf("%w: db_backend %q needs read_weight and write_weight", ErrInvalidConfig, BackendCustom)
		}
	default:
		return fmt.Errorf("%w: unknown db_backend %q", ErrInvalidConfig, c.DbBackend)
	}

	if _, err := log.ParseLogLevel(c.LogLevel); err != nil {
		return fmt.Errorf("%w: log_level: %w", ErrInvalidConfig, err)
	}
	if _, err := log.ParseLoggerType(c.LogFormat); err != nil {
		return fmt.Errorf("%w: log_format: %w", ErrInvalidConfig, err)
	}

	if err := c.Params().Validate(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	return nil
}

func (c *Config) DbWeight() weight.DbWeight {
	switch c.DbBackend {
	case BackendParityDb:
		return weight.ParityDbWeight
	case BackendCustom:
		return weight.DbWeight{Read: weight.Weight(c.ReadWeight), Write: weight.Weight(c.WriteWeight)}
	default:
		return weight.RocksDbWeight
	}
}

// Params builds the runtime params the weight model is evaluated against.
func (c *Config) Params() dispatch.Params {
	return dispatch.Params{
		DbWeight:           c.DbWeight(),
		MaximumBlockWeight: weight.Weight(c.MaximumBlockWeight),
		KeySlots:           c.KeySlots,
		MaxTippers:         c.MaxTippers,
	}
}

// LogOptions converts the logging settings into options for log.Init. Validate must have succeeded.
func (c *Config) LogOptions() log.Options {
	level, _ := log.ParseLogLevel(c.LogLevel)
	typ, _ := log.ParseLoggerType(c.LogFormat)
	return log.Options{LogLevel: level, Type: typ}
}

// Marshal renders the config as TOML.
func (c *Config) Marshal() ([]byte, error) {
	return tomlSettings.Marshal(c)
}
