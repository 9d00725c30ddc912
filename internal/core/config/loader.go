package config

import (
	"fmt"
	"sort"

	"gopkg.in/yaml.v3"

	"github.com/camtune/camtune/internal/core/observability/log"
)

var (
	rootKeys     = []string{"fov", "distance", "height", "hub", "room", "quest", "disable_room_shift"}
	settingsKeys = []string{"fov", "distance", "height", "shift"}
)

// Parse decodes a config document. Only an undecodable document is an
// error; wrong-typed or unknown fields are warned about and fall back
// per-field. Top-level fov/distance/height act as globals that the
// hub/room/quest sections override.
func Parse(data []byte, logger log.Log) (UserConfig, error) {
	var root map[string]any
	if err := yaml.Unmarshal(data, &root); err != nil {
		return UserConfig{}, fmt.Errorf("parse config: %w", err)
	}
	warnUnknownKeys(root, rootKeys, "", logger)

	global := settingsFromTable(root, "", DefaultSettings(), logger)
	resolve := func(key string) Settings {
		return settingsAtKey(root, key, global, logger)
	}

	cfg := UserConfig{
		Hub:   resolve("hub"),
		Room:  resolve("room"),
		Quest: resolve("quest"),
	}
	if v, ok := readBool(root, "disable_room_shift", "", logger); ok {
		cfg.DisableRoomShift = v
	}
	return cfg, nil
}

func keyTrace(parent, key string) string {
	if parent == "" {
		return key
	}
	return parent + "." + key
}

func warnUnknownKeys(table map[string]any, expected []string, parent string, logger log.Log) {
	var unknown []string
	for key := range table {
		found := false
		for _, want := range expected {
			if key == want {
				found = true
				break
			}
		}
		if !found {
			unknown = append(unknown, key)
		}
	}
	sort.Strings(unknown)
	for _, key := range unknown {
		logger.Warn("unknown config key will be ignored", log.String("key", keyTrace(parent, key)))
	}
}

func readFloat(table map[string]any, key, parent string, logger log.Log) (float32, bool) {
	raw, ok := table[key]
	if !ok {
		return 0, false
	}
	switch v := raw.(type) {
	case float64:
		return float32(v), true
	case int:
		return float32(v), true
	default:
		logger.Warn("expected a floating-point config value",
			log.String("key", keyTrace(parent, key)),
			log.Any("got", raw))
		return 0, false
	}
}

func readBool(table map[string]any, key, parent string, logger log.Log) (bool, bool) {
	raw, ok := table[key]
	if !ok {
		return false, false
	}
	v, ok := raw.(bool)
	if !ok {
		logger.Warn("expected a boolean config value",
			log.String("key", keyTrace(parent, key)),
			log.Any("got", raw))
		return false, false
	}
	return v, true
}

func clampFOV(value float32, logger log.Log) float32 {
	clamped := min(max(value, fovMin), fovMax)
	if clamped != value {
		logger.Warn("fov clamped to valid range",
			log.Float32("fov", value),
			log.Float32("min", fovMin),
			log.Float32("max", fovMax))
	}
	return clamped
}

func settingsFromTable(table map[string]any, parent string, defaults Settings, logger log.Log) Settings {
	s := defaults
	if v, ok := readFloat(table, "fov", parent, logger); ok {
		s.FOV = clampFOV(v, logger)
	}
	if v, ok := readFloat(table, "distance", parent, logger); ok {
		s.Distance = v
	}
	if v, ok := readFloat(table, "height", parent, logger); ok {
		s.Height = v
	}
	return s
}

func settingsAtKey(root map[string]any, key string, defaults Settings, logger log.Log) Settings {
	raw, ok := root[key]
	if !ok {
		return defaults
	}
	table, ok := raw.(map[string]any)
	if !ok {
		logger.Warn("expected a config section",
			log.String("key", key),
			log.Any("got", raw))
		return defaults
	}
	warnUnknownKeys(table, settingsKeys, key, logger)
	return settingsFromTable(table, key, defaults, logger)
}
