package config

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/ctrl-raul/supermechs-workshop-server/internal/game"
)

type itemEntry struct {
	Name    string         `json:"name"`
	Type    string         `json:"type"`
	Element string         `json:"element"`
	Tags    []string       `json:"tags"`
	Stats   game.ItemStats `json:"stats"`
}

type statEntry struct {
	Key  string         `json:"key"`
	Buff *game.StatBuff `json:"buff"`
}

type rawConfig struct {
	ItemList []itemEntry `json:"item_list"`
	StatList []statEntry `json:"stat_list"`
	Server   *struct {
		Address string `json:"address"`
	} `json:"server"`
}

// LoadedConfig contains the item catalog, the stat buff table and the
// server address to bind to.
type LoadedConfig struct {
	Items         []game.Item
	Stats         game.StatTable
	ServerAddress string
}

// LoadConfig reads the configuration file at path. It requires the keys
// `item_list` and `stat_list` and cross-validates the entries (unique
// names, known types and elements, sane buff modes and damage ranges).
func LoadConfig(path string) (*LoadedConfig, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}
	var rc rawConfig
	if err := json.Unmarshal(b, &rc); err != nil {
		return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}

	if len(rc.ItemList) == 0 {
		return nil, fmt.Errorf("config file %s: item_list is empty (provide an 'item_list' array)", path)
	}
	if len(rc.StatList) == 0 {
		return nil, fmt.Errorf("config file %s: stat_list is empty (provide a 'stat_list' array)", path)
	}

	items := make([]game.Item, 0, len(rc.ItemList))
	nameSet := make(map[string]struct{}, len(rc.ItemList))
	for _, e := range rc.ItemList {
		if e.Name == "" {
			return nil, fmt.Errorf("config file %s: item entry missing 'name'", path)
		}
		ln := strings.ToLower(strings.TrimSpace(e.Name))
		if _, exists := nameSet[ln]; exists {
			return nil, fmt.Errorf("config file %s: duplicate item name '%s'", path, e.Name)
		}
		nameSet[ln] = struct{}{}

		if !validItemType(game.ItemType(e.Type)) {
			return nil, fmt.Errorf("config file %s: item '%s' has unknown type '%s'", path, e.Name, e.Type)
		}
		if !validElement(game.Element(e.Element)) {
			return nil, fmt.Errorf("config file %s: item '%s' has unknown element '%s'", path, e.Name, e.Element)
		}
		for key, r := range map[string]*game.Range{
			"phyDmg": e.Stats.PhyDmg,
			"expDmg": e.Stats.ExpDmg,
			"eleDmg": e.Stats.EleDmg,
			"range":  e.Stats.Range,
		} {
			if r != nil && r.Min > r.Max {
				return nil, fmt.Errorf("config file %s: item '%s' has inverted %s range", path, e.Name, key)
			}
		}

		items = append(items, game.Item{
			Name:    e.Name,
			Type:    game.ItemType(e.Type),
			Element: game.Element(e.Element),
			Tags:    e.Tags,
			Stats:   e.Stats,
		})
	}

	stats := make(game.StatTable, len(rc.StatList))
	for _, e := range rc.StatList {
		if e.Key == "" {
			return nil, fmt.Errorf("config file %s: stat entry missing 'key'", path)
		}
		if _, exists := stats[e.Key]; exists {
			return nil, fmt.Errorf("config file %s: duplicate stat key '%s'", path, e.Key)
		}
		if e.Buff != nil && e.Buff.Mode != "add" && e.Buff.Mode != "mul" {
			return nil, fmt.Errorf("config file %s: stat '%s' has unknown buff mode '%s'", path, e.Key, e.Buff.Mode)
		}
		stats[e.Key] = e.Buff
	}

	addr := ":8080"
	if rc.Server != nil && rc.Server.Address != "" {
		addr = rc.Server.Address
	}

	return &LoadedConfig{
		Items:         items,
		Stats:         stats,
		ServerAddress: addr,
	}, nil
}

func validItemType(t game.ItemType) bool {
	for _, v := range game.ValidItemTypes {
		if v == t {
			return true
		}
	}
	return false
}

func validElement(e game.Element) bool {
	for _, v := range game.ValidElements {
		if v == e {
			return true
		}
	}
	return false
}
