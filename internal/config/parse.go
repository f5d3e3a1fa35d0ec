package config

import (
	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// parseTOML decodes a TOML document, recovering item order from the
// decoder metadata (Go maps forget it, the engine needs it).
func parseTOML(data []byte) (*document, error) {
	var doc document
	md, err := toml.Decode(string(data), &doc)
	if err != nil {
		return nil, err
	}
	for _, key := range md.Keys() {
		if len(key) != 2 {
			continue
		}
		switch key[0] {
		case "income":
			doc.incomeOrder = append(doc.incomeOrder, key[1])
		case "expenses":
			doc.expenseOrder = append(doc.expenseOrder, key[1])
		}
	}
	return &doc, nil
}

// parseYAML decodes a YAML document, walking the node tree for item
// order since map decoding discards it.
func parseYAML(data []byte) (*document, error) {
	var doc document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, err
	}

	var root yaml.Node
	if err := yaml.Unmarshal(data, &root); err != nil {
		return nil, err
	}
	if len(root.Content) == 0 || root.Content[0].Kind != yaml.MappingNode {
		return &doc, nil
	}
	top := root.Content[0]
	for i := 0; i+1 < len(top.Content); i += 2 {
		key, val := top.Content[i], top.Content[i+1]
		if val.Kind != yaml.MappingNode {
			continue
		}
		switch key.Value {
		case "income":
			doc.incomeOrder = sectionKeys(val)
		case "expenses":
			doc.expenseOrder = sectionKeys(val)
		}
	}
	return &doc, nil
}

// sectionKeys lists a mapping node's keys in document order.
func sectionKeys(sec *yaml.Node) []string {
	keys := make([]string, 0, len(sec.Content)/2)
	for i := 0; i+1 < len(sec.Content); i += 2 {
		keys = append(keys, sec.Content[i].Value)
	}
	return keys
}
