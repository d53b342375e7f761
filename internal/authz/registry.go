package authz

import (
	"embed"
	"fmt"

	"gopkg.in/yaml.v3"
)

//go:embed config/*.yaml
var configFiles embed.FS

// Registry enumerates the resource/action pairs the gate recognizes. It is
// loaded once from the embedded YAML at startup and read-only afterwards.
type Registry struct {
	resources map[ResourceType]map[Action]struct{}
}

type registryFile struct {
	Resources []struct {
		Type    string   `yaml:"type"`
		Actions []string `yaml:"actions"`
	} `yaml:"resources"`
}

// NewRegistry loads the embedded action registry.
func NewRegistry() (*Registry, error) {
	data, err := configFiles.ReadFile("config/actions.yaml")
	if err != nil {
		return nil, fmt.Errorf("read action registry: %w", err)
	}

	var file registryFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("unmarshal action registry: %w", err)
	}
	if len(file.Resources) == 0 {
		return nil, fmt.Errorf("action registry defines no resources")
	}

	r := &Registry{resources: make(map[ResourceType]map[Action]struct{})}
	for _, res := range file.Resources {
		if res.Type == "" || len(res.Actions) == 0 {
			return nil, fmt.Errorf("action registry entry %q is incomplete", res.Type)
		}
		actions := make(map[Action]struct{}, len(res.Actions))
		for _, a := range res.Actions {
			actions[Action(a)] = struct{}{}
		}
		r.resources[ResourceType(res.Type)] = actions
	}
	return r, nil
}

// Knows reports whether the (resource, action) pair is registered.
func (r *Registry) Knows(resource ResourceType, action Action) bool {
	actions, ok := r.resources[resource]
	if !ok {
		return false
	}
	_, ok = actions[action]
	return ok
}

// ResourceTypes returns the registered resource types.
func (r *Registry) ResourceTypes() []ResourceType {
	types := make([]ResourceType, 0, len(r.resources))
	for t := range r.resources {
		types = append(types, t)
	}
	return types
}
