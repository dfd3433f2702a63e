package keymaps

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
)

type KeyDefinition struct {
	DefaultKey string
	Help       string
}

var KeyDefinitions = map[string]KeyDefinition{
	"ShowHelp":         {"ctrl+b", "show/hide commands"},
	"QuitApp":          {"q", "quit"},
	"ViewSchedule":     {"1", "timeline view"},
	"ViewDecide":       {"2", "decide view"},
	"ViewBacklog":      {"3", "backlog view"},
	"AcceptItem":       {"right", "accept (swipe right)"},
	"RejectItem":       {"left", "reject (swipe left)"},
	"AddItem":          {"a", "add activity"},
	"EditItem":         {"e", "edit activity"},
	"DeleteItem":       {"d", "delete activity"},
	"RunSync":          {"f", "frictionless sync"},
	"SwitchUser":       {"u", "switch participant"},
	"ToggleEnergyMode": {"m", "toggle busy/light mode"},
}

type KeyMap struct {
	ShowHelp         key.Binding
	QuitApp          key.Binding
	ViewSchedule     key.Binding
	ViewDecide       key.Binding
	ViewBacklog      key.Binding
	AcceptItem       key.Binding
	RejectItem       key.Binding
	AddItem          key.Binding
	EditItem         key.Binding
	DeleteItem       key.Binding
	RunSync          key.Binding
	SwitchUser       key.Binding
	ToggleEnergyMode key.Binding
}

func BuildKeyMap(configOverrides map[string]string) KeyMap {
	km := KeyMap{}
	for action, def := range KeyDefinitions {
		keyStr := def.DefaultKey
		if override, exists := configOverrides[action]; exists && override != "" {
			keyStr = override
		}

		switch action {
		case "ShowHelp":
			km.ShowHelp = parseKeyBinding(keyStr, def.DefaultKey, def.Help)
		case "QuitApp":
			km.QuitApp = parseKeyBinding(keyStr, def.DefaultKey, def.Help)
		case "ViewSchedule":
			km.ViewSchedule = parseKeyBinding(keyStr, def.DefaultKey, def.Help)
		case "ViewDecide":
			km.ViewDecide = parseKeyBinding(keyStr, def.DefaultKey, def.Help)
		case "ViewBacklog":
			km.ViewBacklog = parseKeyBinding(keyStr, def.DefaultKey, def.Help)
		case "AcceptItem":
			km.AcceptItem = parseKeyBinding(keyStr, def.DefaultKey, def.Help)
		case "RejectItem":
			km.RejectItem = parseKeyBinding(keyStr, def.DefaultKey, def.Help)
		case "AddItem":
			km.AddItem = parseKeyBinding(keyStr, def.DefaultKey, def.Help)
		case "EditItem":
			km.EditItem = parseKeyBinding(keyStr, def.DefaultKey, def.Help)
		case "DeleteItem":
			km.DeleteItem = parseKeyBinding(keyStr, def.DefaultKey, def.Help)
		case "RunSync":
			km.RunSync = parseKeyBinding(keyStr, def.DefaultKey, def.Help)
		case "SwitchUser":
			km.SwitchUser = parseKeyBinding(keyStr, def.DefaultKey, def.Help)
		case "ToggleEnergyMode":
			km.ToggleEnergyMode = parseKeyBinding(keyStr, def.DefaultKey, def.Help)
		}
	}
	return km
}

func parseKeyBinding(keyStr, defaultKey, helpText string) key.Binding {
	if keyStr == "" {
		keyStr = defaultKey
	}

	// Handle multiple keys separated by commas
	keys := strings.Split(keyStr, ",")
	for i, k := range keys {
		keys[i] = strings.TrimSpace(k)
	}

	return key.NewBinding(
		key.WithKeys(keys...),
		key.WithHelp(keys[0], helpText),
	)
}

// GetDefaultKeyMappings returns the default key mappings for configuration
func GetDefaultKeyMappings() map[string]string {
	keyMappings := make(map[string]string)
	for action, def := range KeyDefinitions {
		keyMappings[action] = def.DefaultKey
	}
	return keyMappings
}
