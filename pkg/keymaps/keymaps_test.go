package keymaps

import "testing"

func TestBuildKeyMap_UsesDefaultsWhenNoOverrides(t *testing.T) {
	km := BuildKeyMap(nil)
	if got := km.AcceptItem.Keys(); len(got) != 1 || got[0] != "right" {
		t.Fatalf("AcceptItem keys = %v, want [right]", got)
	}
	if got := km.RunSync.Keys(); len(got) != 1 || got[0] != "f" {
		t.Fatalf("RunSync keys = %v, want [f]", got)
	}
}

func TestBuildKeyMap_AppliesOverridesAndMultipleKeys(t *testing.T) {
	km := BuildKeyMap(map[string]string{
		"AcceptItem": "right, l",
		"QuitApp":    "",
	})
	got := km.AcceptItem.Keys()
	if len(got) != 2 || got[0] != "right" || got[1] != "l" {
		t.Fatalf("AcceptItem keys = %v, want [right l]", got)
	}
	// Empty overrides fall back to the default.
	if got := km.QuitApp.Keys(); len(got) != 1 || got[0] != "q" {
		t.Fatalf("QuitApp keys = %v, want [q]", got)
	}
}

func TestGetDefaultKeyMappings_CoversEveryAction(t *testing.T) {
	mappings := GetDefaultKeyMappings()
	if len(mappings) != len(KeyDefinitions) {
		t.Fatalf("mappings cover %d actions, want %d", len(mappings), len(KeyDefinitions))
	}
	for action, def := range KeyDefinitions {
		if mappings[action] != def.DefaultKey {
			t.Fatalf("action %s maps to %q, want %q", action, mappings[action], def.DefaultKey)
		}
	}
}
