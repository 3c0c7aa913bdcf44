package pkg

import "testing"

func TestGetLastNode(t *testing.T) {
	tests := []struct {
		path     string
		expected string
	}{
		{"a/b/c.txt", "c.txt"},
		{"/abs/path", "path"},
		{"bare", "bare"},
		{"trailing/", ""},
	}

	for _, tt := range tests {
		if got := GetLastNode(tt.path); got != tt.expected {
			t.Errorf("GetLastNode(%q) = %q, want %q", tt.path, got, tt.expected)
		}
	}
}

func TestGetContainingDir(t *testing.T) {
	tests := []struct {
		path     string
		expected string
	}{
		{"a/b/c.txt", "a/b"},
		{"/root.cfg", "/"},
		{"bare", ""},
	}

	for _, tt := range tests {
		if got := GetContainingDir(tt.path); got != tt.expected {
			t.Errorf("GetContainingDir(%q) = %q, want %q", tt.path, got, tt.expected)
		}
	}
}

func TestCombine(t *testing.T) {
	tests := []struct {
		base     string
		node     string
		expected string
	}{
		{"a", "b", "a/b"},
		{"a/", "b", "a/b"},
		{"a", "/b", "a/b"},
		{"a/", "/b", "a/b"},
		{"", "b", "b"},
		{"a", "", "a"},
	}

	for _, tt := range tests {
		if got := Combine(tt.base, tt.node); got != tt.expected {
			t.Errorf("Combine(%q, %q) = %q, want %q", tt.base, tt.node, got, tt.expected)
		}
	}
}

func TestUnquote(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{`"quoted"`, "quoted"},
		{"'quoted'", "quoted"},
		{"plain", "plain"},
		{`"mismatched'`, `"mismatched'`},
		{`"`, `"`},
		{`""`, ""},
	}

	for _, tt := range tests {
		if got := Unquote(tt.input); got != tt.expected {
			t.Errorf("Unquote(%q) = %q, want %q", tt.input, got, tt.expected)
		}
	}
}

func TestGetIdentifierSafeName(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"simple", "simple"},
		{"my-app", "my_app"},
		{"a.b c", "a_b_c"},
		{"ok_2", "ok_2"},
	}

	for _, tt := range tests {
		if got := GetIdentifierSafeName(tt.input); got != tt.expected {
			t.Errorf("GetIdentifierSafeName(%q) = %q, want %q", tt.input, got, tt.expected)
		}
	}
}

func TestRemoveSuffix(t *testing.T) {
	if got := RemoveSuffix("myApp.adef", ".adef"); got != "myApp" {
		t.Errorf("RemoveSuffix = %q, want %q", got, "myApp")
	}

	if got := RemoveSuffix("myApp", ".adef"); got != "myApp" {
		t.Errorf("RemoveSuffix without suffix = %q, want %q", got, "myApp")
	}
}

func TestIsAbsolute(t *testing.T) {
	if !IsAbsolute("/etc") {
		t.Error("IsAbsolute(\"/etc\") = false")
	}

	if IsAbsolute("etc") {
		t.Error("IsAbsolute(\"etc\") = true")
	}
}
