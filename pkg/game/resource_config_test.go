package game

import (
	"testing"

	"gopkg.in/yaml.v3"
)

// TestResourceConfigUnmarshal tests the YAML layout of resources.yaml
func TestResourceConfigUnmarshal(t *testing.T) {
	var config ResourceConfig
	if err := yaml.Unmarshal([]byte(testResourcesYAML), &config); err != nil {
		t.Fatalf("Unmarshal failed: %v", err)
	}

	if config.Version != "1.0" {
		t.Errorf("Expected version '1.0', got '%s'", config.Version)
	}

	group, exists := config.Groups["card"]
	if !exists {
		t.Fatal("Expected group 'card' not found")
	}
	if len(group.Images) != 2 {
		t.Errorf("Expected 2 images, got %d", len(group.Images))
	}
	if len(group.Sounds) != 2 {
		t.Errorf("Expected 2 sounds, got %d", len(group.Sounds))
	}
	if group.Images[0].ID != "IMAGE_PHOTO" || group.Images[0].Path != "images/photo.png" {
		t.Errorf("Unexpected first image: %+v", group.Images[0])
	}
}

// TestBuildFullPath tests the buildFullPath helper function
func TestBuildFullPath(t *testing.T) {
	tests := []struct {
		basePath     string
		relativePath string
		expected     string
	}{
		{"assets", "images/photo.png", "assets/images/photo.png"},
		{"assets", "/images/photo.png", "assets/images/photo.png"},
		{"", "images/photo.png", "images/photo.png"},
		{"assets", "audio/song", "assets/audio/song"},
	}

	for _, test := range tests {
		result := buildFullPath(test.basePath, test.relativePath)
		if result != test.expected {
			t.Errorf("buildFullPath(%q, %q) = %q, expected %q",
				test.basePath, test.relativePath, result, test.expected)
		}
	}
}
