package model

import "testing"

func TestImageDisplayName(t *testing.T) {
	withShort := &Image{Name: "registry.local/whale/alpine:3.20", ShortName: "alpine:3.20"}
	if got := withShort.DisplayName(); got != "alpine:3.20" {
		t.Errorf("Expected short name, got %q", got)
	}

	full := &Image{Name: "whale/ubuntu:22.04"}
	if got := full.DisplayName(); got != "whale/ubuntu:22.04" {
		t.Errorf("Expected full name fallback, got %q", got)
	}
}

func TestImageTag(t *testing.T) {
	tests := []struct {
		name     string
		image    string
		expected string
	}{
		{"tagged", "whale/alpine:3.20", "3.20"},
		{"untagged", "whale/alpine", "latest"},
		{"registry port without tag", "registry.local:5000/whale/alpine", "latest"},
		{"registry port with tag", "registry.local:5000/whale/alpine:edge", "edge"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			im := &Image{Name: tt.image}
			if got := im.Tag(); got != tt.expected {
				t.Errorf("Tag(%q): expected %q, got %q", tt.image, tt.expected, got)
			}
		})
	}
}

func TestContainerDisplayName(t *testing.T) {
	c := &Container{UserID: 7, ChallengeID: 42}
	if got := c.DisplayName(); got != "user 7 · challenge 42" {
		t.Errorf("Unexpected display name: %q", got)
	}
}

func TestContainerShortUUID(t *testing.T) {
	c := &Container{UUID: "a1b2c3d4-e5f6-7890-abcd-ef1234567890"}
	if got := c.ShortUUID(); got != "a1b2c3d4" {
		t.Errorf("Expected first 8 characters, got %q", got)
	}

	short := &Container{UUID: "ab12"}
	if got := short.ShortUUID(); got != "ab12" {
		t.Errorf("Short UUIDs pass through unchanged, got %q", got)
	}
}
