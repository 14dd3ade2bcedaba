package model

import "strings"

// Image represents a single container image as reported by the whale admin API.
// Size and Created arrive pre-formatted by the server.
type Image struct {
	Name         string `json:"name"`
	ShortName    string `json:"short_name"`
	ID           string `json:"id"`
	Size         string `json:"size"`
	Created      string `json:"created"`
	Architecture string `json:"architecture"`
}

// DisplayName returns the short name when available, otherwise the full name
func (im *Image) DisplayName() string {
	if im.ShortName != "" {
		return im.ShortName
	}
	return im.Name
}

// Tag returns the tag portion of the image name, or "latest" when untagged
func (im *Image) Tag() string {
	idx := strings.LastIndex(im.Name, ":")
	// A colon inside a registry host:port prefix is not a tag separator
	if idx < 0 || strings.Contains(im.Name[idx+1:], "/") {
		return "latest"
	}
	return im.Name[idx+1:]
}
