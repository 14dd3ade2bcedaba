package model

import "fmt"

// Container represents a running challenge container owned by a user
type Container struct {
	ID          int    `json:"id"`
	UserID      int    `json:"user_id"`
	ChallengeID int    `json:"challenge_id"`
	StartTime   string `json:"start_time"`
	RenewCount  int    `json:"renew_count"`
	Status      int    `json:"status"`
	UUID        string `json:"uuid"`
	Port        int    `json:"port"`
}

// ContainerPage is one page of alive containers plus paging totals
type ContainerPage struct {
	Containers []*Container `json:"containers"`
	Total      int          `json:"total"`
	Pages      int          `json:"pages"`
	PageStart  int          `json:"page_start"`
}

// DisplayName returns a short human-readable identifier for list rows
func (c *Container) DisplayName() string {
	return fmt.Sprintf("user %d · challenge %d", c.UserID, c.ChallengeID)
}

// ShortUUID returns the first 8 characters of the container UUID
func (c *Container) ShortUUID() string {
	if len(c.UUID) <= 8 {
		return c.UUID
	}
	return c.UUID[:8]
}
