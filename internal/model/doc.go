package model

// Package model defines domain data structures used across the app: container
// images, challenge containers, and widget fetch states. Structures mirror the
// ctfd-whale admin API payloads and are designed for direct rendering in the UI.
