package api

// Package api implements the HTTP client for the ctfd-whale admin plugin API.
// It handles the JSON response envelope, access-token auth, client-side list
// caching, and in-flight request coalescing. The transport is injectable so a
// host application can supply its own wrapped HTTP client.
