package version

// Version is overridden at build time with -ldflags "-X agc/internal/version.Version=...".
var Version = "1.0.0"
