package version

// Overridden at build time with -ldflags "-X github.com/alex65536/breakdown/internal/version.Version=...".
var Version = "indev"
