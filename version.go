package morph

// Version is the library version, overridable at build time via
// -ldflags "-X github.com/oxblood/morph.Version=...".
var Version = "0.1.0"
