package resource

// ValidateManifest exposes validateManifest for testing.
var ValidateManifest = validateManifest
