package service

// Export for testing
var Rollover = rollover
var ValidateLimit = validateLimit
var ToSiteLimitDTO = toSiteLimitDTO
