package handler

// Export for testing
type SiteLimitResponse = siteLimitResponse
type DeleteAllResponse = deleteAllResponse
type TabEventResponse = tabEventResponse
type TabStatsResponse = tabStatsResponse

var NewSiteLimitHandlerHelper = NewSiteLimitHandler
var NewTabEventHandlerHelper = NewTabEventHandler

var WriteServiceError = writeServiceError
var FormatTimePtr = formatTimePtr
