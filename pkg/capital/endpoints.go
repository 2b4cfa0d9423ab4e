package capital

// REST endpoints of the Capital.com API.
const (
	// Session
	EndpointSession = "/session"

	// Markets
	EndpointMarkets = "/markets"

	// Trading
	EndpointPositions     = "/api/v1/positions"
	EndpointConfirms      = "/api/v1/confirms/"
	EndpointWorkingOrders = "/api/v1/workingorders"
)

// Header names dictated by the remote API.
const (
	headerAPIKey        = "X-CAP-API-KEY"
	headerCST           = "CST"
	headerSecurityToken = "X-SECURITY-TOKEN"
)
