package user

// Principal identifies the authenticated club member on a request.
type Principal struct {
	UserID        string
	Email         string
	DefaultTeamID string
}
