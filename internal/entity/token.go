package entity

// LoginResult bundles everything a successful login responds with.
type LoginResult struct {
	Token  string
	User   User
	Grants []Grant
}
