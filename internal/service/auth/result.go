package auth

import "github.com/bhagyarekha373/Reuse-Hub/internal/domain"

// AuthResult is returned by SignUp, SignIn and Refresh.
type AuthResult struct {
	AccessToken  string
	RefreshToken string // raw token, NOT hash
	ExpiresIn    int    // access token lifetime in seconds
	User         *domain.User
}
