package shopper

import "fmt"

// Profile is the per-user account document stored remotely.
type Profile struct {
	UserID    string `json:"userId"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	AvatarURL string `json:"avatarUrl"`
}

func NewProfile(userID, name, email string) (*Profile, error) {
	if userID == "" {
		return nil, fmt.Errorf("user ID is required")
	}

	return &Profile{
		UserID: userID,
		Name:   name,
		Email:  email,
	}, nil
}
