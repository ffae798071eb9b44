package sprouts

import (
	"encoding/json"
	"fmt"
	"os"
)

// SessionInfo is the output of the browser login flow: an opaque
// cookie set plus the shop id every API call is scoped to. the
// login flow itself lives outside this package, all we require is
// that the cookies are valid for shop.sprouts.com.
type SessionInfo struct {
	Cookies   map[string]string `json:"cookies"`
	ShopId    string            `json:"shop_id"`
	UserName  string            `json:"user_name,omitempty"`
	StoreName string            `json:"store_name,omitempty"`
}

// LoadSession reads a session file exported by the login flow.
func LoadSession(path string) (SessionInfo, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return SessionInfo{}, err
	}

	var session SessionInfo
	err = json.Unmarshal(raw, &session)
	if err != nil {
		return SessionInfo{}, fmt.Errorf("decode session file %s: %w", path, err)
	}
	if len(session.Cookies) == 0 {
		return SessionInfo{}, fmt.Errorf("session file %s has no cookies", path)
	}
	if session.ShopId == "" {
		return SessionInfo{}, fmt.Errorf("session file %s has no shop id", path)
	}
	return session, nil
}

// WriteUserInfo writes the display-only parts of the session the way
// the login flow reports them, for inclusion alongside run logs.
func (s SessionInfo) WriteUserInfo(path string) error {
	contents := fmt.Sprintf(
		"User Name: %s\nDefault Store: %s\n",
		s.UserName, s.StoreName,
	)
	return os.WriteFile(path, []byte(contents), 0600)
}
