package auth

import "errors"

var ErrAccessDenied = errors.New("access denied")

// Gate guards administrator-only operations. The administrator identity is
// fixed at construction; zero means no one is an administrator.
type Gate struct {
	adminID int64
}

func NewGate(adminID int64) *Gate {
	return &Gate{adminID: adminID}
}

func (g *Gate) AdminID() int64 {
	if g == nil {
		return 0
	}
	return g.adminID
}

func (g *Gate) IsAdmin(userID int64) bool {
	return g != nil && g.adminID != 0 && userID == g.adminID
}

func (g *Gate) Authorize(userID int64) error {
	if !g.IsAdmin(userID) {
		return ErrAccessDenied
	}
	return nil
}
