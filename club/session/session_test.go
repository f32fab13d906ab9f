package session

import (
	"context"
	"testing"

	"github.com/sundayfc/club-service/shared/models"
)

func TestFromUser(t *testing.T) {
	user := &models.User{OpenID: "o1", Role: models.RoleAdmin, Name: "Zhao", Avatar: "cloud://a.png"}
	sess := FromUser(user)
	if sess.OpenID != "o1" || sess.Role != models.RoleAdmin || sess.Name != "Zhao" || sess.Avatar != "cloud://a.png" {
		t.Errorf("unexpected session from user: %+v", sess)
	}
	if !sess.IsAdmin() {
		t.Error("admin user should produce an admin session")
	}

	regular := FromUser(&models.User{OpenID: "o2", Role: models.RoleUser})
	if regular.IsAdmin() {
		t.Error("regular user should not produce an admin session")
	}
}

func TestContextRoundTrip(t *testing.T) {
	sess := &Session{OpenID: "o1", Role: models.RoleUser}
	ctx := NewContext(context.Background(), sess)

	got, ok := FromContext(ctx)
	if !ok || got != sess {
		t.Error("session should round-trip through the context")
	}

	if _, ok := FromContext(context.Background()); ok {
		t.Error("bare context should carry no session")
	}
}
