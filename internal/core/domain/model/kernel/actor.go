package kernel

import (
	"strings"

	"storefront/internal/pkg/errs"
	"storefront/internal/pkg/guard"
)

var ErrActorIsNotConstructed = errs.NewValueIsRequiredError("Actor must be created via NewActor or SystemActor")

const systemActorID = "system"

// Actor is the user on whose behalf a change is recorded in an audit trail.
type Actor struct {
	userID string
	email  string
	name   string
	guard  guard.ConstructorGuard
}

func NewActor(userID, email, name string) (Actor, error) {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return Actor{}, errs.NewValueIsRequiredError("actor user id")
	}
	return Actor{
		userID: userID,
		email:  strings.TrimSpace(email),
		name:   strings.TrimSpace(name),
		guard:  guard.NewConstructorGuard(),
	}, nil
}

// SystemActor is used for changes made by background jobs and the admin CLI.
func SystemActor() Actor {
	return Actor{
		userID: systemActorID,
		name:   "System",
		guard:  guard.NewConstructorGuard(),
	}
}

func (a Actor) UserID() string { return a.userID }
func (a Actor) Email() string  { return a.email }
func (a Actor) Name() string   { return a.name }

func (a Actor) Validate() error {
	return a.guard.Validate(ErrActorIsNotConstructed)
}
