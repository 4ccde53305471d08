package rsvp

import (
	"github.com/mfdez/evermore/internal/model"
	"github.com/mfdez/evermore/internal/party"
)

// InviteCodeCookieName remembers the last successfully resolved code so a
// returning visitor lands on their party without retyping it
const InviteCodeCookieName = "invite_code"

type partyResolver interface {
	Resolve(explicitCode string, identity *party.Identity) (*party.Party, error)
}

type identityLinker interface {
	Link(subjectID string, emails []string, code string) (*model.Guest, error)
}

type submissionEngine interface {
	Submit(code string, decision party.Decision) (*party.Party, error)
}

type Controller struct {
	resolver partyResolver
	linker   identityLinker
	engine   submissionEngine
}

// NewController returns a new instance of the public RSVP controller
func NewController(resolver partyResolver, linker identityLinker, engine submissionEngine) *Controller {
	return &Controller{
		resolver: resolver,
		linker:   linker,
		engine:   engine,
	}
}
