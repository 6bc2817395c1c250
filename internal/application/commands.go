package application

import "github.com/3-14mpa/AITO/internal/domain"

type ReflectCommand struct {
	PersonaID domain.PersonaID
	SessionID string
	DaysAgo   int
}

type StartMeetingCommand struct {
	SessionID    string
	Task         string
	InitiatedBy  domain.PersonaID
	Participants []domain.PersonaID
}
