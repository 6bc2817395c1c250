package domain

import (
	"fmt"
	"strings"
)

type MeetingStep string

const (
	StepSelectSpeaker MeetingStep = "SELECT_SPEAKER"
	StepAgentTurn     MeetingStep = "AGENT_TURN"
	StepEnd           MeetingStep = "END"
)

const DefaultMaxRounds = 1

// MeetingState is the minutes of one moderated meeting. It is owned by a
// single goroutine for the whole run and is not safe for concurrent use.
type MeetingState struct {
	MeetingID       string
	SessionID       string
	TaskDescription string
	Participants    []PersonaID
	Messages        []Message
	CurrentRound    int
	NextSpeaker     PersonaID
}

func NewMeetingState(meetingID, sessionID, task string, participants []PersonaID, seed Message) (MeetingState, error) {
	if strings.TrimSpace(task) == "" {
		return MeetingState{}, fmt.Errorf("task description is required")
	}
	if len(participants) == 0 {
		return MeetingState{}, fmt.Errorf("at least one participant is required")
	}

	seen := make(map[PersonaID]struct{}, len(participants))
	for _, id := range participants {
		if _, ok := seen[id]; ok {
			return MeetingState{}, fmt.Errorf("participant %s listed twice", id)
		}
		seen[id] = struct{}{}
	}

	return MeetingState{
		MeetingID:       meetingID,
		SessionID:       sessionID,
		TaskDescription: task,
		Participants:    append([]PersonaID(nil), participants...),
		Messages:        []Message{seed},
	}, nil
}

func (s MeetingState) IsParticipant(id PersonaID) bool {
	for _, participant := range s.Participants {
		if participant == id {
			return true
		}
	}
	return false
}

// ParticipantMessageCount counts messages written by participants. The
// seed at index 0 is never a turn, even when the initiator participates.
// Moderator messages are not turns either.
func (s MeetingState) ParticipantMessageCount() int {
	if len(s.Messages) == 0 {
		return 0
	}
	count := 0
	for _, msg := range s.Messages[1:] {
		if s.IsParticipant(msg.Speaker) {
			count++
		}
	}
	return count
}

// SelectSpeaker applies the round-robin rule and returns the next step.
func (s *MeetingState) SelectSpeaker(maxRounds int) MeetingStep {
	if maxRounds <= 0 {
		maxRounds = DefaultMaxRounds
	}

	count := s.ParticipantMessageCount()
	s.CurrentRound = count/len(s.Participants) + 1
	if s.CurrentRound > maxRounds {
		s.NextSpeaker = ""
		return StepEnd
	}

	s.NextSpeaker = s.Participants[count%len(s.Participants)]
	return StepAgentTurn
}

func (s *MeetingState) Append(messages ...Message) {
	s.Messages = append(s.Messages, messages...)
}
