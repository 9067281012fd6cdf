package sync

import (
	"github.com/frkandris/opinions/internal/models"
)

// Snapshot is one participant's local replica of a game's shared state,
// built by folding feed events in arrival order. Inserts and updates are
// both insert-or-replace by ID; deletes remove by ID. No event is trusted
// as an ordering authority beyond per-entity arrival order, so the
// snapshot never interprets events, it only folds them.
type Snapshot struct {
	// Game is the replicated game record; nil before the first game event
	// and again after the game is deleted
	Game *models.Game

	// Players is the replicated player set
	Players []*models.Player

	// Opinions is the replicated opinion set
	Opinions []*models.Opinion

	// Votes is the replicated vote set
	Votes []*models.Vote
}

// NewSnapshot returns an empty snapshot
func NewSnapshot() *Snapshot {
	return &Snapshot{}
}

// Apply folds one event into the snapshot. Deleting the game clears the
// whole snapshot, which sends the participant back to the entry screen.
func (s *Snapshot) Apply(event *Event) {
	if event == nil {
		return
	}

	switch event.Entity {
	case EntityGame:
		if event.Type == EventDelete {
			s.Game = nil
			s.Players = nil
			s.Opinions = nil
			s.Votes = nil
			return
		}
		if event.Game != nil {
			s.Game = event.Game
		}

	case EntityPlayer:
		if event.Type == EventDelete {
			s.Players = removePlayer(s.Players, event.EntityID)
			return
		}
		if event.Player != nil {
			s.Players = upsertPlayer(s.Players, event.Player)
		}

	case EntityOpinion:
		if event.Type == EventDelete {
			s.Opinions = removeOpinion(s.Opinions, event.EntityID)
			return
		}
		if event.Opinion != nil {
			s.Opinions = upsertOpinion(s.Opinions, event.Opinion)
		}

	case EntityVote:
		if event.Type == EventDelete {
			s.Votes = removeVote(s.Votes, event.EntityID)
			return
		}
		if event.Vote != nil {
			s.Votes = upsertVote(s.Votes, event.Vote)
		}
	}
}

func upsertPlayer(players []*models.Player, p *models.Player) []*models.Player {
	for i, existing := range players {
		if existing.ID == p.ID {
			players[i] = p
			return players
		}
	}
	return append(players, p)
}

func removePlayer(players []*models.Player, id string) []*models.Player {
	kept := players[:0]
	for _, p := range players {
		if p.ID != id {
			kept = append(kept, p)
		}
	}
	return kept
}

func upsertOpinion(opinions []*models.Opinion, o *models.Opinion) []*models.Opinion {
	for i, existing := range opinions {
		if existing.ID == o.ID {
			opinions[i] = o
			return opinions
		}
	}
	return append(opinions, o)
}

func removeOpinion(opinions []*models.Opinion, id string) []*models.Opinion {
	kept := opinions[:0]
	for _, o := range opinions {
		if o.ID != id {
			kept = append(kept, o)
		}
	}
	return kept
}

func upsertVote(votes []*models.Vote, v *models.Vote) []*models.Vote {
	for i, existing := range votes {
		if existing.ID == v.ID {
			votes[i] = v
			return votes
		}
	}
	return append(votes, v)
}

func removeVote(votes []*models.Vote, id string) []*models.Vote {
	kept := votes[:0]
	for _, v := range votes {
		if v.ID != id {
			kept = append(kept, v)
		}
	}
	return kept
}
