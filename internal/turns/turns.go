// Package turns holds the pure turn-keeping rules of the opinions game:
// whose turn it is, which opinion is up, and what happens to the game
// pointers when a vote lands. Nothing here touches storage; callers pass
// in the entity snapshot they already hold.
package turns

import (
	"sort"

	"github.com/frkandris/opinions/internal/models"
)

// Mode selects how voting turns are taken.
type Mode string

const (
	// ModeConcurrent is the multi-device variant: every player votes on the
	// same current opinion at once, and the voter pointer is informational.
	ModeConcurrent Mode = "concurrent"

	// ModeSharedDevice is the pass-the-device variant: one device moves
	// between players and the voter pointer tracks whose turn it is.
	ModeSharedDevice Mode = "shared_device"
)

// SortPlayers returns the players in the stable display order: host first,
// then by join time, then by ID so equal timestamps stay deterministic.
func SortPlayers(players []*models.Player) []*models.Player {
	sorted := make([]*models.Player, len(players))
	copy(sorted, players)
	sort.SliceStable(sorted, func(i, j int) bool {
		if sorted[i].IsHost != sorted[j].IsHost {
			return sorted[i].IsHost
		}
		if !sorted[i].JoinedAt.Equal(sorted[j].JoinedAt) {
			return sorted[i].JoinedAt.Before(sorted[j].JoinedAt)
		}
		return sorted[i].ID < sorted[j].ID
	})
	return sorted
}

// SortOpinions returns the opinions in submission order. Opinions that
// raced to the same order index fall back to submission time, then ID.
func SortOpinions(opinions []*models.Opinion) []*models.Opinion {
	sorted := make([]*models.Opinion, len(opinions))
	copy(sorted, opinions)
	sort.SliceStable(sorted, func(i, j int) bool {
		if sorted[i].OrderIndex != sorted[j].OrderIndex {
			return sorted[i].OrderIndex < sorted[j].OrderIndex
		}
		if !sorted[i].CreatedAt.Equal(sorted[j].CreatedAt) {
			return sorted[i].CreatedAt.Before(sorted[j].CreatedAt)
		}
		return sorted[i].ID < sorted[j].ID
	})
	return sorted
}

// CurrentOpinion returns the opinion the game's pointer refers to, or nil
// when the pointer has run off the end of the sequence.
func CurrentOpinion(game *models.Game, opinions []*models.Opinion) *models.Opinion {
	sorted := SortOpinions(opinions)
	if game.CurrentOpinionIndex < 0 || game.CurrentOpinionIndex >= len(sorted) {
		return nil
	}
	return sorted[game.CurrentOpinionIndex]
}

// CurrentVoter returns the player the game's voter pointer refers to in the
// host-first order, or nil when the pointer is out of bounds.
func CurrentVoter(game *models.Game, players []*models.Player) *models.Player {
	sorted := SortPlayers(players)
	if game.CurrentVoterIndex < 0 || game.CurrentVoterIndex >= len(sorted) {
		return nil
	}
	return sorted[game.CurrentVoterIndex]
}

// AllOpinionsSubmitted reports whether every player has submitted an
// opinion. False for an empty game.
func AllOpinionsSubmitted(players []*models.Player, opinions []*models.Opinion) bool {
	return len(players) > 0 && len(opinions) == len(players)
}

// ExpectedVotes is the number of votes that complete one opinion. Every
// player votes on every opinion, the author included.
func ExpectedVotes(players []*models.Player) int {
	return len(players)
}

// Advance describes the pointer and phase changes caused by a vote.
type Advance struct {
	// Changed reports whether the game record needs updating at all
	Changed bool

	// Phase is the phase the game should be in after the vote
	Phase models.GamePhase

	// OpinionIndex is the opinion pointer after the vote
	OpinionIndex int

	// VoterIndex is the voter pointer after the vote
	VoterIndex int
}

// AfterVote computes what happens to the game once a vote has been
// committed. voteCount is the number of votes now present on the current
// opinion, including the one just cast. When the count reaches
// expectedVotes the opinion pointer moves on, or the game enters results
// if the current opinion was the last. Below the threshold the concurrent
// mode leaves the game untouched, while shared-device play hands the
// device to the next voter.
func AfterVote(game *models.Game, opinionCount, voteCount, expectedVotes int, mode Mode) Advance {
	adv := Advance{
		Phase:        game.Phase,
		OpinionIndex: game.CurrentOpinionIndex,
		VoterIndex:   game.CurrentVoterIndex,
	}

	if voteCount < expectedVotes {
		if mode == ModeSharedDevice {
			adv.Changed = true
			adv.VoterIndex = game.CurrentVoterIndex + 1
		}
		return adv
	}

	adv.Changed = true
	if game.CurrentOpinionIndex+1 >= opinionCount {
		adv.Phase = models.GamePhaseResults
		return adv
	}

	adv.OpinionIndex = game.CurrentOpinionIndex + 1
	adv.VoterIndex = 0
	return adv
}
