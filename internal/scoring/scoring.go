// Package scoring derives the results-phase views from the raw vote set.
// Both aggregations are recomputable at any time from the full entity
// snapshot; nothing keeps running totals.
package scoring

import (
	"sort"

	"github.com/frkandris/opinions/internal/models"
)

// PlayerScore is one row of the guess-accuracy scoreboard.
type PlayerScore struct {
	// PlayerID is the ID of the scored player
	PlayerID string `json:"player_id"`

	// PlayerName is the display name of the scored player
	PlayerName string `json:"player_name"`

	// CorrectGuesses is how many of the player's authorship guesses were right
	CorrectGuesses int `json:"correct_guesses"`

	// TotalGuesses is how many votes the player cast
	TotalGuesses int `json:"total_guesses"`
}

// OpinionTally is the agree/disagree count for one opinion.
type OpinionTally struct {
	// OpinionID is the ID of the tallied opinion
	OpinionID string `json:"opinion_id"`

	// AgreeCount is the number of votes agreeing with the opinion
	AgreeCount int `json:"agree_count"`

	// DisagreeCount is the number of votes disagreeing with the opinion
	DisagreeCount int `json:"disagree_count"`
}

// Scoreboard computes per-player guess accuracy over the full vote set.
// Rows are ordered by correct guesses descending; ties keep join order.
// Votes whose opinion cannot be found are skipped.
func Scoreboard(players []*models.Player, opinions []*models.Opinion, votes []*models.Vote) []*PlayerScore {
	authorByOpinion := make(map[string]string, len(opinions))
	for _, opinion := range opinions {
		authorByOpinion[opinion.ID] = opinion.PlayerID
	}

	byPlayer := make(map[string]*PlayerScore, len(players))
	rows := make([]*PlayerScore, 0, len(players))
	for _, player := range byJoinOrder(players) {
		row := &PlayerScore{
			PlayerID:   player.ID,
			PlayerName: player.Name,
		}
		byPlayer[player.ID] = row
		rows = append(rows, row)
	}

	for _, vote := range votes {
		authorID, ok := authorByOpinion[vote.OpinionID]
		if !ok {
			continue
		}
		row, ok := byPlayer[vote.VoterPlayerID]
		if !ok {
			continue
		}
		row.TotalGuesses++
		if vote.GuessedAuthorID == authorID {
			row.CorrectGuesses++
		}
	}

	sort.SliceStable(rows, func(i, j int) bool {
		return rows[i].CorrectGuesses > rows[j].CorrectGuesses
	})

	return rows
}

// Tallies computes the agree/disagree counts for every opinion, in
// submission order. Votes on unknown opinions are ignored.
func Tallies(opinions []*models.Opinion, votes []*models.Vote) []*OpinionTally {
	byOpinion := make(map[string]*OpinionTally, len(opinions))
	rows := make([]*OpinionTally, 0, len(opinions))

	ordered := make([]*models.Opinion, len(opinions))
	copy(ordered, opinions)
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].OrderIndex < ordered[j].OrderIndex
	})

	for _, opinion := range ordered {
		row := &OpinionTally{OpinionID: opinion.ID}
		byOpinion[opinion.ID] = row
		rows = append(rows, row)
	}

	for _, vote := range votes {
		row, ok := byOpinion[vote.OpinionID]
		if !ok {
			continue
		}
		if vote.Agree {
			row.AgreeCount++
		} else {
			row.DisagreeCount++
		}
	}

	return rows
}

// byJoinOrder sorts players by join time then ID. Host-first display order
// does not apply to the scoreboard.
func byJoinOrder(players []*models.Player) []*models.Player {
	sorted := make([]*models.Player, len(players))
	copy(sorted, players)
	sort.SliceStable(sorted, func(i, j int) bool {
		if !sorted[i].JoinedAt.Equal(sorted[j].JoinedAt) {
			return sorted[i].JoinedAt.Before(sorted[j].JoinedAt)
		}
		return sorted[i].ID < sorted[j].ID
	})
	return sorted
}
