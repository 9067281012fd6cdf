package scoring

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/frkandris/opinions/internal/models"
)

var testBase = time.Date(2025, 6, 1, 18, 0, 0, 0, time.UTC)

// Three players, each with one opinion. B guesses S_A correctly, C gets it
// wrong. Mirrors the worked scoring example from the game rules.
func testFixture() ([]*models.Player, []*models.Opinion, []*models.Vote) {
	players := []*models.Player{
		{ID: "A", Name: "Anna", IsHost: true, JoinedAt: testBase},
		{ID: "B", Name: "Bela", JoinedAt: testBase.Add(time.Minute)},
		{ID: "C", Name: "Csilla", JoinedAt: testBase.Add(2 * time.Minute)},
	}
	opinions := []*models.Opinion{
		{ID: "S_A", PlayerID: "A", OrderIndex: 0, CreatedAt: testBase},
		{ID: "S_B", PlayerID: "B", OrderIndex: 1, CreatedAt: testBase.Add(time.Second)},
		{ID: "S_C", PlayerID: "C", OrderIndex: 2, CreatedAt: testBase.Add(2 * time.Second)},
	}
	votes := []*models.Vote{
		{ID: "v1", OpinionID: "S_A", VoterPlayerID: "B", Agree: true, GuessedAuthorID: "A"},
		{ID: "v2", OpinionID: "S_A", VoterPlayerID: "C", Agree: true, GuessedAuthorID: "B"},
	}
	return players, opinions, votes
}

func TestScoreboard_GuessAccuracy(t *testing.T) {
	players, opinions, votes := testFixture()

	rows := Scoreboard(players, opinions, votes)
	require.Len(t, rows, 3)

	byID := make(map[string]*PlayerScore)
	for _, row := range rows {
		byID[row.PlayerID] = row
	}

	assert.Equal(t, 1, byID["B"].CorrectGuesses)
	assert.Equal(t, 1, byID["B"].TotalGuesses)
	assert.Equal(t, 0, byID["C"].CorrectGuesses)
	assert.Equal(t, 1, byID["C"].TotalGuesses)
	assert.Equal(t, 0, byID["A"].CorrectGuesses)
	assert.Equal(t, 0, byID["A"].TotalGuesses)
}

func TestScoreboard_RankingAndTieBreak(t *testing.T) {
	players, opinions, votes := testFixture()

	rows := Scoreboard(players, opinions, votes)

	// B leads on correct guesses; A and C are tied at zero and keep their
	// join order.
	assert.Equal(t, "B", rows[0].PlayerID)
	assert.Equal(t, "A", rows[1].PlayerID)
	assert.Equal(t, "C", rows[2].PlayerID)
}

func TestScoreboard_SkipsVoteWithMissingOpinion(t *testing.T) {
	players, opinions, votes := testFixture()
	votes = append(votes, &models.Vote{
		ID: "orphan", OpinionID: "gone", VoterPlayerID: "B", GuessedAuthorID: "A",
	})

	rows := Scoreboard(players, opinions, votes)

	for _, row := range rows {
		if row.PlayerID == "B" {
			assert.Equal(t, 1, row.TotalGuesses)
		}
	}
}

func TestScoreboard_SkipsVoteFromUnknownPlayer(t *testing.T) {
	players, opinions, votes := testFixture()
	votes = append(votes, &models.Vote{
		ID: "ghost", OpinionID: "S_A", VoterPlayerID: "left-the-game", GuessedAuthorID: "A",
	})

	rows := Scoreboard(players, opinions, votes)

	require.Len(t, rows, 3)
	total := 0
	for _, row := range rows {
		total += row.TotalGuesses
	}
	assert.Equal(t, 2, total)
}

func TestTallies_AgreeDisagreeCounts(t *testing.T) {
	_, opinions, _ := testFixture()
	votes := []*models.Vote{
		{ID: "v1", OpinionID: "S_A", VoterPlayerID: "A", Agree: true},
		{ID: "v2", OpinionID: "S_A", VoterPlayerID: "B", Agree: true},
		{ID: "v3", OpinionID: "S_A", VoterPlayerID: "C", Agree: false},
	}

	rows := Tallies(opinions, votes)
	require.Len(t, rows, 3)

	assert.Equal(t, "S_A", rows[0].OpinionID)
	assert.Equal(t, 2, rows[0].AgreeCount)
	assert.Equal(t, 1, rows[0].DisagreeCount)
	assert.Equal(t, 0, rows[1].AgreeCount)
	assert.Equal(t, 0, rows[1].DisagreeCount)
}

func TestTallies_SubmissionOrder(t *testing.T) {
	opinions := []*models.Opinion{
		{ID: "second", OrderIndex: 1},
		{ID: "first", OrderIndex: 0},
	}

	rows := Tallies(opinions, nil)

	require.Len(t, rows, 2)
	assert.Equal(t, "first", rows[0].OpinionID)
	assert.Equal(t, "second", rows[1].OpinionID)
}

func TestTallies_IgnoresVoteOnUnknownOpinion(t *testing.T) {
	_, opinions, _ := testFixture()
	votes := []*models.Vote{
		{ID: "v1", OpinionID: "nope", VoterPlayerID: "A", Agree: true},
	}

	rows := Tallies(opinions, votes)

	for _, row := range rows {
		assert.Zero(t, row.AgreeCount)
		assert.Zero(t, row.DisagreeCount)
	}
}

func TestScoreboard_Recomputable(t *testing.T) {
	players, opinions, votes := testFixture()

	first := Scoreboard(players, opinions, votes)
	second := Scoreboard(players, opinions, votes)

	assert.Equal(t, first, second)
}
