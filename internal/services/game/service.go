package game

import (
	"context"
	"errors"
	"log"

	"github.com/frkandris/opinions/internal/common/clock"
	"github.com/frkandris/opinions/internal/common/roomcode"
	"github.com/frkandris/opinions/internal/common/uuid"
	"github.com/frkandris/opinions/internal/models"
	gameRepo "github.com/frkandris/opinions/internal/repositories/game"
	opinionRepo "github.com/frkandris/opinions/internal/repositories/opinion"
	playerRepo "github.com/frkandris/opinions/internal/repositories/player"
	voteRepo "github.com/frkandris/opinions/internal/repositories/vote"
	"github.com/frkandris/opinions/internal/scoring"
	"github.com/frkandris/opinions/internal/services/sync"
	"github.com/frkandris/opinions/internal/turns"
)

// service implements the Service interface
type service struct {
	turnMode     turns.Mode
	maxPlayers   int
	codeAttempts int

	gameRepo    gameRepo.Repository
	playerRepo  playerRepo.Repository
	opinionRepo opinionRepo.Repository
	voteRepo    voteRepo.Repository

	publisher sync.Publisher
	clock     clock.Clock
	uuider    uuid.UUID
	codeGen   roomcode.Generator
}

// New creates a new game service
func New(cfg *Config) (*service, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}

	if cfg.GameRepo == nil {
		return nil, ErrNilGameRepo
	}

	if cfg.PlayerRepo == nil {
		return nil, ErrNilPlayerRepo
	}

	if cfg.OpinionRepo == nil {
		return nil, ErrNilOpinionRepo
	}

	if cfg.VoteRepo == nil {
		return nil, ErrNilVoteRepo
	}

	if cfg.Publisher == nil {
		return nil, ErrNilPublisher
	}

	if cfg.Clock == nil {
		return nil, ErrNilClock
	}

	if cfg.UUIDGenerator == nil {
		return nil, ErrNilUUIDGenerator
	}

	if cfg.CodeGenerator == nil {
		return nil, ErrNilCodeGenerator
	}

	mode := cfg.TurnMode
	if mode == "" {
		mode = turns.ModeConcurrent
	}

	maxPlayers := cfg.MaxPlayers
	if maxPlayers <= 0 {
		maxPlayers = DefaultMaxPlayers
	}

	codeAttempts := cfg.CodeAttempts
	if codeAttempts <= 0 {
		codeAttempts = DefaultCodeAttempts
	}

	return &service{
		turnMode:     mode,
		maxPlayers:   maxPlayers,
		codeAttempts: codeAttempts,
		gameRepo:     cfg.GameRepo,
		playerRepo:   cfg.PlayerRepo,
		opinionRepo:  cfg.OpinionRepo,
		voteRepo:     cfg.VoteRepo,
		publisher:    cfg.Publisher,
		clock:        cfg.Clock,
		uuider:       cfg.UUIDGenerator,
		codeGen:      cfg.CodeGenerator,
	}, nil
}

// CreateGame creates a new game in the lobby phase with the caller as host
func (s *service) CreateGame(ctx context.Context, input *CreateGameInput) (*CreateGameOutput, error) {
	hostName := models.NormalizeName(input.HostName)
	if hostName == "" {
		return nil, ErrEmptyName
	}

	now := s.clock.Now()
	game := &models.Game{
		ID:        s.uuider.NewUUID(),
		Phase:     models.GamePhaseLobby,
		CreatedAt: now,
		UpdatedAt: now,
	}

	// The code generator does not guarantee uniqueness; the store rejects
	// a taken code and we retry with a fresh one.
	created := false
	for attempt := 0; attempt < s.codeAttempts; attempt++ {
		game.Code = s.codeGen.Generate()

		err := s.gameRepo.CreateGame(ctx, &gameRepo.CreateGameInput{Game: game})
		if err == nil {
			created = true
			break
		}
		if !errors.Is(err, gameRepo.ErrCodeTaken) {
			return nil, err
		}
	}
	if !created {
		return nil, ErrCodeSpaceExhausted
	}

	host := &models.Player{
		ID:       s.uuider.NewUUID(),
		GameID:   game.ID,
		Name:     hostName,
		IsHost:   true,
		JoinedAt: now,
	}

	if err := s.playerRepo.CreatePlayer(ctx, &playerRepo.CreatePlayerInput{Player: host}); err != nil {
		// Without its host the game is unreachable, so take it back down.
		if delErr := s.gameRepo.DeleteGame(ctx, &gameRepo.DeleteGameInput{GameID: game.ID}); delErr != nil {
			log.Printf("game: failed to clean up game %s after host create error: %v", game.ID, delErr)
		}
		return nil, err
	}

	s.publish(ctx, gameEvent(sync.EventInsert, game))
	s.publish(ctx, playerEvent(sync.EventInsert, host))

	return &CreateGameOutput{
		Game: game,
		Host: host,
	}, nil
}

// JoinGame adds a player to a lobby-phase game, found by join code
func (s *service) JoinGame(ctx context.Context, input *JoinGameInput) (*JoinGameOutput, error) {
	name := models.NormalizeName(input.PlayerName)
	if name == "" {
		return nil, ErrEmptyName
	}

	game, err := s.gameRepo.GetGameByCode(ctx, &gameRepo.GetGameByCodeInput{Code: input.Code})
	if err != nil {
		if errors.Is(err, gameRepo.ErrGameNotFound) {
			return nil, ErrGameNotFound
		}
		return nil, err
	}

	if !game.Phase.IsLobby() {
		return nil, ErrGameAlreadyStarted
	}

	playersOut, err := s.playerRepo.GetPlayersInGame(ctx, &playerRepo.GetPlayersInGameInput{GameID: game.ID})
	if err != nil {
		return nil, err
	}

	if len(playersOut.Players) >= s.maxPlayers {
		return nil, ErrGameFull
	}

	player := &models.Player{
		ID:       s.uuider.NewUUID(),
		GameID:   game.ID,
		Name:     name,
		JoinedAt: s.clock.Now(),
	}

	if err := s.playerRepo.CreatePlayer(ctx, &playerRepo.CreatePlayerInput{Player: player}); err != nil {
		if errors.Is(err, playerRepo.ErrNameTaken) {
			return nil, ErrNameTaken
		}
		return nil, err
	}

	s.publish(ctx, playerEvent(sync.EventInsert, player))

	return &JoinGameOutput{
		Game:   game,
		Player: player,
	}, nil
}

// SubmitOpinion records a player's anonymous statement
func (s *service) SubmitOpinion(ctx context.Context, input *SubmitOpinionInput) (*SubmitOpinionOutput, error) {
	text := models.NormalizeOpinionText(input.Text)
	if text == "" {
		return nil, ErrEmptyOpinion
	}

	game, err := s.getGame(ctx, input.GameID)
	if err != nil {
		return nil, err
	}

	if game.Phase != models.GamePhaseOpinions {
		return nil, ErrInvalidGameState
	}

	if _, err := s.getPlayerInGame(ctx, input.PlayerID, game.ID); err != nil {
		return nil, err
	}

	out, err := s.opinionRepo.CreateOpinion(ctx, &opinionRepo.CreateOpinionInput{
		Opinion: &models.Opinion{
			ID:        s.uuider.NewUUID(),
			GameID:    game.ID,
			PlayerID:  input.PlayerID,
			Text:      text,
			CreatedAt: s.clock.Now(),
		},
	})
	if err != nil {
		if errors.Is(err, opinionRepo.ErrAlreadySubmitted) {
			return nil, ErrAlreadySubmitted
		}
		return nil, err
	}

	// The feed reaches every participant, so the event carries a redacted
	// copy; the text waits for voting and authorship for results, both
	// served through the state view.
	s.publish(ctx, opinionEvent(sync.EventInsert, redactOpinion(out.Opinion)))

	return &SubmitOpinionOutput{
		Opinion: out.Opinion,
	}, nil
}

// SubmitVote records a vote on the current opinion and moves the game
// forward when the opinion is fully voted
func (s *service) SubmitVote(ctx context.Context, input *SubmitVoteInput) (*SubmitVoteOutput, error) {
	game, err := s.getGame(ctx, input.GameID)
	if err != nil {
		return nil, err
	}

	if game.Phase != models.GamePhaseVoting {
		return nil, ErrInvalidGameState
	}

	if _, err := s.getPlayerInGame(ctx, input.VoterPlayerID, game.ID); err != nil {
		return nil, err
	}

	if input.GuessedAuthorID == "" {
		return nil, ErrMissingGuess
	}

	playersOut, err := s.playerRepo.GetPlayersInGame(ctx, &playerRepo.GetPlayersInGameInput{GameID: game.ID})
	if err != nil {
		return nil, err
	}

	guessInGame := false
	for _, p := range playersOut.Players {
		if p.ID == input.GuessedAuthorID {
			guessInGame = true
			break
		}
	}
	if !guessInGame {
		return nil, ErrGuessedPlayerNotInGame
	}

	opinionsOut, err := s.opinionRepo.GetOpinionsForGame(ctx, &opinionRepo.GetOpinionsForGameInput{GameID: game.ID})
	if err != nil {
		return nil, err
	}

	current := turns.CurrentOpinion(game, opinionsOut.Opinions)
	if current == nil {
		return nil, ErrInvalidGameState
	}

	vote := &models.Vote{
		ID:              s.uuider.NewUUID(),
		GameID:          game.ID,
		OpinionID:       current.ID,
		VoterPlayerID:   input.VoterPlayerID,
		Agree:           input.Agree,
		GuessedAuthorID: input.GuessedAuthorID,
		CreatedAt:       s.clock.Now(),
	}

	if err := s.voteRepo.CreateVote(ctx, &voteRepo.CreateVoteInput{Vote: vote}); err != nil {
		if errors.Is(err, voteRepo.ErrAlreadyVoted) {
			return nil, ErrAlreadyVoted
		}
		return nil, err
	}

	s.publish(ctx, voteEvent(sync.EventInsert, vote))

	countOut, err := s.voteRepo.CountVotesForOpinion(ctx, &voteRepo.CountVotesForOpinionInput{OpinionID: current.ID})
	if err != nil {
		return nil, err
	}

	adv := turns.AfterVote(game, len(opinionsOut.Opinions), countOut.Count, turns.ExpectedVotes(playersOut.Players), s.turnMode)
	if adv.Changed {
		game.Phase = adv.Phase
		game.CurrentOpinionIndex = adv.OpinionIndex
		game.CurrentVoterIndex = adv.VoterIndex
		game.UpdatedAt = s.clock.Now()

		if err := s.gameRepo.SaveGame(ctx, &gameRepo.SaveGameInput{Game: game}); err != nil {
			return nil, err
		}

		s.publish(ctx, gameEvent(sync.EventUpdate, game))
	}

	return &SubmitVoteOutput{
		Vote: vote,
		Game: game,
	}, nil
}

// AdvancePhase moves the game to its next phase, host only. A FromPhase
// that no longer matches the stored phase means the transition already
// happened, so the call succeeds without changing anything.
func (s *service) AdvancePhase(ctx context.Context, input *AdvancePhaseInput) (*AdvancePhaseOutput, error) {
	game, err := s.getGame(ctx, input.GameID)
	if err != nil {
		return nil, err
	}

	if err := s.requireHost(ctx, input.PlayerID, game.ID); err != nil {
		return nil, err
	}

	if game.Phase != input.FromPhase {
		return &AdvancePhaseOutput{Game: game}, nil
	}

	next := game.Phase.Next()
	if !game.Phase.CanTransitionTo(next) {
		return nil, ErrInvalidGameState
	}

	playersOut, err := s.playerRepo.GetPlayersInGame(ctx, &playerRepo.GetPlayersInGameInput{GameID: game.ID})
	if err != nil {
		return nil, err
	}

	switch next {
	case models.GamePhaseOpinions:
		if len(playersOut.Players) < MinPlayersToStart {
			return nil, ErrNotEnoughPlayers
		}

	case models.GamePhaseVoting:
		opinionsOut, err := s.opinionRepo.GetOpinionsForGame(ctx, &opinionRepo.GetOpinionsForGameInput{GameID: game.ID})
		if err != nil {
			return nil, err
		}
		if !turns.AllOpinionsSubmitted(playersOut.Players, opinionsOut.Opinions) {
			return nil, ErrOpinionsOutstanding
		}
		game.CurrentOpinionIndex = 0
		game.CurrentVoterIndex = 0
	}

	game.Phase = next
	game.UpdatedAt = s.clock.Now()

	if err := s.gameRepo.SaveGame(ctx, &gameRepo.SaveGameInput{Game: game}); err != nil {
		return nil, err
	}

	s.publish(ctx, gameEvent(sync.EventUpdate, game))

	return &AdvancePhaseOutput{Game: game}, nil
}

// ResetGame deletes the game and everything in it, host only. A single
// game delete event clears every participant's replica and sends them
// back to the entry screen.
func (s *service) ResetGame(ctx context.Context, input *ResetGameInput) (*ResetGameOutput, error) {
	game, err := s.getGame(ctx, input.GameID)
	if err != nil {
		return nil, err
	}

	if err := s.requireHost(ctx, input.PlayerID, game.ID); err != nil {
		return nil, err
	}

	if err := s.voteRepo.DeleteVotesForGame(ctx, &voteRepo.DeleteVotesForGameInput{GameID: game.ID}); err != nil {
		return nil, err
	}

	if err := s.opinionRepo.DeleteOpinionsForGame(ctx, &opinionRepo.DeleteOpinionsForGameInput{GameID: game.ID}); err != nil {
		return nil, err
	}

	if err := s.playerRepo.DeletePlayersInGame(ctx, &playerRepo.DeletePlayersInGameInput{GameID: game.ID}); err != nil {
		return nil, err
	}

	if err := s.gameRepo.DeleteGame(ctx, &gameRepo.DeleteGameInput{GameID: game.ID}); err != nil {
		return nil, err
	}

	s.publish(ctx, &sync.Event{
		GameID:   game.ID,
		Entity:   sync.EntityGame,
		Type:     sync.EventDelete,
		EntityID: game.ID,
	})

	return &ResetGameOutput{}, nil
}

// GetGameState reads the participant-facing state of a game
func (s *service) GetGameState(ctx context.Context, input *GetGameStateInput) (*GetGameStateOutput, error) {
	game, err := s.getGame(ctx, input.GameID)
	if err != nil {
		return nil, err
	}

	playersOut, err := s.playerRepo.GetPlayersInGame(ctx, &playerRepo.GetPlayersInGameInput{GameID: game.ID})
	if err != nil {
		return nil, err
	}

	opinionsOut, err := s.opinionRepo.GetOpinionsForGame(ctx, &opinionRepo.GetOpinionsForGameInput{GameID: game.ID})
	if err != nil {
		return nil, err
	}

	votesOut, err := s.voteRepo.GetVotesForGame(ctx, &voteRepo.GetVotesForGameInput{GameID: game.ID})
	if err != nil {
		return nil, err
	}

	players := turns.SortPlayers(playersOut.Players)
	opinions := turns.SortOpinions(opinionsOut.Opinions)

	submittedBy := make(map[string]bool, len(opinions))
	for _, o := range opinions {
		submittedBy[o.PlayerID] = true
	}

	out := &GetGameStateOutput{
		Game:              game,
		Players:           make([]*PlayerView, 0, len(players)),
		OpinionsSubmitted: len(opinions),
		ExpectedOpinions:  len(players),
		ExpectedVotes:     turns.ExpectedVotes(players),
	}

	for _, p := range players {
		out.Players = append(out.Players, &PlayerView{
			ID:                  p.ID,
			Name:                p.Name,
			IsHost:              p.IsHost,
			HasSubmittedOpinion: submittedBy[p.ID],
			JoinedAt:            p.JoinedAt,
		})
	}

	if input.PlayerID != "" {
		out.YouSubmittedOpinion = submittedBy[input.PlayerID]
	}

	reveal := game.Phase.IsResults()

	// Opinion texts stay hidden until voting begins, and authorship stays
	// hidden until results.
	if game.Phase == models.GamePhaseVoting || reveal {
		out.Opinions = make([]*OpinionView, 0, len(opinions))
		for _, o := range opinions {
			out.Opinions = append(out.Opinions, opinionView(o, reveal))
		}
	}

	if game.Phase == models.GamePhaseVoting {
		if current := turns.CurrentOpinion(game, opinions); current != nil {
			out.CurrentOpinion = opinionView(current, false)

			for _, v := range votesOut.Votes {
				if v.OpinionID != current.ID {
					continue
				}
				out.VotesOnCurrent++
				if input.PlayerID != "" && v.VoterPlayerID == input.PlayerID {
					out.YouVotedOnCurrent = true
				}
			}
		}

		if s.turnMode == turns.ModeSharedDevice {
			if voter := turns.CurrentVoter(game, players); voter != nil {
				out.CurrentVoter = &PlayerView{
					ID:                  voter.ID,
					Name:                voter.Name,
					IsHost:              voter.IsHost,
					HasSubmittedOpinion: submittedBy[voter.ID],
					JoinedAt:            voter.JoinedAt,
				}
			}
		}
	}

	if reveal {
		out.Scoreboard = scoring.Scoreboard(players, opinions, votesOut.Votes)
		out.Tallies = scoring.Tallies(opinions, votesOut.Votes)
	}

	return out, nil
}

func (s *service) getGame(ctx context.Context, gameID string) (*models.Game, error) {
	game, err := s.gameRepo.GetGame(ctx, &gameRepo.GetGameInput{GameID: gameID})
	if err != nil {
		if errors.Is(err, gameRepo.ErrGameNotFound) {
			return nil, ErrGameNotFound
		}
		return nil, err
	}
	return game, nil
}

func (s *service) getPlayerInGame(ctx context.Context, playerID, gameID string) (*models.Player, error) {
	player, err := s.playerRepo.GetPlayer(ctx, &playerRepo.GetPlayerInput{PlayerID: playerID})
	if err != nil {
		if errors.Is(err, playerRepo.ErrPlayerNotFound) {
			return nil, ErrPlayerNotFound
		}
		return nil, err
	}

	if player.GameID != gameID {
		return nil, ErrPlayerNotInGame
	}

	return player, nil
}

func (s *service) requireHost(ctx context.Context, playerID, gameID string) error {
	player, err := s.getPlayerInGame(ctx, playerID, gameID)
	if err != nil {
		return err
	}

	if !player.IsHost {
		return ErrNotHost
	}

	return nil
}

// publish delivers a change event to subscribed participants. The write it
// describes is already committed, so a delivery failure is logged rather
// than surfaced.
func (s *service) publish(ctx context.Context, event *sync.Event) {
	if err := s.publisher.Publish(ctx, &sync.PublishInput{Event: event}); err != nil {
		log.Printf("game: failed to publish %s %s event for game %s: %v", event.Entity, event.Type, event.GameID, err)
	}
}

func gameEvent(eventType sync.EventType, game *models.Game) *sync.Event {
	return &sync.Event{
		GameID:   game.ID,
		Entity:   sync.EntityGame,
		Type:     eventType,
		EntityID: game.ID,
		Game:     game,
	}
}

func playerEvent(eventType sync.EventType, player *models.Player) *sync.Event {
	return &sync.Event{
		GameID:   player.GameID,
		Entity:   sync.EntityPlayer,
		Type:     eventType,
		EntityID: player.ID,
		Player:   player,
	}
}

func opinionEvent(eventType sync.EventType, opinion *models.Opinion) *sync.Event {
	return &sync.Event{
		GameID:   opinion.GameID,
		Entity:   sync.EntityOpinion,
		Type:     eventType,
		EntityID: opinion.ID,
		Opinion:  opinion,
	}
}

func voteEvent(eventType sync.EventType, vote *models.Vote) *sync.Event {
	return &sync.Event{
		GameID:   vote.GameID,
		Entity:   sync.EntityVote,
		Type:     eventType,
		EntityID: vote.ID,
		Vote:     vote,
	}
}

// redactOpinion strips authorship and text before an opinion goes out on
// the feed. Subscribers only need ID and order to count submissions; texts
// become visible through the state view once voting begins.
func redactOpinion(o *models.Opinion) *models.Opinion {
	redacted := *o
	redacted.PlayerID = ""
	redacted.Text = ""
	return &redacted
}

func opinionView(o *models.Opinion, reveal bool) *OpinionView {
	view := &OpinionView{
		ID:         o.ID,
		Text:       o.Text,
		OrderIndex: o.OrderIndex,
	}
	if reveal {
		view.AuthorID = o.PlayerID
	}
	return view
}
