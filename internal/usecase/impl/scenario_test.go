package impl

// End-to-end flows through the use-case layer with the real bcrypt hasher
// and the real JWT service, mocking only the repositories.

import (
	"context"
	"testing"
	"time"

	"tracker/config"
	"tracker/internal/domain/entity"
	domainerrors "tracker/internal/domain/errors"
	"tracker/internal/infra/auth"
	mockRepo "tracker/internal/mocks/repository"
	"tracker/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func scenarioConfig(t *testing.T) *config.Config {
	t.Helper()

	cfg := &config.Config{}
	cfg.Secrets.GuildCommander = config.SecretPair{Access: "gc-access-secret", Refresh: "gc-refresh-secret"}
	cfg.Secrets.Adventurer = config.SecretPair{Access: "adv-access-secret", Refresh: "adv-refresh-secret"}
	cfg.Tokens.AccessTTL = 15 * time.Minute
	cfg.Tokens.RefreshTTL = time.Hour
	cfg.Auth = &config.AuthConfig{BcryptCost: 4}

	return cfg
}

// Register a commander, log in with the same credentials, post a quest,
// complete it, then confirm a completed quest cannot be reopened.
func TestScenario_CommanderQuestLifecycle(t *testing.T) {
	cfg := scenarioConfig(t)
	hasher := auth.NewBcryptHasher(cfg)
	tokenService, err := auth.NewJWTService(cfg)
	require.NoError(t, err)

	ctx := context.Background()

	commanderRepo := new(mockRepo.MockGuildCommandersRepository)
	adventurerRepo := new(mockRepo.MockAdventurersRepository)
	questRepo := new(mockRepo.MockQuestsRepository)

	var storedHash string
	commanderRepo.On("Register", ctx, mock.Anything).
		Run(func(args mock.Arguments) {
			storedHash = args.Get(1).(*entity.RegisterGuildCommander).PasswordHash
		}).
		Return(int32(1), nil)

	registerFactory := new(mockRepo.MockRepositoryFactory)
	registerFactory.On("GuildCommanderRepo").Return(commanderRepo)
	registerSvc := NewGuildCommanderService(GuildCommanderServiceParams{
		TxManager: &mockRepo.PassthroughTransactionManager{Factory: registerFactory},
		Hasher:    hasher,
		Logger:    testLogger(),
	})
	registered, err := registerSvc.Register(ctx, &usecase.RegisterGuildCommanderInput{
		Username: "alice",
		Password: "pw1-long-enough",
	})
	require.NoError(t, err)
	require.Equal(t, int32(1), registered.ID)
	require.NotEmpty(t, storedHash)
	assert.NotEqual(t, "pw1-long-enough", storedHash)

	commanderRepo.On("FindByUsername", ctx, "alice").Return(&entity.GuildCommander{
		ID:           1,
		Username:     "alice",
		PasswordHash: storedHash,
	}, nil)

	authSvc := NewAuthenticationService(AuthenticationServiceParams{
		CommanderRepo:  commanderRepo,
		AdventurerRepo: adventurerRepo,
		Hasher:         hasher,
		TokenService:   tokenService,
		Logger:         testLogger(),
	})
	session, err := authSvc.Login(ctx, entity.KindGuildCommander, &usecase.LoginInput{
		Username: "alice",
		Password: "pw1-long-enough",
	})
	require.NoError(t, err)

	claims, err := tokenService.ValidateAccessToken(session.AccessToken, entity.KindGuildCommander)
	require.NoError(t, err)
	assert.Equal(t, int32(1), claims.PrincipalID)
	assert.Equal(t, entity.KindGuildCommander, claims.Kind)

	// The commander token must not pass adventurer validation.
	_, err = tokenService.ValidateAccessToken(session.AccessToken, entity.KindAdventurer)
	assert.ErrorIs(t, err, domainerrors.ErrWrongAudience)

	factory := new(mockRepo.MockRepositoryFactory)
	factory.On("QuestRepo").Return(questRepo)
	questSvc := NewQuestOpsService(QuestOpsServiceParams{
		TxManager: &mockRepo.PassthroughTransactionManager{Factory: factory},
		QuestRepo: questRepo,
		Logger:    testLogger(),
	})

	open := testQuest(1, claims.PrincipalID, entity.QuestStatusOpen)
	open.Name = "Slay dragon"
	questRepo.On("Create", ctx, mock.Anything).Return(int32(1), nil)
	questRepo.On("FindByID", ctx, int32(1)).Return(open, nil).Once()

	created, err := questSvc.Add(ctx, claims.PrincipalID, &usecase.AddQuestInput{Name: "Slay dragon"})
	require.NoError(t, err)
	assert.Equal(t, entity.QuestStatusOpen, created.Status)

	completed := testQuest(1, claims.PrincipalID, entity.QuestStatusCompleted)
	completed.Name = "Slay dragon"
	questRepo.On("FindByID", ctx, int32(1)).Return(open, nil).Once()
	questRepo.On("Update", ctx, int32(1), mock.Anything).Return(nil)
	questRepo.On("FindByID", ctx, int32(1)).Return(completed, nil)

	edited, err := questSvc.Edit(ctx, claims.PrincipalID, 1, &usecase.EditQuestInput{
		Status: statusPtr(entity.QuestStatusCompleted),
	})
	require.NoError(t, err)
	assert.Equal(t, entity.QuestStatusCompleted, edited.Status)

	_, err = questSvc.Edit(ctx, claims.PrincipalID, 1, &usecase.EditQuestInput{
		Status: statusPtr(entity.QuestStatusOpen),
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidTransition)
}

// Refresh with a valid refresh token yields a new pair whose tokens both
// validate independently; an expired refresh token is rejected.
func TestScenario_SessionRefresh(t *testing.T) {
	cfg := scenarioConfig(t)
	tokenService, err := auth.NewJWTService(cfg)
	require.NoError(t, err)

	ctx := context.Background()

	adventurerRepo := new(mockRepo.MockAdventurersRepository)
	adventurerRepo.On("FindByID", ctx, int32(3)).Return(&entity.Adventurer{
		ID:       3,
		Username: "bryn",
	}, nil)

	authSvc := NewAuthenticationService(AuthenticationServiceParams{
		CommanderRepo:  new(mockRepo.MockGuildCommandersRepository),
		AdventurerRepo: adventurerRepo,
		Hasher:         auth.NewBcryptHasher(cfg),
		TokenService:   tokenService,
		Logger:         testLogger(),
	})

	pair, err := tokenService.IssueTokenPair(entity.Principal{ID: 3, Kind: entity.KindAdventurer})
	require.NoError(t, err)

	refreshed, err := authSvc.Refresh(ctx, entity.KindAdventurer, &usecase.RefreshInput{
		RefreshToken: pair.RefreshToken,
	})
	require.NoError(t, err)

	accessClaims, err := tokenService.ValidateAccessToken(refreshed.AccessToken, entity.KindAdventurer)
	require.NoError(t, err)
	assert.Equal(t, int32(3), accessClaims.PrincipalID)

	refreshClaims, err := tokenService.ValidateRefreshToken(refreshed.RefreshToken, entity.KindAdventurer)
	require.NoError(t, err)
	assert.Equal(t, int32(3), refreshClaims.PrincipalID)

	expiredCfg := scenarioConfig(t)
	expiredCfg.Tokens.RefreshTTL = -time.Minute
	expiredTokens, err := auth.NewJWTService(expiredCfg)
	require.NoError(t, err)
	expiredPair, err := expiredTokens.IssueTokenPair(entity.Principal{ID: 3, Kind: entity.KindAdventurer})
	require.NoError(t, err)

	_, err = authSvc.Refresh(ctx, entity.KindAdventurer, &usecase.RefreshInput{
		RefreshToken: expiredPair.RefreshToken,
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrTokenExpired)
}
