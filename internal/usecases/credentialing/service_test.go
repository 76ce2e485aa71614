package credentialing

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	igdomain "github.com/vfg2006/creator-insights-api/infrastructure/integrator/instagram/domain"
	igmocks "github.com/vfg2006/creator-insights-api/infrastructure/integrator/instagram/igclient/mocks"
	"github.com/vfg2006/creator-insights-api/infrastructure/repository/mocks"
	"github.com/vfg2006/creator-insights-api/internal/config"
	"github.com/vfg2006/creator-insights-api/internal/domain"
	"go.uber.org/mock/gomock"
)

func timePtr(t time.Time) *time.Time {
	return &t
}

func TestService_EnsureFresh(t *testing.T) {
	now := time.Date(2025, 6, 10, 12, 0, 0, 0, time.UTC)

	cfg := &config.Config{
		Instagram: config.Instagram{
			DefaultTokenTTLHours: 1440,
		},
	}

	tests := []struct {
		name     string
		account  *domain.TrackedAccount
		setup    func(accountRepo *mocks.MockTrackedAccountRepository, client *igmocks.MockClient)
		validate func(t *testing.T, account *domain.TrackedAccount, credential *domain.Credential, err error)
	}{
		{
			name:    "Conta sem credencial - devolve ErrNoCredential sem chamar a plataforma",
			account: &domain.TrackedAccount{ID: "ACC001"},
			setup:   func(accountRepo *mocks.MockTrackedAccountRepository, client *igmocks.MockClient) {},
			validate: func(t *testing.T, account *domain.TrackedAccount, credential *domain.Credential, err error) {
				assert.Nil(t, credential)
				assert.ErrorIs(t, err, ErrNoCredential)
			},
		},
		{
			name: "Credencial ainda válida - devolvida sem renovação",
			account: &domain.TrackedAccount{
				ID: "ACC001",
				Credential: &domain.Credential{
					AccessToken:    "token-valido",
					ExternalUserID: "IG001",
					ExpiresAt:      timePtr(now.Add(24 * time.Hour)),
				},
			},
			setup: func(accountRepo *mocks.MockTrackedAccountRepository, client *igmocks.MockClient) {},
			validate: func(t *testing.T, account *domain.TrackedAccount, credential *domain.Credential, err error) {
				assert.NoError(t, err)
				assert.Equal(t, "token-valido", credential.AccessToken)
			},
		},
		{
			name: "Credencial vencida - renova na plataforma e grava a substituta",
			account: &domain.TrackedAccount{
				ID: "ACC001",
				Credential: &domain.Credential{
					AccessToken:    "token-vencido",
					ExternalUserID: "IG001",
					ExpiresAt:      timePtr(now.Add(-1 * time.Hour)),
				},
			},
			setup: func(accountRepo *mocks.MockTrackedAccountRepository, client *igmocks.MockClient) {
				client.EXPECT().
					RefreshToken("token-vencido").
					Return(&igdomain.TokenGrant{
						AccessToken: "token-novo",
						TokenType:   "bearer",
						ExpiresIn:   3600,
					}, nil)

				accountRepo.EXPECT().
					UpdateCredential(domain.AccountID("ACC001"), gomock.Any()).
					Return(nil)
			},
			validate: func(t *testing.T, account *domain.TrackedAccount, credential *domain.Credential, err error) {
				assert.NoError(t, err)
				assert.Equal(t, "token-novo", credential.AccessToken)
				assert.Equal(t, "IG001", credential.ExternalUserID)
				assert.Equal(t, now.Add(time.Hour), *credential.ExpiresAt)
				// A conta em memória passa a carregar a credencial substituta
				assert.Equal(t, "token-novo", account.Credential.AccessToken)
			},
		},
		{
			name: "Renovação sem expires_in - assume o prazo padrão de validade",
			account: &domain.TrackedAccount{
				ID: "ACC001",
				Credential: &domain.Credential{
					AccessToken:    "token-vencido",
					ExternalUserID: "IG001",
					ExpiresAt:      timePtr(now.Add(-1 * time.Hour)),
				},
			},
			setup: func(accountRepo *mocks.MockTrackedAccountRepository, client *igmocks.MockClient) {
				client.EXPECT().
					RefreshToken("token-vencido").
					Return(&igdomain.TokenGrant{AccessToken: "token-novo"}, nil)

				accountRepo.EXPECT().
					UpdateCredential(domain.AccountID("ACC001"), gomock.Any()).
					Return(nil)
			},
			validate: func(t *testing.T, account *domain.TrackedAccount, credential *domain.Credential, err error) {
				assert.NoError(t, err)
				assert.Equal(t, now.Add(1440*time.Hour), *credential.ExpiresAt)
			},
		},
		{
			name: "Renovação falha na plataforma - credencial antiga permanece intacta",
			account: &domain.TrackedAccount{
				ID: "ACC001",
				Credential: &domain.Credential{
					AccessToken:    "token-vencido",
					ExternalUserID: "IG001",
					ExpiresAt:      timePtr(now.Add(-1 * time.Hour)),
				},
			},
			setup: func(accountRepo *mocks.MockTrackedAccountRepository, client *igmocks.MockClient) {
				client.EXPECT().
					RefreshToken("token-vencido").
					Return(nil, errors.New("plataforma indisponível"))
			},
			validate: func(t *testing.T, account *domain.TrackedAccount, credential *domain.Credential, err error) {
				assert.Nil(t, credential)
				assert.ErrorIs(t, err, ErrRefreshFailed)
				assert.Equal(t, "token-vencido", account.Credential.AccessToken)
			},
		},
		{
			name: "Gravação da credencial renovada falha - devolve ErrRefreshFailed",
			account: &domain.TrackedAccount{
				ID: "ACC001",
				Credential: &domain.Credential{
					AccessToken:    "token-vencido",
					ExternalUserID: "IG001",
					ExpiresAt:      timePtr(now.Add(-1 * time.Hour)),
				},
			},
			setup: func(accountRepo *mocks.MockTrackedAccountRepository, client *igmocks.MockClient) {
				client.EXPECT().
					RefreshToken("token-vencido").
					Return(&igdomain.TokenGrant{AccessToken: "token-novo", ExpiresIn: 3600}, nil)

				accountRepo.EXPECT().
					UpdateCredential(domain.AccountID("ACC001"), gomock.Any()).
					Return(errors.New("banco indisponível"))
			},
			validate: func(t *testing.T, account *domain.TrackedAccount, credential *domain.Credential, err error) {
				assert.Nil(t, credential)
				assert.ErrorIs(t, err, ErrRefreshFailed)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockAccountRepo := mocks.NewMockTrackedAccountRepository(ctrl)
			mockClient := igmocks.NewMockClient(ctrl)

			tt.setup(mockAccountRepo, mockClient)

			service := &Service{
				accountRepo: mockAccountRepo,
				client:      mockClient,
				appConfig:   cfg,
				now:         func() time.Time { return now },
			}

			credential, err := service.EnsureFresh(tt.account)
			tt.validate(t, tt.account, credential, err)
		})
	}
}

func TestService_LinkAccount(t *testing.T) {
	now := time.Date(2025, 6, 10, 12, 0, 0, 0, time.UTC)

	cfg := &config.Config{
		Instagram: config.Instagram{
			DefaultTokenTTLHours: 1440,
		},
	}

	t.Run("Troca o código por credencial e grava na conta", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockAccountRepo := mocks.NewMockTrackedAccountRepository(ctrl)
		mockClient := igmocks.NewMockClient(ctrl)

		mockClient.EXPECT().
			ExchangeCode("codigo-oauth").
			Return(&igdomain.TokenGrant{
				AccessToken:    "token-novo",
				ExternalUserID: "IG001",
				ExpiresIn:      3600,
			}, nil)

		mockAccountRepo.EXPECT().
			UpdateCredential(domain.AccountID("ACC001"), gomock.Any()).
			Return(nil)

		service := &Service{
			accountRepo: mockAccountRepo,
			client:      mockClient,
			appConfig:   cfg,
			now:         func() time.Time { return now },
		}

		credential, err := service.LinkAccount("ACC001", "codigo-oauth")

		assert.NoError(t, err)
		assert.Equal(t, "token-novo", credential.AccessToken)
		assert.Equal(t, "IG001", credential.ExternalUserID)
	})

	t.Run("Troca do código falha - nada é gravado", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockAccountRepo := mocks.NewMockTrackedAccountRepository(ctrl)
		mockClient := igmocks.NewMockClient(ctrl)

		mockClient.EXPECT().
			ExchangeCode("codigo-invalido").
			Return(nil, errors.New("código rejeitado"))

		service := &Service{
			accountRepo: mockAccountRepo,
			client:      mockClient,
			appConfig:   cfg,
			now:         func() time.Time { return now },
		}

		credential, err := service.LinkAccount("ACC001", "codigo-invalido")

		assert.Nil(t, credential)
		assert.Error(t, err)
	})
}
