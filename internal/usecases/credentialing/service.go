package credentialing

import (
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
	igdomain "github.com/vfg2006/creator-insights-api/infrastructure/integrator/instagram/domain"
	"github.com/vfg2006/creator-insights-api/infrastructure/integrator/instagram/igclient"
	"github.com/vfg2006/creator-insights-api/infrastructure/repository"
	"github.com/vfg2006/creator-insights-api/internal/config"
	"github.com/vfg2006/creator-insights-api/internal/domain"
)

// CredentialManager cuida do ciclo de vida das credenciais por conta
type CredentialManager interface {
	EnsureFresh(account *domain.TrackedAccount) (*domain.Credential, error)
	LinkAccount(accountID domain.AccountID, code string) (*domain.Credential, error)
}

type Service struct {
	accountRepo repository.TrackedAccountRepository
	client      igclient.Client
	appConfig   *config.Config
	now         func() time.Time
}

func NewService(
	accountRepo repository.TrackedAccountRepository,
	client igclient.Client,
	appConfig *config.Config,
) *Service {
	return &Service{
		accountRepo: accountRepo,
		client:      client,
		appConfig:   appConfig,
		now:         time.Now,
	}
}

// EnsureFresh devolve uma credencial utilizável para a conta. Se a
// credencial armazenada estiver vencida, renova na plataforma e grava a
// substituta por inteiro; se a renovação falhar, a credencial antiga
// permanece intacta e o chamador recebe ErrRefreshFailed para pular a
// conta nesta rodada.
func (s *Service) EnsureFresh(account *domain.TrackedAccount) (*domain.Credential, error) {
	if !account.HasCredential() {
		return nil, ErrNoCredential
	}

	credential := account.Credential
	if !credential.Stale(s.now()) {
		return credential, nil
	}

	logrus.WithFields(logrus.Fields{
		"account_id": account.ID,
		"expires_at": credential.ExpiresAt,
	}).Info("Credencial vencida, renovando token na plataforma")

	grant, err := s.client.RefreshToken(credential.AccessToken)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"account_id": account.ID,
			"error":      err.Error(),
		}).Error("Erro ao renovar token na plataforma")
		return nil, fmt.Errorf("%w: %v", ErrRefreshFailed, err)
	}

	refreshed := s.buildCredential(grant, credential.ExternalUserID)

	if err := s.accountRepo.UpdateCredential(account.ID, refreshed); err != nil {
		logrus.WithFields(logrus.Fields{
			"account_id": account.ID,
			"error":      err.Error(),
		}).Error("Erro ao gravar credencial renovada")
		return nil, fmt.Errorf("%w: %v", ErrRefreshFailed, err)
	}

	account.Credential = refreshed

	logrus.WithFields(logrus.Fields{
		"account_id": account.ID,
		"expires_at": refreshed.ExpiresAt,
	}).Info("Credencial renovada com sucesso")

	return refreshed, nil
}

// LinkAccount troca o código do OAuth por uma credencial e a grava na
// conta. Usado quando o usuário (re)autoriza a conta.
func (s *Service) LinkAccount(accountID domain.AccountID, code string) (*domain.Credential, error) {
	grant, err := s.client.ExchangeCode(code)
	if err != nil {
		return nil, fmt.Errorf("erro ao trocar código de autorização: %w", err)
	}

	credential := s.buildCredential(grant, grant.ExternalUserID)

	if err := s.accountRepo.UpdateCredential(accountID, credential); err != nil {
		return nil, fmt.Errorf("erro ao gravar credencial: %w", err)
	}

	return credential, nil
}

// buildCredential monta a credencial substituta a partir da resposta da
// plataforma. Quando a plataforma omite expires_in, assume o prazo
// padrão de validade dos tokens de longa duração.
func (s *Service) buildCredential(grant *igdomain.TokenGrant, externalUserID string) *domain.Credential {
	ttl := time.Duration(grant.ExpiresIn) * time.Second
	if grant.ExpiresIn == 0 {
		ttl = time.Duration(s.appConfig.Instagram.DefaultTokenTTLHours) * time.Hour
	}

	expiresAt := s.now().Add(ttl)

	return &domain.Credential{
		AccessToken:    grant.AccessToken,
		ExternalUserID: externalUserID,
		ExpiresAt:      &expiresAt,
	}
}
