package handler

import (
	"encoding/json"
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/creator-insights-api/internal/domain"
	"github.com/vfg2006/creator-insights-api/internal/usecases/credentialing"
	"github.com/vfg2006/creator-insights-api/pkg/apiErrors"
)

type linkAccountRequest struct {
	Code string `json:"code"`
}

// LinkAccount troca o código de autorização do OAuth pela credencial da
// conta e a grava. O token nunca volta na resposta, só o prazo de
// validade.
func LinkAccount(credentials credentialing.CredentialManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - LinkAccount")

		accountID := httprouter.ParamsFromContext(r.Context()).ByName("id")
		if accountID == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "ID da conta não especificado", nil)
			return
		}

		var request linkAccountRequest
		if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Corpo da requisição inválido", nil)
			return
		}

		if request.Code == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Código de autorização não especificado", nil)
			return
		}

		credential, err := credentials.LinkAccount(domain.AccountID(accountID), request.Code)
		if err != nil {
			logrus.WithFields(logrus.Fields{
				"account_id": accountID,
				"error":      err.Error(),
			}).Error("Erro ao vincular conta")
			apiErrors.WriteError(w, apiErrors.ErrExternalService, "Erro ao vincular conta na plataforma", nil)
			return
		}

		response := map[string]any{
			"message":    "Conta vinculada com sucesso",
			"account_id": accountID,
			"expires_at": credential.ExpiresAt,
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(response)
	}
}
