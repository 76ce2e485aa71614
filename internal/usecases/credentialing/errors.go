package credentialing

import "errors"

var (
	// ErrNoCredential indica que a conta nunca foi autorizada. Não é um
	// erro de execução: a conta só não participa da coleta.
	ErrNoCredential = errors.New("conta sem credencial")

	// ErrRefreshFailed indica que a renovação do token falhou. Vale só
	// para a execução atual; a credencial armazenada fica intacta e a
	// próxima rodada tenta de novo.
	ErrRefreshFailed = errors.New("falha ao renovar credencial")
)
