package collecting

import "errors"

// ErrCollectionFailed indica que a coleta da conta foi abortada antes de
// gravar qualquer registro (snapshot da conta indisponível ou falha de
// persistência). Nunca deixa registro parcial para trás.
var ErrCollectionFailed = errors.New("falha na coleta de métricas da conta")
