package feedback

import "errors"

// ErrUnavailable indica que a análise de IA não está configurada
// (chave da API ausente). As rodadas de análise devem pular a conta
// sem tratar como falha de coleta.
var ErrUnavailable = errors.New("análise de IA indisponível: chave da API não configurada")

// ErrAnalysisFailed indica que a chamada de completion para a
// publicação falhou após a credencial e a listagem terem funcionado.
var ErrAnalysisFailed = errors.New("falha na análise de conteúdo da publicação")
